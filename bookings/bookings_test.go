package bookings

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"venueos/db/dbtest"
)

func newRouter(store *dbtest.Memory) *httprouter.Router {
	h := NewHandler(store)
	router := httprouter.New()
	router.POST("/bookings", h.Create)
	router.GET("/bookings", h.List)
	return router
}

func TestCreateBookingDefaultsStatus(t *testing.T) {
	router := newRouter(dbtest.New())

	// references are optional and unchecked
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("POST", "/bookings", strings.NewReader(`{"title": "Singh Wedding", "date": "2025-06-01T18:00:00Z"}`)))

	require.Equal(t, http.StatusCreated, rec.Code)
	var body map[string]any
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, "Singh Wedding", body["title"])
	assert.Equal(t, "tentative", body["status"])
	assert.NotEmpty(t, body["_id"])
}

func TestCreateBookingKeepsExplicitStatus(t *testing.T) {
	router := newRouter(dbtest.New())

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("POST", "/bookings", strings.NewReader(`{"title": "Corporate Gala", "date": "2025-07-04T10:00:00Z", "status": "confirmed", "client_id": "abc123"}`)))

	require.Equal(t, http.StatusCreated, rec.Code)
	var body map[string]any
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, "confirmed", body["status"])
	assert.Equal(t, "abc123", body["client_id"])
}

func TestCreateBookingRejectsNegativeGuests(t *testing.T) {
	store := dbtest.New()
	router := newRouter(store)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("POST", "/bookings", strings.NewReader(`{"title": "Singh Wedding", "date": "2025-06-01T18:00:00Z", "guests": -1}`)))

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	var body map[string]any
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Contains(t, body["detail"].([]any), "guests must be greater than or equal to 0")
	assert.Zero(t, store.Count("booking"))
}

func TestCreateBookingRequiresDate(t *testing.T) {
	router := newRouter(dbtest.New())

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("POST", "/bookings", strings.NewReader(`{"title": "Singh Wedding"}`)))
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}
