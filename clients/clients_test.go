package clients

import (
	"encoding/json"
	"fmt"
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
	router.POST("/clients", h.Create)
	router.GET("/clients", h.List)
	return router
}

func TestCreateClient(t *testing.T) {
	router := newRouter(dbtest.New())

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("POST", "/clients", strings.NewReader(`{"name": "Priya Singh", "email": "priya@example.com", "company": "Singh Events"}`)))

	require.Equal(t, http.StatusCreated, rec.Code)
	var body map[string]any
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, "Priya Singh", body["name"])
	assert.Equal(t, "Singh Events", body["company"])
	assert.NotEmpty(t, body["_id"])
}

func TestCreateClientRejectsBadEmail(t *testing.T) {
	store := dbtest.New()
	router := newRouter(store)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("POST", "/clients", strings.NewReader(`{"name": "Priya Singh", "email": "nope"}`)))
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Zero(t, store.Count("client"))
}

func TestListClientsHonorsLimit(t *testing.T) {
	router := newRouter(dbtest.New())

	for i := 0; i < 5; i++ {
		rec := httptest.NewRecorder()
		payload := fmt.Sprintf(`{"name": "Client %d"}`, i)
		router.ServeHTTP(rec, httptest.NewRequest("POST", "/clients", strings.NewReader(payload)))
		require.Equal(t, http.StatusCreated, rec.Code)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("GET", "/clients?limit=2", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.EqualValues(t, 2, body["count"])
	assert.Len(t, body["items"].([]any), 2)
}

func TestListClientsIsReadOnly(t *testing.T) {
	router := newRouter(dbtest.New())

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("POST", "/clients", strings.NewReader(`{"name": "Solo"}`)))
	require.Equal(t, http.StatusCreated, rec.Code)

	var first, second map[string]any
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("GET", "/clients", nil))
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&first))

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("GET", "/clients", nil))
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&second))

	assert.Equal(t, first["items"], second["items"])
	assert.Equal(t, first["count"], second["count"])
}
