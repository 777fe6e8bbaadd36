package bookings

import (
	"context"
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"

	"venueos/db"
	"venueos/failure"
	"venueos/models"
	"venueos/utils"
	"venueos/validate"
)

type Handler struct {
	store db.Store
}

func NewHandler(store db.Store) *Handler {
	return &Handler{store: store}
}

// Create validates the request body as a Booking and persists it. The
// client_id/venue_id references are stored as given; nothing checks that the
// referenced documents exist.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var booking models.Booking
	if err := validate.Validate(r.Body, &booking); err != nil {
		utils.RespondWithError(w, err)
		return
	}
	booking.ApplyDefaults()

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	doc, err := h.store.CreateDocument(ctx, models.BookingCollection, booking)
	if err != nil {
		log.Error().Err(err).Msg("creating booking")
		utils.RespondWithError(w, failure.InternalError(err))
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, doc)
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	docs, err := h.store.ListDocuments(ctx, models.BookingCollection, bson.M{}, utils.ParseLimit(r, db.DefaultLimit))
	if err != nil {
		log.Error().Err(err).Msg("listing bookings")
		utils.RespondWithError(w, failure.InternalError(err))
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"items":     docs,
		"count":     len(docs),
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
