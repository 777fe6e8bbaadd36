package venues

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

// Handler serves the venue routes against an injected store.
type Handler struct {
	store db.Store
}

func NewHandler(store db.Store) *Handler {
	return &Handler{store: store}
}

// Create validates the request body as a Venue and persists it, responding
// with the full stored document.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var venue models.Venue
	if err := validate.Validate(r.Body, &venue); err != nil {
		utils.RespondWithError(w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	doc, err := h.store.CreateDocument(ctx, models.VenueCollection, venue)
	if err != nil {
		log.Error().Err(err).Msg("creating venue")
		utils.RespondWithError(w, failure.InternalError(err))
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, doc)
}

// List returns up to limit venues in store order.
func (h *Handler) List(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	docs, err := h.store.ListDocuments(ctx, models.VenueCollection, bson.M{}, utils.ParseLimit(r, db.DefaultLimit))
	if err != nil {
		log.Error().Err(err).Msg("listing venues")
		utils.RespondWithError(w, failure.InternalError(err))
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"items":     docs,
		"count":     len(docs),
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
