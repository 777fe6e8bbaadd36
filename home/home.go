package home

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/julienschmidt/httprouter"

	"venueos/utils"
)

// Diagnostics is the slice of the store the /test endpoint needs.
type Diagnostics interface {
	Ping(ctx context.Context) error
	CollectionNames(ctx context.Context) ([]string, error)
	Name() string
}

type Handler struct {
	diag Diagnostics
}

func NewHandler(diag Diagnostics) *Handler {
	return &Handler{diag: diag}
}

// Index is the liveness endpoint.
func (h *Handler) Index(w http.ResponseWriter, _ *http.Request, _ httprouter.Params) {
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"message": "VenueOS Backend Running"})
}

// Test reports store connectivity, configuration presence flags, and up to 20
// collection names. A collection-listing failure is downgraded into the status
// string rather than an HTTP error.
func (h *Handler) Test(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	response := utils.M{
		"backend":       "✅ Running",
		"database":      "❌ Not Available",
		"database_url":  "❌ Not Set",
		"database_name": "❌ Not Set",
		"collections":   []string{},
	}

	if h.diag == nil {
		utils.RespondWithJSON(w, http.StatusOK, response)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if os.Getenv("DATABASE_URL") != "" {
		response["database_url"] = "✅ Set"
	}
	if name := h.diag.Name(); name != "" {
		response["database_name"] = name
	}

	if err := h.diag.Ping(ctx); err != nil {
		response["database"] = "❌ Error: " + utils.Truncate(err.Error(), 80)
		utils.RespondWithJSON(w, http.StatusOK, response)
		return
	}
	response["database"] = "✅ Connected"

	names, err := h.diag.CollectionNames(ctx)
	if err != nil {
		response["database"] = "⚠️ Connected but error listing collections: " + utils.Truncate(err.Error(), 80)
	} else {
		if len(names) > 20 {
			names = names[:20]
		}
		response["collections"] = names
	}

	utils.RespondWithJSON(w, http.StatusOK, response)
}
