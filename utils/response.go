package utils

import (
	"encoding/json"
	"net/http"

	"venueos/failure"
)

type M map[string]interface{}

// Sends a JSON response
func RespondWithJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

// RespondWithError maps an error to its HTTP status and a detail body.
// Validation failures carry the per-field list; everything else is the
// message text alone.
func RespondWithError(w http.ResponseWriter, err error) {
	body := M{"detail": err.Error()}
	if fields := failure.GetFields(err); len(fields) > 0 {
		body["detail"] = fields
	}
	RespondWithJSON(w, failure.GetCode(err), body)
}
