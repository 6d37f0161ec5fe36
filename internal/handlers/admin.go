package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"rentahome/internal/apperr"
	"rentahome/internal/models"
	"rentahome/internal/storage"

	"github.com/gorilla/mux"
)

func PendingPropertiesHandler(db storage.Database) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		properties, err := db.GetPendingProperties()
		if err != nil {
			writeError(w, err)
			return
		}

		if properties == nil {
			properties = []models.Property{}
		}

		writeJSON(w, http.StatusOK, listResponse{Success: true, Data: properties})
	})
}

// PropertyReviewHandler applies an admin decision. This is the only path
// that moves a listing out of pending; re-review between verified and
// rejected goes through here too and is idempotent.
func PropertyReviewHandler(db storage.Database, cache storage.Cache) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := mux.Vars(r)[`id`]

		var req struct {
			Status string `json:"status"`
			Note   string `json:"note"`
		}

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, apperr.New(apperr.CodeValidation, "Invalid request body"))
			return
		}

		if !models.ValidReviewStatus(req.Status) {
			writeError(w, apperr.New(apperr.CodeValidation, "Status must be verified or rejected"))
			return
		}

		property, err := db.ReviewProperty(id, req.Status, req.Note)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				writeError(w, apperr.New(apperr.CodeNotFound, "Property not found"))
				return
			}
			writeError(w, err)
			return
		}

		// Drop stale browse results before responding so a listing that
		// just left verified cannot be served from cache.
		cache.DeleteVerifiedProperties(property.City)
		cache.DeleteVerifiedProperties("")

		writeJSON(w, http.StatusOK, listResponse{Success: true, Data: property})
	})
}

func AccountSuspendHandler(db storage.Database, suspended bool) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := mux.Vars(r)[`id`]

		if err := db.SetAccountSuspended(id, suspended); err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				writeError(w, apperr.New(apperr.CodeNotFound, "User not found"))
				return
			}
			writeError(w, err)
			return
		}

		message := "User suspended"
		if !suspended {
			message = "User unsuspended"
		}

		writeJSON(w, http.StatusOK, messageResponse{Success: true, Message: message})
	})
}
