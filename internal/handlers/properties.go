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

type propertyRequest struct {
	Title         string `json:"title"`
	Description   string `json:"description"`
	City          string `json:"city"`
	Address       string `json:"address"`
	PricePerNight int64  `json:"pricePerNight"`
}

type listResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data"`
}

func PropertyCreateHandler(db storage.Database) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		account, ok := AccountFromContext(r.Context())
		if !ok {
			writeError(w, apperr.New(apperr.CodeUnauthorized, "No token provided"))
			return
		}

		var req propertyRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, apperr.New(apperr.CodeValidation, "Invalid request body"))
			return
		}

		if req.Title == "" || req.City == "" {
			writeError(w, apperr.New(apperr.CodeValidation, "Title and city are required"))
			return
		}

		// Status is forced to pending by the storage layer regardless of
		// anything in the payload.
		property, err := db.CreateProperty(models.Property{
			OwnerId:       account.Id,
			Title:         req.Title,
			Description:   req.Description,
			City:          req.City,
			Address:       req.Address,
			PricePerNight: req.PricePerNight,
		})
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, listResponse{Success: true, Data: property})
	})
}

// PropertiesBrowseHandler serves the public browse query. Only verified
// listings are ever returned; results are cached per city and any cache
// failure falls through to the database.
func PropertiesBrowseHandler(db storage.Database, cache storage.Cache) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		city := r.URL.Query().Get(`city`)

		if data, err := cache.GetVerifiedProperties(city); err == nil {
			writeJSON(w, http.StatusOK, listResponse{Success: true, Data: json.RawMessage(data)})
			return
		}

		properties, err := db.GetVerifiedProperties(city)
		if err != nil {
			writeError(w, err)
			return
		}

		if properties == nil {
			properties = []models.Property{}
		}

		cache.PutVerifiedProperties(properties, city)

		writeJSON(w, http.StatusOK, listResponse{Success: true, Data: properties})
	})
}

func PropertyDetailHandler(db storage.Database) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := mux.Vars(r)[`id`]

		property, err := db.GetPropertyById(id)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				writeError(w, apperr.New(apperr.CodeNotFound, "Property not found"))
				return
			}
			writeError(w, err)
			return
		}

		// Unverified listings are invisible on the public path, same as
		// absent ones.
		if property.Status != models.StatusVerified {
			writeError(w, apperr.New(apperr.CodeNotFound, "Property not found"))
			return
		}

		writeJSON(w, http.StatusOK, listResponse{Success: true, Data: property})
	})
}

func MyPropertiesHandler(db storage.Database) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		account, ok := AccountFromContext(r.Context())
		if !ok {
			writeError(w, apperr.New(apperr.CodeUnauthorized, "No token provided"))
			return
		}

		properties, err := db.GetPropertiesByOwner(account.Id)
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

// PropertyUpdateHandler lets an owner edit a listing. The edit sends the
// listing back to pending for re-review, and stale browse results for both
// the old and new city are dropped.
func PropertyUpdateHandler(db storage.Database, cache storage.Cache) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		account, ok := AccountFromContext(r.Context())
		if !ok {
			writeError(w, apperr.New(apperr.CodeUnauthorized, "No token provided"))
			return
		}

		id := mux.Vars(r)[`id`]

		existing, err := db.GetPropertyById(id)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				writeError(w, apperr.New(apperr.CodeNotFound, "Property not found"))
				return
			}
			writeError(w, err)
			return
		}

		if err := requireOwnership(account, existing.OwnerId); err != nil {
			writeError(w, err)
			return
		}

		var req propertyRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, apperr.New(apperr.CodeValidation, "Invalid request body"))
			return
		}

		if req.Title == "" || req.City == "" {
			writeError(w, apperr.New(apperr.CodeValidation, "Title and city are required"))
			return
		}

		property, err := db.UpdateProperty(models.Property{
			Id:            id,
			Title:         req.Title,
			Description:   req.Description,
			City:          req.City,
			Address:       req.Address,
			PricePerNight: req.PricePerNight,
		})
		if err != nil {
			// The listing can vanish between the ownership read and the
			// update.
			if errors.Is(err, storage.ErrNotFound) {
				writeError(w, apperr.New(apperr.CodeNotFound, "Property not found"))
				return
			}
			writeError(w, err)
			return
		}

		cache.DeleteVerifiedProperties(existing.City)
		if req.City != existing.City {
			cache.DeleteVerifiedProperties(req.City)
		}
		cache.DeleteVerifiedProperties("")

		writeJSON(w, http.StatusOK, listResponse{Success: true, Data: property})
	})
}
