package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-budget-keeper/internal/logger"
	"github.com/MKhiriev/go-budget-keeper/internal/service"
	"github.com/MKhiriev/go-budget-keeper/internal/utils"
	"github.com/MKhiriev/go-budget-keeper/models"
	"github.com/go-chi/chi/v5"
)

// The record handlers are generic over the four bookkeeping types; one
// instantiation per type is mounted in routes.go. Every handler pulls the
// authenticated owner from the request context put there by the auth
// middleware, so a request can only ever touch its own records.

func ownerFromRequest(w http.ResponseWriter, r *http.Request) (int64, bool) {
	ownerID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		// the auth middleware guards every record route; a missing identity
		// means the route was mounted outside it
		logger.FromRequest(r).Error().Msg("no authenticated user in request context")
		_, _ = utils.WriteJSON(w, models.ErrorResponse{Error: http.StatusText(http.StatusUnauthorized)}, http.StatusUnauthorized)
		return 0, false
	}
	return ownerID, true
}

func recordIDFromRequest(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		_, _ = utils.WriteJSON(w, models.ErrorResponse{Error: "invalid record id"}, http.StatusBadRequest)
		return 0, false
	}
	return id, true
}

func createRecord[T any](svc service.RecordService[T]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		ownerID, ok := ownerFromRequest(w, r)
		if !ok {
			return
		}

		var record T
		if err := json.NewDecoder(r.Body).Decode(&record); err != nil {
			log.Err(err).Str("func", "createRecord").Msg("Invalid JSON was passed")
			_, _ = utils.WriteJSON(w, models.ErrorResponse{Error: "Invalid JSON was passed"}, http.StatusBadRequest)
			return
		}

		created, err := svc.Create(r.Context(), ownerID, record)
		if err != nil {
			writeError(w, r, err)
			return
		}

		_, _ = utils.WriteJSON(w, created, http.StatusCreated)
	}
}

func getRecord[T any](svc service.RecordService[T]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ownerID, ok := ownerFromRequest(w, r)
		if !ok {
			return
		}
		id, ok := recordIDFromRequest(w, r)
		if !ok {
			return
		}

		found, err := svc.Get(r.Context(), ownerID, id)
		if err != nil {
			writeError(w, r, err)
			return
		}

		_, _ = utils.WriteJSON(w, found, http.StatusOK)
	}
}

func listRecords[T any](svc service.RecordService[T]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ownerID, ok := ownerFromRequest(w, r)
		if !ok {
			return
		}

		records, err := svc.List(r.Context(), ownerID)
		if err != nil {
			writeError(w, r, err)
			return
		}
		if records == nil {
			records = []T{}
		}

		_, _ = utils.WriteJSON(w, records, http.StatusOK)
	}
}

func updateRecord[T any](svc service.RecordService[T]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		ownerID, ok := ownerFromRequest(w, r)
		if !ok {
			return
		}
		id, ok := recordIDFromRequest(w, r)
		if !ok {
			return
		}

		var record T
		if err := json.NewDecoder(r.Body).Decode(&record); err != nil {
			log.Err(err).Str("func", "updateRecord").Msg("Invalid JSON was passed")
			_, _ = utils.WriteJSON(w, models.ErrorResponse{Error: "Invalid JSON was passed"}, http.StatusBadRequest)
			return
		}

		updated, err := svc.Update(r.Context(), ownerID, id, record)
		if err != nil {
			writeError(w, r, err)
			return
		}

		_, _ = utils.WriteJSON(w, updated, http.StatusOK)
	}
}

func deleteRecord[T any](svc service.RecordService[T]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ownerID, ok := ownerFromRequest(w, r)
		if !ok {
			return
		}
		id, ok := recordIDFromRequest(w, r)
		if !ok {
			return
		}

		if err := svc.Delete(r.Context(), ownerID, id); err != nil {
			writeError(w, r, err)
			return
		}

		_, _ = utils.WriteJSON(w, models.MessageResponse{Message: "record deleted"}, http.StatusOK)
	}
}
