package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-budget-keeper/internal/logger"
	"github.com/MKhiriev/go-budget-keeper/internal/utils"
	"github.com/MKhiriev/go-budget-keeper/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var user models.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		log.Err(err).Str("func", "*Handler.register").Msg("Invalid JSON was passed")
		_, _ = utils.WriteJSON(w, models.ErrorResponse{Error: "Invalid JSON was passed"}, http.StatusBadRequest)
		return
	}

	registeredUser, err := h.services.AuthService.RegisterUser(ctx, user)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Info().Int64("id", registeredUser.ID).Str("email", registeredUser.Email).Msg("user registered")

	_, _ = utils.WriteJSON(w, models.PublicUser(registeredUser), http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var credentials models.Credentials
	if err := json.NewDecoder(r.Body).Decode(&credentials); err != nil {
		log.Err(err).Str("func", "*Handler.login").Msg("Invalid JSON was passed")
		_, _ = utils.WriteJSON(w, models.ErrorResponse{Error: "Invalid JSON was passed"}, http.StatusBadRequest)
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, credentials)
	if err != nil {
		writeError(w, r, err)
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, foundUser)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		writeError(w, r, err)
		return
	}

	log.Debug().Int64("id", foundUser.ID).Msg("user successfully logged in")

	_, _ = utils.WriteJSON(w, models.LoginResponse{
		User:  models.PublicUser(foundUser),
		Token: token.String(),
	}, http.StatusOK)
}

// updateUser overwrites the caller's own account. The {id} in the path must
// match the authenticated identity; accounts of other users are off limits
// no matter what the payload says.
func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		_, _ = utils.WriteJSON(w, models.ErrorResponse{Error: "invalid user id"}, http.StatusBadRequest)
		return
	}

	authenticatedID, ok := utils.GetUserIDFromContext(ctx)
	if !ok || authenticatedID != id {
		log.Warn().Int64("id", id).Int64("authenticated_id", authenticatedID).Msg("attempt to update another user's account")
		_, _ = utils.WriteJSON(w, models.ErrorResponse{Error: "cannot update another user's account"}, http.StatusForbidden)
		return
	}

	var user models.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		log.Err(err).Str("func", "*Handler.updateUser").Msg("Invalid JSON was passed")
		_, _ = utils.WriteJSON(w, models.ErrorResponse{Error: "Invalid JSON was passed"}, http.StatusBadRequest)
		return
	}
	user.ID = id

	updatedUser, err := h.services.AuthService.UpdateUser(ctx, user)
	if err != nil {
		writeError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, models.PublicUser(updatedUser), http.StatusOK)
}
