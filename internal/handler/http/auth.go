package http

import (
	"net/http"

	"github.com/MKhiriev/echosell-api/internal/app"
	"github.com/MKhiriev/echosell-api/internal/logger"
	"github.com/MKhiriev/echosell-api/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var request registerRequest
	if !h.decodeAndValidate(w, r, &request) {
		return
	}

	user := models.User{
		Username: request.Username,
		Email:    request.Email,
		FullName: request.FullName,
		IsActive: true,
	}

	created, err := h.services.UserService.Register(r.Context(), user, request.Password)
	if err != nil {
		respondError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().Int64("user_id", created.ID).Str("username", created.Username).Msg("user registered")
	respondSuccess(w, http.StatusOK, app.MsgUserRegistered, created)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var request loginRequest
	if !h.decodeAndValidate(w, r, &request) {
		return
	}

	_, token, err := h.services.AuthService.Login(r.Context(), request.Username, request.Password)
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondSuccess(w, http.StatusOK, app.MsgLoginSuccessful, models.TokenResponse{Token: token.SignedString})
}

// logout evicts the presented token from the cache. The token travels in the
// `token` query parameter rather than a header so that already-expired tokens
// can still be logged out.
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("token")
	if token == "" {
		respondMessage(w, http.StatusBadRequest, app.MsgTokenRequired)
		return
	}

	if err := h.services.AuthService.Logout(r.Context(), token); err != nil {
		respondError(w, r, err)
		return
	}

	respondMessage(w, http.StatusOK, app.MsgLogoutSuccessful)
}
