package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/MKhiriev/echosell-api/internal/app"
	"github.com/MKhiriev/echosell-api/internal/logger"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

// registerRequest is the payload of POST /api/v1/auth/register.
type registerRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6,max=72"`
	FullName string `json:"full_name" validate:"omitempty,max=100"`
}

// loginRequest is the payload of POST /api/v1/auth/login.
type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// createItemRequest is the payload of POST /api/v1/items/.
type createItemRequest struct {
	Title       string `json:"title" validate:"required,min=1,max=200"`
	Description string `json:"description"`
}

// decodeAndValidate decodes the JSON request body into dst and runs struct
// validation on it. On failure it writes the 400 envelope itself and returns
// false; the caller should simply return.
func (h *Handler) decodeAndValidate(w http.ResponseWriter, r *http.Request, dst any) bool {
	log := logger.FromRequest(r)

	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		respondMessage(w, http.StatusBadRequest, app.MsgInvalidJSON)
		return false
	}

	if err := h.validate.Struct(dst); err != nil {
		log.Err(err).Msg("request validation failed")
		respondFailure(w, http.StatusBadRequest, app.MsgValidationFailed, validationDetails(err))
		return false
	}

	return true
}

// validationDetails flattens a validator error into a field→message map for
// the envelope's errors object.
func validationDetails(err error) map[string]any {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return map[string]any{"detail": err.Error()}
	}

	details := make(map[string]any, len(validationErrs))
	for _, fieldErr := range validationErrs {
		details[fieldErr.Field()] = fmt.Sprintf("failed on the %q rule", fieldErr.Tag())
	}

	return details
}

// pathID parses the given chi URL parameter as an int64 identifier.
func pathID(r *http.Request, param string) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, param), 10, 64)
	if err != nil || id < 1 {
		return 0, fmt.Errorf("invalid %s path parameter", param)
	}

	return id, nil
}

// pagination extracts the skip/limit query parameters, applying the default
// window of 0/100. Negative or malformed values are rejected.
func pagination(r *http.Request) (skip, limit int, err error) {
	skip, err = queryInt(r, "skip", 0)
	if err != nil {
		return 0, 0, err
	}

	limit, err = queryInt(r, "limit", 100)
	if err != nil {
		return 0, 0, err
	}
	if limit < 1 {
		return 0, 0, errors.New("limit must be a positive integer")
	}

	return skip, limit, nil
}

func queryInt(r *http.Request, param string, fallback int) (int, error) {
	raw := r.URL.Query().Get(param)
	if raw == "" {
		return fallback, nil
	}

	value, err := strconv.Atoi(raw)
	if err != nil || value < 0 {
		return 0, fmt.Errorf("invalid %s query parameter", param)
	}

	return value, nil
}
