package http

import (
	"net/http"

	"github.com/MKhiriev/echosell-api/internal/app"
	"github.com/MKhiriev/echosell-api/internal/utils"
	"github.com/MKhiriev/echosell-api/models"
)

// respondSuccess writes a successful envelope with the given message and
// optional data payload.
func respondSuccess(w http.ResponseWriter, statusCode int, message string, data any) {
	utils.WriteJSON(w, models.Response{
		Success: true,
		Message: message,
		Data:    data,
	}, statusCode)
}

// respondMessage writes a failure envelope carrying only a message.
// Errors serializes as null.
func respondMessage(w http.ResponseWriter, statusCode int, message string) {
	utils.WriteJSON(w, models.Response{
		Success: false,
		Message: message,
	}, statusCode)
}

// respondFailure writes a failure envelope with structured error details.
func respondFailure(w http.ResponseWriter, statusCode int, message string, errs map[string]any) {
	utils.WriteJSON(w, models.Response{
		Success: false,
		Message: message,
		Errors:  errs,
	}, statusCode)
}

// respondError translates a service/store error into its wire representation
// using the sentinel→status map. Unmapped errors collapse into a generic 500
// that leaks no internals.
func respondError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFromError(err)
	if status == http.StatusInternalServerError {
		respondFailure(w, status, app.MsgInternalServerError, map[string]any{"detail": err.Error()})
		return
	}

	respondMessage(w, status, err.Error())
}
