package http

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/MKhiriev/echosell-api/internal/app"
	"github.com/MKhiriev/echosell-api/internal/logger"
)

// withErrorHandling is the terminal safety net of the request pipeline.
//
// Any panic escaping a downstream handler is recovered here, logged with its
// full stack trace server-side, and reduced to a uniform 500 envelope whose
// body carries only the stringified panic value, never the stack.
func (h *Handler) withErrorHandling(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				// the connection is gone, re-panic so the server drops it
				panic(rec)
			}

			log := logger.FromRequest(r)
			log.Error().
				Any("panic", rec).
				Bytes("stack", debug.Stack()).
				Msg("panic recovered in request pipeline")

			respondFailure(w, http.StatusInternalServerError, app.MsgInternalServerError,
				map[string]any{"detail": fmt.Sprint(rec)})
		}()

		next.ServeHTTP(w, r)
	})
}
