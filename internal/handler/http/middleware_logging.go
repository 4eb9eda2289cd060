package http

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/MKhiriev/echosell-api/internal/logger"
)

// maxLoggedBodySize caps how many request-body bytes the logging middleware
// is willing to buffer. Bodies above the cap (or non-JSON bodies) pass
// through untouched and unlogged.
const maxLoggedBodySize = 10240

// withLogging emits exactly one structured log line per request, after the
// full response has been produced: method, URI, final status, wall-clock
// duration, response size, and (for small JSON requests) the request body.
//
// The request body is buffered once and an equivalent reader is handed to
// the downstream pipeline, so handlers observe the exact same body they
// would without logging. Requests ending in status >= 400 are logged at
// error level, everything else at info.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		start := time.Now()

		uri := r.RequestURI
		method := r.Method

		body := bufferRequestBody(r)

		lw := &responseWriter{
			ResponseWriter: w,
		}

		next.ServeHTTP(lw, r)

		duration := time.Since(start)

		event := log.Info()
		if lw.status >= http.StatusBadRequest {
			event = log.Error()
		}

		event = event.
			Str("method", method).
			Str("uri", uri).
			Int("status", lw.status).
			Dur("duration", duration).
			Int("size", lw.size)

		if len(body) > 0 {
			if json.Valid(body) {
				event = event.RawJSON("request_body", body)
			} else {
				event = event.Str("request_body", "unparsable")
			}
		}

		event.Send()
	})
}

// bufferRequestBody reads the request body into memory when it is small
// enough and declared as JSON, and replaces r.Body with an equivalent
// reader so downstream handlers can read it again.
//
// Returns nil for non-JSON bodies, bodies above maxLoggedBodySize, and
// read failures (in which case the original body is left untouched).
func bufferRequestBody(r *http.Request) []byte {
	if r.Body == nil || r.ContentLength <= 0 || r.ContentLength > maxLoggedBodySize {
		return nil
	}
	if !strings.HasPrefix(r.Header.Get("Content-Type"), "application/json") {
		return nil
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, maxLoggedBodySize))
	if err != nil {
		return nil
	}
	r.Body.Close()
	r.Body = io.NopCloser(bytes.NewReader(body))

	return body
}
