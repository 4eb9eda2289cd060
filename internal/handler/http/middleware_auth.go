// SPDX-License-Identifier: Apache-2.0

// Package http implements the HTTP transport layer of the application.
// It provides middleware, route handlers, and request/response utilities
// for the REST API. Tracing, request logging, authentication, and error
// translation concerns are all handled at this layer before requests are
// forwarded to the service layer.
package http

import (
	"context"
	"net/http"
	"strings"

	"github.com/MKhiriev/echosell-api/internal/app"
	"github.com/MKhiriev/echosell-api/internal/logger"
	"github.com/MKhiriev/echosell-api/internal/utils"
)

// fallbackTokenHeader is the custom single-value header accepted when no
// "Authorization" header is present.
const fallbackTokenHeader = "X-Token"

// exemptPaths lists the exact request paths that bypass the authentication
// gate: liveness endpoints, docs, and the auth flow itself.
var exemptPaths = map[string]struct{}{
	"/":                     {},
	"/health":               {},
	"/docs":                 {},
	"/api/v1/auth/register": {},
	"/api/v1/auth/login":    {},
	"/api/v1/auth/logout":   {},
}

// auth is the per-request authentication gate.
//
// Exempt paths proceed unauthenticated. For every other request it extracts
// a token, preferring "Authorization: Bearer <token>" over the fallback
// X-Token header, validates it via [service.AuthService.ValidateToken], and
// on success stores the resolved active user in the request context under
// [utils.UserCtxKey] before delegating to the next handler.
//
// The middleware rejects with a uniform 401 envelope, never invoking the
// downstream handler, when:
//   - no token is present in either header;
//   - the token is malformed, carries a bad signature, or has expired;
//   - the token's subject does not resolve to an existing user;
//   - the resolved user is inactive.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, exempt := exemptPaths[r.URL.Path]; exempt {
			next.ServeHTTP(w, r)
			return
		}

		log := logger.FromRequest(r)

		tokenString, err := getTokenFromRequest(r)
		if err != nil {
			log.Err(err).Send()
			respondMessage(w, http.StatusUnauthorized, app.MsgUnauthorized)
			return
		}

		ctx := r.Context()
		user, err := h.services.AuthService.ValidateToken(ctx, tokenString)
		if err != nil {
			log.Err(err).Msg("token validation failed")
			respondMessage(w, http.StatusUnauthorized, app.MsgUnauthorized)
			return
		}

		// Store the authenticated user in the context so that downstream
		// handlers can retrieve it without re-parsing the token.
		ctx = context.WithValue(ctx, utils.UserCtxKey, user)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// getTokenFromRequest extracts the bearer token from the request headers.
//
// The "Authorization" header is preferred and expected in the standard
// "<scheme> <token>" format; when it is absent, the raw value of the
// X-Token header is accepted instead.
//
// It returns the following sentinel errors:
//   - [ErrInvalidAuthorizationHeader]: an Authorization header with fewer
//     than two space-separated parts.
//   - [ErrEmptyToken]: a scheme prefix followed by an empty token.
//   - [ErrNoTokenProvided]: neither header carries a token.
func getTokenFromRequest(r *http.Request) (string, error) {
	if authHeader := r.Header.Get("Authorization"); authHeader != "" {
		parts := strings.Split(authHeader, " ")
		if len(parts) < 2 {
			return "", ErrInvalidAuthorizationHeader
		}

		tokenString := parts[1]
		if tokenString == "" {
			return "", ErrEmptyToken
		}

		return tokenString, nil
	}

	if tokenString := r.Header.Get(fallbackTokenHeader); tokenString != "" {
		return tokenString, nil
	}

	return "", ErrNoTokenProvided
}
