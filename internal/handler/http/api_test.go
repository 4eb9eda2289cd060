package http

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/go-resty/resty/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/echosell-api/internal/app"
	"github.com/MKhiriev/echosell-api/internal/service"
	"github.com/MKhiriev/echosell-api/models"
)

// End-to-end exercise of the HTTP surface over a real TCP listener: resty
// client, real headers, real JSON round-trips. Business logic is stubbed so
// only the transport contract is under test.

func newAPITestServer(t *testing.T, auth *stubAuthService, users *stubUserService, items *stubItemService) *resty.Client {
	t.Helper()

	ts := httptest.NewServer(newTestRouter(auth, users, items))
	t.Cleanup(ts.Close)

	return resty.New().SetBaseURL(ts.URL)
}

func TestAPI_RegisterLoginFlow(t *testing.T) {
	registered := models.User{ID: 1, Username: "john", Email: "john@example.com", IsActive: true}

	auth := &stubAuthService{
		loginFn: func(ctx context.Context, username, password string) (models.User, models.Token, error) {
			if username != "john" || password != "secret1" {
				return models.User{}, models.Token{}, service.ErrInvalidCredentials
			}
			return registered, models.Token{SignedString: "issued.jwt"}, nil
		},
	}
	users := &stubUserService{
		registerFn: func(ctx context.Context, user models.User, password string) (models.User, error) {
			return registered, nil
		},
	}
	client := newAPITestServer(t, auth, users, &stubItemService{})

	var envelope models.Response
	resp, err := client.R().
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]string{
			"username": "john",
			"email":    "john@example.com",
			"password": "secret1",
		}).
		SetResult(&envelope).
		Post("/api/v1/auth/register")

	require.NoError(t, err)
	require.Equal(t, 200, resp.StatusCode())
	assert.True(t, envelope.Success)
	assert.Equal(t, app.MsgUserRegistered, envelope.Message)

	var loginEnvelope models.Response
	resp, err = client.R().
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]string{"username": "john", "password": "secret1"}).
		SetResult(&loginEnvelope).
		Post("/api/v1/auth/login")

	require.NoError(t, err)
	require.Equal(t, 200, resp.StatusCode())

	data, ok := loginEnvelope.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "issued.jwt", data["token"])
}

func TestAPI_AuthenticatedRequestCarriesBearerToken(t *testing.T) {
	var seenToken string
	auth := &stubAuthService{
		validateTokenFn: func(ctx context.Context, tokenString string) (models.User, error) {
			seenToken = tokenString
			return models.User{ID: 1, IsActive: true}, nil
		},
	}
	users := &stubUserService{
		getFn: func(ctx context.Context, id int64) (models.User, error) {
			return models.User{ID: id, Username: "john"}, nil
		},
	}
	client := newAPITestServer(t, auth, users, &stubItemService{})

	var envelope models.Response
	resp, err := client.R().
		SetAuthToken("issued.jwt").
		SetResult(&envelope).
		Get("/api/v1/users/1")

	require.NoError(t, err)
	require.Equal(t, 200, resp.StatusCode())
	assert.Equal(t, "issued.jwt", seenToken)
	assert.Equal(t, app.MsgUserRetrieved, envelope.Message)
}

func TestAPI_UnauthorizedEnvelope(t *testing.T) {
	client := newAPITestServer(t, allowAllAuth(models.User{}), &stubUserService{}, &stubItemService{})

	var envelope models.Response
	resp, err := client.R().
		SetError(&envelope).
		Get("/api/v1/users/1")

	require.NoError(t, err)
	require.Equal(t, 401, resp.StatusCode())
	assert.False(t, envelope.Success)
	assert.Equal(t, app.MsgUnauthorized, envelope.Message)
}

func TestAPI_TraceIDHeaderRoundTrip(t *testing.T) {
	client := newAPITestServer(t, allowAllAuth(models.User{}), &stubUserService{}, &stubItemService{})

	resp, err := client.R().
		SetHeader("X-Trace-ID", "trace-abc-123").
		Get("/health")

	require.NoError(t, err)
	require.Equal(t, 200, resp.StatusCode())
	assert.Equal(t, "trace-abc-123", resp.Header().Get("X-Trace-ID"))

	// without a caller-supplied id the server mints one
	resp, err = client.R().Get("/health")
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Header().Get("X-Trace-ID"))
}

func TestAPI_RootAndHealth(t *testing.T) {
	client := newAPITestServer(t, allowAllAuth(models.User{}), &stubUserService{}, &stubItemService{})

	var root map[string]string
	resp, err := client.R().SetResult(&root).Get("/")
	require.NoError(t, err)
	require.Equal(t, 200, resp.StatusCode())
	assert.Equal(t, "Welcome to echosell-api", root["message"])
	assert.Equal(t, "1.0.0", root["version"])

	var health map[string]string
	resp, err = client.R().SetResult(&health).Get("/health")
	require.NoError(t, err)
	require.Equal(t, 200, resp.StatusCode())
	assert.Equal(t, "healthy", health["status"])
}
