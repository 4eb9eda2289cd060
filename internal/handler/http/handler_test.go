package http

import (
	"context"
	"net/http"
	"net/http/httptest"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/echosell-api/internal/config"
	"github.com/MKhiriev/echosell-api/internal/logger"
	"github.com/MKhiriev/echosell-api/internal/service"
	"github.com/MKhiriev/echosell-api/models"
)

// Stub services with per-method function hooks. Unset hooks fail the request
// with an unmapped error so tests only exercise what they wire up.

type stubAuthService struct {
	loginFn         func(ctx context.Context, username, password string) (models.User, models.Token, error)
	logoutFn        func(ctx context.Context, token string) error
	validateTokenFn func(ctx context.Context, tokenString string) (models.User, error)
}

func (s *stubAuthService) Login(ctx context.Context, username, password string) (models.User, models.Token, error) {
	return s.loginFn(ctx, username, password)
}

func (s *stubAuthService) Logout(ctx context.Context, token string) error {
	return s.logoutFn(ctx, token)
}

func (s *stubAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	return models.Token{}, service.ErrTokenCreationFailed
}

func (s *stubAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return models.Token{}, service.ErrTokenIsExpiredOrInvalid
}

func (s *stubAuthService) ValidateToken(ctx context.Context, tokenString string) (models.User, error) {
	return s.validateTokenFn(ctx, tokenString)
}

type stubUserService struct {
	registerFn func(ctx context.Context, user models.User, password string) (models.User, error)
	getFn      func(ctx context.Context, id int64) (models.User, error)
	listFn     func(ctx context.Context, offset, limit int) ([]models.User, int64, error)
	updateFn   func(ctx context.Context, id int64, patch models.UserUpdate) (models.User, error)
	deleteFn   func(ctx context.Context, id int64) error
}

func (s *stubUserService) Register(ctx context.Context, user models.User, password string) (models.User, error) {
	return s.registerFn(ctx, user, password)
}

func (s *stubUserService) Authenticate(ctx context.Context, username, password string) (models.User, error) {
	return models.User{}, service.ErrInvalidCredentials
}

func (s *stubUserService) Get(ctx context.Context, id int64) (models.User, error) {
	return s.getFn(ctx, id)
}

func (s *stubUserService) List(ctx context.Context, offset, limit int) ([]models.User, int64, error) {
	return s.listFn(ctx, offset, limit)
}

func (s *stubUserService) Update(ctx context.Context, id int64, patch models.UserUpdate) (models.User, error) {
	return s.updateFn(ctx, id, patch)
}

func (s *stubUserService) Delete(ctx context.Context, id int64) error {
	return s.deleteFn(ctx, id)
}

type stubItemService struct {
	createFn      func(ctx context.Context, item models.Item, ownerID int64) (models.Item, error)
	getFn         func(ctx context.Context, id int64) (models.Item, error)
	listAllFn     func(ctx context.Context, offset, limit int) ([]models.Item, int64, error)
	listByOwnerFn func(ctx context.Context, ownerID int64, offset, limit int) ([]models.Item, int64, error)
	updateFn      func(ctx context.Context, id int64, patch models.ItemUpdate) (models.Item, error)
	deleteFn      func(ctx context.Context, id int64) error
}

func (s *stubItemService) Create(ctx context.Context, item models.Item, ownerID int64) (models.Item, error) {
	return s.createFn(ctx, item, ownerID)
}

func (s *stubItemService) Get(ctx context.Context, id int64) (models.Item, error) {
	return s.getFn(ctx, id)
}

func (s *stubItemService) ListAll(ctx context.Context, offset, limit int) ([]models.Item, int64, error) {
	return s.listAllFn(ctx, offset, limit)
}

func (s *stubItemService) ListByOwner(ctx context.Context, ownerID int64, offset, limit int) ([]models.Item, int64, error) {
	return s.listByOwnerFn(ctx, ownerID, offset, limit)
}

func (s *stubItemService) Update(ctx context.Context, id int64, patch models.ItemUpdate) (models.Item, error) {
	return s.updateFn(ctx, id, patch)
}

func (s *stubItemService) Delete(ctx context.Context, id int64) error {
	return s.deleteFn(ctx, id)
}

// allowAllAuth lets every request through the auth gate as the given user.
func allowAllAuth(user models.User) *stubAuthService {
	return &stubAuthService{
		validateTokenFn: func(ctx context.Context, tokenString string) (models.User, error) {
			return user, nil
		},
	}
}

func testConfig() config.App {
	return config.App{ProjectName: "echosell-api", Version: "1.0.0"}
}

// newTestRouter builds the full middleware+routes pipeline around the given
// stub services.
func newTestRouter(auth *stubAuthService, users *stubUserService, items *stubItemService) *chi.Mux {
	h := NewHandler(&service.Services{
		AuthService: auth,
		UserService: users,
		ItemService: items,
	}, testConfig(), logger.Nop())

	return h.Init()
}

// doRequest runs one request through the router and returns the recorder.
func doRequest(router http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

// authedRequest attaches a syntactically valid bearer token; the stub auth
// service decides whether it is accepted.
func authedRequest(req *http.Request) *http.Request {
	req.Header.Set("Authorization", "Bearer test-token")
	return req
}
