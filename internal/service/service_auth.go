package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/echosell-api/internal/config"
	"github.com/MKhiriev/echosell-api/internal/logger"
	"github.com/MKhiriev/echosell-api/internal/store"
	"github.com/MKhiriev/echosell-api/internal/utils"
	"github.com/MKhiriev/echosell-api/models"
)

// authService is the concrete implementation of [AuthService].
// It handles credential verification and the JWT token lifecycle using a
// [UserService] for account access and a [store.TokenCache] for auxiliary
// token presence tracking.
type authService struct {
	// userService performs credential verification and user lookups.
	userService UserService

	// tokenCache tracks issued tokens in Redis. The cache is best-effort:
	// its failures never break login or logout.
	tokenCache store.TokenCache

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// tokenCacheTTL controls how long an issued token is tracked by the
	// cache. It is independent of tokenDuration.
	tokenCacheTTL time.Duration

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs an [AuthService] wired to the given user service
// and token cache, populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(userService UserService, tokenCache store.TokenCache, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userService:   userService,
		tokenCache:    tokenCache,
		tokenSignKey:  cfg.TokenSignKey,
		tokenIssuer:   cfg.TokenIssuer,
		tokenDuration: cfg.TokenDuration,
		tokenCacheTTL: cfg.TokenCacheTTL,
		logger:        logger,
	}
}

// Login authenticates the credentials, issues a signed token, and records it
// in the token cache with the configured cache TTL.
//
// A cache write failure is logged and swallowed: the cache is an auxiliary
// presence marker and token validity remains signature/expiry-based.
func (a *authService) Login(ctx context.Context, username, password string) (models.User, models.Token, error) {
	log := logger.FromContext(ctx)

	user, err := a.userService.Authenticate(ctx, username, password)
	if err != nil {
		return models.User{}, models.Token{}, err
	}

	token, err := a.CreateToken(ctx, user)
	if err != nil {
		return models.User{}, models.Token{}, err
	}

	if err := a.tokenCache.Cache(ctx, token.SignedString, a.tokenCacheTTL); err != nil {
		log.Err(err).Str("username", username).Msg("token caching failed")
	}

	log.Info().Str("username", username).Msg("login success")

	return user, token, nil
}

// Logout evicts the token's cache entry. The signed token itself remains
// valid until its embedded expiry; only the presence marker is removed.
func (a *authService) Logout(ctx context.Context, token string) error {
	log := logger.FromContext(ctx)

	if err := a.tokenCache.Evict(ctx, token); err != nil {
		log.Err(err).Msg("token eviction failed")
		return err
	}

	log.Info().Msg("logout success")

	return nil
}

// CreateToken issues a signed JWT for the given user.
//
// The token is signed with the configured tokenSignKey, carries the
// configured tokenIssuer as the "iss" claim, and expires after
// tokenDuration.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.ID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// Any validation failure (expired, wrong issuer, bad signature, malformed)
// is normalised to [ErrTokenIsExpiredOrInvalid] so that callers do not need
// to inspect low-level JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}

// ValidateToken parses the token and resolves its subject to an existing,
// active user.
//
// The token cache is deliberately NOT consulted here: absence from the cache
// does not invalidate a still-unexpired signed token.
func (a *authService) ValidateToken(ctx context.Context, tokenString string) (models.User, error) {
	log := logger.FromContext(ctx)

	token, err := a.ParseToken(ctx, tokenString)
	if err != nil {
		return models.User{}, err
	}

	user, err := a.userService.Get(ctx, token.UserID)
	if err != nil {
		log.Err(err).Int64("user_id", token.UserID).Msg("token subject lookup failed")
		return models.User{}, ErrTokenIsExpiredOrInvalid
	}

	if !user.IsActive {
		log.Error().Int64("user_id", user.ID).Msg("inactive user presented a valid token")
		return models.User{}, ErrUserIsInactive
	}

	return user, nil
}
