package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/flexisourceit/employee-record-api/internal/config"
	"github.com/flexisourceit/employee-record-api/internal/logger"
	"github.com/flexisourceit/employee-record-api/internal/utils"
	"github.com/flexisourceit/employee-record-api/models"
)

// authService is the concrete implementation of AuthService.
// It signs and verifies HMAC-SHA256 JWT tokens; no user store is involved.
//
// Token issuance deliberately performs no credential check: any non-empty
// email paired with any userId yields a valid token. This mirrors the
// historical contract of the system and is a known scope boundary, not an
// oversight — the gate distinguishes only "authenticated" from "not".
type authService struct {
	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenAudience is the "aud" claim embedded in every issued JWT.
	// Tokens whose audience does not match this value are rejected during parsing.
	tokenAudience string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService populated with security
// parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(cfg config.Auth, logger *logger.Logger) AuthService {
	return &authService{
		tokenSignKey:  cfg.TokenSignKey,
		tokenIssuer:   cfg.TokenIssuer,
		tokenAudience: cfg.TokenAudience,
		tokenDuration: cfg.TokenDuration,
		logger:        logger,
	}
}

// CreateToken issues a signed JWT for the given request.
//
// The token is signed with the configured tokenSignKey, carries the
// configured issuer and audience claims, a fresh random token identifier,
// and expires after tokenDuration. Every call is independent; nothing is
// stored server-side.
//
// Returns ErrInvalidDataProvided when the email is empty, or a wrapped error
// if JWT generation fails.
func (a *authService) CreateToken(ctx context.Context, request models.TokenRequest) (models.Token, error) {
	log := logger.FromContext(ctx)

	if request.Email == "" {
		log.Error().Msg("empty email in token request")
		return models.Token{}, ErrInvalidDataProvided
	}

	token, err := utils.GenerateJWTToken(a.tokenIssuer, a.tokenAudience, request.Email, request.UserID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// It delegates to utils.ValidateAndParseJWTToken, verifying the signature,
// the issuer claim, the audience claim, and the expiration time. Expired
// tokens are reported as ErrTokenIsExpired; every other validation failure
// (bad signature, wrong issuer or audience, malformed token) is normalised
// to ErrTokenIsExpiredOrInvalid so that callers do not need to inspect
// low-level JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer, a.tokenAudience)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return models.Token{}, ErrTokenIsExpired
		}
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}
