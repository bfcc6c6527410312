package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flexisourceit/employee-record-api/models"
)

const (
	testIssuer   = "test-issuer"
	testAudience = "test-audience"
	testSignKey  = "test-sign-key"
)

func TestGenerateJWTToken_Success(t *testing.T) {
	token, err := GenerateJWTToken(testIssuer, testAudience, "ana@example.com", 42, time.Hour, testSignKey)
	require.NoError(t, err)

	require.NotEmpty(t, token.SignedString)
	assert.NotEmpty(t, token.Claims.ID, "jti must be populated")
	assert.Equal(t, "ana@example.com", token.Claims.Subject)
	assert.Equal(t, "ana@example.com", token.Claims.Email)
	assert.Equal(t, int64(42), token.Claims.UserID)
	assert.Equal(t, testIssuer, token.Claims.Issuer)
	assert.Equal(t, jwt.ClaimStrings{testAudience}, token.Claims.Audience)

	// expiry should be one tokenDuration after issuance
	assert.WithinDuration(t,
		token.Claims.IssuedAt.Add(time.Hour),
		token.Claims.ExpiresAt.Time,
		time.Second,
	)
}

func TestGenerateJWTToken_FreshTokenIDPerCall(t *testing.T) {
	first, err := GenerateJWTToken(testIssuer, testAudience, "ana@example.com", 42, time.Hour, testSignKey)
	require.NoError(t, err)

	second, err := GenerateJWTToken(testIssuer, testAudience, "ana@example.com", 42, time.Hour, testSignKey)
	require.NoError(t, err)

	assert.NotEqual(t, first.Claims.ID, second.Claims.ID)
}

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name     string
		issuer   string
		audience string
		email    string
		duration time.Duration
		signKey  string
	}{
		{name: "empty issuer", audience: testAudience, email: "a@b.c", duration: time.Hour, signKey: testSignKey},
		{name: "empty audience", issuer: testIssuer, email: "a@b.c", duration: time.Hour, signKey: testSignKey},
		{name: "empty email", issuer: testIssuer, audience: testAudience, duration: time.Hour, signKey: testSignKey},
		{name: "zero duration", issuer: testIssuer, audience: testAudience, email: "a@b.c", signKey: testSignKey},
		{name: "empty sign key", issuer: testIssuer, audience: testAudience, email: "a@b.c", duration: time.Hour},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateJWTToken(tt.issuer, tt.audience, tt.email, 1, tt.duration, tt.signKey)
			require.Error(t, err)
		})
	}
}

func TestValidateAndParseJWTToken_RoundTrip(t *testing.T) {
	issued, err := GenerateJWTToken(testIssuer, testAudience, "ana@example.com", 42, time.Hour, testSignKey)
	require.NoError(t, err)

	parsed, err := ValidateAndParseJWTToken(issued.SignedString, testSignKey, testIssuer, testAudience)
	require.NoError(t, err)

	assert.Equal(t, issued.Claims.ID, parsed.Claims.ID)
	assert.Equal(t, "ana@example.com", parsed.Claims.Subject)
	assert.Equal(t, "ana@example.com", parsed.Claims.Email)
	assert.Equal(t, int64(42), parsed.Claims.UserID)
}

func TestValidateAndParseJWTToken_Rejections(t *testing.T) {
	issued, err := GenerateJWTToken(testIssuer, testAudience, "ana@example.com", 42, time.Hour, testSignKey)
	require.NoError(t, err)

	tests := []struct {
		name     string
		token    string
		signKey  string
		issuer   string
		audience string
	}{
		{name: "wrong sign key", token: issued.SignedString, signKey: "another-key", issuer: testIssuer, audience: testAudience},
		{name: "wrong issuer", token: issued.SignedString, signKey: testSignKey, issuer: "someone-else", audience: testAudience},
		{name: "wrong audience", token: issued.SignedString, signKey: testSignKey, issuer: testIssuer, audience: "not-for-you"},
		{name: "garbage token", token: "not.a.jwt", signKey: testSignKey, issuer: testIssuer, audience: testAudience},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ValidateAndParseJWTToken(tt.token, tt.signKey, tt.issuer, tt.audience)
			require.Error(t, err)
		})
	}
}

func TestValidateAndParseJWTToken_Expired(t *testing.T) {
	// Craft a token that expired one minute ago.
	expired := signTestToken(t, models.TokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        "test-id",
			Subject:   "ana@example.com",
			Issuer:    testIssuer,
			Audience:  jwt.ClaimStrings{testAudience},
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
		Email:  "ana@example.com",
		UserID: 42,
	})

	_, err := ValidateAndParseJWTToken(expired, testSignKey, testIssuer, testAudience)
	require.Error(t, err)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestValidateAndParseJWTToken_LifetimeBoundary(t *testing.T) {
	// Issued an hour ago with a one-hour lifetime: a token presented just
	// before the boundary is accepted, just after it is rejected.
	issuedAt := time.Now().Add(-time.Hour)

	stillValid := signTestToken(t, models.TokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "ana@example.com",
			Issuer:    testIssuer,
			Audience:  jwt.ClaimStrings{testAudience},
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(time.Hour + time.Minute)),
		},
		Email: "ana@example.com",
	})
	_, err := ValidateAndParseJWTToken(stillValid, testSignKey, testIssuer, testAudience)
	require.NoError(t, err)

	justExpired := signTestToken(t, models.TokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "ana@example.com",
			Issuer:    testIssuer,
			Audience:  jwt.ClaimStrings{testAudience},
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(time.Hour - time.Minute)),
		},
		Email: "ana@example.com",
	})
	_, err = ValidateAndParseJWTToken(justExpired, testSignKey, testIssuer, testAudience)
	require.Error(t, err)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestValidateAndParseJWTToken_EmptySubject(t *testing.T) {
	noSubject := signTestToken(t, models.TokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    testIssuer,
			Audience:  jwt.ClaimStrings{testAudience},
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
		Email: "ana@example.com",
	})

	_, err := ValidateAndParseJWTToken(noSubject, testSignKey, testIssuer, testAudience)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty subject")
}

func signTestToken(t *testing.T, claims models.TokenClaims) string {
	t.Helper()

	tokenString, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSignKey))
	require.NoError(t, err)
	return tokenString
}
