package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// TokenClaims is the claim set carried by every issued bearer token.
//
// It embeds [jwt.RegisteredClaims] for the standard claims (jti, sub, iss,
// aud, iat, exp) and adds the application-specific email and userId claims.
type TokenClaims struct {
	jwt.RegisteredClaims

	// Email duplicates the subject claim for clients that read it directly.
	Email string `json:"email"`

	// UserID identifies the caller the token was issued for. The service
	// performs no ownership check on it; see the token handler documentation.
	UserID int64 `json:"userId"`
}

// Token wraps a JWT token with convenience accessors for authentication flows.
//
// SignedString holds the compact serialized form of the token
// (header.payload.signature) ready to be transmitted in HTTP headers.
type Token struct {
	// Token is the underlying JWT token used for signing and claim inspection.
	// Excluded from JSON serialization because only the compact string form
	// is meaningful outside the server process.
	*jwt.Token `json:"-"`

	// Claims is the decoded claim set of the token.
	Claims TokenClaims `json:"-"`

	// SignedString is the compact JWS representation of the token
	// (base64url-encoded header.payload.signature).
	SignedString string `json:"-"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}
