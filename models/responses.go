package models

// TokenResponse is the body returned by POST /GenerateToken.
type TokenResponse struct {
	// TokenString is the compact JWS serialization of the issued token,
	// to be presented as "Authorization: Bearer <tokenString>".
	TokenString string `json:"tokenString"`
}
