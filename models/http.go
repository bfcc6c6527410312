package models

// TokenRequest is the body of POST /GenerateToken.
//
// No credential accompanies the request: any non-empty email together with
// any userId yields a valid token. This mirrors the historical contract.
type TokenRequest struct {
	// Email becomes the subject and email claims of the issued token.
	Email string `json:"email"`

	// UserID becomes the userId claim of the issued token.
	UserID int64 `json:"userId"`
}

// TemperatureRange is the body of POST /GetByTemperatureRange.
//
// Both bounds are inclusive. The service does not validate that
// MinTemperature <= MaxTemperature; an inverted range matches nothing.
type TemperatureRange struct {
	MinTemperature float64 `json:"minTemperature"`
	MaxTemperature float64 `json:"maxTemperature"`
}

// DateRange is the body of POST /GetByDateRange.
//
// Both bounds are inclusive. An inverted range matches nothing.
type DateRange struct {
	StartDate Date `json:"startDate"`
	EndDate   Date `json:"endDate"`
}
