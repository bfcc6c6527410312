package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/flexisourceit/employee-record-api/internal/logger"
	"github.com/flexisourceit/employee-record-api/internal/service"
	"github.com/flexisourceit/employee-record-api/internal/utils"
	"github.com/flexisourceit/employee-record-api/models"
)

// generateToken handles POST /GenerateToken.
//
// Issuance is unconditional: no password or ownership check backs the email
// and userId supplied by the caller. That is the documented contract of the
// system — the token only proves that the bearer went through this endpoint.
func (h *Handler) generateToken(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.TokenRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, request)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			http.Error(w, "invalid data provided", http.StatusBadRequest)
			return
		default:
			log.Err(err).Msg("creation of token failed")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	log.Debug().Str("email", request.Email).Int64("user_id", request.UserID).Msg("token issued")

	utils.WriteJSON(w, models.TokenResponse{TokenString: token.SignedString}, http.StatusOK)
}
