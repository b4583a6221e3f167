// internal/api/handler/account.go
package handler

import (
	"log/slog"
	"net/http"

	"github.com/shopspring/decimal"

	"celestial-store/internal/domain"
	"celestial-store/internal/service"
	"celestial-store/internal/util"
)

// AccountHandler handles registration, login and top-up requests.
type AccountHandler struct {
	responder
	service service.AccountService
}

// NewAccountHandler creates a new AccountHandler.
func NewAccountHandler(svc service.AccountService, logger *slog.Logger) *AccountHandler {
	return &AccountHandler{
		responder: responder{logger: logger},
		service:   svc,
	}
}

// RegisterRequest is the request body for registration. The hasher enforces
// bcrypt's 72-byte password limit.
type RegisterRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginRequest is the request body for login. Any password that is present,
// even empty, goes to the credential check.
type LoginRequest struct {
	Username string  `json:"username" validate:"required"`
	Password *string `json:"password" validate:"required"`
}

// Register handles user registration.
// POST /api/register
func (h *AccountHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := h.decodeRequest(r, &req); err != nil {
		h.respondWithError(w, err)
		return
	}

	if _, err := h.service.Register(r.Context(), req.Username, req.Password); err != nil {
		h.respondWithError(w, err)
		return
	}

	h.respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Registered successfully",
	})
}

// Login handles the login request and reports the current balance.
// POST /api/login
func (h *AccountHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := h.decodeRequest(r, &req); err != nil {
		h.respondWithError(w, err)
		return
	}

	user, err := h.service.Login(r.Context(), req.Username, *req.Password)
	if err != nil {
		h.respondWithError(w, err)
		return
	}

	h.respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Logged in",
		"balance": user.Balance,
	})
}

// TopUpRequest is the request body for a balance top-up. The amount is not
// sign-checked, but must fit the balance column exactly.
type TopUpRequest struct {
	Username string           `json:"username" validate:"required"`
	Amount   *decimal.Decimal `json:"amount" validate:"required"`
}

// TopUp handles the balance top-up request.
// POST /api/topup
func (h *AccountHandler) TopUp(w http.ResponseWriter, r *http.Request) {
	var req TopUpRequest
	if err := h.decodeRequest(r, &req); err != nil {
		h.respondWithError(w, err)
		return
	}
	if !domain.ValidAmount(*req.Amount) {
		h.logger.Debug("Rejected top-up amount", "amount", req.Amount.String())
		h.respondWithError(w, util.ErrInvalidInput)
		return
	}

	balance, err := h.service.TopUp(r.Context(), req.Username, *req.Amount)
	if err != nil {
		h.respondWithError(w, err)
		return
	}

	h.respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"balance": balance,
	})
}
