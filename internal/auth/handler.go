package auth

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/bodyinsight/booking-platform/internal/httpx"
	"github.com/bodyinsight/booking-platform/pkg/logging"
)

// Handler exposes the OTP login endpoints.
type Handler struct {
	service *Service
	logger  *logging.Logger
}

// NewHandler creates the auth handler.
func NewHandler(service *Service, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{service: service, logger: logger}
}

type loginRequest struct {
	Email string `json:"email"`
}

// Login handles POST /login: send an OTP to the email.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.Message(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.service.SendOTP(r.Context(), req.Email); err != nil {
		if errors.Is(err, ErrInvalidEmail) {
			httpx.Message(w, http.StatusBadRequest, err.Error())
			return
		}
		h.logger.Error("failed to send otp", "error", err)
		httpx.Message(w, http.StatusInternalServerError, "Failed to send OTP")
		return
	}

	httpx.Message(w, http.StatusOK, "OTP sent")
}

type verifyRequest struct {
	Email string `json:"email"`
	OTP   string `json:"otp"`
}

type verifyResponse struct {
	Token      string   `json:"token"`
	Profile    *Profile `json:"profile,omitempty"`
	IsComplete bool     `json:"isComplete"`
}

// VerifyLoginOTP handles POST /verifyLoginOtp.
func (h *Handler) VerifyLoginOTP(w http.ResponseWriter, r *http.Request) {
	var req verifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.Message(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.service.VerifyOTP(r.Context(), req.Email, req.OTP)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidEmail),
			errors.Is(err, ErrOTPMismatch),
			errors.Is(err, ErrOTPExpired),
			errors.Is(err, ErrTooManyAttempts):
			httpx.Message(w, http.StatusBadRequest, err.Error())
		default:
			h.logger.Error("failed to verify otp", "error", err)
			httpx.Message(w, http.StatusInternalServerError, "Failed to verify OTP")
		}
		return
	}

	httpx.JSON(w, http.StatusOK, verifyResponse{
		Token:      result.Token,
		Profile:    result.Profile,
		IsComplete: result.IsComplete,
	})
}
