package contact

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/bodyinsight/booking-platform/internal/httpx"
	"github.com/bodyinsight/booking-platform/internal/notify"
	"github.com/bodyinsight/booking-platform/pkg/logging"
)

// Handler exposes the public contact endpoint.
type Handler struct {
	repo     Repository
	notifier *notify.Service
	logger   *logging.Logger
}

// NewHandler creates the contact handler.
func NewHandler(repo Repository, notifier *notify.Service, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{repo: repo, notifier: notifier, logger: logger}
}

type contactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone,omitempty"`
	Subject string `json:"subject,omitempty"`
	Message string `json:"message"`
}

// ContactUs handles POST /contactUs.
func (h *Handler) ContactUs(w http.ResponseWriter, r *http.Request) {
	var req contactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.Message(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	msg := Message{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Subject: req.Subject,
		Body:    req.Message,
	}
	if err := msg.Validate(); err != nil {
		if errors.Is(err, ErrInvalidSubmission) {
			httpx.Message(w, http.StatusBadRequest, "Please fill in your name, email and message")
			return
		}
		httpx.Message(w, http.StatusBadRequest, "Invalid submission")
		return
	}

	if err := h.repo.Create(r.Context(), &msg); err != nil {
		h.logger.Error("failed to store contact message", "error", err)
		httpx.Message(w, http.StatusInternalServerError, "Failed to send message")
		return
	}

	if h.notifier != nil {
		h.notifier.ForwardContactMessage(r.Context(), msg.Email, msg.Subject, msg.Body)
	}

	httpx.Message(w, http.StatusOK, "Thanks for reaching out. We'll get back to you within a day.")
}
