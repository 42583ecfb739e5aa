package booking

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/bodyinsight/booking-platform/internal/auth"
	"github.com/bodyinsight/booking-platform/internal/httpx"
	"github.com/bodyinsight/booking-platform/internal/schedule"
	"github.com/bodyinsight/booking-platform/pkg/logging"
)

// Handler exposes the authenticated booking endpoints.
type Handler struct {
	service *Service
	logger  *logging.Logger
}

// NewHandler creates the booking handler.
func NewHandler(service *Service, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{service: service, logger: logger}
}

type tokenRequest struct {
	Token string `json:"token"`
}

// CheckPendingAppointment handles POST /checkPendingAppointment.
func (h *Handler) CheckPendingAppointment(w http.ResponseWriter, r *http.Request) {
	var req tokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.Message(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	status, err := h.service.CheckPending(r.Context(), req.Token)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidToken) {
			httpx.Message(w, http.StatusUnauthorized, "Session expired. Please log in again.")
			return
		}
		h.logger.Error("pending check failed", "error", err)
		httpx.Message(w, http.StatusInternalServerError, "Failed to check pending appointment")
		return
	}
	httpx.JSON(w, http.StatusOK, status)
}

type getAppointmentRequest struct {
	AppointmentID string `json:"appointmentId"`
}

type getAppointmentResponse struct {
	Appointment *schedule.Appointment `json:"appointment"`
	Event       *schedule.EventInfo   `json:"event"`
}

// GetAppointment handles POST /getAppointment.
func (h *Handler) GetAppointment(w http.ResponseWriter, r *http.Request) {
	var req getAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.Message(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	appt, event, err := h.service.GetAppointment(r.Context(), req.AppointmentID)
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrAppointmentNotFound):
			httpx.Message(w, http.StatusNotFound, "Appointment not found")
		case errors.Is(err, schedule.ErrEventFull):
			httpx.Message(w, http.StatusConflict, "This event is fully booked")
		default:
			h.logger.Error("get appointment failed", "appointment_id", req.AppointmentID, "error", err)
			httpx.Message(w, http.StatusInternalServerError, "Failed to fetch appointment")
		}
		return
	}

	info := event.Info()
	httpx.JSON(w, http.StatusOK, getAppointmentResponse{Appointment: appt, Event: &info})
}

type cancelRequest struct {
	Token         string `json:"token"`
	AppointmentID string `json:"appointmentId"`
}

// CancelUpcomingAppointment handles POST /cancelUpcomingAppointment.
func (h *Handler) CancelUpcomingAppointment(w http.ResponseWriter, r *http.Request) {
	var req cancelRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.Message(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	err := h.service.Cancel(r.Context(), req.Token, req.AppointmentID)
	switch {
	case err == nil:
		httpx.Message(w, http.StatusOK, "Your appointment has been cancelled")
	case errors.Is(err, auth.ErrInvalidToken):
		httpx.Message(w, http.StatusUnauthorized, "Session expired. Please log in again.")
	case errors.Is(err, ErrBookingNotFound):
		httpx.Message(w, http.StatusNotFound, "No upcoming appointment to cancel")
	default:
		h.logger.Error("cancel failed", "appointment_id", req.AppointmentID, "error", err)
		httpx.Message(w, http.StatusInternalServerError, "Failed to cancel appointment")
	}
}

type applyCouponRequest struct {
	Token         string `json:"token"`
	AppointmentID string `json:"appointmentId"`
	Code          string `json:"code"`
}

type applyCouponResponse struct {
	Pricing
	Message string `json:"message"`
}

// ApplyCouponCode handles POST /applyCouponCode.
func (h *Handler) ApplyCouponCode(w http.ResponseWriter, r *http.Request) {
	var req applyCouponRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.Message(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	quote, coupon, err := h.service.ApplyCoupon(r.Context(), req.Token, req.AppointmentID, req.Code)
	switch {
	case err == nil:
		httpx.JSON(w, http.StatusOK, applyCouponResponse{
			Pricing: *quote,
			Message: fmt.Sprintf("Coupon applied: %s", coupon.Label),
		})
	case errors.Is(err, auth.ErrInvalidToken):
		httpx.Message(w, http.StatusUnauthorized, "Session expired. Please log in again.")
	case errors.Is(err, ErrInvalidCoupon):
		httpx.Message(w, http.StatusUnprocessableEntity, "Invalid coupon code")
	case errors.Is(err, schedule.ErrAppointmentNotFound):
		httpx.Message(w, http.StatusNotFound, "Appointment not found")
	case errors.Is(err, schedule.ErrEventFull):
		httpx.Message(w, http.StatusConflict, "This event is fully booked")
	default:
		h.logger.Error("coupon apply failed", "error", err)
		httpx.Message(w, http.StatusInternalServerError, "Failed to apply coupon")
	}
}

type bookResponse struct {
	Message   string  `json:"message"`
	RefNumber string  `json:"refNumber"`
	Pricing   Pricing `json:"pricing"`
}

// BookAppointment handles POST /bookAppointment.
func (h *Handler) BookAppointment(w http.ResponseWriter, r *http.Request) {
	var req BookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.Message(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	b, err := h.service.Book(r.Context(), req)
	switch {
	case err == nil:
		httpx.JSON(w, http.StatusOK, bookResponse{
			Message:   "Your scan is booked",
			RefNumber: b.RefNumber,
			Pricing: Pricing{
				BasePrice:  b.BasePrice,
				Discount:   b.Discount,
				FinalPrice: b.FinalPrice,
			},
		})
	case errors.Is(err, auth.ErrInvalidToken):
		httpx.Message(w, http.StatusUnauthorized, "Session expired. Please log in again.")
	case errors.Is(err, ErrIncompleteDetails):
		httpx.Message(w, http.StatusBadRequest, "Name and date of birth are required")
	case errors.Is(err, ErrPendingExists):
		httpx.Message(w, http.StatusConflict, "You already have an upcoming appointment")
	case errors.Is(err, ErrInvalidCoupon):
		httpx.Message(w, http.StatusUnprocessableEntity, "Invalid coupon code")
	case errors.Is(err, schedule.ErrAppointmentNotFound):
		httpx.Message(w, http.StatusNotFound, "Appointment not found")
	case errors.Is(err, schedule.ErrEventFull):
		httpx.Message(w, http.StatusConflict, "This event is fully booked")
	default:
		h.logger.Error("booking failed", "error", err)
		httpx.Message(w, http.StatusInternalServerError, "Failed to book appointment")
	}
}
