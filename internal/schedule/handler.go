package schedule

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/bodyinsight/booking-platform/internal/httpx"
	"github.com/bodyinsight/booking-platform/pkg/logging"
)

// Handler exposes the public schedule endpoints.
type Handler struct {
	service *Service
	logger  *logging.Logger
}

// NewHandler creates the schedule handler.
func NewHandler(service *Service, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{service: service, logger: logger}
}

type listEventsResponse struct {
	Events []Event `json:"events"`
}

// ListEvents handles POST /schedule.
func (h *Handler) ListEvents(w http.ResponseWriter, r *http.Request) {
	events, err := h.service.ListEvents(r.Context())
	if err != nil {
		h.logger.Error("failed to list events", "error", err)
		httpx.Message(w, http.StatusInternalServerError, "Failed to fetch schedule")
		return
	}
	if events == nil {
		events = []Event{}
	}
	httpx.JSON(w, http.StatusOK, listEventsResponse{Events: events})
}

type findAppointmentsRequest struct {
	EventID int `json:"eventId"`
}

type findAppointmentsResponse struct {
	Appointments []Appointment `json:"appointments"`
	Event        *EventInfo    `json:"event"`
	Promo        string        `json:"promo"`
}

// FindAvailableAppointments handles POST /findAvailableAppointments.
func (h *Handler) FindAvailableAppointments(w http.ResponseWriter, r *http.Request) {
	var req findAppointmentsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.Message(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	appointments, event, err := h.service.FindAvailableAppointments(r.Context(), req.EventID)
	if err != nil {
		switch {
		case errors.Is(err, ErrEventNotFound):
			httpx.Message(w, http.StatusNotFound, "Event not found")
		case errors.Is(err, ErrEventFull):
			httpx.Message(w, http.StatusConflict, "This event is fully booked")
		default:
			h.logger.Error("failed to find appointments", "event_id", req.EventID, "error", err)
			httpx.Message(w, http.StatusInternalServerError, "Failed to fetch appointments")
		}
		return
	}

	info := event.Info()
	httpx.JSON(w, http.StatusOK, findAppointmentsResponse{
		Appointments: appointments,
		Event:        &info,
		Promo:        event.Promo,
	})
}
