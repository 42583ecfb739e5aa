package schedule

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/bodyinsight/booking-platform/internal/observability/metrics"
	"github.com/bodyinsight/booking-platform/internal/slots"
	"github.com/bodyinsight/booking-platform/pkg/logging"
)

var scheduleTracer = otel.Tracer("bodyinsight.internal.schedule")

// Service serves the published schedule and expands events into bookable
// appointments.
type Service struct {
	repo      Repository
	generator *slots.Generator
	metrics   *metrics.BookingMetrics
	logger    *logging.Logger
}

// NewService creates a schedule service. A nil generator defaults to the
// deterministic availability stub.
func NewService(repo Repository, generator *slots.Generator, m *metrics.BookingMetrics, logger *logging.Logger) *Service {
	if repo == nil {
		panic("schedule: repository required")
	}
	if generator == nil {
		generator = slots.NewGenerator(nil)
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &Service{
		repo:      repo,
		generator: generator,
		metrics:   m,
		logger:    logger.Component("schedule"),
	}
}

// ListEvents returns the full published schedule.
func (s *Service) ListEvents(ctx context.Context) ([]Event, error) {
	return s.repo.List(ctx)
}

// FindAvailableAppointments expands an event's window into its open slots.
// Full events yield ErrEventFull; a window that fails to parse yields an
// empty list, logged as a data problem but never an error to the client.
func (s *Service) FindAvailableAppointments(ctx context.Context, eventID int) ([]Appointment, *Event, error) {
	ctx, span := scheduleTracer.Start(ctx, "schedule.find_appointments")
	defer span.End()
	span.SetAttributes(attribute.Int("bodyinsight.event_id", eventID))

	event, err := s.repo.GetByID(ctx, eventID)
	if err != nil {
		span.RecordError(err)
		return nil, nil, err
	}
	if event.IsFull {
		return nil, event, ErrEventFull
	}

	start := time.Now()
	generated := s.generator.Generate(event.TimeWindow, event.Landmark)
	s.metrics.ObserveSlotLatency(time.Since(start).Seconds())

	if len(generated) == 0 {
		s.logger.Warn("event window produced no slots",
			"event_id", eventID, "window", event.TimeWindow)
	}

	appointments := make([]Appointment, 0, len(generated))
	for _, slot := range generated {
		if !slot.Available {
			continue
		}
		appointments = append(appointments, Appointment{
			ID:          AppointmentID(event.EventID, slot.MinuteOfDay),
			DisplayTime: slot.Label,
			Amount:      event.Amount,
			BasePrice:   event.Amount,
			FinalPrice:  event.Amount,
		})
	}
	return appointments, event, nil
}

// ResolveAppointment maps an appointment id back to its slot and event. It
// enforces the same gates as FindAvailableAppointments: a full event yields
// ErrEventFull and an oracle-closed slot resolves to nothing, so a stored id
// cannot book what the listing would never have offered.
func (s *Service) ResolveAppointment(ctx context.Context, appointmentID string) (*Appointment, *Event, error) {
	eventID, minute, ok := ParseAppointmentID(appointmentID)
	if !ok {
		return nil, nil, ErrAppointmentNotFound
	}

	event, err := s.repo.GetByID(ctx, eventID)
	if err != nil {
		return nil, nil, ErrAppointmentNotFound
	}
	if event.IsFull {
		return nil, nil, ErrEventFull
	}

	start, end, ok := slots.ParseWindow(event.TimeWindow)
	if !ok || minute < start || minute > end-slots.SlotInterval || (minute-start)%slots.SlotInterval != 0 {
		return nil, nil, ErrAppointmentNotFound
	}
	if !s.generator.Available(minute, event.Landmark) {
		return nil, nil, ErrAppointmentNotFound
	}

	return &Appointment{
		ID:          appointmentID,
		DisplayTime: slots.FormatMinute(minute),
		Amount:      event.Amount,
		BasePrice:   event.Amount,
		FinalPrice:  event.Amount,
	}, event, nil
}
