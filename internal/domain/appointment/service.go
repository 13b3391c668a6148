package appointment

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/healthdesk/healthdesk/internal/domain/catalog"
	"github.com/healthdesk/healthdesk/internal/platform/navigation"
	"github.com/healthdesk/healthdesk/internal/platform/notification"
)

var (
	// ErrDoctorNotFound is returned when a booking names an unknown doctor.
	ErrDoctorNotFound = errors.New("doctor not found")
	// ErrDoctorUnavailable is returned when the doctor is not taking
	// appointments; no booking is created and no side effect occurs.
	ErrDoctorUnavailable = errors.New("doctor is not available for appointments")
	// ErrNotFound is returned when an appointment id does not resolve.
	ErrNotFound = errors.New("appointment not found")
)

// BookRequest carries raw patient input for a booking. PatientAge arrives as
// a string because that is what the input surface produces; the service owns
// parsing and range-checking it.
type BookRequest struct {
	DoctorID    string `json:"doctor_id"`
	PatientName string `json:"patient_name"`
	PatientAge  string `json:"patient_age"`
}

// Service orchestrates bookings: it validates doctor availability and
// patient input, computes the fee, issues a token and writes through the
// Repository.
type Service struct {
	store    *catalog.Store
	repo     Repository
	notifier notification.Notifier
	logger   zerolog.Logger

	clock  Clock
	tokens TokenSource
	newID  func() string
}

// NewService constructs a booking Service with the system clock, the
// clock-derived token source and uuid appointment ids.
func NewService(store *catalog.Store, repo Repository, notifier notification.Notifier, logger zerolog.Logger) *Service {
	clock := systemClock{}
	return &Service{
		store:    store,
		repo:     repo,
		notifier: notifier,
		logger:   logger,
		clock:    clock,
		tokens:   clockTokenSource{clock: clock},
		newID:    uuid.NewString,
	}
}

// Book validates the request and durably records a new appointment. All
// preconditions are checked before any persistence; a failed booking leaves
// stored state untouched.
func (s *Service) Book(ctx context.Context, req BookRequest) (Appointment, navigation.Intent, error) {
	doc, err := s.store.Doctor(req.DoctorID)
	if err != nil {
		return Appointment{}, navigation.Intent{}, fmt.Errorf("%w: %q", ErrDoctorNotFound, req.DoctorID)
	}
	if !doc.IsAvailable {
		return Appointment{}, navigation.Intent{}, ErrDoctorUnavailable
	}

	name := strings.TrimSpace(req.PatientName)
	if name == "" {
		return Appointment{}, navigation.Intent{}, &ValidationError{Field: "patient_name", Message: "name is required"}
	}
	age, err := strconv.Atoi(strings.TrimSpace(req.PatientAge))
	if err != nil || age < minPatientAge || age > maxPatientAge {
		return Appointment{}, navigation.Intent{}, &ValidationError{
			Field:   "patient_age",
			Message: fmt.Sprintf("age must be a whole number between %d and %d", minPatientAge, maxPatientAge),
		}
	}

	// Hospital resolution is a tolerant degrade: history keeps an empty
	// hospital name rather than failing the booking.
	hospitalName := ""
	if h, err := s.store.Hospital(doc.HospitalID); err == nil {
		hospitalName = h.Name
	} else {
		s.logger.Warn().Str("doctor_id", doc.ID).Str("hospital_id", doc.HospitalID).
			Msg("hospital did not resolve at booking time")
	}

	now := s.clock.Now()
	appt := Appointment{
		ID:           s.newID(),
		DoctorID:     doc.ID,
		DoctorName:   doc.Name,
		Specialty:    doc.Specialty,
		HospitalName: hospitalName,
		Date:         now.Format("2006-01-02"),
		Time:         now.Format("03:04 PM"),
		Token:        s.tokens.Token(),
		Fee:          doc.ConsultationFee + PlatformFee,
		Status:       StatusUpcoming,
		PatientName:  name,
		PatientAge:   &age,
	}

	if err := s.repo.Save(ctx, appt); err != nil {
		s.notifier.Notify(ctx, notification.SeverityError, "Could not save your appointment. Please try again.")
		return Appointment{}, navigation.Intent{}, fmt.Errorf("save appointment: %w", err)
	}

	s.logger.Info().Str("appointment_id", appt.ID).Str("doctor_id", doc.ID).
		Str("token", appt.Token).Int("fee", appt.Fee).Msg("appointment booked")
	s.notifier.Notify(ctx, notification.SeveritySuccess, "Appointment booked successfully!")
	return appt, navigation.Intent{View: navigation.ViewAppointments}, nil
}

// List returns the stored appointments in insertion order. Repository read
// errors degrade to an empty history: the store is advisory, and a corrupt
// or unreachable slot must never fail the caller.
func (s *Service) List(ctx context.Context) []Appointment {
	appts, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Warn().Err(err).Msg("appointment history unavailable, returning empty")
		return []Appointment{}
	}
	if appts == nil {
		appts = []Appointment{}
	}
	return appts
}

// Cancel deletes the appointment record outright. Cancelling an id that is
// already gone is a no-op.
func (s *Service) Cancel(ctx context.Context, id string) error {
	if err := s.repo.Remove(ctx, id); err != nil {
		s.notifier.Notify(ctx, notification.SeverityError, "Could not cancel the appointment. Please try again.")
		return fmt.Errorf("cancel appointment: %w", err)
	}
	s.logger.Info().Str("appointment_id", id).Msg("appointment cancelled")
	s.notifier.Notify(ctx, notification.SeveritySuccess, "Appointment cancelled. Refund will be processed.")
	return nil
}

// Remind signals a fire-and-forget reminder for an upcoming appointment.
func (s *Service) Remind(ctx context.Context, id string) error {
	for _, a := range s.List(ctx) {
		if a.ID == id {
			s.notifier.Notify(ctx, notification.SeveritySuccess,
				fmt.Sprintf("Reminder set for %s on %s", a.DoctorName, a.Date))
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrNotFound, id)
}
