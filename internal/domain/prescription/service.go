package prescription

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/healthdesk/healthdesk/internal/domain/catalog"
	"github.com/healthdesk/healthdesk/internal/platform/navigation"
	"github.com/healthdesk/healthdesk/internal/platform/notification"
)

// Service answers prescription history queries and hands prescribed
// medicines off to the medicine directory.
type Service struct {
	history   *Catalog
	medicines *catalog.Store
	notifier  notification.Notifier
	logger    zerolog.Logger
}

func NewService(history *Catalog, medicines *catalog.Store, notifier notification.Notifier, logger zerolog.Logger) *Service {
	return &Service{history: history, medicines: medicines, notifier: notifier, logger: logger}
}

// List returns the full prescription history.
func (s *Service) List(_ context.Context) []Prescription {
	return s.history.List()
}

// Get resolves one prescription.
func (s *Service) Get(_ context.Context, id string) (Prescription, error) {
	return s.history.Prescription(id)
}

// CheckAvailability resolves a prescribed medicine name against the
// directory through the best-effort fragment index and returns a med-bay
// intent pre-filled with the catalog name. The lookup is approximate:
// unresolvable names still navigate, just without a pre-filled search.
func (s *Service) CheckAvailability(ctx context.Context, medicineName string) navigation.Intent {
	m, err := s.medicines.FindMedicineByFragment(medicineName)
	if err != nil {
		s.logger.Info().Str("medicine", medicineName).Msg("prescribed medicine not in directory")
		s.notifier.Notify(ctx, notification.SeverityInfo,
			fmt.Sprintf("%s is not listed in the medicine directory", medicineName))
		return navigation.Intent{View: navigation.ViewMedBay}
	}
	return navigation.Intent{View: navigation.ViewMedBay, Query: m.Name}
}

// Remind signals a fire-and-forget dose reminder for a prescribed medicine.
func (s *Service) Remind(ctx context.Context, medicineName string) {
	s.notifier.Notify(ctx, notification.SeveritySuccess,
		fmt.Sprintf("Reminder set for %s", medicineName))
}
