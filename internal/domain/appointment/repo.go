package appointment

import "context"

// Repository is durable storage for the user's appointment records. The
// collection is small and device-local; engines persist it wholesale on
// every write and preserve insertion order on List.
//
// Engines are expected to treat a missing or unreadable pre-existing store
// as empty rather than failing List — the collection is advisory history,
// not critical data. Write failures must always be surfaced.
type Repository interface {
	List(ctx context.Context) ([]Appointment, error)
	Save(ctx context.Context, appt Appointment) error
	Remove(ctx context.Context, id string) error
}
