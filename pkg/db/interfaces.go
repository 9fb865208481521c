package db

import "context"

// ActivityStore reads the activity table the external data-generation
// collaborator populates.
type ActivityStore interface {
	GetActivities(ctx context.Context) ([]ActivityRow, error)
}

// ResourceStore reads the specialist, equipment, and travel-period tables.
type ResourceStore interface {
	GetSpecialists(ctx context.Context) ([]SpecialistRow, error)
	GetEquipment(ctx context.Context) ([]EquipmentRow, error)
	GetTravelPeriods(ctx context.Context) ([]TravelPeriodRow, error)
}

// RunStore persists a scheduling run's outcome: the run record itself, the
// booked slots it produced, and the occurrences it failed to place.
type RunStore interface {
	InsertRun(ctx context.Context, run RunRow) error
	InsertBookedSlots(ctx context.Context, slots []BookedSlotRow) error
	InsertFailures(ctx context.Context, failures []FailureRow) error
}

// Store is the full persistence surface the service layer depends on. Both
// the Postgres-backed implementation and any test double satisfy it.
type Store interface {
	ActivityStore
	ResourceStore
	RunStore
}
