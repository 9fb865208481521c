package model

import "github.com/brightwell-health/care-scheduler/pkg/core/timeutil"

// AvailabilityBlock is a recurring weekly window during which a specialist
// can be booked. Blocks on the same weekday must not overlap (enforced at
// intake, see Validate).
type AvailabilityBlock struct {
	Weekday int // 0=Monday .. 6=Sunday
	Start   timeutil.Clock
	End     timeutil.Clock
}

// SpecialistDiscipline tags the kind of professional a Specialist represents.
type SpecialistDiscipline string

const (
	Trainer      SpecialistDiscipline = "Trainer"
	Dietitian    SpecialistDiscipline = "Dietitian"
	Therapist    SpecialistDiscipline = "Therapist"
	Physician    SpecialistDiscipline = "Physician"
	AlliedHealth SpecialistDiscipline = "Allied_Health"
)

// Specialist is a healthcare professional with limited weekly availability.
type Specialist struct {
	ID           string
	Discipline   SpecialistDiscipline
	Availability []AvailabilityBlock
	DaysOff      []int           // weekdays entirely off, 0=Monday..6=Sunday
	Holidays     []timeutil.Date // specific unavailable dates
}

// MaintenanceWindow is a date-and-clock range during which equipment is
// taken out of service. A Start/End clock pair that is both zero means the
// window covers the entire day.
type MaintenanceWindow struct {
	StartDate timeutil.Date
	EndDate   timeutil.Date
	Start     timeutil.Clock
	End       timeutil.Clock
}

// Equipment is a shared physical resource with maintenance downtime.
type Equipment struct {
	ID                 string
	MaintenanceWindows []MaintenanceWindow
}

// TravelPeriod marks a date range during which the client is away. The hard
// constraint in the validator keys only on the
// activity's own RemoteCapable flag; RemoteCapable here is carried from the
// data model for completeness and diagnostics but is not itself consulted
// by the validator.
type TravelPeriod struct {
	ID            string
	StartDate     timeutil.Date
	EndDate       timeutil.Date
	RemoteCapable bool
}

// Covers reports whether the travel period includes the given date.
func (t TravelPeriod) Covers(d timeutil.Date) bool {
	return d.InRange(t.StartDate, t.EndDate)
}
