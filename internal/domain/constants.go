package domain

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Business validation constants
const (
	MaxPlateNumberLength  = 20
	MaxSpaceNumberLength  = 10
	MaxVehicleTypeLength  = 30
	MaxOperatorNameLength = 100
	MaxShiftNameLength    = 50
	MaxDescriptionLength  = 500
)

// Journal actions recorded for gate operations
const (
	JournalActionCheckIn  = "check_in"
	JournalActionCheckOut = "check_out"
)

// Fee tier boundaries in billable hours
const (
	HoursPerDay  = 24
	HoursPerWeek = 168
)

// KnownVehicleTypes lists the category tags seeded by default.
// The set is not closed: spaces and rate schedules are matched by tag,
// so a new category only requires new rows.
var KnownVehicleTypes = []string{"car", "motorcycle", "truck"}
