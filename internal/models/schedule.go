package models

// SlotsPerDay is the number of hourly availability slots per weekday.
const SlotsPerDay = 24

// Weekdays lists the valid schedule keys.
var Weekdays = []string{
	"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday",
}

// Schedule maps a lowercase weekday name to its hourly availability slots,
// true = free. Days may be omitted; an omitted day is treated as fully busy.
type Schedule map[string][]bool
