package domain

// Default configuration values
const (
	DefaultSlotMinutes = 30
	DefaultMaxPerSlot  = 3

	// FirstAppointmentNumber is where the human-facing sequential numbering
	// starts. Numbers below it never appear on printed forms.
	FirstAppointmentNumber = 1001
)

// Appointment status labels. Status is a free-form label in the store; these
// are the values the back office assigns.
const (
	StatusTodo       = "todo"
	StatusInProgress = "in_progress"
	StatusDone       = "done"
)

// RecordKind discriminates appointment and quote records in mixed-record
// operations (mark-viewed, delete).
type RecordKind string

const (
	KindAppointment RecordKind = "appointment"
	KindQuote       RecordKind = "quote"
)

// Valid reports whether the kind is one of the known discriminators.
func (k RecordKind) Valid() bool {
	return k == KindAppointment || k == KindQuote
}

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
