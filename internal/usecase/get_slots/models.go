package get_slots

import (
	"time"

	"github.com/drphonenord/repairdesk/pkg/types"
)

// Request carries the calendar date to compute slots for.
type Request struct {
	Date time.Time
}

// Slot is one bookable time-of-day window with its current occupancy.
type Slot struct {
	Time  types.TimeString
	Count int
	Full  bool
}

// Response lists the date's slots together with the booking configuration
// the counts were computed against.
type Response struct {
	Date        time.Time
	Slots       []Slot
	MaxPerSlot  int
	SlotMinutes int
}
