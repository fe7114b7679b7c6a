package create_appointment

import (
	"time"

	"github.com/drphonenord/repairdesk/pkg/types"
)

// Request is the booking candidate to admit.
type Request struct {
	FirstName string
	LastName  string
	Phone     string
	Email     string
	City      string
	Model     string
	Issue     string
	Date      time.Time
	Time      types.TimeString
}

// Response carries the identifiers assigned on admission.
type Response struct {
	ID     string
	Number int
}
