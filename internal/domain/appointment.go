package domain

import (
	"time"

	"github.com/drphonenord/repairdesk/pkg/types"
)

// Checklist is the quick device-state inspection filled in at intake.
type Checklist struct {
	PowerOn     bool `json:"powerOn"`
	SIM         bool `json:"sim"`
	MicroSD     bool `json:"microsd"`
	FaceID      bool `json:"faceid"`
	TouchID     bool `json:"touchid"`
	TrueTone    bool `json:"trueTone"`
	PhotosTaken bool `json:"photosTaken"`
}

// Payment is the payment sub-record of an appointment.
type Payment struct {
	Amount float64 `json:"amount"`
	Method string  `json:"method"`
	Paid   bool    `json:"paid"`
}

// Appointment is a repair booking, optionally enriched by the back office
// with intake metadata, a device checklist and payment details.
type Appointment struct {
	ID        string `json:"id"`
	FirstName string `json:"first"`
	LastName  string `json:"last"`
	Phone     string `json:"tel"`
	Email     string `json:"email,omitempty"`
	City      string `json:"city"`
	Model     string `json:"model"`
	Issue     string `json:"issue"`

	// Requested slot: calendar date plus time-of-day label.
	Date string           `json:"date"`
	Time types.TimeString `json:"time"`

	// Intake metadata, filled by the shop.
	IMEI        string `json:"imei,omitempty"`
	IntakeNotes string `json:"intake,omitempty"`
	Passcode    string `json:"passcode,omitempty"`
	Accessories string `json:"accessories,omitempty"`

	Checks  Checklist `json:"checks"`
	Payment Payment   `json:"payment"`

	// Number is the human-facing sequential intervention number.
	Number int    `json:"number"`
	Status string `json:"status"`
	Viewed bool   `json:"viewed"`

	CreatedAt time.Time `json:"createdAt"`
}

// FullName returns the customer name as printed on documents.
func (a *Appointment) FullName() string {
	return a.FirstName + " " + a.LastName
}

// OccupiesSlot reports whether the appointment takes up the given (date, time) pair.
func (a *Appointment) OccupiesSlot(date string, t types.TimeString) bool {
	return a.Date == date && a.Time == t
}
