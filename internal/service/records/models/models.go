package models

import (
	"time"

	"github.com/drphonenord/repairdesk/internal/domain"
)

// Request models

// ChecklistPayload mirrors the device-state checklist in requests.
type ChecklistPayload struct {
	PowerOn     bool `json:"powerOn"`
	SIM         bool `json:"sim"`
	MicroSD     bool `json:"microsd"`
	FaceID      bool `json:"faceid"`
	TouchID     bool `json:"touchid"`
	TrueTone    bool `json:"trueTone"`
	PhotosTaken bool `json:"photosTaken"`
}

// PaymentPayload mirrors the payment sub-record in requests.
type PaymentPayload struct {
	Amount float64 `json:"amount"`
	Method string  `json:"method"`
	Paid   bool    `json:"paid"`
}

// CreateRecordRequest creates an appointment record directly from the back
// office, with the full intake metadata available at the counter.
type CreateRecordRequest struct {
	FirstName   string           `json:"first"`
	LastName    string           `json:"last"`
	Phone       string           `json:"tel"`
	Email       string           `json:"email,omitempty"`
	City        string           `json:"city,omitempty"`
	Model       string           `json:"model"`
	Issue       string           `json:"issue,omitempty"`
	Date        string           `json:"date,omitempty"`
	Time        string           `json:"time,omitempty"`
	IMEI        string           `json:"imei,omitempty"`
	IntakeNotes string           `json:"intake,omitempty"`
	Passcode    string           `json:"passcode,omitempty"`
	Accessories string           `json:"accessories,omitempty"`
	Checks      ChecklistPayload `json:"checks"`
	Payment     PaymentPayload   `json:"payment"`
}

// UpdateRecordRequest replaces the editable fields of an appointment.
// Identity fields (id, number, createdAt) and the viewed flag are preserved.
type UpdateRecordRequest struct {
	FirstName   string           `json:"first"`
	LastName    string           `json:"last"`
	Phone       string           `json:"tel"`
	Email       string           `json:"email"`
	City        string           `json:"city"`
	Model       string           `json:"model"`
	Issue       string           `json:"issue"`
	Date        string           `json:"date"`
	Time        string           `json:"time"`
	IMEI        string           `json:"imei"`
	IntakeNotes string           `json:"intake"`
	Passcode    string           `json:"passcode"`
	Accessories string           `json:"accessories"`
	Status      string           `json:"status"`
	Checks      ChecklistPayload `json:"checks"`
	Payment     PaymentPayload   `json:"payment"`
}

// PatchRecordRequest applies a partial update: only non-nil fields change,
// everything omitted keeps its prior value.
type PatchRecordRequest struct {
	FirstName   *string           `json:"first,omitempty"`
	LastName    *string           `json:"last,omitempty"`
	Phone       *string           `json:"tel,omitempty"`
	Email       *string           `json:"email,omitempty"`
	City        *string           `json:"city,omitempty"`
	Model       *string           `json:"model,omitempty"`
	Issue       *string           `json:"issue,omitempty"`
	Date        *string           `json:"date,omitempty"`
	Time        *string           `json:"time,omitempty"`
	IMEI        *string           `json:"imei,omitempty"`
	IntakeNotes *string           `json:"intake,omitempty"`
	Passcode    *string           `json:"passcode,omitempty"`
	Accessories *string           `json:"accessories,omitempty"`
	Status      *string           `json:"status,omitempty"`
	Checks      *ChecklistPayload `json:"checks,omitempty"`
	Payment     *PaymentPayload   `json:"payment,omitempty"`
}

// Response models

// AppointmentResponse is the full appointment record as served to the admin UI.
type AppointmentResponse struct {
	ID          string           `json:"id"`
	FirstName   string           `json:"first"`
	LastName    string           `json:"last"`
	Phone       string           `json:"tel"`
	Email       string           `json:"email,omitempty"`
	City        string           `json:"city,omitempty"`
	Model       string           `json:"model"`
	Issue       string           `json:"issue,omitempty"`
	Date        string           `json:"date,omitempty"`
	Time        string           `json:"time,omitempty"`
	IMEI        string           `json:"imei,omitempty"`
	IntakeNotes string           `json:"intake,omitempty"`
	Passcode    string           `json:"passcode,omitempty"`
	Accessories string           `json:"accessories,omitempty"`
	Checks      ChecklistPayload `json:"checks"`
	Payment     PaymentPayload   `json:"payment"`
	Number      int              `json:"number"`
	Status      string           `json:"status"`
	Viewed      bool             `json:"viewed"`
	CreatedAt   string           `json:"createdAt"`
}

// QuoteResponse is the quote record as served to the admin UI.
type QuoteResponse struct {
	ID        string `json:"id"`
	FirstName string `json:"first"`
	LastName  string `json:"last"`
	Phone     string `json:"tel"`
	Email     string `json:"email,omitempty"`
	City      string `json:"city,omitempty"`
	Model     string `json:"model"`
	Issue     string `json:"issue"`
	Viewed    bool   `json:"viewed"`
	CreatedAt string `json:"createdAt"`
}

// StoreResponse is the full store snapshot.
type StoreResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Quotes       []QuoteResponse       `json:"quotes"`
	NextNumber   int                   `json:"nextNumber"`
}

// DeleteResponse reports how many records a delete removed (0 or 1).
type DeleteResponse struct {
	Deleted int `json:"deleted"`
}

// Converters

// ToDomainChecklist converts the payload to the domain type.
func (c ChecklistPayload) ToDomainChecklist() domain.Checklist {
	return domain.Checklist{
		PowerOn:     c.PowerOn,
		SIM:         c.SIM,
		MicroSD:     c.MicroSD,
		FaceID:      c.FaceID,
		TouchID:     c.TouchID,
		TrueTone:    c.TrueTone,
		PhotosTaken: c.PhotosTaken,
	}
}

// ToDomainPayment converts the payload to the domain type.
func (p PaymentPayload) ToDomainPayment() domain.Payment {
	return domain.Payment{Amount: p.Amount, Method: p.Method, Paid: p.Paid}
}

func fromDomainChecklist(c domain.Checklist) ChecklistPayload {
	return ChecklistPayload{
		PowerOn:     c.PowerOn,
		SIM:         c.SIM,
		MicroSD:     c.MicroSD,
		FaceID:      c.FaceID,
		TouchID:     c.TouchID,
		TrueTone:    c.TrueTone,
		PhotosTaken: c.PhotosTaken,
	}
}

func fromDomainPayment(p domain.Payment) PaymentPayload {
	return PaymentPayload{Amount: p.Amount, Method: p.Method, Paid: p.Paid}
}

// FromDomainAppointment converts a domain appointment into the response model.
func FromDomainAppointment(a *domain.Appointment) AppointmentResponse {
	return AppointmentResponse{
		ID:          a.ID,
		FirstName:   a.FirstName,
		LastName:    a.LastName,
		Phone:       a.Phone,
		Email:       a.Email,
		City:        a.City,
		Model:       a.Model,
		Issue:       a.Issue,
		Date:        a.Date,
		Time:        a.Time.String(),
		IMEI:        a.IMEI,
		IntakeNotes: a.IntakeNotes,
		Passcode:    a.Passcode,
		Accessories: a.Accessories,
		Checks:      fromDomainChecklist(a.Checks),
		Payment:     fromDomainPayment(a.Payment),
		Number:      a.Number,
		Status:      a.Status,
		Viewed:      a.Viewed,
		CreatedAt:   a.CreatedAt.Format(time.RFC3339),
	}
}

// FromDomainQuote converts a domain quote into the response model.
func FromDomainQuote(q *domain.Quote) QuoteResponse {
	return QuoteResponse{
		ID:        q.ID,
		FirstName: q.FirstName,
		LastName:  q.LastName,
		Phone:     q.Phone,
		Email:     q.Email,
		City:      q.City,
		Model:     q.Model,
		Issue:     q.Issue,
		Viewed:    q.Viewed,
		CreatedAt: q.CreatedAt.Format(time.RFC3339),
	}
}

// FromDomainSnapshot converts the whole store into the response model.
func FromDomainSnapshot(snap *domain.StoreSnapshot) *StoreResponse {
	resp := &StoreResponse{
		Appointments: make([]AppointmentResponse, len(snap.Appointments)),
		Quotes:       make([]QuoteResponse, len(snap.Quotes)),
		NextNumber:   snap.NextNumber,
	}
	for i := range snap.Appointments {
		resp.Appointments[i] = FromDomainAppointment(&snap.Appointments[i])
	}
	for i := range snap.Quotes {
		resp.Quotes[i] = FromDomainQuote(&snap.Quotes[i])
	}
	return resp
}
