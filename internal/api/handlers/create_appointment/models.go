package create_appointment

import (
	"time"

	"github.com/drphonenord/repairdesk/internal/domain"
	createAppointment "github.com/drphonenord/repairdesk/internal/usecase/create_appointment"
	"github.com/drphonenord/repairdesk/pkg/types"
)

// CreateAppointmentRequest HTTP request model
type CreateAppointmentRequest struct {
	FirstName string `json:"first"`
	LastName  string `json:"last"`
	Phone     string `json:"tel"`
	Email     string `json:"email,omitempty"`
	City      string `json:"city,omitempty"`
	Model     string `json:"model"`
	Issue     string `json:"issue"`
	Date      string `json:"date"` // "2024-01-15"
	Time      string `json:"time"` // "09:30"
}

// AppointmentCreatedResponse HTTP response model
type AppointmentCreatedResponse struct {
	ID     string `json:"id"`
	Number int    `json:"number"`
}

// ToUseCaseRequest converts the HTTP request into the use case model,
// parsing date and time.
func (r *CreateAppointmentRequest) ToUseCaseRequest() (*createAppointment.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	slotTime, err := types.NewTimeStringFromString(r.Time)
	if err != nil {
		return nil, err
	}

	return &createAppointment.Request{
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Phone:     r.Phone,
		Email:     r.Email,
		City:      r.City,
		Model:     r.Model,
		Issue:     r.Issue,
		Date:      date,
		Time:      slotTime,
	}, nil
}

// FromUseCaseResponse converts the use case response into the HTTP model.
func FromUseCaseResponse(resp *createAppointment.Response) *AppointmentCreatedResponse {
	return &AppointmentCreatedResponse{
		ID:     resp.ID,
		Number: resp.Number,
	}
}
