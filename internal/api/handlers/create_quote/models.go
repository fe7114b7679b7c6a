package create_quote

import (
	createQuote "github.com/drphonenord/repairdesk/internal/usecase/create_quote"
)

// CreateQuoteRequest HTTP request model
type CreateQuoteRequest struct {
	FirstName string `json:"first"`
	LastName  string `json:"last"`
	Phone     string `json:"tel"`
	Email     string `json:"email,omitempty"`
	City      string `json:"city,omitempty"`
	Model     string `json:"model"`
	Issue     string `json:"issue"`
}

// QuoteCreatedResponse HTTP response model
type QuoteCreatedResponse struct {
	ID string `json:"id"`
}

// ToUseCaseRequest converts the HTTP request into the use case model.
func (r *CreateQuoteRequest) ToUseCaseRequest() *createQuote.Request {
	return &createQuote.Request{
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Phone:     r.Phone,
		Email:     r.Email,
		City:      r.City,
		Model:     r.Model,
		Issue:     r.Issue,
	}
}
