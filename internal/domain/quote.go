package domain

import "time"

// Quote is a repair quote request. Quotes carry no slot and are never
// counted against slot capacity.
type Quote struct {
	ID        string    `json:"id"`
	FirstName string    `json:"first"`
	LastName  string    `json:"last"`
	Phone     string    `json:"tel"`
	Email     string    `json:"email,omitempty"`
	City      string    `json:"city,omitempty"`
	Model     string    `json:"model"`
	Issue     string    `json:"issue"`
	Viewed    bool      `json:"viewed"`
	CreatedAt time.Time `json:"createdAt"`
}

// FullName returns the customer name as exported in documents.
func (q *Quote) FullName() string {
	return q.FirstName + " " + q.LastName
}
