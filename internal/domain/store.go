package domain

import "github.com/drphonenord/repairdesk/pkg/types"

// StoreSnapshot is the entire persisted state of the shop: every appointment,
// every quote and the next sequential intervention number. It is loaded from
// disk at the start of every operation and rewritten wholesale after every
// mutation; there is no partial update path.
type StoreSnapshot struct {
	Appointments []Appointment `json:"appointments"`
	Quotes       []Quote       `json:"quotes"`
	NextNumber   int           `json:"nextNumber"`
}

// NewStoreSnapshot returns an empty store with the counter initialised.
func NewStoreSnapshot() *StoreSnapshot {
	return &StoreSnapshot{
		Appointments: []Appointment{},
		Quotes:       []Quote{},
		NextNumber:   FirstAppointmentNumber,
	}
}

// TakeNumber hands out the next sequential intervention number.
func (s *StoreSnapshot) TakeNumber() int {
	if s.NextNumber < FirstAppointmentNumber {
		s.NextNumber = FirstAppointmentNumber
	}
	n := s.NextNumber
	s.NextNumber++
	return n
}

// CountAtSlot counts the appointments occupying the given (date, time) pair.
func (s *StoreSnapshot) CountAtSlot(date string, t types.TimeString) int {
	count := 0
	for i := range s.Appointments {
		if s.Appointments[i].OccupiesSlot(date, t) {
			count++
		}
	}
	return count
}

// FindAppointment returns the appointment with the given id, or nil.
func (s *StoreSnapshot) FindAppointment(id string) *Appointment {
	for i := range s.Appointments {
		if s.Appointments[i].ID == id {
			return &s.Appointments[i]
		}
	}
	return nil
}

// FindQuote returns the quote with the given id, or nil.
func (s *StoreSnapshot) FindQuote(id string) *Quote {
	for i := range s.Quotes {
		if s.Quotes[i].ID == id {
			return &s.Quotes[i]
		}
	}
	return nil
}
