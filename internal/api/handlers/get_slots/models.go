package get_slots

import (
	"github.com/drphonenord/repairdesk/internal/domain"
	getSlots "github.com/drphonenord/repairdesk/internal/usecase/get_slots"
)

// SlotResponse HTTP slot model
type SlotResponse struct {
	Time  string `json:"time"`
	Count int    `json:"count"`
	Full  bool   `json:"full"`
}

// SlotsResponse HTTP response model
type SlotsResponse struct {
	Date        string         `json:"date"`
	Slots       []SlotResponse `json:"slots"`
	MaxPerSlot  int            `json:"maxPerSlot"`
	SlotMinutes int            `json:"slotMinutes"`
}

// FromUseCaseResponse converts the use case response into the HTTP model.
func FromUseCaseResponse(resp *getSlots.Response) *SlotsResponse {
	slots := make([]SlotResponse, len(resp.Slots))
	for i, s := range resp.Slots {
		slots[i] = SlotResponse{
			Time:  s.Time.String(),
			Count: s.Count,
			Full:  s.Full,
		}
	}
	return &SlotsResponse{
		Date:        resp.Date.Format(domain.DateFormat),
		Slots:       slots,
		MaxPerSlot:  resp.MaxPerSlot,
		SlotMinutes: resp.SlotMinutes,
	}
}
