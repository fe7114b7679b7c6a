package get_slots

import (
	"github.com/drphonenord/repairdesk/internal/domain"
	"github.com/drphonenord/repairdesk/pkg/types"
)

// generateTimeSlots produces the ordered slot labels for one opening
// interval: from Start (inclusive) to End (exclusive), stepped by
// slotMinutes. A slot whose start lies before End is included even if it
// would run past closing; that matches how the shop actually books the
// last slot of the day.
func generateTimeSlots(day domain.DaySchedule, slotMinutes int) ([]types.TimeString, error) {
	start, err := day.Start.Minutes()
	if err != nil {
		return nil, err
	}
	end, err := day.End.Minutes()
	if err != nil {
		return nil, err
	}

	slots := make([]types.TimeString, 0, (end-start)/slotMinutes+1)
	for m := start; m < end; m += slotMinutes {
		label, err := types.NewTimeStringFromMinutes(m)
		if err != nil {
			return nil, err
		}
		slots = append(slots, label)
	}
	return slots, nil
}

// countBySlot tallies how many appointments occupy each time label on the
// given date.
func countBySlot(snap *domain.StoreSnapshot, date string) map[types.TimeString]int {
	counts := make(map[types.TimeString]int)
	for i := range snap.Appointments {
		if snap.Appointments[i].Date == date {
			counts[snap.Appointments[i].Time]++
		}
	}
	return counts
}
