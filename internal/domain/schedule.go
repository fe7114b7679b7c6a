package domain

import (
	"time"

	"github.com/drphonenord/repairdesk/pkg/types"
)

// DaySchedule is the opening interval for one weekday. Slots run from Start
// (inclusive) to End (exclusive).
type DaySchedule struct {
	Start types.TimeString
	End   types.TimeString
}

// WeekSchedule maps weekdays to opening hours. A missing entry means the
// shop is closed that day.
type WeekSchedule map[time.Weekday]DaySchedule

// ForDate looks up the opening hours for the weekday of the given date.
func (w WeekSchedule) ForDate(date time.Time) (DaySchedule, bool) {
	day, ok := w[date.Weekday()]
	return day, ok
}

// CompanyInfo is the shop identity printed on letterheads and sent in
// notification mail.
type CompanyInfo struct {
	Name    string
	Phone   string
	Email   string
	Address string
}
