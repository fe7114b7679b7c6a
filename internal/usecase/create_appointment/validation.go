package create_appointment

import (
	"fmt"
	"strings"

	"github.com/drphonenord/repairdesk/internal/domain"
	"github.com/drphonenord/repairdesk/pkg/types"
)

// validateRequest checks that every required field is present.
// Email is the only optional customer field.
func validateRequest(req *Request) error {
	required := []struct {
		name  string
		value string
	}{
		{"first", req.FirstName},
		{"last", req.LastName},
		{"tel", req.Phone},
		{"city", req.City},
		{"model", req.Model},
		{"issue", req.Issue},
	}
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			return fmt.Errorf("%w: %s is required", ErrInvalidInput, f.name)
		}
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if req.Time.IsZero() {
		return fmt.Errorf("%w: time is required", ErrInvalidInput)
	}
	if err := req.Time.Validate(); err != nil {
		return fmt.Errorf("%w: invalid time format: %v", ErrInvalidInput, err)
	}

	return nil
}

// slotExists reports whether the requested time is one of the generated
// slot labels for the day's opening interval.
func slotExists(day domain.DaySchedule, slotMinutes int, requested types.TimeString) (bool, error) {
	start, err := day.Start.Minutes()
	if err != nil {
		return false, err
	}
	end, err := day.End.Minutes()
	if err != nil {
		return false, err
	}
	want, err := requested.Minutes()
	if err != nil {
		return false, err
	}

	for m := start; m < end; m += slotMinutes {
		if m == want {
			return true, nil
		}
	}
	return false, nil
}
