package get_slots

import (
	"context"
	"fmt"

	"github.com/drphonenord/repairdesk/internal/domain"
)

// UseCase computes the bookable slots of a calendar date together with
// their current occupancy.
type UseCase struct {
	schedule    domain.WeekSchedule
	slotMinutes int
	maxPerSlot  int
	store       StoreRepository
	logger      Logger
}

// NewUseCase creates the use case with the immutable booking configuration.
func NewUseCase(
	schedule domain.WeekSchedule,
	slotMinutes int,
	maxPerSlot int,
	store StoreRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		schedule:    schedule,
		slotMinutes: slotMinutes,
		maxPerSlot:  maxPerSlot,
		store:       store,
		logger:      logger,
	}
}

// Execute returns the slots of the requested date.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Validate input
	if req.Date.IsZero() {
		uc.logger.Warn("GetSlots: validation failed: date is required")
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	dateStr := req.Date.Format(domain.DateFormat)
	uc.logger.Info("GetSlots: date=%s", dateStr)

	// 2. Look up opening hours; a closed day yields an empty slot list
	day, open := uc.schedule.ForDate(req.Date)
	if !open {
		uc.logger.Info("GetSlots: shop is closed on %s", dateStr)
		return &Response{
			Date:        req.Date,
			Slots:       []Slot{},
			MaxPerSlot:  uc.maxPerSlot,
			SlotMinutes: uc.slotMinutes,
		}, nil
	}

	// 3. Generate the slot labels for the day
	labels, err := generateTimeSlots(day, uc.slotMinutes)
	if err != nil {
		uc.logger.Error("GetSlots: failed to generate time slots: %v", err)
		return nil, fmt.Errorf("%w: failed to generate time slots: %v", ErrInternal, err)
	}

	// 4. Load the store and count occupancy per slot
	snap, err := uc.store.Load(ctx)
	if err != nil {
		uc.logger.Error("GetSlots: failed to load store: %v", err)
		return nil, fmt.Errorf("%w: failed to load store: %v", ErrInternal, err)
	}

	counts := countBySlot(snap, dateStr)

	slots := make([]Slot, len(labels))
	for i, label := range labels {
		count := counts[label]
		slots[i] = Slot{
			Time:  label,
			Count: count,
			Full:  count >= uc.maxPerSlot,
		}
	}

	uc.logger.Info("GetSlots: generated %d slots for date=%s", len(slots), dateStr)

	return &Response{
		Date:        req.Date,
		Slots:       slots,
		MaxPerSlot:  uc.maxPerSlot,
		SlotMinutes: uc.slotMinutes,
	}, nil
}
