package create_appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/drphonenord/repairdesk/internal/domain"
)

// UseCase admits booking requests against slot capacity. The capacity check
// and the append run inside the store's critical section, so two requests
// racing for the last spot of a slot cannot both be admitted.
type UseCase struct {
	schedule     domain.WeekSchedule
	slotMinutes  int
	maxPerSlot   int
	store        StoreRepository
	notifier     Notifier
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase creates the use case with the immutable booking configuration.
func NewUseCase(
	schedule domain.WeekSchedule,
	slotMinutes int,
	maxPerSlot int,
	store StoreRepository,
	notifier Notifier,
	logger Logger,
) *UseCase {
	return &UseCase{
		schedule:     schedule,
		slotMinutes:  slotMinutes,
		maxPerSlot:   maxPerSlot,
		store:        store,
		notifier:     notifier,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute admits one booking request.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	dateStr := req.Date.Format(domain.DateFormat)
	uc.logger.Info("CreateAppointment: name=%s %s, model=%s, date=%s, time=%s",
		req.FirstName, req.LastName, req.Model, dateStr, req.Time)

	// 1. Validate input
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	// 2. The requested time must be one of the date's bookable slots
	day, open := uc.schedule.ForDate(req.Date)
	if !open {
		uc.logger.Warn("CreateAppointment: shop is closed on %s", dateStr)
		return nil, ErrOutOfHours
	}

	ok, err := slotExists(day, uc.slotMinutes, req.Time)
	if err != nil {
		uc.logger.Error("CreateAppointment: failed to check slot: %v", err)
		return nil, fmt.Errorf("%w: failed to check slot: %v", ErrInternal, err)
	}
	if !ok {
		uc.logger.Warn("CreateAppointment: time %s is out of hours on %s", req.Time, dateStr)
		return nil, ErrOutOfHours
	}

	// 3. Capacity check plus append, atomically under the store lock
	appt := domain.Appointment{
		ID:        uuid.NewString(),
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
		Email:     req.Email,
		City:      req.City,
		Model:     req.Model,
		Issue:     req.Issue,
		Date:      dateStr,
		Time:      req.Time,
		Status:    domain.StatusTodo,
		CreatedAt: uc.timeProvider.Now(),
	}

	err = uc.store.Update(ctx, func(snap *domain.StoreSnapshot) error {
		count := snap.CountAtSlot(dateStr, req.Time)
		if count >= uc.maxPerSlot {
			uc.logger.Warn("CreateAppointment: slot %s %s is full (%d/%d)",
				dateStr, req.Time, count, uc.maxPerSlot)
			return ErrSlotFull
		}

		appt.Number = snap.TakeNumber()
		snap.Appointments = append(snap.Appointments, appt)
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrSlotFull) {
			return nil, err
		}
		uc.logger.Error("CreateAppointment: failed to persist appointment: %v", err)
		return nil, fmt.Errorf("%w: failed to persist appointment: %v", ErrInternal, err)
	}

	uc.logger.Info("CreateAppointment: created id=%s number=%d slot=%s %s",
		appt.ID, appt.Number, dateStr, req.Time)

	// 4. Best-effort notification; failures are logged and never surface
	go func(appt domain.Appointment) {
		if err := uc.notifier.AppointmentCreated(context.Background(), &appt); err != nil {
			uc.logger.Warn("CreateAppointment: notification failed for id=%s: %v", appt.ID, err)
		}
	}(appt)

	return &Response{ID: appt.ID, Number: appt.Number}, nil
}
