package records

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/drphonenord/repairdesk/internal/domain"
	"github.com/drphonenord/repairdesk/internal/service/records/models"
	"github.com/drphonenord/repairdesk/pkg/types"
)

// Service is the admin record editor: it mutates individual records inside
// the store and serves the full snapshot to the back office.
type Service struct {
	store        StoreRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewService creates the record editor service.
func NewService(store StoreRepository, logger Logger) *Service {
	return &Service{
		store:        store,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Snapshot returns the full store.
func (s *Service) Snapshot(ctx context.Context) (*models.StoreResponse, error) {
	snap, err := s.store.Load(ctx)
	if err != nil {
		s.logger.Error("Snapshot: failed to load store: %v", err)
		return nil, fmt.Errorf("%w: failed to load store: %v", ErrInternal, err)
	}
	return models.FromDomainSnapshot(snap), nil
}

// Create appends an appointment record directly, bypassing slot admission.
// Walk-in customers at the counter get a dossier even outside the booking
// grid; the capacity invariant only guards the public booking flow.
func (s *Service) Create(ctx context.Context, req *models.CreateRecordRequest) (*models.AppointmentResponse, error) {
	s.logger.Info("CreateRecord: name=%s %s, model=%s", req.FirstName, req.LastName, req.Model)

	if err := validateCreate(req); err != nil {
		s.logger.Warn("CreateRecord: validation failed: %v", err)
		return nil, err
	}

	appt := domain.Appointment{
		ID:          uuid.NewString(),
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Phone:       req.Phone,
		Email:       req.Email,
		City:        req.City,
		Model:       req.Model,
		Issue:       req.Issue,
		Date:        req.Date,
		Time:        types.TimeString(req.Time),
		IMEI:        req.IMEI,
		IntakeNotes: req.IntakeNotes,
		Passcode:    req.Passcode,
		Accessories: req.Accessories,
		Checks:      req.Checks.ToDomainChecklist(),
		Payment:     req.Payment.ToDomainPayment(),
		Status:      domain.StatusTodo,
		CreatedAt:   s.timeProvider.Now(),
	}

	err := s.store.Update(ctx, func(snap *domain.StoreSnapshot) error {
		appt.Number = snap.TakeNumber()
		snap.Appointments = append(snap.Appointments, appt)
		return nil
	})
	if err != nil {
		s.logger.Error("CreateRecord: failed to persist: %v", err)
		return nil, fmt.Errorf("%w: failed to persist: %v", ErrInternal, err)
	}

	s.logger.Info("CreateRecord: created id=%s number=%d", appt.ID, appt.Number)
	resp := models.FromDomainAppointment(&appt)
	return &resp, nil
}

// Update replaces the editable fields of the appointment with the given id.
// Identity (id, number, createdAt) and the viewed flag are preserved.
func (s *Service) Update(ctx context.Context, id string, req *models.UpdateRecordRequest) (*models.AppointmentResponse, error) {
	s.logger.Info("UpdateRecord: id=%s", id)

	if err := validateDateTime(req.Date, req.Time); err != nil {
		s.logger.Warn("UpdateRecord: validation failed for id=%s: %v", id, err)
		return nil, err
	}

	var updated domain.Appointment
	err := s.store.Update(ctx, func(snap *domain.StoreSnapshot) error {
		appt := snap.FindAppointment(id)
		if appt == nil {
			return ErrRecordNotFound
		}

		appt.FirstName = req.FirstName
		appt.LastName = req.LastName
		appt.Phone = req.Phone
		appt.Email = req.Email
		appt.City = req.City
		appt.Model = req.Model
		appt.Issue = req.Issue
		appt.Date = req.Date
		appt.Time = types.TimeString(req.Time)
		appt.IMEI = req.IMEI
		appt.IntakeNotes = req.IntakeNotes
		appt.Passcode = req.Passcode
		appt.Accessories = req.Accessories
		appt.Checks = req.Checks.ToDomainChecklist()
		appt.Payment = req.Payment.ToDomainPayment()
		if req.Status != "" {
			appt.Status = req.Status
		}

		updated = *appt
		return nil
	})
	if err != nil {
		return nil, s.wrapUpdateErr("UpdateRecord", id, err)
	}

	resp := models.FromDomainAppointment(&updated)
	return &resp, nil
}

// Patch applies a partial update: only fields present in the payload change.
func (s *Service) Patch(ctx context.Context, id string, req *models.PatchRecordRequest) (*models.AppointmentResponse, error) {
	s.logger.Info("PatchRecord: id=%s", id)

	if req.Date != nil || req.Time != nil {
		date, timeLabel := "", ""
		if req.Date != nil {
			date = *req.Date
		}
		if req.Time != nil {
			timeLabel = *req.Time
		}
		if err := validateDateTime(date, timeLabel); err != nil {
			s.logger.Warn("PatchRecord: validation failed for id=%s: %v", id, err)
			return nil, err
		}
	}

	var updated domain.Appointment
	err := s.store.Update(ctx, func(snap *domain.StoreSnapshot) error {
		appt := snap.FindAppointment(id)
		if appt == nil {
			return ErrRecordNotFound
		}

		applyPatch(appt, req)
		updated = *appt
		return nil
	})
	if err != nil {
		return nil, s.wrapUpdateErr("PatchRecord", id, err)
	}

	resp := models.FromDomainAppointment(&updated)
	return &resp, nil
}

// MarkViewed flips the viewed flag of an appointment or quote.
func (s *Service) MarkViewed(ctx context.Context, id string, kind domain.RecordKind) error {
	s.logger.Info("MarkViewed: id=%s kind=%s", id, kind)

	if !kind.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidKind, kind)
	}

	err := s.store.Update(ctx, func(snap *domain.StoreSnapshot) error {
		switch kind {
		case domain.KindQuote:
			quote := snap.FindQuote(id)
			if quote == nil {
				return ErrRecordNotFound
			}
			quote.Viewed = true
		default:
			appt := snap.FindAppointment(id)
			if appt == nil {
				return ErrRecordNotFound
			}
			appt.Viewed = true
		}
		return nil
	})
	if err != nil {
		return s.wrapUpdateErr("MarkViewed", id, err)
	}
	return nil
}

// Delete removes the record with the given id and reports the removed count
// (0 or 1). Deleting an unknown id is not an error.
func (s *Service) Delete(ctx context.Context, id string, kind domain.RecordKind) (*models.DeleteResponse, error) {
	s.logger.Info("DeleteRecord: id=%s kind=%s", id, kind)

	if !kind.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidKind, kind)
	}

	deleted := 0
	err := s.store.Update(ctx, func(snap *domain.StoreSnapshot) error {
		switch kind {
		case domain.KindQuote:
			kept := snap.Quotes[:0]
			for _, q := range snap.Quotes {
				if q.ID == id {
					deleted++
					continue
				}
				kept = append(kept, q)
			}
			snap.Quotes = kept
		default:
			kept := snap.Appointments[:0]
			for _, a := range snap.Appointments {
				if a.ID == id {
					deleted++
					continue
				}
				kept = append(kept, a)
			}
			snap.Appointments = kept
		}
		return nil
	})
	if err != nil {
		s.logger.Error("DeleteRecord: failed for id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: DeleteRecord: %v", ErrInternal, err)
	}

	s.logger.Info("DeleteRecord: id=%s removed %d record(s)", id, deleted)
	return &models.DeleteResponse{Deleted: deleted}, nil
}

func (s *Service) wrapUpdateErr(op, id string, err error) error {
	if errors.Is(err, ErrRecordNotFound) {
		s.logger.Warn("%s: record id=%s not found", op, id)
		return ErrRecordNotFound
	}
	s.logger.Error("%s: failed for id=%s: %v", op, id, err)
	return fmt.Errorf("%w: %s: %v", ErrInternal, op, err)
}

func validateCreate(req *models.CreateRecordRequest) error {
	required := []struct {
		name  string
		value string
	}{
		{"first", req.FirstName},
		{"last", req.LastName},
		{"tel", req.Phone},
		{"model", req.Model},
	}
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			return fmt.Errorf("%w: %s is required", ErrInvalidInput, f.name)
		}
	}
	return validateDateTime(req.Date, req.Time)
}

// validateDateTime checks the formats of date and time when set. Admin
// records may carry an empty slot (walk-ins), so empty values pass.
func validateDateTime(date, timeLabel string) error {
	if date != "" {
		if _, err := time.Parse(domain.DateFormat, date); err != nil {
			return fmt.Errorf("%w: invalid date format: %v", ErrInvalidInput, err)
		}
	}
	if timeLabel != "" {
		if err := types.TimeString(timeLabel).Validate(); err != nil {
			return fmt.Errorf("%w: invalid time format: %v", ErrInvalidInput, err)
		}
	}
	return nil
}

func applyPatch(appt *domain.Appointment, req *models.PatchRecordRequest) {
	if req.FirstName != nil {
		appt.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		appt.LastName = *req.LastName
	}
	if req.Phone != nil {
		appt.Phone = *req.Phone
	}
	if req.Email != nil {
		appt.Email = *req.Email
	}
	if req.City != nil {
		appt.City = *req.City
	}
	if req.Model != nil {
		appt.Model = *req.Model
	}
	if req.Issue != nil {
		appt.Issue = *req.Issue
	}
	if req.Date != nil {
		appt.Date = *req.Date
	}
	if req.Time != nil {
		appt.Time = types.TimeString(*req.Time)
	}
	if req.IMEI != nil {
		appt.IMEI = *req.IMEI
	}
	if req.IntakeNotes != nil {
		appt.IntakeNotes = *req.IntakeNotes
	}
	if req.Passcode != nil {
		appt.Passcode = *req.Passcode
	}
	if req.Accessories != nil {
		appt.Accessories = *req.Accessories
	}
	if req.Status != nil {
		appt.Status = *req.Status
	}
	if req.Checks != nil {
		appt.Checks = req.Checks.ToDomainChecklist()
	}
	if req.Payment != nil {
		appt.Payment = req.Payment.ToDomainPayment()
	}
}
