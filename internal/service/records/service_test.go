package records

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/drphonenord/repairdesk/internal/domain"
	"github.com/drphonenord/repairdesk/internal/service/records/models"
	"github.com/drphonenord/repairdesk/pkg/types"
)

type memStore struct {
	mu      sync.Mutex
	snap    *domain.StoreSnapshot
	loadErr error
	saveErr error
}

func (m *memStore) Load(ctx context.Context) (*domain.StoreSnapshot, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.snap, nil
}

func (m *memStore) Update(ctx context.Context, fn func(snap *domain.StoreSnapshot) error) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return fn(m.snap)
}

type fixedClock struct {
	now time.Time
}

func (c *fixedClock) Now() time.Time {
	return c.now
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func seededStore() *memStore {
	snap := domain.NewStoreSnapshot()
	snap.Appointments = []domain.Appointment{
		{
			ID:        "appt-1",
			FirstName: "Marc",
			LastName:  "Lefevre",
			Phone:     "0611111111",
			Email:     "marc@example.com",
			City:      "Lille",
			Model:     "iPhone 12",
			Issue:     "cracked screen",
			Date:      "2024-01-15",
			Time:      types.TimeString("09:30"),
			Number:    1001,
			Status:    domain.StatusTodo,
			CreatedAt: time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC),
		},
		{
			ID:        "appt-2",
			FirstName: "Sophie",
			LastName:  "Bernard",
			Phone:     "0622222222",
			Model:     "Pixel 7",
			Number:    1002,
			Status:    domain.StatusInProgress,
			CreatedAt: time.Date(2024, 1, 11, 14, 0, 0, 0, time.UTC),
		},
	}
	snap.Quotes = []domain.Quote{
		{
			ID:        "quote-1",
			FirstName: "Claire",
			LastName:  "Dubois",
			Phone:     "0633333333",
			Model:     "Galaxy S21",
			Issue:     "battery",
			CreatedAt: time.Date(2024, 1, 12, 11, 0, 0, 0, time.UTC),
		},
	}
	snap.NextNumber = 1003
	return &memStore{snap: snap}
}

func newTestService(store *memStore) *Service {
	svc := NewService(store, nopLogger{})
	svc.timeProvider = &fixedClock{now: time.Date(2024, 1, 20, 10, 0, 0, 0, time.UTC)}
	return svc
}

func TestSnapshot(t *testing.T) {
	store := seededStore()
	svc := newTestService(store)

	resp, err := svc.Snapshot(context.Background())
	require.NoError(t, err)
	assert.Len(t, resp.Appointments, 2)
	assert.Len(t, resp.Quotes, 1)
	assert.Equal(t, 1003, resp.NextNumber)
	assert.Equal(t, "appt-1", resp.Appointments[0].ID)
	assert.Equal(t, "09:30", resp.Appointments[0].Time)
}

func TestSnapshot_StoreFailure(t *testing.T) {
	store := &memStore{loadErr: assert.AnError}
	svc := newTestService(store)

	_, err := svc.Snapshot(context.Background())
	assert.ErrorIs(t, err, ErrInternal)
}

func TestCreate(t *testing.T) {
	store := seededStore()
	svc := newTestService(store)

	resp, err := svc.Create(context.Background(), &models.CreateRecordRequest{
		FirstName: "Hugo",
		LastName:  "Martin",
		Phone:     "0644444444",
		Model:     "iPhone 14",
		Issue:     "water damage",
		IMEI:      "356938035643809",
		Checks:    models.ChecklistPayload{PowerOn: true, SIM: true},
		Payment:   models.PaymentPayload{Amount: 89.90, Method: "card"},
	})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, 1003, resp.Number)
	assert.Equal(t, domain.StatusTodo, resp.Status)
	assert.False(t, resp.Viewed)

	require.Len(t, store.snap.Appointments, 3)
	created := store.snap.Appointments[2]
	assert.Equal(t, resp.ID, created.ID)
	assert.True(t, created.Checks.PowerOn)
	assert.Equal(t, 89.90, created.Payment.Amount)
	assert.Equal(t, 1004, store.snap.NextNumber)
}

func TestCreate_MissingFields(t *testing.T) {
	svc := newTestService(seededStore())
	ctx := context.Background()

	valid := func() *models.CreateRecordRequest {
		return &models.CreateRecordRequest{
			FirstName: "Hugo",
			LastName:  "Martin",
			Phone:     "0644444444",
			Model:     "iPhone 14",
		}
	}

	testCases := []struct {
		name   string
		mutate func(*models.CreateRecordRequest)
	}{
		{name: "no first name", mutate: func(r *models.CreateRecordRequest) { r.FirstName = "" }},
		{name: "no last name", mutate: func(r *models.CreateRecordRequest) { r.LastName = " " }},
		{name: "no phone", mutate: func(r *models.CreateRecordRequest) { r.Phone = "" }},
		{name: "no model", mutate: func(r *models.CreateRecordRequest) { r.Model = "" }},
		{name: "bad date", mutate: func(r *models.CreateRecordRequest) { r.Date = "15/01/2024" }},
		{name: "bad time", mutate: func(r *models.CreateRecordRequest) { r.Time = "9h30" }},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := valid()
			tc.mutate(req)
			_, err := svc.Create(ctx, req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}

	// Date and time are optional for walk-ins.
	_, err := svc.Create(ctx, valid())
	assert.NoError(t, err)
}

func TestUpdate_ReplacesEditableFields(t *testing.T) {
	store := seededStore()
	svc := newTestService(store)

	resp, err := svc.Update(context.Background(), "appt-1", &models.UpdateRecordRequest{
		FirstName: "Marc",
		LastName:  "Lefevre",
		Phone:     "0611111111",
		Model:     "iPhone 12 Pro",
		Issue:     "cracked screen and back glass",
		Date:      "2024-01-16",
		Time:      "10:00",
		Status:    domain.StatusDone,
		Payment:   models.PaymentPayload{Amount: 120, Method: "cash", Paid: true},
	})
	require.NoError(t, err)

	assert.Equal(t, "iPhone 12 Pro", resp.Model)
	assert.Equal(t, domain.StatusDone, resp.Status)

	appt := store.snap.FindAppointment("appt-1")
	require.NotNil(t, appt)
	assert.Equal(t, "2024-01-16", appt.Date)
	assert.Equal(t, types.TimeString("10:00"), appt.Time)
	assert.True(t, appt.Payment.Paid)

	// Full update wipes fields absent from the payload.
	assert.Empty(t, appt.Email)
	assert.Empty(t, appt.City)

	// Identity and audit fields survive the replace.
	assert.Equal(t, "appt-1", appt.ID)
	assert.Equal(t, 1001, appt.Number)
	assert.Equal(t, time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC), appt.CreatedAt)
	assert.False(t, appt.Viewed)
}

func TestUpdate_NotFound(t *testing.T) {
	svc := newTestService(seededStore())

	_, err := svc.Update(context.Background(), "missing", &models.UpdateRecordRequest{})
	assert.ErrorIs(t, err, ErrRecordNotFound)
}

func TestPatch_OnlyGivenFieldsChange(t *testing.T) {
	store := seededStore()
	svc := newTestService(store)

	status := domain.StatusDone
	payment := models.PaymentPayload{Amount: 150, Method: "card", Paid: true}
	resp, err := svc.Patch(context.Background(), "appt-1", &models.PatchRecordRequest{
		Status:  &status,
		Payment: &payment,
	})
	require.NoError(t, err)

	assert.Equal(t, domain.StatusDone, resp.Status)
	assert.Equal(t, 150.0, resp.Payment.Amount)

	appt := store.snap.FindAppointment("appt-1")
	require.NotNil(t, appt)

	// Everything not in the payload keeps its prior value.
	assert.Equal(t, "Marc", appt.FirstName)
	assert.Equal(t, "marc@example.com", appt.Email)
	assert.Equal(t, "Lille", appt.City)
	assert.Equal(t, "2024-01-15", appt.Date)
	assert.Equal(t, types.TimeString("09:30"), appt.Time)
	assert.Equal(t, 1001, appt.Number)
}

func TestPatch_EmptyStringClearsField(t *testing.T) {
	store := seededStore()
	svc := newTestService(store)

	empty := ""
	_, err := svc.Patch(context.Background(), "appt-1", &models.PatchRecordRequest{
		Email: &empty,
	})
	require.NoError(t, err)

	appt := store.snap.FindAppointment("appt-1")
	require.NotNil(t, appt)
	assert.Empty(t, appt.Email)
	assert.Equal(t, "Lille", appt.City)
}

func TestPatch_InvalidTime(t *testing.T) {
	svc := newTestService(seededStore())

	bad := "25:00"
	_, err := svc.Patch(context.Background(), "appt-1", &models.PatchRecordRequest{Time: &bad})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestPatch_NotFound(t *testing.T) {
	svc := newTestService(seededStore())

	name := "Jean"
	_, err := svc.Patch(context.Background(), "missing", &models.PatchRecordRequest{FirstName: &name})
	assert.ErrorIs(t, err, ErrRecordNotFound)
}

func TestMarkViewed(t *testing.T) {
	store := seededStore()
	svc := newTestService(store)
	ctx := context.Background()

	require.NoError(t, svc.MarkViewed(ctx, "appt-1", domain.KindAppointment))
	assert.True(t, store.snap.FindAppointment("appt-1").Viewed)
	assert.False(t, store.snap.FindAppointment("appt-2").Viewed)

	require.NoError(t, svc.MarkViewed(ctx, "quote-1", domain.KindQuote))
	assert.True(t, store.snap.FindQuote("quote-1").Viewed)
}

func TestMarkViewed_Errors(t *testing.T) {
	svc := newTestService(seededStore())
	ctx := context.Background()

	assert.ErrorIs(t, svc.MarkViewed(ctx, "appt-1", domain.RecordKind("ticket")), ErrInvalidKind)
	assert.ErrorIs(t, svc.MarkViewed(ctx, "missing", domain.KindAppointment), ErrRecordNotFound)
	assert.ErrorIs(t, svc.MarkViewed(ctx, "appt-1", domain.KindQuote), ErrRecordNotFound)
}

func TestDelete(t *testing.T) {
	store := seededStore()
	svc := newTestService(store)
	ctx := context.Background()

	resp, err := svc.Delete(ctx, "appt-1", domain.KindAppointment)
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Deleted)

	// Exactly one record removed, others untouched.
	require.Len(t, store.snap.Appointments, 1)
	assert.Equal(t, "appt-2", store.snap.Appointments[0].ID)
	assert.Len(t, store.snap.Quotes, 1)

	resp, err = svc.Delete(ctx, "quote-1", domain.KindQuote)
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Deleted)
	assert.Empty(t, store.snap.Quotes)
}

func TestDelete_UnknownID(t *testing.T) {
	store := seededStore()
	svc := newTestService(store)

	resp, err := svc.Delete(context.Background(), "missing", domain.KindAppointment)
	require.NoError(t, err)
	assert.Equal(t, 0, resp.Deleted)
	assert.Len(t, store.snap.Appointments, 2)
}

func TestDelete_InvalidKind(t *testing.T) {
	svc := newTestService(seededStore())

	_, err := svc.Delete(context.Background(), "appt-1", domain.RecordKind(""))
	assert.ErrorIs(t, err, ErrInvalidKind)
}

func TestUpdate_StoreFailure(t *testing.T) {
	store := seededStore()
	store.saveErr = assert.AnError
	svc := newTestService(store)

	_, err := svc.Update(context.Background(), "appt-1", &models.UpdateRecordRequest{})
	assert.ErrorIs(t, err, ErrInternal)
}
