package documents

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/drphonenord/repairdesk/internal/domain"
	"github.com/drphonenord/repairdesk/pkg/types"
)

type fakeStore struct {
	snap *domain.StoreSnapshot
	err  error
}

func (f *fakeStore) Load(ctx context.Context) (*domain.StoreSnapshot, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.snap, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var testCompany = domain.CompanyInfo{
	Name:    "Dr Phone Nord",
	Phone:   "+33 3 20 00 00 00",
	Email:   "contact@drphonenord.example",
	Address: "12 rue de la Gare, 59000 Lille",
}

func seededSnapshot() *domain.StoreSnapshot {
	snap := domain.NewStoreSnapshot()
	snap.Appointments = []domain.Appointment{
		{
			ID:        "appt-1",
			FirstName: "Marc",
			LastName:  "Lefevre",
			Phone:     "0611111111",
			Model:     "iPhone 12",
			Issue:     "cracked screen",
			Date:      "2024-01-15",
			Time:      types.TimeString("09:30"),
			Number:    1001,
			Status:    domain.StatusTodo,
			Checks:    domain.Checklist{PowerOn: true, SIM: true},
			Payment:   domain.Payment{Amount: 89.90, Method: "card", Paid: true},
			CreatedAt: time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC),
		},
	}
	snap.Quotes = []domain.Quote{
		{
			ID:        "quote-old",
			FirstName: "Claire",
			LastName:  "Dubois",
			Phone:     "0633333333",
			Email:     "claire@example.com",
			City:      "Roubaix",
			Model:     "Galaxy S21",
			Issue:     "battery drains; screen flickers",
			Viewed:    true,
			CreatedAt: time.Date(2024, 1, 5, 11, 0, 0, 0, time.UTC),
		},
		{
			ID:        "quote-new",
			FirstName: "Hugo",
			LastName:  "Martin",
			Phone:     "0644444444",
			Model:     "Pixel 7",
			Issue:     "does not charge",
			CreatedAt: time.Date(2024, 1, 12, 16, 0, 0, 0, time.UTC),
		},
	}
	return snap
}

func TestServiceFormPDF(t *testing.T) {
	svc := NewService(&fakeStore{snap: seededSnapshot()}, testCompany, nopLogger{})

	data, filename, err := svc.ServiceFormPDF(context.Background(), "appt-1")
	require.NoError(t, err)

	assert.Equal(t, "service-form-1001.pdf", filename)
	require.True(t, len(data) > 4)
	assert.Equal(t, "%PDF", string(data[:4]))
}

func TestServiceFormPDF_NotFound(t *testing.T) {
	svc := NewService(&fakeStore{snap: seededSnapshot()}, testCompany, nopLogger{})

	_, _, err := svc.ServiceFormPDF(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrRecordNotFound)
}

func TestServiceFormPDF_StoreFailure(t *testing.T) {
	svc := NewService(&fakeStore{err: assert.AnError}, testCompany, nopLogger{})

	_, _, err := svc.ServiceFormPDF(context.Background(), "appt-1")
	assert.ErrorIs(t, err, ErrInternal)
}

func TestQuotesCSV(t *testing.T) {
	svc := NewService(&fakeStore{snap: seededSnapshot()}, testCompany, nopLogger{})

	data, filename, err := svc.QuotesCSV(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "quotes.csv", filename)

	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	require.Len(t, lines, 3)

	assert.Equal(t, "Date;First;Last;Phone;Email;City;Model;Description;ID;Viewed", lines[0])

	// Newest quote first.
	assert.Equal(t, "2024-01-12;Hugo;Martin;0644444444;;;Pixel 7;does not charge;quote-new;no", lines[1])

	// A field containing the separator gets quoted.
	assert.Equal(t, `2024-01-05;Claire;Dubois;0633333333;claire@example.com;Roubaix;Galaxy S21;"battery drains; screen flickers";quote-old;yes`, lines[2])
}

func TestQuotesCSV_Empty(t *testing.T) {
	svc := NewService(&fakeStore{snap: domain.NewStoreSnapshot()}, testCompany, nopLogger{})

	data, _, err := svc.QuotesCSV(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Date;First;Last;Phone;Email;City;Model;Description;ID;Viewed\n", string(data))
}

func TestQuotesCSV_StoreFailure(t *testing.T) {
	svc := NewService(&fakeStore{err: assert.AnError}, testCompany, nopLogger{})

	_, _, err := svc.QuotesCSV(context.Background())
	assert.ErrorIs(t, err, ErrInternal)
}
