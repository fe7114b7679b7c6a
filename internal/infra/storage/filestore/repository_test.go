package filestore

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/drphonenord/repairdesk/internal/domain"
)

func TestRepository_Load_MissingFile(t *testing.T) {
	repo := NewRepository(filepath.Join(t.TempDir(), "store.json"))

	snap, err := repo.Load(context.Background())
	require.NoError(t, err)

	assert.Empty(t, snap.Appointments)
	assert.Empty(t, snap.Quotes)
	assert.Equal(t, domain.FirstAppointmentNumber, snap.NextNumber)
}

func TestRepository_Load_CorruptedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := NewRepository(path).Load(context.Background())
	assert.ErrorIs(t, err, ErrStoreCorrupted)
}

func TestRepository_UpdateRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.json")
	repo := NewRepository(path)
	ctx := context.Background()

	err := repo.Update(ctx, func(snap *domain.StoreSnapshot) error {
		snap.Appointments = append(snap.Appointments, domain.Appointment{
			ID:        "a1",
			FirstName: "Jean",
			LastName:  "Martin",
			Date:      "2024-01-15",
			Time:      "10:00",
			Number:    snap.TakeNumber(),
			CreatedAt: time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC),
		})
		return nil
	})
	require.NoError(t, err)

	// A fresh repository on the same file sees the persisted state.
	snap, err := NewRepository(path).Load(ctx)
	require.NoError(t, err)
	require.Len(t, snap.Appointments, 1)
	assert.Equal(t, "a1", snap.Appointments[0].ID)
	assert.Equal(t, domain.FirstAppointmentNumber, snap.Appointments[0].Number)
	assert.Equal(t, domain.FirstAppointmentNumber+1, snap.NextNumber)
}

func TestRepository_Update_ErrorDiscardsChanges(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.json")
	repo := NewRepository(path)
	ctx := context.Background()

	require.NoError(t, repo.Update(ctx, func(snap *domain.StoreSnapshot) error {
		snap.Quotes = append(snap.Quotes, domain.Quote{ID: "q1"})
		return nil
	}))

	wantErr := assert.AnError
	err := repo.Update(ctx, func(snap *domain.StoreSnapshot) error {
		snap.Quotes = nil
		return wantErr
	})
	assert.ErrorIs(t, err, wantErr)

	snap, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Len(t, snap.Quotes, 1)
}

func TestRepository_TakeNumberSequence(t *testing.T) {
	repo := NewRepository(filepath.Join(t.TempDir(), "store.json"))
	ctx := context.Background()

	var numbers []int
	for i := 0; i < 3; i++ {
		require.NoError(t, repo.Update(ctx, func(snap *domain.StoreSnapshot) error {
			numbers = append(numbers, snap.TakeNumber())
			return nil
		}))
	}

	assert.Equal(t, []int{1001, 1002, 1003}, numbers)
}
