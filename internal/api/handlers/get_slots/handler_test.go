package get_slots

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	getSlots "github.com/drphonenord/repairdesk/internal/usecase/get_slots"
	"github.com/drphonenord/repairdesk/pkg/types"
)

type fakeUseCase struct {
	resp *getSlots.Response
	err  error
}

func (f *fakeUseCase) Execute(ctx context.Context, req *getSlots.Request) (*getSlots.Response, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestHandle(t *testing.T) {
	uc := &fakeUseCase{resp: &getSlots.Response{
		Date: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		Slots: []getSlots.Slot{
			{Time: types.TimeString("08:00"), Count: 1},
			{Time: types.TimeString("08:30"), Count: 3, Full: true},
		},
		MaxPerSlot:  3,
		SlotMinutes: 30,
	}}
	h := NewHandler(uc, nopLogger{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/slots?date=2024-01-15", nil)
	rec := httptest.NewRecorder()
	h.Handle(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp SlotsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "2024-01-15", resp.Date)
	require.Len(t, resp.Slots, 2)
	assert.Equal(t, "08:00", resp.Slots[0].Time)
	assert.False(t, resp.Slots[0].Full)
	assert.True(t, resp.Slots[1].Full)
	assert.Equal(t, 3, resp.MaxPerSlot)
}

func TestHandle_BadDate(t *testing.T) {
	h := NewHandler(&fakeUseCase{}, nopLogger{})

	testCases := []struct {
		name string
		url  string
	}{
		{name: "missing date", url: "/api/v1/slots"},
		{name: "wrong format", url: "/api/v1/slots?date=15-01-2024"},
		{name: "garbage", url: "/api/v1/slots?date=tomorrow"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tc.url, nil)
			rec := httptest.NewRecorder()
			h.Handle(rec, req)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestHandle_UseCaseFailure(t *testing.T) {
	h := NewHandler(&fakeUseCase{err: assert.AnError}, nopLogger{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/slots?date=2024-01-15", nil)
	rec := httptest.NewRecorder()
	h.Handle(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
