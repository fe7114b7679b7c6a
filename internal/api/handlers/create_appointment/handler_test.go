package create_appointment

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	createAppointment "github.com/drphonenord/repairdesk/internal/usecase/create_appointment"
)

type fakeUseCase struct {
	resp *createAppointment.Response
	err  error
	got  *createAppointment.Request
}

func (f *fakeUseCase) Execute(ctx context.Context, req *createAppointment.Request) (*createAppointment.Response, error) {
	f.got = req
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

const validBody = `{
	"first": "Marc",
	"last": "Lefevre",
	"tel": "0611111111",
	"model": "iPhone 12",
	"issue": "cracked screen",
	"date": "2024-01-15",
	"time": "09:30"
}`

func post(h *Handler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/appointments", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandle_Created(t *testing.T) {
	uc := &fakeUseCase{resp: &createAppointment.Response{ID: "appt-1", Number: 1001}}
	h := NewHandler(uc, nopLogger{})

	rec := post(h, validBody)
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp AppointmentCreatedResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "appt-1", resp.ID)
	assert.Equal(t, 1001, resp.Number)

	require.NotNil(t, uc.got)
	assert.Equal(t, "Marc", uc.got.FirstName)
	assert.Equal(t, "09:30", uc.got.Time.String())
	assert.Equal(t, "2024-01-15", uc.got.Date.Format("2006-01-02"))
}

func TestHandle_BadRequests(t *testing.T) {
	h := NewHandler(&fakeUseCase{}, nopLogger{})

	testCases := []struct {
		name string
		body string
	}{
		{name: "not json", body: "not json"},
		{name: "unknown field", body: `{"first":"a","unknown":1}`},
		{name: "bad date", body: `{"first":"a","last":"b","tel":"1","model":"x","issue":"y","date":"15/01/2024","time":"09:30"}`},
		{name: "bad time", body: `{"first":"a","last":"b","tel":"1","model":"x","issue":"y","date":"2024-01-15","time":"9h30"}`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rec := post(h, tc.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestHandle_UseCaseErrors(t *testing.T) {
	testCases := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "invalid input", err: createAppointment.ErrInvalidInput, wantStatus: http.StatusBadRequest},
		{name: "out of hours", err: createAppointment.ErrOutOfHours, wantStatus: http.StatusBadRequest},
		{name: "slot full", err: createAppointment.ErrSlotFull, wantStatus: http.StatusConflict},
		{name: "internal", err: createAppointment.ErrInternal, wantStatus: http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			h := NewHandler(&fakeUseCase{err: tc.err}, nopLogger{})
			rec := post(h, validBody)
			assert.Equal(t, tc.wantStatus, rec.Code)
		})
	}
}
