package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
[server]
http_port = 8080

[admin]
password = "secret"

[booking]
slot_minutes = 30
max_per_slot = 3

[booking.hours.1]
start = "08:00"
end = "19:00"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, "secret", cfg.Admin.Password)
	assert.Equal(t, 30, cfg.Booking.SlotMinutes)
	assert.Equal(t, 3, cfg.Booking.MaxPerSlot)

	// Defaults kick in for everything unset.
	assert.Equal(t, 10, cfg.Server.ReadTimeout)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.Equal(t, "data/store.json", cfg.Storage.File)
	assert.Equal(t, 120, cfg.Admin.SessionTTLMinutes)

	schedule := cfg.WeekSchedule()
	day, ok := schedule[time.Monday]
	require.True(t, ok)
	assert.Equal(t, "08:00", day.Start.String())
	assert.Equal(t, "19:00", day.End.String())

	_, ok = schedule[time.Sunday]
	assert.False(t, ok)
}

func TestLoad_MissingPassword(t *testing.T) {
	path := writeConfig(t, `
[booking.hours.1]
start = "08:00"
end = "19:00"
`)

	_, err := Load(path)
	assert.ErrorContains(t, err, "admin.password")
}

func TestLoad_InvalidHours(t *testing.T) {
	testCases := []struct {
		name string
		body string
	}{
		{
			name: "bad weekday key",
			body: "[admin]\npassword = \"x\"\n[booking.hours.7]\nstart = \"08:00\"\nend = \"19:00\"\n",
		},
		{
			name: "bad start time",
			body: "[admin]\npassword = \"x\"\n[booking.hours.1]\nstart = \"8h00\"\nend = \"19:00\"\n",
		},
		{
			name: "start after end",
			body: "[admin]\npassword = \"x\"\n[booking.hours.1]\nstart = \"19:00\"\nend = \"08:00\"\n",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tc.body))
			assert.Error(t, err)
		})
	}
}
