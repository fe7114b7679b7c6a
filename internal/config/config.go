package config

import (
	"fmt"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/drphonenord/repairdesk/internal/domain"
	"github.com/drphonenord/repairdesk/pkg/types"
)

// Config is the full application configuration, loaded once at startup and
// injected into the components that need it. Nothing reads it from ambient
// global state afterwards.
type Config struct {
	Server  ServerConfig  `toml:"server"`
	Logs    LogsConfig    `toml:"logs"`
	Metrics MetricsConfig `toml:"metrics"`
	Company CompanyConfig `toml:"company"`
	Booking BookingConfig `toml:"booking"`
	Admin   AdminConfig   `toml:"admin"`
	Storage StorageConfig `toml:"storage"`
	Mail    MailConfig    `toml:"mail"`
}

// ServerConfig holds the HTTP server settings.
type ServerConfig struct {
	HTTPPort        int     `toml:"http_port"`
	ReadTimeout     int     `toml:"read_timeout"`
	WriteTimeout    int     `toml:"write_timeout"`
	IdleTimeout     int     `toml:"idle_timeout"`
	ShutdownTimeout int     `toml:"shutdown_timeout"`
	RateLimitPerSec float64 `toml:"rate_limit_per_sec"`
	RateLimitBurst  int     `toml:"rate_limit_burst"`
}

// LogsConfig holds the logger settings.
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig holds the Prometheus settings.
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// CompanyConfig is the shop identity used on letterheads and in mail.
type CompanyConfig struct {
	Name    string `toml:"name"`
	Phone   string `toml:"phone"`
	Email   string `toml:"email"`
	Address string `toml:"address"`
}

// HoursConfig is the opening interval for one weekday.
type HoursConfig struct {
	Start string `toml:"start"`
	End   string `toml:"end"`
}

// BookingConfig holds the slot calculator and admission settings.
// Hours is keyed by weekday index, "0" = Sunday through "6" = Saturday;
// a missing key means closed that day.
type BookingConfig struct {
	Hours       map[string]HoursConfig `toml:"hours"`
	SlotMinutes int                    `toml:"slot_minutes"`
	MaxPerSlot  int                    `toml:"max_per_slot"`
}

// AdminConfig gates the back office. A single shared password, no accounts.
type AdminConfig struct {
	Password          string `toml:"password"`
	SessionTTLMinutes int    `toml:"session_ttl_minutes"`
}

// StorageConfig points at the store file.
type StorageConfig struct {
	File string `toml:"file"`
}

// MailConfig holds the outbound notification settings. An empty
// SendGridAPIKey disables real delivery; notifications are then only logged.
type MailConfig struct {
	SendGridAPIKey string `toml:"sendgrid_api_key"`
	FromEmail      string `toml:"from_email"`
	FromName       string `toml:"from_name"`
	NotifyTo       string `toml:"notify_to"`
}

// Load reads and validates the configuration from the given path.
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}

	cfg.applyDefaults()

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Server.HTTPPort == 0 {
		c.Server.HTTPPort = 5000
	}
	if c.Server.ReadTimeout <= 0 {
		c.Server.ReadTimeout = 10
	}
	if c.Server.WriteTimeout <= 0 {
		c.Server.WriteTimeout = 30
	}
	if c.Server.IdleTimeout <= 0 {
		c.Server.IdleTimeout = 60
	}
	if c.Server.ShutdownTimeout <= 0 {
		c.Server.ShutdownTimeout = 10
	}
	if c.Server.RateLimitPerSec <= 0 {
		c.Server.RateLimitPerSec = 5
	}
	if c.Server.RateLimitBurst <= 0 {
		c.Server.RateLimitBurst = 10
	}
	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}
	if c.Metrics.ServiceName == "" {
		c.Metrics.ServiceName = "repairdesk"
	}
	if c.Booking.SlotMinutes <= 0 {
		c.Booking.SlotMinutes = domain.DefaultSlotMinutes
	}
	if c.Booking.MaxPerSlot <= 0 {
		c.Booking.MaxPerSlot = domain.DefaultMaxPerSlot
	}
	if c.Admin.SessionTTLMinutes <= 0 {
		c.Admin.SessionTTLMinutes = 120
	}
	if c.Storage.File == "" {
		c.Storage.File = "data/store.json"
	}
}

func (c *Config) validate() error {
	if c.Admin.Password == "" {
		return fmt.Errorf("config: admin.password is required")
	}
	for key, h := range c.Booking.Hours {
		day, err := strconv.Atoi(key)
		if err != nil || day < 0 || day > 6 {
			return fmt.Errorf("config: booking.hours key %q is not a weekday index 0-6", key)
		}
		start, err := types.NewTimeStringFromString(h.Start)
		if err != nil {
			return fmt.Errorf("config: booking.hours[%s].start: %w", key, err)
		}
		end, err := types.NewTimeStringFromString(h.End)
		if err != nil {
			return fmt.Errorf("config: booking.hours[%s].end: %w", key, err)
		}
		if !start.IsBefore(end) {
			return fmt.Errorf("config: booking.hours[%s]: start %s is not before end %s", key, start, end)
		}
	}
	return nil
}

// WeekSchedule converts the hours table into the domain representation.
func (c *Config) WeekSchedule() domain.WeekSchedule {
	schedule := make(domain.WeekSchedule, len(c.Booking.Hours))
	for key, h := range c.Booking.Hours {
		day, err := strconv.Atoi(key)
		if err != nil {
			continue // rejected by validate
		}
		schedule[time.Weekday(day)] = domain.DaySchedule{
			Start: types.TimeString(h.Start),
			End:   types.TimeString(h.End),
		}
	}
	return schedule
}

// CompanyInfo converts the company section into the domain representation.
func (c *Config) CompanyInfo() domain.CompanyInfo {
	return domain.CompanyInfo{
		Name:    c.Company.Name,
		Phone:   c.Company.Phone,
		Email:   c.Company.Email,
		Address: c.Company.Address,
	}
}
