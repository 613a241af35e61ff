package config

import (
	"errors"
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/pkg/types"
)

// Драйверы хранилища
const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
)

// ErrInvalidConfig возвращается при некорректной конфигурации
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config конфигурация сервиса
type Config struct {
	Server        ServerConfig          `toml:"server"`
	Logs          LogsConfig            `toml:"logs"`
	Metrics       MetricsConfig         `toml:"metrics"`
	Storage       StorageConfig         `toml:"storage"`
	Database      DatabaseConfig        `toml:"database"`
	Booking       BookingConfig         `toml:"booking"`
	RateLimit     RateLimitConfig       `toml:"rate_limit"`
	BusinessHours []BusinessHoursConfig `toml:"business_hours"`
}

// ServerConfig параметры HTTP сервера (таймауты в секундах)
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// LogsConfig параметры логирования
type LogsConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// MetricsConfig параметры Prometheus метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// StorageConfig выбор хранилища
type StorageConfig struct {
	Driver string `toml:"driver"` // memory | postgres
}

// DatabaseConfig параметры подключения к PostgreSQL
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // секунды
}

// BookingConfig параметры движка бронирования
type BookingConfig struct {
	SlotDurationMinutes int  `toml:"slot_duration_minutes"`
	MaxBookingsPerSlot  int  `toml:"max_bookings_per_slot"`
	AdvanceBookingDays  int  `toml:"advance_booking_days"`
	SeedCatalog         bool `toml:"seed_catalog"`
}

// RateLimitConfig ограничение частоты запросов на клиента
type RateLimitConfig struct {
	Enabled           bool    `toml:"enabled"`
	RequestsPerSecond float64 `toml:"requests_per_second"`
	Burst             int     `toml:"burst"`
}

// BusinessHoursConfig расписание дня недели
type BusinessHoursConfig struct {
	DayOfWeek int    `toml:"day_of_week"`
	OpenTime  string `toml:"open_time"`
	CloseTime string `toml:"close_time"`
	IsOpen    bool   `toml:"is_open"`
}

// DSN возвращает строку подключения к PostgreSQL
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// Load читает конфигурацию из toml файла, применяет значения по умолчанию и валидирует
func Load(path string) (*Config, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Parse разбирает конфигурацию из строки
func Parse(data string) (*Config, error) {
	cfg := Default()
	if _, err := toml.Decode(data, cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Default возвращает конфигурацию по умолчанию
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     15,
			WriteTimeout:    15,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Enabled:     false,
			Path:        "/metrics",
			ServiceName: "salon-service",
		},
		Storage: StorageConfig{
			Driver: StorageMemory,
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    10,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Booking: BookingConfig{
			SlotDurationMinutes: domain.DefaultSlotDurationMinutes,
			MaxBookingsPerSlot:  domain.DefaultMaxBookingsPerSlot,
			AdvanceBookingDays:  14,
			SeedCatalog:         true,
		},
		RateLimit: RateLimitConfig{
			Enabled:           false,
			RequestsPerSecond: 10,
			Burst:             20,
		},
	}
}

// Validate проверяет согласованность конфигурации
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port %d out of range", ErrInvalidConfig, c.Server.HTTPPort)
	}

	switch c.Storage.Driver {
	case StorageMemory:
	case StoragePostgres:
		if c.Database.Host == "" || c.Database.DBName == "" {
			return fmt.Errorf("%w: database.host and database.dbname are required for postgres storage", ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("%w: unknown storage.driver %q", ErrInvalidConfig, c.Storage.Driver)
	}

	if c.Booking.SlotDurationMinutes < domain.MinSlotDurationMinutes || c.Booking.SlotDurationMinutes > domain.MaxSlotDurationMinutes {
		return fmt.Errorf("%w: booking.slot_duration_minutes must be between %d and %d",
			ErrInvalidConfig, domain.MinSlotDurationMinutes, domain.MaxSlotDurationMinutes)
	}
	if c.Booking.MaxBookingsPerSlot <= 0 {
		return fmt.Errorf("%w: booking.max_bookings_per_slot must be positive", ErrInvalidConfig)
	}
	if c.Booking.AdvanceBookingDays < 0 {
		return fmt.Errorf("%w: booking.advance_booking_days must not be negative", ErrInvalidConfig)
	}

	if c.RateLimit.Enabled && (c.RateLimit.RequestsPerSecond <= 0 || c.RateLimit.Burst <= 0) {
		return fmt.Errorf("%w: rate_limit requires positive requests_per_second and burst", ErrInvalidConfig)
	}

	if _, err := c.DomainBusinessHours(); err != nil {
		return err
	}

	return nil
}

// DomainBusinessHours конвертирует расписание в доменные модели.
// Пустое расписание означает расписание по умолчанию.
func (c *Config) DomainBusinessHours() ([]domain.BusinessHours, error) {
	if len(c.BusinessHours) == 0 {
		return domain.DefaultBusinessHours(), nil
	}

	seen := make(map[int]bool, len(c.BusinessHours))
	result := make([]domain.BusinessHours, 0, len(c.BusinessHours))

	for _, h := range c.BusinessHours {
		if seen[h.DayOfWeek] {
			return nil, fmt.Errorf("%w: business_hours day %d listed twice", ErrInvalidConfig, h.DayOfWeek)
		}
		seen[h.DayOfWeek] = true

		hours := domain.BusinessHours{
			DayOfWeek: h.DayOfWeek,
			OpenTime:  types.TimeString(h.OpenTime),
			CloseTime: types.TimeString(h.CloseTime),
			IsOpen:    h.IsOpen,
		}
		if !hours.IsValid() {
			return nil, fmt.Errorf("%w: business_hours day %d (%s-%s, open=%v)",
				ErrInvalidConfig, h.DayOfWeek, h.OpenTime, h.CloseTime, h.IsOpen)
		}
		result = append(result, hours)
	}

	return result, nil
}
