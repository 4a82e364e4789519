package autoalert

import (
	"fmt"
	"time"
)

const (
	// MinIntervalMinutes and MaxIntervalMinutes bound the generation cadence.
	MinIntervalMinutes = 1
	MaxIntervalMinutes = 60

	DefaultIntervalMinutes = 3
)

// Config is the single persisted row controlling automatic alert generation.
type Config struct {
	id              uint
	enabled         bool
	intervalMinutes int
	updatedAt       time.Time
}

func NewConfig(enabled bool, intervalMinutes int, updatedAt time.Time) (*Config, error) {
	if err := validateInterval(intervalMinutes); err != nil {
		return nil, err
	}
	return &Config{
		enabled:         enabled,
		intervalMinutes: intervalMinutes,
		updatedAt:       updatedAt,
	}, nil
}

func ReconstructConfig(id uint, enabled bool, intervalMinutes int, updatedAt time.Time) (*Config, error) {
	if id == 0 {
		return nil, fmt.Errorf("config ID cannot be zero")
	}
	if err := validateInterval(intervalMinutes); err != nil {
		return nil, err
	}
	return &Config{
		id:              id,
		enabled:         enabled,
		intervalMinutes: intervalMinutes,
		updatedAt:       updatedAt,
	}, nil
}

func validateInterval(minutes int) error {
	if minutes < MinIntervalMinutes || minutes > MaxIntervalMinutes {
		return fmt.Errorf("interval must be between %d and %d minutes, got %d", MinIntervalMinutes, MaxIntervalMinutes, minutes)
	}
	return nil
}

func (c *Config) ID() uint             { return c.id }
func (c *Config) Enabled() bool        { return c.enabled }
func (c *Config) IntervalMinutes() int { return c.intervalMinutes }
func (c *Config) UpdatedAt() time.Time { return c.updatedAt }

func (c *Config) Interval() time.Duration {
	return time.Duration(c.intervalMinutes) * time.Minute
}

func (c *Config) SetEnabled(enabled bool, now time.Time) {
	c.enabled = enabled
	c.updatedAt = now
}

func (c *Config) SetIntervalMinutes(minutes int, now time.Time) error {
	if err := validateInterval(minutes); err != nil {
		return err
	}
	c.intervalMinutes = minutes
	c.updatedAt = now
	return nil
}

func (c *Config) SetID(id uint) error {
	if c.id != 0 {
		return fmt.Errorf("config ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("config ID cannot be zero")
	}
	c.id = id
	return nil
}
