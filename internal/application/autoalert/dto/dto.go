package dto

import "time"

// StatusDTO reports the generator configuration together with the live
// scheduler state. Enabled is the stored intent; Running is what the
// scheduler is actually doing right now.
type StatusDTO struct {
	Enabled         bool      `json:"enabled"`
	IntervalMinutes int       `json:"interval_minutes"`
	Running         bool      `json:"running"`
	UpdatedAt       time.Time `json:"updated_at"`
}
