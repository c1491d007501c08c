package config

import (
	"time"
)

type AppConfig struct {
	TimezoneName   string `yaml:"timezone"`
	TimeoutSeconds int64  `yaml:"request-timeout-seconds"`
	SyncMinutes    int64  `yaml:"sync-interval-minutes"`
}

// Timezone is the viewer location used for calendar-day bucketing.
// An empty name means the host's local zone.
func (s *AppConfig) Timezone() *time.Location {
	loc, err := s.location()
	if err != nil {
		return time.Local
	}
	return loc
}

func (s *AppConfig) RequestTimeout() time.Duration {
	return time.Duration(s.TimeoutSeconds) * time.Second
}

// SyncInterval is how often sessions with unsynced records are reloaded.
// Zero turns the background sync off.
func (s *AppConfig) SyncInterval() time.Duration {
	return time.Duration(s.SyncMinutes) * time.Minute
}

func (s *AppConfig) location() (*time.Location, error) {
	if s.TimezoneName == "" {
		return time.Local, nil
	}
	return time.LoadLocation(s.TimezoneName)
}
