package session

import (
	"log/slog"
	"time"
)

// ServiceOption configures a Service instance.
type ServiceOption func(*Service)

// WithClock sets the time source. Tests supply a fixed clock to make
// date arithmetic deterministic.
func WithClock(now func() time.Time) ServiceOption {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// WithIDGenerator sets the generator for session and purchase ids.
// The default produces UUID strings.
func WithIDGenerator(newID func() string) ServiceOption {
	return func(s *Service) {
		if newID != nil {
			s.newID = newID
		}
	}
}

// WithLogger sets the structured logger. Logging is discarded by default.
func WithLogger(log *slog.Logger) ServiceOption {
	return func(s *Service) {
		if log != nil {
			s.log = log
		}
	}
}
