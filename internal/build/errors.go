package build

import (
	"errors"
	"fmt"
)

// ErrConfiguration matches every ConfigurationError via errors.Is.
var ErrConfiguration = errors.New("configuration error")

// ConfigurationError aborts the configuration phase before any task runs:
// duplicate registrations, task-name collisions, unresolvable bindings.
type ConfigurationError struct {
	Subject string
	Reason  string
}

// Error implements the error interface for ConfigurationError.
func (e *ConfigurationError) Error() string {
	if e.Subject == "" {
		return fmt.Sprintf("configuration error: %s", e.Reason)
	}
	return fmt.Sprintf("configuration error: %s: %s", e.Subject, e.Reason)
}

// Is lets errors.Is(err, ErrConfiguration) match.
func (e *ConfigurationError) Is(target error) bool {
	return target == ErrConfiguration
}

func configErrorf(subject, format string, args ...any) error {
	return &ConfigurationError{Subject: subject, Reason: fmt.Sprintf(format, args...)}
}
