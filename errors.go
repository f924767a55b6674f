package splash

import "fmt"

// ConfigError reports an invalid Config field. It is returned by
// NewWaveField, Regenerate, NewBody and the config loaders; Step and
// InjectImpulse never fail.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("splash: invalid config: %s %s", e.Field, e.Reason)
}

func configErrorf(field, format string, args ...any) *ConfigError {
	return &ConfigError{Field: field, Reason: fmt.Sprintf(format, args...)}
}
