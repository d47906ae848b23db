// Package apperr defines the error taxonomy shared across daybook.
package apperr

import (
	"errors"
	"fmt"
)

var (
	ErrVaultNotFound = errors.New("vault not found")
	ErrNoVaults      = errors.New("no vaults configured")
)

// ParseError reports a date or time string that failed every candidate
// pattern. Context names the locale or the explicit override that was tried.
type ParseError struct {
	Input   string
	Context string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("could not parse %q (%s)", e.Input, e.Context)
}

// ConfigError reports an unusable configuration value, such as an
// unrecognized override alias or a bad vault path.
type ConfigError struct {
	Msg string
}

func (e *ConfigError) Error() string {
	return "config: " + e.Msg
}

// Configf builds a ConfigError from a format string.
func Configf(format string, args ...any) *ConfigError {
	return &ConfigError{Msg: fmt.Sprintf(format, args...)}
}
