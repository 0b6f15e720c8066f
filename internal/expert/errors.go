package expert

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidSymptom is returned when an identifier is not a known symptom.
	ErrInvalidSymptom = errors.New("unknown symptom")

	// ErrInvalidConfidence is returned for anything other than High, Medium or Low.
	ErrInvalidConfidence = errors.New("unknown confidence level")
)

// ConfigError reports a malformed rule table. It is fatal at startup: a
// store that fails validation is never handed to the evaluator.
type ConfigError struct {
	// Source names where the table came from (a file path, or "built-in").
	Source   string
	Problems []string
	Err      error
}

func (e *ConfigError) Error() string {
	var b strings.Builder
	b.WriteString("invalid rule configuration")
	if e.Source != "" {
		fmt.Fprintf(&b, " (%s)", e.Source)
	}
	switch {
	case len(e.Problems) > 0:
		b.WriteString(":\n  ")
		b.WriteString(strings.Join(e.Problems, "\n  "))
	case e.Err != nil:
		fmt.Fprintf(&b, ": %v", e.Err)
	}
	return b.String()
}

func (e *ConfigError) Unwrap() error { return e.Err }

// IsConfigError reports whether err is, or wraps, a *ConfigError.
func IsConfigError(err error) bool {
	var ce *ConfigError
	return errors.As(err, &ce)
}
