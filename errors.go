package dynaquery

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument is returned when an enumerated parameter receives a
	// value outside its closed set.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrBadPage is returned when a page response is malformed. Pages that
	// trip this check are never silently defaulted or retried.
	ErrBadPage = errors.New("malformed page response")
)

// ConfigurationError reports a builder method invoked with an unsupported
// value. It is recorded when the offending method is called and surfaces
// from the operation's execution entry points before any network call.
type ConfigurationError struct {
	Param  string // the request parameter being configured
	Value  string // the rejected value
	Reason string // optional detail beyond the value itself
}

func (e *ConfigurationError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("parameter %s: %s", e.Param, e.Reason)
	}
	return fmt.Sprintf("parameter %s: invalid value %q", e.Param, e.Value)
}

func (e *ConfigurationError) Is(target error) bool {
	return target == ErrInvalidArgument
}
