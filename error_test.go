package dynaquery

import (
	"errors"
	"fmt"
	"testing"
)

// Tests for the error taxonomy

func TestConfigurationError(t *testing.T) {
	t.Run("matches ErrInvalidArgument", func(t *testing.T) {
		err := &ConfigurationError{Param: "Select", Value: "EVERYTHING"}
		if !errors.Is(err, ErrInvalidArgument) {
			t.Error("Expected ConfigurationError to match ErrInvalidArgument")
		}
	})

	t.Run("message includes the rejected value", func(t *testing.T) {
		err := &ConfigurationError{Param: "Select", Value: "EVERYTHING"}
		want := `parameter Select: invalid value "EVERYTHING"`
		if err.Error() != want {
			t.Errorf("Expected %q, got %q", want, err.Error())
		}
	})

	t.Run("reason overrides the default message", func(t *testing.T) {
		err := &ConfigurationError{Param: "IndexName", Reason: "operation is already bound to index \"year-index\""}
		want := `parameter IndexName: operation is already bound to index "year-index"`
		if err.Error() != want {
			t.Errorf("Expected %q, got %q", want, err.Error())
		}
	})

	t.Run("survives wrapping", func(t *testing.T) {
		err := fmt.Errorf("query failed: %w", &ConfigurationError{Param: "Select"})
		if !errors.Is(err, ErrInvalidArgument) {
			t.Error("Expected wrapped ConfigurationError to match ErrInvalidArgument")
		}
		var confErr *ConfigurationError
		if !errors.As(err, &confErr) {
			t.Error("Expected errors.As to recover the ConfigurationError")
		}
	})
}

func TestBadPageSentinel(t *testing.T) {
	err := fmt.Errorf("page reports count 1 but carries 2 items: %w", ErrBadPage)
	if !errors.Is(err, ErrBadPage) {
		t.Error("Expected wrapped error to match ErrBadPage")
	}
}
