package galleria

import (
	"errors"
	"fmt"
)

// ErrInvalidIndex is returned (and logged) when navigation is requested
// outside the current slot bounds. The request is ignored; no state is
// mutated.
var ErrInvalidIndex = errors.New("galleria: index out of range")

// ConfigurationError reports a fatal problem with the supplied
// configuration, raised synchronously before any state machine is
// constructed.
type ConfigurationError struct {
	Field  string
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("galleria: config %s: %s", e.Field, e.Reason)
}

// assetError wraps a single item's decode failure. It is recovered
// locally: the item is logged and excluded, the remaining sequence
// renumbered densely. Never fatal.
type assetError struct {
	Source string
	Err    error
}

func (e *assetError) Error() string {
	return fmt.Sprintf("galleria: asset %s: %v", e.Source, e.Err)
}

func (e *assetError) Unwrap() error {
	return e.Err
}
