package ui

import "errors"

// ErrMissingProvider matches any *MissingProviderError via errors.Is.
var ErrMissingProvider = errors.New("missing Tabs provider")

// MissingProviderError is returned when a Tab or TabPanel is rendered without
// an enclosing Tabs. Component names the element that required the state.
type MissingProviderError struct {
	Component string
}

func (e *MissingProviderError) Error() string {
	return e.Component + " must be used within a Tabs component"
}

// Is reports whether target is ErrMissingProvider.
func (e *MissingProviderError) Is(target error) bool {
	return target == ErrMissingProvider
}
