// Package prompt provides the interactive pickers of the workspace explorer.
package prompt

import "errors"

// Error definitions for prompt package.
var (
	// ErrCancelled is returned when the user leaves a picker without choosing.
	ErrCancelled = errors.New("selection cancelled")
	// ErrNoChoices is returned when a selector is started without choices.
	ErrNoChoices = errors.New("no choices available")
	// ErrUnexpectedModel is returned when a program ends on a foreign model.
	ErrUnexpectedModel = errors.New("unexpected model type")
)
