package cvi

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNoFrame is returned when an input carries no frame profile.
var ErrNoFrame = errors.New("cvi: input has no frame profile")

// UnsupportedInputError reports a render input the engine cannot interpret.
type UnsupportedInputError struct {
	// Value is the offending input.
	Value any
	// Reason says what was wrong with it.
	Reason string
}

func (e *UnsupportedInputError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("cvi: unsupported render input %T: %s", e.Value, e.Reason)
	}
	return fmt.Sprintf("cvi: unsupported render input %T", e.Value)
}

// Unwrap returns ErrNoFrame when the input had nothing to draw as a frame.
func (e *UnsupportedInputError) Unwrap() error {
	if e.Reason == reasonNoFrame {
		return ErrNoFrame
	}
	return nil
}

const reasonNoFrame = "no frame profile"

// RangeError reports axis scores outside [0, Max].
type RangeError struct {
	Profile string
	Axes    []Axis
	Max     float64
}

func (e *RangeError) Error() string {
	names := make([]string, len(e.Axes))
	for i, a := range e.Axes {
		names[i] = a.String()
	}
	return fmt.Sprintf("cvi: profile %q has %s outside [0, %s]",
		e.Profile, strings.Join(names, ", "), FormatScore(e.Max))
}
