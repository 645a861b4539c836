// Package theme keeps a visitor's light/dark preference consistent between the
// server-side cookie and the client-side local record.
package theme

import (
	"context"
	"errors"
	"fmt"
)

// Theme is the visitor's colour scheme preference.
type Theme string

const (
	Light Theme = "light"
	Dark  Theme = "dark"

	// Default is applied whenever no preference has been recorded yet.
	Default = Light
)

// ErrInvalidTheme is returned when a value is neither "light" nor "dark".
var ErrInvalidTheme = errors.New("invalid theme")

// Parse converts s into a Theme, rejecting anything outside the enum.
func Parse(s string) (Theme, error) {
	t := Theme(s)
	if !t.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidTheme, s)
	}
	return t, nil
}

// Valid reports whether t is one of the two legal values.
func (t Theme) Valid() bool {
	return t == Light || t == Dark
}

// Opposite returns the other theme. Invalid values flip to Dark, since they
// render as Light.
func (t Theme) Opposite() Theme {
	if t == Dark {
		return Light
	}
	return Dark
}

func (t Theme) String() string { return string(t) }

type contextKey struct{}

// WithTheme returns a copy of ctx carrying the effective theme for the request.
func WithTheme(ctx context.Context, t Theme) context.Context {
	return context.WithValue(ctx, contextKey{}, t)
}

// FromContext returns the theme stored by the Gate. ok is false when the
// request did not pass through the Gate.
func FromContext(ctx context.Context) (Theme, bool) {
	t, ok := ctx.Value(contextKey{}).(Theme)
	return t, ok
}
