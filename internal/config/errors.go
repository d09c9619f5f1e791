package config

import "errors"

// Errors returned by configuration loading.
var (
	// ErrUnknownMode indicates a keybinds section names a mode that
	// does not exist.
	ErrUnknownMode = errors.New("unknown input mode")

	// ErrBadKeySpec indicates a key spec could not be parsed.
	ErrBadKeySpec = errors.New("bad key spec")

	// ErrBadAction indicates a bound action is missing or names an
	// unknown kind.
	ErrBadAction = errors.New("bad action")

	// ErrBadDuration indicates a duration option could not be parsed.
	ErrBadDuration = errors.New("bad duration")
)
