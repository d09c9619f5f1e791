package protocol

import (
	"fmt"
	"strings"
)

// Direction is a movement or split direction carried by directional actions.
type Direction uint8

const (
	// DirNone indicates no direction.
	DirNone Direction = iota
	// DirLeft indicates leftward direction.
	DirLeft
	// DirRight indicates rightward direction.
	DirRight
	// DirUp indicates upward direction.
	DirUp
	// DirDown indicates downward direction.
	DirDown
)

// String returns the canonical lowercase direction name.
func (d Direction) String() string {
	switch d {
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	default:
		return "none"
	}
}

// ParseDirection returns the direction for a name (case-insensitive).
func ParseDirection(name string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "left":
		return DirLeft, nil
	case "right":
		return DirRight, nil
	case "up":
		return DirUp, nil
	case "down":
		return DirDown, nil
	case "", "none":
		return DirNone, nil
	default:
		return DirNone, fmt.Errorf("protocol: unknown direction %q", name)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (d Direction) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Direction) UnmarshalText(text []byte) error {
	parsed, err := ParseDirection(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
