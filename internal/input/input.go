// Package input merges keyboard and single-pointer input into a directional
// intent. It is frontend-agnostic: the terminal and window platforms feed
// raw events in and the game loop reads Intent once per frame.
package input

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownDirection is returned when a direction name cannot be parsed.
var ErrUnknownDirection = errors.New("input: unknown direction")

// Direction is one of the four movement directions.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight

	numDirections
)

// Directions lists every direction in index order.
var Directions = [numDirections]Direction{DirUp, DirDown, DirLeft, DirRight}

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// Valid reports whether d is one of the four directions.
func (d Direction) Valid() bool {
	return d >= 0 && d < numDirections
}

// ParseDirection converts a name such as "up" or "ArrowLeft" to a Direction.
func ParseDirection(name string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "up", "arrowup":
		return DirUp, nil
	case "down", "arrowdown":
		return DirDown, nil
	case "left", "arrowleft":
		return DirLeft, nil
	case "right", "arrowright":
		return DirRight, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownDirection, name)
}

// Intent is the pressed state of each direction.
type Intent [numDirections]bool

// Has returns true if the direction is pressed.
func (i Intent) Has(d Direction) bool {
	return d.Valid() && i[d]
}

// Set marks the direction pressed or released. Invalid directions are ignored.
func (i *Intent) Set(d Direction, pressed bool) {
	if d.Valid() {
		i[d] = pressed
	}
}

// Or returns the per-direction union of two intents.
func (i Intent) Or(other Intent) Intent {
	var out Intent
	for d := range i {
		out[d] = i[d] || other[d]
	}
	return out
}

// Any returns true if at least one direction is pressed.
func (i Intent) Any() bool {
	for _, pressed := range i {
		if pressed {
			return true
		}
	}
	return false
}
