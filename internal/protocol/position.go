package protocol

import "fmt"

// Position is a zero-based (line, column) cell coordinate.
type Position struct {
	Line   int `json:"line"`
	Column int `json:"column"`
}

// NewPosition creates a position from zero-based coordinates.
func NewPosition(line, column int) Position {
	return Position{Line: line, Column: column}
}

// PositionFromRaw normalizes a one-based terminal report coordinate to a
// zero-based Position. Terminal mouse reports count cells from (1,1); a
// coordinate at or below zero saturates to zero rather than going negative.
func PositionFromRaw(column, row int) Position {
	return Position{Line: saturatingDec(row), Column: saturatingDec(column)}
}

func saturatingDec(n int) int {
	if n <= 1 {
		return 0
	}
	return n - 1
}

// String returns the position as "(line,column)".
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Line, p.Column)
}
