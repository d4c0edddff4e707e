package boardingpass

import (
	"errors"
	"fmt"
)

var (
	// ErrWidthMismatch is returned when a code is not exactly Width symbols long.
	ErrWidthMismatch = errors.New("width mismatch")

	// ErrUnknownSymbol is matched by every *UnknownSymbolError.
	ErrUnknownSymbol = errors.New("unknown symbol")

	// ErrOutOfRange is returned by Format for coordinates outside the seat map.
	ErrOutOfRange = errors.New("coordinate out of range")
)

// UnknownSymbolError reports a rune outside its group's alphabet.
type UnknownSymbolError struct {
	Symbol rune
	Group  Group
	// Offset is the rune position within the code, or -1 when unknown
	Offset int
}

func (e *UnknownSymbolError) Error() string {
	if e.Offset < 0 {
		return fmt.Sprintf("unknown %s symbol %q", e.Group, e.Symbol)
	}
	return fmt.Sprintf("unknown %s symbol %q at offset %d", e.Group, e.Symbol, e.Offset)
}

func (e *UnknownSymbolError) Is(target error) bool {
	return target == ErrUnknownSymbol
}
