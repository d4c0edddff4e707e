// Package boardingpass parses binary space partitioned boarding passes such as
// "FBFBBFFRLR" and derives their seat coordinates and seat ids.
package boardingpass

import (
	"fmt"
	"sync"

	"seat-finder/internal/winnow"
)

const (
	// RowBits is the number of leading row symbols
	RowBits = 7
	// ColBits is the number of trailing column symbols
	ColBits = 3
	// Width is the exact length of a code in symbols
	Width = RowBits + ColBits

	// Rows is the number of rows on the plane
	Rows = 1 << RowBits
	// Cols is the number of seats per row
	Cols = 1 << ColBits
)

// decode is swapped by tests to count winnow invocations.
var decode = winnow.Winnow

// Pass is a parsed boarding pass. Its row and column are decoded lazily and
// cached; a Pass is safe for concurrent readers.
type Pass struct {
	code string
	rows []winnow.Directive
	cols []winnow.Directive

	rowOnce sync.Once
	row     int
	colOnce sync.Once
	col     int
}

// Parse splits a code into its row and column directives.
func Parse(s string) (*Pass, error) {
	symbols := []rune(s)
	if len(symbols) != Width {
		return nil, fmt.Errorf("%w: got %d symbols, want %d", ErrWidthMismatch, len(symbols), Width)
	}

	rows, err := parseGroup(RowGroup, symbols[:RowBits], 0)
	if err != nil {
		return nil, err
	}
	cols, err := parseGroup(ColGroup, symbols[RowBits:], RowBits)
	if err != nil {
		return nil, err
	}

	return &Pass{code: s, rows: rows, cols: cols}, nil
}

func parseGroup(g Group, symbols []rune, offset int) ([]winnow.Directive, error) {
	dirs := make([]winnow.Directive, len(symbols))
	for i, r := range symbols {
		d, err := ParseSymbol(g, r)
		if err != nil {
			return nil, &UnknownSymbolError{Symbol: r, Group: g, Offset: offset + i}
		}
		dirs[i] = d
	}
	return dirs, nil
}

// Code returns the text the pass was parsed from.
func (p *Pass) Code() string {
	return p.code
}

// Row returns the decoded row in [0, Rows-1].
func (p *Pass) Row() int {
	p.rowOnce.Do(func() {
		p.row = decode(p.rows, 0, Rows-1)
	})
	return p.row
}

// Col returns the decoded column in [0, Cols-1].
func (p *Pass) Col() int {
	p.colOnce.Do(func() {
		p.col = decode(p.cols, 0, Cols-1)
	})
	return p.col
}

// Seat returns the decoded (row, column) pair.
func (p *Pass) Seat() (row, col int) {
	return p.Row(), p.Col()
}

// ID returns the seat id, row*Cols + column. It is recomputed on every call
// from the cached coordinates.
func (p *Pass) ID() int {
	return p.Row()*Cols + p.Col()
}

// Format builds the code that decodes to the given seat.
func Format(row, col int) (string, error) {
	if row < 0 || row >= Rows {
		return "", fmt.Errorf("%w: row %d", ErrOutOfRange, row)
	}
	if col < 0 || col >= Cols {
		return "", fmt.Errorf("%w: column %d", ErrOutOfRange, col)
	}

	code := make([]rune, 0, Width)
	for _, d := range winnow.Encode(row, RowBits) {
		code = append(code, symbolFor(RowGroup, d))
	}
	for _, d := range winnow.Encode(col, ColBits) {
		code = append(code, symbolFor(ColGroup, d))
	}
	return string(code), nil
}
