package boardingpass

import "seat-finder/internal/winnow"

// Group identifies which half of a code a symbol belongs to.
type Group uint8

const (
	// RowGroup covers the leading RowBits symbols (F/B)
	RowGroup Group = iota
	// ColGroup covers the trailing ColBits symbols (L/R)
	ColGroup
)

func (g Group) String() string {
	switch g {
	case RowGroup:
		return "row"
	case ColGroup:
		return "column"
	default:
		return "unknown"
	}
}

// ParseSymbol maps a single rune of the given group onto its directive.
func ParseSymbol(g Group, r rune) (winnow.Directive, error) {
	switch g {
	case RowGroup:
		switch r {
		case 'F':
			return winnow.Lower, nil
		case 'B':
			return winnow.Upper, nil
		}
	case ColGroup:
		switch r {
		case 'L':
			return winnow.Lower, nil
		case 'R':
			return winnow.Upper, nil
		}
	}
	return 0, &UnknownSymbolError{Symbol: r, Group: g, Offset: -1}
}

// symbolFor is the inverse of ParseSymbol.
func symbolFor(g Group, d winnow.Directive) rune {
	if g == RowGroup {
		if d == winnow.Upper {
			return 'B'
		}
		return 'F'
	}
	if d == winnow.Upper {
		return 'R'
	}
	return 'L'
}
