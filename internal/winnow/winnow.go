package winnow

// Directive selects which half of a range survives one bisection step.
type Directive uint8

const (
	// Lower keeps the lower half of the current range
	Lower Directive = iota
	// Upper keeps the upper half of the current range
	Upper
)

func (d Directive) String() string {
	switch d {
	case Lower:
		return "Lower"
	case Upper:
		return "Upper"
	default:
		return "Directive(?)"
	}
}

// Winnow bisects the closed range [lo, hi] once per directive and returns the
// value the range converges to.
//
// The range size must be 2^len(dirs). An empty sequence returns hi unchanged.
func Winnow(dirs []Directive, lo, hi int) int {
	for _, d := range dirs {
		mid := (lo + hi) / 2
		switch d {
		case Lower:
			hi = mid
		case Upper:
			lo = mid
		}
	}

	// floor division can leave lo one below hi, so hi holds the decoded value
	return hi
}

// Encode returns the n directives that winnow [0, 2^n-1] down to v,
// most significant bit first.
func Encode(v, n int) []Directive {
	dirs := make([]Directive, n)
	for i := 0; i < n; i++ {
		if v&(1<<(n-1-i)) != 0 {
			dirs[i] = Upper
		} else {
			dirs[i] = Lower
		}
	}
	return dirs
}
