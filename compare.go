package binstr

// Rank tiers for the lenient order, lowest first.
const (
	rankInvalid = iota
	rankEmpty
	rankValid
)

// CompareStrict compares two digit strings by numeric value.
// The result is -1, 0 or 1 with ok=true when both operands parse; if
// either operand is invalid (including empty) the pair is incomparable
// and ok is false.
func CompareStrict(a, b string) (cmp int, ok bool) {
	x, xok := Parse(a)
	y, yok := Parse(b)
	if !xok || !yok {
		return 0, false
	}
	return compareUint(x, y), true
}

// Compare is a total order over arbitrary strings, usable as a sort
// function for mixed valid/invalid input. Invalid strings rank below
// empty strings, empty strings rank below every valid value, and valid
// values compare numerically. Ties inside the invalid and empty tiers
// are equal.
func Compare(a, b string) int {
	x, xok := Parse(a)
	y, yok := Parse(b)
	ra := rank(a, xok)
	rb := rank(b, yok)
	if ra != rb {
		return compareUint(uint64(ra), uint64(rb))
	}
	if ra == rankValid {
		return compareUint(x, y)
	}
	return 0
}

func rank(s string, ok bool) int {
	switch {
	case ok:
		return rankValid
	case len(s) == 0:
		return rankEmpty
	default:
		return rankInvalid
	}
}

func compareUint(a, b uint64) int {
	if a < b {
		return -1
	} else if a > b {
		return 1
	}
	return 0
}
