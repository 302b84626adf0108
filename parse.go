// Package binstr parses unsigned binary digit strings and orders them.
package binstr

// MaxDigits is the largest number of significant digits Parse accepts.
// A string of 53 ones is exactly 2^53-1, so the length check is an exact
// overflow bound for base 2, not an approximation.
const MaxDigits = 53

// MaxValue is the largest value Parse can return: 2^53 - 1.
const MaxValue uint64 = 1<<MaxDigits - 1

// Parse converts an unsigned binary digit string to its value.
// Leading zeros are skipped before the length check, so "00001" parses
// like "1". The second return is false for an empty string, for a string
// with more than MaxDigits significant digits, and for any character
// other than '0' or '1'. Zero is a valid result, distinct from invalid.
func Parse(s string) (uint64, bool) {
	if len(s) == 0 {
		return 0, false
	}
	i := 0
	for i < len(s) && s[i] == '0' {
		i++
	}
	digits := s[i:]
	if len(digits) > MaxDigits {
		return 0, false
	}
	var result uint64
	for j := 0; j < len(digits); j++ {
		v := digits[j]
		if v != '0' && v != '1' {
			return 0, false
		}
		result = result*2 + uint64(v-'0')
	}
	return result, true
}
