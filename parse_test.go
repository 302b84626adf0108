package binstr

import (
	"math/rand"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  uint64
		ok    bool
	}{
		{name: "zero", input: "0", want: 0, ok: true},
		{name: "one", input: "1", want: 1, ok: true},
		{name: "all zeros", input: "00000", want: 0, ok: true},
		{name: "leading zeros", input: "00001", want: 1, ok: true},
		{name: "ten", input: "1010", want: 10, ok: true},
		{name: "padded ten", input: "0001010", want: 10, ok: true},
		{name: "empty", input: "", ok: false},
		{name: "bad char", input: "10201", ok: false},
		{name: "bad char after zeros", input: "000x", ok: false},
		{name: "decimal digit", input: "12", ok: false},
		{name: "space", input: "10 1", ok: false},
		{name: "max value", input: strings.Repeat("1", 53), want: 9007199254740991, ok: true},
		{name: "max value padded", input: "0000" + strings.Repeat("1", 53), want: 9007199254740991, ok: true},
		{name: "too long", input: strings.Repeat("1", 54), ok: false},
		{name: "too long zeros then ones", input: "1" + strings.Repeat("0", 53), ok: false},
		{name: "54th digit zero still too long", input: "0" + strings.Repeat("1", 54), ok: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := Parse(tc.input)
			assert.Equal(t, tc.ok, ok)
			if tc.ok {
				assert.Equal(t, tc.want, got)
			}
		})
	}
}

func TestParseMaxValueConstant(t *testing.T) {
	got, ok := Parse(strings.Repeat("1", MaxDigits))
	assert.True(t, ok)
	assert.Equal(t, MaxValue, got)
}

func TestParseMatchesReference(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for i := 0; i < 5000; i++ {
		length := 1 + r.Intn(MaxDigits)
		var sb strings.Builder
		for j := 0; j < r.Intn(4); j++ {
			sb.WriteByte('0')
		}
		for j := 0; j < length; j++ {
			sb.WriteByte(byte('0' + r.Intn(2)))
		}
		s := sb.String()
		want, err := strconv.ParseUint(s, 2, 64)
		if err != nil {
			t.Fatalf("reference rejected %q: %v", s, err)
		}
		got, ok := Parse(s)
		assert.True(t, ok, "input %q", s)
		assert.Equal(t, want, got, "input %q", s)
	}
}

func TestParseIdempotentUnderZeroPadding(t *testing.T) {
	r := rand.New(rand.NewSource(2))
	for i := 0; i < 1000; i++ {
		length := 1 + r.Intn(MaxDigits)
		var sb strings.Builder
		for j := 0; j < length; j++ {
			sb.WriteByte(byte('0' + r.Intn(2)))
		}
		s := sb.String()
		want, ok := Parse(s)
		assert.True(t, ok)
		got, ok := Parse(strings.Repeat("0", 1+r.Intn(10)) + s)
		assert.True(t, ok)
		assert.Equal(t, want, got)
	}
}
