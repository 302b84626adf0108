// Package fuzz drives the binstr parser and comparators against randomly
// generated digit strings and checks every result against a reference
// conversion.
package fuzz

import (
	"math/rand"
)

// Generator produces random binary digit strings. Runs with the same seed
// produce the same sequence.
type Generator struct {
	r *rand.Rand

	maxLen  int
	padProb float64
	// probability that a generated string gets one byte corrupted into a
	// non-digit, exercising the invalid path
	corruptProb float64
}

func NewGenerator(seed int64, maxLen int, padProb, corruptProb float64) *Generator {
	if maxLen < 1 {
		maxLen = 1
	}
	return &Generator{
		r:           rand.New(rand.NewSource(seed)),
		maxLen:      maxLen,
		padProb:     padProb,
		corruptProb: corruptProb,
	}
}

// Next returns the next digit string. The significant length is uniform in
// [1, maxLen]; leading zeros are prepended with padProb so zero-stripping
// gets exercised.
func (g *Generator) Next() string {
	length := 1 + g.r.Intn(g.maxLen)
	pad := 0
	if g.r.Float64() < g.padProb {
		pad = 1 + g.r.Intn(8)
	}
	buf := make([]byte, pad+length)
	for i := 0; i < pad; i++ {
		buf[i] = '0'
	}
	for i := pad; i < len(buf); i++ {
		buf[i] = byte('0' + g.r.Intn(2))
	}
	if g.r.Float64() < g.corruptProb {
		buf[g.r.Intn(len(buf))] = corruptBytes[g.r.Intn(len(corruptBytes))]
	}
	return string(buf)
}

var corruptBytes = []byte{'2', '7', '9', 'a', 'x', ' ', '-'}
