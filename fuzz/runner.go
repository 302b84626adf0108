package fuzz

import (
	"fmt"
	"strconv"

	"github.com/gptjddldi/binstr"
)

// Report summarizes one randomized run.
type Report struct {
	Cases      int
	Duplicates int
	Mismatches int
}

// Runner feeds generated digit strings through the parser and the strict
// comparator and checks every result against the reference conversion.
type Runner struct {
	gen      *Generator
	dedup    *Dedup
	failures *FailureWriter
}

func NewRunner(gen *Generator) *Runner {
	return &Runner{gen: gen}
}

// WithDedup skips inputs the runner has already exercised.
func (r *Runner) WithDedup(d *Dedup) *Runner {
	r.dedup = d
	return r
}

// WithFailureWriter records every mismatch to a corpus file.
func (r *Runner) WithFailureWriter(w *FailureWriter) *Runner {
	r.failures = w
	return r
}

// Run executes count cases. Parser results are checked on every case, the
// strict comparator on every consecutive pair.
func (r *Runner) Run(count int) (Report, error) {
	report := Report{}
	prev := ""
	havePrev := false
	for i := 0; i < count; i++ {
		s := r.gen.Next()
		report.Cases++
		if r.dedup != nil {
			if r.dedup.Seen(s) {
				report.Duplicates++
				continue
			}
			r.dedup.Add(s)
		}

		if err := r.checkParse(s, &report); err != nil {
			return report, err
		}
		if havePrev {
			if err := r.checkCompare(prev, s, &report); err != nil {
				return report, err
			}
		}
		prev = s
		havePrev = true
	}
	return report, nil
}

func (r *Runner) checkParse(s string, report *Report) error {
	got, gotOK := binstr.Parse(s)
	want, wantOK := reference(s)
	if gotOK == wantOK && (!gotOK || got == want) {
		return nil
	}
	report.Mismatches++
	return r.record(s, formatResult(got, gotOK), formatResult(want, wantOK))
}

func (r *Runner) checkCompare(a, b string, report *Report) error {
	x, xok := reference(a)
	y, yok := reference(b)
	wantOK := xok && yok
	want := 0
	if x < y {
		want = -1
	} else if x > y {
		want = 1
	}
	got, gotOK := binstr.CompareStrict(a, b)
	if gotOK == wantOK && (!gotOK || got == want) {
		return nil
	}
	report.Mismatches++
	input := fmt.Sprintf("%s vs %s", a, b)
	return r.record(input, formatCmp(got, gotOK), formatCmp(want, wantOK))
}

func (r *Runner) record(input, got, want string) error {
	if r.failures == nil {
		return nil
	}
	return r.failures.Write(input, got, want)
}

// reference computes the expected parse result with the standard library
// conversion plus the significant-digit bound.
func reference(s string) (uint64, bool) {
	i := 0
	for i < len(s) && s[i] == '0' {
		i++
	}
	if len(s)-i > binstr.MaxDigits {
		return 0, false
	}
	v, err := strconv.ParseUint(s, 2, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func formatResult(v uint64, ok bool) string {
	if !ok {
		return "invalid"
	}
	return strconv.FormatUint(v, 10)
}

func formatCmp(v int, ok bool) string {
	if !ok {
		return "incomparable"
	}
	return strconv.Itoa(v)
}
