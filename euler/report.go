package euler

import (
	"fmt"
	"math"
)

// Report summarizes the length bookkeeping of a chain, for validating the
// approximation against the theoretical clothoid length.
type Report struct {
	N         int
	ArcLength float64 // realized length of the real arcs
	Target    float64 // theoretical clothoid length
	ChordSum  float64 // realized chord length, boundary chords at half weight
}

// Report returns the length bookkeeping of the chain.
func (chain *ChainResult) Report() Report {
	return Report{
		N:         chain.Spec.N,
		ArcLength: chain.ArcLength,
		Target:    chain.Target,
		ChordSum:  chain.ChordSum,
	}
}

// ArcError is the relative deviation of the realized arc length from the target.
func (r Report) ArcError() float64 {
	return math.Abs(r.ArcLength-r.Target) / r.Target
}

// ChordError is the relative deviation of the realized chord length from the target.
func (r Report) ChordError() float64 {
	return math.Abs(r.ChordSum-r.Target) / r.Target
}

func (r Report) String() string {
	return fmt.Sprintf("Actual arcLength= %.10g Desired = %.10g  Total Chord Length = %.10g",
		r.ArcLength, r.Target, r.ChordSum)
}

// Convergence assembles spec once for every segment count in ns and reports
// the length bookkeeping of each chain. The chord error of the equal-chord
// construction shrinks with 1/N², so doubling N should divide it by about 4.
func Convergence(spec SpiralSpec, ns ...int) ([]Report, error) {
	reports := make([]Report, 0, len(ns))
	for _, n := range ns {
		spec.N = n
		chain, err := Assemble(spec)
		if err != nil {
			return nil, fmt.Errorf("N = %d: %w", n, err)
		}
		reports = append(reports, chain.Report())
	}
	return reports, nil
}
