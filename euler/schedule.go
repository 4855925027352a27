package euler

import (
	"fmt"
	"strings"

	"github.com/npillmayer/arcspiral"
)

// AngleSchedule holds the subtended angles alpha.0 … alpha.N of a chain.
// alpha.0 and alpha.N belong to the boundary steps, which are split into two
// half-arcs each.
type AngleSchedule []float64

// Schedule distributes the turning angle of a spiral onto n segments, with
// curvature interpolated linearly from 1/r1 to 1/r2:
//
//	alpha.i = ((1-i/n)/r1 + (i/n)/r2) / (1/r1 + 1/r2) ⋅ 2⋅totalAngle/n
//
// With the boundary entries counted at half weight the schedule sums up to
// totalAngle.
func Schedule(totalAngle, r1, r2 float64, n int) (AngleSchedule, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: segment count N = %d, must be at least 1", ErrInvalidConfiguration, n)
	}
	if err := validateRadii(r1, r2); err != nil {
		return nil, err
	}
	if !arcspiral.IsFinite(totalAngle) || totalAngle <= 0 {
		return nil, fmt.Errorf("%w: total angle = %g, must be positive", ErrInvalidConfiguration, totalAngle)
	}
	k1, k2 := 1/r1, 1/r2
	N := float64(n)
	alphas := make(AngleSchedule, n+1)
	for i := range alphas {
		t := float64(i) / N
		alphas[i] = ((1-t)*k1 + t*k2) / (k1 + k2) * 2 * totalAngle / N
	}
	tracer().Debugf("schedule for %d segments: %s", n, alphas)
	return alphas, nil
}

// TotalAngleFromLength returns the turning angle of a clothoid of the given
// length, with curvature running linearly from 1/r1 to 1/r2.
func TotalAngleFromLength(curveLength, r1, r2 float64) float64 {
	return curveLength * (1/r1 + 1/r2) / 2
}

// TargetLength returns the length of a clothoid turning by totalAngle, with
// curvature running linearly from 1/r1 to 1/r2.
func TargetLength(totalAngle, r1, r2 float64) float64 {
	return 2 * totalAngle / (1/r1 + 1/r2)
}

// N is the number of segments of the schedule.
func (alphas AngleSchedule) N() int {
	return len(alphas) - 1
}

// Sum adds up all entries of the schedule.
func (alphas AngleSchedule) Sum() float64 {
	var s float64
	for _, a := range alphas {
		s += a
	}
	return s
}

// TrapezoidSum adds up the schedule with alpha.0 and alpha.N at half weight.
// This is the turning angle of the visible curve.
func (alphas AngleSchedule) TrapezoidSum() float64 {
	if len(alphas) == 0 {
		return 0
	}
	return alphas.Sum() - (alphas[0]+alphas[len(alphas)-1])/2
}

// Interior returns alpha.1 … alpha.N-1.
func (alphas AngleSchedule) Interior() []float64 {
	if len(alphas) < 2 {
		return nil
	}
	return alphas[1 : len(alphas)-1]
}

// Debug Stringer, angles in degrees.
func (alphas AngleSchedule) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, a := range alphas {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%.4g°", a/arcspiral.Deg2Rad)
	}
	b.WriteByte(']')
	return b.String()
}
