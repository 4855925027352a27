package euler

import (
	"math"

	"github.com/npillmayer/arcspiral"
)

// Boundary is the first or last step of a chain. The step is split into two
// half-arcs of equal radius, one of them a construction arc. Halving the
// boundary arcs keeps the approximation second-order accurate at both ends
// of the spiral.
type Boundary struct {
	ChordLength  float64        // chord length of the complete boundary step
	Real         ArcPrimitive   // half-arc belonging to the visible curve
	Construction ArcPrimitive   // auxiliary half-arc
	Chord        ChordPrimitive // chord spanning both halves
	Pose         Pose           // pose at which the chain continues
}

// BuildStart creates the boundary step at the entry of the spiral. Both
// half-arcs lie on a circle of radius r1 around the origin, the construction
// half below the x-axis and the real half above it:
//
//	construction:  angle -alpha0/2 … 0
//	real:          angle 0 … alpha0/2
//
// The chord between the outer vertices has length 2⋅r1⋅sin(alpha0/2). This is
// the chord length d for every subsequent step of the chain.
func BuildStart(r1, alpha0 float64) (Boundary, error) {
	d := 2 * r1 * math.Sin(alpha0/2)
	if err := checkStep(d, alpha0); err != nil {
		return Boundary{}, err
	}
	v0 := arcspiral.Polar(r1, -alpha0/2)
	v1 := arcspiral.Polar(r1, alpha0/2)
	joint := arcspiral.P(r1, 0)
	b := Boundary{
		ChordLength: d,
		Construction: ArcPrimitive{
			Start:        v0,
			Mid:          arcspiral.Polar(r1, -alpha0/4),
			End:          joint,
			Center:       arcspiral.Origin,
			Radius:       r1,
			Alpha:        alpha0 / 2,
			Construction: true,
		},
		Real: ArcPrimitive{
			Start:  joint,
			Mid:    arcspiral.Polar(r1, alpha0/4),
			End:    v1,
			Center: arcspiral.Origin,
			Radius: r1,
			Alpha:  alpha0 / 2,
		},
		Chord: ChordPrimitive{Start: v0, End: v1, Construction: true},
		Pose:  Pose{Vertex: v1, Beta: alpha0 / 2},
	}
	tracer().Debugf("start boundary: r1=%g α0=%.6g d=%.6g", r1, alpha0, d)
	return b, nil
}

// BuildEnd creates the boundary step at the exit of the spiral. The step is a
// regular arc step with chord length d and angle alphaN, split at its mid
// point: the first half belongs to the visible curve, the second half is a
// construction arc. The returned chord spans the complete step.
func BuildEnd(pose Pose, d, alphaN float64) (Boundary, error) {
	step, err := Step(pose, d, alphaN)
	if err != nil {
		return Boundary{}, err
	}
	realHalf, conHalf := step.Arc.split()
	conHalf.Construction = true
	b := Boundary{
		ChordLength:  d,
		Real:         realHalf,
		Construction: conHalf,
		Chord:        step.Chord,
		Pose:         step.Next,
	}
	tracer().Debugf("end boundary: r=%.6g αN=%.6g", step.Radius, alphaN)
	return b, nil
}
