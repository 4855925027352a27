package euler

import (
	"errors"
	"fmt"
	"math"

	"github.com/npillmayer/arcspiral"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'euler'
func tracer() tracing.Trace {
	return tracing.Select("euler")
}

const pi2 float64 = 2 * math.Pi

// sin(α/2) below this is considered a straight segment.
const _minSine = 1e-12

// Relative tolerance for chain continuity checks.
const continuityTolerance = 1e-9

var (
	// ErrInvalidConfiguration indicates a spiral spec which cannot be built,
	// e.g. a segment count < 1, a zero radius or a non-positive angle/length.
	ErrInvalidConfiguration = errors.New("invalid spiral configuration")
	// ErrDegenerateStep indicates a subtended angle too close to 0 or 2π for
	// the radius computation of an arc step.
	ErrDegenerateStep = errors.New("degenerate arc step")
	// ErrChainIntegrity indicates an internal consistency failure of an
	// assembled chain. It points to a defect, not to bad input.
	ErrChainIntegrity = errors.New("chain integrity violation")
)

// SpiralSpec is the configuration for one chain construction.
//
// If UseTotalAngle is set, TotalAngleRad is the turning angle between entry
// and exit of the spiral. Otherwise the turning angle is derived from
// CurveLength and the two boundary radii.
// A boundary radius large compared to the other one (10⁴× and more)
// models a straight entry or exit.
type SpiralSpec struct {
	UseTotalAngle bool
	TotalAngleRad float64 // total turning angle, radians
	CurveLength   float64 // target arc length
	R1            float64 // radius at entry
	R2            float64 // radius at exit
	N             int     // number of arc segments
}

// DefaultSpec returns a spec for a spiral of length 10π, running from
// radius 10 into a nearly straight exit, in 20 segments.
func DefaultSpec() SpiralSpec {
	return SpiralSpec{
		UseTotalAngle: false,
		TotalAngleRad: 90 * arcspiral.Deg2Rad,
		CurveLength:   10 * math.Pi,
		R1:            10,
		R2:            1e4,
		N:             20,
	}
}

// TotalAngle resolves the turning angle of a spec, in radians.
func (spec SpiralSpec) TotalAngle() float64 {
	if spec.UseTotalAngle {
		return spec.TotalAngleRad
	}
	return TotalAngleFromLength(spec.CurveLength, spec.R1, spec.R2)
}

// Validate checks a spec for consistency. Errors wrap ErrInvalidConfiguration
// and name the offending parameter.
func (spec SpiralSpec) Validate() error {
	if spec.N < 1 {
		return fmt.Errorf("%w: segment count N = %d, must be at least 1", ErrInvalidConfiguration, spec.N)
	}
	if err := validateRadii(spec.R1, spec.R2); err != nil {
		return err
	}
	if spec.UseTotalAngle {
		if !arcspiral.IsFinite(spec.TotalAngleRad) || spec.TotalAngleRad <= 0 {
			return fmt.Errorf("%w: total angle = %g, must be positive", ErrInvalidConfiguration, spec.TotalAngleRad)
		}
	} else if !arcspiral.IsFinite(spec.CurveLength) || spec.CurveLength <= 0 {
		return fmt.Errorf("%w: curve length = %g, must be positive", ErrInvalidConfiguration, spec.CurveLength)
	}
	return nil
}

func validateRadii(r1, r2 float64) error {
	if !arcspiral.IsFinite(r1) || r1 == 0 {
		return fmt.Errorf("%w: radius R1 = %g, must be non-zero", ErrInvalidConfiguration, r1)
	}
	if !arcspiral.IsFinite(r2) || r2 == 0 {
		return fmt.Errorf("%w: radius R2 = %g, must be non-zero", ErrInvalidConfiguration, r2)
	}
	if r1 < 0 && r2 < 0 {
		return fmt.Errorf("%w: both radii negative, R1 = %g, R2 = %g", ErrInvalidConfiguration, r1, r2)
	}
	if k := 1/r1 + 1/r2; k <= 0 || !arcspiral.IsFinite(k) {
		return fmt.Errorf("%w: curvature sum 1/R1 + 1/R2 = %g, must be positive", ErrInvalidConfiguration, k)
	}
	return nil
}

// Pose is a vertex of the chain together with the direction of the radius
// vector pointing from the current arc's center to the vertex (beta).
// The tangent of the chain at the vertex is beta + π/2.
type Pose struct {
	Vertex arcspiral.Pair
	Beta   float64
}

// ArcPrimitive is a circular arc of the chain. It runs counter-clockwise from
// Start over Mid to End. Mid is the point at half the subtended angle, which
// fixes the arc among all circles through Start and End.
type ArcPrimitive struct {
	Start, Mid, End arcspiral.Pair
	Center          arcspiral.Pair
	Radius          float64
	Alpha           float64 // subtended angle
	Construction    bool    // auxiliary arc, not part of the visible curve
}

// Length is the true arc length r⋅α.
func (arc ArcPrimitive) Length() float64 {
	return math.Abs(arc.Radius * arc.Alpha)
}

// Chord returns the straight distance between the arc's end points.
func (arc ArcPrimitive) Chord() float64 {
	return arc.Start.Dist(arc.End)
}

// StartAngle is the direction from the center to the arc's start point.
func (arc ArcPrimitive) StartAngle() float64 {
	return (arc.Start - arc.Center).Angle()
}

func (arc ArcPrimitive) transformed(at arcspiral.AT) ArcPrimitive {
	arc.Start = at.Transform(arc.Start)
	arc.Mid = at.Transform(arc.Mid)
	arc.End = at.Transform(arc.End)
	arc.Center = at.Transform(arc.Center)
	return arc
}

// ChordPrimitive is a straight line between two vertices of the chain.
type ChordPrimitive struct {
	Start, End   arcspiral.Pair
	Construction bool
}

// Length is the chord's euclidean length.
func (chord ChordPrimitive) Length() float64 {
	return chord.Start.Dist(chord.End)
}

func (chord ChordPrimitive) transformed(at arcspiral.AT) ChordPrimitive {
	chord.Start = at.Transform(chord.Start)
	chord.End = at.Transform(chord.End)
	return chord
}

// ChainResult is the outcome of one chain construction. Arcs and chords are
// kept in creation order:
//
//	arcs:   start construction half, start real half, N-1 interior arcs,
//	        end real half, end construction half
//	chords: start chord, N-1 interior chords, end chord
//
// A ChainResult is not modified after assembly.
type ChainResult struct {
	Spec        SpiralSpec
	Schedule    AngleSchedule
	ChordLength float64 // fixed chord length d shared by all steps
	Arcs        []ArcPrimitive
	Chords      []ChordPrimitive
	ArcLength   float64 // realized length of the real arcs
	ChordSum    float64 // realized chord length, boundary chords at half weight
	Target      float64 // theoretical clothoid length
}

// RealArcs returns the arcs which make up the visible curve.
func (chain *ChainResult) RealArcs() []ArcPrimitive {
	arcs := make([]ArcPrimitive, 0, len(chain.Arcs))
	for _, arc := range chain.Arcs {
		if !arc.Construction {
			arcs = append(arcs, arc)
		}
	}
	return arcs
}

// StartPoint is the first point of the visible curve.
func (chain *ChainResult) StartPoint() arcspiral.Pair {
	return chain.Arcs[1].Start
}

// EndPoint is the last point of the visible curve.
func (chain *ChainResult) EndPoint() arcspiral.Pair {
	return chain.Arcs[len(chain.Arcs)-2].End
}
