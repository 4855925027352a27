package euler

import (
	"fmt"
	"math"

	"github.com/npillmayer/arcspiral"
)

// StepResult is the outcome of one step of the arc recurrence.
type StepResult struct {
	Center arcspiral.Pair
	Mid    arcspiral.Pair // point on the arc at half the subtended angle
	Radius float64
	Next   Pose
	Arc    ArcPrimitive   // the arc from the step's vertex to Next.Vertex
	Chord  ChordPrimitive // construction chord of the arc
}

// Step advances the chain by one arc with chord length d, subtending angle
// alpha. The arc starts at pose.Vertex, its center lies on the radius vector
// of direction pose.Beta. The radius is solved so that the chord subtends
// alpha:
//
//	r = (d/2) / sin(alpha/2)
//
// Step is a pure function. It fails with ErrDegenerateStep if alpha is not
// within (0, 2π) or if the arc would degenerate to a straight segment.
func Step(pose Pose, d, alpha float64) (StepResult, error) {
	if !pose.Vertex.IsFinite() || !arcspiral.IsFinite(pose.Beta) {
		return StepResult{}, fmt.Errorf("%w: pose %v, β=%g is not finite", ErrDegenerateStep, pose.Vertex, pose.Beta)
	}
	if err := checkStep(d, alpha); err != nil {
		return StepResult{}, err
	}
	half := pose.Beta + alpha/2
	radius := (d / 2) / math.Sin(alpha/2)
	center := pose.Vertex - arcspiral.Polar(radius, pose.Beta)
	next := pose.Vertex + arcspiral.Polar(d, half+math.Pi/2)
	mid := center + arcspiral.Polar(radius, half)
	r := StepResult{
		Center: center,
		Mid:    mid,
		Radius: radius,
		Next:   Pose{Vertex: next, Beta: pose.Beta + alpha},
		Arc: ArcPrimitive{
			Start:  pose.Vertex,
			Mid:    mid,
			End:    next,
			Center: center,
			Radius: radius,
			Alpha:  alpha,
		},
		Chord: ChordPrimitive{Start: pose.Vertex, End: next, Construction: true},
	}
	tracer().P("op", "step").Debugf("β=%.6g α=%.6g r=%.6g center=%v next=%v",
		pose.Beta, alpha, radius, center, next)
	return r, nil
}

func checkStep(d, alpha float64) error {
	if !arcspiral.IsFinite(alpha) || alpha <= 0 || alpha >= pi2 {
		return fmt.Errorf("%w: subtended angle %g not within (0, 2π)", ErrDegenerateStep, alpha)
	}
	if math.Abs(math.Sin(alpha/2)) < _minSine {
		return fmt.Errorf("%w: subtended angle %g degenerates to a straight segment", ErrDegenerateStep, alpha)
	}
	if !arcspiral.IsFinite(d) || d <= 0 {
		return fmt.Errorf("%w: chord length %g must be positive", ErrDegenerateStep, d)
	}
	return nil
}

// split divides an arc at its mid point into two halves of alpha/2 each.
// The quarter points are found on the circle around the arc's center.
func (arc ArcPrimitive) split() (ArcPrimitive, ArcPrimitive) {
	first := ArcPrimitive{
		Start:  arc.Start,
		Mid:    arc.Start.Rotatedaround(arc.Center, arc.Alpha/4),
		End:    arc.Mid,
		Center: arc.Center,
		Radius: arc.Radius,
		Alpha:  arc.Alpha / 2,
	}
	second := ArcPrimitive{
		Start:  arc.Mid,
		Mid:    arc.Mid.Rotatedaround(arc.Center, arc.Alpha/4),
		End:    arc.End,
		Center: arc.Center,
		Radius: arc.Radius,
		Alpha:  arc.Alpha / 2,
	}
	return first, second
}
