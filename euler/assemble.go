package euler

import (
	"fmt"
	"math"

	"github.com/npillmayer/arcspiral"
)

// Assemble constructs the arc chain for a spiral spec. It schedules the
// subtended angles, builds the entry boundary, advances the chain by one arc
// step per interior schedule entry and closes it with the exit boundary.
// The finished chain is shifted such that the visible curve starts at the
// origin.
//
// Assemble either returns a complete, verified chain or an error; partial
// chains are never returned. Errors wrap ErrInvalidConfiguration,
// ErrDegenerateStep or ErrChainIntegrity.
func Assemble(spec SpiralSpec) (*ChainResult, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	totalAngle := spec.TotalAngle()
	alphas, err := Schedule(totalAngle, spec.R1, spec.R2, spec.N)
	if err != nil {
		return nil, err
	}
	chain := &ChainResult{
		Spec:     spec,
		Schedule: alphas,
		Arcs:     make([]ArcPrimitive, 0, spec.N+3),
		Chords:   make([]ChordPrimitive, 0, spec.N+1),
		Target:   TargetLength(totalAngle, spec.R1, spec.R2),
	}
	start, err := BuildStart(spec.R1, alphas[0])
	if err != nil {
		return nil, fmt.Errorf("entry boundary: %w", err)
	}
	d := start.ChordLength
	chain.ChordLength = d
	chain.Arcs = append(chain.Arcs, start.Construction, start.Real)
	chain.Chords = append(chain.Chords, start.Chord)
	chain.ArcLength += start.Real.Length()
	chain.ChordSum += start.Chord.Length() / 2
	pose := start.Pose
	for i, alpha := range alphas.Interior() {
		step, err := Step(pose, d, alpha)
		if err != nil {
			return nil, fmt.Errorf("step %d: %w", i+1, err)
		}
		chain.Chords = append(chain.Chords, step.Chord)
		chain.Arcs = append(chain.Arcs, step.Arc)
		chain.ArcLength += step.Arc.Length()
		chain.ChordSum += step.Chord.Length()
		pose = step.Next
	}
	end, err := BuildEnd(pose, d, alphas[spec.N])
	if err != nil {
		return nil, fmt.Errorf("exit boundary: %w", err)
	}
	chain.Arcs = append(chain.Arcs, end.Real, end.Construction)
	chain.Chords = append(chain.Chords, end.Chord)
	chain.ArcLength += end.Real.Length()
	chain.ChordSum += end.Chord.Length() / 2
	// move the joint of the entry half-arcs, (r1,0), onto the origin
	chain = chain.transformed(arcspiral.Translation(arcspiral.P(-spec.R1, 0)))
	if err := chain.Verify(); err != nil {
		tracer().Errorf("%v", err)
		return nil, err
	}
	tracer().Infof("%s", chain.Report())
	return chain, nil
}

// MustAssemble is a helper which panics on errors.
func MustAssemble(spec SpiralSpec) *ChainResult {
	chain, err := Assemble(spec)
	if err != nil {
		panic(err)
	}
	return chain
}

// Verify checks the structural invariants of a chain: consecutive arcs
// share end points and are tangent there, and every chord connects the end
// points of its step and has the chain's fixed chord length. Violations wrap
// ErrChainIntegrity.
func (chain *ChainResult) Verify() error {
	n := chain.Spec.N
	if len(chain.Arcs) != n+3 || len(chain.Chords) != n+1 {
		return fmt.Errorf("%w: %d arcs and %d chords for %d segments", ErrChainIntegrity,
			len(chain.Arcs), len(chain.Chords), n)
	}
	for i := 1; i < len(chain.Arcs); i++ {
		prev, arc := chain.Arcs[i-1], chain.Arcs[i]
		if !prev.End.Near(arc.Start, continuityTolerance) {
			return fmt.Errorf("%w: arc %d ends at %v, arc %d starts at %v", ErrChainIntegrity,
				i-1, prev.End, i, arc.Start)
		}
		if !tangent(prev, arc) {
			return fmt.Errorf("%w: arcs %d and %d are not tangent at %v", ErrChainIntegrity,
				i-1, i, arc.Start)
		}
	}
	for i, chord := range chain.Chords {
		if !arcspiral.NearlyEqual(chord.Length(), chain.ChordLength, continuityTolerance) {
			return fmt.Errorf("%w: chord %d has length %g, expected %g", ErrChainIntegrity,
				i, chord.Length(), chain.ChordLength)
		}
		from, to := chain.chordSpan(i)
		if !chord.Start.Near(from, continuityTolerance) || !chord.End.Near(to, continuityTolerance) {
			return fmt.Errorf("%w: chord %d runs %v → %v, expected %v → %v", ErrChainIntegrity,
				i, chord.Start, chord.End, from, to)
		}
	}
	return nil
}

// chordSpan returns the vertices chord i is expected to connect.
func (chain *ChainResult) chordSpan(i int) (arcspiral.Pair, arcspiral.Pair) {
	switch i {
	case 0:
		return chain.Arcs[0].Start, chain.Arcs[1].End
	case len(chain.Chords) - 1:
		return chain.Arcs[i+1].Start, chain.Arcs[i+2].End
	}
	arc := chain.Arcs[i+1]
	return arc.Start, arc.End
}

// Two arcs joining at a point are tangent if both centers lie on the same
// side of the joint, on a common line through it.
func tangent(a, b ArcPrimitive) bool {
	u, v := a.End-a.Center, b.Start-b.Center
	cross := u.X()*v.Y() - u.Y()*v.X()
	dot := u.X()*v.X() + u.Y()*v.Y()
	return math.Abs(cross) <= continuityTolerance*math.Max(1, u.Abs()*v.Abs()) && dot > 0
}

func (chain *ChainResult) transformed(at arcspiral.AT) *ChainResult {
	c := *chain
	c.Arcs = make([]ArcPrimitive, len(chain.Arcs))
	for i, arc := range chain.Arcs {
		c.Arcs[i] = arc.transformed(at)
	}
	c.Chords = make([]ChordPrimitive, len(chain.Chords))
	for i, chord := range chain.Chords {
		c.Chords[i] = chord.transformed(at)
	}
	return &c
}

// Transformed returns a copy of the chain with every primitive moved by at.
// Only rigid motions (rotations and translations) keep radii and lengths
// intact, other transforms are rejected.
func (chain *ChainResult) Transformed(at arcspiral.AT) (*ChainResult, error) {
	if !at.IsRigid() {
		return nil, fmt.Errorf("%w: transform %v is not a rigid motion", ErrInvalidConfiguration, at)
	}
	tracer().Debugf("moving chain, rotation by %.6g°", at.RotationAngle()/arcspiral.Deg2Rad)
	return chain.transformed(at), nil
}

// Rotated returns a copy of the chain rotated around the origin by theta
// (radians, counter-clockwise). Rotation around the start point is the one
// degree of freedom the chain leaves to downstream consumers.
func (chain *ChainResult) Rotated(theta float64) *ChainResult {
	return chain.RotatedAround(arcspiral.Origin, theta)
}

// RotatedAround returns a copy of the chain rotated around pivot by theta.
func (chain *ChainResult) RotatedAround(pivot arcspiral.Pair, theta float64) *ChainResult {
	c, _ := chain.Transformed(arcspiral.RotationAround(pivot, theta))
	return c
}
