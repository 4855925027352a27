package euler

import (
	"errors"
	"math"
	"testing"

	"github.com/npillmayer/arcspiral"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clothoidSpec(n int) SpiralSpec {
	return SpiralSpec{UseTotalAngle: true, TotalAngleRad: math.Pi / 2, R1: 10, R2: 1e4, N: n}
}

func circleSpec(n int) SpiralSpec {
	return SpiralSpec{UseTotalAngle: true, TotalAngleRad: math.Pi, R1: 5, R2: 5, N: n}
}

func mustAssemble(t *testing.T, spec SpiralSpec) *ChainResult {
	t.Helper()
	chain, err := Assemble(spec)
	if err != nil {
		t.Fatalf("Assemble failed: %v", err)
	}
	return chain
}

func mustPanic(t *testing.T, f func()) {
	t.Helper()
	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("expected panic, got none")
		}
	}()
	f()
}

func TestAssembleCircle(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	chain := mustAssemble(t, circleSpec(4))
	require.Len(t, chain.Arcs, 7)
	require.Len(t, chain.Chords, 5)
	for i, arc := range chain.Arcs {
		assert.InDelta(t, 5.0, arc.Radius, 1e-9, "radius of arc %d", i)
		assert.True(t, arc.Center.Near(arcspiral.P(-5, 0), 1e-9), "center of arc %d = %v", i, arc.Center)
	}
	assert.InDelta(t, 5*math.Pi, chain.ArcLength, 1e-9)
	assert.InDelta(t, 5*math.Pi, chain.Target, 1e-12)
	assert.True(t, chain.StartPoint().IsOrigin(), "start point = %v", chain.StartPoint())
	assert.True(t, chain.EndPoint().Near(arcspiral.P(-10, 0), 1e-9), "end point = %v", chain.EndPoint())
}

func TestAssembleCircleAnyN(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	for _, n := range []int{1, 2, 7, 50} {
		spec := SpiralSpec{UseTotalAngle: true, TotalAngleRad: 2.5, R1: 3, R2: 3, N: n}
		chain := mustAssemble(t, spec)
		assert.InDelta(t, 3*2.5, chain.ArcLength, 1e-9, "N = %d", n)
		for _, arc := range chain.RealArcs() {
			assert.InDelta(t, 3.0, arc.Radius, 1e-9, "N = %d", n)
		}
	}
}

func TestAssembleClothoid(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	tracer().SetTraceLevel(tracing.LevelInfo)
	chain := mustAssemble(t, clothoidSpec(20))
	assert.InDelta(t, math.Pi/(0.1+1e-4), chain.Target, 1e-12)
	assert.InEpsilon(t, chain.Target, chain.ArcLength, 0.01)
	require.Len(t, chain.Arcs, 23)
	require.Len(t, chain.Chords, 21)
	visible := chain.RealArcs()
	require.Len(t, visible, 21)
	assert.True(t, chain.Arcs[0].Construction)
	assert.True(t, chain.Arcs[22].Construction)
	assert.True(t, chain.StartPoint().IsOrigin(), "start point = %v", chain.StartPoint())
	assert.InDelta(t, 10.0, visible[0].Radius, 1e-12)
	assert.InEpsilon(t, 1e4, visible[20].Radius, 0.01)
	for i := 1; i < len(visible); i++ {
		if visible[i].Radius <= visible[i-1].Radius {
			t.Errorf("expected radii to increase, r.%d = %g ≤ r.%d = %g", i, visible[i].Radius, i-1, visible[i-1].Radius)
		}
	}
	for i := 1; i < len(chain.Arcs); i++ {
		assert.True(t, chain.Arcs[i-1].End.Near(chain.Arcs[i].Start, 1e-9), "gap between arcs %d and %d", i-1, i)
	}
	for i, chord := range chain.Chords {
		assert.InDelta(t, chain.ChordLength, chord.Length(), 1e-9, "chord %d", i)
	}
	assert.InDelta(t, 20*chain.ChordLength, chain.ChordSum, 1e-9)
	assert.NoError(t, chain.Verify())
}

func TestAssembleLengthMode(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	spec := DefaultSpec()
	chain := mustAssemble(t, spec)
	assert.InDelta(t, 10*math.Pi, chain.Target, 1e-9)
	assert.InEpsilon(t, 10*math.Pi, chain.ArcLength, 0.01)
	assert.InDelta(t, TotalAngleFromLength(spec.CurveLength, spec.R1, spec.R2), chain.Schedule.TrapezoidSum(), 1e-12)
}

func TestChordLengthConvergence(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	reports, err := Convergence(clothoidSpec(0), 10, 20, 40)
	require.NoError(t, err)
	require.Len(t, reports, 3)
	for i := 1; i < len(reports); i++ {
		e0 := math.Abs(reports[i-1].ChordSum - reports[i-1].Target)
		e1 := math.Abs(reports[i].ChordSum - reports[i].Target)
		ratio := e0 / e1
		t.Logf("N = %d: chord error %g, ratio %g", reports[i].N, e1, ratio)
		if ratio < 3.5 || ratio > 4.5 {
			t.Errorf("expected chord error to shrink with 1/N², ratio N=%d/N=%d is %g",
				reports[i-1].N, reports[i].N, ratio)
		}
	}
}

func TestAssembleRejectsInvalidConfiguration(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	noSegments := clothoidSpec(0)
	zeroRadius := clothoidSpec(20)
	zeroRadius.R1 = 0
	zeroAngle := clothoidSpec(20)
	zeroAngle.TotalAngleRad = 0
	zeroLength := DefaultSpec()
	zeroLength.CurveLength = 0
	for _, spec := range []SpiralSpec{noSegments, zeroRadius, zeroAngle, zeroLength} {
		chain, err := Assemble(spec)
		if !errors.Is(err, ErrInvalidConfiguration) {
			t.Errorf("spec %+v: expected ErrInvalidConfiguration, got %v", spec, err)
		}
		assert.Nil(t, chain)
	}
}

func TestAssembleRejectsDegenerateSteps(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	tooWide := SpiralSpec{UseTotalAngle: true, TotalAngleRad: 10 * math.Pi, R1: 1, R2: 1, N: 1}
	cusp := SpiralSpec{UseTotalAngle: true, TotalAngleRad: 1, R1: 10, R2: -20, N: 4}
	for _, spec := range []SpiralSpec{tooWide, cusp} {
		chain, err := Assemble(spec)
		if !errors.Is(err, ErrDegenerateStep) {
			t.Errorf("spec %+v: expected ErrDegenerateStep, got %v", spec, err)
		}
		assert.Nil(t, chain)
	}
}

func TestMustAssemblePanics(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	mustPanic(t, func() { MustAssemble(clothoidSpec(0)) })
}

func TestVerifyDetectsBrokenChain(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	chain := mustAssemble(t, clothoidSpec(6))
	broken := *chain
	broken.Arcs = append([]ArcPrimitive(nil), chain.Arcs...)
	broken.Arcs[3].Start += arcspiral.P(0.5, 0)
	err := broken.Verify()
	if !errors.Is(err, ErrChainIntegrity) {
		t.Fatalf("expected ErrChainIntegrity, got %v", err)
	}
	truncated := *chain
	truncated.Chords = chain.Chords[:3]
	assert.True(t, errors.Is(truncated.Verify(), ErrChainIntegrity))
	stretched := *chain
	stretched.ChordLength *= 1.01
	assert.True(t, errors.Is(stretched.Verify(), ErrChainIntegrity))
	assert.NoError(t, chain.Verify(), "original chain must not be affected")
}

func TestRotateAndTransform(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	chain := mustAssemble(t, clothoidSpec(12))
	rotated := chain.Rotated(math.Pi / 3)
	assert.True(t, rotated.StartPoint().IsOrigin())
	assert.NoError(t, rotated.Verify())
	assert.InDelta(t, chain.EndPoint().Abs(), rotated.EndPoint().Abs(), 1e-9)
	moved, err := chain.Transformed(arcspiral.Rotation(0.4).Combine(arcspiral.Translation(arcspiral.P(3, -7))))
	require.NoError(t, err)
	assert.NoError(t, moved.Verify())
	assert.True(t, moved.StartPoint().Near(arcspiral.P(3, -7), 1e-12))
	pivot := chain.EndPoint()
	turned := chain.RotatedAround(pivot, -math.Pi/5)
	assert.NoError(t, turned.Verify())
	assert.True(t, turned.EndPoint().Near(pivot, 1e-12), "end point = %v", turned.EndPoint())
	assert.InDelta(t, pivot.Abs(), turned.StartPoint().Dist(pivot), 1e-9)
	_, err = chain.Transformed(arcspiral.AT{2, 0, 0, 0, 2, 0, 0, 0, 1})
	assert.True(t, errors.Is(err, ErrInvalidConfiguration))
}
