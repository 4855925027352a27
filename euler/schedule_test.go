package euler

import (
	"errors"
	"math"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScheduleFormula(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	alphas, err := Schedule(math.Pi/2, 10, 1e4, 20)
	require.NoError(t, err)
	require.Len(t, alphas, 21)
	assert.Equal(t, 20, alphas.N())
	k := 0.1 + 1e-4
	assert.InDelta(t, 0.1/k*math.Pi/20, alphas[0], 1e-15)
	assert.InDelta(t, 1e-4/k*math.Pi/20, alphas[20], 1e-15)
	for i := 1; i < len(alphas); i++ {
		if alphas[i] >= alphas[i-1] {
			t.Errorf("expected decreasing schedule, alpha.%d = %g ≥ alpha.%d = %g", i, alphas[i], i-1, alphas[i-1])
		}
	}
	assert.Len(t, alphas.Interior(), 19)
	t.Logf("schedule = %s", alphas)
}

func TestScheduleSums(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	for _, n := range []int{1, 2, 3, 20, 101} {
		A := 1.3
		alphas, err := Schedule(A, 7, 300, n)
		require.NoError(t, err)
		N := float64(n)
		assert.InDelta(t, A*(N+1)/N, alphas.Sum(), 1e-12, "sum for N = %d", n)
		assert.InDelta(t, A, alphas.TrapezoidSum(), 1e-12, "trapezoid sum for N = %d", n)
	}
}

func TestScheduleCircle(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	alphas, err := Schedule(math.Pi, 5, 5, 4)
	require.NoError(t, err)
	for i, a := range alphas {
		assert.InDelta(t, math.Pi/4, a, 1e-15, "alpha.%d", i)
	}
}

func TestScheduleRejectsInvalidInput(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	cases := []struct {
		name   string
		angle  float64
		r1, r2 float64
		n      int
	}{
		{"no segments", 1, 10, 20, 0},
		{"negative segments", 1, 10, 20, -3},
		{"zero R1", 1, 0, 20, 4},
		{"zero R2", 1, 10, 0, 4},
		{"zero angle", 0, 10, 20, 4},
		{"negative angle", -1, 10, 20, 4},
		{"NaN angle", math.NaN(), 10, 20, 4},
		{"infinite radius", 1, math.Inf(1), 20, 4},
		{"curvatures cancel", 1, 10, -10, 4},
		{"both negative", 1, -10, -20, 4},
	}
	for _, c := range cases {
		alphas, err := Schedule(c.angle, c.r1, c.r2, c.n)
		if !errors.Is(err, ErrInvalidConfiguration) {
			t.Errorf("%s: expected ErrInvalidConfiguration, got %v", c.name, err)
		}
		assert.Nil(t, alphas, c.name)
	}
	_, err := Schedule(1, -10, -20, 4)
	assert.Contains(t, err.Error(), "both radii negative")
	_, err = Schedule(1, 10, -10, 4)
	assert.Contains(t, err.Error(), "curvature sum")
}

func TestAngleLengthRelation(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	A := TotalAngleFromLength(10*math.Pi, 10, 1e4)
	assert.InDelta(t, 10*math.Pi*(0.1+1e-4)/2, A, 1e-12)
	assert.InDelta(t, 10*math.Pi, TargetLength(A, 10, 1e4), 1e-12)
	// a circle: length = R⋅A
	assert.InDelta(t, 5*math.Pi, TargetLength(math.Pi, 5, 5), 1e-12)
}
