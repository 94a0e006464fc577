package anim

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSlewMovesTowardTarget(t *testing.T) {
	got := Slew(0, 100, 0.1, 300)
	require.Equal(t, 30.0, got, "one frame at 300/s over 0.1s should cover 30 units")

	got = Slew(100, 0, 0.1, 300)
	require.Equal(t, 70.0, got, "slew should work in both directions")
}

func TestSlewNeverOvershoots(t *testing.T) {
	got := Slew(90, 100, 1.0, 300)
	require.Equal(t, 100.0, got, "a step past the target should land exactly on it")

	got = Slew(10, 0, 1.0, 300)
	require.Equal(t, 0.0, got)
}

func TestSlewAtTargetIsStable(t *testing.T) {
	require.Equal(t, 42.0, Slew(42, 42, 0.1, 300))
}

func TestSlewNegativeDtDoesNotMove(t *testing.T) {
	require.Equal(t, 10.0, Slew(10, 100, -0.1, 300))
}

func TestSlewConvergesInBoundedSteps(t *testing.T) {
	current, target := 0.0, 100.0
	// 100 units at 30 units per frame needs 4 frames.
	for i := 0; i < 4; i++ {
		current = Slew(current, target, 0.1, 300)
		require.LessOrEqual(t, current, target, "must never pass the target")
	}
	require.Equal(t, target, current, "should settle exactly, not asymptotically")
}

func TestPairSnapAndSettled(t *testing.T) {
	p := Pair{Current: 5, Target: 50}
	require.False(t, p.Settled())

	p.Update(0.1, 300)
	require.Equal(t, 35.0, p.Current)
	require.Equal(t, 50.0, p.Target, "update must not touch the target")

	p.Snap(7)
	require.True(t, p.Settled())
	require.Equal(t, 7.0, p.Current)
	require.Equal(t, 7.0, p.Target)
}
