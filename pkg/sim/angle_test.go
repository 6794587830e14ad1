package sim

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAngleNormalize(t *testing.T) {
	testCases := []struct {
		deg, expected float64
	}{
		{0, 0},
		{90, 90},
		{179, 179},
		{-179, -179},
		{270, -90},
		{-270, 90},
		{720 + 45, 45},
		{-3 * 360, 0},
	}
	for _, tc := range testCases {
		require.InDelta(t, tc.expected, AngleFromDegrees(tc.deg).Degrees(), 1e-9, "%v", tc.deg)
	}
}

func TestAngleArithmetic(t *testing.T) {
	a := AngleFromDegrees(170)
	require.InDelta(t, -170, a.AddDegrees(20).Degrees(), 1e-9)
	require.InDelta(t, -20, AngleFromDegrees(170).Sub(AngleFromDegrees(-170)).Degrees(), 1e-9)
	require.InDelta(t, math.Pi/2, AngleFromRadians(math.Pi/4).AddRadians(math.Pi/4).Radians(), 1e-9)

	p := AngleFromDegrees(90).Project(10)
	require.InDelta(t, 0, p.X, 1e-9)
	require.InDelta(t, 10, p.Y, 1e-9)
}

func TestPoseLocal(t *testing.T) {
	pose := Pose2D{Pos2D: Pos2D{X: 10, Y: 20}, Orientation: AngleFromDegrees(90)}
	p := pose.Local(Pos2D{X: 5, Y: 1})
	require.InDelta(t, 9, p.X, 1e-9)
	require.InDelta(t, 25, p.Y, 1e-9)
}

func TestRect(t *testing.T) {
	rc := Centered(Size2D{CX: 100, CY: 50})
	require.True(t, rc.Contains(Pos2D{X: 50, Y: -25}))
	require.False(t, rc.Contains(Pos2D{X: 50.1, Y: 0}))
	require.False(t, rc.Contains(Pos2D{X: 0, Y: -25.1}))
}
