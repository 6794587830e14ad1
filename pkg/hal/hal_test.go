package hal

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMillisSinceWraps(t *testing.T) {
	testCases := []struct {
		name   string
		start  Millis
		now    Millis
		expect Millis
	}{
		{"simple", 100, 350, 250},
		{"same", 42, 42, 0},
		{"wrap", math.MaxUint32 - 9, 10, 20},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.expect, tc.now.Since(tc.start))
		})
	}
}

func TestSideOpposite(t *testing.T) {
	require.Equal(t, Right, Left.Opposite())
	require.Equal(t, Left, Right.Opposite())
	require.Equal(t, "left", Left.String())
	require.Equal(t, "right", Right.String())
}
