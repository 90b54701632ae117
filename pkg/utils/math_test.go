package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMean(t *testing.T) {
	assert.Equal(t, 0.5, Mean([]float64{0.5, 0.5, 0.5}))
	assert.Equal(t, 2.0, Mean([]float64{1, 2, 3}))
	assert.True(t, math.IsNaN(Mean(nil)))
}

func TestDiff(t *testing.T) {
	assert.Equal(t, []float64{0.5, 0.5, 0.5}, Diff([]float64{0.0, 0.5, 1.0, 1.5}))
	assert.Empty(t, Diff([]float64{1.0}))
	assert.Empty(t, Diff(nil))
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 0.5, Clamp(0.5, 0, 1))
	assert.Equal(t, 0.0, Clamp(-1, 0, 1))
	assert.Equal(t, 1.0, Clamp(2, 0, 1))
}

func TestIsFinite(t *testing.T) {
	assert.True(t, IsFinite(0.5))
	assert.False(t, IsFinite(math.NaN()))
	assert.False(t, IsFinite(math.Inf(1)))
}

func TestSafeFloat(t *testing.T) {
	assert.Equal(t, 0.5, SafeFloat(0.5))
	assert.Zero(t, SafeFloat(math.NaN()))
	assert.Zero(t, SafeFloat(math.Inf(-1)))
}
