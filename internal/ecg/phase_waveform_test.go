package ecg

import (
	"testing"

	"github.com/Kalmeshteli17/heart-simulation/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateFromIntervals_BaselineOutsidePhases(t *testing.T) {
	intervals := []models.PhaseInterval{
		{Phase: "QRS", Entry: 0.5, Duration: 0.1},
	}

	// 300 сэмплов/с: интервал занимает индексы 150..179
	points := GenerateFromIntervals(intervals, 300, 300)
	require.Len(t, points, 300)

	for i, p := range points {
		assert.Equal(t, float64(i)/300.0, p.Time)
		if i < 150 || i >= 180 {
			assert.InDelta(t, 0.0, p.Value, 1e-12, "изолиния вне фазы, сэмпл %d", i)
		}
	}
}

func TestGenerateFromIntervals_QRSSpike(t *testing.T) {
	intervals := []models.PhaseInterval{
		{Phase: "QRS", Entry: 0.0, Duration: 1.0},
	}

	points := GenerateFromIntervals(intervals, 100, 100)

	// Q провал в начале, R пик в середине
	assert.Less(t, points[10].Value, 0.0)  // frac = 0.1
	assert.InDelta(t, 1.5, points[50].Value, 0.01) // frac = 0.5
	assert.Less(t, points[90].Value, 0.0)  // frac = 0.9
}

func TestGenerateFromIntervals_ShapePerLabel(t *testing.T) {
	intervals := []models.PhaseInterval{
		{Phase: "P", Entry: 0.0, Duration: 1.0},
		{Phase: "PQ", Entry: 1.0, Duration: 1.0},
		{Phase: "ST", Entry: 2.0, Duration: 1.0},
		{Phase: "T", Entry: 3.0, Duration: 1.0},
	}

	points := GenerateFromIntervals(intervals, 400, 100)

	// P: полусинусоида 0.25 в середине
	assert.InDelta(t, 0.25, points[50].Value, 0.01)
	// PQ: затухание, в начале фазы близко к 0.1
	assert.InDelta(t, 0.1, points[100].Value, 0.01)
	assert.Less(t, points[180].Value, points[110].Value)
	// ST: затухающая синусоида, начинается с нуля
	assert.InDelta(t, 0.0, points[200].Value, 0.01)
	// T: полусинусоида 0.3 в середине
	assert.InDelta(t, 0.3, points[350].Value, 0.01)
}

func TestGenerateFromIntervals_UnknownPhaseIsBaseline(t *testing.T) {
	intervals := []models.PhaseInterval{
		{Phase: "UNKNOWN", Entry: 0.0, Duration: 1.0},
	}

	points := GenerateFromIntervals(intervals, 100, 100)
	for _, p := range points {
		assert.Zero(t, p.Value)
	}
}

func TestGenerateFromIntervals_SinglePassOrdering(t *testing.T) {
	// Два интервала подряд: проход не должен вернуться к первому
	intervals := []models.PhaseInterval{
		{Phase: "P", Entry: 0.0, Duration: 0.5},
		{Phase: "T", Entry: 0.5, Duration: 0.5},
	}

	points := GenerateFromIntervals(intervals, 100, 100)

	assert.InDelta(t, 0.25, points[25].Value, 0.01) // середина P
	assert.InDelta(t, 0.3, points[75].Value, 0.01)  // середина T
}
