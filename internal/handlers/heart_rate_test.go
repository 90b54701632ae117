package handlers

import (
	"testing"

	"github.com/Kalmeshteli17/heart-simulation/internal/ecg"
	"github.com/Kalmeshteli17/heart-simulation/internal/intervals"
	"github.com/Kalmeshteli17/heart-simulation/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveHeartRate_Estimated(t *testing.T) {
	phaseIntervals := []models.PhaseInterval{
		{Phase: "QRS", Entry: 0.0, Duration: 0.09},
		{Phase: "QRS", Entry: 0.8, Duration: 0.09},
		{Phase: "QRS", Entry: 1.6, Duration: 0.09},
		{Phase: "QRS", Entry: 2.4, Duration: 0.09},
	}

	bpm, source := ResolveHeartRate(phaseIntervals)
	assert.Equal(t, 75, bpm)
	assert.Equal(t, BPMSourceEstimated, source)
}

func TestResolveHeartRate_FallbackOnError(t *testing.T) {
	tests := []struct {
		name      string
		intervals []models.PhaseInterval
	}{
		{"пустой список", nil},
		{"одно QRS событие", []models.PhaseInterval{
			{Phase: "QRS", Entry: 0.0, Duration: 0.09},
		}},
		{"неправдоподобный RR", []models.PhaseInterval{
			{Phase: "QRS", Entry: 0.0, Duration: 0.09},
			{Phase: "QRS", Entry: 0.1, Duration: 0.09},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bpm, source := ResolveHeartRate(tt.intervals)
			assert.Equal(t, ecg.FallbackBPM, bpm)
			assert.Equal(t, BPMSourceFallback, source)
		})
	}
}

// Полная граница ошибок: битый ресурс -> запасной пульс 72 -> фронтенд
// все равно получает непустой сигнал
func TestFallbackProducesWaveform(t *testing.T) {
	_, err := intervals.Parse([]byte(`{}`))
	require.Error(t, err)

	bpm, source := ResolveHeartRate(nil)
	require.Equal(t, 72, bpm)
	require.Equal(t, BPMSourceFallback, source)

	generator := ecg.NewGenerator(ecg.DefaultSampleRate, float64(bpm))
	points := generator.Generate(ecg.DefaultSamples)
	assert.NotEmpty(t, points)
	assert.Len(t, points, ecg.DefaultSamples)
}
