package ecg

import (
	"testing"

	"github.com/Kalmeshteli17/heart-simulation/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func qrsAt(entries ...float64) []models.PhaseInterval {
	intervals := make([]models.PhaseInterval, 0, len(entries))
	for _, e := range entries {
		intervals = append(intervals, models.PhaseInterval{
			Phase:    "QRS",
			Entry:    e,
			Duration: 0.09,
		})
	}
	return intervals
}

func TestEstimateBPM_RegularRhythm(t *testing.T) {
	// RR = 0.8 c -> 60/0.8 = 75
	bpm, err := EstimateBPM(qrsAt(0.0, 0.8, 1.6, 2.4))
	require.NoError(t, err)
	assert.Equal(t, 75, bpm)
}

func TestEstimateBPM_IgnoresOtherPhases(t *testing.T) {
	intervals := qrsAt(0.0, 1.0)
	intervals = append(intervals,
		models.PhaseInterval{Phase: "P", Entry: 0.2, Duration: 0.09},
		models.PhaseInterval{Phase: "T", Entry: 0.5, Duration: 0.16},
	)

	bpm, err := EstimateBPM(intervals)
	require.NoError(t, err)
	assert.Equal(t, 60, bpm)
}

func TestEstimateBPM_InsufficientData(t *testing.T) {
	tests := []struct {
		name      string
		intervals []models.PhaseInterval
	}{
		{"пустой список", nil},
		{"одно QRS событие", qrsAt(0.0)},
		{"только другие фазы", []models.PhaseInterval{
			{Phase: "P", Entry: 0.0, Duration: 0.09},
			{Phase: "T", Entry: 0.4, Duration: 0.16},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := EstimateBPM(tt.intervals)
			assert.ErrorIs(t, err, ErrInsufficientData)
		})
	}
}

func TestEstimateBPM_NoValidIntervals(t *testing.T) {
	// Единственный RR = 0.1 c - неправдоподобно короткий
	_, err := EstimateBPM(qrsAt(0.0, 0.1))
	assert.ErrorIs(t, err, ErrNoValidIntervals)

	// Слишком длинные RR тоже отбрасываются
	_, err = EstimateBPM(qrsAt(0.0, 2.5, 5.0))
	assert.ErrorIs(t, err, ErrNoValidIntervals)
}

func TestEstimateBPM_DiscardsImplausibleRR(t *testing.T) {
	// RR: 0.8, 0.1 (шум), 0.8 - шумовой интервал не должен портить оценку...
	// но 0.1 не входит в (0.3, 2.0), поэтому среднее по [0.8, 0.8]
	bpm, err := EstimateBPM(qrsAt(0.0, 0.8, 0.9, 1.7))
	require.NoError(t, err)
	assert.Equal(t, 75, bpm)
}

func TestEstimateBPM_OutOfPhysiologicalRange(t *testing.T) {
	// RR = 0.31 c -> 194 BPM, выше верхней границы 180
	_, err := EstimateBPM(qrsAt(0.0, 0.31, 0.62))
	assert.ErrorIs(t, err, ErrOutOfRange)

	// RR = 1.9 c -> 32 BPM, ниже нижней границы 40
	_, err = EstimateBPM(qrsAt(0.0, 1.9, 3.8))
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestEstimateBPM_AlwaysInRangeForValidInput(t *testing.T) {
	// Для корректных последовательностей результат всегда в [40, 180]
	sequences := [][]models.PhaseInterval{
		qrsAt(0.0, 0.35, 0.70, 1.05),
		qrsAt(0.0, 0.5, 1.0, 1.5),
		qrsAt(0.0, 1.0, 2.0),
		qrsAt(0.0, 1.45, 2.9),
	}

	for _, seq := range sequences {
		bpm, err := EstimateBPM(seq)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, bpm, 40)
		assert.LessOrEqual(t, bpm, 180)
	}
}
