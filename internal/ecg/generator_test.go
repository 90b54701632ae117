package ecg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate_LengthAndTimestamps(t *testing.T) {
	g := NewGenerator(300, 72)
	points := g.Generate(1000)

	require.Len(t, points, 1000)
	for i, p := range points {
		assert.Equal(t, float64(i)/300.0, p.Time)
	}
}

func TestGenerate_AmplitudeBounds(t *testing.T) {
	// Максимум формы 1.5 (R пик) плюс шум 0.025
	g := NewGenerator(300, 72)
	points := g.Generate(1000)

	for _, p := range points {
		assert.GreaterOrEqual(t, p.Value, -1.525)
		assert.LessOrEqual(t, p.Value, 1.775)
	}
}

func TestGenerate_DeterministicWithoutNoise(t *testing.T) {
	g1 := NewGenerator(300, 72)
	g1.Noise = 0
	g2 := NewGenerator(300, 72)
	g2.Noise = 0

	assert.Equal(t, g1.Generate(1000), g2.Generate(1000))
}

func TestGenerate_CycleShape(t *testing.T) {
	g := NewGenerator(300, 60) // ровно 300 сэмплов на цикл
	g.Noise = 0
	points := g.Generate(300)

	// Изолиния до P волны
	assert.Zero(t, points[0].Value)
	assert.Zero(t, points[15].Value) // pos = 0.05

	// P волна положительная и небольшая
	pPeak := points[45].Value // pos = 0.15, середина P
	assert.Greater(t, pPeak, 0.2)
	assert.Less(t, pPeak, 0.26)

	// Q провал отрицательный
	qDip := points[63].Value // pos = 0.21, до R окна
	assert.Less(t, qDip, 0.0)

	// R пик - максимум всего цикла
	rPeak := points[75].Value // pos = 0.25, середина R окна
	assert.InDelta(t, 1.5, rPeak, 0.01)
	for _, p := range points {
		assert.LessOrEqual(t, p.Value, rPeak)
	}

	// T волна широкая и положительная
	tPeak := points[150].Value // pos = 0.50, середина T
	assert.InDelta(t, 0.3, tPeak, 0.01)

	// Изолиния после T волны
	assert.Zero(t, points[240].Value) // pos = 0.80
}

func TestGenerate_NoiseIsBounded(t *testing.T) {
	g := NewGenerator(300, 60)
	g.Seed(42)
	noisy := g.Generate(300)

	clean := NewGenerator(300, 60)
	clean.Noise = 0
	base := clean.Generate(300)

	for i := range noisy {
		assert.InDelta(t, base[i].Value, noisy[i].Value, NoiseAmplitude)
	}
}

func TestGenerateFrom_ContinuesStream(t *testing.T) {
	g := NewGenerator(300, 72)
	g.Noise = 0
	whole := g.Generate(600)

	first := g.GenerateFrom(0, 300)
	second := g.GenerateFrom(300, 300)

	assert.Equal(t, whole[:300], first)
	assert.Equal(t, whole[300:], second)
}
