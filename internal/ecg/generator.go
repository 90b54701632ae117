package ecg

import (
	"math"
	"math/rand"
	"time"

	"github.com/Kalmeshteli17/heart-simulation/internal/models"
)

// Параметры генерации по умолчанию
const (
	DefaultSampleRate = 300.0 // Частота дискретизации, сэмплов/с
	DefaultSamples    = 1000  // Количество сэмплов
	NoiseAmplitude    = 0.025 // Амплитуда равномерного шума измерения
)

// Границы волн внутри одного сердечного цикла (доли цикла) и их амплитуды
const (
	pStart, pEnd = 0.10, 0.20 // P волна: деполяризация предсердий
	pAmplitude   = 0.25

	qrsStart, qrsEnd = 0.20, 0.30 // QRS комплекс: деполяризация желудочков
	qAmplitude       = -0.2

	rStart, rEnd = 0.22, 0.28 // Узкое окно R пика внутри QRS
	rAmplitude   = 1.5

	tStart, tEnd = 0.40, 0.60 // T волна: реполяризация желудочков
	tAmplitude   = 0.3
)

// Generator синтезирует PQRST-подобный сигнал ЭКГ.
// Форма сигнала детерминирована позицией сэмпла внутри сердечного цикла,
// случайный только аддитивный шум. Noise = 0 полностью отключает шум,
// тогда повторные вызовы с теми же аргументами дают идентичные сэмплы.
type Generator struct {
	SampleRate float64 // Сэмплов в секунду
	HeartRate  float64 // Пульс в ударах в минуту
	Noise      float64 // Амплитуда шума, 0 = без шума

	rng *rand.Rand
}

// NewGenerator создает генератор с шумом по умолчанию
func NewGenerator(sampleRate, heartRate float64) *Generator {
	return &Generator{
		SampleRate: sampleRate,
		HeartRate:  heartRate,
		Noise:      NoiseAmplitude,
		rng:        rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Seed устанавливает seed для источника шума
func (g *Generator) Seed(seed int64) {
	g.rng = rand.New(rand.NewSource(seed))
}

// Generate синтезирует ровно n сэмплов со временем i/SampleRate
func (g *Generator) Generate(n int) []models.SamplePoint {
	return g.GenerateFrom(0, n)
}

// GenerateFrom синтезирует n сэмплов начиная с индекса offset.
// Используется эмулятором для непрерывного потока батчами.
func (g *Generator) GenerateFrom(offset, n int) []models.SamplePoint {
	samplesPerBeat := (60.0 / g.HeartRate) * g.SampleRate

	points := make([]models.SamplePoint, n)
	for j := 0; j < n; j++ {
		i := offset + j
		// Позиция сэмпла внутри своего цикла, [0, 1)
		pos := math.Mod(float64(i), samplesPerBeat) / samplesPerBeat

		value := cycleAmplitude(pos)
		if g.Noise > 0 {
			value += g.Noise * (2*g.rng.Float64() - 1)
		}

		points[j] = models.SamplePoint{
			Time:  float64(i) / g.SampleRate,
			Value: value,
		}
	}

	return points
}

// cycleAmplitude кусочная форма одного сердечного цикла.
// Вне волн сигнал на изолинии (0).
func cycleAmplitude(pos float64) float64 {
	switch {
	case pos >= pStart && pos < pEnd:
		return pAmplitude * halfSine(pos, pStart, pEnd)

	case pos >= qrsStart && pos < qrsEnd:
		// Узкий R пик перекрывает базовую Q волну
		if pos >= rStart && pos < rEnd {
			return rAmplitude * halfSine(pos, rStart, rEnd)
		}
		return qAmplitude * halfSine(pos, qrsStart, qrsEnd)

	case pos >= tStart && pos < tEnd:
		return tAmplitude * halfSine(pos, tStart, tEnd)

	default:
		return 0
	}
}

// halfSine полусинусоида на отрезке [start, end): 0 на краях, 1 в середине
func halfSine(pos, start, end float64) float64 {
	return math.Sin(math.Pi * (pos - start) / (end - start))
}
