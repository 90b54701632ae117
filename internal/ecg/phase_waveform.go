package ecg

import (
	"math"

	"github.com/Kalmeshteli17/heart-simulation/internal/models"
)

// PhaseShape форма одной фазы: доля прошедшего времени внутри фазы [0, 1) -> амплитуда
type PhaseShape func(frac float64) float64

// phaseShapes формы сигнала по метке фазы для генератора по явным интервалам.
// Фазы без формы дают изолинию.
var phaseShapes = map[string]PhaseShape{
	// PQ сегмент: затухание после предсердной волны
	"PQ": func(frac float64) float64 {
		return 0.1 * math.Exp(-5*frac)
	},

	// QRS комплекс: Q провал, резкий синусный R пик, S провал
	"QRS": func(frac float64) float64 {
		switch {
		case frac < 0.2:
			return -0.2 * math.Sin(math.Pi*frac/0.2)
		case frac < 0.8:
			return 1.5 * math.Sin(math.Pi*(frac-0.2)/0.6)
		default:
			return -0.3 * math.Sin(math.Pi*(frac-0.8)/0.2)
		}
	},

	// ST сегмент: затухающая синусоида к изолинии
	"ST": func(frac float64) float64 {
		return 0.3 * math.Sin(2*math.Pi*frac) * math.Exp(-2*frac)
	},

	// P и T волны: широкие полусинусоиды
	"P": func(frac float64) float64 {
		return 0.25 * math.Sin(math.Pi*frac)
	},
	"T": func(frac float64) float64 {
		return 0.3 * math.Sin(math.Pi*frac)
	},
}

// GenerateFromIntervals синтезирует n сэмплов, проходя по явному списку
// фазовых интервалов. Список отсортирован по Entry, поэтому достаточно
// одного последовательного прохода: индекс текущего интервала только растет.
func GenerateFromIntervals(intervals []models.PhaseInterval, n int, sampleRate float64) []models.SamplePoint {
	points := make([]models.SamplePoint, n)

	idx := 0
	for i := 0; i < n; i++ {
		t := float64(i) / sampleRate

		// Пропускаем интервалы, которые уже закончились
		for idx < len(intervals) && t >= intervals[idx].End() {
			idx++
		}

		value := 0.0
		if idx < len(intervals) {
			iv := intervals[idx]
			if t >= iv.Entry && iv.Duration > 0 {
				if shape, ok := phaseShapes[iv.Phase]; ok {
					value = shape((t - iv.Entry) / iv.Duration)
				}
			}
		}

		points[i] = models.SamplePoint{Time: t, Value: value}
	}

	return points
}
