package ecg

import (
	"errors"
	"fmt"
	"math"

	"github.com/Kalmeshteli17/heart-simulation/internal/models"
	"github.com/Kalmeshteli17/heart-simulation/pkg/utils"
)

// Ошибки оценки пульса. Все они восстановимы: вызывающий слой
// подставляет FallbackBPM вместо проброса наверх.
var (
	ErrInsufficientData = errors.New("недостаточно QRS событий для оценки пульса")
	ErrNoValidIntervals = errors.New("все RR интервалы вне физиологического диапазона")
	ErrOutOfRange       = errors.New("вычисленный пульс вне допустимого диапазона")
)

const (
	// FallbackBPM подставляется на границе приложения при любой ошибке оценки
	FallbackBPM = 72

	// Физиологически правдоподобный диапазон RR интервала в секундах (открытый)
	minRRSeconds = 0.3
	maxRRSeconds = 2.0

	// Допустимый диапазон итогового пульса
	minBPM = 40
	maxBPM = 180
)

// EstimateBPM вычисляет пульс по последовательности фазовых интервалов.
// Берутся только QRS события (желудочковая деполяризация), по ним считаются
// RR интервалы, неправдоподобные (вне (0.3, 2.0) c) отбрасываются как шум,
// по среднему из оставшихся считается BPM = round(60/avg).
// Округление через math.Round: половина от нуля.
func EstimateBPM(intervals []models.PhaseInterval) (int, error) {
	entries := qrsEntries(intervals)
	if len(entries) < 2 {
		return 0, fmt.Errorf("%w: найдено %d", ErrInsufficientData, len(entries))
	}

	rr := utils.Diff(entries)

	valid := rr[:0]
	for _, d := range rr {
		if d > minRRSeconds && d < maxRRSeconds {
			valid = append(valid, d)
		}
	}
	if len(valid) == 0 {
		return 0, fmt.Errorf("%w: все %d отброшены как шум", ErrNoValidIntervals, len(rr))
	}

	bpm := int(math.Round(60.0 / utils.Mean(valid)))
	if bpm < minBPM || bpm > maxBPM {
		return 0, fmt.Errorf("%w: %d не входит в [%d, %d]", ErrOutOfRange, bpm, minBPM, maxBPM)
	}

	return bpm, nil
}

// qrsEntries отбирает времена начала QRS событий с числовыми полями
func qrsEntries(intervals []models.PhaseInterval) []float64 {
	entries := make([]float64, 0, len(intervals))
	for _, iv := range intervals {
		if iv.Phase != "QRS" {
			continue
		}
		if !utils.IsFinite(iv.Entry) || !utils.IsFinite(iv.Duration) {
			continue
		}
		entries = append(entries, iv.Entry)
	}
	return entries
}
