package handlers

import (
	"log"

	"github.com/Kalmeshteli17/heart-simulation/internal/ecg"
	"github.com/Kalmeshteli17/heart-simulation/internal/models"
)

// Источники значения пульса для ответов API
const (
	BPMSourceEstimated = "estimated"
	BPMSourceFallback  = "fallback"
)

// ResolveHeartRate граница обработки ошибок оценки пульса.
// Любая ошибка оценки (как и пустой список после неудачной загрузки ресурса)
// дает фиксированный запасной пульс 72, чтобы фронтенд никогда не остался
// без сигнала. Сам оценщик ошибки не глотает.
func ResolveHeartRate(intervals []models.PhaseInterval) (int, string) {
	bpm, err := ecg.EstimateBPM(intervals)
	if err != nil {
		log.Printf("Оценка пульса не удалась: %v, используем запасной %d", err, ecg.FallbackBPM)
		return ecg.FallbackBPM, BPMSourceFallback
	}
	return bpm, BPMSourceEstimated
}
