package models

import (
	"time"

	"github.com/google/uuid"
)

// PhaseInterval одна фаза сердечного цикла из статического ресурса.
// Интервалы отсортированы по Entry по возрастанию и после загрузки не меняются.
type PhaseInterval struct {
	Phase    string  `json:"phase"`    // Метка фазы: P, PQ, QRS, ST, T
	Entry    float64 `json:"entry"`    // Смещение начала фазы в секундах
	Duration float64 `json:"duration"` // Длительность фазы в секундах
}

// End возвращает время окончания интервала
func (p PhaseInterval) End() float64 {
	return p.Entry + p.Duration
}

// SamplePoint одна точка синтезированного сигнала ЭКГ
type SamplePoint struct {
	Time  float64 `json:"time"`  // Время от начала генерации в секундах
	Value float64 `json:"value"` // Безразмерная амплитуда
}

// ECGSession сессия потокового мониторинга ЭКГ
type ECGSession struct {
	// Основные идентификаторы
	ID       uuid.UUID `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	DeviceID string    `json:"device_id" gorm:"type:varchar(100);not null;index"`

	// Метаданные сессии
	StartTime time.Time  `json:"start_time" gorm:"not null;index"`
	EndTime   *time.Time `json:"end_time" gorm:"index"` // null пока сессия активна

	// Данные сигнала как аппендабельный JSONB массив
	WaveData WaveSeries `json:"wave_data" gorm:"serializer:json;type:jsonb"`

	// Частота пульса, под которую генерировался сигнал
	HeartRate int `json:"heart_rate" gorm:"not null"`
}

// WaveSeries оптимизированная структура для аппенда точек сигнала
type WaveSeries struct {
	Points   []SamplePoint `json:"points"`    // Массив точек данных
	LastTime float64       `json:"last_time"` // Последняя временная отметка
	Count    int           `json:"count"`     // Количество точек
}

func (ECGSession) TableName() string {
	return "ecg_sessions"
}

// WaveMessage батч точек сигнала, публикуемый эмулятором в MQTT
type WaveMessage struct {
	DeviceID  string        `json:"device_id"`
	Timestamp int64         `json:"timestamp"`
	HeartRate int           `json:"heart_rate"`
	Samples   []SamplePoint `json:"samples"`
}
