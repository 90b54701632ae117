package handlers

import (
	"context"
	"encoding/json"
	"log"
	"strconv"
	"sync"
	"time"

	"github.com/Kalmeshteli17/heart-simulation/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DataBuffer управляет буферизацией точек сигнала для записи в БД
type DataBuffer struct {
	db             *gorm.DB
	sessionBuffers map[uuid.UUID]*SessionDataBuffer
	mu             sync.RWMutex
	ctx            context.Context
	cancel         context.CancelFunc
	wg             sync.WaitGroup
}

// SessionDataBuffer буфер для одной сессии
type SessionDataBuffer struct {
	SessionID  uuid.UUID
	WaveBuffer []models.SamplePoint
	LastFlush  time.Time
	mu         sync.Mutex
}

// NewDataBuffer создает новый буфер данных
func NewDataBuffer(db *gorm.DB) *DataBuffer {
	ctx, cancel := context.WithCancel(context.Background())

	buffer := &DataBuffer{
		db:             db,
		sessionBuffers: make(map[uuid.UUID]*SessionDataBuffer),
		ctx:            ctx,
		cancel:         cancel,
	}

	// Запуск автофлаша
	buffer.wg.Add(1)
	go buffer.autoFlushWorker()

	log.Println("Data Buffer инициализирован")
	return buffer
}

// AddSamples добавляет батч точек сигнала в буфер сессии
func (db *DataBuffer) AddSamples(sessionID uuid.UUID, samples []models.SamplePoint) {
	db.mu.RLock()
	sessionBuffer, exists := db.sessionBuffers[sessionID]
	db.mu.RUnlock()

	if !exists {
		db.mu.Lock()
		if sessionBuffer, exists = db.sessionBuffers[sessionID]; !exists {
			sessionBuffer = &SessionDataBuffer{
				SessionID:  sessionID,
				WaveBuffer: make([]models.SamplePoint, 0, 500),
				LastFlush:  time.Now(),
			}
			db.sessionBuffers[sessionID] = sessionBuffer
		}
		db.mu.Unlock()
	}

	sessionBuffer.mu.Lock()
	sessionBuffer.WaveBuffer = append(sessionBuffer.WaveBuffer, samples...)
	totalPoints := len(sessionBuffer.WaveBuffer)
	timeSinceFlush := time.Since(sessionBuffer.LastFlush)
	sessionBuffer.mu.Unlock()

	if totalPoints >= 300 || timeSinceFlush > 30*time.Second {
		go db.flushSessionAsync(sessionID)
	}
}

// FlushAll флашит все буферы
func (db *DataBuffer) FlushAll() {
	db.mu.RLock()
	var sessionIDs []uuid.UUID
	for sessionID := range db.sessionBuffers {
		sessionIDs = append(sessionIDs, sessionID)
	}
	db.mu.RUnlock()

	for _, sessionID := range sessionIDs {
		db.flushSessionAsync(sessionID)
	}
}

// flushSessionAsync асинхронно флашит буфер сессии
func (db *DataBuffer) flushSessionAsync(sessionID uuid.UUID) {
	db.mu.RLock()
	sessionBuffer, exists := db.sessionBuffers[sessionID]
	db.mu.RUnlock()

	if !exists {
		return
	}

	sessionBuffer.mu.Lock()

	// Копируем данные для флаша
	points := make([]models.SamplePoint, len(sessionBuffer.WaveBuffer))
	copy(points, sessionBuffer.WaveBuffer)

	// Очищаем буфер
	sessionBuffer.WaveBuffer = sessionBuffer.WaveBuffer[:0]
	sessionBuffer.LastFlush = time.Now()

	sessionBuffer.mu.Unlock()

	if len(points) == 0 {
		return
	}

	// Записываем в БД
	if err := db.writeToDatabase(sessionID, points); err != nil {
		log.Printf("Ошибка записи в БД для сессии %s: %v", sessionID, err)
	} else {
		log.Printf("Записано в БД: сессия %s, %d точек", sessionID, len(points))
	}
}

// writeToDatabase аппендит точки к JSONB массиву сессии одним запросом
func (db *DataBuffer) writeToDatabase(sessionID uuid.UUID, points []models.SamplePoint) error {
	waveJSON, _ := json.Marshal(points)
	lastTimeStr := strconv.FormatFloat(points[len(points)-1].Time, 'f', -1, 64)

	updates := map[string]interface{}{
		"wave_data": gorm.Expr(
			`jsonb_set(
       jsonb_set(
         jsonb_set(wave_data,
           '{points}', COALESCE(wave_data->'points','[]'::jsonb)||?::jsonb),
         '{count}', (COALESCE((wave_data->>'count')::int,0)+?)::text::jsonb),
       '{last_time}', ?::text::jsonb)`,
			string(waveJSON),
			len(points),
			lastTimeStr,
		),
	}

	return db.db.Model(&models.ECGSession{}).
		Where("id = ?", sessionID).
		Updates(updates).Error
}

// RemoveSessionBuffer удаляет буфер завершенной сессии
func (db *DataBuffer) RemoveSessionBuffer(sessionID uuid.UUID) {
	db.mu.Lock()
	defer db.mu.Unlock()

	if _, exists := db.sessionBuffers[sessionID]; exists {
		// Финальный флаш перед удалением
		go db.flushSessionAsync(sessionID)
		delete(db.sessionBuffers, sessionID)
		log.Printf("Удален буфер сессии: %s", sessionID)
	}
}

// autoFlushWorker периодически флашит старые буферы
func (db *DataBuffer) autoFlushWorker() {
	defer db.wg.Done()

	ticker := time.NewTicker(10 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			db.flushOldBuffers()
		case <-db.ctx.Done():
			db.finalFlush()
			log.Println("Auto flush worker остановлен")
			return
		}
	}
}

// flushOldBuffers флашит буферы, которые давно не флашились
func (db *DataBuffer) flushOldBuffers() {
	db.mu.RLock()
	var sessionsToFlush []uuid.UUID

	for sessionID, sessionBuffer := range db.sessionBuffers {
		if time.Since(sessionBuffer.LastFlush) > 15*time.Second {
			sessionsToFlush = append(sessionsToFlush, sessionID)
		}
	}
	db.mu.RUnlock()

	for _, sessionID := range sessionsToFlush {
		go db.flushSessionAsync(sessionID)
	}
}

// finalFlush финальный флаш при остановке
func (db *DataBuffer) finalFlush() {
	log.Println("Финальный флаш буферов...")

	db.FlushAll()

	// Ждем завершения асинхронных флашей
	time.Sleep(2 * time.Second)
	log.Println("Финальный флаш завершен")
}

// Stop останавливает буфер
func (db *DataBuffer) Stop() {
	log.Println("Остановка Data Buffer...")
	db.cancel()
	db.wg.Wait()
	log.Println("Data Buffer остановлен")
}
