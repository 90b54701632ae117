// internal/handlers/session_manager.go
package handlers

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/Kalmeshteli17/heart-simulation/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SessionManager управляет жизненным циклом сессий потокового мониторинга
type SessionManager struct {
	db             *gorm.DB
	activeSessions map[string]*models.ECGSession
	sessionsLock   sync.RWMutex
	dataBuffer     *DataBuffer
}

// NewSessionManager создает новый менеджер сессий
func NewSessionManager(db *gorm.DB, dataBuffer *DataBuffer) *SessionManager {
	manager := &SessionManager{
		db:             db,
		activeSessions: make(map[string]*models.ECGSession),
		dataBuffer:     dataBuffer,
	}

	log.Println("Session Manager инициализирован")
	return manager
}

// StartSession создает и запускает новую сессию мониторинга
func (sm *SessionManager) StartSession(deviceID string, heartRate int) (*models.ECGSession, error) {
	sm.sessionsLock.Lock()
	defer sm.sessionsLock.Unlock()

	// Проверяем, нет ли уже активной сессии для этого устройства
	if existing := sm.activeSessions[deviceID]; existing != nil {
		return nil, fmt.Errorf("активная сессия уже существует для устройства %s", deviceID)
	}

	// Создаем новую сессию
	session := &models.ECGSession{
		ID:        uuid.New(),
		DeviceID:  deviceID,
		StartTime: time.Now().UTC(),
		HeartRate: heartRate,
		WaveData: models.WaveSeries{
			Points:   []models.SamplePoint{},
			Count:    0,
			LastTime: 0,
		},
	}

	// Сохраняем в БД
	if err := sm.db.Create(session).Error; err != nil {
		return nil, fmt.Errorf("не удалось создать сессию в БД: %w", err)
	}

	// Добавляем в активные сессии
	sm.activeSessions[deviceID] = session

	log.Printf("Запущена сессия %s для устройства %s, пульс %d",
		session.ID.String(), deviceID, heartRate)

	return session, nil
}

// StopSession завершает активную сессию
func (sm *SessionManager) StopSession(sessionID uuid.UUID) (*models.ECGSession, error) {
	sm.sessionsLock.Lock()
	defer sm.sessionsLock.Unlock()

	// Ищем активную сессию
	var targetDeviceID string
	var targetSession *models.ECGSession

	for deviceID, session := range sm.activeSessions {
		if session.ID == sessionID {
			targetDeviceID = deviceID
			targetSession = session
			break
		}
	}

	if targetSession == nil {
		return nil, fmt.Errorf("активная сессия %s не найдена", sessionID.String())
	}

	// Устанавливаем время завершения
	now := time.Now().UTC()
	targetSession.EndTime = &now

	// Обновляем в БД
	if err := sm.db.Model(targetSession).Update("end_time", now).Error; err != nil {
		return nil, fmt.Errorf("не удалось обновить сессию в БД: %w", err)
	}

	// Удаляем из активных сессий
	delete(sm.activeSessions, targetDeviceID)

	// Очищаем буфер данных для этой сессии
	sm.dataBuffer.RemoveSessionBuffer(sessionID)

	log.Printf("Завершена сессия %s для устройства %s", sessionID.String(), targetDeviceID)
	return targetSession, nil
}

// GetActiveSession возвращает активную сессию для устройства
func (sm *SessionManager) GetActiveSession(deviceID string) *models.ECGSession {
	sm.sessionsLock.RLock()
	defer sm.sessionsLock.RUnlock()
	return sm.activeSessions[deviceID]
}

// GetAllActiveSessions возвращает все активные сессии
func (sm *SessionManager) GetAllActiveSessions() []*models.ECGSession {
	sm.sessionsLock.RLock()
	defer sm.sessionsLock.RUnlock()

	sessions := make([]*models.ECGSession, 0, len(sm.activeSessions))
	for _, session := range sm.activeSessions {
		sessions = append(sessions, session)
	}

	return sessions
}

// GetActiveSessionCount возвращает количество активных сессий
func (sm *SessionManager) GetActiveSessionCount() int {
	sm.sessionsLock.RLock()
	defer sm.sessionsLock.RUnlock()
	return len(sm.activeSessions)
}

// GetSession получает сессию из БД по ID
func (sm *SessionManager) GetSession(sessionID uuid.UUID) (*models.ECGSession, error) {
	var session models.ECGSession
	if err := sm.db.First(&session, "id = ?", sessionID).Error; err != nil {
		return nil, err
	}
	return &session, nil
}

// GetAllDevices возвращает список всех устройств из БД
func (sm *SessionManager) GetAllDevices() []string {
	var devices []string
	sm.db.Model(&models.ECGSession{}).
		Distinct("device_id").
		Pluck("device_id", &devices)
	return devices
}

// CleanupInactiveSessions проверяет и очищает зависшие сессии
func (sm *SessionManager) CleanupInactiveSessions() {
	sm.sessionsLock.Lock()
	defer sm.sessionsLock.Unlock()

	var sessionsToRemove []string
	threshold := time.Now().Add(-24 * time.Hour)

	for deviceID, session := range sm.activeSessions {
		if session.StartTime.Before(threshold) {
			now := time.Now().UTC()
			session.EndTime = &now
			sm.db.Model(session).Update("end_time", now)

			sessionsToRemove = append(sessionsToRemove, deviceID)
			log.Printf("Принудительно завершена зависшая сессия: %s", session.ID.String())
		}
	}

	// Удаляем зависшие сессии
	for _, deviceID := range sessionsToRemove {
		delete(sm.activeSessions, deviceID)
	}

	if len(sessionsToRemove) > 0 {
		log.Printf("Очищено %d зависших сессий", len(sessionsToRemove))
	}
}
