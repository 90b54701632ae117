// internal/handlers/mqtt_processor.go
package handlers

import (
	"context"
	"encoding/json"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/Kalmeshteli17/heart-simulation/internal/models"
	"github.com/Kalmeshteli17/heart-simulation/pkg/utils"
)

// MQTTStreamProcessor обрабатывает потоковые батчи сигнала от MQTT
type MQTTStreamProcessor struct {
	// Компоненты
	sessionManager *SessionManager
	wsHub          *WSHub
	dataBuffer     *DataBuffer

	// Канал для потоковой обработки
	waveChannel chan *models.WaveMessage

	// Управление
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewMQTTStreamProcessor создает новый процессор потоковых данных
func NewMQTTStreamProcessor(
	sessionManager *SessionManager,
	wsHub *WSHub,
	dataBuffer *DataBuffer,
) *MQTTStreamProcessor {
	ctx, cancel := context.WithCancel(context.Background())

	processor := &MQTTStreamProcessor{
		sessionManager: sessionManager,
		wsHub:          wsHub,
		dataBuffer:     dataBuffer,
		waveChannel:    make(chan *models.WaveMessage, 1000),
		ctx:            ctx,
		cancel:         cancel,
	}

	// Запуск воркеров
	processor.wg.Add(2)
	go processor.waveWorker()   // Обработка батчей сигнала
	go processor.bufferWorker() // Буферизация

	log.Println("MQTT Stream Processor запущен")
	return processor
}

// HandleIncomingMQTT главный обработчик MQTT сообщений.
// Формат топика: medical/ecg/{deviceID}/wave
func (p *MQTTStreamProcessor) HandleIncomingMQTT(topic string, payload []byte) {
	parts := strings.Split(topic, "/")
	if len(parts) != 4 {
		log.Printf("Неверный формат топика: %s", topic)
		return
	}

	deviceID := parts[2]

	// Парсинг JSON
	var msg models.WaveMessage
	if err := json.Unmarshal(payload, &msg); err != nil {
		log.Printf("Ошибка парсинга MQTT payload: %v", err)
		return
	}

	// Заполнение из топика, если не указано
	if msg.DeviceID == "" {
		msg.DeviceID = deviceID
	}

	// Отправляем в канал для обработки
	select {
	case p.waveChannel <- &msg:
	default:
		log.Printf("Канал данных переполнен, пропускаем сообщение")
	}
}

// waveWorker обрабатывает входящие батчи
func (p *MQTTStreamProcessor) waveWorker() {
	defer p.wg.Done()

	for {
		select {
		case msg := <-p.waveChannel:
			p.processWave(msg)
		case <-p.ctx.Done():
			log.Println("Wave worker остановлен")
			return
		}
	}
}

// processWave обрабатывает один батч сигнала.
// Батч раздается клиентам и пишется в буфер целиком, порядок точек
// внутри батча не меняется.
func (p *MQTTStreamProcessor) processWave(msg *models.WaveMessage) {
	// 1. Отбрасываем поврежденные точки
	msg.Samples = validSamples(msg.Samples)
	if len(msg.Samples) == 0 {
		return
	}

	// 2. Проверка активной сессии, при необходимости автосоздание
	session := p.sessionManager.GetActiveSession(msg.DeviceID)
	if session == nil {
		var err error
		session, err = p.sessionManager.StartSession(msg.DeviceID, msg.HeartRate)
		if err != nil {
			log.Printf("Ошибка создания автосессии для %s: %v", msg.DeviceID, err)
			return
		}
		log.Printf("Автоматически создана сессия для устройства: %s", msg.DeviceID)
	}

	// 3. Немедленная раздача живым клиентам
	if payload, err := json.Marshal(msg); err == nil {
		p.wsHub.Broadcast(payload)
	}

	// 4. Добавляем в буфер для записи в БД
	p.dataBuffer.AddSamples(session.ID, msg.Samples)
}

// bufferWorker периодически флашит буфер в БД
func (p *MQTTStreamProcessor) bufferWorker() {
	defer p.wg.Done()

	ticker := time.NewTicker(5 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			p.dataBuffer.FlushAll()
		case <-p.ctx.Done():
			// Финальный флаш
			p.dataBuffer.FlushAll()
			log.Println("Buffer worker остановлен")
			return
		}
	}
}

// validSamples отбирает точки с конечными числовыми значениями
func validSamples(samples []models.SamplePoint) []models.SamplePoint {
	valid := samples[:0]
	for _, s := range samples {
		if utils.IsFinite(s.Time) && utils.IsFinite(s.Value) {
			valid = append(valid, s)
		}
	}
	return valid
}

// Stop останавливает процессор
func (p *MQTTStreamProcessor) Stop() {
	log.Println("Остановка MQTT Stream Processor...")
	p.cancel()
	p.wg.Wait()
	close(p.waveChannel)
	log.Println("MQTT Stream Processor остановлен")
}
