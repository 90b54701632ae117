package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/Kalmeshteli17/heart-simulation/internal/ecg"
	"github.com/Kalmeshteli17/heart-simulation/internal/middleware"
	"github.com/Kalmeshteli17/heart-simulation/internal/models"
	"github.com/Kalmeshteli17/heart-simulation/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title Heart Simulation API
// @version 1.0
// @description API визуализатора сердца: синтетический сигнал ЭКГ, оценка пульса по фазовым интервалам, сессии потокового мониторинга

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080
// @BasePath /api/v1

// @tag.name ecg
// @tag.description Синтез сигнала и оценка пульса

// @tag.name sessions
// @tag.description Управление сессиями мониторинга

// @tag.name monitoring
// @tag.description Мониторинг состояния сервиса

// Ограничения на параметры генерации, чтобы не раздувать ответ
const (
	maxWaveformSamples = 20000
	maxSampleRate      = 2000.0
)

// RESTAPIServer обрабатывает REST API запросы
type RESTAPIServer struct {
	sessionManager *SessionManager
	wsHub          *WSHub
	authService    *service.AuthService
	jwtMiddleware  *middleware.JWTMiddleware

	// Ресурс фазовых интервалов, загруженный на старте; пустой при
	// неудачной загрузке, тогда пульс всегда запасной
	intervals []models.PhaseInterval
}

// WaveformResponse синтезированный сигнал ЭКГ
// @Description Массив точек сигнала с параметрами генерации
type WaveformResponse struct {
	Samples    []models.SamplePoint `json:"samples"`                       // Точки сигнала
	Count      int                  `json:"count" example:"1000"`          // Количество точек
	SampleRate float64              `json:"sample_rate" example:"300"`     // Частота дискретизации
	HeartRate  int                  `json:"heart_rate" example:"72"`       // Пульс генерации
	BPMSource  string               `json:"bpm_source" example:"estimated"` // Откуда взят пульс
}

// BPMResponse оценка пульса
// @Description Пульс, вычисленный по фазовым интервалам, либо запасное значение
type BPMResponse struct {
	BPM    int    `json:"bpm" example:"75"`          // Пульс в ударах в минуту
	Source string `json:"source" example:"estimated"` // estimated или fallback
}

// IntervalsResponse загруженные фазовые интервалы
// @Description Статический ресурс фазовых интервалов сердечного цикла
type IntervalsResponse struct {
	Intervals []models.PhaseInterval `json:"intervals"`         // Список интервалов
	Count     int                    `json:"count" example:"10"` // Количество интервалов
}

// LoginRequest запрос входа оператора
// @Description Учетные данные оператора
type LoginRequest struct {
	Operator string `json:"operator" binding:"required" example:"admin"` // Имя оператора
	Password string `json:"password" binding:"required"`                 // Пароль
}

// LoginResponse ответ с токеном
// @Description Access токен для защищенных операций
type LoginResponse struct {
	AccessToken string `json:"access_token"` // JWT токен
}

// SessionRequest запрос для создания сессии
// @Description Данные для создания новой сессии мониторинга
type SessionRequest struct {
	DeviceID  string `json:"device_id" binding:"required" example:"ECG-DEVICE-001"` // Идентификатор устройства ЭКГ
	HeartRate int    `json:"heart_rate" example:"72"`                               // Пульс генерации, 0 = вычислить по интервалам
}

// SessionResponse ответ с информацией о сессии
// @Description Информация о сессии мониторинга ЭКГ
type SessionResponse struct {
	SessionID string     `json:"session_id" example:"550e8400-e29b-41d4-a716-446655440001"` // UUID сессии
	DeviceID  string     `json:"device_id" example:"ECG-DEVICE-001"`                        // Идентификатор устройства
	Status    string     `json:"status" example:"active" enums:"active,stopped"`            // Статус сессии
	HeartRate int        `json:"heart_rate" example:"72"`                                   // Пульс генерации
	StartTime time.Time  `json:"start_time" example:"2023-09-01T10:00:00Z"`                 // Время начала сессии
	EndTime   *time.Time `json:"end_time,omitempty" example:"2023-09-01T11:30:00Z"`         // Время окончания сессии (если завершена)
	Duration  int        `json:"duration" example:"5400"`                                   // Продолжительность в секундах
}

// HealthResponse состояние сервиса
// @Description Информация о состоянии и работоспособности сервиса
type HealthResponse struct {
	Status         string    `json:"status" example:"healthy"`                 // Статус сервиса
	Service        string    `json:"service" example:"Heart Simulation"`       // Название сервиса
	Timestamp      time.Time `json:"timestamp" example:"2023-09-01T10:00:00Z"` // Время проверки
	ActiveSessions int       `json:"active_sessions" example:"3"`              // Количество активных сессий
	WSClients      int       `json:"ws_clients" example:"2"`                   // Количество websocket клиентов
}

// CleanupResponse результат очистки сессий
// @Description Результат операции очистки зависших сессий
type CleanupResponse struct {
	Message        string `json:"message" example:"Очистка сессий выполнена"` // Сообщение о результате
	ActiveSessions int    `json:"active_sessions" example:"2"`                // Количество активных сессий после очистки
}

// ErrorResponse стандартный ответ об ошибке
// @Description Стандартная структура ответа об ошибке
type ErrorResponse struct {
	Error   string `json:"error" example:"Неверный формат данных"`     // Описание ошибки
	Details string `json:"details,omitempty" example:"field required"` // Дополнительные детали ошибки
}

// SuccessResponse стандартный ответ об успехе
// @Description Стандартная структура успешного ответа
type SuccessResponse struct {
	Message string      `json:"message" example:"Операция выполнена успешно"` // Сообщение об успехе
	Data    interface{} `json:"data,omitempty"`                               // Дополнительные данные
}

// NewRESTAPIServer создает новый REST API сервер
func NewRESTAPIServer(
	sessionManager *SessionManager,
	wsHub *WSHub,
	authService *service.AuthService,
	jwtMiddleware *middleware.JWTMiddleware,
	intervals []models.PhaseInterval,
) *RESTAPIServer {
	return &RESTAPIServer{
		sessionManager: sessionManager,
		wsHub:          wsHub,
		authService:    authService,
		jwtMiddleware:  jwtMiddleware,
		intervals:      intervals,
	}
}

// SetupRoutes настраивает маршруты REST API
func (api *RESTAPIServer) SetupRoutes() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	// Middleware
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:80", "*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Swagger UI
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))

	// Живой поток сигнала
	r.GET("/ws", api.wsHub.HandleWS)

	// API группа
	api_group := r.Group("/api/v1")

	// === СИГНАЛ И ПУЛЬС ===
	ecgGroup := api_group.Group("/ecg")
	{
		ecgGroup.GET("/waveform", api.GetWaveform)
		ecgGroup.GET("/waveform/phases", api.GetPhaseWaveform)
		ecgGroup.GET("/bpm", api.GetBPM)
		ecgGroup.GET("/intervals", api.GetIntervals)
	}

	// === АУТЕНТИФИКАЦИЯ ===
	api_group.POST("/auth/login", api.Login)

	// === УПРАВЛЕНИЕ СЕССИЯМИ ===
	sessions := api_group.Group("/sessions")
	{
		sessions.POST("/start", api.jwtMiddleware.RequireAuth(), api.StartSession)
		sessions.POST("/stop/:session_id", api.jwtMiddleware.RequireAuth(), api.StopSession)
		sessions.GET("/:session_id", api.GetSession)
	}

	// === МОНИТОРИНГ СЕРВИСА ===
	monitoring := api_group.Group("/monitoring")
	{
		monitoring.GET("/health", api.HealthCheck)
		monitoring.POST("/cleanup", api.jwtMiddleware.RequireAuth(), api.CleanupSessions)
	}

	return r
}

// GetWaveform синтезирует сигнал ЭКГ
// @Summary Синтез PQRST сигнала
// @Description Генерирует массив точек синтетического сигнала ЭКГ. Пульс по умолчанию вычисляется по загруженным фазовым интервалам, при ошибке подставляется 72
// @Tags ecg
// @Produce json
// @Param samples query int false "Количество сэмплов" default(1000) maximum(20000)
// @Param rate query number false "Частота дискретизации, сэмплов/с" default(300)
// @Param bpm query int false "Пульс; 0 = вычислить по интервалам"
// @Success 200 {object} WaveformResponse "Синтезированный сигнал"
// @Failure 400 {object} ErrorResponse "Неверные параметры генерации"
// @Router /ecg/waveform [get]
func (api *RESTAPIServer) GetWaveform(c *gin.Context) {
	samples, rate, ok := api.parseWaveformParams(c)
	if !ok {
		return
	}

	bpm, source := api.resolveRequestedBPM(c)
	if bpm == 0 {
		return
	}

	generator := ecg.NewGenerator(rate, float64(bpm))
	points := generator.Generate(samples)

	c.JSON(http.StatusOK, WaveformResponse{
		Samples:    points,
		Count:      len(points),
		SampleRate: rate,
		HeartRate:  bpm,
		BPMSource:  source,
	})
}

// GetPhaseWaveform синтезирует сигнал по явным фазовым интервалам
// @Summary Синтез сигнала по фазовым интервалам
// @Description Генерирует сигнал, проходя по загруженному списку фазовых интервалов; форма каждой фазы определяется ее меткой. Модель намеренно отличается от канонической позиционной
// @Tags ecg
// @Produce json
// @Param samples query int false "Количество сэмплов" default(1000) maximum(20000)
// @Param rate query number false "Частота дискретизации, сэмплов/с" default(300)
// @Success 200 {object} WaveformResponse "Синтезированный сигнал"
// @Failure 400 {object} ErrorResponse "Неверные параметры генерации"
// @Failure 503 {object} ErrorResponse "Ресурс интервалов не загружен"
// @Router /ecg/waveform/phases [get]
func (api *RESTAPIServer) GetPhaseWaveform(c *gin.Context) {
	samples, rate, ok := api.parseWaveformParams(c)
	if !ok {
		return
	}

	if len(api.intervals) == 0 {
		c.JSON(http.StatusServiceUnavailable, ErrorResponse{
			Error: "Ресурс фазовых интервалов не загружен",
		})
		return
	}

	points := ecg.GenerateFromIntervals(api.intervals, samples, rate)
	bpm, source := ResolveHeartRate(api.intervals)

	c.JSON(http.StatusOK, WaveformResponse{
		Samples:    points,
		Count:      len(points),
		SampleRate: rate,
		HeartRate:  bpm,
		BPMSource:  source,
	})
}

// GetBPM возвращает оценку пульса
// @Summary Оценка пульса по фазовым интервалам
// @Description Вычисляет пульс по RR интервалам между QRS событиями загруженного ресурса; при любой ошибке возвращает запасное значение 72 с source=fallback
// @Tags ecg
// @Produce json
// @Success 200 {object} BPMResponse "Оценка пульса"
// @Router /ecg/bpm [get]
func (api *RESTAPIServer) GetBPM(c *gin.Context) {
	bpm, source := ResolveHeartRate(api.intervals)
	c.JSON(http.StatusOK, BPMResponse{
		BPM:    bpm,
		Source: source,
	})
}

// GetIntervals возвращает загруженные фазовые интервалы
// @Summary Фазовые интервалы сердечного цикла
// @Description Возвращает статический ресурс фазовых интервалов, загруженный на старте
// @Tags ecg
// @Produce json
// @Success 200 {object} IntervalsResponse "Список интервалов"
// @Failure 503 {object} ErrorResponse "Ресурс не загружен"
// @Router /ecg/intervals [get]
func (api *RESTAPIServer) GetIntervals(c *gin.Context) {
	if len(api.intervals) == 0 {
		c.JSON(http.StatusServiceUnavailable, ErrorResponse{
			Error: "Ресурс фазовых интервалов не загружен",
		})
		return
	}

	c.JSON(http.StatusOK, IntervalsResponse{
		Intervals: api.intervals,
		Count:     len(api.intervals),
	})
}

// Login вход оператора
// @Summary Вход оператора
// @Description Проверяет пароль оператора и выдает JWT для защищенных операций
// @Tags sessions
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Учетные данные"
// @Success 200 {object} LoginResponse "Access токен"
// @Failure 400 {object} ErrorResponse "Неверный формат данных"
// @Failure 401 {object} ErrorResponse "Неверный логин или пароль"
// @Router /auth/login [post]
func (api *RESTAPIServer) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "Неверный формат данных",
			Details: err.Error(),
		})
		return
	}

	token, err := api.authService.Login(req.Operator, req.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, ErrorResponse{
			Error: "Неверный логин или пароль",
		})
		return
	}

	c.JSON(http.StatusOK, LoginResponse{AccessToken: token})
}

// StartSession запускает новую сессию мониторинга
// @Summary Запуск новой сессии мониторинга ЭКГ
// @Description Создает новую сессию потокового мониторинга для указанного устройства
// @Tags sessions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body SessionRequest true "Данные для создания сессии"
// @Success 200 {object} SuccessResponse{data=SessionResponse} "Сессия успешно запущена"
// @Failure 400 {object} ErrorResponse "Неверный формат данных"
// @Failure 409 {object} ErrorResponse "Сессия для устройства уже активна"
// @Failure 500 {object} ErrorResponse "Внутренняя ошибка сервера"
// @Router /sessions/start [post]
func (api *RESTAPIServer) StartSession(c *gin.Context) {
	var req SessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "Неверный формат данных",
			Details: err.Error(),
		})
		return
	}

	// Пульс не задан - вычисляем по интервалам (или запасной)
	heartRate := req.HeartRate
	if heartRate == 0 {
		heartRate, _ = ResolveHeartRate(api.intervals)
	}

	// Проверка активной сессии
	if activeSession := api.sessionManager.GetActiveSession(req.DeviceID); activeSession != nil {
		c.JSON(http.StatusConflict, ErrorResponse{
			Error:   "Сессия для устройства уже активна",
			Details: "active_session_id: " + activeSession.ID.String(),
		})
		return
	}

	// Создание сессии
	session, err := api.sessionManager.StartSession(req.DeviceID, heartRate)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "Не удалось создать сессию",
			Details: err.Error(),
		})
		return
	}

	response := SessionResponse{
		SessionID: session.ID.String(),
		DeviceID:  session.DeviceID,
		Status:    "active",
		HeartRate: session.HeartRate,
		StartTime: session.StartTime,
		Duration:  0,
	}

	c.JSON(http.StatusOK, SuccessResponse{
		Message: "Сессия успешно запущена",
		Data:    response,
	})
}

// StopSession завершает активную сессию
// @Summary Завершение активной сессии мониторинга
// @Description Завершает указанную активную сессию мониторинга ЭКГ
// @Tags sessions
// @Produce json
// @Security BearerAuth
// @Param session_id path string true "UUID сессии" format(uuid)
// @Success 200 {object} SuccessResponse{data=SessionResponse} "Сессия успешно завершена"
// @Failure 400 {object} ErrorResponse "Неверный ID сессии"
// @Failure 404 {object} ErrorResponse "Сессия не найдена"
// @Router /sessions/stop/{session_id} [post]
func (api *RESTAPIServer) StopSession(c *gin.Context) {
	sessionIDStr := c.Param("session_id")
	sessionID, err := uuid.Parse(sessionIDStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "Неверный ID сессии",
		})
		return
	}

	session, err := api.sessionManager.StopSession(sessionID)
	if err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{
			Error: "Сессия не найдена или уже завершена",
		})
		return
	}

	duration := 0
	if session.EndTime != nil {
		duration = int(session.EndTime.Sub(session.StartTime).Seconds())
	}

	response := SessionResponse{
		SessionID: session.ID.String(),
		DeviceID:  session.DeviceID,
		Status:    "stopped",
		HeartRate: session.HeartRate,
		StartTime: session.StartTime,
		EndTime:   session.EndTime,
		Duration:  duration,
	}

	c.JSON(http.StatusOK, SuccessResponse{
		Message: "Сессия успешно завершена",
		Data:    response,
	})
}

// GetSession возвращает сохраненную сессию с точками сигнала
// @Summary Сессия мониторинга по ID
// @Description Возвращает сессию из БД вместе с накопленным массивом точек сигнала
// @Tags sessions
// @Produce json
// @Param session_id path string true "UUID сессии" format(uuid)
// @Success 200 {object} models.ECGSession "Сессия"
// @Failure 400 {object} ErrorResponse "Неверный ID сессии"
// @Failure 404 {object} ErrorResponse "Сессия не найдена"
// @Router /sessions/{session_id} [get]
func (api *RESTAPIServer) GetSession(c *gin.Context) {
	sessionIDStr := c.Param("session_id")
	sessionID, err := uuid.Parse(sessionIDStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "Неверный ID сессии",
		})
		return
	}

	session, err := api.sessionManager.GetSession(sessionID)
	if err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{
			Error: "Сессия не найдена",
		})
		return
	}

	c.JSON(http.StatusOK, session)
}

// HealthCheck проверка здоровья сервиса
// @Summary Проверка состояния сервиса
// @Description Возвращает информацию о текущем состоянии и работоспособности сервиса
// @Tags monitoring
// @Produce json
// @Success 200 {object} HealthResponse "Состояние сервиса"
// @Router /monitoring/health [get]
func (api *RESTAPIServer) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:         "healthy",
		Service:        "Heart Simulation",
		Timestamp:      time.Now().UTC(),
		ActiveSessions: api.sessionManager.GetActiveSessionCount(),
		WSClients:      api.wsHub.ClientCount(),
	})
}

// CleanupSessions очистка зависших сессий
// @Summary Очистка зависших сессий
// @Description Выполняет очистку зависших и неактивных сессий в системе
// @Tags monitoring
// @Produce json
// @Security BearerAuth
// @Success 200 {object} CleanupResponse "Результат очистки"
// @Router /monitoring/cleanup [post]
func (api *RESTAPIServer) CleanupSessions(c *gin.Context) {
	api.sessionManager.CleanupInactiveSessions()
	c.JSON(http.StatusOK, CleanupResponse{
		Message:        "Очистка сессий выполнена",
		ActiveSessions: api.sessionManager.GetActiveSessionCount(),
	})
}

// parseWaveformParams разбирает и валидирует общие параметры генерации
func (api *RESTAPIServer) parseWaveformParams(c *gin.Context) (int, float64, bool) {
	samples, err := strconv.Atoi(c.DefaultQuery("samples", strconv.Itoa(ecg.DefaultSamples)))
	if err != nil || samples <= 0 || samples > maxWaveformSamples {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "Неверный параметр samples",
			Details: "ожидается целое в (0, " + strconv.Itoa(maxWaveformSamples) + "]",
		})
		return 0, 0, false
	}

	rate, err := strconv.ParseFloat(c.DefaultQuery("rate", "300"), 64)
	if err != nil || rate <= 0 || rate > maxSampleRate {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "Неверный параметр rate",
		})
		return 0, 0, false
	}

	return samples, rate, true
}

// resolveRequestedBPM берет пульс из запроса либо вычисляет по интервалам.
// Возвращает 0 если ответ об ошибке уже отправлен.
func (api *RESTAPIServer) resolveRequestedBPM(c *gin.Context) (int, string) {
	bpmParam := c.DefaultQuery("bpm", "0")
	bpm, err := strconv.Atoi(bpmParam)
	if err != nil || bpm < 0 || bpm > 300 {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "Неверный параметр bpm",
		})
		return 0, ""
	}

	if bpm == 0 {
		return ResolveHeartRate(api.intervals)
	}
	return bpm, "requested"
}
