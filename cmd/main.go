package main

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/Kalmeshteli17/heart-simulation/docs"
	mqtt "github.com/eclipse/paho.mqtt.golang"

	"github.com/Kalmeshteli17/heart-simulation/configs"
	"github.com/Kalmeshteli17/heart-simulation/internal/database"
	"github.com/Kalmeshteli17/heart-simulation/internal/ecg"
	"github.com/Kalmeshteli17/heart-simulation/internal/handlers"
	"github.com/Kalmeshteli17/heart-simulation/internal/intervals"
	"github.com/Kalmeshteli17/heart-simulation/internal/middleware"
	"github.com/Kalmeshteli17/heart-simulation/internal/models"
	"github.com/Kalmeshteli17/heart-simulation/internal/service"
)

func main() {
	log.Println(" === HEART SIMULATION BACKEND ===")

	// 1. Загрузка конфигурации
	cfg := configs.LoadConfig()
	configs.InitLogger()
	log.Printf("Конфигурация загружена: DB=%s:%s, MQTT=%s",
		cfg.Database.Host, cfg.Database.Port, cfg.MQTT.Broker)

	// 2. Инициализация базы данных
	db, err := database.InitDatabase(cfg)
	if err != nil {
		log.Fatalf("Ошибка инициализации БД: %v", err)
	}
	defer database.CloseDatabase()

	if err := database.RunMigrations(db); err != nil {
		log.Fatalf("Ошибка миграций: %v", err)
	}

	// 3. Загрузка ресурса фазовых интервалов.
	// Неудачная загрузка не фатальна: фронтенд получит запасной пульс 72
	// и сгенерированный под него сигнал.
	phaseIntervals, err := intervals.LoadFromFile(cfg.App.IntervalsPath)
	if err != nil {
		log.Printf("Не удалось загрузить фазовые интервалы: %v", err)
		log.Printf("Продолжаем с запасным пульсом %d", ecg.FallbackBPM)
		phaseIntervals = []models.PhaseInterval{}
	} else {
		bpm, source := handlers.ResolveHeartRate(phaseIntervals)
		log.Printf("Загружено %d фазовых интервалов, пульс %d (%s)",
			len(phaseIntervals), bpm, source)
	}

	// 4. Создание основных компонентов
	dataBuffer := handlers.NewDataBuffer(db)
	sessionManager := handlers.NewSessionManager(db, dataBuffer)
	wsHub := handlers.NewWSHub()

	// 5. Создание MQTT Stream Processor
	mqttProcessor := handlers.NewMQTTStreamProcessor(
		sessionManager,
		wsHub,
		dataBuffer,
	)

	// 6. Инициализация MQTT клиента
	mqttClient, err := initMQTTWithAuth(cfg.MQTT)
	if err != nil {
		log.Fatalf("Ошибка MQTT: %v", err)
	}
	defer mqttClient.Disconnect(250)

	// 7. Подписка на MQTT топики
	messageHandler := func(client mqtt.Client, msg mqtt.Message) {
		mqttProcessor.HandleIncomingMQTT(msg.Topic(), msg.Payload())
	}

	topic := "medical/ecg/+/wave" // Все устройства
	token := mqttClient.Subscribe(topic, byte(cfg.MQTT.QoS), messageHandler)
	if token.Wait() && token.Error() != nil {
		log.Fatalf("Ошибка подписки MQTT: %v", token.Error())
	}

	log.Printf("MQTT клиент подключён к %s, топик: %s",
		cfg.MQTT.Broker, topic)

	// 8. Аутентификация оператора
	jwtService := service.NewJWTService(cfg.Auth.JWTSecret)
	authService := service.NewAuthService(jwtService, cfg.Auth.AdminPasswordHash)
	jwtMiddleware := middleware.NewJWTMiddleware(jwtService)

	// 9. Запуск REST API сервера
	restAPI := handlers.NewRESTAPIServer(
		sessionManager,
		wsHub,
		authService,
		jwtMiddleware,
		phaseIntervals,
	)
	router := restAPI.SetupRoutes()

	go func() {
		log.Printf("REST API Server запущен на :%s", cfg.App.Port)
		if err := http.ListenAndServe(":"+cfg.App.Port, router); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Ошибка HTTP сервера: %v", err)
		}
	}()

	log.Println("Сервис запущен, Ctrl+C для остановки")
	log.Println("MQTT -> Stream Processor -> WS Hub (живой поток)")
	log.Println("MQTT -> Stream Processor -> Data Buffer -> Database")
	log.Println("REST API -> генерация сигнала и оценка пульса")

	// 10. Graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	log.Println("Graceful shutdown...")

	// Остановка компонентов в обратном порядке
	mqttProcessor.Stop()
	wsHub.Stop()
	dataBuffer.Stop()

	log.Println("Сервис полностью остановлен")
}

// initMQTTWithAuth инициализирует MQTT клиент с аутентификацией
func initMQTTWithAuth(mqttCfg configs.MQTTConfig) (mqtt.Client, error) {
	opts := mqtt.NewClientOptions()
	opts.AddBroker(mqttCfg.Broker)
	opts.SetClientID(mqttCfg.ClientID)

	if mqttCfg.Username != "" && mqttCfg.Password != "" {
		opts.SetUsername(mqttCfg.Username)
		opts.SetPassword(mqttCfg.Password)
		log.Printf("MQTT аутентификация: пользователь %s", mqttCfg.Username)
	}

	opts.SetAutoReconnect(true)
	opts.SetCleanSession(true)
	opts.OnConnect = func(c mqtt.Client) {
		fmt.Println("MQTT подключен")
	}
	opts.OnConnectionLost = func(c mqtt.Client, err error) {
		log.Printf("MQTT соединение потеряно: %v", err)
	}

	client := mqtt.NewClient(opts)
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		return nil, fmt.Errorf("MQTT подключение не удалось: %w", token.Error())
	}

	return client, nil
}
