// cmd/emulator - эмулятор устройства ЭКГ.
// Синтезирует непрерывный сигнал и публикует его батчами в MQTT,
// как настоящий прикроватный монитор.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"

	"github.com/Kalmeshteli17/heart-simulation/internal/ecg"
	"github.com/Kalmeshteli17/heart-simulation/internal/intervals"
	"github.com/Kalmeshteli17/heart-simulation/internal/models"
)

var mqttClient mqtt.Client

var connectHandler mqtt.OnConnectHandler = func(client mqtt.Client) {
	fmt.Println("Подключение к MQTT брокеру установлено")
}

var connectLostHandler mqtt.ConnectionLostHandler = func(client mqtt.Client, err error) {
	fmt.Printf("Соединение с MQTT брокером потеряно: %v\n", err)
}

func initMQTTClient(broker string) error {
	opts := mqtt.NewClientOptions()
	opts.AddBroker(broker)
	opts.SetClientID(fmt.Sprintf("ecg-device-%d", time.Now().Unix()))
	opts.SetAutoReconnect(true)
	opts.SetCleanSession(true)
	opts.OnConnect = connectHandler
	opts.OnConnectionLost = connectLostHandler
	mqttClient = mqtt.NewClient(opts)
	if token := mqttClient.Connect(); token.Wait() && token.Error() != nil {
		return fmt.Errorf("ошибка подключения к MQTT: %v", token.Error())
	}
	return nil
}

func publishMQTT(topic string, msg models.WaveMessage) error {
	jsonData, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("ошибка сериализации JSON: %v", err)
	}
	token := mqttClient.Publish(topic, 1, false, jsonData)
	if !token.WaitTimeout(2 * time.Second) {
		return fmt.Errorf("таймаут отправки MQTT")
	}
	return token.Error()
}

func main() {
	var (
		broker        = flag.String("broker", "tcp://localhost:1883", "адрес MQTT брокера")
		deviceID      = flag.String("device", "ECG-DEVICE-001", "идентификатор устройства")
		bpm           = flag.Int("bpm", 0, "пульс; 0 = вычислить по ресурсу интервалов")
		rate          = flag.Float64("rate", ecg.DefaultSampleRate, "частота дискретизации, сэмплов/с")
		batch         = flag.Int("batch", 30, "сэмплов в одном сообщении")
		intervalsPath = flag.String("intervals", "data/phase_intervals.json", "путь к ресурсу фазовых интервалов")
	)
	flag.Parse()

	// Пульс: либо из флага, либо оценка по ресурсу с запасным значением
	heartRate := *bpm
	if heartRate == 0 {
		heartRate = ecg.FallbackBPM
		if phaseIntervals, err := intervals.LoadFromFile(*intervalsPath); err != nil {
			log.Printf("Ресурс интервалов недоступен: %v, пульс %d", err, heartRate)
		} else if estimated, err := ecg.EstimateBPM(phaseIntervals); err != nil {
			log.Printf("Оценка пульса не удалась: %v, пульс %d", err, heartRate)
		} else {
			heartRate = estimated
		}
	}

	if err := initMQTTClient(*broker); err != nil {
		log.Fatalf("MQTT: %v", err)
	}
	defer mqttClient.Disconnect(250)

	topic := fmt.Sprintf("medical/ecg/%s/wave", *deviceID)
	generator := ecg.NewGenerator(*rate, float64(heartRate))

	log.Printf("Эмулятор %s: пульс %d, %g сэмплов/с, батч %d -> %s",
		*deviceID, heartRate, *rate, *batch, topic)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	// Публикуем батчи в реальном времени
	period := time.Duration(float64(*batch) / *rate * float64(time.Second))
	ticker := time.NewTicker(period)
	defer ticker.Stop()

	offset := 0
	for {
		select {
		case <-sigChan:
			log.Println("Эмулятор остановлен")
			return

		case <-ticker.C:
			msg := models.WaveMessage{
				DeviceID:  *deviceID,
				Timestamp: time.Now().UnixNano(),
				HeartRate: heartRate,
				Samples:   generator.GenerateFrom(offset, *batch),
			}
			if err := publishMQTT(topic, msg); err != nil {
				log.Printf("Ошибка отправки батча: %v", err)
			}
			offset += *batch
		}
	}
}
