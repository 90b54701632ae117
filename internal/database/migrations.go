// internal/database/migrations.go
package database

import (
	"fmt"
	"log"

	"github.com/Kalmeshteli17/heart-simulation/internal/models"
	"gorm.io/gorm"
)

// RunMigrations выполняет миграции базы данных
func RunMigrations(db *gorm.DB) error {
	log.Println("Запуск миграций базы данных...")

	// Автоматические миграции GORM
	err := db.AutoMigrate(
		&models.ECGSession{},
	)

	if err != nil {
		return fmt.Errorf("ошибка миграции: %w", err)
	}

	// Создаем индексы для оптимизации запросов
	if err := createIndexes(db); err != nil {
		return fmt.Errorf("ошибка создания индексов: %w", err)
	}

	log.Println("Миграции выполнены успешно")
	return nil
}

// createIndexes создает дополнительные индексы
func createIndexes(db *gorm.DB) error {
	indexes := []string{
		// Быстрый поиск активной сессии устройства
		"CREATE INDEX IF NOT EXISTS idx_ecg_sessions_device_active ON ecg_sessions(device_id, end_time) WHERE end_time IS NULL",
		"CREATE INDEX IF NOT EXISTS idx_ecg_sessions_start_time_desc ON ecg_sessions(start_time DESC)",

		// GIN индекс для JSONB поля с точками сигнала
		"CREATE INDEX IF NOT EXISTS idx_ecg_sessions_wave_gin ON ecg_sessions USING GIN (wave_data)",
	}

	for _, indexSQL := range indexes {
		if err := db.Exec(indexSQL).Error; err != nil {
			log.Printf("Не удалось создать индекс: %s, ошибка: %v", indexSQL, err)
		}
	}

	return nil
}
