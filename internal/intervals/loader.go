package intervals

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/Kalmeshteli17/heart-simulation/internal/models"
	"github.com/Kalmeshteli17/heart-simulation/pkg/utils"
)

// ErrMalformedInput ресурс не массив, пустой или с неверными типами полей
var ErrMalformedInput = errors.New("некорректный формат ресурса фазовых интервалов")

// rawInterval запись ресурса с указателями для детекции отсутствующих полей
type rawInterval struct {
	Phase    *string  `json:"phase"`
	Entry    *float64 `json:"entry"`
	Duration *float64 `json:"duration"`
}

// LoadFromFile читает и валидирует ресурс фазовых интервалов.
// Ресурс загружается один раз на старте и дальше не меняется.
func LoadFromFile(path string) ([]models.PhaseInterval, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("не удалось прочитать ресурс %s: %w", path, err)
	}
	return Parse(data)
}

// Parse валидирует JSON массив записей {phase, entry, duration}.
// Некорректный вход отклоняется с описанием причины, а не молча
// превращается в неверный сигнал.
func Parse(data []byte) ([]models.PhaseInterval, error) {
	var raw []rawInterval
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: ожидался JSON массив: %v", ErrMalformedInput, err)
	}
	if len(raw) == 0 {
		return nil, fmt.Errorf("%w: массив пуст", ErrMalformedInput)
	}

	result := make([]models.PhaseInterval, 0, len(raw))
	for i, r := range raw {
		if r.Phase == nil || r.Entry == nil || r.Duration == nil {
			return nil, fmt.Errorf("%w: запись %d без обязательных полей", ErrMalformedInput, i)
		}
		if !utils.IsFinite(*r.Entry) || !utils.IsFinite(*r.Duration) {
			return nil, fmt.Errorf("%w: запись %d с нечисловыми значениями", ErrMalformedInput, i)
		}
		if *r.Entry < 0 {
			return nil, fmt.Errorf("%w: запись %d с отрицательным entry", ErrMalformedInput, i)
		}
		if *r.Duration <= 0 {
			return nil, fmt.Errorf("%w: запись %d с неположительной duration", ErrMalformedInput, i)
		}

		result = append(result, models.PhaseInterval{
			Phase:    *r.Phase,
			Entry:    *r.Entry,
			Duration: *r.Duration,
		})
	}

	// Записи ожидаются упорядоченными по entry, но это не гарантируется источником
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Entry < result[j].Entry
	})

	return result, nil
}
