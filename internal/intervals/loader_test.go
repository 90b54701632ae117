package intervals

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_ValidResource(t *testing.T) {
	data := []byte(`[
		{"phase": "P",   "entry": 0.0,  "duration": 0.09},
		{"phase": "QRS", "entry": 0.15, "duration": 0.09},
		{"phase": "T",   "entry": 0.36, "duration": 0.16}
	]`)

	result, err := Parse(data)
	require.NoError(t, err)
	require.Len(t, result, 3)
	assert.Equal(t, "QRS", result[1].Phase)
	assert.Equal(t, 0.15, result[1].Entry)
	assert.Equal(t, 0.09, result[1].Duration)
}

func TestParse_SortsByEntry(t *testing.T) {
	data := []byte(`[
		{"phase": "T",   "entry": 0.36, "duration": 0.16},
		{"phase": "P",   "entry": 0.0,  "duration": 0.09},
		{"phase": "QRS", "entry": 0.15, "duration": 0.09}
	]`)

	result, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, "P", result[0].Phase)
	assert.Equal(t, "QRS", result[1].Phase)
	assert.Equal(t, "T", result[2].Phase)
}

func TestParse_MalformedInput(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"объект вместо массива", `{}`},
		{"пустой массив", `[]`},
		{"не JSON", `not json`},
		{"запись без phase", `[{"entry": 0.0, "duration": 0.1}]`},
		{"запись без entry", `[{"phase": "QRS", "duration": 0.1}]`},
		{"запись без duration", `[{"phase": "QRS", "entry": 0.0}]`},
		{"строка вместо числа", `[{"phase": "QRS", "entry": "0.0", "duration": 0.1}]`},
		{"отрицательный entry", `[{"phase": "QRS", "entry": -1.0, "duration": 0.1}]`},
		{"нулевая duration", `[{"phase": "QRS", "entry": 0.0, "duration": 0}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			assert.ErrorIs(t, err, ErrMalformedInput)
		})
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "intervals.json")
	content := `[{"phase": "QRS", "entry": 0.0, "duration": 0.09},
	             {"phase": "QRS", "entry": 0.8, "duration": 0.09}]`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	result, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Len(t, result, 2)
}

func TestLoadFromFile_Missing(t *testing.T) {
	_, err := LoadFromFile(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}
