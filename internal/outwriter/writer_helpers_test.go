package outwriter

import (
	"bytes"
	"encoding/csv"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/landsense/chartkit/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateFormatters(t *testing.T) {
	tests := []struct {
		name      string
		precision int
		value     *float64
		want      string
	}{
		{"precision 2", 2, schema.Float(3.14159), "3.14"},
		{"precision 0", 0, schema.Float(3.6), "4"},
		{"precision 4", 4, schema.Float(3.14159), "3.1416"},
		{"negative value", 2, schema.Float(-42.567), "-42.57"},
		{"gap", 2, nil, "-"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fmtFloat, fmtValue := createFormatters(tt.precision)
			assert.Equal(t, tt.want, fmtValue(tt.value, "-"))
			if tt.value != nil {
				assert.Equal(t, tt.want, fmtFloat(*tt.value))
			}
		})
	}
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeJSON(&buf, map[string]any{"labels": []string{"2020"}}))
	assert.Equal(t, "{\n  \"labels\": [\n    \"2020\"\n  ]\n}\n", buf.String())

	err := writeJSON(&buf, make(chan int))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to encode JSON")
}

func TestWriteCSVWithHeader(t *testing.T) {
	var buf bytes.Buffer
	err := writeCSVWithHeader(&buf, []string{"label", "value"}, func(w *csv.Writer) error {
		return w.Write([]string{"Jan 2020", "a, b"})
	})
	require.NoError(t, err)
	assert.Equal(t, "label,value\nJan 2020,\"a, b\"\n", buf.String())

	err = writeCSVWithHeader(&buf, []string{"col"}, func(*csv.Writer) error {
		return assert.AnError
	})
	assert.Equal(t, assert.AnError, err)
}

func TestWriteWithFile(t *testing.T) {
	t.Run("stdout", func(t *testing.T) {
		called := false
		err := writeWithFile("", func(w io.Writer) error {
			called = true
			assert.Equal(t, os.Stdout, w)
			return nil
		}, "Wrote test")
		require.NoError(t, err)
		assert.True(t, called)
	})

	t.Run("file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "out.txt")
		require.NoError(t, writeWithFile(path, func(w io.Writer) error {
			_, err := w.Write([]byte("chart"))
			return err
		}, "Wrote test"))

		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "chart", string(content))
	})

	t.Run("writer error", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "out.txt")
		err := writeWithFile(path, func(io.Writer) error { return assert.AnError }, "Wrote test")
		assert.Equal(t, assert.AnError, err)
	})

	t.Run("invalid path", func(t *testing.T) {
		err := writeWithFile("/nonexistent/path/file.txt", func(io.Writer) error { return nil }, "Wrote test")
		assert.Error(t, err)
	})
}

func TestGetMaxLabelWidth(t *testing.T) {
	tests := []struct {
		name    string
		width   int
		columns int
		want    int
	}{
		{"wide terminal clamps to max", 300, 1, 70},
		{"narrow terminal clamps to min", 40, 4, 15},
		{"in between", 80, 2, 80 - 6 - 28},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig(schema.TextOut)
			cfg.Width = tt.width
			assert.Equal(t, tt.want, GetMaxLabelWidth(cfg, tt.columns))
		})
	}
}
