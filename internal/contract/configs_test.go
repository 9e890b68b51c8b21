package contract

import (
	"path/filepath"
	"testing"

	"github.com/landsense/chartkit/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validInput() *ConfigRawInput {
	return &ConfigRawInput{
		Output:    "text",
		Precision: 2,
		Workers:   4,
		Color:     "yes",
		Emoji:     "no",
		Trend:     "yes",
	}
}

func TestProcessAndValidate(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(*ConfigRawInput)
		expectError string
	}{
		{
			name:   "valid minimal config",
			mutate: func(*ConfigRawInput) {},
		},
		{
			name:   "output is case-insensitive",
			mutate: func(in *ConfigRawInput) { in.Output = "JSON" },
		},
		{
			name:        "invalid output",
			mutate:      func(in *ConfigRawInput) { in.Output = "yaml" },
			expectError: "invalid output format 'yaml'",
		},
		{
			name:        "parquet without output file",
			mutate:      func(in *ConfigRawInput) { in.Output = "parquet" },
			expectError: "--output-file is required for parquet output",
		},
		{
			name:        "xlsx without output file",
			mutate:      func(in *ConfigRawInput) { in.Output = "xlsx" },
			expectError: "--output-file is required for xlsx output",
		},
		{
			name: "xlsx with output file",
			mutate: func(in *ConfigRawInput) {
				in.Output = "xlsx"
				in.OutputFile = "charts.xlsx"
			},
		},
		{
			name:   "html may go to stdout",
			mutate: func(in *ConfigRawInput) { in.Output = "html" },
		},
		{
			name:        "zero workers",
			mutate:      func(in *ConfigRawInput) { in.Workers = 0 },
			expectError: "workers must be greater than 0",
		},
		{
			name:        "precision too high",
			mutate:      func(in *ConfigRawInput) { in.Precision = 7 },
			expectError: "precision must be between 0 and 6",
		},
		{
			name:        "negative width",
			mutate:      func(in *ConfigRawInput) { in.Width = -1 },
			expectError: "width cannot be negative",
		},
		{
			name:        "bad color value",
			mutate:      func(in *ConfigRawInput) { in.Color = "maybe" },
			expectError: "invalid --color value",
		},
		{
			name:        "bad trend value",
			mutate:      func(in *ConfigRawInput) { in.Trend = "sometimes" },
			expectError: "invalid --trend value",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validInput()
			tt.mutate(input)
			cfg := &Config{}
			err := ProcessAndValidate(cfg, input)
			if tt.expectError != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.expectError)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestProcessAndValidateFields(t *testing.T) {
	input := validInput()
	input.Output = "CSV"
	input.Variable = "  NDVI "
	input.Trend = "no"
	input.Color = "0"
	input.Emoji = "true"
	input.InputArgs = []string{"a/./one.json", " ", "-"}

	cfg := &Config{}
	require.NoError(t, ProcessAndValidate(cfg, input))

	assert.Equal(t, schema.CSVOut, cfg.Output)
	assert.Equal(t, "NDVI", cfg.Variable)
	assert.False(t, cfg.Trend)
	assert.False(t, cfg.UseColors)
	assert.True(t, cfg.UseEmojis)
	assert.Equal(t, []string{filepath.Join("a", "one.json"), StdinPath}, cfg.Inputs)
}

func TestProcessAndValidateDefaults(t *testing.T) {
	input := &ConfigRawInput{Output: "text", Workers: 1}
	cfg := &Config{}
	require.NoError(t, ProcessAndValidate(cfg, input))

	assert.True(t, cfg.Trend, "trend overlays are on unless disabled")
	assert.True(t, cfg.UseColors)
	assert.False(t, cfg.UseEmojis)
	assert.Equal(t, []string{StdinPath}, cfg.Inputs, "no inputs reads stdin")
}

func TestConfigClone(t *testing.T) {
	cfg := &Config{Inputs: []string{"a.json"}, Precision: 3}
	clone := cfg.Clone()
	clone.Inputs[0] = "b.json"
	clone.Precision = 1

	assert.Equal(t, "a.json", cfg.Inputs[0])
	assert.Equal(t, 3, cfg.Precision)
}

func TestProcessProfilingConfig(t *testing.T) {
	profile := &ProfileConfig{}
	require.NoError(t, ProcessProfilingConfig(profile, ""))
	assert.False(t, profile.Enabled)

	require.NoError(t, ProcessProfilingConfig(profile, "out/render"))
	assert.True(t, profile.Enabled)
	assert.Equal(t, "out/render", profile.Prefix)
}
