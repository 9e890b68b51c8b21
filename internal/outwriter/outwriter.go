// Package outwriter has output and writer logic.
package outwriter

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/landsense/chartkit/internal/contract"
	"github.com/landsense/chartkit/internal/parquet"
	"github.com/landsense/chartkit/schema"
)

// LogRenderHeader prints a concise, 2-line header describing the render to stderr.
func LogRenderHeader(cfg *contract.Config) {
	writeRenderHeader(os.Stderr, cfg)
}

func writeRenderHeader(w io.Writer, cfg *contract.Config) {
	inputs := strings.Join(cfg.Inputs, ", ")
	if inputs == "" || inputs == contract.StdinPath {
		inputs = "stdin"
	}
	target := cfg.OutputFile
	if target == "" {
		target = "stdout"
	}

	inPrefix, outPrefix := "Inputs:", "Output:"
	if cfg.UseEmojis {
		inPrefix, outPrefix = "📂 Inputs:", "🖼️  Output:"
	}
	_, _ = fmt.Fprintf(w, "%s %s (%d workers)\n", inPrefix, inputs, cfg.Workers)
	_, _ = fmt.Fprintf(w, "%s %s → %s\n", outPrefix, cfg.Output, target)
}

// PrintRenderResult outputs a render result, dispatching based on the output format configured.
func PrintRenderResult(result schema.RenderResult, cfg *contract.Config, duration time.Duration) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return WriteRenderResult(w, result, cfg, duration)
	}, "Wrote "+string(cfg.Output)+" render")
}

// WriteRenderResult writes a render result to w in the configured output format.
func WriteRenderResult(w io.Writer, result schema.RenderResult, cfg *contract.Config, duration time.Duration) error {
	_, fmtValue := createFormatters(cfg.Precision)

	var err error
	switch cfg.Output {
	case schema.JSONOut:
		err = writeJSON(w, result)
	case schema.CSVOut:
		err = writeRenderCSV(w, result, fmtValue)
	case schema.ParquetOut:
		err = parquet.WriteRenderResult(w, result)
	case schema.XLSXOut:
		err = writeRenderXLSX(w, result)
	case schema.HTMLOut:
		err = writeRenderHTML(w, result)
	default:
		err = writeRenderText(w, result, cfg, fmtValue, duration)
	}
	if err != nil {
		return fmt.Errorf("error writing %s output: %w", cfg.Output, err)
	}
	return nil
}

// PrintTrendResult outputs a trend chart, dispatching based on the output format configured.
func PrintTrendResult(chart schema.Chart, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return WriteTrendResult(w, chart, cfg)
	}, "Wrote "+string(cfg.Output)+" trend")
}

// WriteTrendResult writes a trend chart to w in the configured output format.
// The chart carries the values as its first series and the fit as its second.
func WriteTrendResult(w io.Writer, chart schema.Chart, cfg *contract.Config) error {
	_, fmtValue := createFormatters(cfg.Precision)
	result := schema.RenderResult{
		Kind:   schema.TemporalResult,
		Charts: []schema.Chart{chart},
	}

	var err error
	switch cfg.Output {
	case schema.JSONOut:
		err = writeJSON(w, newTrendOutput(chart))
	case schema.CSVOut:
		err = writeTrendCSV(w, chart, fmtValue)
	case schema.ParquetOut:
		err = parquet.WriteRenderResult(w, result)
	case schema.XLSXOut:
		err = writeRenderXLSX(w, result)
	case schema.HTMLOut:
		err = writeRenderHTML(w, result)
	default:
		err = writeTrendText(w, chart, cfg, fmtValue)
	}
	if err != nil {
		return fmt.Errorf("error writing %s output: %w", cfg.Output, err)
	}
	return nil
}
