package contract

import (
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cast"
)

// Color variables for console output.
var (
	SentinelColor = color.New(color.FgYellow, color.Bold) // SentinelColor marks no-data and unknown-type messages.
	HeaderColor   = color.New(color.FgCyan, color.Bold)   // HeaderColor marks table and chart titles.
	TrendColor    = color.New(color.Faint)                // TrendColor dims synthetic trend rows.
	MissingColor  = color.New(color.FgHiBlack)            // MissingColor dims gaps and N/A cells.
)

// SelectOutputFile returns the appropriate file handle for output, based on the provided
// file path. It returns os.Stdout when no path is given.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	return os.Create(filePath)
}

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Fatal %s: %v\n", msg, err)
	os.Exit(1)
}

// LogWarn logs a warning message to stderr.
func LogWarn(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Warn %s: %v\n", msg, err)
}

// TruncateLabel truncates a label to a maximum width with an ellipsis suffix.
// Requires maxWidth > 3 so there is room for the "..." and at least one character.
func TruncateLabel(label string, maxWidth int) string {
	runes := []rune(label)
	if len(runes) > maxWidth && maxWidth > 3 {
		return string(runes[:maxWidth-3]) + "..."
	}
	return label
}

// ParseBoolString parses a string value into a boolean.
// Accepts "yes", "no", "true", "false", "1", "0" (case-insensitive).
// Returns an error for invalid values.
func ParseBoolString(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "yes", "true", "1":
		return true, nil
	case "no", "false", "0":
		return false, nil
	default:
		return false, fmt.Errorf("invalid boolean string: %s (expected yes/no/true/false/1/0)", s)
	}
}

// ParseSparseValues parses command-line values into series data.
// "null", "nil", "-" and "" mark gaps. NaN and infinities are rejected.
func ParseSparseValues(args []string) ([]*float64, error) {
	values := make([]*float64, len(args))
	for i, arg := range args {
		arg = strings.TrimSpace(arg)
		switch strings.ToLower(arg) {
		case "", "-", "null", "nil":
			continue
		}
		f, err := cast.ToFloat64E(arg)
		if err != nil {
			return nil, fmt.Errorf("invalid value %q at position %d: %w", arg, i, err)
		}
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return nil, fmt.Errorf("invalid value %q at position %d: not a finite number", arg, i)
		}
		values[i] = &f
	}
	return values, nil
}
