package core

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/landsense/chartkit/schema"
)

// FormatMonthYear renders a 1-based month and a year as "Jan 2020".
// The month names are fixed English abbreviations so the output does not
// depend on the host locale. Months outside 1-12 report false.
func FormatMonthYear(month, year int) (string, bool) {
	if month < 1 || month > 12 {
		return "", false
	}
	return fmt.Sprintf("%s %d", time.Month(month).String()[:3], year), true
}

// parseMonth accepts 1-12 as a number or numeric string, or an English
// month name in full or abbreviated form.
func parseMonth(props schema.Properties) (int, bool) {
	if m, ok := Number(props, schema.PropMonth); ok {
		if m < 1 || m > 12 || m != float64(int(m)) {
			return 0, false
		}
		return int(m), true
	}
	s, ok := Text(props, schema.PropMonth)
	if !ok {
		return 0, false
	}
	s = strings.TrimSpace(s)
	for _, layout := range []string{"January", "Jan"} {
		if t, err := time.Parse(layout, s); err == nil {
			return int(t.Month()), true
		}
	}
	return 0, false
}

// FeatureLabel derives the axis label of one feature.
// Time-series blocks use the raw date verbatim, annual resolution uses the
// year and everything else uses month and year.
func FeatureLabel(props schema.Properties, resolution string, blockIndex int) (string, bool) {
	if blockIndex == schema.TimeSeriesBlockIndex {
		return Text(props, schema.PropDate)
	}
	if resolution == schema.AnnualResolution {
		return Text(props, schema.PropYear)
	}
	month, ok := parseMonth(props)
	if !ok {
		return "", false
	}
	year, ok := Number(props, schema.PropYear)
	if !ok {
		return "", false
	}
	return FormatMonthYear(month, int(year))
}

// BuildLabelAxis returns the ordered, deduplicated labels of a block.
// The first occurrence of a label fixes its position.
func BuildLabelAxis(block *schema.ResultBlock, resolution string, blockIndex int) []string {
	if block == nil {
		return nil
	}
	seen := make(map[string]struct{}, len(block.Features))
	var axis []string
	for _, f := range block.Features {
		label, ok := FeatureLabel(f.Properties, resolution, blockIndex)
		if !ok {
			continue
		}
		if _, dup := seen[label]; dup {
			continue
		}
		seen[label] = struct{}{}
		axis = append(axis, label)
	}
	return axis
}

// axisSource is the envelope that fixes a chart's label axis.
type axisSource struct {
	labels     []string
	resolution string
}

// selectAxis builds the axis from the first envelope whose block at
// blockIndex has features. Later envelopes never extend it.
func selectAxis(envs []schema.Envelope, blockIndex int) (axisSource, bool) {
	for i := range envs {
		block := envs[i].Block(blockIndex)
		if !block.HasFeatures() {
			continue
		}
		res := envs[i].Meta.TemporalResolution
		return axisSource{labels: BuildLabelAxis(block, res, blockIndex), resolution: res}, true
	}
	return axisSource{}, false
}

// labelIndex finds a label on the axis, -1 when absent.
func labelIndex(axis []string, label string) int {
	return slices.Index(axis, label)
}
