package outwriter

import (
	"os"

	"github.com/landsense/chartkit/internal/contract"
	"golang.org/x/term"
)

// Bounds for the width of label cells in table output.
const (
	minLabelWidth = 15
	maxLabelWidth = 70
	valueColWidth = 14 // per value column, with padding and separators
)

// GetMaxLabelWidth calculates the maximum width of axis labels and row
// names in table output, given how many value columns share the line.
func GetMaxLabelWidth(cfg *contract.Config, valueColumns int) int {
	termWidth := cfg.Width
	if termWidth == 0 {
		detectedWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil || detectedWidth <= 0 {
			// Conservative default for narrow terminals and CI
			termWidth = 80
		} else {
			termWidth = detectedWidth
		}
	}

	// Borders and padding of the label column itself
	baseWidth := 6 + valueColumns*valueColWidth

	available := termWidth - baseWidth
	if available < minLabelWidth {
		return minLabelWidth
	}
	if available > maxLabelWidth {
		return maxLabelWidth
	}
	return available
}
