package core

// Palette is the fixed, ordered chart palette.
var Palette = [...]string{
	"#4F46E5", // indigo
	"#10B981", // emerald
	"#F59E0B", // amber
	"#EF4444", // red
	"#8B5CF6", // violet
	"#06B6D4", // cyan
	"#EC4899", // pink
	"#84CC16", // lime
	"#F97316", // orange
	"#6366F1", // indigo light
}

// ColorAt returns the palette entry for a series counter. Negative
// counters wrap around from the end of the palette.
func ColorAt(counter int) string {
	n := len(Palette)
	return Palette[(counter%n+n)%n]
}

// ColorAssigner hands out palette colors in order, one per new series.
// It is not safe for concurrent use; each chart owns its own assigner.
type ColorAssigner struct {
	counter int
}

// NewColorAssigner creates an assigner starting at the first palette color.
func NewColorAssigner() *ColorAssigner {
	return &ColorAssigner{}
}

// Next returns the color for the next new series and advances the counter.
func (c *ColorAssigner) Next() string {
	color := ColorAt(c.counter)
	c.counter++
	return color
}

// Assigned returns how many colors have been handed out.
func (c *ColorAssigner) Assigned() int {
	return c.counter
}
