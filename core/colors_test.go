package core

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaletteIsDistinct(t *testing.T) {
	seen := make(map[string]struct{}, len(Palette))
	for _, c := range Palette {
		seen[c] = struct{}{}
	}
	assert.Len(t, seen, 10)
}

func TestColorAssigner(t *testing.T) {
	c := NewColorAssigner()
	var got []string
	for range 11 {
		got = append(got, c.Next())
	}

	assert.Equal(t, "#4F46E5", got[0])
	assert.Equal(t, "#6366F1", got[9])
	assert.Equal(t, got[0], got[10], "the eleventh color wraps to the first")
	assert.Equal(t, 11, c.Assigned())
}

func TestColorAt(t *testing.T) {
	assert.Equal(t, Palette[0], ColorAt(0))
	assert.Equal(t, Palette[2], ColorAt(12))
	assert.Equal(t, Palette[7], ColorAt(-3))
	assert.Equal(t, Palette[9], ColorAt(-1))
	assert.NotPanics(t, func() { ColorAt(math.MinInt) })
	assert.NotPanics(t, func() { ColorAt(math.MaxInt) })
}
