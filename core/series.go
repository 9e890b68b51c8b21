package core

import (
	"fmt"

	"github.com/landsense/chartkit/schema"
	"go.uber.org/zap"
)

// SeriesKey formats the legend key of an entity within a result block.
func SeriesKey(name string, blockIndex int) string {
	return fmt.Sprintf("%s (Result %d)", name, blockIndex+1)
}

// GroupByName splits features by their Name property, keeping names in
// order of first appearance. Features without a name group as "Unknown".
func GroupByName(features []schema.Feature) ([]string, map[string][]schema.Feature) {
	var names []string
	groups := make(map[string][]schema.Feature)
	for _, f := range features {
		name := FeatureName(f.Properties)
		if _, ok := groups[name]; !ok {
			names = append(names, name)
		}
		groups[name] = append(groups[name], f)
	}
	return names, groups
}

// BuildSeriesData places each feature's variable value at its label's
// position on the axis. Positions without a feature stay nil. Features
// whose label is not on the axis are dropped, and so are non-numeric values.
// A later feature with the same label overwrites an earlier one.
func BuildSeriesData(features []schema.Feature, axis []string, variable, resolution string, blockIndex int) []*float64 {
	data := make([]*float64, len(axis))
	for _, f := range features {
		label, ok := FeatureLabel(f.Properties, resolution, blockIndex)
		if !ok {
			continue
		}
		idx := labelIndex(axis, label)
		if idx < 0 {
			continue
		}
		data[idx] = NumberPtr(f.Properties, variable)
	}
	return data
}

// SeriesSet collects the data series of one chart in creation order.
// The first series to claim a key wins; later ones are ignored and do
// not consume a color.
type SeriesSet struct {
	axis   []string
	colors *ColorAssigner
	order  []string
	byKey  map[string]schema.Series
	logger *zap.Logger
}

// NewSeriesSet creates an empty set bound to a label axis.
func NewSeriesSet(axis []string, logger *zap.Logger) *SeriesSet {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SeriesSet{
		axis:   axis,
		colors: NewColorAssigner(),
		byKey:  make(map[string]schema.Series),
		logger: logger,
	}
}

// Add registers a series under key. It reports false when the key is taken.
func (s *SeriesSet) Add(key string, data []*float64) bool {
	if _, exists := s.byKey[key]; exists {
		s.logger.Debug("skipping duplicate series", zap.String("key", key))
		return false
	}
	s.byKey[key] = schema.Series{
		Label:       key,
		Data:        data,
		Color:       s.colors.Next(),
		Kind:        schema.DataSeries,
		PointRadius: schema.DataPointRadius,
	}
	s.order = append(s.order, key)
	return true
}

// AddFeatures groups one block's features by name and adds a series per name.
func (s *SeriesSet) AddFeatures(block *schema.ResultBlock, variable, resolution string, blockIndex int) {
	if !block.HasFeatures() {
		return
	}
	names, groups := GroupByName(block.Features)
	for _, name := range names {
		key := SeriesKey(name, blockIndex)
		if _, exists := s.byKey[key]; exists {
			s.logger.Debug("skipping duplicate series", zap.String("key", key))
			continue
		}
		group := groups[name]
		s.logDropped(group, resolution, blockIndex)
		s.Add(key, BuildSeriesData(group, s.axis, variable, resolution, blockIndex))
	}
}

// Series returns the collected series in creation order.
func (s *SeriesSet) Series() []schema.Series {
	out := make([]schema.Series, 0, len(s.order))
	for _, key := range s.order {
		out = append(out, s.byKey[key])
	}
	return out
}

// Len returns the number of series collected.
func (s *SeriesSet) Len() int {
	return len(s.order)
}

func (s *SeriesSet) logDropped(features []schema.Feature, resolution string, blockIndex int) {
	if !s.logger.Core().Enabled(zap.DebugLevel) {
		return
	}
	for _, f := range features {
		label, ok := FeatureLabel(f.Properties, resolution, blockIndex)
		if ok && labelIndex(s.axis, label) < 0 {
			s.logger.Debug("label not on axis",
				zap.String("label", label),
				zap.String("name", FeatureName(f.Properties)))
		}
	}
}
