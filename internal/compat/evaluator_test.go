package compat

import (
	"testing"

	"github.com/alexivanou/carryon-checker/internal/model"
	"github.com/stretchr/testify/assert"
)

func newRule(w, h, d, length, weight string) model.BaggageRule {
	return model.BaggageRule{
		ICAO:      "TST",
		Width:     ParseLimit(w),
		Height:    ParseLimit(h),
		Depth:     ParseLimit(d),
		Length:    ParseOptionalLimit(length),
		Weight:    ParseOptionalLimit(weight),
		RawWidth:  w,
		RawHeight: h,
		RawDepth:  d,
		RawLength: length,
		RawWeight: weight,
	}
}

func weight(v float64) *float64 {
	return &v
}

func TestIsCompatible(t *testing.T) {
	tests := []struct {
		name     string
		suitcase model.Suitcase
		rule     model.BaggageRule
		expected bool
	}{
		{
			name:     "Fits every limit",
			suitcase: model.Suitcase{Width: 50, Height: 35, Depth: 20, Weight: weight(5)},
			rule:     newRule("55", "40", "25", "115", "10"),
			expected: true,
		},
		{
			name:     "Exact dimensions but total length exceeds",
			suitcase: model.Suitcase{Width: 55, Height: 40, Depth: 25, Weight: weight(10)},
			rule:     newRule("55", "40", "25", "115", "10"),
			expected: false,
		},
		{
			name:     "No length limit and unknown weight",
			suitcase: model.Suitcase{Width: 50, Height: 35, Depth: 20},
			rule:     newRule("55", "40", "25", "N/A", "10"),
			expected: true,
		},
		{
			name:     "Invalid width",
			suitcase: model.Suitcase{Width: 1, Height: 1, Depth: 1},
			rule:     newRule("invalid", "40", "25", "N/A", "N/A"),
			expected: false,
		},
		{
			name:     "Empty depth",
			suitcase: model.Suitcase{Width: 1, Height: 1, Depth: 1},
			rule:     newRule("55", "40", "", "N/A", "N/A"),
			expected: false,
		},
		{
			name:     "Ties pass",
			suitcase: model.Suitcase{Width: 55, Height: 40, Depth: 20, Weight: weight(10)},
			rule:     newRule("55", "40", "25", "115", "10"),
			expected: true,
		},
		{
			name:     "Width exceeds",
			suitcase: model.Suitcase{Width: 56, Height: 30, Depth: 20},
			rule:     newRule("55", "40", "25", "N/A", "N/A"),
			expected: false,
		},
		{
			name:     "Too heavy",
			suitcase: model.Suitcase{Width: 40, Height: 30, Depth: 20, Weight: weight(7.5)},
			rule:     newRule("55", "40", "25", "N/A", "7"),
			expected: false,
		},
		{
			name:     "No weight limit",
			suitcase: model.Suitcase{Width: 40, Height: 30, Depth: 20, Weight: weight(30)},
			rule:     newRule("55", "40", "25", "115", "N/A"),
			expected: true,
		},
		{
			name:     "All zero limits",
			suitcase: model.Suitcase{Width: 1, Height: 1, Depth: 1},
			rule:     newRule("0", "0", "0", "N/A", "N/A"),
			expected: false,
		},
		{
			name:     "Negative limit compares normally",
			suitcase: model.Suitcase{Width: 10, Height: 10, Depth: 10},
			rule:     newRule("-55", "40", "25", "N/A", "N/A"),
			expected: false,
		},
		{
			name:     "Infinite limits",
			suitcase: model.Suitcase{Width: 500, Height: 500, Depth: 500, Weight: weight(99)},
			rule:     newRule("Infinity", "Infinity", "Infinity", "Infinity", "Infinity"),
			expected: true,
		},
		{
			name:     "Comma decimal is truncated",
			suitcase: model.Suitcase{Width: 40.5, Height: 30, Depth: 20},
			rule:     newRule("40,5", "40", "25", "N/A", "N/A"),
			expected: false,
		},
		{
			name:     "Unparseable length limit is never met",
			suitcase: model.Suitcase{Width: 10, Height: 10, Depth: 10},
			rule:     newRule("55", "40", "25", "unknown", "N/A"),
			expected: false,
		},
		{
			name:     "Unparseable weight limit with unknown weight",
			suitcase: model.Suitcase{Width: 10, Height: 10, Depth: 10},
			rule:     newRule("55", "40", "25", "N/A", "?"),
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsCompatible(tt.suitcase, tt.rule))
		})
	}
}

func TestIsCompatible_UnparseableDimensions(t *testing.T) {
	bad := []string{"", "invalid", "fifty-five", "N/A", "-", "."}
	suitcases := []model.Suitcase{
		{Width: 0, Height: 0, Depth: 0},
		{Width: 1, Height: 1, Depth: 1},
		{Width: 30, Height: 20, Depth: 10, Weight: weight(1)},
	}

	for _, cell := range bad {
		rules := []model.BaggageRule{
			newRule(cell, "Infinity", "Infinity", "N/A", "N/A"),
			newRule("Infinity", cell, "Infinity", "N/A", "N/A"),
			newRule("Infinity", "Infinity", cell, "N/A", "N/A"),
		}
		for _, rule := range rules {
			for _, s := range suitcases {
				assert.False(t, IsCompatible(s, rule), "cell %q must never be satisfied", cell)
			}
		}
	}
}

func TestIsCompatible_Monotonic(t *testing.T) {
	rules := []model.BaggageRule{
		newRule("55", "40", "25", "115", "10"),
		newRule("55", "40", "25", "N/A", "7"),
		newRule("56", "36", "23", "N/A", "N/A"),
		newRule("45", "35", "20", "100", "N/A"),
	}
	sizes := []float64{10, 20, 23, 25, 35, 36, 40, 45, 55, 56, 60}
	weights := []*float64{nil, weight(3), weight(7), weight(10), weight(12)}

	for _, rule := range rules {
		for _, w := range sizes {
			for _, h := range sizes {
				for _, d := range sizes {
					for _, wt := range weights {
						small := model.Suitcase{Width: w, Height: h, Depth: d, Weight: wt}
						if IsCompatible(small, rule) {
							continue
						}
						// Growing any measurement of an incompatible suitcase keeps it incompatible.
						grown := []model.Suitcase{
							{Width: w + 1, Height: h, Depth: d, Weight: wt},
							{Width: w, Height: h + 1, Depth: d, Weight: wt},
							{Width: w, Height: h, Depth: d + 1, Weight: wt},
						}
						if wt != nil {
							grown = append(grown, model.Suitcase{Width: w, Height: h, Depth: d, Weight: weight(*wt + 1)})
						}
						for _, g := range grown {
							assert.False(t, IsCompatible(g, rule))
						}
					}
				}
			}
		}
	}
}

func TestPredicates(t *testing.T) {
	rule := newRule("55", "40", "25", "115", "10")
	s := model.Suitcase{Width: 56, Height: 40, Depth: 25, Weight: weight(11)}

	assert.False(t, DimensionsFit(s, rule))
	assert.False(t, LengthFits(s, rule))
	assert.False(t, WeightFits(s, rule))

	s = model.Suitcase{Width: 30, Height: 30, Depth: 25}
	assert.True(t, DimensionsFit(s, rule))
	assert.True(t, LengthFits(s, rule))
	assert.True(t, WeightFits(s, rule))
}
