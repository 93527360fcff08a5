package service

import (
	"testing"

	"github.com/alexivanou/carryon-checker/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateReport(t *testing.T) {
	ds := testDataset()

	t.Run("Empty buckets", func(t *testing.T) {
		report := GenerateReport(model.Suitcase{Width: 1, Height: 2, Depth: 3}, model.Results{}, "ja")

		assert.Equal(t, 0.0, report.CompatibilityRate)
		assert.Equal(t, 0, report.TotalAirlines)
		assert.Empty(t, report.RegionBreakdown)
		assert.Equal(t, model.RestrictionAnalysis{}, report.RestrictionAnalysis)
		assert.Equal(t, 6.0, report.Volume)
	})

	t.Run("Rate and region breakdown", func(t *testing.T) {
		s := model.Suitcase{Width: 50, Height: 35, Depth: 20, Weight: kg(5)}
		report := GenerateReport(s, EvaluateAll(s, ds), "ja")

		assert.Equal(t, 5, report.TotalAirlines)
		assert.InDelta(t, 60.0, report.CompatibilityRate, 1e-9)
		assert.Equal(t, 35000.0, report.Volume)

		require.Len(t, report.RegionBreakdown, 2)
		assert.Equal(t, []string{"ANA", "JAL"}, icaos(report.RegionBreakdown["東アジア"]))
		assert.Equal(t, []string{"XXX"}, icaos(report.RegionBreakdown["その他"]))
	})

	t.Run("English region labels", func(t *testing.T) {
		s := model.Suitcase{Width: 50, Height: 35, Depth: 20}
		report := GenerateReport(s, EvaluateAll(s, ds), "en")

		assert.Contains(t, report.RegionBreakdown, "East Asia")
		assert.Contains(t, report.RegionBreakdown, "Other")
		assert.NotContains(t, report.RegionBreakdown, "東アジア")
	})

	t.Run("Restriction analysis", func(t *testing.T) {
		s := model.Suitcase{Width: 57, Height: 36, Depth: 21, Weight: kg(12)}
		results := EvaluateAll(s, ds)
		report := GenerateReport(s, results, "ja")

		// Every rule except the 60x45x30 one fails
		assert.Equal(t, []string{"XXX"}, icaos(results.Compatible))
		assert.Equal(t, 4, len(results.Incompatible))

		// ANA 100+, JAL and ANA <100 declare 10 kg
		assert.Equal(t, 3, report.RestrictionAnalysis.WeightIssues)
		// All four incompatible rules have a width below 57
		assert.Equal(t, 4, report.RestrictionAnalysis.DimensionIssues)
		// Total 114 exceeds only the 100 cm limit
		assert.Equal(t, 1, report.RestrictionAnalysis.LengthIssues)
	})

	t.Run("Undeclared weight is never a weight issue", func(t *testing.T) {
		s := model.Suitcase{Width: 57, Height: 36, Depth: 21}
		report := GenerateReport(s, EvaluateAll(s, ds), "ja")
		assert.Equal(t, 0, report.RestrictionAnalysis.WeightIssues)
	})

	t.Run("Rate stays in range", func(t *testing.T) {
		for _, s := range []model.Suitcase{
			{Width: 1, Height: 1, Depth: 1},
			{Width: 55, Height: 40, Depth: 25, Weight: kg(10)},
			{Width: 300, Height: 300, Depth: 300},
		} {
			report := GenerateReport(s, EvaluateAll(s, ds), "ja")
			assert.GreaterOrEqual(t, report.CompatibilityRate, 0.0)
			assert.LessOrEqual(t, report.CompatibilityRate, 100.0)
		}
	})
}
