package service

import "github.com/alexivanou/carryon-checker/internal/model"

var otherRegion = map[string]string{
	"ja": "その他",
	"en": "Other",
}

// GenerateReport summarises results for the suitcase. Compatible results are
// grouped by region; incompatible ones are counted by the limit they break.
func GenerateReport(s model.Suitcase, results model.Results, lang string) model.Report {
	total := len(results.Compatible) + len(results.Incompatible)

	var rate float64
	if total > 0 {
		rate = float64(len(results.Compatible)) / float64(total) * 100
	}

	return model.Report{
		CompatibilityRate:   rate,
		TotalAirlines:       total,
		RegionBreakdown:     groupByRegion(results.Compatible, lang),
		RestrictionAnalysis: analyseRestrictions(s, results.Incompatible),
		Volume:              s.Volume(),
	}
}

func groupByRegion(results []model.EvaluationResult, lang string) map[string][]model.EvaluationResult {
	regions := make(map[string][]model.EvaluationResult)
	for _, r := range results {
		key := regionName(r, lang)
		regions[key] = append(regions[key], r)
	}
	return regions
}

func regionName(r model.EvaluationResult, lang string) string {
	region := r.RegionJa
	if lang == "en" {
		region = r.Area
	}
	if region != "" {
		return region
	}
	if other, ok := otherRegion[lang]; ok {
		return other
	}
	return otherRegion[defaultLang]
}

func analyseRestrictions(s model.Suitcase, incompatible []model.EvaluationResult) model.RestrictionAnalysis {
	var analysis model.RestrictionAnalysis
	total := s.TotalLength()

	for _, r := range incompatible {
		limits := r.Restrictions

		if s.Weight != nil && limits.Weight != nil && *s.Weight > float64(*limits.Weight) {
			analysis.WeightIssues++
		}
		if s.Width > float64(limits.Width) ||
			s.Height > float64(limits.Height) ||
			s.Depth > float64(limits.Depth) {
			analysis.DimensionIssues++
		}
		if limits.Length != nil && total > float64(*limits.Length) {
			analysis.LengthIssues++
		}
	}

	return analysis
}
