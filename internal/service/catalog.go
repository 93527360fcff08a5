package service

import (
	"math"
	"sort"

	"github.com/alexivanou/carryon-checker/internal/catalog"
	"github.com/alexivanou/carryon-checker/internal/model"
)

// RankCatalog evaluates every catalogue product against the dataset,
// best compatibility rate first and then by English name.
func RankCatalog(ds *catalog.Dataset) []model.CatalogRanking {
	suitcases := ds.Suitcases()
	rankings := make([]model.CatalogRanking, 0, len(suitcases))

	for _, product := range suitcases {
		s := product.Suitcase()
		results := EvaluateAll(s, ds)
		report := GenerateReport(s, results, defaultLang)

		rankings = append(rankings, model.CatalogRanking{
			Suitcase:          product,
			Compatible:        len(results.Compatible),
			Total:             report.TotalAirlines,
			CompatibilityRate: report.CompatibilityRate,
		})
	}

	sort.SliceStable(rankings, func(i, j int) bool {
		if rankings[i].CompatibilityRate != rankings[j].CompatibilityRate {
			return rankings[i].CompatibilityRate > rankings[j].CompatibilityRate
		}
		return rankings[i].Suitcase.NameEn < rankings[j].Suitcase.NameEn
	})

	return rankings
}

// FindSimilar returns catalogue products whose three dimensions are each
// within tolerance centimetres of the suitcase
func FindSimilar(s model.Suitcase, ds *catalog.Dataset, tolerance float64) []model.CatalogSuitcase {
	var similar []model.CatalogSuitcase
	for _, product := range ds.Suitcases() {
		if math.Abs(product.Width-s.Width) <= tolerance &&
			math.Abs(product.Height-s.Height) <= tolerance &&
			math.Abs(product.Depth-s.Depth) <= tolerance {
			similar = append(similar, product)
		}
	}
	return similar
}
