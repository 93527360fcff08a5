package service

import (
	"github.com/alexivanou/carryon-checker/internal/catalog"
	"github.com/alexivanou/carryon-checker/internal/compat"
	"github.com/alexivanou/carryon-checker/internal/model"
)

// EvaluateAll checks the suitcase against every baggage rule of the dataset,
// in table order. Rules whose airline is unknown are left out of both buckets.
// A country that cannot be resolved is displayed by its raw identifier.
func EvaluateAll(s model.Suitcase, ds *catalog.Dataset) model.Results {
	results := model.Results{
		Compatible:   []model.EvaluationResult{},
		Incompatible: []model.EvaluationResult{},
	}

	for _, rule := range ds.Rules() {
		airline, ok := ds.Airline(rule.ICAO)
		if !ok {
			continue
		}

		result := model.EvaluationResult{
			ICAO:          rule.ICAO,
			IATA:          airline.IATA,
			NameJa:        airline.NameJa,
			NameEn:        airline.NameEn,
			Country:       airline.Country,
			CountryJa:     airline.Country,
			RouteType:     rule.RouteType,
			SeatCondition: rule.SeatCondition,
			Restrictions:  rule.Restrictions(),
			Compatible:    compat.IsCompatible(s, rule),
		}
		if country, ok := ds.Country(airline.Country); ok {
			result.CountryJa = country.NameJa
			result.Area = country.Area
			result.RegionJa = country.RegionJa
		}

		if result.Compatible {
			results.Compatible = append(results.Compatible, result)
		} else {
			results.Incompatible = append(results.Incompatible, result)
		}
	}

	return results
}
