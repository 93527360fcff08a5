package seeder

import (
	"math"

	"github.com/alexivanou/carryon-checker/internal/compat"
	"github.com/alexivanou/carryon-checker/internal/model"
	"github.com/alexivanou/carryon-checker/internal/tsv"
)

// DecodeAirlines converts airline table records
func DecodeAirlines(records []tsv.Record) []model.Airline {
	airlines := make([]model.Airline, 0, len(records))
	for _, r := range records {
		airlines = append(airlines, model.Airline{
			ICAO:    r.Get(ColICAO),
			IATA:    r.Get(ColIATA),
			NameJa:  r.Get(ColAirlineJa),
			NameEn:  r.Get(ColAirlineEn),
			Country: r.Get(ColCountry),
		})
	}
	return airlines
}

// DecodeBaggageRules converts baggage table records, parsing the limits once
func DecodeBaggageRules(records []tsv.Record) []model.BaggageRule {
	rules := make([]model.BaggageRule, 0, len(records))
	for _, r := range records {
		rules = append(rules, NewBaggageRule(
			r.Get(ColICAO),
			r.Get(ColRouteType),
			r.Get(ColSeatCond),
			r.Get(ColWidth),
			r.Get(ColHeight),
			r.Get(ColDepth),
			r.Get(ColLength),
			r.Get(ColWeight),
		))
	}
	return rules
}

// NewBaggageRule builds a rule from raw table cells
func NewBaggageRule(icao, routeType, seatCond, width, height, depth, length, weight string) model.BaggageRule {
	return model.BaggageRule{
		ICAO:             icao,
		RouteType:        model.ParseRouteType(routeType),
		SeatCondition:    model.ParseSeatCondition(seatCond),
		Width:            compat.ParseLimit(width),
		Height:           compat.ParseLimit(height),
		Depth:            compat.ParseLimit(depth),
		Length:           compat.ParseOptionalLimit(length),
		Weight:           compat.ParseOptionalLimit(weight),
		RawRouteType:     routeType,
		RawSeatCondition: seatCond,
		RawWidth:         width,
		RawHeight:        height,
		RawDepth:         depth,
		RawLength:        length,
		RawWeight:        weight,
	}
}

// DecodeCountries converts country table records
func DecodeCountries(records []tsv.Record) []model.Country {
	countries := make([]model.Country, 0, len(records))
	for _, r := range records {
		countries = append(countries, model.Country{
			ID:       r.Get(ColCountry),
			NameJa:   r.Get(ColCountryJa),
			Area:     r.Get(ColArea),
			RegionJa: r.Get(ColRegionJa),
		})
	}
	return countries
}

// DecodeSuitcases converts suitcase catalogue records.
// Products without three finite dimensions are skipped.
func DecodeSuitcases(records []tsv.Record) []model.CatalogSuitcase {
	suitcases := make([]model.CatalogSuitcase, 0, len(records))
	for _, r := range records {
		w := compat.ParseLimit(r.Get(ColWidth))
		h := compat.ParseLimit(r.Get(ColHeight))
		d := compat.ParseLimit(r.Get(ColDepth))
		if !finite(w) || !finite(h) || !finite(d) {
			continue
		}

		var weight *float64
		if wt := compat.ParseLimit(r.Get(ColWeight)); finite(wt) {
			v := float64(wt)
			weight = &v
		}

		suitcases = append(suitcases, model.CatalogSuitcase{
			NameEn: r.Get(ColSuitcaseEn),
			NameJa: r.Get(ColSuitcaseJa),
			Width:  float64(w),
			Height: float64(h),
			Depth:  float64(d),
			Weight: weight,
		})
	}
	return suitcases
}

func finite(l model.Limit) bool {
	return !math.IsNaN(float64(l)) && !math.IsInf(float64(l), 0)
}
