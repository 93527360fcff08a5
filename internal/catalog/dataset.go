// Package catalog holds the immutable reference data used by a check.
package catalog

import (
	"time"

	"github.com/alexivanou/carryon-checker/internal/model"
)

// Dataset is a loaded, read-only set of reference tables with indexes
// by airline ICAO code and country identifier. When a key occurs more
// than once the first row wins.
type Dataset struct {
	airlines  []model.Airline
	rules     []model.BaggageRule
	countries []model.Country
	suitcases []model.CatalogSuitcase

	airlineByICAO map[string]int
	countryByID   map[string]int

	duplicateAirlines  int
	duplicateCountries int
	loadedAt           time.Time
}

// NewDataset builds a dataset. The slices are copied.
func NewDataset(
	airlines []model.Airline,
	rules []model.BaggageRule,
	countries []model.Country,
	suitcases []model.CatalogSuitcase,
) *Dataset {
	ds := &Dataset{
		airlines:      append([]model.Airline(nil), airlines...),
		rules:         append([]model.BaggageRule(nil), rules...),
		countries:     append([]model.Country(nil), countries...),
		suitcases:     append([]model.CatalogSuitcase(nil), suitcases...),
		airlineByICAO: make(map[string]int, len(airlines)),
		countryByID:   make(map[string]int, len(countries)),
		loadedAt:      time.Now(),
	}

	for i, a := range ds.airlines {
		if _, exists := ds.airlineByICAO[a.ICAO]; exists {
			ds.duplicateAirlines++
			continue
		}
		ds.airlineByICAO[a.ICAO] = i
	}

	for i, c := range ds.countries {
		if _, exists := ds.countryByID[c.ID]; exists {
			ds.duplicateCountries++
			continue
		}
		ds.countryByID[c.ID] = i
	}

	return ds
}

// Airline looks up an airline by exact ICAO code
func (d *Dataset) Airline(icao string) (model.Airline, bool) {
	i, ok := d.airlineByICAO[icao]
	if !ok {
		return model.Airline{}, false
	}
	return d.airlines[i], true
}

// Country looks up a country by exact identifier
func (d *Dataset) Country(id string) (model.Country, bool) {
	i, ok := d.countryByID[id]
	if !ok {
		return model.Country{}, false
	}
	return d.countries[i], true
}

// Rules returns the baggage rules in table order. Callers must not modify the slice.
func (d *Dataset) Rules() []model.BaggageRule { return d.rules }

// Airlines returns the airlines in table order. Callers must not modify the slice.
func (d *Dataset) Airlines() []model.Airline { return d.airlines }

// Countries returns the countries in table order. Callers must not modify the slice.
func (d *Dataset) Countries() []model.Country { return d.countries }

// Suitcases returns the product catalogue, possibly empty
func (d *Dataset) Suitcases() []model.CatalogSuitcase { return d.suitcases }

// DuplicateAirlines is the number of airline rows shadowed by an earlier row with the same ICAO code
func (d *Dataset) DuplicateAirlines() int { return d.duplicateAirlines }

// DuplicateCountries is the number of country rows shadowed by an earlier row with the same identifier
func (d *Dataset) DuplicateCountries() int { return d.duplicateCountries }

// LoadedAt is the time the dataset was built
func (d *Dataset) LoadedAt() time.Time { return d.loadedAt }
