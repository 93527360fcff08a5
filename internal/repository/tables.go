package repository

import (
	"context"
	"math"
	"strconv"

	"github.com/alexivanou/carryon-checker/internal/compat"
	"github.com/alexivanou/carryon-checker/internal/model"
	"github.com/alexivanou/carryon-checker/internal/seeder"
	"github.com/jmoiron/sqlx"
)

// writer runs statements against the database or an open transaction
type writer struct {
	ext       sqlx.ExtContext
	chunkSize int
}

// inTx runs fn in a new transaction unless the writer is already bound to one
func (w writer) inTx(ctx context.Context, fn func(ext sqlx.ExtContext) error) error {
	db, ok := w.ext.(*sqlx.DB)
	if !ok {
		return fn(w.ext)
	}

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := fn(tx); err != nil {
		return err
	}
	return tx.Commit()
}

func insertChunks[T any](ctx context.Context, w writer, query string, rows []T) error {
	if len(rows) == 0 {
		return nil
	}

	return w.inTx(ctx, func(ext sqlx.ExtContext) error {
		for i := 0; i < len(rows); i += w.chunkSize {
			end := i + w.chunkSize
			if end > len(rows) {
				end = len(rows)
			}
			if _, err := sqlx.NamedExecContext(ctx, ext, query, rows[i:end]); err != nil {
				return err
			}
		}
		return nil
	})
}

type airlineRepository struct {
	w writer
}

func (r *airlineRepository) ListAirlines(ctx context.Context) ([]model.Airline, error) {
	q := `SELECT icao, iata, name_ja, name_en, country FROM airlines ORDER BY seq`
	airlines := []model.Airline{}
	if err := sqlx.SelectContext(ctx, r.w.ext, &airlines, q); err != nil {
		return nil, err
	}
	return airlines, nil
}

func (r *airlineRepository) BulkInsertAirlines(ctx context.Context, airlines []model.Airline) error {
	return insertChunks(ctx, r.w, `
		INSERT INTO airlines (icao, iata, name_ja, name_en, country)
		VALUES (:icao, :iata, :name_ja, :name_en, :country)`,
		airlines)
}

// baggageRuleRow keeps the table cells as read so a loaded rule parses
// exactly as it would from the file
type baggageRuleRow struct {
	ICAO          string `db:"icao"`
	RouteType     string `db:"route_type"`
	SeatCondition string `db:"seat_condition"`
	Width         string `db:"width"`
	Height        string `db:"height"`
	Depth         string `db:"depth"`
	Length        string `db:"length"`
	Weight        string `db:"weight"`
}

func newBaggageRuleRow(r model.BaggageRule) baggageRuleRow {
	return baggageRuleRow{
		ICAO:          r.ICAO,
		RouteType:     r.RawRouteType,
		SeatCondition: r.RawSeatCondition,
		Width:         cell(r.RawWidth, &r.Width),
		Height:        cell(r.RawHeight, &r.Height),
		Depth:         cell(r.RawDepth, &r.Depth),
		Length:        cell(r.RawLength, r.Length),
		Weight:        cell(r.RawWeight, r.Weight),
	}
}

func (row baggageRuleRow) rule() model.BaggageRule {
	return seeder.NewBaggageRule(
		row.ICAO, row.RouteType, row.SeatCondition,
		row.Width, row.Height, row.Depth, row.Length, row.Weight,
	)
}

// cell returns the raw text of a limit, rebuilding it for rules that
// were not read from a table
func cell(raw string, limit *model.Limit) string {
	if raw != "" {
		return raw
	}
	if limit == nil {
		return compat.NotApplicable
	}
	f := float64(*limit)
	switch {
	case math.IsNaN(f):
		return ""
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

type baggageRuleRepository struct {
	w writer
}

func (r *baggageRuleRepository) ListBaggageRules(ctx context.Context) ([]model.BaggageRule, error) {
	q := `
		SELECT icao, route_type, seat_condition, width, height, depth, length, weight
		FROM baggage_rules
		ORDER BY seq
	`
	var rows []baggageRuleRow
	if err := sqlx.SelectContext(ctx, r.w.ext, &rows, q); err != nil {
		return nil, err
	}

	rules := make([]model.BaggageRule, 0, len(rows))
	for _, row := range rows {
		rules = append(rules, row.rule())
	}
	return rules, nil
}

func (r *baggageRuleRepository) BulkInsertBaggageRules(ctx context.Context, rules []model.BaggageRule) error {
	rows := make([]baggageRuleRow, 0, len(rules))
	for _, rule := range rules {
		rows = append(rows, newBaggageRuleRow(rule))
	}

	return insertChunks(ctx, r.w, `
		INSERT INTO baggage_rules (icao, route_type, seat_condition, width, height, depth, length, weight)
		VALUES (:icao, :route_type, :seat_condition, :width, :height, :depth, :length, :weight)`,
		rows)
}

type countryRepository struct {
	w writer
}

func (r *countryRepository) ListCountries(ctx context.Context) ([]model.Country, error) {
	q := `SELECT country, name_ja, area, region_ja FROM countries ORDER BY seq`
	countries := []model.Country{}
	if err := sqlx.SelectContext(ctx, r.w.ext, &countries, q); err != nil {
		return nil, err
	}
	return countries, nil
}

func (r *countryRepository) BulkInsertCountries(ctx context.Context, countries []model.Country) error {
	return insertChunks(ctx, r.w, `
		INSERT INTO countries (country, name_ja, area, region_ja)
		VALUES (:country, :name_ja, :area, :region_ja)`,
		countries)
}

type suitcaseRepository struct {
	w writer
}

func (r *suitcaseRepository) ListSuitcases(ctx context.Context) ([]model.CatalogSuitcase, error) {
	q := `SELECT name_en, name_ja, width, height, depth, weight FROM suitcases ORDER BY seq`
	suitcases := []model.CatalogSuitcase{}
	if err := sqlx.SelectContext(ctx, r.w.ext, &suitcases, q); err != nil {
		return nil, err
	}
	return suitcases, nil
}

func (r *suitcaseRepository) BulkInsertSuitcases(ctx context.Context, suitcases []model.CatalogSuitcase) error {
	return insertChunks(ctx, r.w, `
		INSERT INTO suitcases (name_en, name_ja, width, height, depth, weight)
		VALUES (:name_en, :name_ja, :width, :height, :depth, :weight)`,
		suitcases)
}
