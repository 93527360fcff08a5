package service

import (
	"context"

	"github.com/alexivanou/carryon-checker/internal/model"
	"go.uber.org/zap"
)

// Check validates the suitcase and evaluates it against the current dataset
func (s *Service) Check(ctx context.Context, req model.CheckRequest) (*model.CheckResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	ds, err := s.dataset()
	if err != nil {
		return nil, err
	}

	if err := ValidateSuitcase(req.Suitcase); err != nil {
		return nil, err
	}

	lang := req.Lang
	if lang == "" {
		lang = s.lang
	}

	results := EvaluateAll(req.Suitcase, ds)
	resp := &model.CheckResponse{
		Suitcase:    req.Suitcase,
		TotalLength: req.Suitcase.TotalLength(),
		Results:     results,
		Report:      GenerateReport(req.Suitcase, results, lang),
	}

	if req.Similar {
		resp.Similar = FindSimilar(req.Suitcase, ds, s.tolerance)
	}

	s.logger.Debug("Suitcase checked",
		zap.Float64("total_length", resp.TotalLength),
		zap.Int("compatible", len(results.Compatible)),
		zap.Int("incompatible", len(results.Incompatible)),
	)

	return resp, nil
}

// RankCatalog ranks the catalogue products of the current dataset
func (s *Service) RankCatalog(ctx context.Context) ([]model.CatalogRanking, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	ds, err := s.dataset()
	if err != nil {
		return nil, err
	}

	return RankCatalog(ds), nil
}
