package service

import (
	"errors"

	"github.com/alexivanou/carryon-checker/internal/catalog"
	"github.com/alexivanou/carryon-checker/internal/config"
	"go.uber.org/zap"
)

var (
	// ErrNotLoaded is returned when no reference data has been installed yet
	ErrNotLoaded = errors.New("reference data not loaded")
	// ErrInvalidSuitcase wraps every suitcase validation failure
	ErrInvalidSuitcase = errors.New("invalid suitcase")
)

const (
	defaultLang      = "ja"
	defaultTolerance = 2.0
)

// Service provides the compatibility checks over the current dataset
type Service struct {
	store     *catalog.Store
	lang      string
	tolerance float64
	logger    *zap.Logger
}

// NewService creates a new service instance
func NewService(store *catalog.Store, cfg config.ReportConfig, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	lang := cfg.Lang
	if lang == "" {
		lang = defaultLang
	}
	tolerance := cfg.SimilarTolerance
	if tolerance <= 0 {
		tolerance = defaultTolerance
	}

	return &Service{
		store:     store,
		lang:      lang,
		tolerance: tolerance,
		logger:    logger,
	}
}

func (s *Service) dataset() (*catalog.Dataset, error) {
	ds := s.store.Current()
	if ds == nil {
		return nil, ErrNotLoaded
	}
	return ds, nil
}
