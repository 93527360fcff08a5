package service

import (
	"context"

	"github.com/alexivanou/carryon-checker/internal/model"
)

// ServiceInterface defines the service interface for testing
type ServiceInterface interface {
	Check(ctx context.Context, req model.CheckRequest) (*model.CheckResponse, error)
	RankCatalog(ctx context.Context) ([]model.CatalogRanking, error)
}
