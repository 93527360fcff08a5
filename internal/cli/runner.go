package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/alexivanou/carryon-checker/internal/service"
	"go.uber.org/zap"
)

// Runner executes check commands against a service and writes the results
type Runner struct {
	service service.ServiceInterface
	out     io.Writer
	logger  *zap.Logger
}

// NewRunner creates a new runner instance
func NewRunner(service service.ServiceInterface, out io.Writer, logger *zap.Logger) *Runner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Runner{service: service, out: out, logger: logger}
}

// Run performs the command described by opts
func (r *Runner) Run(ctx context.Context, opts *Options) error {
	if opts.Catalog {
		return r.rankCatalog(ctx, opts)
	}
	return r.check(ctx, opts)
}

func (r *Runner) check(ctx context.Context, opts *Options) error {
	response, err := r.service.Check(ctx, opts.Request)
	if err != nil {
		r.logger.Debug("Check failed", zap.Error(err))
		return err
	}

	if opts.Format == FormatJSON {
		return r.writeJSON(response)
	}
	return writeCheckText(r.out, response, opts.Request.Lang)
}

func (r *Runner) rankCatalog(ctx context.Context, opts *Options) error {
	rankings, err := r.service.RankCatalog(ctx)
	if err != nil {
		r.logger.Debug("Catalogue ranking failed", zap.Error(err))
		return err
	}

	if opts.Format == FormatJSON {
		return r.writeJSON(rankings)
	}
	return writeCatalogText(r.out, rankings, opts.Request.Lang)
}

func (r *Runner) writeJSON(v interface{}) error {
	encoder := json.NewEncoder(r.out)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(v); err != nil {
		return fmt.Errorf("failed to encode response: %w", err)
	}
	return nil
}
