package repository

import (
	"context"
	"strings"
)

// --- PostgreSQL Implementation ---

// Chunking to stay under the 65535 parameter limit
const (
	pgDefaultChunk = 1000
	pgMaxChunk     = 8000
)

func pgChunkSize(batchSize int) int {
	if batchSize <= 0 {
		return pgDefaultChunk
	}
	if batchSize > pgMaxChunk {
		return pgMaxChunk
	}
	return batchSize
}

type pgTableRepository struct {
	w writer
}

// Clear truncates every table; inside a transaction the truncate rolls back with it
func (r *pgTableRepository) Clear(ctx context.Context) error {
	_, err := r.w.ext.ExecContext(ctx, "TRUNCATE "+strings.Join(Tables, ", ")+" RESTART IDENTITY")
	return err
}

func (r *pgTableRepository) CountRows(ctx context.Context) (map[string]int64, error) {
	return countRows(ctx, r.w.ext)
}
