package repository

import (
	"context"

	"github.com/jmoiron/sqlx"
)

// SQLite caps the number of bound variables per statement; the widest
// table binds 8 columns per row.
const sqliteMaxChunk = 100

func sqliteChunkSize(batchSize int) int {
	if batchSize <= 0 || batchSize > sqliteMaxChunk {
		return sqliteMaxChunk
	}
	return batchSize
}

type sqliteTableRepository struct {
	w writer
}

func (r *sqliteTableRepository) Clear(ctx context.Context) error {
	return r.w.inTx(ctx, func(ext sqlx.ExtContext) error {
		for _, table := range Tables {
			if _, err := ext.ExecContext(ctx, "DELETE FROM "+table); err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *sqliteTableRepository) CountRows(ctx context.Context) (map[string]int64, error) {
	return countRows(ctx, r.w.ext)
}
