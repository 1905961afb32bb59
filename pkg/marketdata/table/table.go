// Package table keeps the quotes fetched during one terminal session in an
// in-memory DuckDB database.
package table

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	_ "github.com/marcboeker/go-duckdb"
	"github.com/moznion/go-optional"
	"github.com/rxtech-lab/argo-terminal/internal/types"
	"github.com/rxtech-lab/argo-terminal/pkg/errors"
)

const tableName = "quotes"

var quoteColumns = []string{"time", "open", "high", "low", "close", "volume"}

// QuoteTable is the session cache of normalized quotes keyed by (symbol, time).
// Nothing is persisted: the database lives in memory and is gone after Close.
type QuoteTable struct {
	db *sql.DB
	sq squirrel.StatementBuilderType
}

// New opens the in-memory database and creates the quotes table.
func New() (*QuoteTable, error) {
	db, err := sql.Open("duckdb", ":memory:")
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeQuoteTableFailed, "failed to open DuckDB connection", err)
	}

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS quotes (
			id TEXT,
			batch TEXT,
			symbol TEXT,
			time TIMESTAMP,
			open DOUBLE,
			high DOUBLE,
			low DOUBLE,
			close DOUBLE,
			volume DOUBLE,
			PRIMARY KEY (symbol, time)
		)
	`)
	if err != nil {
		db.Close()

		return nil, errors.Wrap(errors.ErrCodeQuoteTableFailed, "failed to create quotes table", err)
	}

	return &QuoteTable{
		db: db,
		sq: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}, nil
}

// Replace makes quotes the only rows of symbol. Quotes sharing a date
// collapse into the last one given. The new rows are upserted under a fresh
// batch id and the rows of earlier batches are deleted afterwards, all in one
// transaction: a failure leaves the previous rows of symbol untouched. Keys
// are never deleted and re-inserted within the transaction because DuckDB
// checks unique keys eagerly.
func (t *QuoteTable) Replace(ctx context.Context, symbol string, quotes []types.Quote) (err error) {
	batch := uuid.New().String()

	insertQuery, _, err := t.sq.
		Insert(tableName).
		Options("OR REPLACE").
		Columns(append([]string{"id", "batch", "symbol"}, quoteColumns...)...).
		Values(nil, nil, nil, nil, nil, nil, nil, nil, nil).
		ToSql()
	if err != nil {
		return errors.Wrap(errors.ErrCodeQuoteTableFailed, "failed to build insert", err)
	}

	deleteQuery, deleteArgs, err := t.sq.
		Delete(tableName).
		Where(squirrel.And{
			squirrel.Eq{"symbol": symbol},
			squirrel.NotEq{"batch": batch},
		}).
		ToSql()
	if err != nil {
		return errors.Wrap(errors.ErrCodeQuoteTableFailed, "failed to build delete", err)
	}

	tx, err := t.db.BeginTx(ctx, nil)
	if err != nil {
		return errors.Wrap(errors.ErrCodeQuoteTableFailed, "failed to begin transaction", err)
	}

	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	stmt, err := tx.PrepareContext(ctx, insertQuery)
	if err != nil {
		return errors.Wrap(errors.ErrCodeQuoteTableFailed, "failed to prepare statement", err)
	}
	defer stmt.Close()

	for _, q := range dedupe(quotes) {
		volume := sql.NullFloat64{}
		if q.Volume.IsSome() {
			volume = sql.NullFloat64{Float64: q.Volume.Unwrap(), Valid: true}
		}

		_, err = stmt.ExecContext(ctx,
			uuid.New().String(),
			batch,
			symbol,
			q.Date,
			q.Open,
			q.High,
			q.Low,
			q.Close,
			volume,
		)
		if err != nil {
			return errors.Wrapf(errors.ErrCodeQuoteTableFailed, err, "failed to insert quote %s %s", symbol, q.Date.Format(time.DateOnly))
		}
	}

	if _, err = tx.ExecContext(ctx, deleteQuery, deleteArgs...); err != nil {
		return errors.Wrapf(errors.ErrCodeQuoteTableFailed, err, "failed to drop stale quotes of %s", symbol)
	}

	if err = tx.Commit(); err != nil {
		return errors.Wrap(errors.ErrCodeQuoteTableFailed, "failed to commit transaction", err)
	}

	return nil
}

func dedupe(quotes []types.Quote) []types.Quote {
	index := make(map[time.Time]int, len(quotes))
	out := make([]types.Quote, 0, len(quotes))

	for _, q := range quotes {
		key := q.Date.UTC()
		if i, ok := index[key]; ok {
			out[i] = q

			continue
		}

		index[key] = len(out)
		out = append(out, q)
	}

	return out
}

// Window returns the quotes of symbol dated within [start, end], ascending.
func (t *QuoteTable) Window(ctx context.Context, symbol string, start, end time.Time) ([]types.Quote, error) {
	query, args, err := t.sq.
		Select(quoteColumns...).
		From(tableName).
		Where(squirrel.And{
			squirrel.Eq{"symbol": symbol},
			squirrel.Expr("time BETWEEN ? AND ?", start, end),
		}).
		OrderBy("time").
		ToSql()
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeQuoteTableFailed, "failed to build query", err)
	}

	rows, err := t.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrCodeQuoteTableFailed, err, "failed to query quotes of %s", symbol)
	}
	defer rows.Close()

	quotes := []types.Quote{}

	for rows.Next() {
		var (
			q      types.Quote
			volume sql.NullFloat64
		)

		if err := rows.Scan(&q.Date, &q.Open, &q.High, &q.Low, &q.Close, &volume); err != nil {
			return nil, errors.Wrap(errors.ErrCodeQuoteTableFailed, "failed to scan row", err)
		}

		if volume.Valid {
			q.Volume = optional.Some(volume.Float64)
		} else {
			q.Volume = optional.None[float64]()
		}

		quotes = append(quotes, q)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeQuoteTableFailed, "failed to iterate rows", err)
	}

	return quotes, nil
}

// Count returns the number of rows held for symbol.
func (t *QuoteTable) Count(ctx context.Context, symbol string) (int, error) {
	query, args, err := t.sq.Select("COUNT(*)").From(tableName).Where(squirrel.Eq{"symbol": symbol}).ToSql()
	if err != nil {
		return 0, errors.Wrap(errors.ErrCodeQuoteTableFailed, "failed to build count", err)
	}

	var count int
	if err := t.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, errors.Wrap(errors.ErrCodeQuoteTableFailed, fmt.Sprintf("failed to count quotes of %s", symbol), err)
	}

	return count, nil
}

// Close releases the database.
func (t *QuoteTable) Close() error {
	if t.db != nil {
		return t.db.Close()
	}

	return nil
}
