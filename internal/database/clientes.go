package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/JonMunkholm/clientes/internal/core"
	"github.com/JonMunkholm/clientes/internal/logging"
	"github.com/JonMunkholm/clientes/internal/schema"
)

// ResetSchema drops the clientes table and creates it again from
// schema.Customers. Existing rows are lost.
func (q *Queries) ResetSchema(ctx context.Context) error {
	table := schema.Customers

	if _, err := q.db.Exec(ctx, table.DropSQL()); err != nil {
		return fmt.Errorf("drop table %s: %w", table.Name, err)
	}
	if _, err := q.db.Exec(ctx, table.CreateSQL()); err != nil {
		return fmt.Errorf("create table %s: %w", table.Name, err)
	}
	return nil
}

// Persist replaces the contents of the clientes table with rows using a
// single COPY and returns the number of rows written.
//
// The reset and the COPY are separate statements. If the COPY fails the
// table stays empty; wrap q in a transaction with WithTx to avoid that.
func (q *Queries) Persist(ctx context.Context, rows []core.Customer) (int64, error) {
	table := schema.Customers
	logger := logging.WithFields(ctx, "stage", core.StagePersist, "table", table.Name)

	fail := func(err error) (int64, error) {
		logger.Error("persist failed", "error", err, "code", core.MapError(err).Code)
		return 0, &core.StageError{Stage: core.StagePersist, Err: err}
	}

	for _, c := range rows {
		if c.Valid == core.FlagUnset {
			return fail(fmt.Errorf("line %d: row %q has no %s flag", c.Line, c.CPF, schema.ColValid))
		}
	}

	if err := q.ResetSchema(ctx); err != nil {
		return fail(err)
	}
	logger.Info("table reset", "version", table.Version)

	n, err := q.db.CopyFrom(ctx, table.Identifier(), table.Columns(), copySource(rows))
	if err != nil {
		return fail(fmt.Errorf("copy into %s: %w", table.Name, err))
	}

	logger.Info("bulk insert finished", "rows", n)
	return n, nil
}

// Count returns the number of rows in the clientes table.
func (q *Queries) Count(ctx context.Context) (int64, error) {
	var n int64
	err := q.db.QueryRow(ctx, "SELECT count(*) FROM "+schema.Customers.Identifier().Sanitize()).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count %s: %w", schema.Customers.Name, err)
	}
	return n, nil
}

func copySource(rows []core.Customer) pgx.CopyFromSource {
	return pgx.CopyFromSlice(len(rows), func(i int) ([]any, error) {
		return rows[i].CopyRow(), nil
	})
}
