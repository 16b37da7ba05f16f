package appointment

import (
	"context"
	"database/sql"

	"github.com/kalathiyadhruv74-afk/BookMyCut/pkg/dbmetrics"
)

// Reuse the dbmetrics executor interfaces so the repository works on
// *sql.DB, *sql.Tx and the instrumented wrappers alike.
type DBExecutor = dbmetrics.DBExecutor
type TxExecutor = dbmetrics.TxExecutor

// TxBeginner starts transactions. Satisfied by *sql.DB and *dbmetrics.DB.
type TxBeginner interface {
	BeginTx(ctx context.Context, opts *sql.TxOptions) (TxExecutor, error)
}
