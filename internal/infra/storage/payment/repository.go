package payment

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/kalathiyadhruv74-afk/BookMyCut/internal/domain"
	"github.com/kalathiyadhruv74-afk/BookMyCut/pkg/dbmetrics"
	"github.com/kalathiyadhruv74-afk/BookMyCut/pkg/psqlbuilder"
)

// Repository persists the append-only payment ledger. Rows are only
// ever inserted, never updated.
type Repository struct {
	db dbmetrics.DBExecutor
}

func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create appends one ledger entry.
func (r *Repository) Create(ctx context.Context, p *domain.Payment) (*domain.Payment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("payments").
		Columns("appointment_id", "amount", "method", "status", "transaction_ref").
		Values(p.AppointmentID, p.Amount, p.Method, p.Status, p.TransactionRef).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&p.ID, &createdAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	p.CreatedAt = createdAt.Time
	return p, nil
}

// ListByAppointment returns the ledger entries for one appointment,
// oldest first.
func (r *Repository) ListByAppointment(ctx context.Context, appointmentID int64) ([]*domain.Payment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"appointment_id",
		"amount",
		"method",
		"status",
		"transaction_ref",
		"created_at",
	).
		From("payments").
		Where(squirrel.Eq{"appointment_id": appointmentID}).
		OrderBy("created_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByAppointment - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByAppointment - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	payments := make([]*domain.Payment, 0)
	for rows.Next() {
		var (
			p         domain.Payment
			createdAt sql.NullTime
		)
		err := rows.Scan(&p.ID, &p.AppointmentID, &p.Amount, &p.Method, &p.Status, &p.TransactionRef, &createdAt)
		if err != nil {
			return nil, fmt.Errorf("%w: ListByAppointment - scan row: %v", ErrScanRow, err)
		}
		p.CreatedAt = createdAt.Time
		payments = append(payments, &p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByAppointment - rows error: %v", ErrScanRow, err)
	}
	return payments, nil
}

// SumByAppointment returns the total amount recorded against one
// appointment. Used to reconcile the ledger with total_price.
func (r *Repository) SumByAppointment(ctx context.Context, appointmentID int64) (float64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COALESCE(SUM(amount), 0)").
		From("payments").
		Where(squirrel.Eq{"appointment_id": appointmentID}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: SumByAppointment - build select query: %v", ErrBuildQuery, err)
	}

	var sum float64
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&sum); err != nil {
		return 0, fmt.Errorf("%w: SumByAppointment - scan sum: %v", ErrScanRow, err)
	}
	return sum, nil
}
