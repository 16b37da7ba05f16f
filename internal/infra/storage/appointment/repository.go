package appointment

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/kalathiyadhruv74-afk/BookMyCut/internal/domain"
	"github.com/kalathiyadhruv74-afk/BookMyCut/pkg/dbmetrics"
	"github.com/kalathiyadhruv74-afk/BookMyCut/pkg/psqlbuilder"
)

// Repository persists appointments and their service associations.
type Repository struct {
	db DBExecutor
}

func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create inserts the appointment and one appointment_services row per
// selected service. The rows form a single atomic unit only when the
// context carries an open transaction; the booking use case always
// calls this inside one.
func (r *Repository) Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("appointments").
		Columns(
			"customer_id",
			"shop_id",
			"appointment_date",
			"start_time",
			"total_duration",
			"total_price",
			"status",
			"payment_status",
		).
		Values(
			appt.CustomerID,
			appt.ShopID,
			appt.Date,
			appt.StartTime,
			appt.TotalDuration,
			appt.TotalPrice,
			appt.Status,
			appt.PaymentStatus,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&appt.ID,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	appt.CreatedAt = createdAt.Time
	appt.UpdatedAt = updatedAt.Time

	if len(appt.ServiceIDs) > 0 {
		insert := psqlbuilder.Insert("appointment_services").
			Columns("appointment_id", "service_id")
		for _, serviceID := range appt.ServiceIDs {
			insert = insert.Values(appt.ID, serviceID)
		}

		query, args, err = insert.ToSql()
		if err != nil {
			return nil, fmt.Errorf("%w: Create - build services insert: %v", ErrBuildQuery, err)
		}

		if _, err := executor.ExecContext(ctx, query, args...); err != nil {
			return nil, fmt.Errorf("%w: Create - insert appointment services: %v", ErrExecQuery, err)
		}
	}

	return appt, nil
}

// GetByID fetches one appointment with its service ids and names.
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := aggregatedSelect().
		Where(squirrel.Eq{"a.id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	appt, err := scanAppointment(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrAppointmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan appointment: %v", ErrScanRow, err)
	}

	return appt, nil
}

// GetByShopAndDate loads a shop's appointments on one calendar date,
// excluding cancelled ones unless the filter asks for them. The query
// deliberately carries no joins or aggregates: when it runs inside a
// transaction it appends FOR UPDATE, locking the shop-day rows so the
// availability check and the subsequent insert act as one atomic unit.
func (r *Repository) GetByShopAndDate(ctx context.Context, filter domain.ShopDayFilter) ([]*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(
		"id",
		"customer_id",
		"shop_id",
		"appointment_date",
		"start_time",
		"total_duration",
		"total_price",
		"status",
		"payment_status",
		"created_at",
		"updated_at",
	).
		From("appointments").
		Where(squirrel.Eq{"shop_id": filter.ShopID}).
		Where(squirrel.Eq{"appointment_date": filter.Date}).
		OrderBy("start_time ASC")

	if !filter.IncludeInactive {
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"status": string(domain.StatusCancelled)})
	}

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByShopAndDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByShopAndDate - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	appointments := make([]*domain.Appointment, 0)
	for rows.Next() {
		var (
			appt                 domain.Appointment
			createdAt, updatedAt sql.NullTime
		)
		err := rows.Scan(
			&appt.ID,
			&appt.CustomerID,
			&appt.ShopID,
			&appt.Date,
			&appt.StartTime,
			&appt.TotalDuration,
			&appt.TotalPrice,
			&appt.Status,
			&appt.PaymentStatus,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: GetByShopAndDate - scan row: %v", ErrScanRow, err)
		}
		appt.CreatedAt = createdAt.Time
		appt.UpdatedAt = updatedAt.Time
		appointments = append(appointments, &appt)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByShopAndDate - rows error: %v", ErrScanRow, err)
	}

	return appointments, nil
}

// GetByCustomerID returns a customer's appointment history, newest
// first, optionally filtered by status.
func (r *Repository) GetByCustomerID(ctx context.Context, customerID int64, status *domain.AppointmentStatus) ([]*domain.Appointment, error) {
	selectBuilder := aggregatedSelect().
		Where(squirrel.Eq{"a.customer_id": customerID})

	if status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"a.status": *status})
	}

	return r.queryAggregated(ctx, selectBuilder, "GetByCustomerID")
}

// GetByShopID returns a shop's appointments, newest first, optionally
// filtered by status.
func (r *Repository) GetByShopID(ctx context.Context, shopID int64, status *domain.AppointmentStatus) ([]*domain.Appointment, error) {
	selectBuilder := aggregatedSelect().
		Where(squirrel.Eq{"a.shop_id": shopID})

	if status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"a.status": *status})
	}

	return r.queryAggregated(ctx, selectBuilder, "GetByShopID")
}

// GetConfirmedByDate returns all confirmed appointments on one date,
// across shops. Used by the reminder scheduler.
func (r *Repository) GetConfirmedByDate(ctx context.Context, date time.Time) ([]*domain.Appointment, error) {
	selectBuilder := aggregatedSelect().
		Where(squirrel.Eq{"a.appointment_date": date}).
		Where(squirrel.Eq{"a.status": string(domain.StatusConfirmed)})

	return r.queryAggregated(ctx, selectBuilder, "GetConfirmedByDate")
}

// UpdateStatus sets the lifecycle status unconditionally.
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.AppointmentStatus) error {
	return r.update(ctx, id, "UpdateStatus", map[string]interface{}{
		"status":     status,
		"updated_at": squirrel.Expr("NOW()"),
	})
}

// UpdatePaymentStatus sets the payment status unconditionally.
func (r *Repository) UpdatePaymentStatus(ctx context.Context, id int64, status domain.PaymentStatus) error {
	return r.update(ctx, id, "UpdatePaymentStatus", map[string]interface{}{
		"payment_status": status,
		"updated_at":     squirrel.Expr("NOW()"),
	})
}

// ConfirmIfPending advances status from pending to confirmed. The
// WHERE clause makes the transition fire at most once across any
// number of payments; later payments see zero rows affected.
func (r *Repository) ConfirmIfPending(ctx context.Context, id int64) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("appointments").
		Set("status", domain.StatusConfirmed).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Eq{"status": string(domain.StatusPending)}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: ConfirmIfPending - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("%w: ConfirmIfPending - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%w: ConfirmIfPending - get rows affected: %v", ErrExecQuery, err)
	}

	return rowsAffected > 0, nil
}

func (r *Repository) update(ctx context.Context, id int64, method string, sets map[string]interface{}) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	updateBuilder := psqlbuilder.Update("appointments").Where(squirrel.Eq{"id": id})
	for column, value := range sets {
		updateBuilder = updateBuilder.Set(column, value)
	}

	query, args, err := updateBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: %s - build update query: %v", ErrBuildQuery, method, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %s - execute update: %v", ErrExecQuery, method, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - get rows affected: %v", ErrExecQuery, method, err)
	}
	if rowsAffected == 0 {
		return ErrAppointmentNotFound
	}

	return nil
}

// aggregatedSelect joins the service associations and aggregates the
// ids and names per appointment. Not usable with FOR UPDATE.
func aggregatedSelect() squirrel.SelectBuilder {
	return psqlbuilder.Select(
		"a.id",
		"a.customer_id",
		"a.shop_id",
		"a.appointment_date",
		"a.start_time",
		"a.total_duration",
		"a.total_price",
		"a.status",
		"a.payment_status",
		"COALESCE(array_agg(s.id) FILTER (WHERE s.id IS NOT NULL), '{}')",
		"COALESCE(array_agg(s.name) FILTER (WHERE s.name IS NOT NULL), '{}')",
		"a.created_at",
		"a.updated_at",
	).
		From("appointments a").
		LeftJoin("appointment_services asrv ON asrv.appointment_id = a.id").
		LeftJoin("services s ON s.id = asrv.service_id").
		GroupBy("a.id").
		OrderBy("a.appointment_date DESC, a.start_time DESC")
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanAppointment(row rowScanner) (*domain.Appointment, error) {
	var (
		appt                 domain.Appointment
		createdAt, updatedAt sql.NullTime
	)
	err := row.Scan(
		&appt.ID,
		&appt.CustomerID,
		&appt.ShopID,
		&appt.Date,
		&appt.StartTime,
		&appt.TotalDuration,
		&appt.TotalPrice,
		&appt.Status,
		&appt.PaymentStatus,
		pq.Array(&appt.ServiceIDs),
		pq.Array(&appt.ServiceNames),
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}
	appt.CreatedAt = createdAt.Time
	appt.UpdatedAt = updatedAt.Time
	return &appt, nil
}

func (r *Repository) queryAggregated(ctx context.Context, selectBuilder squirrel.SelectBuilder, method string) ([]*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, method, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute query: %v", ErrExecQuery, method, err)
	}
	defer rows.Close()

	appointments := make([]*domain.Appointment, 0)
	for rows.Next() {
		appt, err := scanAppointment(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %s - scan row: %v", ErrScanRow, method, err)
		}
		appointments = append(appointments, appt)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - rows error: %v", ErrScanRow, method, err)
	}

	return appointments, nil
}
