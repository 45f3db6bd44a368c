package void

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/avdema/TA-ReportingService/internal/domain"
	"github.com/avdema/TA-ReportingService/pkg/dbmetrics"
	"github.com/avdema/TA-ReportingService/pkg/psqlbuilder"
)

// Repository репозиторий для работы с maintenance void'ами
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория void'ов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

var voidColumns = []string{
	"v.id",
	"v.bedspace_id",
	"v.start_date",
	"v.end_date",
	"r.id",
	"r.name",
	"v.notes",
	"v.cost_centre",
	"v.cancelled_at",
	"v.created_at",
	"v.updated_at",
}

// Create создает новый void
func (r *Repository) Create(ctx context.Context, v *domain.Void) (*domain.Void, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("voids").
		Columns(
			"id",
			"bedspace_id",
			"start_date",
			"end_date",
			"reason_id",
			"notes",
			"cost_centre",
		).
		Values(
			v.ID,
			v.BedspaceID,
			v.StartDate,
			v.EndDate,
			v.Reason.ID,
			v.Notes,
			v.CostCentre,
		).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	v.CreatedAt = createdAt.Time
	v.UpdatedAt = updatedAt.Time

	return v, nil
}

// GetByID получает void по ID
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Void, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(voidColumns...).
		From("voids v").
		Join("void_reasons r ON r.id = v.reason_id").
		Where(squirrel.Eq{"v.id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)
	v, err := scanVoidRow(row.Scan)
	if err == sql.ErrNoRows {
		return nil, ErrVoidNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan void: %v", ErrScanRow, err)
	}

	return v, nil
}

// FindOverlapping возвращает void'ы койко-места, затрагивающие отчетное окно.
// Выборка грубая - точный клиппинг выполняет отчетный движок
func (r *Repository) FindOverlapping(ctx context.Context, bedspaceID uuid.UUID, window domain.ReportingWindow) ([]*domain.Void, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(voidColumns...).
		From("voids v").
		Join("void_reasons r ON r.id = v.reason_id").
		Where(squirrel.Eq{"v.bedspace_id": bedspaceID}).
		Where(squirrel.LtOrEq{"v.start_date": window.EndDate}).
		Where(squirrel.GtOrEq{"v.end_date": window.StartDate}).
		OrderBy("v.start_date ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: FindOverlapping - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: FindOverlapping - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	voids := make([]*domain.Void, 0)
	for rows.Next() {
		v, err := scanVoidRow(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("%w: FindOverlapping - scan void: %v", ErrScanRow, err)
		}
		voids = append(voids, v)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: FindOverlapping - rows iteration: %v", ErrScanRow, err)
	}

	return voids, nil
}

// Cancel отменяет void
func (r *Repository) Cancel(ctx context.Context, id uuid.UUID, at time.Time) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("voids").
		Set("cancelled_at", at).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Cancel - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Cancel - execute update: %v", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Cancel - rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return ErrVoidNotFound
	}

	return nil
}

// GetReasonByID получает категорию void'а по ID
func (r *Repository) GetReasonByID(ctx context.Context, id uuid.UUID) (*domain.VoidReason, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name").
		From("void_reasons").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetReasonByID - build select query: %v", ErrBuildQuery, err)
	}

	var reason domain.VoidReason
	err = executor.QueryRowContext(ctx, query, args...).Scan(&reason.ID, &reason.Name)
	if err == sql.ErrNoRows {
		return nil, ErrReasonNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetReasonByID - scan reason: %v", ErrScanRow, err)
	}

	return &reason, nil
}

func scanVoidRow(scan func(dest ...interface{}) error) (*domain.Void, error) {
	var v domain.Void
	var createdAt, updatedAt sql.NullTime

	err := scan(
		&v.ID,
		&v.BedspaceID,
		&v.StartDate,
		&v.EndDate,
		&v.Reason.ID,
		&v.Reason.Name,
		&v.Notes,
		&v.CostCentre,
		&v.CancelledAt,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	v.CreatedAt = createdAt.Time
	v.UpdatedAt = updatedAt.Time

	return &v, nil
}
