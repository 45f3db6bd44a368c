package bedspace

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/avdema/TA-ReportingService/internal/domain"
	"github.com/avdema/TA-ReportingService/pkg/dbmetrics"
	"github.com/avdema/TA-ReportingService/pkg/psqlbuilder"
)

// Repository репозиторий для работы с койко-местами
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория койко-мест
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

var bedspaceColumns = []string{
	"b.id",
	"b.reference",
	"b.property_id",
	"p.name",
	"p.region",
	"b.online_from",
	"b.online_until",
	"b.created_at",
	"b.updated_at",
}

// List возвращает койко-места вместе с данными их premises,
// опционально отфильтрованные по региону.
// Порядок стабильный: по названию premises, затем по reference
func (r *Repository) List(ctx context.Context, region *string) ([]*domain.Bedspace, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bedspaceColumns...).
		From("bedspaces b").
		Join("properties p ON p.id = b.property_id").
		OrderBy("p.name ASC, b.reference ASC")

	// Фильтрация по региону (если указан)
	if region != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"p.region": *region})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	bedspaces := make([]*domain.Bedspace, 0)
	for rows.Next() {
		bedspace, err := scanBedspace(rows)
		if err != nil {
			return nil, err
		}
		bedspaces = append(bedspaces, bedspace)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows iteration: %v", ErrScanRow, err)
	}

	return bedspaces, nil
}

// GetByID получает койко-место по ID
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Bedspace, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bedspaceColumns...).
		From("bedspaces b").
		Join("properties p ON p.id = b.property_id").
		Where(squirrel.Eq{"b.id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var bedspace domain.Bedspace
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&bedspace.ID,
		&bedspace.Reference,
		&bedspace.PropertyID,
		&bedspace.PropertyName,
		&bedspace.Region,
		&bedspace.OnlineFrom,
		&bedspace.OnlineUntil,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrBedspaceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan bedspace: %v", ErrScanRow, err)
	}

	bedspace.CreatedAt = createdAt.Time
	bedspace.UpdatedAt = updatedAt.Time

	return &bedspace, nil
}

func scanBedspace(rows *sql.Rows) (*domain.Bedspace, error) {
	var bedspace domain.Bedspace
	var createdAt, updatedAt sql.NullTime

	err := rows.Scan(
		&bedspace.ID,
		&bedspace.Reference,
		&bedspace.PropertyID,
		&bedspace.PropertyName,
		&bedspace.Region,
		&bedspace.OnlineFrom,
		&bedspace.OnlineUntil,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: scan bedspace: %v", ErrScanRow, err)
	}

	bedspace.CreatedAt = createdAt.Time
	bedspace.UpdatedAt = updatedAt.Time

	return &bedspace, nil
}
