package booking

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

// turnaroundHorizonDays запас в календарных днях при выборке бронирований
// для отчетов: turnaround бронирования, выехавшего до начала окна, может
// попадать в окно. 28 рабочих дней с праздниками укладываются в этот запас.
const turnaroundHorizonDays = 56

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

var bookingColumns = []string{
	"bk.id",
	"bk.bedspace_id",
	"bk.crn",
	"bk.arrival_date",
	"bk.departure_date",
	"bk.confirmed_at",
	"bk.arrived_at",
	"bk.departed_at",
	"bk.cancelled_at",
	"bk.cancellation_reason",
	"bk.created_at",
	"bk.updated_at",
	"t.id",
	"t.working_day_count",
	"t.created_at",
}

// Create создает новое бронирование
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"id",
			"bedspace_id",
			"crn",
			"arrival_date",
			"departure_date",
		).
		Values(
			booking.ID,
			booking.BedspaceID,
			booking.CRN,
			booking.ArrivalDate,
			booking.DepartureDate,
		).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return booking, nil
}

// GetByID получает бронирование по ID вместе с turnaround (если назначен)
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings bk").
		LeftJoin("turnarounds t ON t.booking_id = bk.id").
		Where(squirrel.Eq{"bk.id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)
	booking, err := scanBookingRow(row.Scan)
	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %v", ErrScanRow, err)
	}

	return booking, nil
}

// FindOverlapping возвращает бронирования койко-места, способные затронуть
// отчетное окно. Выборка грубая - окно расширяется на turnaroundHorizonDays
// назад, чтобы захватить turnaround'ы выехавших бронирований; точный
// клиппинг выполняет отчетный движок
func (r *Repository) FindOverlapping(ctx context.Context, bedspaceID uuid.UUID, window domain.ReportingWindow) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	horizonStart := window.StartDate.AddDate(0, 0, -turnaroundHorizonDays)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings bk").
		LeftJoin("turnarounds t ON t.booking_id = bk.id").
		Where(squirrel.Eq{"bk.bedspace_id": bedspaceID}).
		Where(squirrel.LtOrEq{"bk.arrival_date": window.EndDate}).
		Where(squirrel.GtOrEq{"bk.departure_date": horizonStart}).
		OrderBy("bk.arrival_date ASC")

	// Внутри транзакции блокируем строки (usecase создания бронирования
	// проверяет пересечения перед вставкой)
	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE OF bk")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: FindOverlapping - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: FindOverlapping - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

// SetConfirmed проставляет отметку подтверждения
func (r *Repository) SetConfirmed(ctx context.Context, id uuid.UUID, at time.Time) error {
	return r.setEvent(ctx, id, "confirmed_at", at, "SetConfirmed")
}

// SetArrival проставляет отметку заезда
func (r *Repository) SetArrival(ctx context.Context, id uuid.UUID, at time.Time) error {
	return r.setEvent(ctx, id, "arrived_at", at, "SetArrival")
}

// SetDeparture проставляет отметку выезда
func (r *Repository) SetDeparture(ctx context.Context, id uuid.UUID, at time.Time) error {
	return r.setEvent(ctx, id, "departed_at", at, "SetDeparture")
}

// Cancel отменяет бронирование с указанием причины
func (r *Repository) Cancel(ctx context.Context, id uuid.UUID, at time.Time, reason string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("cancelled_at", at).
		Set("cancellation_reason", reason).
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

	return checkAffected(result, "Cancel")
}

// CreateTurnaround привязывает turnaround к бронированию
func (r *Repository) CreateTurnaround(ctx context.Context, turnaround *domain.Turnaround) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("turnarounds").
		Columns("id", "booking_id", "working_day_count").
		Values(turnaround.ID, turnaround.BookingID, turnaround.WorkingDayCount).
		Suffix("RETURNING created_at").
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: CreateTurnaround - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&createdAt); err != nil {
		return fmt.Errorf("%w: CreateTurnaround - execute insert: %v", ErrExecQuery, err)
	}

	turnaround.CreatedAt = createdAt.Time
	return nil
}

func (r *Repository) setEvent(ctx context.Context, id uuid.UUID, column string, at time.Time, op string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set(column, at).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: %s - build update query: %v", ErrBuildQuery, op, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %s - execute update: %v", ErrExecQuery, op, err)
	}

	return checkAffected(result, op)
}

func checkAffected(result sql.Result, op string) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - rows affected: %v", ErrExecQuery, op, err)
	}
	if affected == 0 {
		return ErrBookingNotFound
	}
	return nil
}

func scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		booking, err := scanBookingRow(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("%w: scan booking: %v", ErrScanRow, err)
		}
		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: rows iteration: %v", ErrScanRow, err)
	}

	return bookings, nil
}

func scanBookingRow(scan func(dest ...interface{}) error) (*domain.Booking, error) {
	var booking domain.Booking
	var createdAt, updatedAt sql.NullTime

	// turnaround может отсутствовать (LEFT JOIN)
	var turnaroundID uuid.NullUUID
	var turnaroundDays sql.NullInt64
	var turnaroundCreatedAt sql.NullTime

	err := scan(
		&booking.ID,
		&booking.BedspaceID,
		&booking.CRN,
		&booking.ArrivalDate,
		&booking.DepartureDate,
		&booking.ConfirmedAt,
		&booking.ArrivedAt,
		&booking.DepartedAt,
		&booking.CancelledAt,
		&booking.CancellationReason,
		&createdAt,
		&updatedAt,
		&turnaroundID,
		&turnaroundDays,
		&turnaroundCreatedAt,
	)
	if err != nil {
		return nil, err
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	if turnaroundID.Valid {
		booking.Turnaround = &domain.Turnaround{
			ID:              turnaroundID.UUID,
			BookingID:       booking.ID,
			WorkingDayCount: int(turnaroundDays.Int64),
			CreatedAt:       turnaroundCreatedAt.Time,
		}
	}

	return &booking, nil
}
