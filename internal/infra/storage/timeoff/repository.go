package timeoff

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/pkg/dbmetrics"
	"github.com/m04kA/SMC-AppointmentService/pkg/psqlbuilder"
)

var periodColumns = []string{
	"id",
	"professional_id",
	"start_date",
	"end_date",
	"title",
	"created_at",
}

// Repository репозиторий для работы с периодами отсутствия
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория периодов отсутствия
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новый период отсутствия
// Инвариант start_date <= end_date проверяется на уровне сервиса и CHECK в БД
func (r *Repository) Create(ctx context.Context, period *domain.TimeOffPeriod) (*domain.TimeOffPeriod, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("time_off_periods").
		Columns(
			"professional_id",
			"start_date",
			"end_date",
			"title",
		).
		Values(
			period.ProfessionalID,
			period.StartDate,
			period.EndDate,
			period.Title,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&period.ID,
		&createdAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	period.CreatedAt = createdAt.Time

	return period, nil
}

// Delete удаляет период отсутствия
// Семантика "обновления" периода - удаление и создание нового
func (r *Repository) Delete(ctx context.Context, professionalID, periodID int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("time_off_periods").
		Where(squirrel.Eq{"id": periodID, "professional_id": professionalID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrPeriodNotFound
	}

	return nil
}

// GetByProfessional получает все периоды отсутствия профессионала
func (r *Repository) GetByProfessional(ctx context.Context, professionalID int64) ([]*domain.TimeOffPeriod, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(periodColumns...).
		From("time_off_periods").
		Where(squirrel.Eq{"professional_id": professionalID}).
		OrderBy("start_date ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByProfessional - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByProfessional - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	periods := make([]*domain.TimeOffPeriod, 0)
	for rows.Next() {
		var period domain.TimeOffPeriod
		var createdAt sql.NullTime

		err := rows.Scan(
			&period.ID,
			&period.ProfessionalID,
			&period.StartDate,
			&period.EndDate,
			&period.Title,
			&createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: GetByProfessional - scan row: %v", ErrScanRow, err)
		}

		period.CreatedAt = createdAt.Time
		periods = append(periods, &period)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByProfessional - rows error: %v", ErrScanRow, err)
	}

	return periods, nil
}

// IsBlocked возвращает true, если дата попадает хотя бы в один период
// отсутствия профессионала (границы включительно)
func (r *Repository) IsBlocked(ctx context.Context, professionalID int64, date time.Time) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("1").
		From("time_off_periods").
		Where(squirrel.Eq{"professional_id": professionalID}).
		Where(squirrel.LtOrEq{"start_date": date}).
		Where(squirrel.GtOrEq{"end_date": date}).
		Limit(1).
		ToSql()

	if err != nil {
		return false, fmt.Errorf("%w: IsBlocked - build select query: %v", ErrBuildQuery, err)
	}

	var one int
	err = executor.QueryRowContext(ctx, query, args...).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: IsBlocked - execute query: %v", ErrExecQuery, err)
	}

	return true, nil
}
