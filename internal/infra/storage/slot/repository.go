package slot

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/fiestaspark/FP-ReservationService/internal/domain"
	"github.com/fiestaspark/FP-ReservationService/pkg/psqlbuilder"
	"github.com/fiestaspark/FP-ReservationService/pkg/txmanager"
)

var horarioColumns = []string{
	"id",
	"fecha",
	"hora_inicio",
	"hora_fin",
	"cupos_totales",
	"cupos_restantes",
}

// Repository репозиторий для чтения слотов и атомарного изменения их вместимости
//
// Слоты создаются и редактируются внешним сервисом расписания. Здесь
// вместимость меняется ТОЛЬКО охраняемыми атомарными апдейтами
// (cupos_restantes +/- 1), никогда не вычисляется на клиенте.
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория слотов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает слот по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Horario, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(horarioColumns...).
		From("horarios").
		Where(squirrel.Eq{"id": id})

	// Внутри транзакции создания блокируем строку слота
	if txmanager.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var horario domain.Horario
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&horario.ID,
		&horario.Fecha,
		&horario.HoraInicio,
		&horario.HoraFin,
		&horario.CuposTotales,
		&horario.CuposRestantes,
	)

	if err == sql.ErrNoRows {
		return nil, ErrHorarioNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan horario: %v", ErrScanRow, err)
	}

	return &horario, nil
}

// GetByDate получает все слоты на указанную дату
func (r *Repository) GetByDate(ctx context.Context, fecha time.Time) ([]domain.Horario, error) {
	return r.list(ctx, squirrel.Eq{"fecha": fecha}, "GetByDate")
}

// GetByDateRange получает все слоты в диапазоне дат [desde, hasta] включительно
// Используется календарем доступности
func (r *Repository) GetByDateRange(ctx context.Context, desde, hasta time.Time) ([]domain.Horario, error) {
	return r.list(ctx, squirrel.And{
		squirrel.GtOrEq{"fecha": desde},
		squirrel.LtOrEq{"fecha": hasta},
	}, "GetByDateRange")
}

func (r *Repository) list(ctx context.Context, where squirrel.Sqlizer, method string) ([]domain.Horario, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(horarioColumns...).
		From("horarios").
		Where(where).
		OrderBy("fecha ASC, hora_inicio ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, method, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute query: %v", ErrExecQuery, method, err)
	}
	defer rows.Close()

	horarios := make([]domain.Horario, 0)
	for rows.Next() {
		var h domain.Horario
		err := rows.Scan(
			&h.ID,
			&h.Fecha,
			&h.HoraInicio,
			&h.HoraFin,
			&h.CuposTotales,
			&h.CuposRestantes,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: %s - scan row: %v", ErrScanRow, method, err)
		}
		horarios = append(horarios, h)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - rows error: %v", ErrScanRow, method, err)
	}

	return horarios, nil
}

// DecrementCapacity атомарно занимает одно место в слоте.
// Условие cupos_restantes > 0 в WHERE гарантирует, что место не уйдет в минус:
// если строк не затронуто - вместимость исчерпана (ErrNoCapacity) либо слот
// не существует (ErrHorarioNotFound).
func (r *Repository) DecrementCapacity(ctx context.Context, id int64) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("horarios").
		Set("cupos_restantes", squirrel.Expr("cupos_restantes - 1")).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Gt{"cupos_restantes": 0}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: DecrementCapacity - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: DecrementCapacity - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: DecrementCapacity - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		// Различаем отсутствие слота и исчерпанную вместимость
		if _, err := r.GetByID(ctx, id); err != nil {
			return err
		}
		return ErrNoCapacity
	}

	return nil
}

// IncrementCapacity атомарно освобождает одно место в слоте.
// Вызывается при аннулировании или мягком удалении резервации.
// Ограничение cupos_restantes < cupos_totales защищает от двойного возврата.
func (r *Repository) IncrementCapacity(ctx context.Context, id int64) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("horarios").
		Set("cupos_restantes", squirrel.Expr("cupos_restantes + 1")).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Expr("cupos_restantes < cupos_totales")).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: IncrementCapacity - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: IncrementCapacity - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: IncrementCapacity - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		if _, err := r.GetByID(ctx, id); err != nil {
			return err
		}
		// Слот уже на полной вместимости - возвращать нечего
	}

	return nil
}
