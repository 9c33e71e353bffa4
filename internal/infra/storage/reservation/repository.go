package reservation

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/fiestaspark/FP-ReservationService/internal/domain"
	"github.com/fiestaspark/FP-ReservationService/pkg/psqlbuilder"
	"github.com/fiestaspark/FP-ReservationService/pkg/txmanager"
)

const pqUniqueViolation = "23505"

var reservaColumns = []string{
	"id",
	"codigo_reserva",
	"cliente_id",
	"fecha_evento",
	"horario_id",
	"direccion_evento",
	"metodo_pago",
	"total",
	"estado",
	"transaccion_id",
	"comprobante_pago",
	"creada_en",
	"confirmada_en",
}

// Repository репозиторий для работы с резервациями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория резерваций
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает резервацию вместе со строками деталей одним агрегатом.
// Вызывается только внутри сериализуемой транзакции usecase создания:
// вставка заголовка, вставка деталей и декремент вместимости слота
// фиксируются или откатываются вместе.
//
// Уникальный индекс по codigo_reserva превращает повтор запроса с тем же
// кодом в ErrDuplicateCodigo - вызывающая сторона возвращает уже созданную
// резервацию вместо дубля.
func (r *Repository) Create(ctx context.Context, reserva *domain.Reserva) (*domain.Reserva, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("reservas").
		Columns(
			"codigo_reserva",
			"cliente_id",
			"fecha_evento",
			"horario_id",
			"direccion_evento",
			"metodo_pago",
			"total",
			"estado",
		).
		Values(
			reserva.Codigo,
			reserva.ClienteID,
			reserva.FechaEvento,
			reserva.HorarioID,
			reserva.DireccionEvento,
			reserva.MetodoPago,
			reserva.Total,
			reserva.Estado,
		).
		Suffix("RETURNING id, creada_en").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var creadaEn sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&reserva.ID, &creadaEn)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pqUniqueViolation {
			return nil, ErrDuplicateCodigo
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}
	reserva.CreadaEn = creadaEn.Time

	for i := range reserva.Detalles {
		detalle := &reserva.Detalles[i]
		detalle.ReservaID = reserva.ID

		query, args, err := psqlbuilder.Insert("detalle_reservas").
			Columns(
				"reserva_id",
				"tipo_item",
				"item_id",
				"nombre_item",
				"cantidad",
				"precio_unitario",
				"subtotal",
			).
			Values(
				detalle.ReservaID,
				detalle.Tipo,
				detalle.ItemID,
				detalle.NombreItem,
				detalle.Cantidad,
				detalle.PrecioUnitario,
				detalle.Subtotal,
			).
			Suffix("RETURNING id").
			ToSql()

		if err != nil {
			return nil, fmt.Errorf("%w: Create - build detalle insert: %v", ErrBuildQuery, err)
		}

		if err := executor.QueryRowContext(ctx, query, args...).Scan(&detalle.ID); err != nil {
			return nil, fmt.Errorf("%w: Create - execute detalle insert: %v", ErrExecQuery, err)
		}
	}

	return reserva, nil
}

// GetByID получает резервацию по ID вместе с деталями
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Reserva, error) {
	return r.getOne(ctx, squirrel.Eq{"id": id})
}

// GetByCodigo получает резервацию по коду (идемпотентному ключу создания)
func (r *Repository) GetByCodigo(ctx context.Context, codigo string) (*domain.Reserva, error) {
	return r.getOne(ctx, squirrel.Eq{"codigo_reserva": codigo})
}

func (r *Repository) getOne(ctx context.Context, where squirrel.Eq) (*domain.Reserva, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(reservaColumns...).
		From("reservas").
		Where(where).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: getOne - build select query: %v", ErrBuildQuery, err)
	}

	reserva, err := scanReserva(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrReservaNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: getOne - scan reserva: %v", ErrScanRow, err)
	}

	detalles, err := r.getDetalles(ctx, reserva.ID)
	if err != nil {
		return nil, err
	}
	reserva.Detalles = detalles

	return reserva, nil
}

// ListWithFilter получает резервации с фильтрацией по клиенту и статусу.
// Скрытые (ELIMINADA) исключаются из всех выборок, если явно не запрошены.
func (r *Repository) ListWithFilter(ctx context.Context, filter domain.ReservasFilter) ([]*domain.Reserva, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(reservaColumns...).
		From("reservas").
		OrderBy("creada_en DESC")

	if filter.ClienteID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"cliente_id": *filter.ClienteID})
	}

	if filter.Estado != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"estado": *filter.Estado})
	} else if !filter.IncludeHidden {
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"estado": domain.StatusEliminada})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListWithFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListWithFilter - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	reservas := make([]*domain.Reserva, 0)
	for rows.Next() {
		reserva, err := scanReserva(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListWithFilter - scan row: %v", ErrScanRow, err)
		}
		reservas = append(reservas, reserva)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListWithFilter - rows error: %v", ErrScanRow, err)
	}

	for _, reserva := range reservas {
		detalles, err := r.getDetalles(ctx, reserva.ID)
		if err != nil {
			return nil, err
		}
		reserva.Detalles = detalles
	}

	return reservas, nil
}

// Approve переводит резервацию PENDIENTE -> APROBADA, фиксируя ID транзакции
// и время подтверждения. Условие estado = PENDIENTE в WHERE сериализует
// конкурирующие переходы: выигрывает первый, остальные получают ErrNoTransition.
func (r *Repository) Approve(ctx context.Context, id int64, transaccionID string) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("reservas").
		Set("estado", domain.StatusAprobada).
		Set("transaccion_id", transaccionID).
		Set("confirmada_en", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id, "estado": domain.StatusPendiente}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Approve - build update query: %v", ErrBuildQuery, err)
	}

	return r.execGuarded(ctx, executor, query, args, "Approve")
}

// UpdateEstado переводит резервацию PENDIENTE -> estado с той же охраной,
// что и Approve. Используется для аннулирования и мягкого удаления.
func (r *Repository) UpdateEstado(ctx context.Context, id int64, estado domain.ReservaStatus) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("reservas").
		Set("estado", estado).
		Where(squirrel.Eq{"id": id, "estado": domain.StatusPendiente}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateEstado - build update query: %v", ErrBuildQuery, err)
	}

	return r.execGuarded(ctx, executor, query, args, "UpdateEstado")
}

// SetPago привязывает способ оплаты и опциональную ссылку на компробант.
// Допустимо только пока резервация в статусе PENDIENTE.
func (r *Repository) SetPago(ctx context.Context, id int64, metodo domain.MetodoPago, comprobante *string) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	updateBuilder := psqlbuilder.Update("reservas").
		Set("metodo_pago", metodo).
		Where(squirrel.Eq{"id": id, "estado": domain.StatusPendiente})

	if comprobante != nil {
		updateBuilder = updateBuilder.Set("comprobante_pago", *comprobante)
	}

	query, args, err := updateBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: SetPago - build update query: %v", ErrBuildQuery, err)
	}

	return r.execGuarded(ctx, executor, query, args, "SetPago")
}

// execGuarded выполняет охраняемый UPDATE и транслирует 0 затронутых строк
// в ErrNoTransition
func (r *Repository) execGuarded(ctx context.Context, executor DBExecutor, query string, args []interface{}, method string) error {
	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %s - execute update: %v", ErrExecQuery, method, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - get rows affected: %v", ErrExecQuery, method, err)
	}

	if rowsAffected == 0 {
		return ErrNoTransition
	}

	return nil
}

// getDetalles получает строки деталей резервации
func (r *Repository) getDetalles(ctx context.Context, reservaID int64) ([]domain.DetalleReserva, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"reserva_id",
		"tipo_item",
		"item_id",
		"nombre_item",
		"cantidad",
		"precio_unitario",
		"subtotal",
	).
		From("detalle_reservas").
		Where(squirrel.Eq{"reserva_id": reservaID}).
		OrderBy("id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: getDetalles - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: getDetalles - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	detalles := make([]domain.DetalleReserva, 0)
	for rows.Next() {
		var d domain.DetalleReserva
		err := rows.Scan(
			&d.ID,
			&d.ReservaID,
			&d.Tipo,
			&d.ItemID,
			&d.NombreItem,
			&d.Cantidad,
			&d.PrecioUnitario,
			&d.Subtotal,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: getDetalles - scan row: %v", ErrScanRow, err)
		}
		detalles = append(detalles, d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: getDetalles - rows error: %v", ErrScanRow, err)
	}

	return detalles, nil
}

// rowScanner общий интерфейс для *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanReserva сканирует строку reservas в domain модель
func scanReserva(row rowScanner) (*domain.Reserva, error) {
	var reserva domain.Reserva
	var metodoPago sql.NullString
	var transaccionID, comprobante sql.NullString
	var creadaEn, confirmadaEn sql.NullTime

	err := row.Scan(
		&reserva.ID,
		&reserva.Codigo,
		&reserva.ClienteID,
		&reserva.FechaEvento,
		&reserva.HorarioID,
		&reserva.DireccionEvento,
		&metodoPago,
		&reserva.Total,
		&reserva.Estado,
		&transaccionID,
		&comprobante,
		&creadaEn,
		&confirmadaEn,
	)
	if err != nil {
		return nil, err
	}

	if metodoPago.Valid {
		m := domain.MetodoPago(metodoPago.String)
		reserva.MetodoPago = &m
	}
	if transaccionID.Valid {
		reserva.TransaccionID = &transaccionID.String
	}
	if comprobante.Valid {
		reserva.ComprobantePago = &comprobante.String
	}
	reserva.CreadaEn = creadaEn.Time
	if confirmadaEn.Valid {
		t := confirmadaEn.Time
		reserva.ConfirmadaEn = &t
	}

	return &reserva, nil
}
