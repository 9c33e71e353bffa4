package bank

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/fiestaspark/FP-ReservationService/internal/domain"
	"github.com/fiestaspark/FP-ReservationService/pkg/psqlbuilder"
	"github.com/fiestaspark/FP-ReservationService/pkg/txmanager"
)

// Repository репозиторий для чтения банковских счетов
// Счета показываются клиенту как инструкция по оплате переводом
type Repository struct {
	db txmanager.DBExecutor
}

// NewRepository создает новый экземпляр репозитория банковских счетов
func NewRepository(db txmanager.DBExecutor) *Repository {
	return &Repository{db: db}
}

// ListActive получает активные банковские счета
func (r *Repository) ListActive(ctx context.Context) ([]domain.CuentaBancaria, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"banco",
		"numero_cuenta",
		"titular",
		"tipo_cuenta",
		"activa",
	).
		From("cuentas_bancarias").
		Where(squirrel.Eq{"activa": true}).
		OrderBy("banco ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListActive - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListActive - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	cuentas := make([]domain.CuentaBancaria, 0)
	for rows.Next() {
		var c domain.CuentaBancaria
		err := rows.Scan(
			&c.ID,
			&c.Banco,
			&c.NumeroCuenta,
			&c.Titular,
			&c.TipoCuenta,
			&c.Activa,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: ListActive - scan row: %v", ErrScanRow, err)
		}
		cuentas = append(cuentas, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListActive - rows error: %v", ErrScanRow, err)
	}

	return cuentas, nil
}
