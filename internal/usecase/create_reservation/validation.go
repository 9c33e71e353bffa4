package create_reservation

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/fiestaspark/FP-ReservationService/internal/domain"
)

// totalTolerance допуск при сверке итога, заявленного клиентом
const totalTolerance = 0.005

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.ClienteID <= 0 {
		return fmt.Errorf("%w: clienteID must be positive", ErrInvalidInput)
	}

	if req.HorarioID <= 0 {
		return fmt.Errorf("%w: horarioID must be positive", ErrInvalidInput)
	}

	if req.FechaEvento.IsZero() {
		return fmt.Errorf("%w: fechaEvento is required", ErrInvalidInput)
	}

	direccion := strings.TrimSpace(req.DireccionEvento)
	if direccion == "" {
		return fmt.Errorf("%w: direccionEvento is required", ErrInvalidInput)
	}
	if len(direccion) > domain.MaxAddressLength {
		return fmt.Errorf("%w: direccionEvento exceeds %d characters", ErrInvalidInput, domain.MaxAddressLength)
	}

	if req.Codigo != nil && strings.TrimSpace(*req.Codigo) == "" {
		return fmt.Errorf("%w: codigo must not be blank", ErrInvalidInput)
	}

	if req.DesdeCarrito {
		// Строки собираются из корзины, тело не должно их дублировать
		if len(req.Detalles) > 0 {
			return fmt.Errorf("%w: detalles must be empty when using cart", ErrInvalidInput)
		}
		return nil
	}

	if len(req.Detalles) == 0 {
		return fmt.Errorf("%w: at least one detalle is required", ErrInvalidInput)
	}
	if len(req.Detalles) > domain.MaxDetailLinesPerReserva {
		return fmt.Errorf("%w: too many detalles, max %d", ErrInvalidInput, domain.MaxDetailLinesPerReserva)
	}

	for i, d := range req.Detalles {
		if !domain.IsValidTipoItem(domain.TipoItem(d.Tipo)) {
			return fmt.Errorf("%w: detalle %d has invalid tipo %q", ErrInvalidInput, i, d.Tipo)
		}
		if d.ItemID <= 0 {
			return fmt.Errorf("%w: detalle %d has invalid itemID", ErrInvalidInput, i)
		}
		if d.Cantidad <= 0 {
			return fmt.Errorf("%w: detalle %d has non-positive cantidad", ErrInvalidInput, i)
		}
	}

	return nil
}

// validateDate проверяет, что дата события не в прошлом
func validateDate(fechaEvento, now time.Time) error {
	fechaOnly := time.Date(fechaEvento.Year(), fechaEvento.Month(), fechaEvento.Day(), 0, 0, 0, 0, fechaEvento.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	if fechaOnly.Before(nowOnly) {
		return ErrInvalidDate
	}

	return nil
}

// validateTotal сверяет заявленный клиентом итог с пересчитанной суммой строк
func validateTotal(declared *float64, computed float64) error {
	if declared == nil {
		return nil
	}

	if math.Abs(*declared-computed) > totalTolerance {
		return fmt.Errorf("%w: declared=%.2f computed=%.2f", ErrTotalMismatch, *declared, computed)
	}

	return nil
}
