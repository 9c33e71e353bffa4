package reservation

import (
	"github.com/fiestaspark/FP-ReservationService/pkg/txmanager"
)

// Переиспользуем интерфейсы txmanager для работы с БД
type DBExecutor = txmanager.DBExecutor
type TxExecutor = txmanager.TxExecutor
