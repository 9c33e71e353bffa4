package checkout_payment

// ProofInput компробант оплаты из запроса
type ProofInput struct {
	ContentType string // Заявленный media type
	Data        []byte // Содержимое файла
}

// Request модель запроса оформления оплаты
type Request struct {
	ReservaID int64       // ID резервации
	ClienteID int64       // ID клиента из сессии
	Staff     bool        // Персонал оформляет оплату любой резервации
	Metodo    string      // Способ оплаты: transferencia или efectivo
	Proof     *ProofInput // Компробант (только для переводов, опционален)
}

// Response модель ответа оформления оплаты
type Response struct {
	ReservaID       int64   // ID резервации
	Codigo          string  // Публичный код резервации
	Metodo          string  // Зафиксированный способ оплаты
	ComprobantePago *string // Ссылка на сохраненный компробант
	Estado          string  // Статус резервации (остается PENDIENTE до подтверждения)
}
