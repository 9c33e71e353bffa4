package domain

// MetodoPago is the offline payment method bound to a reservation
type MetodoPago string

const (
	MetodoTransferencia MetodoPago = "transferencia"
	MetodoEfectivo      MetodoPago = "efectivo"
)

// IsValidMetodoPago reports whether m is a known payment method
func IsValidMetodoPago(m MetodoPago) bool {
	return m == MetodoTransferencia || m == MetodoEfectivo
}

// AcceptsProof returns true when a transfer receipt may be attached.
// The receipt is optional at checkout and can be uploaded later;
// cash reservations never carry one.
func (m MetodoPago) AcceptsProof() bool {
	return m == MetodoTransferencia
}

// CuentaBancaria is a bank account rendered in the payment instructions.
// Informational only, not part of the state machine.
type CuentaBancaria struct {
	ID           int64
	Banco        string
	NumeroCuenta string
	Titular      string
	TipoCuenta   string
	Activa       bool
}
