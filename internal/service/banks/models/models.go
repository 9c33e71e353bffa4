package models

import "github.com/fiestaspark/FP-ReservationService/internal/domain"

// CuentaResponse счет для приема банковских переводов
type CuentaResponse struct {
	ID           int64  `json:"id"`
	Banco        string `json:"banco"`
	NumeroCuenta string `json:"numero_cuenta"`
	Titular      string `json:"titular"`
	TipoCuenta   string `json:"tipo_cuenta"`
}

// CuentaListResponse ответ со списком счетов
type CuentaListResponse struct {
	Cuentas []CuentaResponse `json:"cuentas"`
}

// FromDomainCuentas конвертирует список domain моделей в DTO
func FromDomainCuentas(cuentas []domain.CuentaBancaria) *CuentaListResponse {
	resp := &CuentaListResponse{
		Cuentas: make([]CuentaResponse, len(cuentas)),
	}

	for i, c := range cuentas {
		resp.Cuentas[i] = CuentaResponse{
			ID:           c.ID,
			Banco:        c.Banco,
			NumeroCuenta: c.NumeroCuenta,
			Titular:      c.Titular,
			TipoCuenta:   c.TipoCuenta,
		}
	}

	return resp
}
