package checkout_payment

import (
	"fmt"
	"net/http"

	"github.com/fiestaspark/FP-ReservationService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.ReservaID <= 0 {
		return fmt.Errorf("%w: reservaID must be positive", ErrInvalidInput)
	}

	if req.ClienteID <= 0 {
		return fmt.Errorf("%w: clienteID must be positive", ErrInvalidInput)
	}

	if !domain.IsValidMetodoPago(domain.MetodoPago(req.Metodo)) {
		return ErrInvalidMetodo
	}

	return nil
}

// validateProof проверяет формат компробанта для выбранного способа.
// Компробант допустим только для переводов, но не обязателен: клиент может
// выбрать перевод сразу, а компробант догрузить позже со страницы
// подтверждения. Формат проверяется и по заявленному media type, и по
// сигнатуре содержимого: заявленному типу нельзя доверять.
func validateProof(metodo domain.MetodoPago, proof *ProofInput) error {
	if proof == nil {
		return nil
	}

	if !metodo.AcceptsProof() {
		return ErrUnexpectedProof
	}

	if len(proof.Data) == 0 {
		return fmt.Errorf("%w: empty proof file", ErrInvalidInput)
	}

	if len(proof.Data) > domain.MaxProofSizeBytes {
		return ErrProofTooLarge
	}

	if !domain.IsAllowedProofContentType(proof.ContentType) {
		return fmt.Errorf("%w: declared type %q", ErrUnsupportedMediaType, proof.ContentType)
	}

	sniffed := http.DetectContentType(proof.Data)
	if !domain.IsAllowedProofContentType(sniffed) {
		return fmt.Errorf("%w: detected type %q", ErrUnsupportedMediaType, sniffed)
	}

	return nil
}
