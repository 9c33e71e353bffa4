package checkout_payment

import (
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"

	"github.com/fiestaspark/FP-ReservationService/internal/api/handlers"
	"github.com/fiestaspark/FP-ReservationService/internal/api/middleware"
	"github.com/fiestaspark/FP-ReservationService/internal/domain"
	checkoutPayment "github.com/fiestaspark/FP-ReservationService/internal/usecase/checkout_payment"
)

const (
	msgInvalidID          = "identificador de reserva inválido"
	msgInvalidRequestBody = "cuerpo de la solicitud inválido"
	msgUnauthorized       = "se requiere autenticación"
	msgAccessDenied       = "no tiene acceso a esta reserva"
	msgReservaNotFound    = "reserva no encontrada"
	msgNotPending         = "la reserva ya no está pendiente"
	msgInvalidMetodo      = "método de pago inválido"
	msgUnexpectedProof    = "el pago en efectivo no acepta comprobante"
	msgUnsupportedProof   = "el comprobante debe ser una imagen JPEG, PNG o WebP"
	msgProofTooLarge      = "el comprobante supera el tamaño máximo permitido"
)

// maxMultipartMemory память для разбора multipart формы, остальное уходит на диск
const maxMultipartMemory = 1 << 20

type Handler struct {
	useCase CheckoutPaymentUseCase
	logger  Logger
}

func NewHandler(useCase CheckoutPaymentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/checkout-pago/{reservaId}
// Принимает два формата: application/json с одним metodo_pago и
// multipart/form-data с опциональным файлом comprobante_pago.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.GetSession(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	reservaID, err := strconv.ParseInt(mux.Vars(r)["reservaId"], 10, 64)
	if err != nil || reservaID <= 0 {
		h.logger.Warn("POST /checkout-pago - Invalid reserva id: %v", mux.Vars(r)["reservaId"])
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	useCaseReq, err := h.parseRequest(r, reservaID, session)
	if err != nil {
		h.logger.Warn("POST /checkout-pago - Failed to parse request for reserva id=%d: %v", reservaID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, checkoutPayment.ErrReservaNotFound):
			h.logger.Warn("POST /checkout-pago - Reserva id=%d not found", reservaID)
			handlers.RespondNotFound(w, msgReservaNotFound)

		case errors.Is(err, checkoutPayment.ErrIllegalTransition):
			h.logger.Warn("POST /checkout-pago - Reserva id=%d is not pending", reservaID)
			handlers.RespondConflict(w, msgNotPending)

		case errors.Is(err, checkoutPayment.ErrInvalidMetodo):
			h.logger.Warn("POST /checkout-pago - Invalid metodo for reserva id=%d", reservaID)
			handlers.RespondBadRequest(w, msgInvalidMetodo)

		case errors.Is(err, checkoutPayment.ErrAccessDenied):
			h.logger.Warn("POST /checkout-pago - Access denied: user=%d, reserva=%d",
				session.UserID, reservaID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, checkoutPayment.ErrUnexpectedProof):
			h.logger.Warn("POST /checkout-pago - Unexpected proof for reserva id=%d", reservaID)
			handlers.RespondBadRequest(w, msgUnexpectedProof)

		case errors.Is(err, checkoutPayment.ErrUnsupportedMediaType):
			h.logger.Warn("POST /checkout-pago - Unsupported proof media type for reserva id=%d", reservaID)
			handlers.RespondUnsupportedMedia(w, msgUnsupportedProof)

		case errors.Is(err, checkoutPayment.ErrProofTooLarge):
			h.logger.Warn("POST /checkout-pago - Proof too large for reserva id=%d", reservaID)
			handlers.RespondError(w, http.StatusRequestEntityTooLarge, msgProofTooLarge)

		case errors.Is(err, checkoutPayment.ErrInvalidInput):
			h.logger.Warn("POST /checkout-pago - Invalid input for reserva id=%d: %v", reservaID, err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /checkout-pago - Failed for reserva id=%d: %v", reservaID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /checkout-pago - Payment recorded: reserva id=%d, metodo=%s",
		result.ReservaID, result.Metodo)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}

// parseRequest разбирает JSON или multipart тело запроса
func (h *Handler) parseRequest(r *http.Request, reservaID int64, session middleware.Session) (*checkoutPayment.Request, error) {
	contentType := r.Header.Get("Content-Type")

	if !strings.HasPrefix(contentType, "multipart/form-data") {
		var req CheckoutRequest
		if err := handlers.DecodeJSON(r, &req); err != nil {
			return nil, err
		}
		return &checkoutPayment.Request{
			ReservaID: reservaID,
			ClienteID: session.UserID,
			Staff:     session.Role == middleware.RoleStaff,
			Metodo:    req.MetodoPago,
		}, nil
	}

	if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
		return nil, err
	}

	useCaseReq := &checkoutPayment.Request{
		ReservaID: reservaID,
		ClienteID: session.UserID,
		Staff:     session.Role == middleware.RoleStaff,
		Metodo:    r.FormValue("metodo_pago"),
	}

	file, header, err := r.FormFile("comprobante_pago")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			// Наличие компробанта валидирует usecase по способу оплаты
			return useCaseReq, nil
		}
		return nil, err
	}
	defer file.Close()

	// Лимит с запасом в один байт, чтобы отличить превышение от точного размера
	data, err := io.ReadAll(io.LimitReader(file, domain.MaxProofSizeBytes+1))
	if err != nil {
		return nil, err
	}

	useCaseReq.Proof = &checkoutPayment.ProofInput{
		ContentType: header.Header.Get("Content-Type"),
		Data:        data,
	}

	return useCaseReq, nil
}
