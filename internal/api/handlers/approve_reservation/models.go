package approve_reservation

// ApproveRequest тело запроса подтверждения резервации
type ApproveRequest struct {
	TransaccionID string `json:"transaccion_id"`
}
