package add_cart_item

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Фронтенд шлет поле tipo_item, контракт закреплен тестом
func TestAddItemRequest_WireFormat(t *testing.T) {
	body := `{"tipo_item": "S", "item_id": 10, "cantidad": 2}`

	var req AddItemRequest
	require.NoError(t, json.Unmarshal([]byte(body), &req))

	assert.Equal(t, "S", req.Tipo)
	assert.Equal(t, int64(10), req.ItemID)
	assert.Equal(t, 2, req.Cantidad)
}
