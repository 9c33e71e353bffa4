package reservation

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// detalleColumns колонки, которые репозиторий пишет и читает в detalle_reservas
var detalleColumns = []string{
	"reserva_id",
	"tipo_item",
	"item_id",
	"nombre_item",
	"cantidad",
	"precio_unitario",
	"subtotal",
}

// Страховка от расхождения схемы: каждая колонка из запросов репозитория
// должна быть объявлена в миграции, иначе запись резервации падает в рантайме
func TestColumnsMatchMigration(t *testing.T) {
	data, err := os.ReadFile(filepath.Join("..", "..", "..", "..", "migrations", "001_init.sql"))
	require.NoError(t, err)
	schema := string(data)

	reservas := tableDefinition(t, schema, "reservas")
	for _, column := range reservaColumns {
		assert.Contains(t, reservas, column, "column %q missing from reservas", column)
	}

	detalles := tableDefinition(t, schema, "detalle_reservas")
	for _, column := range detalleColumns {
		assert.Contains(t, detalles, column, "column %q missing from detalle_reservas", column)
	}
}

// tableDefinition вырезает тело CREATE TABLE для таблицы
func tableDefinition(t *testing.T, schema, table string) string {
	t.Helper()

	marker := "CREATE TABLE IF NOT EXISTS " + table + " ("
	start := strings.Index(schema, marker)
	require.NotEqual(t, -1, start, "table %q not found in migration", table)

	rest := schema[start:]
	end := strings.Index(rest, ");")
	require.NotEqual(t, -1, end, "unterminated definition for table %q", table)

	return rest[:end]
}
