package postgres_test

import (
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Almacen-api/internal/infrastructure/postgres"
)

func newMockStore(t *testing.T) (*postgres.KVStore, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return postgres.NewKVStore(mock), mock
}

// Una clave ausente se lee como colección vacía, sin error.
func TestKVStore_ClaveAusenteEsColeccionVacia(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectQuery(`SELECT value FROM kv_store`).
		WithArgs("stock_products").
		WillReturnError(pgx.ErrNoRows)

	products, err := store.Products()
	require.NoError(t, err)
	assert.Empty(t, products)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestKVStore_LeeColeccionDesdeJSON(t *testing.T) {
	store, mock := newMockStore(t)

	doc := []byte(`[{"id":"p1","name":"Office Desk","sku":"FURN-DESK-001","stockLevel":45,"locationStock":{"WH/Stock":45},"cost":"120","location":"WH/Stock","minStock":10,"tracking":"No Tracking"}]`)
	mock.ExpectQuery(`SELECT value FROM kv_store`).
		WithArgs("stock_products").
		WillReturnRows(pgxmock.NewRows([]string{"value"}).AddRow(doc))

	products, err := store.Products()
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Office Desk", products[0].Name)
	assert.Equal(t, 45, products[0].StockLevel)
	assert.Equal(t, map[string]int{"WH/Stock": 45}, products[0].LocationStock)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// La escritura reemplaza el documento completo vía upsert.
func TestKVStore_EscrituraHaceUpsert(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectExec(`INSERT INTO kv_store`).
		WithArgs("stock_locations", pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	require.NoError(t, store.SaveLocations(nil))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestKVStore_JSONCorruptoDevuelveError(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectQuery(`SELECT value FROM kv_store`).
		WithArgs("stock_moves").
		WillReturnRows(pgxmock.NewRows([]string{"value"}).AddRow([]byte(`{no-es-json`)))

	_, err := store.Moves()
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
