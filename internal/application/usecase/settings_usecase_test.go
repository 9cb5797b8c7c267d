package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Almacen-api/internal/application/usecase"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/seed"
)

// El reset reemplaza las tres colecciones por el juego de demostración.
func TestSettingsReset_RestauraDemostracion(t *testing.T) {
	store := newStore(t,
		[]*entity.Product{{ID: "basura", Name: "X", SKU: "X"}},
		[]*entity.StockMove{{ID: "basura", Type: entity.MoveTypeReceipt, Status: entity.StatusDraft}},
	)
	uc := usecase.NewSettingsUseCase(store)

	require.NoError(t, uc.ResetDemoData(context.Background()))

	products, err := store.Products()
	require.NoError(t, err)
	assert.Len(t, products, len(seed.Products()))
	assert.Equal(t, "p1", products[0].ID)

	moves, err := store.Moves()
	require.NoError(t, err)
	assert.Len(t, moves, len(seed.Moves()))

	locations, err := store.Locations()
	require.NoError(t, err)
	assert.Len(t, locations, len(seed.Locations()))
}
