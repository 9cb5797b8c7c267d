package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/application/usecase"
	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/stock"
	"github.com/jhoicas/Almacen-api/internal/infrastructure/memory"
)

func newStore(t *testing.T, products []*entity.Product, moves []*entity.StockMove) *memory.Store {
	t.Helper()
	store := memory.NewStore()
	require.NoError(t, store.SaveProducts(products))
	require.NoError(t, store.SaveMoves(moves))
	require.NoError(t, store.SaveLocations(stock.DefaultLocations()))
	return store
}

// ──────────────────────────────────────────────────────────────────────────────
// Catálogo de productos
// ──────────────────────────────────────────────────────────────────────────────

// Escenario: stockLevel=12, minStock=15 → bandera de bajo stock activa, y los
// derivados (reserva, libre, valorización) vienen calculados.
func TestProductList_DerivadosCalculados(t *testing.T) {
	store := newStore(t,
		[]*entity.Product{{
			ID: "p1", Name: "Ergonomic Chair", SKU: "FURN-CHAIR-PRO",
			StockLevel: 12, MinStock: 15, Cost: decimal.NewFromInt(250),
			Location: entity.LocationNameStock, Tracking: entity.TrackingNone,
		}},
		[]*entity.StockMove{{
			ID: "m1", Type: entity.MoveTypeDelivery, Status: entity.StatusReady,
			SourceLocation: entity.LocationNameStock, DestLocation: entity.LocationNameCustomer,
			Lines: []entity.StockMoveLine{{ID: "l1", ProductID: "p1", Quantity: 2}},
		}},
	)
	uc := usecase.NewProductUseCase(store)

	out, err := uc.List(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, out, 1)

	p := out[0]
	assert.True(t, p.LowStock, "12 <= 15 debe marcar bajo stock")
	assert.Equal(t, 2, p.Reserved)
	assert.Equal(t, 10, p.FreeToUse)
	assert.True(t, decimal.NewFromInt(3000).Equal(p.Valuation), "12 * 250")
}

func TestProductList_BusquedaPorNombreYSKU(t *testing.T) {
	store := newStore(t, []*entity.Product{
		{ID: "p1", Name: "Office Desk", SKU: "FURN-DESK-001"},
		{ID: "p2", Name: "Monitor 27\"", SKU: "ELEC-MON-27"},
	}, nil)
	uc := usecase.NewProductUseCase(store)

	out, err := uc.List(context.Background(), "desk")
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "p1", out[0].ID)

	out, err = uc.List(context.Background(), "elec-mon")
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "p2", out[0].ID)
}

// La cantidad inicial siembra el desglose en la ubicación por defecto.
func TestProductCreate_SiembraDesglose(t *testing.T) {
	store := newStore(t, nil, nil)
	uc := usecase.NewProductUseCase(store)

	out, err := uc.Create(context.Background(), dto.ProductRequest{
		Name: "Bookshelf", SKU: "FURN-SHELF-01", StockLevel: 20,
		Cost: decimal.NewFromInt(80),
	})
	require.NoError(t, err)
	assert.Equal(t, entity.LocationNameStock, out.Location)
	assert.Equal(t, map[string]int{entity.LocationNameStock: 20}, out.LocationStock)
	assert.Equal(t, entity.TrackingNone, out.Tracking)
}

func TestProductCreate_NombreYSKURequeridos(t *testing.T) {
	uc := usecase.NewProductUseCase(newStore(t, nil, nil))

	_, err := uc.Create(context.Background(), dto.ProductRequest{Name: "", SKU: "X"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(context.Background(), dto.ProductRequest{Name: "X", SKU: ""})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// La edición toca solo los campos descriptivos: stock y desglose quedan como
// estaban aunque el body traiga otra cantidad.
func TestProductUpdate_NoTocaStock(t *testing.T) {
	store := newStore(t, []*entity.Product{{
		ID: "p1", Name: "Office Desk", SKU: "FURN-DESK-001",
		StockLevel: 45, LocationStock: map[string]int{entity.LocationNameStock: 45},
		Location: entity.LocationNameStock,
	}}, nil)
	uc := usecase.NewProductUseCase(store)

	out, err := uc.Update(context.Background(), "p1", dto.ProductRequest{
		Name: "Office Desk XL", SKU: "FURN-DESK-001", StockLevel: 999,
	})
	require.NoError(t, err)
	assert.Equal(t, "Office Desk XL", out.Name)
	assert.Equal(t, 45, out.StockLevel, "el stock no cambia por edición")
}

func TestProductDelete_InexistenteDevuelveNotFound(t *testing.T) {
	uc := usecase.NewProductUseCase(newStore(t, nil, nil))

	err := uc.Delete(context.Background(), "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Al borrar un producto, las líneas históricas que lo citan quedan como rastro.
func TestProductDelete_ConservaHistorial(t *testing.T) {
	store := newStore(t,
		[]*entity.Product{{ID: "p1", Name: "Office Desk", SKU: "FURN-DESK-001"}},
		[]*entity.StockMove{{
			ID: "m1", Type: entity.MoveTypeDelivery, Status: entity.StatusDone,
			Lines: []entity.StockMoveLine{{ID: "l1", ProductID: "p1", ProductName: "Office Desk", Quantity: 5}},
		}},
	)
	uc := usecase.NewProductUseCase(store)

	require.NoError(t, uc.Delete(context.Background(), "p1"))

	moves, err := store.Moves()
	require.NoError(t, err)
	require.Len(t, moves, 1)
	assert.Equal(t, "Office Desk", moves[0].Lines[0].ProductName)
}
