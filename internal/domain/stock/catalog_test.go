package stock_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/stock"
)

func defaultCatalog() stock.Catalog {
	return stock.NewCatalog(stock.DefaultLocations())
}

func TestIsInternal_CatalogoConfigurado(t *testing.T) {
	c := defaultCatalog()

	assert.True(t, c.IsInternal(entity.LocationNameStock))
	assert.True(t, c.IsInternal("WH/Packing"))
	assert.False(t, c.IsInternal(entity.LocationNameVendor))
	assert.False(t, c.IsInternal(entity.LocationNameCustomer))
	assert.False(t, c.IsInternal(entity.LocationNameScrap))
	assert.False(t, c.IsInternal(entity.LocationNameAdjustment))
}

// Los nombres libres que no figuran en el catálogo caen en la heurística de
// respaldo: prefijo "WH/" marca bodega interna.
func TestIsInternal_RespaldoParaNombresSinRegistrar(t *testing.T) {
	c := defaultCatalog()

	assert.True(t, c.IsInternal("WH/Nueva Bodega"))
	assert.False(t, c.IsInternal("Cliente Mostrador"))
}

// El tipo configurado manda sobre la heurística: una ubicación registrada como
// externa no se vuelve interna por llamarse "WH/...".
func TestIsInternal_TipoConfiguradoMandaSobreElPrefijo(t *testing.T) {
	c := stock.NewCatalog([]entity.Location{
		{Name: "WH/Devoluciones Cliente", Kind: entity.LocationCustomer},
		{Name: "Bodega Central", Kind: entity.LocationInternal},
	})

	assert.False(t, c.IsInternal("WH/Devoluciones Cliente"))
	assert.True(t, c.IsInternal("Bodega Central"))
}

func TestDirectionOf_Clasificacion(t *testing.T) {
	c := defaultCatalog()

	cases := []struct {
		name     string
		moveType string
		source   string
		dest     string
		want     stock.Direction
	}{
		{"recepción entra", entity.MoveTypeReceipt, entity.LocationNameVendor, entity.LocationNameStock, stock.DirectionIncoming},
		{"entrega sale", entity.MoveTypeDelivery, entity.LocationNameStock, entity.LocationNameCustomer, stock.DirectionOutgoing},
		{"traslado interno puro no cambia el total", entity.MoveTypeInternal, entity.LocationNameStock, "WH/Packing", stock.DirectionNone},
		{"traslado interno hacia scrap sale", entity.MoveTypeInternal, entity.LocationNameStock, entity.LocationNameScrap, stock.DirectionOutgoing},
		{"ajuste con origen sintético entra", entity.MoveTypeAdjustment, entity.LocationNameAdjustment, entity.LocationNameStock, stock.DirectionIncoming},
		{"ajuste hacia la contrapartida sale", entity.MoveTypeAdjustment, entity.LocationNameStock, entity.LocationNameAdjustment, stock.DirectionOutgoing},
		{"entrega entre internas no cambia el total", entity.MoveTypeDelivery, entity.LocationNameStock, "WH/Output", stock.DirectionNone},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, c.DirectionOf(tc.moveType, tc.source, tc.dest))
		})
	}
}

func TestDefaultLocations_NombresYOrden(t *testing.T) {
	locations := stock.DefaultLocations()

	assert.Len(t, locations, 10)
	assert.Equal(t, entity.LocationNameVendor, locations[0].Name)
	assert.Equal(t, entity.LocationNameStock, locations[2].Name)
	assert.Equal(t, entity.LocationNameScrap, locations[9].Name)
}

func TestReserved_ExcluyendoOperacion(t *testing.T) {
	moves := []*entity.StockMove{
		{ID: "m1", Type: entity.MoveTypeDelivery, Status: entity.StatusReady,
			Lines: []entity.StockMoveLine{{ProductID: "p1", Quantity: 10}}},
		{ID: "m2", Type: entity.MoveTypeDelivery, Status: entity.StatusReady,
			Lines: []entity.StockMoveLine{{ProductID: "p1", Quantity: 10}}},
	}

	assert.Equal(t, 20, stock.Reserved(moves, "p1"))
	assert.Equal(t, 10, stock.ReservedExcluding(moves, "p1", "m2"))
}
