package analytics_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Almacen-api/internal/application/analytics"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/infrastructure/memory"
)

func day(offset int) string {
	return time.Now().AddDate(0, 0, offset).Format(entity.DateLayout)
}

func receipt(id, status, scheduleDate string) *entity.StockMove {
	return &entity.StockMove{
		ID: id, Reference: "WH/IN/" + id, Type: entity.MoveTypeReceipt,
		Status: status, ScheduleDate: scheduleDate,
		SourceLocation: entity.LocationNameVendor, DestLocation: entity.LocationNameStock,
		Date: day(-1),
	}
}

func deliveryMove(id, status, scheduleDate string) *entity.StockMove {
	return &entity.StockMove{
		ID: id, Reference: "WH/OUT/" + id, Type: entity.MoveTypeDelivery,
		Status: status, ScheduleDate: scheduleDate,
		SourceLocation: entity.LocationNameStock, DestLocation: entity.LocationNameCustomer,
		Date: day(-1),
	}
}

func TestGetKPIs_Agregados(t *testing.T) {
	store := memory.NewStore()
	require.NoError(t, store.SaveProducts([]*entity.Product{
		{ID: "p1", Name: "A", StockLevel: 12, MinStock: 15}, // bajo stock
		{ID: "p2", Name: "B", StockLevel: 50, MinStock: 10},
		{ID: "p3", Name: "C", StockLevel: 5, MinStock: 5}, // igual al mínimo cuenta
	}))
	require.NoError(t, store.SaveMoves([]*entity.StockMove{
		receipt("r1", entity.StatusReady, day(-2)),   // atrasada y por recibir
		receipt("r2", entity.StatusDraft, day(5)),    // por recibir
		receipt("r3", entity.StatusDone, day(-9)),    // cerrada: no cuenta
		deliveryMove("d1", entity.StatusReady, day(-1)),   // atrasada y por entregar
		deliveryMove("d2", entity.StatusReady, day(3)),    // por entregar
		deliveryMove("d3", entity.StatusWaiting, day(2)),  // a la espera
		deliveryMove("d4", entity.StatusDraft, day(4)),    // a la espera
		deliveryMove("d5", entity.StatusCancelled, day(-5)), // cancelada: no cuenta
	}))

	uc := analytics.NewDashboardUseCase(store)
	kpis, err := uc.GetKPIs(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 3, kpis.TotalProducts)
	assert.Equal(t, 2, kpis.LowStockItems)
	assert.Equal(t, 1, kpis.ReceiptsLate)
	assert.Equal(t, 2, kpis.ReceiptsToReceive)
	assert.Equal(t, 1, kpis.DeliveriesLate)
	assert.Equal(t, 2, kpis.DeliveriesToDeliver)
	assert.Equal(t, 2, kpis.DeliveriesWaiting)
}

// Una operación abierta sin fecha programada cuenta como atrasada: el vacío
// compara lexicalmente menor que cualquier fecha ISO.
func TestGetKPIs_SinFechaProgramadaCuentaAtrasada(t *testing.T) {
	store := memory.NewStore()
	require.NoError(t, store.SaveProducts(nil))
	require.NoError(t, store.SaveMoves([]*entity.StockMove{
		receipt("r1", entity.StatusReady, ""),
	}))

	uc := analytics.NewDashboardUseCase(store)
	kpis, err := uc.GetKPIs(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, kpis.ReceiptsLate)
}

func TestGetKPIs_Vacio(t *testing.T) {
	store := memory.NewStore()
	uc := analytics.NewDashboardUseCase(store)

	kpis, err := uc.GetKPIs(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, kpis.TotalProducts)
	assert.Equal(t, 0, kpis.LowStockItems)
}
