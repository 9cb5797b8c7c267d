package usecase_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/application/usecase"
	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// CRUD de operaciones de stock
// ──────────────────────────────────────────────────────────────────────────────

func TestMoveCreate_NaceEnDraftConReferencia(t *testing.T) {
	store := newStore(t,
		[]*entity.Product{{ID: "p1", Name: "Office Desk", SKU: "FURN-DESK-001", Tracking: entity.TrackingNone}},
		nil,
	)
	uc := usecase.NewMoveUseCase(store)

	out, err := uc.Create(context.Background(), dto.MoveRequest{
		Type:           entity.MoveTypeReceipt,
		Contact:        "Azure Interior",
		SourceLocation: entity.LocationNameVendor,
		DestLocation:   entity.LocationNameStock,
		Lines:          []dto.MoveLineRequest{{ProductID: "p1", Quantity: 10}},
	})
	require.NoError(t, err)

	assert.Equal(t, entity.StatusDraft, out.Status)
	assert.True(t, strings.HasPrefix(out.Reference, "WH/IN/"), "referencia %q", out.Reference)
	require.Len(t, out.Lines, 1)
	assert.Equal(t, "Office Desk", out.Lines[0].ProductName,
		"el nombre del producto se copia a la línea")
}

// Un producto con seguimiento exige lote/serial en la línea.
func TestMoveCreate_LoteObligatorioConSeguimiento(t *testing.T) {
	store := newStore(t,
		[]*entity.Product{{ID: "p1", Name: "Steel Rod", SKU: "RAW-ST-10", Tracking: entity.TrackingLot}},
		nil,
	)
	uc := usecase.NewMoveUseCase(store)

	req := dto.MoveRequest{
		Type:           entity.MoveTypeReceipt,
		SourceLocation: entity.LocationNameVendor,
		DestLocation:   entity.LocationNameStock,
		Lines:          []dto.MoveLineRequest{{ProductID: "p1", Quantity: 10}},
	}
	_, err := uc.Create(context.Background(), req)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	req.Lines[0].LotNumber = "LOT-ST-01"
	_, err = uc.Create(context.Background(), req)
	assert.NoError(t, err)
}

func TestMoveCreate_Validaciones(t *testing.T) {
	store := newStore(t,
		[]*entity.Product{{ID: "p1", Name: "Office Desk", SKU: "FURN-DESK-001"}},
		nil,
	)
	uc := usecase.NewMoveUseCase(store)

	base := dto.MoveRequest{
		Type:           entity.MoveTypeDelivery,
		SourceLocation: entity.LocationNameStock,
		DestLocation:   entity.LocationNameCustomer,
		Lines:          []dto.MoveLineRequest{{ProductID: "p1", Quantity: 5}},
	}

	bad := base
	bad.Type = "Tipo Inventado"
	_, err := uc.Create(context.Background(), bad)
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "tipo desconocido")

	bad = base
	bad.Lines = nil
	_, err = uc.Create(context.Background(), bad)
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "sin líneas")

	bad = base
	bad.Lines = []dto.MoveLineRequest{{ProductID: "p1", Quantity: 0}}
	_, err = uc.Create(context.Background(), bad)
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "cantidad no positiva")

	bad = base
	bad.Lines = []dto.MoveLineRequest{{ProductID: "fantasma", Quantity: 5}}
	_, err = uc.Create(context.Background(), bad)
	assert.ErrorIs(t, err, domain.ErrNotFound, "producto inexistente")
}

func TestMoveList_Filtros(t *testing.T) {
	store := newStore(t, nil, []*entity.StockMove{
		{ID: "m1", Reference: "WH/IN/0001", Type: entity.MoveTypeReceipt, Status: entity.StatusDone, Contact: "Azure Interior"},
		{ID: "m2", Reference: "WH/OUT/0001", Type: entity.MoveTypeDelivery, Status: entity.StatusReady, Contact: "Deco Addict"},
		{ID: "m3", Reference: "WH/OUT/0002", Type: entity.MoveTypeDelivery, Status: entity.StatusWaiting, Contact: "MegaCorp"},
	})
	uc := usecase.NewMoveUseCase(store)

	out, err := uc.List(context.Background(), entity.MoveTypeDelivery, "", "")
	require.NoError(t, err)
	assert.Len(t, out, 2)

	out, err = uc.List(context.Background(), "", entity.StatusReady, "")
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "m2", out[0].ID)

	out, err = uc.List(context.Background(), "", "", "mega")
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "m3", out[0].ID)
}

// Una operación abierta con fecha programada vencida se marca atrasada.
func TestMoveList_MarcaAtraso(t *testing.T) {
	store := newStore(t, nil, []*entity.StockMove{
		{ID: "m1", Type: entity.MoveTypeDelivery, Status: entity.StatusReady, ScheduleDate: "2020-01-01"},
		{ID: "m2", Type: entity.MoveTypeDelivery, Status: entity.StatusDone, ScheduleDate: "2020-01-01"},
	})
	uc := usecase.NewMoveUseCase(store)

	out, err := uc.List(context.Background(), "", "", "")
	require.NoError(t, err)
	require.Len(t, out, 2)

	byID := map[string]dto.MoveResponse{out[0].ID: out[0], out[1].ID: out[1]}
	assert.True(t, byID["m1"].Late, "abierta y vencida")
	assert.False(t, byID["m2"].Late, "Done nunca está atrasada")
}

func TestMoveUpdate_DoneEsInmutable(t *testing.T) {
	store := newStore(t,
		[]*entity.Product{{ID: "p1", Name: "Office Desk", SKU: "FURN-DESK-001"}},
		[]*entity.StockMove{{
			ID: "m1", Type: entity.MoveTypeDelivery, Status: entity.StatusDone,
			SourceLocation: entity.LocationNameStock, DestLocation: entity.LocationNameCustomer,
			Lines: []entity.StockMoveLine{{ID: "l1", ProductID: "p1", Quantity: 5}},
		}},
	)
	uc := usecase.NewMoveUseCase(store)

	_, err := uc.Update(context.Background(), "m1", dto.MoveRequest{
		Type:           entity.MoveTypeDelivery,
		SourceLocation: entity.LocationNameStock,
		DestLocation:   entity.LocationNameCustomer,
		Lines:          []dto.MoveLineRequest{{ProductID: "p1", Quantity: 9}},
	})
	assert.ErrorIs(t, err, domain.ErrMoveDone)
}

// Borrar un ID inexistente es un no-op.
func TestMoveDelete_InexistenteEsNoOp(t *testing.T) {
	store := newStore(t, nil, []*entity.StockMove{
		{ID: "m1", Type: entity.MoveTypeReceipt, Status: entity.StatusDraft},
	})
	uc := usecase.NewMoveUseCase(store)

	require.NoError(t, uc.Delete(context.Background(), "no-existe"))

	moves, err := store.Moves()
	require.NoError(t, err)
	assert.Len(t, moves, 1)
}
