// Package analytics agrega los indicadores del tablero a partir de las
// colecciones crudas. Ningún agregado se almacena: todo se deriva al vuelo.
package analytics

import (
	"context"
	"time"

	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

// DashboardUseCase calcula los KPI del tablero.
type DashboardUseCase struct {
	snapRepo repository.SnapshotRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(snapRepo repository.SnapshotRepository) *DashboardUseCase {
	return &DashboardUseCase{snapRepo: snapRepo}
}

// GetKPIs recorre productos y operaciones y devuelve los siete agregados.
// Una operación cuenta como atrasada si está abierta (Draft, Waiting o Ready)
// y su fecha programada ya pasó.
func (uc *DashboardUseCase) GetKPIs(ctx context.Context) (*dto.KPIMetrics, error) {
	products, err := uc.snapRepo.Products()
	if err != nil {
		return nil, err
	}
	moves, err := uc.snapRepo.Moves()
	if err != nil {
		return nil, err
	}

	today := time.Now().Format(entity.DateLayout)
	kpis := &dto.KPIMetrics{TotalProducts: len(products)}

	for _, p := range products {
		if p.IsLowStock() {
			kpis.LowStockItems++
		}
	}

	for _, m := range moves {
		late := m.IsLate(today)
		switch m.Type {
		case entity.MoveTypeReceipt:
			if late {
				kpis.ReceiptsLate++
			}
			if m.Status == entity.StatusReady || m.Status == entity.StatusDraft {
				kpis.ReceiptsToReceive++
			}
		case entity.MoveTypeDelivery:
			if late {
				kpis.DeliveriesLate++
			}
			switch m.Status {
			case entity.StatusReady:
				kpis.DeliveriesToDeliver++
			case entity.StatusWaiting, entity.StatusDraft:
				kpis.DeliveriesWaiting++
			}
		}
	}
	return kpis, nil
}
