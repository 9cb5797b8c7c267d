// Package ledger expone el libro de movimientos: el aplanado operación × línea
// con cantidades firmadas, su búsqueda y la exportación a CSV.
package ledger

import (
	"context"
	"sort"
	"strings"

	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
	"github.com/jhoicas/Almacen-api/internal/domain/stock"
)

// UseCase consultas de solo lectura sobre el libro de movimientos.
type UseCase struct {
	snapRepo repository.SnapshotRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(snapRepo repository.SnapshotRepository) *UseCase {
	return &UseCase{snapRepo: snapRepo}
}

// Rows devuelve las filas del libro, filtradas por tipo y estado de la
// operación y por búsqueda libre. La búsqueda es una subcadena sin distinguir
// mayúsculas sobre referencia, contacto, nombre de producto, SKU, lote/serial
// y estado.
func (uc *UseCase) Rows(ctx context.Context, query, moveType, status string) ([]dto.LedgerRow, error) {
	moves, err := uc.snapRepo.Moves()
	if err != nil {
		return nil, err
	}
	products, err := uc.snapRepo.Products()
	if err != nil {
		return nil, err
	}
	locations, err := uc.snapRepo.Locations()
	if err != nil {
		return nil, err
	}
	catalog := stock.NewCatalog(locations)

	skuByID := make(map[string]string, len(products))
	for _, p := range products {
		skuByID[p.ID] = p.SKU
	}

	term := strings.ToLower(query)
	rows := make([]dto.LedgerRow, 0, len(moves))
	for _, m := range moves {
		if moveType != "" && m.Type != moveType {
			continue
		}
		if status != "" && m.Status != status {
			continue
		}
		for _, line := range m.Lines {
			if term != "" && !matches(term, m, line, skuByID[line.ProductID]) {
				continue
			}
			rows = append(rows, toRow(catalog, m, line))
		}
	}
	return rows, nil
}

// History devuelve los movimientos de un producto, del más reciente al más
// antiguo. Las fechas ISO se comparan como texto.
func (uc *UseCase) History(ctx context.Context, productID string) ([]dto.LedgerRow, error) {
	moves, err := uc.snapRepo.Moves()
	if err != nil {
		return nil, err
	}
	locations, err := uc.snapRepo.Locations()
	if err != nil {
		return nil, err
	}
	catalog := stock.NewCatalog(locations)

	rows := make([]dto.LedgerRow, 0)
	for _, m := range moves {
		for _, line := range m.Lines {
			if line.ProductID == productID {
				rows = append(rows, toRow(catalog, m, line))
			}
		}
	}
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].Date > rows[j].Date })
	return rows, nil
}

func matches(term string, m *entity.StockMove, line entity.StockMoveLine, sku string) bool {
	for _, field := range []string{m.Reference, m.Contact, line.ProductName, sku, line.LotNumber, m.Status} {
		if strings.Contains(strings.ToLower(field), term) {
			return true
		}
	}
	return false
}

// toRow firma la cantidad según la clasificación entrante/saliente de la
// operación. Un traslado interno queda sin signo (cantidad positiva plana).
func toRow(catalog stock.Catalog, m *entity.StockMove, line entity.StockMoveLine) dto.LedgerRow {
	qty := line.Quantity
	if catalog.DirectionOf(m.Type, m.SourceLocation, m.DestLocation) == stock.DirectionOutgoing {
		qty = -qty
	}
	return dto.LedgerRow{
		Reference:      m.Reference,
		Date:           m.Date,
		Contact:        m.Contact,
		ProductID:      line.ProductID,
		ProductName:    line.ProductName,
		LotNumber:      line.LotNumber,
		SourceLocation: m.SourceLocation,
		DestLocation:   m.DestLocation,
		Quantity:       qty,
		Status:         m.Status,
	}
}
