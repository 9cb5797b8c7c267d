package inventory

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

// AdjustQuantity fija el stock total de un producto en newQuantity mediante
// una operación de ajuste sintética que nace ya confirmada (los ajustes son
// instantáneos, no pasan por el flujo Draft/Ready). Con diff cero no hace
// nada y devuelve nil. El stock total se fija directamente en newQuantity
// (no vía delta entrante/saliente) para garantizar convergencia exacta.
func (uc *StockUseCase) AdjustQuantity(ctx context.Context, productID string, newQuantity int) (*entity.StockMove, error) {
	if newQuantity < 0 {
		return nil, domain.ErrInvalidInput
	}

	var created *entity.StockMove
	err := uc.txRunner.Run(ctx, func(snap repository.SnapshotRepository) error {
		products, err := snap.Products()
		if err != nil {
			return err
		}
		product := findProduct(products, productID)
		if product == nil {
			return domain.ErrNotFound
		}

		diff := newQuantity - product.StockLevel
		if diff == 0 {
			return nil
		}

		moves, err := snap.Moves()
		if err != nil {
			return err
		}

		now := time.Now()
		source, dest := entity.LocationNameAdjustment, entity.LocationNameStock
		if diff < 0 {
			source, dest = dest, source
		}
		lotNumber := ""
		if product.RequiresLot() {
			lotNumber = "Auto-Adj"
		}
		move := &entity.StockMove{
			ID:             uuid.New().String(),
			Reference:      fmt.Sprintf("INV/ADJ/%04d", now.Unix()%10000),
			Type:           entity.MoveTypeAdjustment,
			Status:         entity.StatusDone,
			SourceLocation: source,
			DestLocation:   dest,
			Date:           now.Format(entity.DateLayout),
			Lines: []entity.StockMoveLine{{
				ID:          uuid.New().String(),
				ProductID:   product.ID,
				ProductName: product.Name,
				Quantity:    abs(diff),
				LotNumber:   lotNumber,
			}},
		}

		// Desglose por ubicación: el ajuste entra o sale por la bodega por defecto.
		if product.LocationStock == nil {
			product.LocationStock = make(map[string]int)
		}
		product.LocationStock[entity.LocationNameStock] += diff
		if product.LocationStock[entity.LocationNameStock] <= 0 {
			delete(product.LocationStock, entity.LocationNameStock)
		}
		product.StockLevel = newQuantity

		// Las operaciones nuevas se anteponen, como en el tablero.
		moves = append([]*entity.StockMove{move}, moves...)
		if err := snap.SaveProducts(products); err != nil {
			return err
		}
		if err := snap.SaveMoves(moves); err != nil {
			return err
		}
		created = move
		return nil
	})
	return created, err
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
