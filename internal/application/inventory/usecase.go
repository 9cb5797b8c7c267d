package inventory

import (
	"context"

	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
	"github.com/jhoicas/Almacen-api/internal/domain/stock"
)

// StockUseCase es el motor de contabilidad de stock: reserva/disponibilidad,
// confirmación de operaciones (validate), cancelación y ajustes rápidos.
// Toda mutación sigue el patrón leer-colección-completa -> calcular ->
// escribir-colección-completa dentro de una transacción.
type StockUseCase struct {
	txRunner TxRunner
	snapRepo repository.SnapshotRepository // lecturas fuera de transacción
}

// NewStockUseCase construye el motor.
func NewStockUseCase(txRunner TxRunner, snapRepo repository.SnapshotRepository) *StockUseCase {
	return &StockUseCase{txRunner: txRunner, snapRepo: snapRepo}
}

// Reserved devuelve la cantidad reservada de un producto: suma de líneas en
// entregas con estado Ready. Derivada en cada llamada, nunca almacenada.
func (uc *StockUseCase) Reserved(ctx context.Context, productID string) (int, error) {
	moves, err := uc.snapRepo.Moves()
	if err != nil {
		return 0, err
	}
	return stock.Reserved(moves, productID), nil
}

// FreeToUse devuelve StockLevel - Reserved para un producto. El resultado
// puede ser negativo si hay sobre-reserva: se devuelve sin recortar para que
// el llamador pueda mostrar la advertencia.
func (uc *StockUseCase) FreeToUse(ctx context.Context, productID string) (int, error) {
	products, err := uc.snapRepo.Products()
	if err != nil {
		return 0, err
	}
	product := findProduct(products, productID)
	if product == nil {
		return 0, domain.ErrNotFound
	}
	moves, err := uc.snapRepo.Moves()
	if err != nil {
		return 0, err
	}
	return product.StockLevel - stock.Reserved(moves, productID), nil
}

// CheckAvailability reevalúa la disponibilidad de una entrega y la mueve a
// Ready o Waiting. Es una recomputación completa: para cada línea compara el
// stock total menos lo reservado por las demás entregas Ready contra la
// cantidad pedida. Operaciones que no son entregas quedan intactas.
// Done y Cancelled son terminales: reevaluar una devuelve ErrMoveDone.
// Devuelve el estado resultante. Idempotente sin cambios de estado intermedios.
func (uc *StockUseCase) CheckAvailability(ctx context.Context, moveID string) (string, error) {
	var status string
	err := uc.txRunner.Run(ctx, func(snap repository.SnapshotRepository) error {
		moves, err := snap.Moves()
		if err != nil {
			return err
		}
		move := findMove(moves, moveID)
		if move == nil {
			return domain.ErrNotFound
		}
		if move.Status == entity.StatusDone || move.Status == entity.StatusCancelled {
			return domain.ErrMoveDone
		}
		if move.Type != entity.MoveTypeDelivery {
			status = move.Status
			return nil
		}
		products, err := snap.Products()
		if err != nil {
			return err
		}

		allAvailable := true
		for _, line := range move.Lines {
			available := 0
			if p := findProduct(products, line.ProductID); p != nil {
				available = p.StockLevel
			}
			available -= stock.ReservedExcluding(moves, line.ProductID, moveID)
			if available < line.Quantity {
				allAvailable = false
			}
		}

		status = entity.StatusWaiting
		if allAvailable {
			status = entity.StatusReady
		}
		move.Status = status
		return snap.SaveMoves(moves)
	})
	return status, err
}

// ValidateMove confirma una operación: aplica el efecto de cada línea sobre el
// producto y deja la operación en Done (terminal). Confirmar una operación ya
// Done es un no-op (guarda de idempotencia). Producto y operación se escriben
// en la misma transacción.
//
// Reglas por línea:
//  1. si el origen tiene entrada en LocationStock se descuenta (se elimina al
//     llegar a cero o menos); sin entrada no se fuerza negativo
//  2. si el destino es una bodega interna se suma en LocationStock
//  3. el stock total se mueve según la clasificación entrante/saliente; los
//     ajustes se firman por su contrapartida de origen
//  4. un traslado entre bodegas internas no cambia el stock total
func (uc *StockUseCase) ValidateMove(ctx context.Context, moveID string) error {
	return uc.txRunner.Run(ctx, func(snap repository.SnapshotRepository) error {
		moves, err := snap.Moves()
		if err != nil {
			return err
		}
		move := findMove(moves, moveID)
		if move == nil {
			return domain.ErrNotFound
		}
		if move.Status == entity.StatusDone {
			return nil
		}
		products, err := snap.Products()
		if err != nil {
			return err
		}
		locations, err := snap.Locations()
		if err != nil {
			return err
		}
		catalog := stock.NewCatalog(locations)

		for _, line := range move.Lines {
			product := findProduct(products, line.ProductID)
			if product == nil {
				// Producto eliminado después de crear la línea: la línea queda
				// como rastro histórico y no afecta a nadie.
				continue
			}
			applyLine(catalog, product, move, line.Quantity)
		}

		move.Status = entity.StatusDone
		if err := snap.SaveProducts(products); err != nil {
			return err
		}
		return snap.SaveMoves(moves)
	})
}

// CancelMove cancela una operación no confirmada. El stock no se toca; la
// reserva desaparece sola porque se deriva del estado Ready.
func (uc *StockUseCase) CancelMove(ctx context.Context, moveID string) error {
	return uc.txRunner.Run(ctx, func(snap repository.SnapshotRepository) error {
		moves, err := snap.Moves()
		if err != nil {
			return err
		}
		move := findMove(moves, moveID)
		if move == nil {
			return domain.ErrNotFound
		}
		if move.Status == entity.StatusDone {
			return domain.ErrMoveDone
		}
		move.Status = entity.StatusCancelled
		return snap.SaveMoves(moves)
	})
}

// applyLine aplica las reglas 1-4 de una línea confirmada sobre el producto.
func applyLine(catalog stock.Catalog, product *entity.Product, move *entity.StockMove, qty int) {
	if product.LocationStock == nil {
		product.LocationStock = make(map[string]int)
	}

	// 1. descontar del origen rastreado
	if _, ok := product.LocationStock[move.SourceLocation]; ok {
		product.LocationStock[move.SourceLocation] -= qty
		if product.LocationStock[move.SourceLocation] <= 0 {
			delete(product.LocationStock, move.SourceLocation)
		}
	}

	// 2. sumar en destino interno
	if catalog.IsInternal(move.DestLocation) {
		product.LocationStock[move.DestLocation] += qty
	}

	// 3 y 4. efecto sobre el stock total
	switch catalog.DirectionOf(move.Type, move.SourceLocation, move.DestLocation) {
	case stock.DirectionIncoming:
		product.StockLevel += qty
	case stock.DirectionOutgoing:
		product.StockLevel -= qty
	}
}

func findProduct(products []*entity.Product, id string) *entity.Product {
	for _, p := range products {
		if p.ID == id {
			return p
		}
	}
	return nil
}

func findMove(moves []*entity.StockMove, id string) *entity.StockMove {
	for _, m := range moves {
		if m.ID == id {
			return m
		}
	}
	return nil
}
