package stock

import "github.com/jhoicas/Almacen-api/internal/domain/entity"

// Reserved suma las cantidades reservadas de un producto: líneas de entregas
// en estado Ready. La reserva es derivada, nunca se almacena por separado.
func Reserved(moves []*entity.StockMove, productID string) int {
	return ReservedExcluding(moves, productID, "")
}

// ReservedExcluding calcula la reserva ignorando una operación concreta
// (usado por checkAvailability para excluir la operación evaluada).
func ReservedExcluding(moves []*entity.StockMove, productID, excludeMoveID string) int {
	total := 0
	for _, m := range moves {
		if m.ID == excludeMoveID {
			continue
		}
		if m.Status != entity.StatusReady || m.Type != entity.MoveTypeDelivery {
			continue
		}
		for _, line := range m.Lines {
			if line.ProductID == productID {
				total += line.Quantity
			}
		}
	}
	return total
}
