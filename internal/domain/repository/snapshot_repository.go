package repository

import "github.com/jhoicas/Almacen-api/internal/domain/entity"

// SnapshotRepository define el puerto de persistencia para las tres
// colecciones del inventario. El motor sigue el patrón del tablero original:
// leer la colección completa, calcular la nueva y escribirla completa.
// Usado dentro de transacciones cuando una operación toca varias colecciones.
type SnapshotRepository interface {
	Products() ([]*entity.Product, error)
	SaveProducts(products []*entity.Product) error
	Moves() ([]*entity.StockMove, error)
	SaveMoves(moves []*entity.StockMove) error
	Locations() ([]entity.Location, error)
	SaveLocations(locations []entity.Location) error
}
