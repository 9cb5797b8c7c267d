package inventory

import (
	"context"

	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando un
// repositorio de snapshot atado a esa tx. Garantiza que las escrituras de
// productos y operaciones de un mismo caso de uso se confirman juntas o
// fallan juntas.
type TxRunner interface {
	Run(ctx context.Context, fn func(snap repository.SnapshotRepository) error) error
}
