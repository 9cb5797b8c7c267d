package usecase

import (
	"context"

	"github.com/jhoicas/Almacen-api/internal/application/inventory"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
	"github.com/jhoicas/Almacen-api/internal/seed"
)

// SettingsUseCase operaciones de configuración del tablero.
type SettingsUseCase struct {
	txRunner inventory.TxRunner
}

// NewSettingsUseCase construye el caso de uso.
func NewSettingsUseCase(txRunner inventory.TxRunner) *SettingsUseCase {
	return &SettingsUseCase{txRunner: txRunner}
}

// ResetDemoData restaura las tres colecciones al juego de datos de
// demostración, en una sola transacción.
func (uc *SettingsUseCase) ResetDemoData(ctx context.Context) error {
	return uc.txRunner.Run(ctx, func(snap repository.SnapshotRepository) error {
		if err := snap.SaveProducts(seed.Products()); err != nil {
			return err
		}
		if err := snap.SaveMoves(seed.Moves()); err != nil {
			return err
		}
		return snap.SaveLocations(seed.Locations())
	})
}
