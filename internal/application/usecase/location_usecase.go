package usecase

import (
	"context"

	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

// LocationUseCase administra el catálogo de ubicaciones (lista ordenada).
type LocationUseCase struct {
	snapRepo repository.SnapshotRepository
}

// NewLocationUseCase construye el caso de uso.
func NewLocationUseCase(snapRepo repository.SnapshotRepository) *LocationUseCase {
	return &LocationUseCase{snapRepo: snapRepo}
}

// List devuelve las ubicaciones en su orden configurado.
func (uc *LocationUseCase) List(ctx context.Context) ([]dto.LocationResponse, error) {
	locations, err := uc.snapRepo.Locations()
	if err != nil {
		return nil, err
	}
	out := make([]dto.LocationResponse, 0, len(locations))
	for _, loc := range locations {
		out = append(out, dto.LocationResponse{Name: loc.Name, Kind: string(loc.Kind)})
	}
	return out, nil
}

// Add registra una ubicación nueva al final del catálogo.
func (uc *LocationUseCase) Add(ctx context.Context, in dto.LocationRequest) error {
	if in.Name == "" {
		return domain.ErrInvalidInput
	}
	kind, ok := parseKind(in.Kind)
	if !ok {
		return domain.ErrInvalidInput
	}
	locations, err := uc.snapRepo.Locations()
	if err != nil {
		return err
	}
	for _, loc := range locations {
		if loc.Name == in.Name {
			return domain.ErrDuplicate
		}
	}
	locations = append(locations, entity.Location{Name: in.Name, Kind: kind})
	return uc.snapRepo.SaveLocations(locations)
}

// Remove quita una ubicación del catálogo. Rechaza la eliminación si algún
// producto la usa como ubicación por defecto o conserva stock desglosado ahí.
func (uc *LocationUseCase) Remove(ctx context.Context, name string) error {
	products, err := uc.snapRepo.Products()
	if err != nil {
		return err
	}
	for _, p := range products {
		if p.Location == name {
			return domain.ErrLocationInUse
		}
		if _, ok := p.LocationStock[name]; ok {
			return domain.ErrLocationInUse
		}
	}
	locations, err := uc.snapRepo.Locations()
	if err != nil {
		return err
	}
	kept := locations[:0]
	for _, loc := range locations {
		if loc.Name != name {
			kept = append(kept, loc)
		}
	}
	return uc.snapRepo.SaveLocations(kept)
}

func parseKind(s string) (entity.LocationKind, bool) {
	switch entity.LocationKind(s) {
	case entity.LocationInternal, entity.LocationVendor, entity.LocationCustomer,
		entity.LocationScrap, entity.LocationAdjustment:
		return entity.LocationKind(s), true
	case "":
		// Sin tipo explícito se asume bodega interna.
		return entity.LocationInternal, true
	}
	return "", false
}
