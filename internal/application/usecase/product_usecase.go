package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
	"github.com/jhoicas/Almacen-api/internal/domain/stock"
)

// ProductUseCase CRUD del catálogo de productos con los derivados del motor
// (reserva, libre para usar, valorización, bajo stock).
type ProductUseCase struct {
	snapRepo repository.SnapshotRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(snapRepo repository.SnapshotRepository) *ProductUseCase {
	return &ProductUseCase{snapRepo: snapRepo}
}

// List devuelve el catálogo completo con derivados, opcionalmente filtrado
// por búsqueda (subcadena sobre nombre y SKU, sin distinguir mayúsculas).
func (uc *ProductUseCase) List(ctx context.Context, query string) ([]dto.ProductResponse, error) {
	products, err := uc.snapRepo.Products()
	if err != nil {
		return nil, err
	}
	moves, err := uc.snapRepo.Moves()
	if err != nil {
		return nil, err
	}

	term := strings.ToLower(query)
	out := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		if term != "" &&
			!strings.Contains(strings.ToLower(p.Name), term) &&
			!strings.Contains(strings.ToLower(p.SKU), term) {
			continue
		}
		out = append(out, toProductResponse(p, moves))
	}
	return out, nil
}

// Get devuelve un producto por ID con sus derivados.
func (uc *ProductUseCase) Get(ctx context.Context, id string) (*dto.ProductResponse, error) {
	products, err := uc.snapRepo.Products()
	if err != nil {
		return nil, err
	}
	for _, p := range products {
		if p.ID == id {
			moves, err := uc.snapRepo.Moves()
			if err != nil {
				return nil, err
			}
			resp := toProductResponse(p, moves)
			return &resp, nil
		}
	}
	return nil, domain.ErrNotFound
}

// Create da de alta un producto. La cantidad inicial siembra el desglose en la
// ubicación por defecto. El SKU no se fuerza único (igual que el tablero);
// la unicidad es una intención, no una restricción.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.ProductRequest) (*dto.ProductResponse, error) {
	if in.Name == "" || in.SKU == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.StockLevel < 0 || in.MinStock < 0 {
		return nil, domain.ErrInvalidInput
	}
	location := in.Location
	if location == "" {
		location = entity.LocationNameStock
	}
	tracking := in.Tracking
	if tracking == "" {
		tracking = entity.TrackingNone
	}

	product := &entity.Product{
		ID:         uuid.New().String(),
		Name:       in.Name,
		SKU:        in.SKU,
		Category:   in.Category,
		UoM:        in.UoM,
		StockLevel: in.StockLevel,
		Cost:       in.Cost,
		Location:   location,
		MinStock:   in.MinStock,
		Tracking:   tracking,
	}
	if in.StockLevel > 0 {
		product.LocationStock = map[string]int{location: in.StockLevel}
	} else {
		product.LocationStock = map[string]int{}
	}

	products, err := uc.snapRepo.Products()
	if err != nil {
		return nil, err
	}
	products = append(products, product)
	if err := uc.snapRepo.SaveProducts(products); err != nil {
		return nil, err
	}
	resp := toProductResponse(product, nil)
	return &resp, nil
}

// Update edita los campos descriptivos. El stock no se modifica por esta vía:
// las cantidades se manejan vía operaciones o ajuste rápido.
func (uc *ProductUseCase) Update(ctx context.Context, id string, in dto.ProductRequest) (*dto.ProductResponse, error) {
	if in.Name == "" || in.SKU == "" {
		return nil, domain.ErrInvalidInput
	}
	products, err := uc.snapRepo.Products()
	if err != nil {
		return nil, err
	}
	product := findByID(products, id)
	if product == nil {
		return nil, domain.ErrNotFound
	}

	product.Name = in.Name
	product.SKU = in.SKU
	product.Category = in.Category
	product.UoM = in.UoM
	product.Cost = in.Cost
	product.MinStock = in.MinStock
	if in.Location != "" {
		product.Location = in.Location
	}
	if in.Tracking != "" {
		product.Tracking = in.Tracking
	}

	if err := uc.snapRepo.SaveProducts(products); err != nil {
		return nil, err
	}
	moves, err := uc.snapRepo.Moves()
	if err != nil {
		return nil, err
	}
	resp := toProductResponse(product, moves)
	return &resp, nil
}

// Delete elimina un producto del catálogo. Las líneas históricas que lo
// referencian se conservan como rastro (sin protección en cascada).
func (uc *ProductUseCase) Delete(ctx context.Context, id string) error {
	products, err := uc.snapRepo.Products()
	if err != nil {
		return err
	}
	kept := products[:0]
	found := false
	for _, p := range products {
		if p.ID == id {
			found = true
			continue
		}
		kept = append(kept, p)
	}
	if !found {
		return domain.ErrNotFound
	}
	return uc.snapRepo.SaveProducts(kept)
}

func findByID(products []*entity.Product, id string) *entity.Product {
	for _, p := range products {
		if p.ID == id {
			return p
		}
	}
	return nil
}

func toProductResponse(p *entity.Product, moves []*entity.StockMove) dto.ProductResponse {
	reserved := stock.Reserved(moves, p.ID)
	return dto.ProductResponse{
		ID:            p.ID,
		Name:          p.Name,
		SKU:           p.SKU,
		Category:      p.Category,
		UoM:           p.UoM,
		StockLevel:    p.StockLevel,
		LocationStock: p.LocationStock,
		Cost:          p.Cost,
		Location:      p.Location,
		MinStock:      p.MinStock,
		Tracking:      p.Tracking,
		Reserved:      reserved,
		FreeToUse:     p.StockLevel - reserved,
		Valuation:     p.Valuation(),
		LowStock:      p.IsLowStock(),
	}
}
