// Package memory implementación en memoria del puerto de colecciones, con la
// misma semántica de commit que el adaptador PostgreSQL. La usan los tests y
// sirve como almacén efímero en herramientas de desarrollo.
package memory

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

var _ repository.SnapshotRepository = (*Store)(nil)

// Store guarda las tres colecciones serializadas, igual que la tabla kv_store:
// cada lectura deserializa una copia fresca, cada escritura reemplaza el
// documento completo.
type Store struct {
	mu        sync.Mutex
	products  []byte
	moves     []byte
	locations []byte
}

// NewStore construye un almacén vacío.
func NewStore() *Store {
	return &Store{}
}

// Products lee el catálogo completo de productos.
func (s *Store) Products() ([]*entity.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var products []*entity.Product
	if err := decode(s.products, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// SaveProducts escribe el catálogo completo de productos.
func (s *Store) SaveProducts(products []*entity.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return encode(&s.products, products)
}

// Moves lee el historial completo de operaciones.
func (s *Store) Moves() ([]*entity.StockMove, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var moves []*entity.StockMove
	if err := decode(s.moves, &moves); err != nil {
		return nil, err
	}
	return moves, nil
}

// SaveMoves escribe el historial completo de operaciones.
func (s *Store) SaveMoves(moves []*entity.StockMove) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return encode(&s.moves, moves)
}

// Locations lee el catálogo de ubicaciones.
func (s *Store) Locations() ([]entity.Location, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var locations []entity.Location
	if err := decode(s.locations, &locations); err != nil {
		return nil, err
	}
	return locations, nil
}

// SaveLocations escribe el catálogo de ubicaciones.
func (s *Store) SaveLocations(locations []entity.Location) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return encode(&s.locations, locations)
}

// Run emula la transacción del adaptador PostgreSQL: el callback trabaja
// sobre una copia y solo un retorno sin error publica los cambios.
func (s *Store) Run(ctx context.Context, fn func(snap repository.SnapshotRepository) error) error {
	s.mu.Lock()
	clone := &Store{
		products:  s.products,
		moves:     s.moves,
		locations: s.locations,
	}
	s.mu.Unlock()

	if err := fn(clone); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.products = clone.products
	s.moves = clone.moves
	s.locations = clone.locations
	return nil
}

func decode(raw []byte, dest any) error {
	if raw == nil {
		return nil
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return fmt.Errorf("deserializar colección: %w", err)
	}
	return nil
}

func encode(dest *[]byte, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("serializar colección: %w", err)
	}
	*dest = raw
	return nil
}
