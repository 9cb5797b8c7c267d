package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
	"github.com/jhoicas/Almacen-api/internal/seed"
	"github.com/jhoicas/Almacen-api/pkg/logger"
)

// Claves de las colecciones en kv_store. El tablero guarda cada colección
// completa como un único documento JSON.
const (
	keyProducts  = "stock_products"
	keyMoves     = "stock_moves"
	keyLocations = "stock_locations"
)

// Querier es el subconjunto de pgx que el almacén necesita. Lo implementan
// tanto *pgxpool.Pool como pgx.Tx, así el mismo adaptador sirve dentro y
// fuera de una transacción.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

var _ repository.SnapshotRepository = (*KVStore)(nil)

// KVStore implementación de SnapshotRepository sobre la tabla kv_store:
// cada colección se lee y escribe completa como JSONB.
type KVStore struct {
	db Querier
}

// NewKVStore construye el adaptador sobre un pool o una transacción.
func NewKVStore(db Querier) *KVStore {
	return &KVStore{db: db}
}

// Products lee el catálogo completo de productos.
func (s *KVStore) Products() ([]*entity.Product, error) {
	var products []*entity.Product
	if err := s.get(keyProducts, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// SaveProducts escribe el catálogo completo de productos.
func (s *KVStore) SaveProducts(products []*entity.Product) error {
	return s.set(keyProducts, products)
}

// Moves lee el historial completo de operaciones.
func (s *KVStore) Moves() ([]*entity.StockMove, error) {
	var moves []*entity.StockMove
	if err := s.get(keyMoves, &moves); err != nil {
		return nil, err
	}
	return moves, nil
}

// SaveMoves escribe el historial completo de operaciones.
func (s *KVStore) SaveMoves(moves []*entity.StockMove) error {
	return s.set(keyMoves, moves)
}

// Locations lee el catálogo de ubicaciones.
func (s *KVStore) Locations() ([]entity.Location, error) {
	var locations []entity.Location
	if err := s.get(keyLocations, &locations); err != nil {
		return nil, err
	}
	return locations, nil
}

// SaveLocations escribe el catálogo de ubicaciones.
func (s *KVStore) SaveLocations(locations []entity.Location) error {
	return s.set(keyLocations, locations)
}

// get deserializa el documento de una clave. Una clave ausente deja el
// destino en su valor cero (colección vacía), sin error.
func (s *KVStore) get(key string, dest any) error {
	var raw []byte
	err := s.db.QueryRow(context.Background(),
		`SELECT value FROM kv_store WHERE key = $1`, key).Scan(&raw)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil
		}
		return fmt.Errorf("leer %s: %w", key, err)
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return fmt.Errorf("deserializar %s: %w", key, err)
	}
	return nil
}

// set serializa y escribe el documento completo de una clave (last write wins).
func (s *KVStore) set(key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("serializar %s: %w", key, err)
	}
	_, err = s.db.Exec(context.Background(), `
		INSERT INTO kv_store (key, value, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()`,
		key, raw)
	if err != nil {
		return fmt.Errorf("escribir %s: %w", key, err)
	}
	return nil
}

// EnsureSeed siembra las colecciones de demostración si todavía no existen.
// Solo escribe las claves ausentes, nunca pisa datos ya guardados.
func (s *KVStore) EnsureSeed(ctx context.Context, log *logger.Logger) error {
	seeded := 0
	if missing, err := s.missing(keyProducts); err != nil {
		return err
	} else if missing {
		if err := s.SaveProducts(seed.Products()); err != nil {
			return err
		}
		seeded++
	}
	if missing, err := s.missing(keyMoves); err != nil {
		return err
	} else if missing {
		if err := s.SaveMoves(seed.Moves()); err != nil {
			return err
		}
		seeded++
	}
	if missing, err := s.missing(keyLocations); err != nil {
		return err
	} else if missing {
		if err := s.SaveLocations(seed.Locations()); err != nil {
			return err
		}
		seeded++
	}
	if seeded > 0 {
		log.Info().Int("colecciones", seeded).Msg("datos de demostración sembrados")
	}
	return nil
}

func (s *KVStore) missing(key string) (bool, error) {
	var exists bool
	err := s.db.QueryRow(context.Background(),
		`SELECT EXISTS (SELECT 1 FROM kv_store WHERE key = $1)`, key).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("verificar %s: %w", key, err)
	}
	return !exists, nil
}
