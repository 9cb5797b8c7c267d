package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/application/usecase"
	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
)

func TestLocationAdd_DuplicadaRechazada(t *testing.T) {
	store := newStore(t, nil, nil)
	uc := usecase.NewLocationUseCase(store)

	err := uc.Add(context.Background(), dto.LocationRequest{Name: entity.LocationNameStock})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

// Sin tipo explícito la ubicación nueva se asume interna y va al final.
func TestLocationAdd_AlFinalComoInterna(t *testing.T) {
	store := newStore(t, nil, nil)
	uc := usecase.NewLocationUseCase(store)

	require.NoError(t, uc.Add(context.Background(), dto.LocationRequest{Name: "WH/Devoluciones"}))

	locations, err := store.Locations()
	require.NoError(t, err)
	last := locations[len(locations)-1]
	assert.Equal(t, "WH/Devoluciones", last.Name)
	assert.Equal(t, entity.LocationInternal, last.Kind)
}

func TestLocationAdd_TipoInvalidoRechazado(t *testing.T) {
	uc := usecase.NewLocationUseCase(newStore(t, nil, nil))

	err := uc.Add(context.Background(), dto.LocationRequest{Name: "X", Kind: "galaxia"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// No se puede quitar una ubicación que algún producto usa como bodega por
// defecto o donde conserva stock desglosado.
func TestLocationRemove_EnUsoRechazada(t *testing.T) {
	store := newStore(t, []*entity.Product{
		{ID: "p1", Name: "A", SKU: "A", Location: entity.LocationNameStock},
		{ID: "p2", Name: "B", SKU: "B", Location: "WH/Input",
			LocationStock: map[string]int{"WH/Showroom": 2}},
	}, nil)
	uc := usecase.NewLocationUseCase(store)

	assert.ErrorIs(t, uc.Remove(context.Background(), entity.LocationNameStock), domain.ErrLocationInUse)
	assert.ErrorIs(t, uc.Remove(context.Background(), "WH/Showroom"), domain.ErrLocationInUse)
}

func TestLocationRemove_SinUsoSeElimina(t *testing.T) {
	store := newStore(t, nil, nil)
	uc := usecase.NewLocationUseCase(store)

	require.NoError(t, uc.Remove(context.Background(), "WH/Production"))

	locations, err := store.Locations()
	require.NoError(t, err)
	for _, loc := range locations {
		assert.NotEqual(t, "WH/Production", loc.Name)
	}
}
