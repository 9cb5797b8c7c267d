package stock

import (
	"strings"

	"github.com/jhoicas/Almacen-api/internal/domain/entity"
)

// Catalog resuelve el tipo de una ubicación por nombre (servicio de dominio).
// Se construye desde la lista configurada; los nombres libres que no figuran
// en el catálogo se resuelven con una heurística de respaldo para que las
// operaciones con ubicaciones sin registrar sigan funcionando.
type Catalog map[string]entity.LocationKind

// NewCatalog indexa la lista de ubicaciones configurada.
func NewCatalog(locations []entity.Location) Catalog {
	c := make(Catalog, len(locations))
	for _, loc := range locations {
		c[loc.Name] = loc.Kind
	}
	return c
}

// IsInternal indica si la ubicación es una bodega interna: cuenta para el
// stock total y participa del desglose LocationStock. Respaldo para nombres
// sin registrar: los nombres reservados son externos y el prefijo "WH/" marca
// interna.
func (c Catalog) IsInternal(name string) bool {
	if kind, ok := c[name]; ok {
		return kind == entity.LocationInternal
	}
	switch name {
	case entity.LocationNameVendor, entity.LocationNameCustomer,
		entity.LocationNameScrap, entity.LocationNameAdjustment:
		return false
	}
	return strings.HasPrefix(name, "WH/")
}

// IsAdjustment indica si la ubicación es la contrapartida sintética de ajustes.
func (c Catalog) IsAdjustment(name string) bool {
	if kind, ok := c[name]; ok {
		return kind == entity.LocationAdjustment
	}
	return name == entity.LocationNameAdjustment
}

// Direction clasifica el efecto de una operación sobre el stock total.
type Direction int

const (
	DirectionNone     Direction = iota // traslado interno puro: solo cambia el desglose
	DirectionIncoming                  // suma al stock total
	DirectionOutgoing                  // resta del stock total
)

// DirectionOf clasifica una operación confirmable.
// Ajustes: entrante si el origen es la contrapartida sintética de ajuste,
// saliente en caso contrario. Para el resto: un traslado entre dos
// ubicaciones internas no cambia el total; si no, manda el tipo (recepción
// entra, entrega sale) y como respaldo el cruce de frontera interna/externa.
func (c Catalog) DirectionOf(moveType, sourceLocation, destLocation string) Direction {
	if moveType == entity.MoveTypeAdjustment {
		if c.IsAdjustment(sourceLocation) {
			return DirectionIncoming
		}
		return DirectionOutgoing
	}

	srcInternal := c.IsInternal(sourceLocation)
	dstInternal := c.IsInternal(destLocation)
	if srcInternal && dstInternal {
		return DirectionNone
	}
	if moveType == entity.MoveTypeReceipt || (dstInternal && !srcInternal) {
		return DirectionIncoming
	}
	if moveType == entity.MoveTypeDelivery || (srcInternal && !dstInternal) {
		return DirectionOutgoing
	}
	return DirectionNone
}

// DefaultLocations devuelve el catálogo de ubicaciones de fábrica, en el orden
// del tablero original.
func DefaultLocations() []entity.Location {
	return []entity.Location{
		{Name: entity.LocationNameVendor, Kind: entity.LocationVendor},
		{Name: entity.LocationNameCustomer, Kind: entity.LocationCustomer},
		{Name: entity.LocationNameStock, Kind: entity.LocationInternal},
		{Name: "WH/Input", Kind: entity.LocationInternal},
		{Name: "WH/Output", Kind: entity.LocationInternal},
		{Name: "WH/Packing", Kind: entity.LocationInternal},
		{Name: "WH/Showroom", Kind: entity.LocationInternal},
		{Name: "WH/Production", Kind: entity.LocationInternal},
		{Name: entity.LocationNameAdjustment, Kind: entity.LocationAdjustment},
		{Name: entity.LocationNameScrap, Kind: entity.LocationScrap},
	}
}
