package entity

// LocationKind clasifica una ubicación para la contabilidad de stock.
// Reemplaza la heurística de prefijo "WH/" del tablero original por un
// atributo explícito por ubicación.
type LocationKind string

const (
	LocationInternal   LocationKind = "internal"   // bodega propia, rastreada en LocationStock
	LocationVendor     LocationKind = "vendor"     // proveedor (externa)
	LocationCustomer   LocationKind = "customer"   // cliente (externa)
	LocationScrap      LocationKind = "scrap"      // merma (externa)
	LocationAdjustment LocationKind = "adjustment" // contrapartida sintética de ajustes
)

// Nombres de ubicación reservados por el motor.
const (
	LocationNameVendor     = "Vendor"
	LocationNameCustomer   = "Customer"
	LocationNameScrap      = "Scrap"
	LocationNameAdjustment = "Inventory Adjustment"
	LocationNameStock      = "WH/Stock" // ubicación interna por defecto
)

// Location es una entrada del catálogo de ubicaciones (lista ordenada, configurable).
type Location struct {
	Name string       `json:"name"`
	Kind LocationKind `json:"kind"`
}
