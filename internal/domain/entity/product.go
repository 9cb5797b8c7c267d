package entity

import "github.com/shopspring/decimal"

// Estrategias de trazabilidad por producto. Los valores literales son los que
// viajan en el documento JSON persistido.
const (
	TrackingNone   = "No Tracking"
	TrackingLot    = "By Lots"
	TrackingSerial = "By Unique Serial Number"
)

// Product representa un producto o SKU del catálogo.
// StockLevel es la cantidad total en mano (fuente de verdad); LocationStock es
// el desglose por ubicación interna y puede no sumar StockLevel cuando un
// movimiento tocó ubicaciones no rastreadas.
type Product struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	SKU           string          `json:"sku"`
	Category      string          `json:"category"`
	UoM           string          `json:"uom"`
	StockLevel    int             `json:"stockLevel"`
	LocationStock map[string]int  `json:"locationStock,omitempty"`
	Cost          decimal.Decimal `json:"cost"`
	Location      string          `json:"location"` // ubicación por defecto
	MinStock      int             `json:"minStock"`
	Tracking      string          `json:"tracking"`
}

// IsLowStock indica si el producto está en o bajo su umbral de reorden.
func (p *Product) IsLowStock() bool {
	return p.StockLevel <= p.MinStock
}

// RequiresLot indica si las líneas de movimiento de este producto deben llevar lote/serial.
func (p *Product) RequiresLot() bool {
	return p.Tracking != TrackingNone && p.Tracking != ""
}

// Valuation devuelve la valorización del inventario en mano (StockLevel * Cost).
func (p *Product) Valuation() decimal.Decimal {
	return p.Cost.Mul(decimal.NewFromInt(int64(p.StockLevel)))
}
