package dto

import "github.com/shopspring/decimal"

// ProductRequest body para crear o editar un producto. En la edición el stock
// no se toca: los cambios de cantidad van por movimientos o ajuste rápido.
type ProductRequest struct {
	Name       string          `json:"name"`
	SKU        string          `json:"sku"`
	Category   string          `json:"category"`
	UoM        string          `json:"uom"`
	StockLevel int             `json:"stock_level"` // solo en creación: cantidad inicial
	Cost       decimal.Decimal `json:"cost"`
	Location   string          `json:"location"`
	MinStock   int             `json:"min_stock"`
	Tracking   string          `json:"tracking"`
}

// ProductResponse proyección de producto con los derivados del motor.
type ProductResponse struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	SKU           string          `json:"sku"`
	Category      string          `json:"category"`
	UoM           string          `json:"uom"`
	StockLevel    int             `json:"stock_level"`
	LocationStock map[string]int  `json:"location_stock,omitempty"`
	Cost          decimal.Decimal `json:"cost"`
	Location      string          `json:"location"`
	MinStock      int             `json:"min_stock"`
	Tracking      string          `json:"tracking"`
	Reserved      int             `json:"reserved"`
	FreeToUse     int             `json:"free_to_use"` // puede ser negativo (sobre-reserva)
	Valuation     decimal.Decimal `json:"valuation"`
	LowStock      bool            `json:"low_stock"`
}

// AdjustQuantityRequest body para el ajuste rápido de stock.
type AdjustQuantityRequest struct {
	NewQuantity int `json:"new_quantity"`
}
