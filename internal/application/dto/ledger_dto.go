package dto

// LedgerRow es una fila del libro de movimientos: el producto cartesiano
// operación × línea, con la cantidad firmada según la clasificación
// entrante (+) / saliente (-).
type LedgerRow struct {
	Reference      string `json:"reference"`
	Date           string `json:"date"`
	Contact        string `json:"contact,omitempty"`
	ProductID      string `json:"product_id"`
	ProductName    string `json:"product_name"`
	LotNumber      string `json:"lot_number,omitempty"`
	SourceLocation string `json:"source_location"`
	DestLocation   string `json:"dest_location"`
	Quantity       int    `json:"quantity"` // firmada: positiva entra, negativa sale
	Status         string `json:"status"`
}
