package entity

// Tipos de operación de stock. Los literales coinciden con los documentos
// JSON persistidos y con las referencias generadas (WH/IN, WH/OUT, WH/INT).
const (
	MoveTypeReceipt    = "Incoming Receipt"
	MoveTypeDelivery   = "Delivery Order"
	MoveTypeInternal   = "Internal Transfer"
	MoveTypeAdjustment = "Inventory Adjustment"
)

// Estados de una operación de stock.
// Draft -> Waiting|Ready (checkAvailability, solo Delivery) -> Done (validate, terminal).
// Cancelled es alcanzable desde cualquier estado no-Done.
const (
	StatusDraft     = "Draft"
	StatusWaiting   = "Waiting"
	StatusReady     = "Ready"
	StatusDone      = "Done"
	StatusCancelled = "Cancelled"
)

// DateLayout es el formato de las fechas persistidas (ISO, solo día).
// El orden lexicográfico coincide con el cronológico.
const DateLayout = "2006-01-02"

// StockMove representa una operación de inventario (recepción, entrega,
// traslado interno o ajuste) con sus líneas.
type StockMove struct {
	ID             string          `json:"id"`
	Reference      string          `json:"reference"`
	Type           string          `json:"type"`
	Status         string          `json:"status"`
	Contact        string          `json:"contact,omitempty"`
	ScheduleDate   string          `json:"scheduleDate,omitempty"` // fecha prometida, ISO YYYY-MM-DD
	SourceLocation string          `json:"sourceLocation"`
	DestLocation   string          `json:"destLocation"`
	Date           string          `json:"date"` // fecha de creación/efectiva, ISO YYYY-MM-DD
	Lines          []StockMoveLine `json:"lines"`
}

// StockMoveLine es una línea de operación. ProductName es una copia del nombre
// al momento de crear la línea y no se sincroniza con renombres posteriores.
type StockMoveLine struct {
	ID          string `json:"id"`
	ProductID   string `json:"productId"`
	ProductName string `json:"productName"`
	Quantity    int    `json:"quantity"`
	LotNumber   string `json:"lotNumber,omitempty"`
}

// IsOpen indica si la operación sigue en curso (ni confirmada ni cancelada).
func (m *StockMove) IsOpen() bool {
	return m.Status != StatusDone && m.Status != StatusCancelled
}

// IsLate indica si la operación sigue abierta pasada su fecha prometida.
// La comparación es lexicográfica sobre fechas ISO; una fecha prometida vacía
// cuenta como atrasada, igual que en el tablero original.
func (m *StockMove) IsLate(today string) bool {
	return m.IsOpen() && m.ScheduleDate < today
}
