package dto

// MoveLineRequest línea de una operación nueva o editada.
type MoveLineRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
	LotNumber string `json:"lot_number,omitempty"`
}

// MoveRequest body para crear o editar una operación de stock.
type MoveRequest struct {
	Type           string            `json:"type"`
	Contact        string            `json:"contact,omitempty"`
	ScheduleDate   string            `json:"schedule_date,omitempty"` // ISO YYYY-MM-DD
	SourceLocation string            `json:"source_location"`
	DestLocation   string            `json:"dest_location"`
	Lines          []MoveLineRequest `json:"lines"`
}

// MoveLineResponse línea proyectada.
type MoveLineResponse struct {
	ID          string `json:"id"`
	ProductID   string `json:"product_id"`
	ProductName string `json:"product_name"`
	Quantity    int    `json:"quantity"`
	LotNumber   string `json:"lot_number,omitempty"`
}

// MoveResponse proyección de una operación de stock.
type MoveResponse struct {
	ID             string             `json:"id"`
	Reference      string             `json:"reference"`
	Type           string             `json:"type"`
	Status         string             `json:"status"`
	Contact        string             `json:"contact,omitempty"`
	ScheduleDate   string             `json:"schedule_date,omitempty"`
	SourceLocation string             `json:"source_location"`
	DestLocation   string             `json:"dest_location"`
	Date           string             `json:"date"`
	Late           bool               `json:"late"`
	Lines          []MoveLineResponse `json:"lines"`
}
