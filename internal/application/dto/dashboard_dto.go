package dto

// KPIMetrics agregados del tablero. Se recalculan en cada llamada, sin caché.
type KPIMetrics struct {
	TotalProducts       int `json:"total_products"`
	LowStockItems       int `json:"low_stock_items"`
	ReceiptsLate        int `json:"receipts_late"`
	ReceiptsToReceive   int `json:"receipts_to_receive"`
	DeliveriesLate      int `json:"deliveries_late"`
	DeliveriesToDeliver int `json:"deliveries_to_deliver"`
	DeliveriesWaiting   int `json:"deliveries_waiting"`
}
