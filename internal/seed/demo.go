// Package seed contiene el juego de datos de demostración que el adaptador de
// persistencia siembra en el primer arranque y que la operación de reset
// restaura. Es el mismo catálogo del tablero de demostración.
package seed

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/stock"
)

func day(offset int) string {
	return time.Now().AddDate(0, 0, offset).Format(entity.DateLayout)
}

// Locations devuelve el catálogo de ubicaciones de fábrica.
func Locations() []entity.Location {
	return stock.DefaultLocations()
}

// Products devuelve el catálogo de productos de demostración.
func Products() []*entity.Product {
	cost := func(v float64) decimal.Decimal { return decimal.NewFromFloat(v) }
	return []*entity.Product{
		// Muebles
		{ID: "p1", Name: "Office Desk", SKU: "FURN-DESK-001", Category: "Furniture", UoM: "Units", StockLevel: 45, Cost: cost(120), Location: "WH/Stock", MinStock: 10, Tracking: entity.TrackingNone, LocationStock: map[string]int{"WH/Stock": 45}},
		{ID: "p2", Name: "Ergonomic Chair", SKU: "FURN-CHAIR-PRO", Category: "Furniture", UoM: "Units", StockLevel: 12, Cost: cost(250), Location: "WH/Stock", MinStock: 15, Tracking: entity.TrackingNone, LocationStock: map[string]int{"WH/Stock": 10, "WH/Showroom": 2}},
		{ID: "p3", Name: "Conference Table", SKU: "FURN-TABLE-CONF", Category: "Furniture", UoM: "Units", StockLevel: 3, Cost: cost(800), Location: "WH/Stock", MinStock: 2, Tracking: entity.TrackingNone, LocationStock: map[string]int{"WH/Stock": 3}},
		{ID: "p4", Name: "Bookshelf", SKU: "FURN-SHELF-01", Category: "Furniture", UoM: "Units", StockLevel: 20, Cost: cost(80), Location: "WH/Stock", MinStock: 5, Tracking: entity.TrackingNone, LocationStock: map[string]int{"WH/Stock": 20}},

		// Electrónica
		{ID: "p5", Name: "Monitor 27\"", SKU: "ELEC-MON-27", Category: "Electronics", UoM: "Units", StockLevel: 30, Cost: cost(220), Location: "WH/Stock", MinStock: 10, Tracking: entity.TrackingSerial, LocationStock: map[string]int{"WH/Stock": 30}},
		{ID: "p6", Name: "Mechanical Keyboard", SKU: "ELEC-KB-MECH", Category: "Electronics", UoM: "Units", StockLevel: 50, Cost: cost(90), Location: "WH/Stock", MinStock: 20, Tracking: entity.TrackingSerial, LocationStock: map[string]int{"WH/Stock": 50}},
		{ID: "p7", Name: "Wireless Mouse", SKU: "ELEC-MOUSE-WL", Category: "Electronics", UoM: "Units", StockLevel: 75, Cost: cost(40), Location: "WH/Stock", MinStock: 25, Tracking: entity.TrackingNone, LocationStock: map[string]int{"WH/Stock": 75}},
		{ID: "p8", Name: "Docking Station", SKU: "ELEC-DOCK-USBC", Category: "Electronics", UoM: "Units", StockLevel: 15, Cost: cost(150), Location: "WH/Stock", MinStock: 5, Tracking: entity.TrackingSerial, LocationStock: map[string]int{"WH/Stock": 15}},

		// Consumibles y materia prima
		{ID: "p9", Name: "Packing Tape", SKU: "MAT-TAPE-01", Category: "Consumables", UoM: "Rolls", StockLevel: 200, Cost: cost(2), Location: "WH/Stock", MinStock: 50, Tracking: entity.TrackingLot, LocationStock: map[string]int{"WH/Stock": 150, "WH/Packing": 50}},
		{ID: "p10", Name: "Cardboard Box (L)", SKU: "MAT-BOX-L", Category: "Consumables", UoM: "Units", StockLevel: 500, Cost: cost(1.5), Location: "WH/Stock", MinStock: 100, Tracking: entity.TrackingNone, LocationStock: map[string]int{"WH/Stock": 500}},
		{ID: "p11", Name: "Steel Rod 10mm", SKU: "RAW-ST-10", Category: "Raw Material", UoM: "Meters", StockLevel: 100, Cost: cost(15), Location: "WH/Stock", MinStock: 20, Tracking: entity.TrackingLot, LocationStock: map[string]int{"WH/Stock": 100}},
		{ID: "p12", Name: "Pine Wood Plank", SKU: "RAW-WOOD-PINE", Category: "Raw Material", UoM: "Units", StockLevel: 0, Cost: cost(25), Location: "WH/Stock", MinStock: 40, Tracking: entity.TrackingLot, LocationStock: map[string]int{}},
	}
}

// Moves devuelve el historial de operaciones de demostración, con fechas
// relativas al día de la siembra para que los KPI de atraso tengan datos.
func Moves() []*entity.StockMove {
	today := day(0)
	yesterday := day(-1)
	tomorrow := day(1)
	lastWeek := day(-7)
	nextWeek := day(7)

	return []*entity.StockMove{
		// Operaciones confirmadas del pasado
		{ID: "m1", Reference: "WH/IN/0001", Type: entity.MoveTypeReceipt, Status: entity.StatusDone, Contact: "Azure Interior", ScheduleDate: lastWeek, SourceLocation: "Vendor", DestLocation: "WH/Stock", Date: lastWeek,
			Lines: []entity.StockMoveLine{{ID: "l1", ProductID: "p1", ProductName: "Office Desk", Quantity: 50}}},
		{ID: "m2", Reference: "WH/IN/0002", Type: entity.MoveTypeReceipt, Status: entity.StatusDone, Contact: "Tech Solutions Inc.", ScheduleDate: lastWeek, SourceLocation: "Vendor", DestLocation: "WH/Stock", Date: lastWeek,
			Lines: []entity.StockMoveLine{{ID: "l2", ProductID: "p5", ProductName: "Monitor 27\"", Quantity: 30, LotNumber: "SN-MON-0998"}}},
		{ID: "m3", Reference: "WH/OUT/0001", Type: entity.MoveTypeDelivery, Status: entity.StatusDone, Contact: "Deco Addict", ScheduleDate: lastWeek, SourceLocation: "WH/Stock", DestLocation: "Customer", Date: lastWeek,
			Lines: []entity.StockMoveLine{{ID: "l3", ProductID: "p1", ProductName: "Office Desk", Quantity: 5}}},

		// Entregas listas (reservan stock)
		{ID: "m4", Reference: "WH/OUT/0005", Type: entity.MoveTypeDelivery, Status: entity.StatusReady, Contact: "Gemini Furniture", ScheduleDate: tomorrow, SourceLocation: "WH/Stock", DestLocation: "Customer", Date: today,
			Lines: []entity.StockMoveLine{{ID: "l4", ProductID: "p2", ProductName: "Ergonomic Chair", Quantity: 2}}},
		{ID: "m5", Reference: "WH/OUT/0006", Type: entity.MoveTypeDelivery, Status: entity.StatusReady, Contact: "StartUp Hub", ScheduleDate: today, SourceLocation: "WH/Stock", DestLocation: "Customer", Date: today,
			Lines: []entity.StockMoveLine{{ID: "l5", ProductID: "p7", ProductName: "Wireless Mouse", Quantity: 10}}},

		// Entregas a la espera de stock
		{ID: "m6", Reference: "WH/OUT/0007", Type: entity.MoveTypeDelivery, Status: entity.StatusWaiting, Contact: "MegaCorp", ScheduleDate: nextWeek, SourceLocation: "WH/Stock", DestLocation: "Customer", Date: today,
			Lines: []entity.StockMoveLine{{ID: "l6", ProductID: "p3", ProductName: "Conference Table", Quantity: 5}}},
		{ID: "m7", Reference: "WH/OUT/0008", Type: entity.MoveTypeDelivery, Status: entity.StatusWaiting, Contact: "WoodWorks", ScheduleDate: tomorrow, SourceLocation: "WH/Stock", DestLocation: "Customer", Date: today,
			Lines: []entity.StockMoveLine{{ID: "l7", ProductID: "p12", ProductName: "Pine Wood Plank", Quantity: 20, LotNumber: "LOT-WD-44"}}},

		// Entrega atrasada
		{ID: "m8", Reference: "WH/OUT/0004", Type: entity.MoveTypeDelivery, Status: entity.StatusReady, Contact: "Late Customer LLC", ScheduleDate: yesterday, SourceLocation: "WH/Stock", DestLocation: "Customer", Date: lastWeek,
			Lines: []entity.StockMoveLine{{ID: "l8", ProductID: "p6", ProductName: "Mechanical Keyboard", Quantity: 1, LotNumber: "SN-KB-1122"}}},

		// Recepciones por procesar
		{ID: "m9", Reference: "WH/IN/0010", Type: entity.MoveTypeReceipt, Status: entity.StatusReady, Contact: "Raw Materials Co.", ScheduleDate: today, SourceLocation: "Vendor", DestLocation: "WH/Stock", Date: today,
			Lines: []entity.StockMoveLine{{ID: "l9", ProductID: "p12", ProductName: "Pine Wood Plank", Quantity: 100, LotNumber: "LOT-WD-55"}}},
		{ID: "m10", Reference: "WH/IN/0011", Type: entity.MoveTypeReceipt, Status: entity.StatusDraft, Contact: "Office Supplies Ltd.", ScheduleDate: nextWeek, SourceLocation: "Vendor", DestLocation: "WH/Stock", Date: today,
			Lines: []entity.StockMoveLine{{ID: "l10", ProductID: "p9", ProductName: "Packing Tape", Quantity: 50, LotNumber: "LOT-TP-88"}}},

		// Recepción atrasada
		{ID: "m11", Reference: "WH/IN/0009", Type: entity.MoveTypeReceipt, Status: entity.StatusReady, Contact: "Global Imports", ScheduleDate: yesterday, SourceLocation: "Vendor", DestLocation: "WH/Stock", Date: lastWeek,
			Lines: []entity.StockMoveLine{{ID: "l11", ProductID: "p4", ProductName: "Bookshelf", Quantity: 10}}},
	}
}
