package ledger

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jhoicas/Almacen-api/internal/domain/stock"
)

// csvHeader es el encabezado fijo del archivo exportado.
var csvHeader = []string{
	"Reference", "Date", "Contact", "Product", "Lot/Serial",
	"From Location", "To Location", "Quantity", "Status",
}

// CSVRecord es una fila parseada del archivo exportado, con la cantidad ya
// firmada. Se usa en la verificación de ida y vuelta.
type CSVRecord struct {
	Reference string
	Product   string
	Quantity  int
}

// ExportCSV serializa el libro de movimientos a CSV con los mismos filtros de
// Rows. La cantidad lleva prefijo "+" para entradas y "-" para salidas; un
// traslado interno va sin signo.
func (uc *UseCase) ExportCSV(ctx context.Context, query, moveType, status string) ([]byte, error) {
	moves, err := uc.snapRepo.Moves()
	if err != nil {
		return nil, err
	}
	products, err := uc.snapRepo.Products()
	if err != nil {
		return nil, err
	}
	locations, err := uc.snapRepo.Locations()
	if err != nil {
		return nil, err
	}
	catalog := stock.NewCatalog(locations)

	skuByID := make(map[string]string, len(products))
	for _, p := range products {
		skuByID[p.ID] = p.SKU
	}
	term := strings.ToLower(query)

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(csvHeader); err != nil {
		return nil, err
	}
	for _, m := range moves {
		if moveType != "" && m.Type != moveType {
			continue
		}
		if status != "" && m.Status != status {
			continue
		}
		dir := catalog.DirectionOf(m.Type, m.SourceLocation, m.DestLocation)
		for _, line := range m.Lines {
			if term != "" && !matches(term, m, line, skuByID[line.ProductID]) {
				continue
			}
			record := []string{
				m.Reference,
				m.Date,
				m.Contact,
				line.ProductName,
				line.LotNumber,
				m.SourceLocation,
				m.DestLocation,
				formatQuantity(dir, line.Quantity),
				m.Status,
			}
			if err := w.Write(record); err != nil {
				return nil, err
			}
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ParseCSV lee un archivo exportado y devuelve las tuplas
// (referencia, producto, cantidad firmada).
func ParseCSV(data []byte) ([]CSVRecord, error) {
	r := csv.NewReader(bytes.NewReader(data))
	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("leyendo encabezado CSV: %w", err)
	}
	if len(header) != len(csvHeader) {
		return nil, fmt.Errorf("encabezado CSV inesperado: %d columnas", len(header))
	}

	var records []CSVRecord
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("leyendo fila CSV: %w", err)
		}
		qty, err := strconv.Atoi(strings.TrimPrefix(row[7], "+"))
		if err != nil {
			return nil, fmt.Errorf("cantidad inválida %q: %w", row[7], err)
		}
		records = append(records, CSVRecord{
			Reference: row[0],
			Product:   row[3],
			Quantity:  qty,
		})
	}
	return records, nil
}

func formatQuantity(dir stock.Direction, qty int) string {
	switch dir {
	case stock.DirectionIncoming:
		return fmt.Sprintf("+%d", qty)
	case stock.DirectionOutgoing:
		return fmt.Sprintf("-%d", qty)
	}
	return strconv.Itoa(qty)
}
