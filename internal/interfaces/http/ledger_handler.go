package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/application/ledger"
)

// LedgerHandler maneja las consultas del libro de movimientos (protegido).
type LedgerHandler struct {
	uc *ledger.UseCase
}

// NewLedgerHandler construye el handler.
func NewLedgerHandler(uc *ledger.UseCase) *LedgerHandler {
	return &LedgerHandler{uc: uc}
}

// List godoc
// @Summary      Libro de movimientos
// @Description  Filas operación × línea con cantidad firmada. Búsqueda sobre referencia, contacto, producto, SKU, lote y estado.
// @Tags         ledger
// @Security     Bearer
// @Produce      json
// @Param        q       query  string  false  "Búsqueda libre"
// @Param        type    query  string  false  "Tipo de operación"
// @Param        status  query  string  false  "Estado de operación"
// @Success      200     {array}  dto.LedgerRow
// @Router       /api/ledger [get]
func (h *LedgerHandler) List(c *fiber.Ctx) error {
	rows, err := h.uc.Rows(c.Context(), c.Query("q"), c.Query("type"), c.Query("status"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(rows)
}

// Export godoc
// @Summary      Exportar el libro a CSV
// @Tags         ledger
// @Security     Bearer
// @Produce      text/csv
// @Param        q       query  string  false  "Búsqueda libre"
// @Param        type    query  string  false  "Tipo de operación"
// @Param        status  query  string  false  "Estado de operación"
// @Success      200  {string}  string  "archivo CSV"
// @Router       /api/ledger/export [get]
func (h *LedgerHandler) Export(c *fiber.Ctx) error {
	data, err := h.uc.ExportCSV(c.Context(), c.Query("q"), c.Query("type"), c.Query("status"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="stock-moves.csv"`)
	return c.Send(data)
}
