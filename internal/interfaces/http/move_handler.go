package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/application/inventory"
	"github.com/jhoicas/Almacen-api/internal/application/usecase"
	"github.com/jhoicas/Almacen-api/internal/domain"
)

// MoveHandler maneja las peticiones HTTP de operaciones de stock (protegido).
// El CRUD va al caso de uso; confirmación, cancelación y disponibilidad al
// motor de stock.
type MoveHandler struct {
	uc     *usecase.MoveUseCase
	engine *inventory.StockUseCase
}

// NewMoveHandler construye el handler.
func NewMoveHandler(uc *usecase.MoveUseCase, engine *inventory.StockUseCase) *MoveHandler {
	return &MoveHandler{uc: uc, engine: engine}
}

// List godoc
// @Summary      Listar operaciones de stock
// @Tags         moves
// @Security     Bearer
// @Produce      json
// @Param        type    query  string  false  "Incoming Receipt | Delivery Order | Internal Transfer | Inventory Adjustment"
// @Param        status  query  string  false  "Draft | Waiting | Ready | Done | Cancelled"
// @Param        q       query  string  false  "Subcadena sobre referencia o contacto"
// @Success      200     {array}  dto.MoveResponse
// @Router       /api/moves [get]
func (h *MoveHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context(), c.Query("type"), c.Query("status"), c.Query("q"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener operación por ID
// @Tags         moves
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la operación"
// @Success      200  {object}  dto.MoveResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/moves/{id} [get]
func (h *MoveHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.Context(), c.Params("id"))
	if err != nil {
		return moveError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear operación en borrador
// @Tags         moves
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.MoveRequest  true  "type, source_location, dest_location, lines"
// @Success      201   {object}  dto.MoveResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/moves [post]
func (h *MoveHandler) Create(c *fiber.Ctx) error {
	var in dto.MoveRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return moveError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Editar operación abierta
// @Tags         moves
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la operación"
// @Param        body  body  dto.MoveRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.MoveResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/moves/{id} [put]
func (h *MoveHandler) Update(c *fiber.Ctx) error {
	var in dto.MoveRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		return moveError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar operación
// @Tags         moves
// @Security     Bearer
// @Param        id  path  string  true  "ID de la operación"
// @Success      204  "eliminada (o no existía)"
// @Router       /api/moves/{id} [delete]
func (h *MoveHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// CheckAvailability godoc
// @Summary      Reevaluar disponibilidad de una entrega
// @Description  Mueve la entrega a Ready o Waiting según el stock libre; otras operaciones quedan intactas.
// @Tags         moves
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la operación"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/moves/{id}/check-availability [post]
func (h *MoveHandler) CheckAvailability(c *fiber.Ctx) error {
	status, err := h.engine.CheckAvailability(c.Context(), c.Params("id"))
	if err != nil {
		return moveError(c, err)
	}
	return c.JSON(fiber.Map{"status": status})
}

// Validate godoc
// @Summary      Confirmar operación
// @Description  Aplica el efecto de cada línea sobre el stock y deja la operación en Done.
// @Tags         moves
// @Security     Bearer
// @Param        id  path  string  true  "ID de la operación"
// @Success      204  "confirmada"
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/moves/{id}/validate [post]
func (h *MoveHandler) Validate(c *fiber.Ctx) error {
	if err := h.engine.ValidateMove(c.Context(), c.Params("id")); err != nil {
		return moveError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Cancel godoc
// @Summary      Cancelar operación no confirmada
// @Tags         moves
// @Security     Bearer
// @Param        id  path  string  true  "ID de la operación"
// @Success      204  "cancelada"
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/moves/{id}/cancel [post]
func (h *MoveHandler) Cancel(c *fiber.Ctx) error {
	if err := h.engine.CancelMove(c.Context(), c.Params("id")); err != nil {
		return moveError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func moveError(c *fiber.Ctx, err error) error {
	if errors.Is(err, domain.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "operación o producto no encontrado"})
	}
	if errors.Is(err, domain.ErrMoveDone) {
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "MOVE_DONE", Message: "una operación confirmada es inmutable"})
	}
	if errors.Is(err, domain.ErrInvalidInput) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}
