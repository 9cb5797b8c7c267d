package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/application/usecase"
)

// SettingsHandler maneja la configuración del tablero (protegido).
type SettingsHandler struct {
	uc *usecase.SettingsUseCase
}

// NewSettingsHandler construye el handler.
func NewSettingsHandler(uc *usecase.SettingsUseCase) *SettingsHandler {
	return &SettingsHandler{uc: uc}
}

// Reset godoc
// @Summary      Restaurar datos de demostración
// @Description  Reemplaza productos, operaciones y ubicaciones por el juego de demostración, en una sola transacción.
// @Tags         settings
// @Security     Bearer
// @Success      204  "restaurado"
// @Router       /api/settings/reset [post]
func (h *SettingsHandler) Reset(c *fiber.Ctx) error {
	if err := h.uc.ResetDemoData(c.Context()); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
