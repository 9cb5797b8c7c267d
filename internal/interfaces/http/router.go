// Package http expone la API del tablero sobre Fiber: handlers, middleware de
// auth y registro de rutas.
package http

import (
	"net/url"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Almacen-api/internal/application/analytics"
	"github.com/jhoicas/Almacen-api/internal/application/auth"
	"github.com/jhoicas/Almacen-api/internal/application/inventory"
	"github.com/jhoicas/Almacen-api/internal/application/ledger"
	"github.com/jhoicas/Almacen-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC   *usecase.ProductUseCase
	MoveUC      *usecase.MoveUseCase
	LocationUC  *usecase.LocationUseCase
	SettingsUC  *usecase.SettingsUseCase
	StockEngine *inventory.StockUseCase
	LedgerUC    *ledger.UseCase
	DashboardUC *analytics.DashboardUseCase
	AuthUC      *auth.AuthUseCase
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (registro, login y recuperación son públicos)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/otp", authHandler.RequestOTP)
	authGroup.Post("/reset-password", authHandler.ResetPassword)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	protected.Post("/auth/logout", authHandler.Logout)
	protected.Get("/auth/me", authHandler.Me)

	// Productos (protegido)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC, deps.StockEngine, deps.LedgerUC)
	products.Get("/", productHandler.List)
	products.Post("/", productHandler.Create)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)
	products.Post("/:id/adjust", productHandler.Adjust)
	products.Get("/:id/free-to-use", productHandler.FreeToUse)
	products.Get("/:id/history", productHandler.History)

	// Operaciones de stock (protegido)
	moves := protected.Group("/moves")
	moveHandler := NewMoveHandler(deps.MoveUC, deps.StockEngine)
	moves.Get("/", moveHandler.List)
	moves.Post("/", moveHandler.Create)
	moves.Get("/:id", moveHandler.GetByID)
	moves.Put("/:id", moveHandler.Update)
	moves.Delete("/:id", moveHandler.Delete)
	moves.Post("/:id/check-availability", moveHandler.CheckAvailability)
	moves.Post("/:id/validate", moveHandler.Validate)
	moves.Post("/:id/cancel", moveHandler.Cancel)

	// Libro de movimientos (protegido)
	ledgerGroup := protected.Group("/ledger")
	ledgerHandler := NewLedgerHandler(deps.LedgerUC)
	ledgerGroup.Get("/", ledgerHandler.List)
	ledgerGroup.Get("/export", ledgerHandler.Export)

	// Tablero (protegido)
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	protected.Get("/dashboard/kpis", dashboardHandler.KPIs)

	// Ubicaciones (protegido)
	locations := protected.Group("/locations")
	locationHandler := NewLocationHandler(deps.LocationUC)
	locations.Get("/", locationHandler.List)
	locations.Post("/", locationHandler.Create)
	locations.Delete("/:name", locationHandler.Delete)

	// Configuración (protegido)
	settingsHandler := NewSettingsHandler(deps.SettingsUC)
	protected.Post("/settings/reset", settingsHandler.Reset)
}

// unescapeParam decodifica un parámetro de ruta; los nombres de ubicación
// llevan "/" (WH/Stock) y viajan URL-escapados.
func unescapeParam(c *fiber.Ctx, name string) (string, error) {
	return url.PathUnescape(c.Params(name))
}
