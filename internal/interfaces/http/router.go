package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Cotizador-api/internal/application/usecase"
)

// RouterDeps dependencias para el router del servicio de tarifas.
type RouterDeps struct {
	RateUC *usecase.RateUseCase
}

// Router registra las rutas del servicio de tarifas.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	rates := api.Group("/rates")
	rateHandler := NewRateHandler(deps.RateUC)
	rates.Post("/", rateHandler.Create)
	rates.Get("/", rateHandler.List)
	rates.Get("/:id", rateHandler.GetByID)
	rates.Put("/:id", rateHandler.Update)
	rates.Delete("/:id", rateHandler.Delete)
}
