package http

import (
	"github.com/gofiber/fiber/v2"

	appquote "github.com/jhoicas/Cotizador-api/internal/application/quote"
)

// EditorRouter registra las rutas del editor de cotizaciones.
func EditorRouter(app *fiber.App, editor *appquote.Editor) {
	api := app.Group("/api")
	h := NewEditorHandler(editor)

	// Documento en edición
	q := api.Group("/quote")
	q.Get("/", h.Document)
	q.Put("/header", h.UpdateHeader)
	q.Post("/items", h.AddItem)
	q.Patch("/items/:id", h.UpdateItem)
	q.Delete("/items/:id", h.RemoveItem)
	q.Post("/items/from-catalog", h.InsertFromCatalog)
	q.Post("/new", h.NewQuote)
	q.Post("/save", h.Save)
	q.Post("/open/:id", h.Open)
	q.Get("/pdf", h.ExportPDF)

	// Colección guardada y catálogo
	api.Get("/quotes", h.List)
	api.Delete("/quotes/:id", h.Delete)
	api.Get("/catalog", h.Catalog)
}
