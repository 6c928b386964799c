package http

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Cotizador-api/internal/application/dto"
	appquote "github.com/jhoicas/Cotizador-api/internal/application/quote"
	"github.com/jhoicas/Cotizador-api/internal/domain"
)

// EditorHandler expone el editor de cotizaciones sobre HTTP. Cada petición es
// un evento de edición; el editor las serializa internamente.
type EditorHandler struct {
	editor *appquote.Editor
}

// NewEditorHandler construye el handler.
func NewEditorHandler(editor *appquote.Editor) *EditorHandler {
	return &EditorHandler{editor: editor}
}

// Document devuelve el documento en edición, con totales recalculados.
func (h *EditorHandler) Document(c *fiber.Ctx) error {
	return c.JSON(h.editor.Document())
}

// UpdateHeader edita los campos de cabecera presentes en el cuerpo.
func (h *EditorHandler) UpdateHeader(c *fiber.Ctx) error {
	var in dto.UpdateHeaderRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	return c.JSON(h.editor.UpdateHeader(in))
}

// AddItem agrega un renglón por defecto.
func (h *EditorHandler) AddItem(c *fiber.Ctx) error {
	return c.Status(fiber.StatusCreated).JSON(h.editor.AddItem())
}

// UpdateItem edita un campo de un renglón; id ausente no cambia nada.
func (h *EditorHandler) UpdateItem(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id de renglón inválido"})
	}
	var in dto.UpdateItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Field == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "field es requerido"})
	}
	return c.JSON(h.editor.UpdateItem(id, in))
}

// RemoveItem elimina un renglón; id ausente no cambia nada.
func (h *EditorHandler) RemoveItem(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id de renglón inválido"})
	}
	return c.JSON(h.editor.RemoveItem(id))
}

// InsertFromCatalog inserta una entrada del catálogo como renglón nuevo.
func (h *EditorHandler) InsertFromCatalog(c *fiber.Ctx) error {
	var in dto.InsertFromCatalogRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	return c.Status(fiber.StatusCreated).JSON(h.editor.InsertFromCatalog(in))
}

// NewQuote descarta el documento actual y arranca uno nuevo sin guardar.
func (h *EditorHandler) NewQuote(c *fiber.Ctx) error {
	return c.JSON(h.editor.NewQuote())
}

// Save guarda el documento (alta la primera vez, sobrescritura después).
func (h *EditorHandler) Save(c *fiber.Ctx) error {
	out, err := h.editor.Save(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "STORE_FAILED", Message: "no se pudo guardar la cotización"})
	}
	return c.JSON(out)
}

// Open carga una cotización guardada en el editor.
func (h *EditorHandler) Open(c *fiber.Ctx) error {
	out, err := h.editor.Open(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "cotización no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error abriendo la cotización"})
	}
	return c.JSON(out)
}

// List devuelve el resumen de cotizaciones guardadas.
func (h *EditorHandler) List(c *fiber.Ctx) error {
	return c.JSON(h.editor.List(c.Context()))
}

// Delete elimina una cotización guardada.
func (h *EditorHandler) Delete(c *fiber.Ctx) error {
	if err := h.editor.Delete(c.Context(), c.Params("id")); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "cotización no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error eliminando la cotización"})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Catalog lista las tarifas sugeridas; si el colaborador falla responde lista
// vacía con aviso, nunca un error.
func (h *EditorHandler) Catalog(c *fiber.Ctx) error {
	return c.JSON(h.editor.Catalog(c.Context()))
}

// ExportPDF renderiza el documento actual y lo devuelve como descarga.
func (h *EditorHandler) ExportPDF(c *fiber.Ctx) error {
	data, err := h.editor.ExportPDF(c.Context())
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "RENDER_FAILED", Message: "no se pudo generar el PDF"})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="mitsumori.pdf"`)
	return c.Send(data)
}
