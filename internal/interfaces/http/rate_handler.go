package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Cotizador-api/internal/application/dto"
	"github.com/jhoicas/Cotizador-api/internal/application/usecase"
	"github.com/jhoicas/Cotizador-api/internal/domain"
)

// RateHandler maneja las peticiones HTTP del maestro de tarifas.
type RateHandler struct {
	uc *usecase.RateUseCase
}

// NewRateHandler construye el handler.
func NewRateHandler(uc *usecase.RateUseCase) *RateHandler {
	return &RateHandler{uc: uc}
}

// Create godoc
// @Summary      Crear tarifa
// @Tags         rates
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateRateRequest  true  "Datos de la tarifa"
// @Success      201   {object}  dto.RateResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/rates [post]
func (h *RateHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateRateRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "category y label son requeridos"})
		case errors.Is(err, domain.ErrDuplicate):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "la tarifa ya existe"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error creando la tarifa"})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar tarifas
// @Tags         rates
// @Produce      json
// @Param        limit   query  int  false  "Límite"   default(20)
// @Param        offset  query  int  false  "Offset"   default(0)
// @Success      200     {object}  dto.RateListResponse
// @Router       /api/rates [get]
func (h *RateHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros de paginación inválidos"})
	}
	page.DefaultPage()
	out, err := h.uc.List(page.Limit, page.Offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error listando tarifas"})
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener tarifa por ID
// @Tags         rates
// @Produce      json
// @Param        id   path  string  true  "ID de la tarifa"
// @Success      200  {object}  dto.RateResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/rates/{id} [get]
func (h *RateHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	out, err := h.uc.GetByID(id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error consultando la tarifa"})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "tarifa no encontrada"})
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar tarifa
// @Tags         rates
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la tarifa"
// @Param        body  body  dto.UpdateRateRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.RateResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/rates/{id} [put]
func (h *RateHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	var in dto.UpdateRateRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(id, in)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error actualizando la tarifa"})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "tarifa no encontrada"})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar tarifa
// @Tags         rates
// @Param        id   path  string  true  "ID de la tarifa"
// @Success      204  "Sin contenido"
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/rates/{id} [delete]
func (h *RateHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	deleted, err := h.uc.Delete(id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error eliminando la tarifa"})
	}
	if !deleted {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "tarifa no encontrada"})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
