package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jcastro/trazametal-api/internal/application/dto"
	"github.com/jcastro/trazametal-api/internal/application/usecase"
)

// ControlPointHandler maneja las peticiones HTTP del registro de puntos de
// control (plantas, almacenes, sitios de montaje).
type ControlPointHandler struct {
	uc *usecase.ControlPointUseCase
}

// NewControlPointHandler construye el handler.
func NewControlPointHandler(uc *usecase.ControlPointUseCase) *ControlPointHandler {
	return &ControlPointHandler{uc: uc}
}

// Create godoc
// @Summary      Crear punto de control
// @Tags         control-points
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateControlPointRequest  true  "name, type (factory|storage|usage_site)"
// @Success      201   {object}  dto.ControlPointResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/control-points [post]
func (h *ControlPointHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateControlPointRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if msg := validateStruct(in); msg != "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: msg})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener punto de control por ID
// @Tags         control-points
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del punto"
// @Success      200  {object}  dto.ControlPointResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/control-points/{id} [get]
func (h *ControlPointHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	out, err := h.uc.GetByID(id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "punto de control no encontrado"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar puntos de control
// @Tags         control-points
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.ControlPointResponse
// @Router       /api/control-points [get]
func (h *ControlPointHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
