package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jcastro/trazametal-api/internal/application/dto"
	"github.com/jcastro/trazametal-api/internal/application/usecase"
)

// FactoryHandler maneja el registro de plantas de producción.
type FactoryHandler struct {
	uc *usecase.FactoryUseCase
}

// NewFactoryHandler construye el handler.
func NewFactoryHandler(uc *usecase.FactoryUseCase) *FactoryHandler {
	return &FactoryHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar fábrica
// @Tags         factories
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateFactoryRequest  true  "Datos de la fábrica"
// @Success      201   {object}  dto.FactoryResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/factories [post]
func (h *FactoryHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateFactoryRequest
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
// @Summary      Obtener fábrica por ID
// @Tags         factories
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la fábrica"
// @Success      200  {object}  dto.FactoryResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/factories/{id} [get]
func (h *FactoryHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	out, err := h.uc.GetByID(id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "fábrica no encontrada"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar fábricas
// @Tags         factories
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.FactoryResponse
// @Router       /api/factories [get]
func (h *FactoryHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
