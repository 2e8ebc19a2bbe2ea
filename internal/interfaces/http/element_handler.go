package http

import (
	"github.com/gofiber/fiber/v2"

	applabel "github.com/jcastro/trazametal-api/internal/application/label"

	"github.com/jcastro/trazametal-api/internal/application/dto"
	"github.com/jcastro/trazametal-api/internal/application/usecase"
	"github.com/jcastro/trazametal-api/internal/domain"
)

// ElementHandler maneja las peticiones HTTP del registro de elementos:
// marcado (alta), consultas, override de estado y etiqueta PDF.
type ElementHandler struct {
	uc      *usecase.ElementUseCase
	labelUC *applabel.LabelUseCase
}

// NewElementHandler construye el handler.
func NewElementHandler(uc *usecase.ElementUseCase, labelUC *applabel.LabelUseCase) *ElementHandler {
	return &ElementHandler{uc: uc, labelUC: labelUC}
}

// Create godoc
// @Summary      Marcar (crear) elemento
// @Description  Da de alta un elemento con estado inicial production y sin ubicación.
// @Tags         elements
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateElementRequest  true  "code, type (beam|column|truss|connection)"
// @Success      201   {object}  dto.ElementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/elements [post]
func (h *ElementHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateElementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if msg := validateStruct(in); msg != "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: msg})
	}
	out, err := h.uc.Create(GetUserID(c), in)
	if err != nil {
		if err == domain.ErrCodeAlreadyExists {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CODE_EXISTS", Message: "el código de marcado ya está registrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener elemento por ID
// @Tags         elements
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del elemento"
// @Success      200  {object}  dto.ElementResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/elements/{id} [get]
func (h *ElementHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	out, err := h.uc.GetByID(id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "elemento no encontrado"})
	}
	return c.JSON(out)
}

// GetByCode godoc
// @Summary      Obtener elemento por código de marcado
// @Description  Resolución del código escaneado del DataMatrix al elemento.
// @Tags         elements
// @Security     Bearer
// @Produce      json
// @Param        code  path  string  true  "Código de marcado"
// @Success      200   {object}  dto.ElementResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/elements/code/{code} [get]
func (h *ElementHandler) GetByCode(c *fiber.Ctx) error {
	code := c.Params("code")
	if code == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_CODE", Message: "code es requerido"})
	}
	out, err := h.uc.GetByCode(code)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "elemento no encontrado"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar elementos
// @Description  Filtros opcionales combinados con AND; los más recientes primero.
// @Tags         elements
// @Security     Bearer
// @Produce      json
// @Param        status       query  string  false  "Filtrar por estado"
// @Param        type         query  string  false  "Filtrar por tipo"
// @Param        location_id  query  string  false  "Filtrar por ubicación actual"
// @Param        limit        query  int     false  "Límite"   default(20)
// @Param        offset       query  int     false  "Offset"   default(0)
// @Success      200  {object}  dto.ElementListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/elements [get]
func (h *ElementHandler) List(c *fiber.Ctx) error {
	var in dto.ElementFilterRequest
	if err := c.QueryParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "query params inválidos"})
	}
	if msg := validateStruct(in); msg != "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: msg})
	}
	limit, offset := pageParams(c)
	out, err := h.uc.List(in, limit, offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// SetStatus godoc
// @Summary      Fijar estado de elemento (override)
// @Description  Fija cualquier estado del conjunto sin validar la transición.
// @Tags         elements
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del elemento"
// @Param        body  body  dto.SetElementStatusRequest  true  "status, location_id opcional"
// @Success      200   {object}  dto.ElementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/elements/{id}/status [patch]
func (h *ElementHandler) SetStatus(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	var in dto.SetElementStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if msg := validateStruct(in); msg != "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: msg})
	}
	out, err := h.uc.SetStatus(id, in)
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "elemento no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Label godoc
// @Summary      Etiqueta de marcado del elemento (PDF)
// @Description  Genera el PDF con el código y su símbolo DataMatrix para imprimir y adherir al elemento.
// @Tags         elements
// @Security     Bearer
// @Produce      application/pdf
// @Param        id   path  string  true  "ID del elemento"
// @Success      200  {file}  file
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/elements/{id}/label [get]
func (h *ElementHandler) Label(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	pdfBytes, err := h.labelUC.Generate(c.Context(), id)
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "elemento no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="etiqueta.pdf"`)
	return c.Send(pdfBytes)
}

// pageParams extrae limit/offset de la query con defaults y tope.
func pageParams(c *fiber.Ctx) (int, int) {
	limit := c.QueryInt("limit", 20)
	offset := c.QueryInt("offset", 0)
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
