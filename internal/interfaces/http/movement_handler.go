package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jcastro/trazametal-api/internal/application/dto"
	"github.com/jcastro/trazametal-api/internal/application/tracking"
	"github.com/jcastro/trazametal-api/internal/domain"
	"github.com/jcastro/trazametal-api/internal/domain/entity"
)

// MovementHandler maneja el registro de movimientos y la consulta de la
// historia de un elemento.
type MovementHandler struct {
	recordUC  *tracking.RecordMovementUseCase
	historyUC *tracking.HistoryUseCase
}

// NewMovementHandler construye el handler.
func NewMovementHandler(recordUC *tracking.RecordMovementUseCase, historyUC *tracking.HistoryUseCase) *MovementHandler {
	return &MovementHandler{recordUC: recordUC, historyUC: historyUC}
}

// Record godoc
// @Summary      Registrar movimiento de elemento
// @Description  Inserta el movimiento y en la misma transacción deriva y aplica el nuevo estado/ubicación del elemento según el tipo del punto destino.
// @Tags         movements
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RecordMovementRequest  true  "element_id, to_location_id, operation (reception|shipping|inventory)"
// @Success      201   {object}  dto.MovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/movements [post]
func (h *MovementHandler) Record(c *fiber.Ctx) error {
	var in dto.RecordMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if msg := validateStruct(in); msg != "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: msg})
	}
	movement, err := h.recordUC.RecordFromRequest(c.Context(), GetUserID(c), in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "entrada inválida"})
		}
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "elemento o punto de control no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(toMovementResponse(movement))
}

// HistoryByElement godoc
// @Summary      Historia de movimientos de un elemento
// @Description  Devuelve todos los movimientos del elemento, los más recientes primero. El registro es append-only.
// @Tags         movements
// @Security     Bearer
// @Produce      json
// @Param        elementId  path   string  true   "ID del elemento"
// @Param        limit      query  int     false  "Límite"   default(20)
// @Param        offset     query  int     false  "Offset"   default(0)
// @Success      200  {object}  dto.MovementListResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/movements/element/{elementId} [get]
func (h *MovementHandler) HistoryByElement(c *fiber.Ctx) error {
	elementID := c.Params("elementId")
	if elementID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "elementId es requerido"})
	}
	limit, offset := pageParams(c)
	list, err := h.historyUC.ListByElement(elementID, limit, offset)
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "elemento no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	items := make([]dto.MovementResponse, 0, len(list))
	for _, m := range list {
		items = append(items, *toMovementResponse(m))
	}
	return c.JSON(dto.MovementListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	})
}

func toMovementResponse(m *entity.Movement) *dto.MovementResponse {
	if m == nil {
		return nil
	}
	return &dto.MovementResponse{
		ID:             m.ID,
		ElementID:      m.ElementID,
		FromLocationID: m.FromLocationID,
		ToLocationID:   m.ToLocationID,
		Operation:      m.Operation,
		OperatorID:     m.OperatorID,
		Comments:       m.Comments,
		PhotoURL:       m.PhotoURL,
		Latitude:       m.Latitude,
		Longitude:      m.Longitude,
		Date:           m.Date,
		CreatedAt:      m.CreatedAt,
	}
}
