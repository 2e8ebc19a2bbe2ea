package tracking_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcastro/trazametal-api/internal/application/tracking"
	"github.com/jcastro/trazametal-api/internal/domain"
	"github.com/jcastro/trazametal-api/internal/domain/entity"
)

func buildWorld() (*tracking.RecordMovementUseCase, *fakeMovementRepo, *fakeElementRepo, *fakePointRepo) {
	mov := &fakeMovementRepo{}
	el := newFakeElementRepo()
	pt := newFakePointRepo()
	uc := tracking.NewRecordMovementUseCase(&fakeTxRunner{mov: mov, el: el, pt: pt})
	return uc, mov, el, pt
}

func seedElement(el *fakeElementRepo, id, code string) {
	now := time.Now()
	_ = el.Create(&entity.Element{
		ID: id, Code: code, Type: entity.ElementTypeBeam,
		Status: entity.StatusProduction, CreatedBy: "op-1",
		CreatedAt: now, UpdatedAt: now,
	})
}

func seedPoint(pt *fakePointRepo, id, pointType string) {
	now := time.Now()
	_ = pt.Create(&entity.ControlPoint{ID: id, Name: "punto " + id, Type: pointType, CreatedAt: now, UpdatedAt: now})
}

// Movimiento a planta: el elemento queda en production y ubicado en la planta.
func TestRecord_RecepcionEnPlanta_DerivaProduction(t *testing.T) {
	uc, mov, el, pt := buildWorld()
	seedElement(el, "el-1", "BM-2024-000001")
	seedPoint(pt, "pt-factory", entity.PointTypeFactory)

	m, err := uc.Record(context.Background(), tracking.MovementInput{
		ElementID: "el-1", ToLocationID: "pt-factory",
		Operation: entity.OperationReception, OperatorID: "op-1",
	})
	require.NoError(t, err)
	require.NotNil(t, m)
	assert.NotEmpty(t, m.ID)

	got, _ := el.GetByID("el-1")
	assert.Equal(t, entity.StatusProduction, got.Status)
	require.NotNil(t, got.LocationID)
	assert.Equal(t, "pt-factory", *got.LocationID)
	assert.Len(t, mov.movements, 1)
}

// Envío a obra: deriva in_operation de inmediato, sin paso por tránsito.
func TestRecord_EnvioAObra_DerivaInOperation(t *testing.T) {
	uc, _, el, pt := buildWorld()
	seedElement(el, "el-1", "BM-2024-000001")
	seedPoint(pt, "pt-site", entity.PointTypeUsageSite)

	_, err := uc.Record(context.Background(), tracking.MovementInput{
		ElementID: "el-1", ToLocationID: "pt-site",
		Operation: entity.OperationShipping, OperatorID: "op-1",
	})
	require.NoError(t, err)

	got, _ := el.GetByID("el-1")
	assert.Equal(t, entity.StatusInOperation, got.Status)
}

// Inventario en almacén: deriva in_storage sea cual sea la operación.
func TestRecord_InventarioEnAlmacen_DerivaInStorage(t *testing.T) {
	uc, _, el, pt := buildWorld()
	seedElement(el, "el-1", "BM-2024-000001")
	seedPoint(pt, "pt-wh", entity.PointTypeStorage)

	_, err := uc.Record(context.Background(), tracking.MovementInput{
		ElementID: "el-1", ToLocationID: "pt-wh",
		Operation: entity.OperationInventory, OperatorID: "op-1",
	})
	require.NoError(t, err)

	got, _ := el.GetByID("el-1")
	assert.Equal(t, entity.StatusInStorage, got.Status)
}

// Elemento inexistente: falla todo, sin fila de movimiento.
func TestRecord_ElementoInexistente_NoDejaRastro(t *testing.T) {
	uc, mov, _, pt := buildWorld()
	seedPoint(pt, "pt-wh", entity.PointTypeStorage)

	_, err := uc.Record(context.Background(), tracking.MovementInput{
		ElementID: "no-existe", ToLocationID: "pt-wh",
		Operation: entity.OperationReception, OperatorID: "op-1",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, mov.movements, "no debe quedar fila de movimiento")
}

// Destino inexistente: nunca se trata como storage por defecto; falla todo.
func TestRecord_DestinoInexistente_NoDejaRastro(t *testing.T) {
	uc, mov, el, _ := buildWorld()
	seedElement(el, "el-1", "BM-2024-000001")

	_, err := uc.Record(context.Background(), tracking.MovementInput{
		ElementID: "el-1", ToLocationID: "no-existe",
		Operation: entity.OperationReception, OperatorID: "op-1",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, mov.movements)

	got, _ := el.GetByID("el-1")
	assert.Equal(t, entity.StatusProduction, got.Status, "el estado del elemento no debe cambiar")
	assert.Nil(t, got.LocationID)
}

// Origen declarado pero inexistente: también falla (chequeo defensivo).
func TestRecord_OrigenInexistente_Falla(t *testing.T) {
	uc, mov, el, pt := buildWorld()
	seedElement(el, "el-1", "BM-2024-000001")
	seedPoint(pt, "pt-wh", entity.PointTypeStorage)

	from := "no-existe"
	_, err := uc.Record(context.Background(), tracking.MovementInput{
		ElementID: "el-1", ToLocationID: "pt-wh", FromLocationID: &from,
		Operation: entity.OperationShipping, OperatorID: "op-1",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, mov.movements)
}

// Operación fuera del conjunto {reception, shipping, inventory}.
func TestRecord_OperacionInvalida(t *testing.T) {
	uc, _, el, pt := buildWorld()
	seedElement(el, "el-1", "BM-2024-000001")
	seedPoint(pt, "pt-wh", entity.PointTypeStorage)

	_, err := uc.Record(context.Background(), tracking.MovementInput{
		ElementID: "el-1", ToLocationID: "pt-wh",
		Operation: "teleport", OperatorID: "op-1",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Si la actualización de estado falla después de insertar el movimiento, la
// transacción revierte: ni fila ni cambio de estado.
func TestRecord_FalloEnActualizacion_RevierteMovimiento(t *testing.T) {
	uc, mov, el, pt := buildWorld()
	seedElement(el, "el-1", "BM-2024-000001")
	seedPoint(pt, "pt-wh", entity.PointTypeStorage)
	el.setStatusErr = errors.New("conexión perdida")

	_, err := uc.Record(context.Background(), tracking.MovementInput{
		ElementID: "el-1", ToLocationID: "pt-wh",
		Operation: entity.OperationReception, OperatorID: "op-1",
	})
	require.Error(t, err)
	assert.Empty(t, mov.movements, "el rollback debe eliminar la fila del movimiento")

	got, _ := el.GetByID("el-1")
	assert.Equal(t, entity.StatusProduction, got.Status)
}

// La historia devuelve los movimientos más recientes primero.
func TestHistory_MasRecientesPrimero(t *testing.T) {
	uc, mov, el, pt := buildWorld()
	seedElement(el, "el-1", "BM-2024-000001")
	seedPoint(pt, "pt-factory", entity.PointTypeFactory)
	seedPoint(pt, "pt-site", entity.PointTypeUsageSite)

	first, err := uc.Record(context.Background(), tracking.MovementInput{
		ElementID: "el-1", ToLocationID: "pt-factory",
		Operation: entity.OperationReception, OperatorID: "op-1",
	})
	require.NoError(t, err)
	second, err := uc.Record(context.Background(), tracking.MovementInput{
		ElementID: "el-1", ToLocationID: "pt-site",
		Operation: entity.OperationShipping, OperatorID: "op-1",
	})
	require.NoError(t, err)

	historyUC := tracking.NewHistoryUseCase(mov, el)
	history, err := historyUC.ListByElement("el-1", 20, 0)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, second.ID, history[0].ID)
	assert.Equal(t, first.ID, history[1].ID)
}

// Historia de un elemento inexistente: 404, no lista vacía.
func TestHistory_ElementoInexistente(t *testing.T) {
	_, mov, el, _ := buildWorld()
	historyUC := tracking.NewHistoryUseCase(mov, el)
	_, err := historyUC.ListByElement("no-existe", 20, 0)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
