package usecase_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcastro/trazametal-api/internal/application/dto"
	"github.com/jcastro/trazametal-api/internal/application/usecase"
	"github.com/jcastro/trazametal-api/internal/domain"
	"github.com/jcastro/trazametal-api/internal/domain/entity"
	"github.com/jcastro/trazametal-api/internal/domain/repository"
)

// fake en memoria del puerto ElementRepository.
type memElementRepo struct {
	byID map[string]*entity.Element
}

func newMemElementRepo() *memElementRepo {
	return &memElementRepo{byID: make(map[string]*entity.Element)}
}

func (r *memElementRepo) Create(e *entity.Element) error {
	cp := *e
	r.byID[e.ID] = &cp
	return nil
}

func (r *memElementRepo) GetByID(id string) (*entity.Element, error) {
	e, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *e
	return &cp, nil
}

func (r *memElementRepo) GetByCode(code string) (*entity.Element, error) {
	for _, e := range r.byID {
		if e.Code == code {
			cp := *e
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memElementRepo) List(filter repository.ElementFilter, limit, offset int) ([]*entity.Element, error) {
	var out []*entity.Element
	for _, e := range r.byID {
		if filter.Status != "" && e.Status != filter.Status {
			continue
		}
		if filter.Type != "" && e.Type != filter.Type {
			continue
		}
		if filter.LocationID != "" && (e.LocationID == nil || *e.LocationID != filter.LocationID) {
			continue
		}
		cp := *e
		out = append(out, &cp)
	}
	return out, nil
}

func (r *memElementRepo) SetStatus(id, status string, locationID *string) error {
	e, ok := r.byID[id]
	if !ok {
		return nil
	}
	e.Status = status
	if locationID != nil {
		e.LocationID = locationID
	}
	e.UpdatedAt = time.Now()
	return nil
}

// El alta siempre arranca en production y sin ubicación, ignore lo que venga.
func TestElementCreate_EstadoInicialProduction(t *testing.T) {
	repo := newMemElementRepo()
	uc := usecase.NewElementUseCase(repo)

	out, err := uc.Create("op-1", dto.CreateElementRequest{
		Code: "BM-2024-001547",
		Type: entity.ElementTypeBeam,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.StatusProduction, out.Status)
	assert.Nil(t, out.LocationID)
	assert.Equal(t, "op-1", out.CreatedBy)
	assert.NotEmpty(t, out.ID)
}

// El código de marcado es único: el segundo alta con el mismo código falla
// con un error distinguible (409 en la frontera).
func TestElementCreate_CodigoDuplicado(t *testing.T) {
	repo := newMemElementRepo()
	uc := usecase.NewElementUseCase(repo)

	_, err := uc.Create("op-1", dto.CreateElementRequest{Code: "BM-2024-001547", Type: entity.ElementTypeBeam})
	require.NoError(t, err)

	_, err = uc.Create("op-2", dto.CreateElementRequest{Code: "BM-2024-001547", Type: entity.ElementTypeColumn})
	assert.ErrorIs(t, err, domain.ErrCodeAlreadyExists)
}

// El override fija cualquier estado sin validar la transición.
func TestElementSetStatus_OverrideSinValidarTransicion(t *testing.T) {
	repo := newMemElementRepo()
	uc := usecase.NewElementUseCase(repo)

	created, err := uc.Create("op-1", dto.CreateElementRequest{Code: "CL-2024-000002", Type: entity.ElementTypeColumn})
	require.NoError(t, err)

	// production → in_operation directamente: permitido por diseño del override.
	out, err := uc.SetStatus(created.ID, dto.SetElementStatusRequest{Status: entity.StatusInOperation})
	require.NoError(t, err)
	assert.Equal(t, entity.StatusInOperation, out.Status)

	// y de vuelta a in_transit, también sin objeción.
	loc := "pt-wh"
	out, err = uc.SetStatus(created.ID, dto.SetElementStatusRequest{Status: entity.StatusInTransit, LocationID: &loc})
	require.NoError(t, err)
	assert.Equal(t, entity.StatusInTransit, out.Status)
	require.NotNil(t, out.LocationID)
	assert.Equal(t, "pt-wh", *out.LocationID)
}

func TestElementSetStatus_NoEncontrado(t *testing.T) {
	uc := usecase.NewElementUseCase(newMemElementRepo())
	_, err := uc.SetStatus("no-existe", dto.SetElementStatusRequest{Status: entity.StatusInStorage})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Los filtros del listado se combinan con AND.
func TestElementList_FiltrosAND(t *testing.T) {
	repo := newMemElementRepo()
	uc := usecase.NewElementUseCase(repo)

	a, _ := uc.Create("op-1", dto.CreateElementRequest{Code: "BM-1", Type: entity.ElementTypeBeam})
	_, _ = uc.Create("op-1", dto.CreateElementRequest{Code: "CL-1", Type: entity.ElementTypeColumn})

	_, err := uc.SetStatus(a.ID, dto.SetElementStatusRequest{Status: entity.StatusInStorage})
	require.NoError(t, err)

	out, err := uc.List(dto.ElementFilterRequest{Status: entity.StatusInStorage, Type: entity.ElementTypeBeam}, 20, 0)
	require.NoError(t, err)
	require.Len(t, out.Items, 1)
	assert.Equal(t, "BM-1", out.Items[0].Code)

	out, err = uc.List(dto.ElementFilterRequest{Status: entity.StatusInStorage, Type: entity.ElementTypeColumn}, 20, 0)
	require.NoError(t, err)
	assert.Empty(t, out.Items)
}
