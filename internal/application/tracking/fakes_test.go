package tracking_test

import (
	"context"
	"time"

	"github.com/jcastro/trazametal-api/internal/domain/entity"
	"github.com/jcastro/trazametal-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria. El fakeTxRunner emula el rollback de una transacción real:
// si fn falla, restaura el estado previo de los repos.
// ──────────────────────────────────────────────────────────────────────────────

type fakeMovementRepo struct {
	movements []*entity.Movement
	createErr error
}

func (r *fakeMovementRepo) Create(m *entity.Movement) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.movements = append(r.movements, m)
	return nil
}

func (r *fakeMovementRepo) GetByID(id string) (*entity.Movement, error) {
	for _, m := range r.movements {
		if m.ID == id {
			return m, nil
		}
	}
	return nil, nil
}

// ListByElement devuelve los movimientos del elemento, los más recientes primero.
func (r *fakeMovementRepo) ListByElement(elementID string, limit, offset int) ([]*entity.Movement, error) {
	var out []*entity.Movement
	for i := len(r.movements) - 1; i >= 0; i-- {
		if r.movements[i].ElementID == elementID {
			out = append(out, r.movements[i])
		}
	}
	if offset > len(out) {
		offset = len(out)
	}
	out = out[offset:]
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

type fakeElementRepo struct {
	byID         map[string]*entity.Element
	setStatusErr error
}

func newFakeElementRepo() *fakeElementRepo {
	return &fakeElementRepo{byID: make(map[string]*entity.Element)}
}

func (r *fakeElementRepo) Create(e *entity.Element) error {
	cp := *e
	r.byID[e.ID] = &cp
	return nil
}

func (r *fakeElementRepo) GetByID(id string) (*entity.Element, error) {
	e, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *e
	return &cp, nil
}

func (r *fakeElementRepo) GetByCode(code string) (*entity.Element, error) {
	for _, e := range r.byID {
		if e.Code == code {
			cp := *e
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeElementRepo) List(filter repository.ElementFilter, limit, offset int) ([]*entity.Element, error) {
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

func (r *fakeElementRepo) SetStatus(id, status string, locationID *string) error {
	if r.setStatusErr != nil {
		return r.setStatusErr
	}
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

type fakePointRepo struct {
	byID map[string]*entity.ControlPoint
}

func newFakePointRepo() *fakePointRepo {
	return &fakePointRepo{byID: make(map[string]*entity.ControlPoint)}
}

func (r *fakePointRepo) Create(p *entity.ControlPoint) error {
	cp := *p
	r.byID[p.ID] = &cp
	return nil
}

func (r *fakePointRepo) GetByID(id string) (*entity.ControlPoint, error) {
	p, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakePointRepo) List() ([]*entity.ControlPoint, error) {
	var out []*entity.ControlPoint
	for _, p := range r.byID {
		cp := *p
		out = append(out, &cp)
	}
	return out, nil
}

// fakeTxRunner pasa los fakes a fn y, si fn falla, restaura el estado previo
// (rollback emulado).
type fakeTxRunner struct {
	mov *fakeMovementRepo
	el  *fakeElementRepo
	pt  *fakePointRepo
}

func (r *fakeTxRunner) Run(_ context.Context, fn func(
	movRepo repository.MovementRepository,
	elementRepo repository.ElementRepository,
	pointRepo repository.ControlPointRepository,
) error) error {
	movSnap := make([]*entity.Movement, len(r.mov.movements))
	copy(movSnap, r.mov.movements)
	elSnap := make(map[string]*entity.Element, len(r.el.byID))
	for k, v := range r.el.byID {
		cp := *v
		elSnap[k] = &cp
	}
	if err := fn(r.mov, r.el, r.pt); err != nil {
		r.mov.movements = movSnap
		r.el.byID = elSnap
		return err
	}
	return nil
}
