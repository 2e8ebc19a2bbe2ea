package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jcastro/trazametal-api/internal/domain/entity"
	"github.com/jcastro/trazametal-api/internal/domain/repository"
)

var _ repository.ControlPointRepository = (*ControlPointRepo)(nil)

// ControlPointRepo implementación del puerto ControlPointRepository sobre
// PostgreSQL (usable con pool o tx).
type ControlPointRepo struct {
	q Querier
}

// NewControlPointRepository construye el adaptador. Pasar pool o tx (Querier).
func NewControlPointRepository(q Querier) *ControlPointRepo {
	return &ControlPointRepo{q: q}
}

// Create persiste un nuevo punto de control.
func (r *ControlPointRepo) Create(point *entity.ControlPoint) error {
	query := `
		INSERT INTO control_points (id, name, type, address, latitude, longitude, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		point.ID, point.Name, point.Type, point.Address,
		point.Latitude, point.Longitude, point.CreatedAt, point.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert control point: %w", err)
	}
	return nil
}

// GetByID obtiene un punto de control por ID.
func (r *ControlPointRepo) GetByID(id string) (*entity.ControlPoint, error) {
	query := `
		SELECT id, name, type, address, latitude, longitude, created_at, updated_at
		FROM control_points WHERE id = $1`
	var p entity.ControlPoint
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.Name, &p.Type, &p.Address, &p.Latitude, &p.Longitude, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get control point: %w", err)
	}
	return &p, nil
}

// List lista todos los puntos de control, los más recientes primero.
func (r *ControlPointRepo) List() ([]*entity.ControlPoint, error) {
	query := `
		SELECT id, name, type, address, latitude, longitude, created_at, updated_at
		FROM control_points ORDER BY created_at DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list control points: %w", err)
	}
	defer rows.Close()
	var list []*entity.ControlPoint
	for rows.Next() {
		var p entity.ControlPoint
		if err := rows.Scan(&p.ID, &p.Name, &p.Type, &p.Address, &p.Latitude, &p.Longitude, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan control point: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}
