package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jcastro/trazametal-api/internal/domain"
	"github.com/jcastro/trazametal-api/internal/domain/entity"
	"github.com/jcastro/trazametal-api/internal/domain/repository"
)

var _ repository.ElementRepository = (*ElementRepo)(nil)

// ElementRepo implementación del puerto ElementRepository sobre PostgreSQL
// (usable con pool o tx).
type ElementRepo struct {
	q Querier
}

// NewElementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewElementRepository(q Querier) *ElementRepo {
	return &ElementRepo{q: q}
}

const elementColumns = `id, code, type, status, drawing_ref, batch, gost, length, width, height, weight, location_id, created_by, created_at, updated_at`

// Create persiste un nuevo elemento. El código tiene constraint único;
// la violación se mapea a ErrCodeAlreadyExists.
func (r *ElementRepo) Create(element *entity.Element) error {
	query := `
		INSERT INTO elements (` + elementColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	createdBy := (*string)(nil)
	if element.CreatedBy != "" {
		createdBy = &element.CreatedBy
	}
	_, err := r.q.Exec(context.Background(), query,
		element.ID, element.Code, element.Type, element.Status,
		element.DrawingRef, element.Batch, element.GOST,
		element.Length, element.Width, element.Height, element.Weight,
		element.LocationID, createdBy, element.CreatedAt, element.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrCodeAlreadyExists
		}
		return fmt.Errorf("insert element: %w", err)
	}
	return nil
}

// GetByID obtiene un elemento por ID.
func (r *ElementRepo) GetByID(id string) (*entity.Element, error) {
	query := `SELECT ` + elementColumns + ` FROM elements WHERE id = $1`
	return r.scanOne(query, id)
}

// GetByCode obtiene un elemento por su código de marcado.
func (r *ElementRepo) GetByCode(code string) (*entity.Element, error) {
	query := `SELECT ` + elementColumns + ` FROM elements WHERE code = $1`
	return r.scanOne(query, code)
}

// List lista elementos con filtros opcionales combinados con AND,
// los más recientes primero.
func (r *ElementRepo) List(filter repository.ElementFilter, limit, offset int) ([]*entity.Element, error) {
	query := `SELECT ` + elementColumns + ` FROM elements WHERE 1=1`
	args := []any{}
	pos := 1
	if filter.Status != "" {
		query += fmt.Sprintf(" AND status = $%d", pos)
		args = append(args, filter.Status)
		pos++
	}
	if filter.Type != "" {
		query += fmt.Sprintf(" AND type = $%d", pos)
		args = append(args, filter.Type)
		pos++
	}
	if filter.LocationID != "" {
		query += fmt.Sprintf(" AND location_id = $%d", pos)
		args = append(args, filter.LocationID)
		pos++
	}
	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, limit, offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list elements: %w", err)
	}
	defer rows.Close()
	var list []*entity.Element
	for rows.Next() {
		e, err := scanElement(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, e)
	}
	return list, rows.Err()
}

// SetStatus fija estado y, si locationID no es nil, la ubicación actual.
// Siempre actualiza updated_at. No valida la transición.
func (r *ElementRepo) SetStatus(id, status string, locationID *string) error {
	var cmdErr error
	if locationID != nil {
		_, cmdErr = r.q.Exec(context.Background(),
			`UPDATE elements SET status = $2, location_id = $3, updated_at = $4 WHERE id = $1`,
			id, status, *locationID, time.Now(),
		)
	} else {
		_, cmdErr = r.q.Exec(context.Background(),
			`UPDATE elements SET status = $2, updated_at = $3 WHERE id = $1`,
			id, status, time.Now(),
		)
	}
	if cmdErr != nil {
		return fmt.Errorf("set element status: %w", cmdErr)
	}
	return nil
}

func (r *ElementRepo) scanOne(query string, arg any) (*entity.Element, error) {
	row := r.q.QueryRow(context.Background(), query, arg)
	e, err := scanElement(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get element: %w", err)
	}
	return e, nil
}

// scanElement funciona tanto con pgx.Row como con pgx.Rows.
func scanElement(row pgx.Row) (*entity.Element, error) {
	var e entity.Element
	var createdBy *string
	err := row.Scan(
		&e.ID, &e.Code, &e.Type, &e.Status,
		&e.DrawingRef, &e.Batch, &e.GOST,
		&e.Length, &e.Width, &e.Height, &e.Weight,
		&e.LocationID, &createdBy, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if createdBy != nil {
		e.CreatedBy = *createdBy
	}
	return &e, nil
}
