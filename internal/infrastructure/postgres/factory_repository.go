package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jcastro/trazametal-api/internal/domain/entity"
	"github.com/jcastro/trazametal-api/internal/domain/repository"
)

var _ repository.FactoryRepository = (*FactoryRepo)(nil)

// FactoryRepo implementación del puerto FactoryRepository sobre PostgreSQL.
type FactoryRepo struct {
	q Querier
}

// NewFactoryRepository construye el adaptador de persistencia para fábricas.
func NewFactoryRepository(q Querier) *FactoryRepo {
	return &FactoryRepo{q: q}
}

// Create persiste una nueva fábrica.
func (r *FactoryRepo) Create(factory *entity.Factory) error {
	query := `
		INSERT INTO factories (id, name, address, phone, email, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		factory.ID, factory.Name, factory.Address, factory.Phone, factory.Email,
		factory.CreatedAt, factory.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert factory: %w", err)
	}
	return nil
}

// GetByID obtiene una fábrica por ID.
func (r *FactoryRepo) GetByID(id string) (*entity.Factory, error) {
	query := `
		SELECT id, name, address, phone, email, created_at, updated_at
		FROM factories WHERE id = $1`
	var f entity.Factory
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&f.ID, &f.Name, &f.Address, &f.Phone, &f.Email, &f.CreatedAt, &f.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get factory: %w", err)
	}
	return &f, nil
}

// List lista todas las fábricas.
func (r *FactoryRepo) List() ([]*entity.Factory, error) {
	query := `
		SELECT id, name, address, phone, email, created_at, updated_at
		FROM factories ORDER BY created_at DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list factories: %w", err)
	}
	defer rows.Close()
	var list []*entity.Factory
	for rows.Next() {
		var f entity.Factory
		if err := rows.Scan(&f.ID, &f.Name, &f.Address, &f.Phone, &f.Email, &f.CreatedAt, &f.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan factory: %w", err)
		}
		list = append(list, &f)
	}
	return list, rows.Err()
}
