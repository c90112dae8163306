package repo

import (
	"context"

	dom "github.com/egonzalezhe/techflow/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

// ServiceRepo provides catalog persistence.
type ServiceRepo interface {
	List(ctx context.Context) ([]dom.Service, error)
	GetByID(ctx context.Context, id int64) (dom.Service, error)
	Create(ctx context.Context, s dom.Service) (dom.Service, error)
	Delete(ctx context.Context, id int64) error
}

// PGServiceRepo implements ServiceRepo with Postgres.
type PGServiceRepo struct {
	db *pgxpool.Pool
}

// NewPGServiceRepo returns a new PGServiceRepo.
func NewPGServiceRepo(db *pgxpool.Pool) *PGServiceRepo {
	return &PGServiceRepo{db: db}
}

// List returns every service ordered by ascending id.
func (r *PGServiceRepo) List(ctx context.Context) ([]dom.Service, error) {
	query := `
		SELECT id, nombre, descripcion, precio, stock, promocion, icono, created_at
		FROM servicios ORDER BY id ASC`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var list []dom.Service
	for rows.Next() {
		var s dom.Service
		if err := rows.Scan(&s.ID, &s.Name, &s.Description, &s.Price, &s.Stock,
			&s.OnPromotion, &s.Icon, &s.CreatedAt); err != nil {
			return nil, err
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

// GetByID returns the service by id. pgx.ErrNoRows when absent.
func (r *PGServiceRepo) GetByID(ctx context.Context, id int64) (dom.Service, error) {
	query := `
		SELECT id, nombre, descripcion, precio, stock, promocion, icono, created_at
		FROM servicios WHERE id = $1`
	var s dom.Service
	err := r.db.QueryRow(ctx, query, id).Scan(
		&s.ID, &s.Name, &s.Description, &s.Price, &s.Stock,
		&s.OnPromotion, &s.Icon, &s.CreatedAt,
	)
	return s, err
}

// Create inserts a new service and returns it with the generated id.
func (r *PGServiceRepo) Create(ctx context.Context, s dom.Service) (dom.Service, error) {
	query := `
		INSERT INTO servicios (nombre, descripcion, precio, stock, promocion, icono)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, nombre, descripcion, precio, stock, promocion, icono, created_at`
	var out dom.Service
	err := r.db.QueryRow(ctx, query, s.Name, s.Description, s.Price, s.Stock,
		s.OnPromotion, s.Icon).Scan(
		&out.ID, &out.Name, &out.Description, &out.Price, &out.Stock,
		&out.OnPromotion, &out.Icon, &out.CreatedAt,
	)
	return out, err
}

// Delete removes the row if present. Deleting an absent id is a no-op.
func (r *PGServiceRepo) Delete(ctx context.Context, id int64) error {
	_, err := r.db.Exec(ctx, `DELETE FROM servicios WHERE id = $1`, id)
	return err
}
