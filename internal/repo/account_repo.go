package repo

import (
	"context"

	dom "github.com/egonzalezhe/techflow/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

// AccountRepo provides admin account persistence.
type AccountRepo interface {
	GetByUsername(ctx context.Context, username string) (dom.Account, error)
	Create(ctx context.Context, username, passwordHash string) (dom.Account, error)
}

// PGAccountRepo implements AccountRepo with Postgres.
type PGAccountRepo struct {
	db *pgxpool.Pool
}

// NewPGAccountRepo returns a new PGAccountRepo.
func NewPGAccountRepo(db *pgxpool.Pool) *PGAccountRepo {
	return &PGAccountRepo{db: db}
}

// GetByUsername returns the account by username. pgx.ErrNoRows when absent.
func (r *PGAccountRepo) GetByUsername(ctx context.Context, username string) (dom.Account, error) {
	var a dom.Account
	err := r.db.QueryRow(ctx,
		`SELECT id, username, password_hash, role, created_at FROM usuarios WHERE username = $1`,
		username,
	).Scan(&a.ID, &a.Username, &a.PasswordHash, &a.Role, &a.CreatedAt)
	return a, err
}

// Create inserts a new account with the default role and returns it.
func (r *PGAccountRepo) Create(ctx context.Context, username, passwordHash string) (dom.Account, error) {
	query := `
		INSERT INTO usuarios (username, password_hash)
		VALUES ($1, $2)
		RETURNING id, username, password_hash, role, created_at`
	var a dom.Account
	err := r.db.QueryRow(ctx, query, username, passwordHash).Scan(
		&a.ID, &a.Username, &a.PasswordHash, &a.Role, &a.CreatedAt,
	)
	return a, err
}
