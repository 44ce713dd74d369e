package repository

import (
	"context"
	"errors"
	"fmt"

	"learning_platform/internal/model"

	"github.com/jackc/pgx/v5"
)

// ErrDuplicateEmail is returned when the (role, email) unique constraint rejects an insert.
var ErrDuplicateEmail = errors.New("email already registered for this role")

// PrincipalRepository defines operations for student, teacher and admin records
type PrincipalRepository interface {
	Create(ctx context.Context, p *model.Principal) error
	FindByEmail(ctx context.Context, role, email string) (*model.Principal, error)
	FindByID(ctx context.Context, id string) (*model.Principal, error)
}

type principalRepository struct {
	db DBTX
}

// NewPrincipalRepository creates a new PrincipalRepository
func NewPrincipalRepository(db DBTX) PrincipalRepository {
	return &principalRepository{db: db}
}

// Create inserts a principal. The ID must already be set.
func (r *principalRepository) Create(ctx context.Context, p *model.Principal) error {
	sql := `INSERT INTO principals (id, name, phone_number, email, role, password_hash, branch, department, created_at)
            VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING created_at`
	err := r.db.QueryRow(ctx, sql, p.ID, p.Name, p.PhoneNumber, p.Email, p.Role, p.PasswordHash, p.Branch, p.Department, p.CreatedAt).
		Scan(&p.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateEmail
		}
		return fmt.Errorf("failed to create %s: %w", p.Role, err)
	}
	return nil
}

// FindByEmail looks up a principal within one role's collection.
// Returns (nil, nil) when there is no match.
func (r *principalRepository) FindByEmail(ctx context.Context, role, email string) (*model.Principal, error) {
	sql := `SELECT id, name, phone_number, email, role, password_hash, branch, department, created_at
            FROM principals WHERE role = $1 AND email = $2`
	p, err := scanPrincipal(r.db.QueryRow(ctx, sql, role, email))
	if err != nil {
		return nil, fmt.Errorf("failed to find %s by email: %w", role, err)
	}
	return p, nil
}

// FindByID retrieves a principal by its ID
func (r *principalRepository) FindByID(ctx context.Context, id string) (*model.Principal, error) {
	sql := `SELECT id, name, phone_number, email, role, password_hash, branch, department, created_at
            FROM principals WHERE id = $1`
	p, err := scanPrincipal(r.db.QueryRow(ctx, sql, id))
	if err != nil {
		return nil, fmt.Errorf("failed to find principal by ID: %w", err)
	}
	return p, nil
}

func scanPrincipal(row pgx.Row) (*model.Principal, error) {
	p := &model.Principal{}
	err := row.Scan(&p.ID, &p.Name, &p.PhoneNumber, &p.Email, &p.Role, &p.PasswordHash, &p.Branch, &p.Department, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return p, nil
}
