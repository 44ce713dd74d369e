package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"learning_platform/internal/model"
	"learning_platform/internal/repository"
	"learning_platform/internal/utils"

	"github.com/google/uuid"
)

var (
	ErrPrincipalAlreadyExists = errors.New("principal with this email already exists")
	ErrPrincipalNotFound      = errors.New("principal not found")
	ErrInvalidCredentials     = errors.New("invalid credentials")
	ErrInvalidRole            = errors.New("invalid role")
	ErrPasswordTooLong        = errors.New("password must be at most 72 bytes")
)

// TokenIssuer is the part of the token codec the auth service needs.
type TokenIssuer interface {
	GenerateToken(p *model.Principal) (string, error)
}

// AuthService provides signup and login for every principal role
type AuthService interface {
	Signup(ctx context.Context, p *model.Principal, password string) error
	Login(ctx context.Context, role, email, password string) (*model.Principal, string, error)
	SeedAdmin(ctx context.Context, name, email, password string) error
}

type authService struct {
	repo            repository.PrincipalRepository
	tokens          TokenIssuer
	issueLoginToken bool
}

// NewAuthService creates a new AuthService. When issueLoginToken is false,
// Login succeeds without returning a token.
func NewAuthService(repo repository.PrincipalRepository, tokens TokenIssuer, issueLoginToken bool) AuthService {
	return &authService{
		repo:            repo,
		tokens:          tokens,
		issueLoginToken: issueLoginToken,
	}
}

// Signup stores a new principal of p.Role. The existence check here is only a
// fast path; the (role, email) unique constraint is what actually prevents duplicates.
func (s *authService) Signup(ctx context.Context, p *model.Principal, password string) error {
	if !model.IsValidRole(p.Role) {
		return ErrInvalidRole
	}

	existing, err := s.repo.FindByEmail(ctx, p.Role, p.Email)
	if err != nil {
		return fmt.Errorf("failed to check existing %s: %w", p.Role, err)
	}
	if existing != nil {
		return ErrPrincipalAlreadyExists
	}

	hashedPassword, err := utils.HashPassword(password)
	if err != nil {
		if errors.Is(err, utils.ErrPasswordTooLong) {
			return ErrPasswordTooLong
		}
		return err
	}

	p.ID = uuid.NewString()
	p.PasswordHash = hashedPassword
	p.CreatedAt = time.Now()

	if err := s.repo.Create(ctx, p); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return ErrPrincipalAlreadyExists
		}
		return fmt.Errorf("failed to create %s in repository: %w", p.Role, err)
	}
	return nil
}

// Login checks email and password within the role's collection
func (s *authService) Login(ctx context.Context, role, email, password string) (*model.Principal, string, error) {
	if !model.IsValidRole(role) {
		return nil, "", ErrInvalidRole
	}

	p, err := s.repo.FindByEmail(ctx, role, email)
	if err != nil {
		return nil, "", fmt.Errorf("error finding %s by email: %w", role, err)
	}
	if p == nil {
		return nil, "", ErrPrincipalNotFound
	}

	ok, err := utils.VerifyPassword(password, p.PasswordHash)
	if err != nil {
		return nil, "", err
	}
	if !ok {
		return nil, "", ErrInvalidCredentials
	}

	if !s.issueLoginToken {
		return p, "", nil
	}

	token, err := s.tokens.GenerateToken(p)
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate token: %w", err)
	}
	return p, token, nil
}

// SeedAdmin creates the admin account if it does not exist yet. There is no
// signup route for admins, so this is the only way one gets created.
func (s *authService) SeedAdmin(ctx context.Context, name, email, password string) error {
	admin := &model.Principal{
		Name:  name,
		Email: email,
		Role:  model.RoleAdmin,
	}
	err := s.Signup(ctx, admin, password)
	if errors.Is(err, ErrPrincipalAlreadyExists) {
		log.Printf("INFO: admin %s already exists, skipping seed", email)
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to seed admin: %w", err)
	}
	log.Printf("INFO: admin %s seeded (ID: %s)", email, admin.ID)
	return nil
}
