package service

import (
	"context"
	"sync"

	"learning_platform/internal/model"
	"learning_platform/internal/repository"

	"github.com/stretchr/testify/mock"
)

type mockPrincipalRepo struct {
	mock.Mock
}

func (m *mockPrincipalRepo) Create(ctx context.Context, p *model.Principal) error {
	return m.Called(ctx, p).Error(0)
}

func (m *mockPrincipalRepo) FindByEmail(ctx context.Context, role, email string) (*model.Principal, error) {
	args := m.Called(ctx, role, email)
	p, _ := args.Get(0).(*model.Principal)
	return p, args.Error(1)
}

func (m *mockPrincipalRepo) FindByID(ctx context.Context, id string) (*model.Principal, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(*model.Principal)
	return p, args.Error(1)
}

type mockCourseRepo struct {
	mock.Mock
}

func (m *mockCourseRepo) Create(ctx context.Context, c *model.Course) error {
	return m.Called(ctx, c).Error(0)
}

func (m *mockCourseRepo) FindByID(ctx context.Context, id string) (*model.Course, error) {
	args := m.Called(ctx, id)
	c, _ := args.Get(0).(*model.Course)
	return c, args.Error(1)
}

type mockLessonRepo struct {
	mock.Mock
}

func (m *mockLessonRepo) Create(ctx context.Context, l *model.Lesson) error {
	return m.Called(ctx, l).Error(0)
}

type mockTokenIssuer struct {
	mock.Mock
}

func (m *mockTokenIssuer) GenerateToken(p *model.Principal) (string, error) {
	args := m.Called(p)
	return args.String(0), args.Error(1)
}

// memPrincipalRepo enforces the (role, email) constraint like the real table.
type memPrincipalRepo struct {
	mu   sync.Mutex
	rows map[string]*model.Principal
}

func newMemPrincipalRepo() *memPrincipalRepo {
	return &memPrincipalRepo{rows: map[string]*model.Principal{}}
}

func (r *memPrincipalRepo) Create(_ context.Context, p *model.Principal) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := p.Role + "|" + p.Email
	if _, ok := r.rows[key]; ok {
		return repository.ErrDuplicateEmail
	}
	cp := *p
	r.rows[key] = &cp
	return nil
}

func (r *memPrincipalRepo) FindByEmail(_ context.Context, role, email string) (*model.Principal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if p, ok := r.rows[role+"|"+email]; ok {
		cp := *p
		return &cp, nil
	}
	return nil, nil
}

func (r *memPrincipalRepo) FindByID(_ context.Context, id string) (*model.Principal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.rows {
		if p.ID == id {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}
