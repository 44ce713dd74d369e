package handler

import (
	"context"
	"sync"

	"learning_platform/internal/model"
	"learning_platform/internal/repository"
	"learning_platform/internal/service"

	"github.com/stretchr/testify/mock"
)

type memStore struct {
	mu         sync.Mutex
	principals map[string]*model.Principal
	courses    map[string]*model.Course
	lessons    []*model.Lesson
}

func newMemStore() *memStore {
	return &memStore{
		principals: map[string]*model.Principal{},
		courses:    map[string]*model.Course{},
	}
}

type memPrincipals struct{ s *memStore }

func (r memPrincipals) Create(_ context.Context, p *model.Principal) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	key := p.Role + "|" + p.Email
	if _, ok := r.s.principals[key]; ok {
		return repository.ErrDuplicateEmail
	}
	cp := *p
	r.s.principals[key] = &cp
	return nil
}

func (r memPrincipals) FindByEmail(_ context.Context, role, email string) (*model.Principal, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if p, ok := r.s.principals[role+"|"+email]; ok {
		cp := *p
		return &cp, nil
	}
	return nil, nil
}

func (r memPrincipals) FindByID(_ context.Context, id string) (*model.Principal, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, p := range r.s.principals {
		if p.ID == id {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

type memCourses struct{ s *memStore }

func (r memCourses) Create(_ context.Context, c *model.Course) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cp := *c
	r.s.courses[c.ID] = &cp
	return nil
}

func (r memCourses) FindByID(_ context.Context, id string) (*model.Course, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if c, ok := r.s.courses[id]; ok {
		cp := *c
		return &cp, nil
	}
	return nil, nil
}

type memLessons struct{ s *memStore }

func (r memLessons) Create(_ context.Context, l *model.Lesson) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cp := *l
	r.s.lessons = append(r.s.lessons, &cp)
	return nil
}

type mockAuthService struct {
	mock.Mock
}

func (m *mockAuthService) Signup(ctx context.Context, p *model.Principal, password string) error {
	return m.Called(ctx, p, password).Error(0)
}

func (m *mockAuthService) Login(ctx context.Context, role, email, password string) (*model.Principal, string, error) {
	args := m.Called(ctx, role, email, password)
	p, _ := args.Get(0).(*model.Principal)
	return p, args.String(1), args.Error(2)
}

func (m *mockAuthService) SeedAdmin(ctx context.Context, name, email, password string) error {
	return m.Called(ctx, name, email, password).Error(0)
}

var _ service.AuthService = (*mockAuthService)(nil)
