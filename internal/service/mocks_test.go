package service_test

import (
	"auth-web-server/internal/model"
	"context"

	"github.com/stretchr/testify/mock"
)

// ===== MOCKS =====

// MockUserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id int64) (*model.User, error) {
	args := m.Called(ctx, id)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepository) Save(ctx context.Context, user *model.User) (*model.User, error) {
	args := m.Called(ctx, user)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

// MockPostRepository
type MockPostRepository struct {
	mock.Mock
}

func (m *MockPostRepository) SaveAll(ctx context.Context, posts []model.Post) ([]model.Post, error) {
	args := m.Called(ctx, posts)
	if p, ok := args.Get(0).([]model.Post); ok {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockPostRepository) FindAll(ctx context.Context) ([]model.Post, error) {
	args := m.Called(ctx)
	if p, ok := args.Get(0).([]model.Post); ok {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

// MockPostArchive
type MockPostArchive struct {
	mock.Mock
}

func (m *MockPostArchive) Archive(ctx context.Context, key string, payload []byte) error {
	args := m.Called(ctx, key, payload)
	return args.Error(0)
}
