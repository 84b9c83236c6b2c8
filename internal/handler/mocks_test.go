package handler_test

import (
	"auth-web-server/internal/model"
	"context"

	"github.com/stretchr/testify/mock"
)

// ===== MOCKS =====

type MockAuthenticationService struct {
	mock.Mock
}

func (m *MockAuthenticationService) SignIn(ctx context.Context, email, password string) (*model.TokensPair, error) {
	args := m.Called(ctx, email, password)
	if tokens, ok := args.Get(0).(*model.TokensPair); ok {
		return tokens, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAuthenticationService) Refresh(ctx context.Context, refreshToken string) (*model.TokensPair, error) {
	args := m.Called(ctx, refreshToken)
	if tokens, ok := args.Get(0).(*model.TokensPair); ok {
		return tokens, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAuthenticationService) Logout(ctx context.Context, refreshToken string) {
	m.Called(ctx, refreshToken)
}

func (m *MockAuthenticationService) ResolveIdentity(ctx context.Context, subject string) (*model.Identity, error) {
	args := m.Called(ctx, subject)
	if identity, ok := args.Get(0).(*model.Identity); ok {
		return identity, args.Error(1)
	}
	return nil, args.Error(1)
}

type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) Register(ctx context.Context, user *model.User, password string) (*model.User, error) {
	args := m.Called(ctx, user, password)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserService) GetUserByID(ctx context.Context, id int64) (*model.User, error) {
	args := m.Called(ctx, id)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserService) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

type MockPostService struct {
	mock.Mock
}

func (m *MockPostService) FetchAndSave(ctx context.Context) ([]model.Post, error) {
	args := m.Called(ctx)
	if posts, ok := args.Get(0).([]model.Post); ok {
		return posts, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockPostService) GetAll(ctx context.Context) ([]model.Post, error) {
	args := m.Called(ctx)
	if posts, ok := args.Get(0).([]model.Post); ok {
		return posts, args.Error(1)
	}
	return nil, args.Error(1)
}
