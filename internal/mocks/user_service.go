package mocks

import (
	"context"
	"errors"

	"github.com/correialeo/meandai/internal/domain"
	"github.com/correialeo/meandai/internal/service"
	"github.com/google/uuid"
)

// ErrNotConfigured is returned by mock methods whose function field is nil.
var ErrNotConfigured = errors.New("mock method not configured")

// MockUserService implements service.UserService with function fields.
type MockUserService struct {
	RegisterFn       func(ctx context.Context, params service.RegisterParams) (*domain.User, error)
	GetByIDFn        func(ctx context.Context, id uuid.UUID) (*domain.User, error)
	ListFn           func(ctx context.Context, page, pageSize int) ([]*domain.User, int, error)
	UpdateProfileFn  func(ctx context.Context, id uuid.UUID, params service.ProfileParams) (*domain.User, error)
	ChangePasswordFn func(ctx context.Context, id uuid.UUID, currentPassword, newPassword string) error
	ResetPasswordFn  func(ctx context.Context, id uuid.UUID, newPassword string) error
	DeleteFn         func(ctx context.Context, id uuid.UUID) error
}

var _ service.UserService = (*MockUserService)(nil)

func (m *MockUserService) Register(ctx context.Context, params service.RegisterParams) (*domain.User, error) {
	if m.RegisterFn == nil {
		return nil, ErrNotConfigured
	}
	return m.RegisterFn(ctx, params)
}

func (m *MockUserService) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if m.GetByIDFn == nil {
		return nil, ErrNotConfigured
	}
	return m.GetByIDFn(ctx, id)
}

func (m *MockUserService) List(ctx context.Context, page, pageSize int) ([]*domain.User, int, error) {
	if m.ListFn == nil {
		return nil, 0, ErrNotConfigured
	}
	return m.ListFn(ctx, page, pageSize)
}

func (m *MockUserService) UpdateProfile(
	ctx context.Context,
	id uuid.UUID,
	params service.ProfileParams,
) (*domain.User, error) {
	if m.UpdateProfileFn == nil {
		return nil, ErrNotConfigured
	}
	return m.UpdateProfileFn(ctx, id, params)
}

func (m *MockUserService) ChangePassword(ctx context.Context, id uuid.UUID, currentPassword, newPassword string) error {
	if m.ChangePasswordFn == nil {
		return ErrNotConfigured
	}
	return m.ChangePasswordFn(ctx, id, currentPassword, newPassword)
}

func (m *MockUserService) ResetPassword(ctx context.Context, id uuid.UUID, newPassword string) error {
	if m.ResetPasswordFn == nil {
		return ErrNotConfigured
	}
	return m.ResetPasswordFn(ctx, id, newPassword)
}

func (m *MockUserService) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFn == nil {
		return ErrNotConfigured
	}
	return m.DeleteFn(ctx, id)
}
