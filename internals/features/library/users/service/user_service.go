// file: internals/features/library/users/service/user_service.go
package service

import (
	"context"
	"log"

	dto "github.com/guipadovan/library-manager/internals/features/library/users/dto"
	model "github.com/guipadovan/library-manager/internals/features/library/users/model"
	"github.com/guipadovan/library-manager/internals/helpers/apperror"
)

type UserRepository interface {
	FindByID(ctx context.Context, id int64) (*model.UserModel, error)
	Save(ctx context.Context, m *model.UserModel) error
	DeleteByID(ctx context.Context, id int64) (int64, error)
	List(ctx context.Context, offset, limit int) ([]model.UserModel, int64, error)
}

type UserService struct {
	repo UserRepository
}

func NewUserService(repo UserRepository) *UserService {
	return &UserService{repo: repo}
}

// GetUser returns (nil, nil) when absent.
func (s *UserService) GetUser(ctx context.Context, id int64) (*model.UserModel, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *UserService) ListUsers(ctx context.Context, offset, limit int) ([]model.UserModel, int64, error) {
	return s.repo.List(ctx, offset, limit)
}

func (s *UserService) CreateUser(ctx context.Context, req dto.UserRequest) (*model.UserModel, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, err
	}
	m := req.ToModel()
	if err := s.repo.Save(ctx, m); err != nil {
		return nil, err
	}
	log.Printf("[INFO] user created id=%d", m.UsersID)
	return m, nil
}

func (s *UserService) UpdateUser(ctx context.Context, id int64, req dto.UserRequest) (*model.UserModel, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, err
	}
	m, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, apperror.NotFound("User", id)
	}
	req.ApplyToModel(m)
	if err := s.repo.Save(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

// DeleteUser reports whether a row was removed. Leases of the user go with it.
func (s *UserService) DeleteUser(ctx context.Context, id int64) (bool, error) {
	n, err := s.repo.DeleteByID(ctx, id)
	if err != nil {
		return false, err
	}
	if n > 0 {
		log.Printf("[INFO] user deleted id=%d", id)
	}
	return n > 0, nil
}
