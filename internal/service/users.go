package service

import (
	"context"

	"postboard/internal/adapter/out/storage"
	"postboard/internal/model"
	"postboard/pkg/pagination"
)

//go:generate mockgen -source=users.go -destination=./users_mock.go -package=service
type UserStorage interface {
	ListUsers(ctx context.Context, params storage.ListParams) ([]model.User, error)
	GetUserByID(ctx context.Context, userID int64) (model.User, error)
	CreateUser(ctx context.Context, user model.User) (model.User, error)
	UpdateUser(ctx context.Context, userID int64, patch model.UserPatch) (model.User, error)
	DeleteUser(ctx context.Context, userID int64) error
}

type UserService struct {
	userStorage UserStorage
}

func NewUserService(userStorage UserStorage) *UserService {
	return &UserService{
		userStorage: userStorage,
	}
}

func (s *UserService) ListUsers(ctx context.Context, in pagination.PageRequest) (pagination.Page[model.User], error) {
	page, err := fetchPage(ctx, in, s.userStorage.ListUsers, func(u model.User) int64 { return u.ID })
	if err != nil {
		return page, storageError(ctx, "list users", err)
	}
	return page, nil
}

func (s *UserService) GetUserByID(ctx context.Context, userID int64) (model.User, error) {
	if err := checkID("user", userID); err != nil {
		return model.User{}, err
	}
	u, err := s.userStorage.GetUserByID(ctx, userID)
	if err != nil {
		return model.User{}, storageError(ctx, "get user", err)
	}
	return u, nil
}

func (s *UserService) CreateUser(ctx context.Context, req CreateUserRequest) (model.User, error) {
	if err := validateRequest(req); err != nil {
		return model.User{}, err
	}
	u, err := s.userStorage.CreateUser(ctx, model.User{
		Email: req.Email,
		Name:  req.Name,
	})
	if err != nil {
		return model.User{}, storageError(ctx, "create user", err)
	}
	return u, nil
}

func (s *UserService) UpdateUser(ctx context.Context, userID int64, req UpdateUserRequest) (model.User, error) {
	if err := checkID("user", userID); err != nil {
		return model.User{}, err
	}
	if err := validateRequest(req); err != nil {
		return model.User{}, err
	}
	u, err := s.userStorage.UpdateUser(ctx, userID, model.UserPatch{
		Email: req.Email,
		Name:  req.Name,
	})
	if err != nil {
		return model.User{}, storageError(ctx, "update user", err)
	}
	return u, nil
}

func (s *UserService) DeleteUser(ctx context.Context, userID int64) error {
	if err := checkID("user", userID); err != nil {
		return err
	}
	if err := s.userStorage.DeleteUser(ctx, userID); err != nil {
		return storageError(ctx, "delete user", err)
	}
	return nil
}
