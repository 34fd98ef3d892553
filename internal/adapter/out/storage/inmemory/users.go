package inmemory

import (
	"context"
	"postboard/internal/adapter/out/storage"
	"postboard/internal/model"
	"time"
)

type UserStorage struct {
	rows *table[model.User]
}

func NewUserStorage() *UserStorage {
	return &UserStorage{
		rows: newTable[model.User](),
	}
}

func (s *UserStorage) ListUsers(_ context.Context, params storage.ListParams) ([]model.User, error) {
	return s.rows.list(params), nil
}

func (s *UserStorage) GetUserByID(_ context.Context, userID int64) (model.User, error) {
	return s.rows.get(userID)
}

func (s *UserStorage) CreateUser(_ context.Context, in model.User) (model.User, error) {
	now := time.Now().UTC()
	return s.rows.insert(func(id int64) model.User {
		in.ID = id
		in.CreatedAt = now
		in.UpdatedAt = now
		return in
	}), nil
}

func (s *UserStorage) UpdateUser(_ context.Context, userID int64, patch model.UserPatch) (model.User, error) {
	return s.rows.update(userID, func(u model.User) model.User {
		if patch.Email != nil {
			u.Email = *patch.Email
		}
		if patch.Name != nil {
			u.Name = patch.Name
		}
		u.UpdatedAt = time.Now().UTC()
		return u
	})
}

func (s *UserStorage) DeleteUser(_ context.Context, userID int64) error {
	return s.rows.delete(userID)
}
