package orm

import (
	"context"
	"fmt"
	"postboard/internal/adapter/out/storage"
	"postboard/internal/model"
	"postboard/internal/service"
	"postboard/pkg/tableinfo"
	"time"

	"gorm.io/gorm"
)

type UserStorage struct {
	db *gorm.DB
}

func NewUserStorage(db *gorm.DB) *UserStorage {
	return &UserStorage{db: db}
}

func (s *UserStorage) ListUsers(ctx context.Context, params storage.ListParams) ([]model.User, error) {
	var rows []userModel
	if err := listQuery(s.db.WithContext(ctx), params).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("select users: %w", err)
	}
	out := make([]model.User, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.toDomain())
	}
	return out, nil
}

func (s *UserStorage) GetUserByID(ctx context.Context, userID int64) (model.User, error) {
	var row userModel
	if err := s.db.WithContext(ctx).First(&row, userID).Error; err != nil {
		return model.User{}, notFound(err)
	}
	return row.toDomain(), nil
}

func (s *UserStorage) CreateUser(ctx context.Context, in model.User) (model.User, error) {
	now := time.Now().UTC()
	row := userModel{
		Email:     in.Email,
		Name:      in.Name,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
		return model.User{}, fmt.Errorf("insert user: %w", err)
	}
	return row.toDomain(), nil
}

func (s *UserStorage) UpdateUser(ctx context.Context, userID int64, patch model.UserPatch) (model.User, error) {
	updates := map[string]any{tableinfo.UserUpdatedAtColumn: time.Now().UTC()}
	if patch.Email != nil {
		updates[tableinfo.UserEmailColumn] = *patch.Email
	}
	if patch.Name != nil {
		updates[tableinfo.UserNameColumn] = *patch.Name
	}

	res := s.db.WithContext(ctx).
		Model(&userModel{}).
		Where("id = ?", userID).
		Updates(updates)
	if res.Error != nil {
		return model.User{}, fmt.Errorf("update user: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return model.User{}, service.ErrNotFound
	}
	return s.GetUserByID(ctx, userID)
}

func (s *UserStorage) DeleteUser(ctx context.Context, userID int64) error {
	res := s.db.WithContext(ctx).Delete(&userModel{}, userID)
	if res.Error != nil {
		return fmt.Errorf("delete user: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return service.ErrNotFound
	}
	return nil
}
