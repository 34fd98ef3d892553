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

type CommentStorage struct {
	db *gorm.DB
}

func NewCommentStorage(db *gorm.DB) *CommentStorage {
	return &CommentStorage{db: db}
}

func (s *CommentStorage) ListComments(ctx context.Context, params storage.ListParams) ([]model.Comment, error) {
	var rows []commentModel
	if err := listQuery(s.db.WithContext(ctx), params).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("select comments: %w", err)
	}
	out := make([]model.Comment, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.toDomain())
	}
	return out, nil
}

func (s *CommentStorage) GetCommentByID(ctx context.Context, commentID int64) (model.Comment, error) {
	var row commentModel
	if err := s.db.WithContext(ctx).First(&row, commentID).Error; err != nil {
		return model.Comment{}, notFound(err)
	}
	return row.toDomain(), nil
}

func (s *CommentStorage) CreateComment(ctx context.Context, in model.Comment) (model.Comment, error) {
	now := time.Now().UTC()
	row := commentModel{
		Content:   in.Content,
		PostID:    in.PostID,
		AuthorID:  in.AuthorID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
		return model.Comment{}, fmt.Errorf("insert comment: %w", err)
	}
	return row.toDomain(), nil
}

func (s *CommentStorage) UpdateComment(ctx context.Context, commentID int64, patch model.CommentPatch) (model.Comment, error) {
	updates := map[string]any{tableinfo.CommentUpdatedAtColumn: time.Now().UTC()}
	if patch.Content != nil {
		updates[tableinfo.CommentContentColumn] = *patch.Content
	}
	if patch.PostID != nil {
		updates[tableinfo.CommentPostIDColumn] = *patch.PostID
	}
	if patch.AuthorID != nil {
		updates[tableinfo.CommentAuthorIDColumn] = *patch.AuthorID
	}

	res := s.db.WithContext(ctx).
		Model(&commentModel{}).
		Where("id = ?", commentID).
		Updates(updates)
	if res.Error != nil {
		return model.Comment{}, fmt.Errorf("update comment: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return model.Comment{}, service.ErrNotFound
	}
	return s.GetCommentByID(ctx, commentID)
}

func (s *CommentStorage) DeleteComment(ctx context.Context, commentID int64) error {
	res := s.db.WithContext(ctx).Delete(&commentModel{}, commentID)
	if res.Error != nil {
		return fmt.Errorf("delete comment: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return service.ErrNotFound
	}
	return nil
}
