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

type PostStorage struct {
	db *gorm.DB
}

func NewPostStorage(db *gorm.DB) *PostStorage {
	return &PostStorage{db: db}
}

func (s *PostStorage) ListPosts(ctx context.Context, params storage.ListParams) ([]model.Post, error) {
	var rows []postModel
	if err := listQuery(s.db.WithContext(ctx), params).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("select posts: %w", err)
	}
	out := make([]model.Post, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.toDomain())
	}
	return out, nil
}

func (s *PostStorage) GetPostByID(ctx context.Context, postID int64) (model.Post, error) {
	var row postModel
	if err := s.db.WithContext(ctx).First(&row, postID).Error; err != nil {
		return model.Post{}, notFound(err)
	}
	return row.toDomain(), nil
}

func (s *PostStorage) CreatePost(ctx context.Context, in model.Post) (model.Post, error) {
	now := time.Now().UTC()
	row := postModel{
		Title:     in.Title,
		Content:   in.Content,
		AuthorID:  in.AuthorID,
		Published: in.Published,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
		return model.Post{}, fmt.Errorf("insert post: %w", err)
	}
	return row.toDomain(), nil
}

func (s *PostStorage) UpdatePost(ctx context.Context, postID int64, patch model.PostPatch) (model.Post, error) {
	updates := map[string]any{tableinfo.PostUpdatedAtColumn: time.Now().UTC()}
	if patch.Title != nil {
		updates[tableinfo.PostTitleColumn] = *patch.Title
	}
	if patch.Content != nil {
		updates[tableinfo.PostContentColumn] = *patch.Content
	}
	if patch.AuthorID != nil {
		updates[tableinfo.PostAuthorIDColumn] = *patch.AuthorID
	}
	if patch.Published != nil {
		updates[tableinfo.PostPublishedColumn] = *patch.Published
	}

	res := s.db.WithContext(ctx).
		Model(&postModel{}).
		Where("id = ?", postID).
		Updates(updates)
	if res.Error != nil {
		return model.Post{}, fmt.Errorf("update post: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return model.Post{}, service.ErrNotFound
	}
	return s.GetPostByID(ctx, postID)
}

func (s *PostStorage) DeletePost(ctx context.Context, postID int64) error {
	res := s.db.WithContext(ctx).Delete(&postModel{}, postID)
	if res.Error != nil {
		return fmt.Errorf("delete post: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return service.ErrNotFound
	}
	return nil
}
