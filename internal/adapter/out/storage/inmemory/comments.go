package inmemory

import (
	"context"
	"postboard/internal/adapter/out/storage"
	"postboard/internal/model"
	"time"
)

type CommentStorage struct {
	rows *table[model.Comment]
}

func NewCommentStorage() *CommentStorage {
	return &CommentStorage{
		rows: newTable[model.Comment](),
	}
}

func (s *CommentStorage) ListComments(_ context.Context, params storage.ListParams) ([]model.Comment, error) {
	return s.rows.list(params), nil
}

func (s *CommentStorage) GetCommentByID(_ context.Context, commentID int64) (model.Comment, error) {
	return s.rows.get(commentID)
}

func (s *CommentStorage) CreateComment(_ context.Context, in model.Comment) (model.Comment, error) {
	now := time.Now().UTC()
	return s.rows.insert(func(id int64) model.Comment {
		in.ID = id
		in.CreatedAt = now
		in.UpdatedAt = now
		return in
	}), nil
}

func (s *CommentStorage) UpdateComment(_ context.Context, commentID int64, patch model.CommentPatch) (model.Comment, error) {
	return s.rows.update(commentID, func(c model.Comment) model.Comment {
		if patch.Content != nil {
			c.Content = *patch.Content
		}
		if patch.PostID != nil {
			c.PostID = patch.PostID
		}
		if patch.AuthorID != nil {
			c.AuthorID = patch.AuthorID
		}
		c.UpdatedAt = time.Now().UTC()
		return c
	})
}

func (s *CommentStorage) DeleteComment(_ context.Context, commentID int64) error {
	return s.rows.delete(commentID)
}
