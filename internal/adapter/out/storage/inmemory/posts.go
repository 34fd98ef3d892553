package inmemory

import (
	"context"
	"postboard/internal/adapter/out/storage"
	"postboard/internal/model"
	"time"
)

type PostStorage struct {
	rows *table[model.Post]
}

func NewPostStorage() *PostStorage {
	return &PostStorage{
		rows: newTable[model.Post](),
	}
}

func (s *PostStorage) ListPosts(_ context.Context, params storage.ListParams) ([]model.Post, error) {
	return s.rows.list(params), nil
}

func (s *PostStorage) GetPostByID(_ context.Context, postID int64) (model.Post, error) {
	return s.rows.get(postID)
}

func (s *PostStorage) CreatePost(_ context.Context, in model.Post) (model.Post, error) {
	now := time.Now().UTC()
	return s.rows.insert(func(id int64) model.Post {
		in.ID = id
		in.CreatedAt = now
		in.UpdatedAt = now
		return in
	}), nil
}

func (s *PostStorage) UpdatePost(_ context.Context, postID int64, patch model.PostPatch) (model.Post, error) {
	return s.rows.update(postID, func(p model.Post) model.Post {
		if patch.Title != nil {
			p.Title = *patch.Title
		}
		if patch.Content != nil {
			p.Content = *patch.Content
		}
		if patch.AuthorID != nil {
			p.AuthorID = patch.AuthorID
		}
		if patch.Published != nil {
			p.Published = *patch.Published
		}
		p.UpdatedAt = time.Now().UTC()
		return p
	})
}

func (s *PostStorage) DeletePost(_ context.Context, postID int64) error {
	return s.rows.delete(postID)
}
