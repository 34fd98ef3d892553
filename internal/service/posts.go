package service

import (
	"context"

	"postboard/internal/adapter/out/storage"
	"postboard/internal/model"
	"postboard/pkg/pagination"
)

//go:generate mockgen -source=posts.go -destination=./posts_mock.go -package=service
type PostStorage interface {
	ListPosts(ctx context.Context, params storage.ListParams) ([]model.Post, error)
	GetPostByID(ctx context.Context, postID int64) (model.Post, error)
	CreatePost(ctx context.Context, post model.Post) (model.Post, error)
	UpdatePost(ctx context.Context, postID int64, patch model.PostPatch) (model.Post, error)
	DeletePost(ctx context.Context, postID int64) error
}

type PostService struct {
	postStorage PostStorage
}

func NewPostService(postStorage PostStorage) *PostService {
	return &PostService{
		postStorage: postStorage,
	}
}

func (s *PostService) ListPosts(ctx context.Context, in pagination.PageRequest) (pagination.Page[model.Post], error) {
	page, err := fetchPage(ctx, in, s.postStorage.ListPosts, func(p model.Post) int64 { return p.ID })
	if err != nil {
		return page, storageError(ctx, "list posts", err)
	}
	return page, nil
}

func (s *PostService) GetPostByID(ctx context.Context, postID int64) (model.Post, error) {
	if err := checkID("post", postID); err != nil {
		return model.Post{}, err
	}
	p, err := s.postStorage.GetPostByID(ctx, postID)
	if err != nil {
		return model.Post{}, storageError(ctx, "get post", err)
	}
	return p, nil
}

func (s *PostService) CreatePost(ctx context.Context, req CreatePostRequest) (model.Post, error) {
	if err := validateRequest(req); err != nil {
		return model.Post{}, err
	}
	post := model.Post{
		Title:    req.Title,
		Content:  req.Content,
		AuthorID: req.AuthorID,
	}
	if req.Published != nil {
		post.Published = *req.Published
	}
	p, err := s.postStorage.CreatePost(ctx, post)
	if err != nil {
		return model.Post{}, storageError(ctx, "create post", err)
	}
	return p, nil
}

func (s *PostService) UpdatePost(ctx context.Context, postID int64, req UpdatePostRequest) (model.Post, error) {
	if err := checkID("post", postID); err != nil {
		return model.Post{}, err
	}
	if err := validateRequest(req); err != nil {
		return model.Post{}, err
	}
	p, err := s.postStorage.UpdatePost(ctx, postID, model.PostPatch{
		Title:     &req.Title,
		Content:   &req.Content,
		AuthorID:  req.AuthorID,
		Published: req.Published,
	})
	if err != nil {
		return model.Post{}, storageError(ctx, "update post", err)
	}
	return p, nil
}

func (s *PostService) DeletePost(ctx context.Context, postID int64) error {
	if err := checkID("post", postID); err != nil {
		return err
	}
	if err := s.postStorage.DeletePost(ctx, postID); err != nil {
		return storageError(ctx, "delete post", err)
	}
	return nil
}
