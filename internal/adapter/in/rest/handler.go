package rest

import (
	"context"
	"time"

	"postboard/internal/model"
	"postboard/internal/service"
	"postboard/pkg/pagination"
)

type UserService interface {
	ListUsers(ctx context.Context, in pagination.PageRequest) (pagination.Page[model.User], error)
	GetUserByID(ctx context.Context, userID int64) (model.User, error)
	CreateUser(ctx context.Context, req service.CreateUserRequest) (model.User, error)
	UpdateUser(ctx context.Context, userID int64, req service.UpdateUserRequest) (model.User, error)
	DeleteUser(ctx context.Context, userID int64) error
}

type PostService interface {
	ListPosts(ctx context.Context, in pagination.PageRequest) (pagination.Page[model.Post], error)
	GetPostByID(ctx context.Context, postID int64) (model.Post, error)
	CreatePost(ctx context.Context, req service.CreatePostRequest) (model.Post, error)
	UpdatePost(ctx context.Context, postID int64, req service.UpdatePostRequest) (model.Post, error)
	DeletePost(ctx context.Context, postID int64) error
}

type CommentService interface {
	ListComments(ctx context.Context, in pagination.PageRequest) (pagination.Page[model.Comment], error)
	GetCommentByID(ctx context.Context, commentID int64) (model.Comment, error)
	CreateComment(ctx context.Context, req service.CreateCommentRequest) (model.Comment, error)
	UpdateComment(ctx context.Context, commentID int64, req service.UpdateCommentRequest) (model.Comment, error)
	DeleteComment(ctx context.Context, commentID int64) error
	Listen(ctx context.Context, postID int64) (<-chan model.CommentEvent, error)
}

const defaultStreamKeepAlive = 15 * time.Second

type Handler struct {
	users     UserService
	posts     PostService
	comments  CommentService
	keepAlive time.Duration
	done      <-chan struct{}
}

type HandlerOption func(*Handler)

// WithStreamKeepAlive sets how often an idle event stream gets a comment line.
func WithStreamKeepAlive(d time.Duration) HandlerOption {
	return func(h *Handler) {
		if d > 0 {
			h.keepAlive = d
		}
	}
}

// WithStreamsDone ends every open event stream once done is closed.
func WithStreamsDone(done <-chan struct{}) HandlerOption {
	return func(h *Handler) {
		h.done = done
	}
}

func NewHandler(users UserService, posts PostService, comments CommentService, opts ...HandlerOption) *Handler {
	h := &Handler{
		users:     users,
		posts:     posts,
		comments:  comments,
		keepAlive: defaultStreamKeepAlive,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}
