package service

import (
	"context"
	"fmt"
	"time"

	"postboard/internal/adapter/out/storage"
	"postboard/internal/model"
	"postboard/pkg/logger"
	"postboard/pkg/pagination"
)

//go:generate mockgen -source=comments.go -destination=./comments_mock.go -package=service
type CommentStorage interface {
	ListComments(ctx context.Context, params storage.ListParams) ([]model.Comment, error)
	GetCommentByID(ctx context.Context, commentID int64) (model.Comment, error)
	CreateComment(ctx context.Context, comment model.Comment) (model.Comment, error)
	UpdateComment(ctx context.Context, commentID int64, patch model.CommentPatch) (model.Comment, error)
	DeleteComment(ctx context.Context, commentID int64) error
}

type CommentEventPublisher interface {
	Publish(ctx context.Context, ev model.CommentEvent) error
}

// CommentSubscriber streams comment events; postID 0 subscribes to every post.
type CommentSubscriber interface {
	Subscribe(ctx context.Context, postID int64) (<-chan model.CommentEvent, error)
}

type CommentService struct {
	commentStorage  CommentStorage
	gate            *ModerationGate
	publisher       CommentEventPublisher
	subscriber      CommentSubscriber
	moderateUpdates bool
	publishTimeout  time.Duration
}

const defaultPublishTimeout = 500 * time.Millisecond

type CommentServiceOption func(*CommentService)

// WithUpdateModeration runs edited content through the moderation gate too.
func WithUpdateModeration(enabled bool) CommentServiceOption {
	return func(s *CommentService) {
		s.moderateUpdates = enabled
	}
}

// WithPublishTimeout bounds how long a write waits on event publishing.
func WithPublishTimeout(d time.Duration) CommentServiceOption {
	return func(s *CommentService) {
		if d > 0 {
			s.publishTimeout = d
		}
	}
}

func WithSubscriber(sub CommentSubscriber) CommentServiceOption {
	return func(s *CommentService) {
		s.subscriber = sub
	}
}

func NewCommentService(
	commentStorage CommentStorage,
	gate *ModerationGate,
	publisher CommentEventPublisher,
	opts ...CommentServiceOption,
) *CommentService {
	s := &CommentService{
		commentStorage: commentStorage,
		gate:           gate,
		publisher:      publisher,
		publishTimeout: defaultPublishTimeout,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *CommentService) ListComments(ctx context.Context, in pagination.PageRequest) (pagination.Page[model.Comment], error) {
	page, err := fetchPage(ctx, in, s.commentStorage.ListComments, func(c model.Comment) int64 { return c.ID })
	if err != nil {
		return page, storageError(ctx, "list comments", err)
	}
	return page, nil
}

func (s *CommentService) GetCommentByID(ctx context.Context, commentID int64) (model.Comment, error) {
	if err := checkID("comment", commentID); err != nil {
		return model.Comment{}, err
	}
	c, err := s.commentStorage.GetCommentByID(ctx, commentID)
	if err != nil {
		return model.Comment{}, storageError(ctx, "get comment", err)
	}
	return c, nil
}

func (s *CommentService) CreateComment(ctx context.Context, req CreateCommentRequest) (model.Comment, error) {
	if err := validateRequest(req); err != nil {
		return model.Comment{}, err
	}

	if err := s.gate.Check(ctx, req.Content); err != nil {
		return model.Comment{}, err
	}

	comment, err := s.commentStorage.CreateComment(ctx, model.Comment{
		Content:  req.Content,
		PostID:   req.PostID,
		AuthorID: req.AuthorID,
	})
	if err != nil {
		return model.Comment{}, storageError(ctx, "create comment", err)
	}

	s.publish(ctx, model.CommentCreated, comment)
	return comment, nil
}

func (s *CommentService) UpdateComment(ctx context.Context, commentID int64, req UpdateCommentRequest) (model.Comment, error) {
	if err := checkID("comment", commentID); err != nil {
		return model.Comment{}, err
	}
	if err := validateRequest(req); err != nil {
		return model.Comment{}, err
	}

	if s.moderateUpdates {
		if err := s.gate.Check(ctx, req.Content); err != nil {
			return model.Comment{}, err
		}
	}

	comment, err := s.commentStorage.UpdateComment(ctx, commentID, model.CommentPatch{
		Content:  &req.Content,
		PostID:   req.PostID,
		AuthorID: req.AuthorID,
	})
	if err != nil {
		return model.Comment{}, storageError(ctx, "update comment", err)
	}

	s.publish(ctx, model.CommentUpdated, comment)
	return comment, nil
}

func (s *CommentService) DeleteComment(ctx context.Context, commentID int64) error {
	if err := checkID("comment", commentID); err != nil {
		return err
	}
	// The deleted event carries the full row, including its post.
	c, err := s.commentStorage.GetCommentByID(ctx, commentID)
	if err != nil {
		return storageError(ctx, "get comment", err)
	}
	if err := s.commentStorage.DeleteComment(ctx, commentID); err != nil {
		return storageError(ctx, "delete comment", err)
	}

	s.publish(ctx, model.CommentDeleted, c)
	return nil
}

// Listen streams comment events for postID (0 for all posts) until ctx is done.
func (s *CommentService) Listen(ctx context.Context, postID int64) (<-chan model.CommentEvent, error) {
	if s.subscriber == nil {
		return nil, fmt.Errorf("no subscriber configured")
	}
	if postID < 0 {
		return nil, invalidField("postId", "field 'postId' must be greater than 0")
	}
	return s.subscriber.Subscribe(ctx, postID)
}

func (s *CommentService) publish(ctx context.Context, typ model.CommentEventType, c model.Comment) {
	if s.publisher == nil {
		return
	}
	ev := model.CommentEvent{
		Type:       typ,
		Comment:    c,
		OccurredAt: time.Now().UTC(),
	}
	pubCtx, cancel := context.WithTimeout(ctx, s.publishTimeout)
	defer cancel()
	if err := s.publisher.Publish(pubCtx, ev); err != nil {
		logger.FromContext(ctx).Warn("publish comment event", "type", typ, "comment_id", c.ID, "error", err)
	}
}
