package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"postboard/internal/adapter/out/pubsub/inmemory"
	"postboard/internal/model"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type commentMocks struct {
	storage    *MockCommentStorage
	classifier *MockClassifier
	publisher  *MockCommentEventPublisher
}

func newCommentMocks(ctrl *gomock.Controller) commentMocks {
	return commentMocks{
		storage:    NewMockCommentStorage(ctrl),
		classifier: NewMockClassifier(ctrl),
		publisher:  NewMockCommentEventPublisher(ctrl),
	}
}

func (m commentMocks) service(policy FailurePolicy, opts ...CommentServiceOption) *CommentService {
	gate := NewModerationGate(m.classifier, policy, time.Second)
	return NewCommentService(m.storage, gate, m.publisher, opts...)
}

func eventOfType(typ model.CommentEventType) gomock.Matcher {
	return gomock.Cond(func(x any) bool {
		ev, ok := x.(model.CommentEvent)
		return ok && ev.Type == typ
	})
}

func TestCommentService_CreateComment(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		req     CreateCommentRequest
		policy  FailurePolicy
		setup   func(m commentMocks)
		wantErr error
	}{
		{
			name:    "missing content skips classifier and storage",
			req:     CreateCommentRequest{PostID: int64Ptr(1)},
			policy:  FailClosed,
			setup:   func(_ commentMocks) {},
			wantErr: ErrInvalidRequest,
		},
		{
			name:    "blank content",
			req:     CreateCommentRequest{Content: "   "},
			policy:  FailClosed,
			setup:   func(_ commentMocks) {},
			wantErr: ErrInvalidRequest,
		},
		{
			name:    "non-positive post id",
			req:     CreateCommentRequest{Content: "hi", PostID: int64Ptr(0)},
			policy:  FailClosed,
			setup:   func(_ commentMocks) {},
			wantErr: ErrInvalidRequest,
		},
		{
			name:   "offensive content is not persisted",
			req:    CreateCommentRequest{Content: "you idiot"},
			policy: FailClosed,
			setup: func(m commentMocks) {
				m.classifier.EXPECT().Classify(gomock.Any(), "you idiot").Return(VerdictOffensive, nil)
			},
			wantErr: ErrModerationRejected,
		},
		{
			name:   "classifier down under fail-closed",
			req:    CreateCommentRequest{Content: "hello"},
			policy: FailClosed,
			setup: func(m commentMocks) {
				m.classifier.EXPECT().Classify(gomock.Any(), "hello").Return(VerdictUnknown, errors.New("dial tcp"))
			},
			wantErr: ErrModerationUnavailable,
		},
		{
			name:   "classifier down under fail-open stores",
			req:    CreateCommentRequest{Content: "hello"},
			policy: FailOpen,
			setup: func(m commentMocks) {
				m.classifier.EXPECT().Classify(gomock.Any(), "hello").Return(VerdictUnknown, errors.New("dial tcp"))
				m.storage.EXPECT().
					CreateComment(gomock.Any(), model.Comment{Content: "hello"}).
					Return(model.Comment{ID: 1, Content: "hello"}, nil)
				m.publisher.EXPECT().Publish(gomock.Any(), eventOfType(model.CommentCreated)).Return(nil)
			},
		},
		{
			name:   "storage error",
			req:    CreateCommentRequest{Content: "hello"},
			policy: FailClosed,
			setup: func(m commentMocks) {
				m.classifier.EXPECT().Classify(gomock.Any(), "hello").Return(VerdictAcceptable, nil)
				m.storage.EXPECT().
					CreateComment(gomock.Any(), gomock.Any()).
					Return(model.Comment{}, errors.New("db fail"))
			},
			wantErr: ErrInternalError,
		},
		{
			name:   "publish failure does not fail the request",
			req:    CreateCommentRequest{Content: "hello", PostID: int64Ptr(3), AuthorID: int64Ptr(4)},
			policy: FailClosed,
			setup: func(m commentMocks) {
				m.classifier.EXPECT().Classify(gomock.Any(), "hello").Return(VerdictAcceptable, nil)
				m.storage.EXPECT().
					CreateComment(gomock.Any(), model.Comment{Content: "hello", PostID: int64Ptr(3), AuthorID: int64Ptr(4)}).
					Return(model.Comment{ID: 1, Content: "hello", PostID: int64Ptr(3), AuthorID: int64Ptr(4)}, nil)
				m.publisher.EXPECT().Publish(gomock.Any(), eventOfType(model.CommentCreated)).Return(errors.New("broker down"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			m := newCommentMocks(ctrl)
			tt.setup(m)

			got, err := m.service(tt.policy).CreateComment(context.Background(), tt.req)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				require.Equal(t, model.Comment{}, got)
				return
			}
			require.NoError(t, err)
			require.Equal(t, int64(1), got.ID)
			require.Equal(t, tt.req.Content, got.Content)
		})
	}
}

func TestCommentService_UpdateComment(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		commentID  int64
		req        UpdateCommentRequest
		moderate   bool
		setup      func(m commentMocks)
		wantErr    error
		wantResult string
	}{
		{
			name:      "invalid id",
			commentID: 0,
			req:       UpdateCommentRequest{Content: "x"},
			moderate:  true,
			setup:     func(_ commentMocks) {},
			wantErr:   ErrInvalidID,
		},
		{
			name:      "offensive edit rejected",
			commentID: 2,
			req:       UpdateCommentRequest{Content: "idiot"},
			moderate:  true,
			setup: func(m commentMocks) {
				m.classifier.EXPECT().Classify(gomock.Any(), "idiot").Return(VerdictOffensive, nil)
			},
			wantErr: ErrModerationRejected,
		},
		{
			name:      "moderation disabled for edits",
			commentID: 2,
			req:       UpdateCommentRequest{Content: "idiot"},
			moderate:  false,
			setup: func(m commentMocks) {
				m.storage.EXPECT().
					UpdateComment(gomock.Any(), int64(2), model.CommentPatch{Content: strPtr("idiot")}).
					Return(model.Comment{ID: 2, Content: "idiot"}, nil)
				m.publisher.EXPECT().Publish(gomock.Any(), eventOfType(model.CommentUpdated)).Return(nil)
			},
			wantResult: "idiot",
		},
		{
			name:      "not found",
			commentID: 99,
			req:       UpdateCommentRequest{Content: "fine"},
			moderate:  true,
			setup: func(m commentMocks) {
				m.classifier.EXPECT().Classify(gomock.Any(), "fine").Return(VerdictAcceptable, nil)
				m.storage.EXPECT().
					UpdateComment(gomock.Any(), int64(99), gomock.Any()).
					Return(model.Comment{}, ErrNotFound)
			},
			wantErr: ErrNotFound,
		},
		{
			name:      "success",
			commentID: 2,
			req:       UpdateCommentRequest{Content: "fine", PostID: int64Ptr(8)},
			moderate:  true,
			setup: func(m commentMocks) {
				m.classifier.EXPECT().Classify(gomock.Any(), "fine").Return(VerdictAcceptable, nil)
				m.storage.EXPECT().
					UpdateComment(gomock.Any(), int64(2), model.CommentPatch{Content: strPtr("fine"), PostID: int64Ptr(8)}).
					Return(model.Comment{ID: 2, Content: "fine", PostID: int64Ptr(8)}, nil)
				m.publisher.EXPECT().Publish(gomock.Any(), eventOfType(model.CommentUpdated)).Return(nil)
			},
			wantResult: "fine",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			m := newCommentMocks(ctrl)
			tt.setup(m)

			svc := m.service(FailClosed, WithUpdateModeration(tt.moderate))
			got, err := svc.UpdateComment(context.Background(), tt.commentID, tt.req)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.wantResult, got.Content)
		})
	}
}

func TestCommentService_DeleteComment(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	stored := model.Comment{ID: 7, Content: "bye", PostID: int64Ptr(5)}

	m := newCommentMocks(ctrl)
	gomock.InOrder(
		m.storage.EXPECT().GetCommentByID(gomock.Any(), int64(7)).Return(stored, nil),
		m.storage.EXPECT().DeleteComment(gomock.Any(), int64(7)).Return(nil),
		m.publisher.EXPECT().
			Publish(gomock.Any(), gomock.Cond(func(x any) bool {
				ev, ok := x.(model.CommentEvent)
				return ok && ev.Type == model.CommentDeleted && ev.Comment.ID == 7 &&
					ev.Comment.PostID != nil && *ev.Comment.PostID == 5
			})).
			Return(nil),
		m.storage.EXPECT().GetCommentByID(gomock.Any(), int64(7)).Return(model.Comment{}, ErrNotFound),
	)

	svc := m.service(FailClosed)
	require.NoError(t, svc.DeleteComment(context.Background(), 7))
	require.ErrorIs(t, svc.DeleteComment(context.Background(), 7), ErrNotFound)
	require.ErrorIs(t, svc.DeleteComment(context.Background(), 0), ErrInvalidID)
}

func TestCommentService_DeleteComment_GoneBetweenReadAndDelete(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newCommentMocks(ctrl)
	m.storage.EXPECT().GetCommentByID(gomock.Any(), int64(7)).Return(model.Comment{ID: 7}, nil)
	m.storage.EXPECT().DeleteComment(gomock.Any(), int64(7)).Return(ErrNotFound)

	svc := m.service(FailClosed)
	require.ErrorIs(t, svc.DeleteComment(context.Background(), 7), ErrNotFound)
}

func TestCommentService_GetCommentByID(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newCommentMocks(ctrl)
	m.storage.EXPECT().GetCommentByID(gomock.Any(), int64(3)).Return(model.Comment{}, ErrNotFound)

	_, err := m.service(FailClosed).GetCommentByID(context.Background(), 3)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestCommentService_Listen(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newCommentMocks(ctrl)

	svc := m.service(FailClosed)
	_, err := svc.Listen(context.Background(), 1)
	require.Error(t, err)

	sub := NewMockCommentSubscriber(ctrl)
	ch := make(chan model.CommentEvent)
	sub.EXPECT().Subscribe(gomock.Any(), int64(1)).Return((<-chan model.CommentEvent)(ch), nil)

	svc = m.service(FailClosed, WithSubscriber(sub))
	got, err := svc.Listen(context.Background(), 1)
	require.NoError(t, err)
	require.NotNil(t, got)

	_, err = svc.Listen(context.Background(), -1)
	require.ErrorIs(t, err, ErrInvalidRequest)
}

func TestCommentService_SlowPublisherDoesNotStallWrites(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newCommentMocks(ctrl)
	m.classifier.EXPECT().Classify(gomock.Any(), "hi").Return(VerdictAcceptable, nil)
	m.storage.EXPECT().CreateComment(gomock.Any(), gomock.Any()).Return(model.Comment{ID: 1, Content: "hi"}, nil)
	m.publisher.EXPECT().
		Publish(gomock.Any(), eventOfType(model.CommentCreated)).
		DoAndReturn(func(ctx context.Context, _ model.CommentEvent) error {
			<-ctx.Done()
			return ctx.Err()
		})

	svc := m.service(FailClosed, WithPublishTimeout(20*time.Millisecond))

	start := time.Now()
	got, err := svc.CreateComment(context.Background(), CreateCommentRequest{Content: "hi"})
	require.NoError(t, err)
	require.Equal(t, int64(1), got.ID)
	require.Less(t, time.Since(start), time.Second)
}

func TestCommentService_PostSubscriberSeesDelete(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	stored := model.Comment{ID: 9, Content: "hi", PostID: int64Ptr(5)}

	m := newCommentMocks(ctrl)
	m.classifier.EXPECT().Classify(gomock.Any(), "hi").Return(VerdictAcceptable, nil)
	m.storage.EXPECT().CreateComment(gomock.Any(), gomock.Any()).Return(stored, nil)
	m.storage.EXPECT().GetCommentByID(gomock.Any(), int64(9)).Return(stored, nil)
	m.storage.EXPECT().DeleteComment(gomock.Any(), int64(9)).Return(nil)

	bus := inmemory.New(4)
	gate := NewModerationGate(m.classifier, FailClosed, time.Second)
	svc := NewCommentService(m.storage, gate, bus, WithSubscriber(bus))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events, err := svc.Listen(ctx, 5)
	require.NoError(t, err)

	_, err = svc.CreateComment(ctx, CreateCommentRequest{Content: "hi", PostID: int64Ptr(5)})
	require.NoError(t, err)
	require.NoError(t, svc.DeleteComment(ctx, 9))

	var got []model.CommentEventType
	for len(got) < 2 {
		select {
		case ev := <-events:
			got = append(got, ev.Type)
		case <-time.After(time.Second):
			t.Fatalf("received only %v", got)
		}
	}
	require.Equal(t, []model.CommentEventType{model.CommentCreated, model.CommentDeleted}, got)
}
