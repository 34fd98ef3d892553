package model

import "time"

type Comment struct {
	ID        int64     `json:"id"`
	Content   string    `json:"content"`
	PostID    *int64    `json:"postId"`
	AuthorID  *int64    `json:"authorId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type CommentPatch struct {
	Content  *string
	PostID   *int64
	AuthorID *int64
}

type CommentEventType string

const (
	CommentCreated CommentEventType = "comment.created"
	CommentUpdated CommentEventType = "comment.updated"
	CommentDeleted CommentEventType = "comment.deleted"
)

// CommentEvent is published after a comment write has been committed.
type CommentEvent struct {
	Type       CommentEventType `json:"type"`
	Comment    Comment          `json:"comment"`
	OccurredAt time.Time        `json:"occurredAt"`
}
