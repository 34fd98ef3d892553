package inmemory

import (
	"context"
	"sync"

	"postboard/internal/model"
)

// AllPosts subscribes to events of every post, including comments without a post.
const AllPosts int64 = 0

type CommentBus struct {
	mu sync.RWMutex
	// postID -> subscriber channels
	subs map[int64]map[chan model.CommentEvent]struct{}
	buf  int
}

func New(buf int) *CommentBus {
	if buf <= 0 {
		buf = 64
	}
	return &CommentBus{
		subs: make(map[int64]map[chan model.CommentEvent]struct{}),
		buf:  buf,
	}
}

// Subscribe registers a channel that is closed once ctx is done.
func (b *CommentBus) Subscribe(ctx context.Context, postID int64) (<-chan model.CommentEvent, error) {
	ch := make(chan model.CommentEvent, b.buf)

	b.mu.Lock()
	if b.subs[postID] == nil {
		b.subs[postID] = make(map[chan model.CommentEvent]struct{})
	}
	b.subs[postID][ch] = struct{}{}
	b.mu.Unlock()

	go func() {
		<-ctx.Done()
		b.mu.Lock()
		if set := b.subs[postID]; set != nil {
			delete(set, ch)
			if len(set) == 0 {
				delete(b.subs, postID)
			}
		}
		b.mu.Unlock()
		close(ch)
	}()

	return ch, nil
}

// Publish never blocks: a subscriber with a full buffer misses the event.
func (b *CommentBus) Publish(_ context.Context, ev model.CommentEvent) error {
	b.mu.RLock()
	defer b.mu.RUnlock()

	b.deliver(AllPosts, ev)
	if ev.Comment.PostID != nil && *ev.Comment.PostID != AllPosts {
		b.deliver(*ev.Comment.PostID, ev)
	}
	return nil
}

func (b *CommentBus) deliver(postID int64, ev model.CommentEvent) {
	for ch := range b.subs[postID] {
		select {
		case ch <- ev:
		default:
		}
	}
}

func (b *CommentBus) Subscribers(postID int64) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs[postID])
}
