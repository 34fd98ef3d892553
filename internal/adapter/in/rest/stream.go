package rest

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"postboard/pkg/logger"
)

// streamComments sends comment events as Server-Sent Events until the client
// goes away. ?postId narrows the feed to one post.
func (h *Handler) streamComments(w http.ResponseWriter, r *http.Request) {
	var postID int64
	if raw := r.URL.Query().Get("postId"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			h.fail(w, r, commentResource, &requestError{msg: "field 'postId' must be a positive integer"})
			return
		}
		postID = id
	}

	ctx := r.Context()
	events, err := h.comments.Listen(ctx, postID)
	if err != nil {
		h.fail(w, r, commentResource, err)
		return
	}

	rc := http.NewResponseController(w)
	_ = rc.SetWriteDeadline(time.Time{})

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	_, _ = fmt.Fprint(w, ": connected\n\n")
	if err := rc.Flush(); err != nil {
		logger.FromContext(ctx).Warn("comment stream flush", "error", err)
		return
	}

	ticker := time.NewTicker(h.keepAlive)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-h.done:
			return
		case <-ticker.C:
			_, _ = fmt.Fprint(w, ": ping\n\n")
		case ev, ok := <-events:
			if !ok {
				return
			}
			data, err := json.Marshal(ev)
			if err != nil {
				logger.FromContext(ctx).Error("marshal comment event", "error", err)
				continue
			}
			_, _ = fmt.Fprintf(w, "id: %d\nevent: %s\ndata: %s\n\n", ev.Comment.ID, ev.Type, data)
		}
		if err := rc.Flush(); err != nil {
			return
		}
	}
}
