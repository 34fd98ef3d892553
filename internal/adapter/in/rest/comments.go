package rest

import (
	"net/http"

	"postboard/internal/service"

	"github.com/go-chi/chi/v5"
)

const commentResource = "comment"

func (h *Handler) listComments(w http.ResponseWriter, r *http.Request) {
	req, err := toPageRequest(r)
	if err != nil {
		h.fail(w, r, commentResource, err)
		return
	}
	page, err := h.comments.ListComments(r.Context(), req)
	if err != nil {
		h.fail(w, r, commentResource, err)
		return
	}
	writeList(w, r, page.Items, nextCursor(page))
}

func (h *Handler) getComment(w http.ResponseWriter, r *http.Request) {
	id, err := service.ParseID(commentResource, chi.URLParam(r, "id"))
	if err != nil {
		h.fail(w, r, commentResource, err)
		return
	}
	c, err := h.comments.GetCommentByID(r.Context(), id)
	if err != nil {
		h.fail(w, r, commentResource, err)
		return
	}
	writeEnvelope(w, r, http.StatusOK, envelope{Message: "comment found", Comment: &c})
}

func (h *Handler) createComment(w http.ResponseWriter, r *http.Request) {
	var req service.CreateCommentRequest
	if err := decodeJSON(r, &req); err != nil {
		h.fail(w, r, commentResource, err)
		return
	}
	c, err := h.comments.CreateComment(r.Context(), req)
	if err != nil {
		h.fail(w, r, commentResource, err)
		return
	}
	writeEnvelope(w, r, http.StatusCreated, envelope{Message: "comment posted", Comment: &c})
}

func (h *Handler) updateComment(w http.ResponseWriter, r *http.Request) {
	id, err := service.ParseID(commentResource, chi.URLParam(r, "id"))
	if err != nil {
		h.fail(w, r, commentResource, err)
		return
	}
	var req service.UpdateCommentRequest
	if err := decodeJSON(r, &req); err != nil {
		h.fail(w, r, commentResource, err)
		return
	}
	c, err := h.comments.UpdateComment(r.Context(), id, req)
	if err != nil {
		h.fail(w, r, commentResource, err)
		return
	}
	writeEnvelope(w, r, http.StatusOK, envelope{Message: "comment updated", Comment: &c})
}

func (h *Handler) deleteComment(w http.ResponseWriter, r *http.Request) {
	id, err := service.ParseID(commentResource, chi.URLParam(r, "id"))
	if err != nil {
		h.fail(w, r, commentResource, err)
		return
	}
	if err := h.comments.DeleteComment(r.Context(), id); err != nil {
		h.fail(w, r, commentResource, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
