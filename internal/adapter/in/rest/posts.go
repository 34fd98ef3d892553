package rest

import (
	"net/http"

	"postboard/internal/service"

	"github.com/go-chi/chi/v5"
)

const postResource = "post"

func (h *Handler) listPosts(w http.ResponseWriter, r *http.Request) {
	req, err := toPageRequest(r)
	if err != nil {
		h.fail(w, r, postResource, err)
		return
	}
	page, err := h.posts.ListPosts(r.Context(), req)
	if err != nil {
		h.fail(w, r, postResource, err)
		return
	}
	writeList(w, r, page.Items, nextCursor(page))
}

func (h *Handler) getPost(w http.ResponseWriter, r *http.Request) {
	id, err := service.ParseID(postResource, chi.URLParam(r, "id"))
	if err != nil {
		h.fail(w, r, postResource, err)
		return
	}
	p, err := h.posts.GetPostByID(r.Context(), id)
	if err != nil {
		h.fail(w, r, postResource, err)
		return
	}
	writeEnvelope(w, r, http.StatusOK, envelope{Message: "post found", Post: &p})
}

func (h *Handler) createPost(w http.ResponseWriter, r *http.Request) {
	var req service.CreatePostRequest
	if err := decodeJSON(r, &req); err != nil {
		h.fail(w, r, postResource, err)
		return
	}
	p, err := h.posts.CreatePost(r.Context(), req)
	if err != nil {
		h.fail(w, r, postResource, err)
		return
	}
	writeEnvelope(w, r, http.StatusCreated, envelope{Message: "post created", Post: &p})
}

func (h *Handler) updatePost(w http.ResponseWriter, r *http.Request) {
	id, err := service.ParseID(postResource, chi.URLParam(r, "id"))
	if err != nil {
		h.fail(w, r, postResource, err)
		return
	}
	var req service.UpdatePostRequest
	if err := decodeJSON(r, &req); err != nil {
		h.fail(w, r, postResource, err)
		return
	}
	p, err := h.posts.UpdatePost(r.Context(), id, req)
	if err != nil {
		h.fail(w, r, postResource, err)
		return
	}
	writeEnvelope(w, r, http.StatusOK, envelope{Message: "post updated", Post: &p})
}

func (h *Handler) deletePost(w http.ResponseWriter, r *http.Request) {
	id, err := service.ParseID(postResource, chi.URLParam(r, "id"))
	if err != nil {
		h.fail(w, r, postResource, err)
		return
	}
	if err := h.posts.DeletePost(r.Context(), id); err != nil {
		h.fail(w, r, postResource, err)
		return
	}
	writeEnvelope(w, r, http.StatusOK, envelope{Message: "post deleted"})
}
