package rest

import (
	"net/http"

	"postboard/internal/service"

	"github.com/go-chi/chi/v5"
)

const userResource = "user"

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	req, err := toPageRequest(r)
	if err != nil {
		h.fail(w, r, userResource, err)
		return
	}
	page, err := h.users.ListUsers(r.Context(), req)
	if err != nil {
		h.fail(w, r, userResource, err)
		return
	}
	writeList(w, r, page.Items, nextCursor(page))
}

func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	id, err := service.ParseID(userResource, chi.URLParam(r, "id"))
	if err != nil {
		h.fail(w, r, userResource, err)
		return
	}
	u, err := h.users.GetUserByID(r.Context(), id)
	if err != nil {
		h.fail(w, r, userResource, err)
		return
	}
	writeEnvelope(w, r, http.StatusOK, envelope{Message: "user found", User: &u})
}

func (h *Handler) createUser(w http.ResponseWriter, r *http.Request) {
	var req service.CreateUserRequest
	if err := decodeJSON(r, &req); err != nil {
		h.fail(w, r, userResource, err)
		return
	}
	u, err := h.users.CreateUser(r.Context(), req)
	if err != nil {
		h.fail(w, r, userResource, err)
		return
	}
	writeEnvelope(w, r, http.StatusCreated, envelope{Message: "user created", User: &u})
}

func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) {
	id, err := service.ParseID(userResource, chi.URLParam(r, "id"))
	if err != nil {
		h.fail(w, r, userResource, err)
		return
	}
	var req service.UpdateUserRequest
	if err := decodeJSON(r, &req); err != nil {
		h.fail(w, r, userResource, err)
		return
	}
	u, err := h.users.UpdateUser(r.Context(), id, req)
	if err != nil {
		h.fail(w, r, userResource, err)
		return
	}
	writeEnvelope(w, r, http.StatusOK, envelope{Message: "user updated", User: &u})
}

func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	id, err := service.ParseID(userResource, chi.URLParam(r, "id"))
	if err != nil {
		h.fail(w, r, userResource, err)
		return
	}
	if err := h.users.DeleteUser(r.Context(), id); err != nil {
		h.fail(w, r, userResource, err)
		return
	}
	writeEnvelope(w, r, http.StatusOK, envelope{Message: "user deleted"})
}
