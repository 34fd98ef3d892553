package rest

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httplog/v2"
	"github.com/go-chi/render"
)

// ReadinessCheck reports whether a backing dependency can serve traffic.
type ReadinessCheck func(ctx context.Context) error

type RouterOptions struct {
	// Logger enables request logging; nil keeps the router quiet.
	Logger *httplog.Logger
	Ready  []ReadinessCheck
}

func NewRouter(h *Handler, opts RouterOptions) http.Handler {
	r := chi.NewRouter()

	r.Use(requestID)
	if opts.Logger != nil {
		r.Use(httplog.RequestLogger(opts.Logger))
		r.Use(contextLogger(opts.Logger.Logger))
	}
	r.Use(recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Get("/readyz", readyz(opts.Ready))

	r.Route("/users", func(r chi.Router) {
		r.Get("/", h.listUsers)
		r.Post("/", h.createUser)
		r.Get("/{id}", h.getUser)
		r.Put("/{id}", h.updateUser)
		r.Patch("/{id}", h.updateUser)
		r.Delete("/{id}", h.deleteUser)
	})

	r.Route("/posts", func(r chi.Router) {
		r.Get("/", h.listPosts)
		r.Post("/", h.createPost)
		r.Get("/{id}", h.getPost)
		r.Put("/{id}", h.updatePost)
		r.Patch("/{id}", h.updatePost)
		r.Delete("/{id}", h.deletePost)
	})

	r.Route("/comments", func(r chi.Router) {
		r.Get("/", h.listComments)
		r.Post("/", h.createComment)
		r.Get("/stream", h.streamComments)
		r.Get("/{id}", h.getComment)
		r.Put("/{id}", h.updateComment)
		r.Patch("/{id}", h.updateComment)
		r.Delete("/{id}", h.deleteComment)
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, r, http.StatusNotFound, envelope{Message: "route not found", Error: codeNotFound})
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, r, http.StatusMethodNotAllowed, envelope{Message: "method not allowed", Error: codeValidation})
	})

	return r
}

func readyz(checks []ReadinessCheck) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		for _, check := range checks {
			if err := check(r.Context()); err != nil {
				w.WriteHeader(http.StatusServiceUnavailable)
				render.PlainText(w, r, "not ready")
				return
			}
		}
		render.PlainText(w, r, "ready")
	}
}
