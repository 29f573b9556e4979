package transport

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// DummyTransport answers a small fixed set of requests about users, articles, and comments with
// canned data. It is for trying out the library and for documentation examples; it has no state,
// so for instance a created user cannot be fetched back.
type DummyTransport struct {
	HandlerTransport
}

// NewDummyTransport creates a DummyTransport. Requests for any other path get a 404.
func NewDummyTransport() *DummyTransport {
	r := chi.NewRouter()

	r.Get("/users", fixture(http.StatusOK, `[{"id": "1", "name": "John"}, {"id": "2", "name": "Jane"}]`))
	r.Post("/users", fixture(http.StatusCreated, `{"id": "2"}`))
	r.Get("/users/{id}", func(w http.ResponseWriter, req *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"id": chi.URLParam(req, "id"), "name": "John"})
	})
	r.Put("/users/{id}", func(w http.ResponseWriter, req *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"id": chi.URLParam(req, "id"), "name": "Jane"})
	})
	r.Delete("/users/{id}", fixture(http.StatusNoContent, ""))

	r.Get("/articles", fixture(http.StatusOK, `[{"id": "123", "title": "Hello"}]`))
	r.Post("/articles", fixture(http.StatusCreated, `{"id": "124"}`))
	r.Post("/articles/search", fixture(http.StatusOK, `[{"id": "123", "title": "Hello"}]`))
	r.Get("/articles/{id}", func(w http.ResponseWriter, req *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"id": chi.URLParam(req, "id"), "title": "Hello"})
	})
	r.Delete("/articles/{id}", fixture(http.StatusNoContent, ""))
	r.Post("/articles/{id}/publish", func(w http.ResponseWriter, req *http.Request) {
		writeJSON(w, http.StatusOK, map[string]interface{}{"id": chi.URLParam(req, "id"), "published": true})
	})
	r.Get("/articles/{id}/comments", fixture(http.StatusOK, `[{"id": "c1", "text": "First!"}]`))
	r.Post("/articles/{id}/comments", fixture(http.StatusCreated, `{"id": "c2"}`))
	r.Delete("/articles/{id}/comments/{commentID}", fixture(http.StatusNoContent, ""))

	return &DummyTransport{HandlerTransport{Handler: r}}
}

func fixture(status int, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		if body != "" {
			w.Header().Set("Content-Type", "application/json")
		}
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}
}
