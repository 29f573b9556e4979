package mockapi

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/launchdarkly/http-test-client/logging"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// ActionFunc modifies an item in place when an item action is invoked.
type ActionFunc func(properties map[string]interface{})

// Server is an http.Handler that implements the mock API. The zero value is not usable; call New.
type Server struct {
	router  chi.Router
	store   *store
	actions map[string]ActionFunc
	logger  logging.Logger
}

// New creates a Server with no data. The "publish" action, which sets "published" to true, is
// registered by default.
func New(logger logging.Logger) *Server {
	s := &Server{
		store:   newStore(),
		actions: make(map[string]ActionFunc),
		logger:  logging.OrNull(logger),
	}
	s.AddAction("publish", func(properties map[string]interface{}) {
		properties["published"] = true
	})

	r := chi.NewRouter()
	r.Get("/*", s.handleGet)
	r.Post("/*", s.handlePost)
	r.Put("/*", s.handlePut)
	r.Delete("/*", s.handleDelete)
	s.router = r
	return s
}

// AddAction registers an item action. A POST to "<item URL>/<name>" on an existing item calls fn
// and responds with the modified item.
func (s *Server) AddAction(name string, fn ActionFunc) {
	s.actions[name] = fn
}

func (s *Server) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	s.logger.Printf("%s %s", req.Method, req.URL)
	s.router.ServeHTTP(w, req)
}

// Paths returns the URL of every item that currently exists, in sorted order.
func (s *Server) Paths() []string {
	return s.store.paths()
}

// Get returns the properties of the item at itemURL, if it exists.
func (s *Server) Get(itemURL string) (map[string]interface{}, bool) {
	t, ok := parseTarget(itemURL)
	if !ok || t.id == "" {
		return nil, false
	}
	return s.store.get(t.collection, t.id)
}

type target struct {
	collection string
	id         string // empty if the path is a collection
	last       string
}

// parseTarget interprets a path with an odd number of segments as a collection, and one with an
// even number as an item.
func parseTarget(path string) (target, bool) {
	trimmed := strings.Trim(path, "/")
	if trimmed == "" {
		return target{}, false
	}
	segments := strings.Split(trimmed, "/")
	n := len(segments)
	t := target{last: segments[n-1]}
	if n%2 == 1 {
		t.collection = "/" + trimmed
	} else {
		t.collection = "/" + strings.Join(segments[:n-1], "/")
		t.id = segments[n-1]
	}
	return t, true
}

func requestTarget(req *http.Request) (target, bool) {
	return parseTarget(chi.URLParam(req, "*"))
}

func (s *Server) handleGet(w http.ResponseWriter, req *http.Request) {
	t, ok := requestTarget(req)
	if !ok {
		writeError(w, http.StatusNotFound, "no such resource")
		return
	}
	if t.id == "" {
		query := req.URL.Query()
		writeJSON(w, http.StatusOK, s.store.list(t.collection, func(it item) bool {
			for k := range query {
				if fmt.Sprint(it[k]) != query.Get(k) {
					return false
				}
			}
			return true
		}))
		return
	}
	if it, found := s.store.get(t.collection, t.id); found {
		writeJSON(w, http.StatusOK, it)
		return
	}
	writeError(w, http.StatusNotFound, "not found")
}

func (s *Server) handlePost(w http.ResponseWriter, req *http.Request) {
	t, ok := requestTarget(req)
	if !ok {
		writeError(w, http.StatusNotFound, "no such resource")
		return
	}
	if t.id != "" {
		if t.id == "search" {
			s.search(w, req, t)
			return
		}
		writeError(w, http.StatusMethodNotAllowed, "cannot POST to an item")
		return
	}
	if action := s.actions[t.last]; action != nil && strings.Count(t.collection, "/") > 1 {
		owner, _ := parseTarget(strings.TrimSuffix(t.collection, "/"+t.last))
		updated, found := s.store.update(owner.collection, owner.id, func(it item) { action(it) })
		if !found {
			writeError(w, http.StatusNotFound, "not found")
			return
		}
		writeJSON(w, http.StatusOK, updated)
		return
	}
	body, err := readObject(req)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	id := idOf(body)
	if id == "" {
		id = uuid.NewString()
	}
	body["id"] = id
	if _, exists := s.store.get(t.collection, id); exists {
		writeError(w, http.StatusConflict, "item already exists")
		return
	}
	s.store.put(t.collection, id, body)
	w.Header().Set("Location", t.collection+"/"+id)
	writeJSON(w, http.StatusCreated, body)
}

func (s *Server) search(w http.ResponseWriter, req *http.Request, t target) {
	criteria, err := readObject(req)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, s.store.list(t.collection, func(it item) bool {
		for k, v := range criteria {
			if fmt.Sprint(it[k]) != fmt.Sprint(v) {
				return false
			}
		}
		return true
	}))
}

func (s *Server) handlePut(w http.ResponseWriter, req *http.Request) {
	t, ok := requestTarget(req)
	if !ok || t.id == "" {
		writeError(w, http.StatusMethodNotAllowed, "can only PUT an item")
		return
	}
	body, err := readObject(req)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	body["id"] = t.id
	updated, found := s.store.update(t.collection, t.id, func(it item) {
		for k := range it {
			delete(it, k)
		}
		for k, v := range body {
			it[k] = v
		}
	})
	if !found {
		writeError(w, http.StatusNotFound, "not found")
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (s *Server) handleDelete(w http.ResponseWriter, req *http.Request) {
	t, ok := requestTarget(req)
	if !ok || t.id == "" {
		writeError(w, http.StatusMethodNotAllowed, "can only DELETE an item")
		return
	}
	if !s.store.delete(t.collection, t.id) {
		writeError(w, http.StatusNotFound, "not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func readObject(req *http.Request) (item, error) {
	data, err := io.ReadAll(req.Body)
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return item{}, nil
	}
	var body item
	if err := json.Unmarshal(data, &body); err != nil || body == nil {
		return nil, fmt.Errorf("request body must be a JSON object: %s", string(data))
	}
	return body, nil
}

func idOf(body item) string {
	switch id := body["id"].(type) {
	case string:
		return id
	case float64:
		return strconv.FormatFloat(id, 'f', -1, 64)
	default:
		return ""
	}
}

func writeJSON(w http.ResponseWriter, status int, value interface{}) {
	data, err := json.Marshal(value)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(data)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// Mounted returns a handler that serves s under a path prefix such as "/api", and responds with
// 404 to anything outside it. An empty prefix returns s itself.
func Mounted(prefix string, s *Server) http.Handler {
	if prefix == "" {
		return s
	}
	r := chi.NewRouter()
	r.Mount(prefix, s)
	return r
}
