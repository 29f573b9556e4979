package mockapi

import (
	"sort"
	"strings"
	"sync"
)

type item map[string]interface{}

type collection struct {
	order []string
	items map[string]item
}

type store struct {
	collections map[string]*collection
	lock        sync.Mutex
}

func newStore() *store {
	return &store{collections: make(map[string]*collection)}
}

func (s *store) collection(path string) *collection {
	c := s.collections[path]
	if c == nil {
		c = &collection{items: make(map[string]item)}
		s.collections[path] = c
	}
	return c
}

func (s *store) list(path string, match func(item) bool) []item {
	s.lock.Lock()
	defer s.lock.Unlock()
	ret := []item{}
	c := s.collections[path]
	if c == nil {
		return ret
	}
	for _, id := range c.order {
		if it := c.items[id]; match == nil || match(it) {
			ret = append(ret, copyItem(it))
		}
	}
	return ret
}

func (s *store) put(path, id string, it item) (created bool) {
	s.lock.Lock()
	defer s.lock.Unlock()
	c := s.collection(path)
	if _, exists := c.items[id]; !exists {
		c.order = append(c.order, id)
		created = true
	}
	c.items[id] = copyItem(it)
	return created
}

func (s *store) get(path, id string) (item, bool) {
	s.lock.Lock()
	defer s.lock.Unlock()
	if c := s.collections[path]; c != nil {
		if it, ok := c.items[id]; ok {
			return copyItem(it), true
		}
	}
	return nil, false
}

func (s *store) update(path, id string, fn func(item)) (item, bool) {
	s.lock.Lock()
	defer s.lock.Unlock()
	c := s.collections[path]
	if c == nil {
		return nil, false
	}
	it, ok := c.items[id]
	if !ok {
		return nil, false
	}
	fn(it)
	return copyItem(it), true
}

func (s *store) delete(path, id string) bool {
	s.lock.Lock()
	defer s.lock.Unlock()
	c := s.collections[path]
	if c == nil {
		return false
	}
	if _, ok := c.items[id]; !ok {
		return false
	}
	delete(c.items, id)
	for i, existing := range c.order {
		if existing == id {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
	nestedPrefix := path + "/" + id + "/"
	for p := range s.collections {
		if strings.HasPrefix(p, nestedPrefix) {
			delete(s.collections, p)
		}
	}
	return true
}

func (s *store) paths() []string {
	s.lock.Lock()
	defer s.lock.Unlock()
	var ret []string
	for p, c := range s.collections {
		for _, id := range c.order {
			ret = append(ret, p+"/"+id)
		}
	}
	sort.Strings(ret)
	return ret
}

func copyItem(it item) item {
	ret := make(item, len(it))
	for k, v := range it {
		ret[k] = v
	}
	return ret
}
