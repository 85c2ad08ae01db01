package attachment

import (
	"iter"
	"sync"
)

// SharedSet is a Set that may be used from multiple goroutines.
//
// Iterating with All holds a read lock and AllMut holds the write lock until
// the loop ends, so the loop body must not call back into the same SharedSet.
type SharedSet struct {
	mu  sync.RWMutex
	set Set
}

// NewShared returns an empty SharedSet.
func NewShared(opts ...Option) *SharedSet {
	s := &SharedSet{}
	s.set.cfg = newConfig(opts)
	s.set.init()
	return s
}

func (s *SharedSet) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.set.Len()
}

func (s *SharedSet) IsEmpty() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.set.IsEmpty()
}

func (s *SharedSet) Contains(name string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.set.Contains(name)
}

func (s *SharedSet) Remove(name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.set.Remove(name)
}

func (s *SharedSet) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.set.Clear()
}

func (s *SharedSet) Merge(other Container) {
	// share takes the other container's lock, so it must happen first
	entries := other.share()
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, e := range entries {
		s.set.insert(e.name, e.slot)
	}
}

func (s *SharedSet) Names() iter.Seq[string] {
	return func(yield func(string) bool) {
		s.mu.RLock()
		names := make([]string, 0, len(s.set.data))
		for name := range s.set.data {
			names = append(names, name)
		}
		s.mu.RUnlock()
		for _, name := range names {
			if !yield(name) {
				return
			}
		}
	}
}

func (s *SharedSet) All() iter.Seq[Item] {
	return func(yield func(Item) bool) {
		s.mu.RLock()
		defer s.mu.RUnlock()
		s.set.All()(yield)
	}
}

func (s *SharedSet) AllMut() iter.Seq[*MutItem] {
	return func(yield func(*MutItem) bool) {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.set.AllMut()(yield)
	}
}

func (s *SharedSet) config() config {
	return s.set.cfg
}

func (s *SharedSet) lookup(name string, fn func(slot)) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.set.lookup(name, fn)
}

func (s *SharedSet) insert(name string, sl slot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.set.insert(name, sl)
}

func (s *SharedSet) share() []entry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.set.share()
}
