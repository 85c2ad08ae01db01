package attachment

import (
	"iter"
	"runtime"
)

// Set is a collection of named attachments for use from a single goroutine.
// The zero value is an empty set ready to use. A Set must not be copied
// after first use.
//
// When a Set becomes unreachable its references are given back, so values
// it shared through Merge become mutable again for their other holders.
type Set struct {
	data map[string]slot
	cfg  config
}

// New returns an empty Set.
func New(opts ...Option) *Set {
	s := &Set{cfg: newConfig(opts)}
	s.init()
	return s
}

func (s *Set) init() {
	if s.data != nil {
		return
	}
	s.data = make(map[string]slot)
	runtime.AddCleanup(s, releaseAll, s.data)
}

func (s *Set) Len() int {
	return len(s.data)
}

func (s *Set) IsEmpty() bool {
	return len(s.data) == 0
}

func (s *Set) Contains(name string) bool {
	_, ok := s.data[name]
	return ok
}

func (s *Set) Remove(name string) bool {
	sl, ok := s.data[name]
	if !ok {
		return false
	}
	delete(s.data, name)
	sl.c.release()
	return true
}

func (s *Set) Clear() {
	for name, sl := range s.data {
		delete(s.data, name)
		sl.c.release()
	}
}

func (s *Set) Merge(other Container) {
	for _, e := range other.share() {
		s.insert(e.name, e.slot)
	}
}

// Unshare removes every attachment whose value is the very one other holds
// under the same name, giving back the references taken by Merge. It
// returns the number of attachments removed.
func (s *Set) Unshare(other Container) int {
	if o, ok := other.(*Set); ok && o == s {
		return 0
	}
	n := 0
	for name, sl := range s.data {
		var same bool
		other.lookup(name, func(o slot) {
			same = o.c == sl.c
		})
		if same {
			delete(s.data, name)
			sl.c.release()
			n++
		}
	}
	return n
}

func (s *Set) Names() iter.Seq[string] {
	return func(yield func(string) bool) {
		for name := range s.data {
			if !yield(name) {
				return
			}
		}
	}
}

func (s *Set) All() iter.Seq[Item] {
	return func(yield func(Item) bool) {
		for name, sl := range s.data {
			if !yield(Item{name: name, s: sl}) {
				return
			}
		}
	}
}

func (s *Set) AllMut() iter.Seq[*MutItem] {
	return func(yield func(*MutItem) bool) {
		for name, sl := range s.data {
			if !yield(&MutItem{Item{name: name, s: sl}}) {
				return
			}
		}
	}
}

func (s *Set) config() config {
	return s.cfg
}

func (s *Set) lookup(name string, fn func(slot)) bool {
	sl, ok := s.data[name]
	if ok {
		fn(sl)
	}
	return ok
}

func (s *Set) insert(name string, sl slot) {
	s.init()
	prev, ok := s.data[name]
	s.data[name] = sl
	if ok {
		prev.c.release()
	}
}

func (s *Set) share() []entry {
	entries := make([]entry, 0, len(s.data))
	for name, sl := range s.data {
		sl.c.acquire()
		entries = append(entries, entry{name: name, slot: sl})
	}
	return entries
}
