package attachment

import (
	"errors"
	"fmt"
	"sort"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type myStruct struct {
	A int
	B string
}

type otherStruct struct {
	A int
	B string
}

type closer struct {
	mu     sync.Mutex
	closed int
	err    error
}

func (c *closer) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed++
	return c.err
}

func (c *closer) Closed() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.closed
}

type label string

func (l label) String() string { return string(l) }

func TestBasicOperations(t *testing.T) {
	s := New()
	assert.True(t, s.IsEmpty())
	assert.Equal(t, 0, s.Len())

	Put(s, "name", "Alice")
	v, ok := Lookup[string](s, "name")
	require.True(t, ok)
	assert.Equal(t, "Alice", v)
	assert.Equal(t, 1, s.Len())
	assert.False(t, s.IsEmpty())

	assert.True(t, Has[string](s, "name"))
	assert.False(t, Has[int32](s, "name"))
	assert.False(t, Has[string](s, "missing"))

	assert.True(t, s.Remove("name"))
	assert.False(t, s.Contains("name"))
	assert.False(t, s.Remove("name"))
}

func TestZeroValue(t *testing.T) {
	var s Set
	assert.True(t, s.IsEmpty())
	assert.False(t, s.Remove("x"))
	Put(&s, "x", 1)
	assert.True(t, Has[int](&s, "x"))
}

func TestTypeIdentity(t *testing.T) {
	s := New()
	Put(s, "s", myStruct{A: 1, B: "Alice"})
	Put(s, "n", int32(7))
	Put(s, "l", label("x"))
	Put[fmt.Stringer](s, "i", label("y"))

	t.Run("exact type matches", func(t *testing.T) {
		h, ok := Get[myStruct](s, "s")
		require.True(t, ok)
		defer h.Release()
		assert.Equal(t, 1, h.Value().A)
		assert.Equal(t, "Alice", h.Value().B)
	})

	t.Run("structurally identical type does not", func(t *testing.T) {
		_, ok := Get[otherStruct](s, "s")
		assert.False(t, ok)
		assert.False(t, Has[otherStruct](s, "s"))
	})

	t.Run("no numeric coercion", func(t *testing.T) {
		_, ok := Get[int](s, "n")
		assert.False(t, ok)
		_, ok = Get[int64](s, "n")
		assert.False(t, ok)
		_, ok = Get[int32](s, "n")
		assert.True(t, ok)
	})

	t.Run("no interface matching", func(t *testing.T) {
		_, ok := Get[fmt.Stringer](s, "l")
		assert.False(t, ok)
		_, ok = Get[label](s, "i")
		assert.False(t, ok)
		v, ok := Lookup[fmt.Stringer](s, "i")
		require.True(t, ok)
		assert.Equal(t, "y", v.String())
	})

	t.Run("pointer is its own type", func(t *testing.T) {
		_, ok := Get[*myStruct](s, "s")
		assert.False(t, ok)
	})
}

func TestReplaceOverwritesType(t *testing.T) {
	s := New()
	Put(s, "x", int32(1))
	Put(s, "x", "one")

	assert.Equal(t, 1, s.Len())
	assert.False(t, Has[int32](s, "x"))
	assert.True(t, Has[string](s, "x"))

	typ, ok := TypeOf(s, "x")
	require.True(t, ok)
	assert.Equal(t, "string", typ.String())
}

func TestRemove(t *testing.T) {
	s := New()
	Put(s, "x", 1)

	before := s.Contains("x")
	assert.Equal(t, before, s.Remove("x"))
	assert.False(t, s.Contains("x"))
	_, ok := Get[int](s, "x")
	assert.False(t, ok)
	_, ok = ValueOf(s, "x")
	assert.False(t, ok)
}

func TestClear(t *testing.T) {
	s := New()
	c := &closer{}
	Put(s, "a", 1)
	Put(s, "b", c)
	s.Clear()

	assert.True(t, s.IsEmpty())
	assert.False(t, s.Contains("a"))
	assert.Equal(t, 1, c.Closed())
}

func TestMerge(t *testing.T) {
	a := New()
	b := New()
	Put(a, "x", int32(1))
	Put(a, "keep", true)
	Put(b, "x", "from b")
	Put(b, "y", 2.5)

	a.Merge(b)

	assert.Equal(t, 3, a.Len())
	assert.True(t, Has[string](a, "x"))
	v, _ := Lookup[string](a, "x")
	assert.Equal(t, "from b", v)
	assert.True(t, Has[bool](a, "keep"))
	assert.True(t, Has[float64](a, "y"))

	assert.Equal(t, 2, b.Len())
	assert.True(t, Has[string](b, "x"))
	assert.False(t, b.Contains("keep"))

	t.Run("shares rather than copies", func(t *testing.T) {
		h, ok := Get[string](b, "x")
		require.True(t, ok)
		defer h.Release()
		assert.Equal(t, 3, h.Refs())
	})

	t.Run("merge into self is a no-op", func(t *testing.T) {
		a.Merge(a)
		h, ok := Get[float64](a, "y")
		require.True(t, ok)
		defer h.Release()
		assert.Equal(t, 3, h.Refs())
		assert.Equal(t, 3, a.Len())
	})
}

func TestIteration(t *testing.T) {
	s := New()
	Put(s, "str", "hello")
	Put(s, "num", int32(42))

	var names []string
	for item := range s.All() {
		names = append(names, item.Name())
		if Is[int32](item) {
			v, ok := Value[int32](item)
			require.True(t, ok)
			assert.Equal(t, int32(42), v)
			_, ok = Value[string](item)
			assert.False(t, ok)
		}
	}
	sort.Strings(names)
	assert.Equal(t, []string{"num", "str"}, names)

	var contained []string
	for name := range s.Names() {
		assert.True(t, s.Contains(name))
		contained = append(contained, name)
	}
	sort.Strings(contained)
	assert.Equal(t, names, contained)

	t.Run("early break", func(t *testing.T) {
		n := 0
		for range s.All() {
			n++
			break
		}
		assert.Equal(t, 1, n)
	})

	t.Run("does not take references", func(t *testing.T) {
		h, ok := Get[string](s, "str")
		require.True(t, ok)
		defer h.Release()
		for item := range s.All() {
			if Is[string](item) {
				assert.Equal(t, "hello", item.Interface())
				assert.Equal(t, 2, h.Refs())
			}
		}
	})
}

func TestMutableIteration(t *testing.T) {
	s := New()
	Put(s, "count", int32(42))
	Put(s, "str", "hello")

	for item := range s.AllMut() {
		if Is[int32](item) {
			p, ok := Mutable[int32](item)
			require.True(t, ok)
			*p += 1
		}
		_, ok := Mutable[int64](item)
		assert.False(t, ok)
	}

	v, ok := Lookup[int32](s, "count")
	require.True(t, ok)
	assert.Equal(t, int32(43), v)
}

func TestMutableRefusedWhenShared(t *testing.T) {
	s := New()
	Put(s, "count", 1)

	mutate := func() bool {
		for item := range s.AllMut() {
			p, ok := Mutable[int](item)
			if ok {
				*p++
			}
			return ok
		}
		return false
	}

	t.Run("outstanding handle", func(t *testing.T) {
		h, ok := Get[int](s, "count")
		require.True(t, ok)
		assert.False(t, mutate())
		assert.Equal(t, 1, h.Value())

		h.Release()
		assert.True(t, mutate())
		v, _ := Lookup[int](s, "count")
		assert.Equal(t, 2, v)
	})

	t.Run("merged into another set", func(t *testing.T) {
		other := New()
		other.Merge(s)
		assert.False(t, mutate())

		other.Remove("count")
		assert.True(t, mutate())
	})

	t.Run("exclusive reports ownership", func(t *testing.T) {
		h, _ := Get[int](s, "count")
		for item := range s.AllMut() {
			assert.False(t, item.Exclusive())
		}
		h.Release()
		for item := range s.AllMut() {
			assert.True(t, item.Exclusive())
		}
	})
}

func TestHandle(t *testing.T) {
	s := New()
	c := &closer{}
	Put(s, "c", c)

	h, ok := Get[*closer](s, "c")
	require.True(t, ok)
	assert.Equal(t, 2, h.Refs())

	h2 := h.Clone()
	require.NotNil(t, h2)
	assert.Equal(t, 3, h.Refs())

	assert.True(t, s.Remove("c"))
	assert.Equal(t, 2, h.Refs())
	assert.Equal(t, 0, c.Closed())
	assert.Same(t, c, h.Value())

	h.Release()
	h.Release()
	assert.Equal(t, 1, h2.Refs())
	assert.Nil(t, h.Clone())
	assert.Equal(t, 0, c.Closed())

	h2.Release()
	assert.Equal(t, 1, c.Closed())
}

func TestReplaceReleasesPrior(t *testing.T) {
	s := New()
	c := &closer{}
	Put(s, "x", c)
	Put(s, "x", 1)
	assert.Equal(t, 1, c.Closed())
}

type valueCloser struct {
	closed *int
}

func (v valueCloser) Close() error {
	*v.closed++
	return nil
}

func TestCloseKinds(t *testing.T) {
	t.Run("value receiver", func(t *testing.T) {
		n := 0
		s := New()
		Put(s, "v", valueCloser{closed: &n})
		s.Remove("v")
		assert.Equal(t, 1, n)
	})

	t.Run("interface type", func(t *testing.T) {
		c := &closer{}
		s := New()
		Put[fmt.Stringer](s, "none", label("x"))
		PutValue(s, "c", c)
		s.Clear()
		assert.Equal(t, 1, c.Closed())
	})

	t.Run("typed nil is skipped", func(t *testing.T) {
		s := New()
		Put[*closer](s, "nil", nil)
		assert.NotPanics(t, func() {
			s.Remove("nil")
		})
	})

	t.Run("errors are logged", func(t *testing.T) {
		core, logs := observer.New(zap.DebugLevel)
		s := New(WithLogger(zap.New(core).Sugar()))
		Put(s, "c", &closer{err: errors.New("boom")})
		s.Remove("c")
		if assert.Equal(t, 1, logs.Len()) {
			assert.Equal(t, "attachment close failed", logs.All()[0].Message)
			assert.Contains(t, logs.All()[0].ContextMap()["error"], "boom")
		}
	})
}

func TestPutValue(t *testing.T) {
	s := New()
	PutValue(s, "n", 42)
	PutValue(s, "nil", nil)

	assert.True(t, Has[int](s, "n"))
	v, ok := Lookup[int](s, "n")
	require.True(t, ok)
	assert.Equal(t, 42, v)

	boxed, ok := ValueOf(s, "n")
	require.True(t, ok)
	assert.Equal(t, 42, boxed)

	assert.True(t, Has[interface{}](s, "nil"))
	nv, ok := ValueOf(s, "nil")
	assert.True(t, ok)
	assert.Nil(t, nv)

	for item := range s.AllMut() {
		if p, ok := Mutable[int](item); ok {
			*p = 7
		}
	}
	v, _ = Lookup[int](s, "n")
	assert.Equal(t, 7, v)
}
