package attachment

import (
	"io"
	"reflect"

	"github.com/manifold/attach/pkg/misc/logging"
	"go.uber.org/atomic"
)

var closerType = reflect.TypeOf((*io.Closer)(nil)).Elem()

// cell is the shared box behind a slot. ptr is always a *T where T is the
// type the slot was stored as.
type cell struct {
	ptr    interface{}
	refs   atomic.Int32
	closes bool
	log    logging.DebugLogger
}

func newCell(typ reflect.Type, ptr interface{}, cfg config) *cell {
	c := &cell{
		ptr:    ptr,
		closes: !cfg.noClose && closable(typ),
		log:    cfg.log,
	}
	c.refs.Store(1)
	return c
}

func closable(typ reflect.Type) bool {
	return typ.Kind() == reflect.Interface || typ.Implements(closerType) || reflect.PointerTo(typ).Implements(closerType)
}

func (c *cell) acquire() *cell {
	c.refs.Inc()
	return c
}

// release drops one reference and destroys the value once nobody holds it.
func (c *cell) release() {
	n := c.refs.Dec()
	if n > 0 {
		return
	}
	if n < 0 {
		logging.Debugw(c.log, "attachment cell over-released", "refs", n)
		return
	}
	if err := c.destroy(); err != nil {
		logging.Debugw(c.log, "attachment close failed", "error", err)
	}
}

func (c *cell) exclusive() bool {
	return c.refs.Load() == 1
}

func (c *cell) load() interface{} {
	return reflect.ValueOf(c.ptr).Elem().Interface()
}

func (c *cell) destroy() error {
	if !c.closes {
		return nil
	}
	if cl, ok := c.ptr.(io.Closer); ok {
		return cl.Close()
	}
	v := c.load()
	if cl, ok := v.(io.Closer); ok && !isNil(v) {
		return cl.Close()
	}
	return nil
}

func isNil(v interface{}) bool {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Invalid:
		return true
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return rv.IsNil()
	}
	return false
}

// slot is what a set stores under a name. typ and c are set together and
// never change for the lifetime of the slot.
type slot struct {
	typ reflect.Type
	c   *cell
}

func newSlot[T any](v T, cfg config) slot {
	typ := reflect.TypeFor[T]()
	return slot{typ: typ, c: newCell(typ, &v, cfg)}
}

func newDynamicSlot(v interface{}, cfg config) slot {
	if v == nil {
		return newSlot[interface{}](nil, cfg)
	}
	typ := reflect.TypeOf(v)
	rv := reflect.New(typ)
	rv.Elem().Set(reflect.ValueOf(v))
	return slot{typ: typ, c: newCell(typ, rv.Interface(), cfg)}
}

// releaseAll gives back every reference held by an unreachable set.
func releaseAll(data map[string]slot) {
	for _, sl := range data {
		sl.c.release()
	}
}

type entry struct {
	name string
	slot
}
