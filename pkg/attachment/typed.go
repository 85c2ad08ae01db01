package attachment

import "reflect"

// Put attaches v under name as a T, replacing whatever was attached under
// that name before.
//
// The container takes ownership of v: if it is an io.Closer it is closed
// once the last set or Handle sharing it lets go, even if the caller still
// holds a pointer to it. Use WithoutClose for values owned elsewhere.
func Put[T any](c Container, name string, v T) {
	c.insert(name, newSlot(v, c.config()))
}

// PutValue attaches v under name as its dynamic type. A nil v is attached
// as an interface{}. Ownership passes to the container as with Put.
func PutValue(c Container, name string, v interface{}) {
	c.insert(name, newDynamicSlot(v, c.config()))
}

// Has reports whether name is attached as a T.
func Has[T any](c Container, name string) bool {
	var ok bool
	c.lookup(name, func(s slot) {
		ok = s.typ == reflect.TypeFor[T]()
	})
	return ok
}

// Get returns a new Handle to the value attached under name. It returns
// false if there is no such attachment or it was not attached as a T.
func Get[T any](c Container, name string) (*Handle[T], bool) {
	var h *Handle[T]
	c.lookup(name, func(s slot) {
		if s.typ == reflect.TypeFor[T]() {
			h = newHandle[T](s.c.acquire())
		}
	})
	return h, h != nil
}

// Lookup returns a copy of the value attached under name if it was attached
// as a T.
func Lookup[T any](c Container, name string) (T, bool) {
	h, ok := Get[T](c, name)
	if !ok {
		var zero T
		return zero, false
	}
	defer h.Release()
	return h.Value(), true
}

// TypeOf returns the type name was attached as.
func TypeOf(c Container, name string) (reflect.Type, bool) {
	var typ reflect.Type
	ok := c.lookup(name, func(s slot) {
		typ = s.typ
	})
	return typ, ok
}

// ValueOf returns the value attached under name boxed in an interface,
// whatever its type.
func ValueOf(c Container, name string) (interface{}, bool) {
	var v interface{}
	ok := c.lookup(name, func(s slot) {
		v = s.c.load()
	})
	return v, ok
}
