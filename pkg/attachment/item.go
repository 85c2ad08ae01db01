package attachment

import "reflect"

// View is the read-only face of an iterated attachment, implemented by Item
// and *MutItem.
type View interface {
	Name() string
	Type() reflect.Type
	view() slot
}

// Item is an attachment yielded by All. It borrows the value from the set
// and does not take a reference to it.
type Item struct {
	name string
	s    slot
}

func (i Item) Name() string {
	return i.name
}

// Type returns the type the value was attached as.
func (i Item) Type() reflect.Type {
	return i.s.typ
}

// Interface returns the attached value boxed in an interface.
func (i Item) Interface() interface{} {
	return i.s.c.load()
}

func (i Item) view() slot {
	return i.s
}

// MutItem is an attachment yielded by AllMut.
type MutItem struct {
	Item
}

// Exclusive reports whether the set is currently the only holder of the
// value, which is when Mutable will succeed.
func (m *MutItem) Exclusive() bool {
	return m.s.c.exclusive()
}

// Is reports whether the item was attached as a T.
func Is[T any](v View) bool {
	return v.view().typ == reflect.TypeFor[T]()
}

// Value returns a copy of the item's value if it was attached as a T.
func Value[T any](v View) (T, bool) {
	if !Is[T](v) {
		var zero T
		return zero, false
	}
	return *v.view().c.ptr.(*T), true
}

// Mutable returns a pointer for changing the item's value in place. It only
// succeeds if the item was attached as a T and no Handle or other set shares
// the value at the time of the call. The pointer must not be kept beyond the
// current iteration step.
func Mutable[T any](m *MutItem) (*T, bool) {
	if !Is[T](m) || !m.Exclusive() {
		return nil, false
	}
	return m.s.c.ptr.(*T), true
}
