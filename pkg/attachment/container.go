package attachment

import "iter"

// Container is implemented by Set and SharedSet. The typed accessors in this
// package take a Container so they work with either.
type Container interface {
	// Len returns the number of attachments.
	Len() int

	// IsEmpty returns true if there are no attachments.
	IsEmpty() bool

	// Contains returns true if an attachment with the name exists,
	// whatever its type.
	Contains(name string) bool

	// Remove deletes the named attachment and reports whether it existed.
	// The value lives on if a Handle or another set still shares it.
	Remove(name string) bool

	// Clear removes every attachment.
	Clear()

	// Merge shares every attachment of other into this container under the
	// same name, replacing attachments with colliding names. Values are not
	// copied and other is left unchanged.
	Merge(other Container)

	// Names yields every attachment name in no particular order.
	Names() iter.Seq[string]

	// All yields a read-only Item per attachment in no particular order.
	All() iter.Seq[Item]

	// AllMut yields a MutItem per attachment in no particular order. The
	// items grant in-place mutation to values the container holds alone.
	AllMut() iter.Seq[*MutItem]

	config() config

	// lookup calls fn with the named slot if present. fn runs while the
	// container is guarded against writers.
	lookup(name string, fn func(slot)) bool

	// insert stores s under name and releases any slot it replaces.
	insert(name string, s slot)

	// share returns every slot with an extra reference already taken.
	share() []entry
}
