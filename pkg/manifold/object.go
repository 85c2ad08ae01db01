package manifold

import (
	"path"
	"strings"

	"github.com/manifold/attach/pkg/attachment"
	"github.com/rs/xid"
)

// New returns an object with an empty attachment set configured with opts.
func New(name string, opts ...attachment.Option) Object {
	return newObject(name, opts...)
}

func newObject(name string, opts ...attachment.Option) *object {
	return &object{
		name:         name,
		id:           xid.New().String(),
		attributeset: attributeset{attachments: attachment.New(opts...)},
		opts:         opts,
	}
}

type object struct {
	attributeset

	name     string
	id       string
	parent   Object
	children []Object
	opts     []attachment.Option
}

func (o *object) Name() string {
	return o.name
}

func (o *object) SetName(name string) {
	o.name = name
}

func (o *object) ID() string {
	return o.id
}

func (o *object) Path() string {
	if o.parent == nil {
		return "/" + o.name
	}
	return path.Join(o.parent.Path(), o.name)
}

func (o *object) FindChild(subpath string) Object {
	names := strings.Split(strings.Trim(subpath, "/"), "/")
	var found Object = o
	for _, name := range names {
		var next Object
		for _, child := range found.Children() {
			if child.Name() == name {
				next = child
				break
			}
		}
		if next == nil {
			return nil
		}
		found = next
	}
	return found
}

func (o *object) Attachments() *attachment.Set {
	return o.attachments
}

func (o *object) Inherit() {
	if o.parent == nil {
		return
	}
	inherited := attachment.New(o.opts...)
	defer inherited.Clear()
	inherited.Merge(o.parent.Attachments())
	for name := range o.attachments.Names() {
		inherited.Remove(name)
	}
	o.attachments.Merge(inherited)
}

// Attach attaches v to the object under name as a T.
func Attach[T any](o Object, name string, v T) {
	attachment.Put(o.Attachments(), name, v)
}

// Attachment returns a handle to the value attached to the object under
// name as a T.
func Attachment[T any](o Object, name string) (*attachment.Handle[T], bool) {
	return attachment.Get[T](o.Attachments(), name)
}

// Find looks for a value attached as a T under name on the object and
// then on each of its ancestors, returning the nearest.
func Find[T any](o Object, name string) (T, bool) {
	for ; o != nil; o = o.Parent() {
		if v, ok := attachment.Lookup[T](o.Attachments(), name); ok {
			return v, true
		}
	}
	var zero T
	return zero, false
}
