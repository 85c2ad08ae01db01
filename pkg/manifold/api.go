package manifold

import "github.com/manifold/attach/pkg/attachment"

// TreeNode is an interface for managing an object in a
// tree data structure.
type TreeNode interface {

	// Root returns the top-most parent to this node
	// if there are any parents, otherwise it returns itself.
	Root() Object

	// Parent returns the parent node to this node
	// if there is one, otherwise it returns nil.
	Parent() Object

	// SetParent moves this node under the given node, or
	// detaches it when node is nil.
	SetParent(node Object)

	// Children returns a slice of any child nodes of this node.
	Children() []Object

	// RemoveChildAt removes and returns the child node at the given index.
	// Attachments the child inherited from this node are given back.
	RemoveChildAt(idx int) Object

	// RemoveChild removes the given node if it is a child of this node.
	RemoveChild(node Object)

	// AppendChild adds the given node to this node's children.
	AppendChild(child Object)

	// ChildAt returns the child node at the given index or nil
	// if the index is out of range.
	ChildAt(idx int) Object
}

// AttributeSet is an interface for managing untyped key-value
// attributes of an object. Attributes are stored as attachments
// under their dynamic type, so a value set here can be read back
// with Lookup using that type.
type AttributeSet interface {
	// HasAttribute returns true if the named attribute exists.
	HasAttribute(attr string) bool

	// GetAttribute returns the named attribute value or nil if
	// it does not exist.
	GetAttribute(attr string) interface{}

	// SetAttribute sets the named attribute value.
	SetAttribute(attr string, value interface{})

	// UnsetAttribute removes the named attribute.
	UnsetAttribute(attr string)
}

// Object is a named node in a tree that carries attachments:
// arbitrary values attached by name without the object knowing
// their types.
type Object interface {
	TreeNode
	AttributeSet

	// Name returns the name of this object.
	Name() string

	// SetName sets the name of this object.
	SetName(name string)

	// ID returns a unique identifier for this object.
	ID() string

	// Path returns the absolute path of this object.
	Path() string

	// FindChild returns a descendant of this object that
	// matches the name or relative path. It returns nil
	// if no descendant matches.
	FindChild(subpath string) Object

	// Attachments returns the attachment set of this object.
	Attachments() *attachment.Set

	// Inherit shares the attachments of the parent into this
	// object. Attachments already on this object are kept.
	Inherit()

	// Snapshot returns a description of this object and
	// its attachments.
	Snapshot() ObjectSnapshot
}
