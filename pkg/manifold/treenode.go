package manifold

// linker is implemented by objects of this package. Linking only records
// the parent; the children slices are kept by the callers.
type linker interface {
	setParent(p Object)
}

func (o *object) setParent(p Object) {
	o.parent = p
}

func (o *object) Root() Object {
	if o.parent != nil {
		return o.parent.Root()
	}
	return o
}

func (o *object) Parent() Object {
	return o.parent
}

// SetParent moves o under p. A nil p detaches o from its parent.
func (o *object) SetParent(p Object) {
	if o.parent == p {
		return
	}
	if o.parent != nil {
		o.parent.RemoveChild(o)
	}
	if p != nil {
		p.AppendChild(o)
	}
}

func (o *object) Children() []Object {
	ch := make([]Object, len(o.children))
	copy(ch, o.children)
	return ch
}

func (o *object) ChildAt(idx int) Object {
	if idx > -1 && len(o.children) > idx {
		return o.children[idx]
	}
	return nil
}

func (o *object) AppendChild(child Object) {
	if child.Parent() == Object(o) {
		return
	}
	if p := child.Parent(); p != nil {
		p.RemoveChild(child)
	}
	link(child, o)
	o.children = append(o.children, child)
}

func (o *object) RemoveChild(child Object) {
	for i, c := range o.children {
		if c == child {
			o.RemoveChildAt(i)
			return
		}
	}
}

// RemoveChildAt unlinks the child at idx and gives back every attachment
// it inherited from o, so o regains sole ownership of those values.
func (o *object) RemoveChildAt(idx int) Object {
	child := o.ChildAt(idx)
	if child == nil {
		return nil
	}
	o.children = append(o.children[:idx], o.children[idx+1:]...)
	child.Attachments().Unshare(o.Attachments())
	link(child, nil)
	return child
}

func link(child, parent Object) {
	if l, ok := child.(linker); ok {
		l.setParent(parent)
	}
}
