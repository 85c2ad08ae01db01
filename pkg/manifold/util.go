package manifold

// ExpandPath returns the absolute path of the descendant of o at path,
// or path unchanged if there is none.
func ExpandPath(o Object, path string) string {
	obj := o.FindChild(path)
	if obj == nil {
		return path
	}
	return obj.Path()
}

// Walk calls fn for o and every descendant, depth first.
func Walk(o Object, fn func(Object)) {
	fn(o)
	for _, child := range o.Children() {
		Walk(child, fn)
	}
}
