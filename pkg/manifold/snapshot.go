package manifold

import (
	"sort"

	"github.com/mitchellh/hashstructure"
)

type ObjectSnapshot struct {
	ID          string
	Name        string
	Path        string
	ParentID    string
	Children    []string
	Attachments []AttachmentSnapshot
}

// AttachmentSnapshot describes one attachment. Hash is a fingerprint of the
// value and is zero for values that cannot be hashed, such as funcs.
type AttachmentSnapshot struct {
	Name string
	Type string
	Hash uint64
}

func (o *object) Snapshot() ObjectSnapshot {
	snap := ObjectSnapshot{
		ID:   o.id,
		Name: o.name,
		Path: o.Path(),
	}
	if o.parent != nil {
		snap.ParentID = o.parent.ID()
	}
	for _, child := range o.children {
		snap.Children = append(snap.Children, child.ID())
	}
	for item := range o.attachments.All() {
		hash, err := hashstructure.Hash(item.Interface(), nil)
		if err != nil {
			hash = 0
		}
		snap.Attachments = append(snap.Attachments, AttachmentSnapshot{
			Name: item.Name(),
			Type: item.Type().String(),
			Hash: hash,
		})
	}
	sort.Slice(snap.Attachments, func(i, j int) bool {
		return snap.Attachments[i].Name < snap.Attachments[j].Name
	})
	return snap
}
