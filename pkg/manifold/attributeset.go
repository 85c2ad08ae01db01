package manifold

import "github.com/manifold/attach/pkg/attachment"

type attributeset struct {
	attachments *attachment.Set
}

func (s attributeset) HasAttribute(attr string) bool {
	return s.attachments.Contains(attr)
}

func (s attributeset) GetAttribute(attr string) interface{} {
	v, _ := attachment.ValueOf(s.attachments, attr)
	return v
}

func (s attributeset) SetAttribute(attr string, value interface{}) {
	attachment.PutValue(s.attachments, attr, value)
}

func (s attributeset) UnsetAttribute(attr string) {
	s.attachments.Remove(attr)
}
