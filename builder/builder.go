// Package builder assembles entity trees declaratively. Name
// validation is deferred to Build, so a whole tree can be described in
// one expression and checked once.
package builder

import (
	"github.com/xmlsmith/go-xmlsmith/entity"
)

// Builder describes one entity to construct.
type Builder struct {
	name     string
	text     string
	isText   bool
	attrs    []entity.Attr
	children []*Builder
}

// Element describes a composite entity.
func Element(name string) *Builder {
	return &Builder{name: name}
}

// Text describes a text entity holding value.
func Text(name, value string) *Builder {
	return &Builder{name: name, text: value, isText: true}
}

// Attr adds an attribute. Duplicate keys overwrite at Build time,
// matching entity.PutAttribute.
func (b *Builder) Attr(key, value string) *Builder {
	b.attrs = append(b.attrs, entity.Attr{Key: key, Value: value})
	return b
}

// Child appends a child description. Children of a text entity are
// rejected at Build time.
func (b *Builder) Child(children ...*Builder) *Builder {
	b.children = append(b.children, children...)
	return b
}

// Build constructs the described tree, returning the first validation
// failure encountered.
func (b *Builder) Build() (entity.Entity, error) {
	if b.isText {
		if len(b.children) > 0 {
			return nil, &BuildError{Name: b.name, Message: "text entity cannot have children"}
		}
		t, err := entity.NewText(b.name)
		if err != nil {
			return nil, err
		}
		t.SetText(b.text)
		if err := b.putAttrs(t); err != nil {
			return nil, err
		}
		return t, nil
	}

	c, err := entity.NewComposite(b.name)
	if err != nil {
		return nil, err
	}
	if err := b.putAttrs(c); err != nil {
		return nil, err
	}
	for _, cb := range b.children {
		child, err := cb.Build()
		if err != nil {
			return nil, err
		}
		c.AddChild(child)
	}
	return c, nil
}

func (b *Builder) putAttrs(e entity.Entity) error {
	for _, a := range b.attrs {
		if _, _, err := e.PutAttribute(a.Key, a.Value); err != nil {
			return err
		}
	}
	return nil
}

// BuildError reports a structural problem in a build description.
type BuildError struct {
	Name    string
	Message string
}

func (e *BuildError) Error() string {
	return "build " + e.Name + ": " + e.Message
}
