package entity

// Entity is a node in an XML tree, either a *Composite or a *Text.
type Entity interface {
	// Name returns the node's element name.
	Name() string

	// SetName replaces the element name, failing with an
	// *InvalidNameError if the new name does not match the name
	// pattern. On failure the previous name is kept.
	SetName(name string) error

	// Attribute returns the value stored under key, if any.
	Attribute(key string) (string, bool)

	// Attributes returns the attributes in insertion order.
	Attributes() []Attr

	// PutAttribute inserts or overwrites the attribute under key,
	// returning the previous value when one was replaced. Overwriting
	// keeps the key's position. Fails with an *InvalidNameError when
	// key does not match the name pattern.
	PutAttribute(key, value string) (prev string, replaced bool, err error)

	// RemoveAttribute removes the attribute under key, returning the
	// removed value when present. It never fails.
	RemoveAttribute(key string) (prev string, removed bool)

	// RenameAttribute moves the value under oldKey to newKey,
	// appending newKey at the end of the attribute order, and returns
	// the moved value. An existing value under newKey is overwritten.
	// If newKey is invalid it fails with an
	// *InvalidNameError and leaves the attributes untouched. If oldKey
	// is absent it is a no-op returning ("", false, nil).
	RenameAttribute(oldKey, newKey string) (prev string, renamed bool, err error)

	// Parent returns the composite this node is attached to, or nil.
	Parent() *Composite

	// Depth is 1 for a parentless node and 1 + the parent's depth
	// otherwise. It is computed from the parent chain, not cached.
	Depth() int

	// Visit walks the subtree rooted at this node in pre-order. For a
	// composite, fn's return value decides whether the walk descends
	// into its children; children are visited in insertion order.
	Visit(fn func(Entity) bool)

	setParent(p *Composite)
}

// Attr is a single key/value attribute pair.
type Attr struct {
	Key   string
	Value string
}

// node carries the state shared by Text and Composite.
type node struct {
	name   string
	attrs  []Attr
	parent *Composite
}

func (n *node) Name() string { return n.name }

func (n *node) SetName(name string) error {
	if err := checkName(name); err != nil {
		return err
	}
	n.name = name
	return nil
}

func (n *node) Attribute(key string) (string, bool) {
	for i := range n.attrs {
		if n.attrs[i].Key == key {
			return n.attrs[i].Value, true
		}
	}
	return "", false
}

func (n *node) Attributes() []Attr {
	res := make([]Attr, len(n.attrs))
	copy(res, n.attrs)
	return res
}

func (n *node) PutAttribute(key, value string) (string, bool, error) {
	if err := checkName(key); err != nil {
		return "", false, err
	}
	for i := range n.attrs {
		if n.attrs[i].Key == key {
			prev := n.attrs[i].Value
			n.attrs[i].Value = value
			return prev, true, nil
		}
	}
	n.attrs = append(n.attrs, Attr{Key: key, Value: value})
	return "", false, nil
}

func (n *node) RemoveAttribute(key string) (string, bool) {
	for i := range n.attrs {
		if n.attrs[i].Key == key {
			prev := n.attrs[i].Value
			n.attrs = append(n.attrs[:i], n.attrs[i+1:]...)
			return prev, true
		}
	}
	return "", false
}

func (n *node) RenameAttribute(oldKey, newKey string) (string, bool, error) {
	if err := checkName(newKey); err != nil {
		return "", false, err
	}
	prev, removed := n.RemoveAttribute(oldKey)
	if !removed {
		return "", false, nil
	}
	// keys stay unique: an existing entry under newKey is overwritten
	n.RemoveAttribute(newKey)
	n.attrs = append(n.attrs, Attr{Key: newKey, Value: prev})
	return prev, true, nil
}

func (n *node) Parent() *Composite { return n.parent }

func (n *node) Depth() int {
	if n.parent == nil {
		return 1
	}
	return 1 + n.parent.Depth()
}

func (n *node) setParent(p *Composite) { n.parent = p }

// Text is a leaf node holding string content.
type Text struct {
	node
	text string
}

// NewText creates a text node, failing with an *InvalidNameError when
// name does not match the name pattern.
func NewText(name string) (*Text, error) {
	if err := checkName(name); err != nil {
		return nil, err
	}
	return &Text{node: node{name: name}}, nil
}

// MustText is NewText panicking on an invalid name. It is intended for
// statically known names.
func MustText(name string) *Text {
	t, err := NewText(name)
	if err != nil {
		panic(err)
	}
	return t
}

// Text returns the node's string content.
func (t *Text) Text() string { return t.text }

// SetText replaces the node's string content.
func (t *Text) SetText(text string) { t.text = text }

func (t *Text) Visit(fn func(Entity) bool) {
	fn(t)
}

// Composite is an inner node holding an ordered list of children.
type Composite struct {
	node
	children []Entity
}

// NewComposite creates a composite node, failing with an
// *InvalidNameError when name does not match the name pattern.
func NewComposite(name string) (*Composite, error) {
	if err := checkName(name); err != nil {
		return nil, err
	}
	return &Composite{node: node{name: name}}, nil
}

// MustComposite is NewComposite panicking on an invalid name.
func MustComposite(name string) *Composite {
	c, err := NewComposite(name)
	if err != nil {
		panic(err)
	}
	return c
}

// Children returns the child entities in insertion order.
func (c *Composite) Children() []Entity {
	res := make([]Entity, len(c.children))
	copy(res, c.children)
	return res
}

// Len returns the number of children.
func (c *Composite) Len() int { return len(c.children) }

// AddChild appends child to the children list and sets its parent,
// returning true. It returns false without mutating anything when
// child already has a parent, when child is c itself, or when child is
// c's own current parent. The parent guard is shallow and does not
// scan the full ancestor chain.
func (c *Composite) AddChild(child Entity) bool {
	if child == nil || child.Parent() != nil {
		return false
	}
	if cc, ok := child.(*Composite); ok {
		if cc == c {
			return false
		}
		if c.parent != nil && cc == c.parent {
			return false
		}
	}
	c.children = append(c.children, child)
	child.setParent(c)
	return true
}

// RemoveChild removes child from the children list and clears its
// parent, returning true; it returns false when child is not present.
func (c *Composite) RemoveChild(child Entity) bool {
	for i := range c.children {
		if c.children[i] == child {
			c.children = append(c.children[:i], c.children[i+1:]...)
			child.setParent(nil)
			return true
		}
	}
	return false
}

func (c *Composite) Visit(fn func(Entity) bool) {
	if !fn(c) {
		return
	}
	for _, child := range c.children {
		child.Visit(fn)
	}
}
