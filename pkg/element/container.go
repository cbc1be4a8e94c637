package element

// Container is a generic element with a caller-chosen tag, attributes
// and an ordered child sequence. Tag validity is not checked; an empty
// or malformed tag produces undefined HTML, not an error.
type Container struct {
	Tag      string
	ID       string
	Classes  []string
	Attrs    []Attr
	Children []Element
}

// NewContainer creates a container node with the given tag name.
func NewContainer(tag string) *Container {
	return &Container{Tag: tag}
}

// WithID sets the id attribute.
func (c *Container) WithID(id string) *Container {
	c.ID = id
	return c
}

// WithClass appends a class token unless it is already present, so the
// rendered class attribute never repeats a token.
func (c *Container) WithClass(name string) *Container {
	for _, existing := range c.Classes {
		if existing == name {
			return c
		}
	}
	c.Classes = append(c.Classes, name)
	return c
}

// WithAttr sets an attribute. The last write for a given name wins;
// attributes render after id and class in the order they were first set.
func (c *Container) WithAttr(key, value string) *Container {
	c.Attrs = setAttr(c.Attrs, key, value)
	return c
}

// WithChild appends a child node.
func (c *Container) WithChild(child Element) *Container {
	if child != nil {
		c.Children = append(c.Children, child)
	}
	return c
}

// WithChildren appends multiple children at once, skipping nils.
func (c *Container) WithChildren(children ...Element) *Container {
	for _, child := range children {
		c.WithChild(child)
	}
	return c
}

// WithText appends an implicit text child. Shorthand for
// WithChild(NewText(s)).
func (c *Container) WithText(s string) *Container {
	return c.WithChild(NewText(s))
}

func (*Container) element() {}
