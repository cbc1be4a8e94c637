package element

// Element is any node that can appear in a document tree. The marker
// method keeps the set of implementations closed to this package.
type Element interface {
	element()
}

// Attr represents a single attribute. The value is stored raw and
// escaped at render time.
type Attr struct {
	Key   string
	Value string
}

// setAttr inserts or overwrites value for key, preserving the position
// of the first write so attribute output order stays stable.
func setAttr(attrs []Attr, key, value string) []Attr {
	for i := range attrs {
		if attrs[i].Key == key {
			attrs[i].Value = value
			return attrs
		}
	}
	return append(attrs, Attr{Key: key, Value: value})
}

// Text is a raw string payload rendered as an escaped <span>.
type Text struct {
	Content string
}

// NewText creates a text node.
func NewText(content string) *Text {
	return &Text{Content: content}
}

func (*Text) element() {}

// Raw is HTML emitted verbatim, with no escaping or wrapping.
// Use with caution - can lead to XSS if content is user-provided.
type Raw struct {
	HTML string
}

// NewRaw creates an unescaped HTML node.
func NewRaw(html string) *Raw {
	return &Raw{HTML: html}
}

func (*Raw) element() {}
