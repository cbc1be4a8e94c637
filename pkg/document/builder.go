package document

import "github.com/htmlkit-dev/htmlkit/pkg/element"

// Builder assembles a Document. Every method is total and chainable;
// Build finalizes the document and the builder should not be reused
// afterwards.
//
// All head features default to absent: a fresh builder renders exactly
// <!DOCTYPE html><html><head></head><body></body></html>.
type Builder struct {
	doc Document
}

// NewBuilder returns an empty document builder: no title, no language,
// no metadata, empty body.
func NewBuilder() *Builder {
	return &Builder{}
}

// Title sets or overwrites the document title. The title is stored raw
// and escaped as text content at render time. An empty title emits no
// title element.
func (b *Builder) Title(title string) *Builder {
	b.doc.title = title
	return b
}

// Lang sets the lang attribute on the html element.
func (b *Builder) Lang(lang string) *Builder {
	b.doc.lang = lang
	return b
}

// AddMeta appends a meta tag. Use the name "charset" for a charset
// declaration.
func (b *Builder) AddMeta(name, content string) *Builder {
	b.doc.metas = append(b.doc.metas, Meta{Name: name, Content: content})
	return b
}

// AddStylesheet appends a stylesheet link to the head.
func (b *Builder) AddStylesheet(href string) *Builder {
	b.doc.stylesheets = append(b.doc.stylesheets, href)
	return b
}

// AddScript appends a script source, emitted at the end of the body.
func (b *Builder) AddScript(src string) *Builder {
	b.doc.scripts = append(b.doc.scripts, src)
	return b
}

// AddHeadElement appends an element to the head section.
func (b *Builder) AddHeadElement(el element.Element) *Builder {
	if el != nil {
		b.doc.headElements = append(b.doc.headElements, el)
	}
	return b
}

// AddBodyElement appends an element to the body sequence in call order.
func (b *Builder) AddBodyElement(el element.Element) *Builder {
	if el != nil {
		b.doc.body = append(b.doc.body, el)
	}
	return b
}

// AddBodyAttr sets an attribute on the body tag. The last write for a
// given name wins.
func (b *Builder) AddBodyAttr(name, value string) *Builder {
	for i := range b.doc.bodyAttrs {
		if b.doc.bodyAttrs[i].Key == name {
			b.doc.bodyAttrs[i].Value = value
			return b
		}
	}
	b.doc.bodyAttrs = append(b.doc.bodyAttrs, element.Attr{Key: name, Value: value})
	return b
}

// Build finalizes the document.
func (b *Builder) Build() *Document {
	doc := b.doc
	return &doc
}
