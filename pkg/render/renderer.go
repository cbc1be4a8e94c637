package render

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/htmlkit-dev/htmlkit/pkg/element"
	"github.com/htmlkit-dev/htmlkit/pkg/escape"
)

// Config configures the HTML renderer.
type Config struct {
	// Pretty enables pretty-printed HTML output with indentation.
	// Should only be used in development as it increases output size.
	Pretty bool

	// Indent is the string used for each indentation level in pretty mode.
	// Defaults to two spaces if not specified.
	Indent string

	// TextEscape escapes element text content. Defaults to escape.Text.
	TextEscape escape.Func

	// AttrEscape escapes attribute values. Defaults to escape.Attribute.
	AttrEscape escape.Func
}

// Renderer turns element trees into HTML strings or writes them to a
// writer. A Renderer holds no mutable render state and is safe for
// concurrent use.
type Renderer struct {
	config Config
}

// New creates a Renderer with the given configuration.
func New(config Config) *Renderer {
	if config.Indent == "" {
		config.Indent = "  "
	}
	if config.TextEscape == nil {
		config.TextEscape = escape.Text
	}
	if config.AttrEscape == nil {
		config.AttrEscape = escape.Attribute
	}
	return &Renderer{config: config}
}

// Config returns the effective renderer configuration, with defaults
// applied.
func (r *Renderer) Config() Config {
	return r.config
}

// String renders an element with the default configuration.
func String(el element.Element) string {
	s, _ := New(Config{}).RenderToString(el)
	return s
}

// RenderToString renders an element tree to its complete HTML fragment.
func (r *Renderer) RenderToString(el element.Element) (string, error) {
	var buf bytes.Buffer
	if err := r.RenderToWriter(&buf, el); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// RenderToWriter writes an element tree to the given writer.
func (r *Renderer) RenderToWriter(w io.Writer, el element.Element) error {
	return r.renderNode(w, el, 0)
}

// renderNode dispatches rendering based on the element variant.
func (r *Renderer) renderNode(w io.Writer, el element.Element, depth int) error {
	switch n := el.(type) {
	case nil:
		return nil
	case *element.Text:
		return r.renderText(w, n, depth)
	case *element.Image:
		return r.renderImage(w, n, depth)
	case *element.Container:
		return r.renderContainer(w, n, depth)
	case *element.Raw:
		_, err := io.WriteString(w, n.HTML)
		return err
	default:
		return fmt.Errorf("unknown element type: %T", el)
	}
}

// renderText renders a text node as an escaped inline <span>.
func (r *Renderer) renderText(w io.Writer, n *element.Text, depth int) error {
	if r.config.Pretty && depth > 0 {
		r.writeIndent(w, depth)
	}
	if _, err := io.WriteString(w, "<span>"); err != nil {
		return err
	}
	if _, err := io.WriteString(w, r.config.TextEscape(n.Content)); err != nil {
		return err
	}
	if _, err := io.WriteString(w, "</span>"); err != nil {
		return err
	}
	if r.config.Pretty {
		io.WriteString(w, "\n")
	}
	return nil
}

// renderImage renders a self-closing <img>. src and alt are always
// emitted, then any extra attributes in insertion order.
func (r *Renderer) renderImage(w io.Writer, n *element.Image, depth int) error {
	if r.config.Pretty && depth > 0 {
		r.writeIndent(w, depth)
	}
	if _, err := fmt.Fprintf(w, `<img src="%s" alt="%s"`,
		r.config.AttrEscape(n.Src), r.config.AttrEscape(n.Alt)); err != nil {
		return err
	}
	for _, a := range n.Attrs {
		if _, err := fmt.Fprintf(w, ` %s="%s"`, a.Key, r.config.AttrEscape(a.Value)); err != nil {
			return err
		}
	}
	if _, err := io.WriteString(w, " />"); err != nil {
		return err
	}
	if r.config.Pretty {
		io.WriteString(w, "\n")
	}
	return nil
}

// renderContainer renders an element with its attributes and children.
// Attribute order is canonical: id, class, then the rest in insertion
// order, so output is deterministic without sorting.
func (r *Renderer) renderContainer(w io.Writer, n *element.Container, depth int) error {
	if r.config.Pretty && depth > 0 {
		r.writeIndent(w, depth)
	}

	if _, err := io.WriteString(w, "<"+n.Tag); err != nil {
		return err
	}

	if n.ID != "" {
		if _, err := fmt.Fprintf(w, ` id="%s"`, r.config.AttrEscape(n.ID)); err != nil {
			return err
		}
	}
	if len(n.Classes) > 0 {
		if _, err := fmt.Fprintf(w, ` class="%s"`, r.config.AttrEscape(strings.Join(n.Classes, " "))); err != nil {
			return err
		}
	}
	for _, a := range n.Attrs {
		if _, err := fmt.Fprintf(w, ` %s="%s"`, a.Key, r.config.AttrEscape(a.Value)); err != nil {
			return err
		}
	}

	if _, err := io.WriteString(w, ">"); err != nil {
		return err
	}

	hasBlockChildren := len(n.Children) > 0 && !isInlineElement(n.Tag)
	if r.config.Pretty && hasBlockChildren {
		io.WriteString(w, "\n")
	}

	for _, child := range n.Children {
		if err := r.renderNode(w, child, depth+1); err != nil {
			return err
		}
	}

	if r.config.Pretty && hasBlockChildren {
		r.writeIndent(w, depth)
	}

	if _, err := fmt.Fprintf(w, "</%s>", n.Tag); err != nil {
		return err
	}
	if r.config.Pretty {
		io.WriteString(w, "\n")
	}

	return nil
}

// writeIndent writes indentation for pretty printing.
func (r *Renderer) writeIndent(w io.Writer, depth int) {
	for i := 0; i < depth; i++ {
		io.WriteString(w, r.config.Indent)
	}
}
