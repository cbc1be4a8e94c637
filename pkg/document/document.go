// Package document provides the HTML document model: a head section
// (title, metadata, stylesheets) plus an ordered body element sequence,
// assembled through a Builder and rendered as a complete HTML5 page.
package document

import (
	"bytes"
	"fmt"
	"io"

	"github.com/htmlkit-dev/htmlkit/pkg/element"
	"github.com/htmlkit-dev/htmlkit/pkg/render"
)

// Meta is a single meta tag. A Name of "charset" renders as
// <meta charset="..."> instead of a name/content pair.
type Meta struct {
	Name    string
	Content string
}

// Document is an immutable HTML document. Build one with a Builder;
// once built it can be rendered concurrently any number of times with
// identical output.
type Document struct {
	title        string
	lang         string
	metas        []Meta
	stylesheets  []string
	scripts      []string
	headElements []element.Element
	bodyAttrs    []element.Attr
	body         []element.Element
}

// Title returns the document title, empty if unset.
func (d *Document) Title() string {
	return d.title
}

// Body returns the body element sequence in insertion order.
func (d *Document) Body() []element.Element {
	return d.body
}

// Render renders the document with the default configuration.
func (d *Document) Render() string {
	var buf bytes.Buffer
	// The buffer cannot fail and the variant set is closed, so the
	// error path is unreachable here.
	_ = d.RenderTo(&buf, nil)
	return buf.String()
}

// RenderTo writes the complete HTML5 document to w. A nil renderer
// uses the default configuration. Output is minified: no whitespace is
// added between structural tags.
func (d *Document) RenderTo(w io.Writer, r *render.Renderer) error {
	if r == nil {
		r = render.New(render.Config{})
	}
	cfg := r.Config()

	if _, err := io.WriteString(w, "<!DOCTYPE html>"); err != nil {
		return err
	}

	if d.lang != "" {
		if _, err := fmt.Fprintf(w, `<html lang="%s">`, cfg.AttrEscape(d.lang)); err != nil {
			return err
		}
	} else {
		if _, err := io.WriteString(w, "<html>"); err != nil {
			return err
		}
	}

	if err := d.renderHead(w, r, cfg); err != nil {
		return err
	}

	if err := d.renderBody(w, r, cfg); err != nil {
		return err
	}

	_, err := io.WriteString(w, "</html>")
	return err
}

// renderHead renders the head section: meta tags, optional title,
// stylesheet links, then any extra head elements.
func (d *Document) renderHead(w io.Writer, r *render.Renderer, cfg render.Config) error {
	if _, err := io.WriteString(w, "<head>"); err != nil {
		return err
	}

	for _, m := range d.metas {
		if m.Name == "charset" {
			if _, err := fmt.Fprintf(w, `<meta charset="%s">`, cfg.AttrEscape(m.Content)); err != nil {
				return err
			}
			continue
		}
		if _, err := fmt.Fprintf(w, `<meta name="%s" content="%s">`,
			cfg.AttrEscape(m.Name), cfg.AttrEscape(m.Content)); err != nil {
			return err
		}
	}

	if d.title != "" {
		if _, err := fmt.Fprintf(w, "<title>%s</title>", cfg.TextEscape(d.title)); err != nil {
			return err
		}
	}

	for _, href := range d.stylesheets {
		if _, err := fmt.Fprintf(w, `<link rel="stylesheet" href="%s">`, cfg.AttrEscape(href)); err != nil {
			return err
		}
	}

	for _, el := range d.headElements {
		if err := r.RenderToWriter(w, el); err != nil {
			return err
		}
	}

	_, err := io.WriteString(w, "</head>")
	return err
}

// renderBody renders the body tag with its attributes, the body
// elements in sequence order, and script tags last.
func (d *Document) renderBody(w io.Writer, r *render.Renderer, cfg render.Config) error {
	if _, err := io.WriteString(w, "<body"); err != nil {
		return err
	}
	for _, a := range d.bodyAttrs {
		if _, err := fmt.Fprintf(w, ` %s="%s"`, a.Key, cfg.AttrEscape(a.Value)); err != nil {
			return err
		}
	}
	if _, err := io.WriteString(w, ">"); err != nil {
		return err
	}

	for _, el := range d.body {
		if err := r.RenderToWriter(w, el); err != nil {
			return err
		}
	}

	for _, src := range d.scripts {
		if _, err := fmt.Fprintf(w, `<script src="%s"></script>`, cfg.AttrEscape(src)); err != nil {
			return err
		}
	}

	_, err := io.WriteString(w, "</body>")
	return err
}
