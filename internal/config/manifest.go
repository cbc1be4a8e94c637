// Package config loads YAML page manifests and turns them into
// document trees.
//
// A manifest describes one page: head metadata plus a recursive list of
// body nodes. Example:
//
//	title: Home
//	lang: en
//	charset: UTF-8
//	stylesheets:
//	  - /static/site.css
//	body:
//	  - tag: div
//	    id: main
//	    class: [content]
//	    children:
//	      - text: "Hello World!"
//	      - image: cat.jpg
//	        alt: Cute Cat
package config

import (
	"os"
	"sort"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/htmlkit-dev/htmlkit/pkg/document"
	"github.com/htmlkit-dev/htmlkit/pkg/element"
)

// Manifest is a YAML page description.
type Manifest struct {
	Title       string            `yaml:"title"`
	Lang        string            `yaml:"lang"`
	Charset     string            `yaml:"charset"`
	Meta        []MetaEntry       `yaml:"meta"`
	Stylesheets []string          `yaml:"stylesheets"`
	Scripts     []string          `yaml:"scripts"`
	BodyAttrs   map[string]string `yaml:"body_attrs"`
	Body        []Node            `yaml:"body"`
}

// MetaEntry is a name/content meta tag.
type MetaEntry struct {
	Name    string `yaml:"name"`
	Content string `yaml:"content"`
}

// Node is one body node. Exactly one of Tag, Text, Image or Raw selects
// the variant; the remaining fields configure it.
type Node struct {
	// Container fields
	Tag      string            `yaml:"tag,omitempty"`
	ID       string            `yaml:"id,omitempty"`
	Class    []string          `yaml:"class,omitempty"`
	Attrs    map[string]string `yaml:"attrs,omitempty"`
	Children []Node            `yaml:"children,omitempty"`

	// Text node payload, or inline text when Tag is set.
	Text string `yaml:"text,omitempty"`

	// Image fields
	Image string `yaml:"image,omitempty"`
	Alt   string `yaml:"alt,omitempty"`

	// Raw HTML payload, emitted unescaped. Trusted input only.
	Raw string `yaml:"raw,omitempty"`
}

// Load reads and parses a manifest file.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read manifest %s", path)
	}
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, errors.Wrapf(err, "parse manifest %s", path)
	}
	return &m, nil
}

// Document builds the document tree described by the manifest.
func (m *Manifest) Document() (*document.Document, error) {
	b := document.NewBuilder()

	if m.Title != "" {
		b.Title(m.Title)
	}
	if m.Lang != "" {
		b.Lang(m.Lang)
	}
	if m.Charset != "" {
		b.AddMeta("charset", m.Charset)
	}
	for _, meta := range m.Meta {
		b.AddMeta(meta.Name, meta.Content)
	}
	for _, href := range m.Stylesheets {
		b.AddStylesheet(href)
	}
	for _, src := range m.Scripts {
		b.AddScript(src)
	}
	for _, name := range sortedKeys(m.BodyAttrs) {
		b.AddBodyAttr(name, m.BodyAttrs[name])
	}

	for i, n := range m.Body {
		el, err := n.element()
		if err != nil {
			return nil, errors.Wrapf(err, "body node %d", i)
		}
		b.AddBodyElement(el)
	}

	return b.Build(), nil
}

// element converts a manifest node to an element tree.
func (n *Node) element() (element.Element, error) {
	switch {
	case n.Tag != "":
		c := element.NewContainer(n.Tag)
		if n.ID != "" {
			c.WithID(n.ID)
		}
		for _, class := range n.Class {
			c.WithClass(class)
		}
		// Sorted so map-typed manifest attributes render deterministically.
		for _, key := range sortedKeys(n.Attrs) {
			c.WithAttr(key, n.Attrs[key])
		}
		if n.Text != "" {
			c.WithText(n.Text)
		}
		for i := range n.Children {
			child, err := n.Children[i].element()
			if err != nil {
				return nil, errors.Wrapf(err, "child %d of <%s>", i, n.Tag)
			}
			c.WithChild(child)
		}
		return c, nil

	case n.Image != "":
		return element.NewImage(n.Image).WithAlt(n.Alt), nil

	case n.Raw != "":
		return element.NewRaw(n.Raw), nil

	case n.Text != "":
		return element.NewText(n.Text), nil

	default:
		return nil, errors.New("node needs one of tag, text, image or raw")
	}
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
