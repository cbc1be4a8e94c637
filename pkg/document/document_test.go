package document

import (
	"strings"
	"testing"

	"golang.org/x/net/html"

	"github.com/htmlkit-dev/htmlkit/pkg/element"
	"github.com/htmlkit-dev/htmlkit/pkg/render"
)

func TestRenderEmptyDocument(t *testing.T) {
	doc := NewBuilder().Build()

	got := doc.Render()
	want := "<!DOCTYPE html><html><head></head><body></body></html>"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRenderFullDocument(t *testing.T) {
	doc := NewBuilder().
		Title("My Page").
		Lang("en").
		AddMeta("charset", "utf-8").
		AddMeta("viewport", "width=device-width, initial-scale=1").
		AddStylesheet("/assets/app.css").
		AddScript("/assets/app.js").
		AddBodyAttr("data-theme", "dark").
		AddBodyElement(element.NewContainer("main").WithID("root").WithText("Hello")).
		Build()

	got := doc.Render()
	want := `<!DOCTYPE html>` +
		`<html lang="en">` +
		`<head>` +
		`<meta charset="utf-8">` +
		`<meta name="viewport" content="width=device-width, initial-scale=1">` +
		`<title>My Page</title>` +
		`<link rel="stylesheet" href="/assets/app.css">` +
		`</head>` +
		`<body data-theme="dark">` +
		`<main id="root"><span>Hello</span></main>` +
		`<script src="/assets/app.js"></script>` +
		`</body>` +
		`</html>`
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRenderTitleEscaping(t *testing.T) {
	doc := NewBuilder().Title("Tom & Jerry <live>").Build()

	got := doc.Render()
	if !strings.Contains(got, "<title>Tom &amp; Jerry &lt;live&gt;</title>") {
		t.Errorf("title must be escaped, got %q", got)
	}
}

func TestRenderTitleOverwrite(t *testing.T) {
	doc := NewBuilder().Title("first").Title("second").Build()

	got := doc.Render()
	if strings.Contains(got, "first") {
		t.Errorf("overwritten title must not appear, got %q", got)
	}
	if !strings.Contains(got, "<title>second</title>") {
		t.Errorf("last title must win, got %q", got)
	}
}

func TestRenderBodyOrder(t *testing.T) {
	doc := NewBuilder().
		AddBodyElement(element.NewText("one")).
		AddBodyElement(element.NewText("two")).
		AddBodyElement(element.NewText("three")).
		Build()

	got := doc.Render()
	want := "<body><span>one</span><span>two</span><span>three</span></body>"
	if !strings.Contains(got, want) {
		t.Errorf("body elements must render in insertion order, got %q", got)
	}
}

func TestRenderHeadElements(t *testing.T) {
	doc := NewBuilder().
		AddHeadElement(element.NewRaw(`<link rel="icon" href="/favicon.ico">`)).
		Build()

	got := doc.Render()
	if !strings.Contains(got, `<link rel="icon" href="/favicon.ico"></head>`) {
		t.Errorf("head elements must render inside head, got %q", got)
	}
}

func TestRenderBodyAttrOverwrite(t *testing.T) {
	doc := NewBuilder().
		AddBodyAttr("class", "light").
		AddBodyAttr("class", "dark").
		Build()

	got := doc.Render()
	if !strings.Contains(got, `<body class="dark">`) {
		t.Errorf("last body attribute write must win, got %q", got)
	}
}

func TestRenderNilElementsSkipped(t *testing.T) {
	doc := NewBuilder().
		AddBodyElement(nil).
		AddHeadElement(nil).
		Build()

	got := doc.Render()
	want := "<!DOCTYPE html><html><head></head><body></body></html>"
	if got != want {
		t.Errorf("nil elements must be skipped, got %q", got)
	}
}

func TestRenderDeterministic(t *testing.T) {
	doc := NewBuilder().
		Title("page").
		AddMeta("author", "test").
		AddBodyAttr("a", "1").
		AddBodyAttr("b", "2").
		AddBodyElement(element.NewContainer("div").WithClass("x").WithText("body")).
		Build()

	first := doc.Render()
	for i := 0; i < 10; i++ {
		if again := doc.Render(); again != first {
			t.Fatalf("render %d differs: got %q, want %q", i, again, first)
		}
	}
}

func TestRenderToCustomRenderer(t *testing.T) {
	upper := func(s string) string { return strings.ToUpper(s) }
	r := render.New(render.Config{TextEscape: upper})

	doc := NewBuilder().Title("quiet").Build()
	var sb strings.Builder
	if err := doc.RenderTo(&sb, r); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(sb.String(), "<title>QUIET</title>") {
		t.Errorf("custom escaper not applied to title, got %q", sb.String())
	}
}

func TestBuildCopiesDocument(t *testing.T) {
	b := NewBuilder().Title("one")
	first := b.Build()
	b.Title("two")

	if first.Title() != "one" {
		t.Errorf("built document must not observe later builder writes, got %q", first.Title())
	}
}

// TestRenderParsesAsHTML feeds a rendered document with hostile content
// through a real HTML parser and checks that the escaped payload comes
// back as text, never as markup.
func TestRenderParsesAsHTML(t *testing.T) {
	doc := NewBuilder().
		Title("Parse Check").
		AddBodyElement(element.NewContainer("div").
			WithID("main").
			WithText("<script>alert('xss')</script>")).
		Build()

	root, err := html.Parse(strings.NewReader(doc.Render()))
	if err != nil {
		t.Fatalf("rendered document failed to parse: %v", err)
	}

	var scriptTags int
	var mainText string
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "script" {
			scriptTags++
		}
		if n.Type == html.ElementNode && n.Data == "div" {
			for _, a := range n.Attr {
				if a.Key == "id" && a.Val == "main" {
					mainText = textContent(n)
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)

	if scriptTags != 0 {
		t.Errorf("escaped payload produced %d script element(s)", scriptTags)
	}
	if mainText != "<script>alert('xss')</script>" {
		t.Errorf("parser should recover the original text, got %q", mainText)
	}
}

func textContent(n *html.Node) string {
	var sb strings.Builder
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return sb.String()
}
