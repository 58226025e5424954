package markup

import (
	"errors"
	"strings"
	"testing"
)

func TestRender_TextNodes(t *testing.T) {
	tests := []struct {
		name     string
		node     *Node
		expected string
	}{
		{
			name:     "simple text",
			node:     NewText("Hello World"),
			expected: "Hello World",
		},
		{
			name:     "text with HTML entities",
			node:     NewText("<script>alert('xss')</script>"),
			expected: "&lt;script&gt;alert(&#39;xss&#39;)&lt;/script&gt;",
		},
		{
			name:     "text with quotes",
			node:     NewText(`"Hello" & 'World'`),
			expected: "&#34;Hello&#34; &amp; &#39;World&#39;",
		},
		{
			name:     "raw",
			node:     NewRaw("<b>as is</b>"),
			expected: "<b>as is</b>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := RenderToString(tt.node)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if result != tt.expected {
				t.Errorf("RenderToString() = %q, want %q", result, tt.expected)
			}
		})
	}
}

func TestRender_Elements(t *testing.T) {
	tests := []struct {
		name     string
		node     *Node
		expected string
	}{
		{
			name:     "empty div",
			node:     NewElement("div", nil),
			expected: "<div></div>",
		},
		{
			name:     "div with text",
			node:     NewElement("div", nil, NewText("Hello")),
			expected: "<div>Hello</div>",
		},
		{
			name:     "attributes in name order",
			node:     NewElement("div", Props{"id": "main", "class": "container", "data-depth": 0.2}),
			expected: `<div class="container" data-depth="0.2" id="main"></div>`,
		},
		{
			name: "nested elements",
			node: NewElement("div", nil,
				NewElement("p", nil, NewText("Paragraph 1")),
				nil,
				NewElement("p", nil, NewText("Paragraph 2")),
			),
			expected: "<div><p>Paragraph 1</p><p>Paragraph 2</p></div>",
		},
		{
			name:     "void element",
			node:     NewElement("img", Props{"src": "image.jpg", "alt": "Test Image"}),
			expected: `<img alt="Test Image" src="image.jpg">`,
		},
		{
			name:     "boolean attributes",
			node:     NewElement("div", Props{"hidden": true, "disabled": false, "class": "tab-panel"}),
			expected: `<div class="tab-panel" hidden></div>`,
		},
		{
			name:     "script url",
			node:     NewElement("a", Props{"href": " JavaScript:alert(1)"}),
			expected: `<a href="#"></a>`,
		},
		{
			name:     "script content is not escaped",
			node:     NewElement("script", Props{"type": "application/yaml"}, NewText("title: \"A & B\"")),
			expected: `<script type="application/yaml">title: "A & B"</script>`,
		},
		{
			name:     "fragment",
			node:     NewFragment(NewElement("h1", nil, NewText("Title")), NewElement("p", nil, NewText("Content"))),
			expected: "<h1>Title</h1><p>Content</p>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := RenderToString(tt.node)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if result != tt.expected {
				t.Errorf("RenderToString() = %q, want %q", result, tt.expected)
			}
		})
	}
}

func TestBuilder(t *testing.T) {
	node := Div().
		ID("card").
		Class("card", "").
		Class("reveal").
		ClassIf(false, "active").
		Data("feature", "pool").
		TabIndex(0).
		Children(H3().Text("Pool").Build()).
		Build()

	got, err := RenderToString(node)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := `<div class="card reveal" data-feature="pool" id="card" tabindex="0"><h3>Pool</h3></div>`
	if got != want {
		t.Errorf("RenderToString() = %q, want %q", got, want)
	}

	if btn, _ := RenderToString(Button().Build()); btn != `<button type="button"></button>` {
		t.Errorf("Button() = %q", btn)
	}
}

func TestNode_Find(t *testing.T) {
	tree := Div().Children(
		Section().ID("hero").Children(Div().ID("scene").Build()).Build(),
	).Build()

	if n := tree.Find("scene"); n == nil || n.Tag != "div" {
		t.Errorf("Find(scene) = %v", n)
	}
	if tree.Find("missing") != nil {
		t.Error("Find(missing) should be nil")
	}
}

type failWriter struct{ n int }

func (w *failWriter) Write(p []byte) (int, error) {
	if w.n == 0 {
		return 0, errors.New("disk full")
	}
	w.n--
	return len(p), nil
}

func TestRender_WriteError(t *testing.T) {
	r := NewRenderer(&failWriter{n: 2})
	err := r.Document(NewElement("html", nil, NewElement("body", nil)))
	if err == nil || err.Error() != "disk full" {
		t.Errorf("Document() error = %v, want disk full", err)
	}
}

func TestRenderer_Document(t *testing.T) {
	var buf strings.Builder
	if err := NewRenderer(&buf).Document(NewElement("html", Props{"lang": "en"})); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if buf.String() != "<!DOCTYPE html>\n<html lang=\"en\"></html>" {
		t.Errorf("Document() = %q", buf.String())
	}
}
