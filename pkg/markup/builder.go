package markup

import (
	"strconv"
	"strings"
)

// ElementBuilder assembles an element node fluently
type ElementBuilder struct {
	tag     string
	props   Props
	classes []string
	kids    []*Node
}

// E starts an element with the given tag
func E(tag string) *ElementBuilder {
	return &ElementBuilder{tag: tag, props: Props{}}
}

func Div() *ElementBuilder     { return E("div") }
func Span() *ElementBuilder    { return E("span") }
func P() *ElementBuilder       { return E("p") }
func A() *ElementBuilder       { return E("a") }
func H1() *ElementBuilder      { return E("h1") }
func H2() *ElementBuilder      { return E("h2") }
func H3() *ElementBuilder      { return E("h3") }
func Img() *ElementBuilder     { return E("img") }
func Nav() *ElementBuilder     { return E("nav") }
func Main() *ElementBuilder    { return E("main") }
func Aside() *ElementBuilder   { return E("aside") }
func Header() *ElementBuilder  { return E("header") }
func Footer() *ElementBuilder  { return E("footer") }
func Section() *ElementBuilder { return E("section") }
func Article() *ElementBuilder { return E("article") }
func Button() *ElementBuilder  { return E("button").Type("button") }
func Script() *ElementBuilder  { return E("script") }

// ID sets the id attribute
func (b *ElementBuilder) ID(id string) *ElementBuilder {
	b.props["id"] = id
	return b
}

// Class adds classes; repeated calls accumulate
func (b *ElementBuilder) Class(classes ...string) *ElementBuilder {
	for _, c := range classes {
		if c != "" {
			b.classes = append(b.classes, c)
		}
	}
	return b
}

// ClassIf adds class when cond holds
func (b *ElementBuilder) ClassIf(cond bool, class string) *ElementBuilder {
	if cond {
		b.classes = append(b.classes, class)
	}
	return b
}

// Attr sets an arbitrary attribute
func (b *ElementBuilder) Attr(name string, value any) *ElementBuilder {
	b.props[name] = value
	return b
}

// Data sets a data-* attribute
func (b *ElementBuilder) Data(key, value string) *ElementBuilder {
	b.props["data-"+key] = value
	return b
}

// Style sets the inline style
func (b *ElementBuilder) Style(style string) *ElementBuilder {
	b.props["style"] = style
	return b
}

// Hidden sets the hidden attribute
func (b *ElementBuilder) Hidden(hidden bool) *ElementBuilder {
	b.props["hidden"] = hidden
	return b
}

// Href sets the href attribute
func (b *ElementBuilder) Href(href string) *ElementBuilder {
	b.props["href"] = href
	return b
}

// Src sets the src attribute
func (b *ElementBuilder) Src(src string) *ElementBuilder {
	b.props["src"] = src
	return b
}

// Alt sets the alt attribute
func (b *ElementBuilder) Alt(alt string) *ElementBuilder {
	b.props["alt"] = alt
	return b
}

// Type sets the type attribute
func (b *ElementBuilder) Type(t string) *ElementBuilder {
	b.props["type"] = t
	return b
}

// Role sets the role attribute
func (b *ElementBuilder) Role(role string) *ElementBuilder {
	b.props["role"] = role
	return b
}

// Label sets aria-label
func (b *ElementBuilder) Label(label string) *ElementBuilder {
	b.props["aria-label"] = label
	return b
}

// TabIndex sets the tabindex attribute
func (b *ElementBuilder) TabIndex(i int) *ElementBuilder {
	b.props["tabindex"] = strconv.Itoa(i)
	return b
}

// Loading sets the loading attribute (lazy, eager)
func (b *ElementBuilder) Loading(loading string) *ElementBuilder {
	b.props["loading"] = loading
	return b
}

// Text appends an escaped text child
func (b *ElementBuilder) Text(text string) *ElementBuilder {
	b.kids = append(b.kids, NewText(text))
	return b
}

// Raw appends a child written verbatim
func (b *ElementBuilder) Raw(text string) *ElementBuilder {
	b.kids = append(b.kids, NewRaw(text))
	return b
}

// Children appends child nodes
func (b *ElementBuilder) Children(kids ...*Node) *ElementBuilder {
	b.kids = append(b.kids, kids...)
	return b
}

// Build returns the finished node
func (b *ElementBuilder) Build() *Node {
	if len(b.classes) > 0 {
		b.props["class"] = strings.Join(b.classes, " ")
	}
	return NewElement(b.tag, b.props, b.kids...)
}
