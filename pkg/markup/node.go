// Package markup builds static HTML documents from a small node tree. It is
// what the build uses to render the site's pages; there is no diffing and no
// client-side patching.
package markup

// Kind represents the type of node
type Kind uint8

const (
	// KindElement represents an element node
	KindElement Kind = iota
	// KindText represents escaped text
	KindText
	// KindFragment groups children without a parent element
	KindFragment
	// KindRaw is text written verbatim
	KindRaw
)

// Props represents the attributes of an element. Values are rendered with
// %v; booleans toggle boolean attributes.
type Props map[string]any

// Node is one node of a document tree
type Node struct {
	Kind  Kind
	Tag   string
	Props Props
	Kids  []Node
	Text  string
}

func collect(children []*Node) []Node {
	kids := make([]Node, 0, len(children))
	for _, child := range children {
		if child != nil {
			kids = append(kids, *child)
		}
	}
	return kids
}

// NewElement creates an element node. Nil children are skipped.
func NewElement(tag string, props Props, children ...*Node) *Node {
	return &Node{
		Kind:  KindElement,
		Tag:   tag,
		Props: props,
		Kids:  collect(children),
	}
}

// NewText creates a text node
func NewText(text string) *Node {
	return &Node{Kind: KindText, Text: text}
}

// NewRaw creates a node whose text is written without escaping
func NewRaw(text string) *Node {
	return &Node{Kind: KindRaw, Text: text}
}

// NewFragment creates a fragment node
func NewFragment(children ...*Node) *Node {
	return &Node{Kind: KindFragment, Kids: collect(children)}
}

// IsElement returns true if this is an element node
func (n Node) IsElement() bool {
	return n.Kind == KindElement
}

// Attr returns the attribute value as rendered, or "" if unset
func (n Node) Attr(name string) string {
	v, ok := n.Props[name]
	if !ok {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return formatValue(v)
}

// Find returns the first element in n's subtree, n included, whose id
// matches
func (n *Node) Find(id string) *Node {
	if n.Kind == KindElement && n.Attr("id") == id {
		return n
	}
	for i := range n.Kids {
		if found := n.Kids[i].Find(id); found != nil {
			return found
		}
	}
	return nil
}
