// Package styling builds the stylesheet for the state classes the site
// behaviours toggle. Layout and branding stay in the project stylesheet.
package styling

import (
	"fmt"
	"strings"
)

// Rule is one selector with its declarations
type Rule struct {
	Selector string
	Decls    []string
}

// Sheet is an ordered list of rules, optionally grouped under media queries
type Sheet struct {
	rules []Rule
	media []media
}

type media struct {
	query string
	sheet *Sheet
}

// Add appends a rule. Rules with no declarations are dropped.
func (s *Sheet) Add(selector string, decls ...string) *Sheet {
	if len(decls) > 0 {
		s.rules = append(s.rules, Rule{Selector: selector, Decls: decls})
	}
	return s
}

// Media returns a nested sheet rendered inside @media query
func (s *Sheet) Media(query string) *Sheet {
	nested := &Sheet{}
	s.media = append(s.media, media{query: query, sheet: nested})
	return nested
}

// Rules returns the top-level rules in order
func (s *Sheet) Rules() []Rule {
	return s.rules
}

// Has reports whether a top-level rule targets selector
func (s *Sheet) Has(selector string) bool {
	for _, r := range s.rules {
		if r.Selector == selector {
			return true
		}
	}
	return false
}

// String renders the sheet compactly, one rule per line
func (s *Sheet) String() string {
	var b strings.Builder
	s.write(&b, "")
	return b.String()
}

func (s *Sheet) write(b *strings.Builder, indent string) {
	for _, r := range s.rules {
		fmt.Fprintf(b, "%s%s{%s}\n", indent, r.Selector, strings.Join(r.Decls, ";"))
	}
	for _, m := range s.media {
		fmt.Fprintf(b, "%s@media %s{\n", indent, m.query)
		m.sheet.write(b, indent+"  ")
		fmt.Fprintf(b, "%s}\n", indent)
	}
}
