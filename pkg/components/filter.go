package components

import (
	"net/url"

	"github.com/recera/haven/pkg/reactive"
	"github.com/recera/haven/pkg/view"
)

// FilterOptions names the markup the property filter binds to
type FilterOptions struct {
	Modes      string // mode buttons, default ".mode-btn" (data-mode)
	Cards      string // property cards, default ".property-card" (data-category, data-id)
	ResultsID  string // default "property-results"
	DetailPage string // default "property.html"
	Default    string // default "buy"
}

func (o *FilterOptions) withDefaults() FilterOptions {
	d := FilterOptions{
		Modes:      ".mode-btn",
		Cards:      ".property-card",
		ResultsID:  "property-results",
		DetailPage: "property.html",
		Default:    "buy",
	}
	if o == nil {
		return d
	}
	if o.Modes != "" {
		d.Modes = o.Modes
	}
	if o.Cards != "" {
		d.Cards = o.Cards
	}
	if o.ResultsID != "" {
		d.ResultsID = o.ResultsID
	}
	if o.DetailPage != "" {
		d.DetailPage = o.DetailPage
	}
	if o.Default != "" {
		d.Default = o.Default
	}
	return d
}

// Filter shows the property cards of one mode (buy, rent, build...) at a time
type Filter struct {
	opts    FilterOptions
	page    view.Page
	modes   []view.Element
	cards   []view.Element
	results view.Element

	Mode *reactive.State[string]
}

// MountFilter binds mode buttons and card clicks, then applies the default mode
func MountFilter(page view.Page, opts *FilterOptions) (*Filter, error) {
	o := opts.withDefaults()
	f := &Filter{
		opts:    o,
		page:    page,
		modes:   page.QueryAll(o.Modes),
		cards:   page.QueryAll(o.Cards),
		results: page.ByID(o.ResultsID),
		Mode:    reactive.NewState("filter", o.Default),
	}
	if len(f.modes) == 0 || len(f.cards) == 0 {
		return nil, Missing(o.Modes, o.Cards)
	}

	f.Mode.Watch(func(_, mode string) { f.render(mode) })
	for _, btn := range f.modes {
		btn := btn
		btn.On("click", func(*view.Event) { f.Select(btn.Data("mode")) })
	}
	for _, card := range f.cards {
		card := card
		card.On("click", func(*view.Event) { page.Navigate(f.DetailURL(card.Data("id"))) })
	}

	f.render(o.Default)
	return f, nil
}

// Select switches to mode and scrolls the results into view
func (f *Filter) Select(mode string) {
	f.Mode.Set(mode)
	if f.results != nil {
		f.results.ScrollIntoView(true)
	}
}

// DetailURL is the detail page address for a property id
func (f *Filter) DetailURL(id string) string {
	return f.opts.DetailPage + "?" + url.Values{"id": {id}}.Encode()
}

// Visible returns the cards currently shown
func (f *Filter) Visible() []view.Element {
	var out []view.Element
	for _, card := range f.cards {
		if card.Style("display") != "none" {
			out = append(out, card)
		}
	}
	return out
}

func (f *Filter) render(mode string) {
	for _, btn := range f.modes {
		if btn.Data("mode") == mode {
			btn.AddClass("active")
		} else {
			btn.RemoveClass("active")
		}
	}
	for _, card := range f.cards {
		if card.Data("category") == mode {
			card.SetStyle("display", "")
			card.AddClass("fade-in")
		} else {
			card.SetStyle("display", "none")
			card.RemoveClass("fade-in")
		}
	}
}
