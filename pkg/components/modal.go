package components

import (
	"github.com/recera/haven/pkg/reactive"
	"github.com/recera/haven/pkg/view"
)

// FeatureDetail is the content shown for one feature card
type FeatureDetail struct {
	Icon    string `yaml:"icon" koanf:"icon"`
	Title   string `yaml:"title" koanf:"title"`
	Content string `yaml:"content" koanf:"content"`
}

// ModalOptions names the markup the modal binds to
type ModalOptions struct {
	OverlayID string // default "feature-modal-overlay"
	TitleID   string // default "modal-title"
	IconID    string // default "modal-icon"
	BodyID    string // default "modal-content-text"
	Cards     string // default ".feature-card"
	Close     string // default ".modal-close"
	OpenClass string // default "open"
}

func (o *ModalOptions) withDefaults() ModalOptions {
	d := ModalOptions{
		OverlayID: "feature-modal-overlay",
		TitleID:   "modal-title",
		IconID:    "modal-icon",
		BodyID:    "modal-content-text",
		Cards:     ".feature-card",
		Close:     ".modal-close",
		OpenClass: "open",
	}
	if o == nil {
		return d
	}
	if o.OverlayID != "" {
		d.OverlayID = o.OverlayID
	}
	if o.TitleID != "" {
		d.TitleID = o.TitleID
	}
	if o.IconID != "" {
		d.IconID = o.IconID
	}
	if o.BodyID != "" {
		d.BodyID = o.BodyID
	}
	if o.Cards != "" {
		d.Cards = o.Cards
	}
	if o.Close != "" {
		d.Close = o.Close
	}
	if o.OpenClass != "" {
		d.OpenClass = o.OpenClass
	}
	return d
}

// Modal shows feature details in an overlay. The background scroll lock is a
// single flag on the body: nested opens are not supported.
type Modal struct {
	opts    ModalOptions
	page    view.Page
	table   map[string]FeatureDetail
	overlay view.Element
	title   view.Element
	icon    view.Element
	body    view.Element

	// Current is the key of the open feature, "" when closed
	Current *reactive.State[string]
}

// MountModal binds feature cards, the overlay backdrop and the close button
func MountModal(page view.Page, table map[string]FeatureDetail, opts *ModalOptions) (*Modal, error) {
	o := opts.withDefaults()
	els, err := Require(page, o.OverlayID, o.TitleID, o.IconID, o.BodyID)
	if err != nil {
		return nil, err
	}

	m := &Modal{
		opts:    o,
		page:    page,
		table:   table,
		overlay: els[0],
		title:   els[1],
		icon:    els[2],
		body:    els[3],
		Current: reactive.NewState("modal", ""),
	}

	m.overlay.On("click", func(ev *view.Event) {
		// only the backdrop itself, not the panel inside it
		if ev.Target != nil && ev.Target.Same(m.overlay) {
			m.Close()
		}
	})
	for _, btn := range m.overlay.QueryAll(o.Close) {
		btn.On("click", func(*view.Event) { m.Close() })
	}
	for _, card := range page.QueryAll(o.Cards) {
		card := card
		card.On("click", func(*view.Event) { m.Open(card.Data("feature")) })
	}
	return m, nil
}

// Open shows the feature with the given key. Unknown keys are ignored.
func (m *Modal) Open(key string) bool {
	detail, ok := m.table[key]
	if !ok {
		if debugLog != nil {
			debugLog("[Modal] unknown feature", key)
		}
		return false
	}

	m.title.SetText(detail.Title)
	m.icon.SetText(detail.Icon)
	m.body.SetText(detail.Content)
	m.overlay.AddClass(m.opts.OpenClass)
	if body := m.page.Body(); body != nil {
		body.SetStyle("overflow", "hidden")
	}
	m.Current.Set(key)
	return true
}

// Close hides the overlay and restores background scrolling
func (m *Modal) Close() {
	m.overlay.RemoveClass(m.opts.OpenClass)
	if body := m.page.Body(); body != nil {
		body.SetStyle("overflow", "")
	}
	m.Current.Set("")
}

// IsOpen reports whether a feature is being shown
func (m *Modal) IsOpen() bool {
	return m.Current.Get() != ""
}
