package components

import (
	"github.com/recera/haven/pkg/reactive"
	"github.com/recera/haven/pkg/view"
)

// DrawerOptions names the markup the mobile drawer binds to
type DrawerOptions struct {
	DrawerID  string // default "mobile-drawer"
	OverlayID string // default "drawer-overlay"
	ToggleID  string // default "menu-toggle"
	CloseID   string // default "drawer-close"
	OpenClass string // default "open"
	ShowClass string // default "show"
}

func (o *DrawerOptions) withDefaults() DrawerOptions {
	d := DrawerOptions{
		DrawerID:  "mobile-drawer",
		OverlayID: "drawer-overlay",
		ToggleID:  "menu-toggle",
		CloseID:   "drawer-close",
		OpenClass: "open",
		ShowClass: "show",
	}
	if o == nil {
		return d
	}
	if o.DrawerID != "" {
		d.DrawerID = o.DrawerID
	}
	if o.OverlayID != "" {
		d.OverlayID = o.OverlayID
	}
	if o.ToggleID != "" {
		d.ToggleID = o.ToggleID
	}
	if o.CloseID != "" {
		d.CloseID = o.CloseID
	}
	if o.OpenClass != "" {
		d.OpenClass = o.OpenClass
	}
	if o.ShowClass != "" {
		d.ShowClass = o.ShowClass
	}
	return d
}

// Drawer is the mobile navigation drawer and its backdrop. There is no focus
// trap and no escape-key handling.
type Drawer struct {
	opts    DrawerOptions
	drawer  view.Element
	overlay view.Element

	Open *reactive.State[bool]
}

// MountDrawer binds the menu toggle, the close button and the backdrop
func MountDrawer(page view.Page, opts *DrawerOptions) (*Drawer, error) {
	o := opts.withDefaults()
	els, err := Require(page, o.DrawerID, o.OverlayID, o.ToggleID)
	if err != nil {
		return nil, err
	}

	d := &Drawer{
		opts:    o,
		drawer:  els[0],
		overlay: els[1],
		Open:    reactive.NewState("drawer", false),
	}
	d.Open.Watch(func(_, open bool) { d.render(open) })

	els[2].On("click", func(*view.Event) { d.Toggle() })
	d.overlay.On("click", func(*view.Event) { d.Open.Set(false) })
	if closeBtn := page.ByID(o.CloseID); closeBtn != nil {
		closeBtn.On("click", func(*view.Event) { d.Open.Set(false) })
	}
	return d, nil
}

// Toggle flips the drawer between open and closed
func (d *Drawer) Toggle() {
	d.Open.Update(func(open bool) bool { return !open })
}

func (d *Drawer) render(open bool) {
	if open {
		show(d.drawer, d.opts.OpenClass)
		show(d.overlay, d.opts.ShowClass)
		return
	}
	hide(d.drawer, d.opts.OpenClass)
	hide(d.overlay, d.opts.ShowClass)
}
