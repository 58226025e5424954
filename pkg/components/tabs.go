package components

import (
	"github.com/recera/haven/pkg/reactive"
	"github.com/recera/haven/pkg/view"
)

// Tabs keeps exactly one tab button and its panel active. Panels that do not
// match are hidden with the hidden attribute as well as the class, so
// assistive technology skips them too.
type Tabs struct {
	buttons []view.Element
	panels  []view.Element
	class   string

	// Active is the id of the visible panel
	Active *reactive.State[string]
}

// MountTabs binds every button matching buttonSel (default ".tab-btn") to the
// panels matching panelSel (default ".tab-panel") via the button's data-target.
func MountTabs(page view.Page, buttonSel, panelSel string) (*Tabs, error) {
	if buttonSel == "" {
		buttonSel = ".tab-btn"
	}
	if panelSel == "" {
		panelSel = ".tab-panel"
	}
	t := &Tabs{
		buttons: page.QueryAll(buttonSel),
		panels:  page.QueryAll(panelSel),
		class:   "active",
		Active:  reactive.NewState("tabs", ""),
	}
	if len(t.buttons) == 0 {
		return nil, Missing(buttonSel)
	}
	t.Active.Watch(func(_, target string) { t.render(target) })

	for _, btn := range t.buttons {
		btn := btn
		btn.On("click", func(*view.Event) { t.Activate(btn) })
	}

	page.OnDocument("keydown", func(ev *view.Event) {
		i := view.IndexOf(t.buttons, page.ActiveElement())
		if i < 0 {
			return
		}
		switch ev.Key {
		case "ArrowRight":
			t.move(i, 1)
		case "ArrowLeft":
			t.move(i, -1)
		}
	})
	return t, nil
}

// Activate makes btn the active tab and reveals its panel
func (t *Tabs) Activate(btn view.Element) {
	for _, b := range t.buttons {
		if b.Same(btn) {
			b.AddClass(t.class)
		} else {
			b.RemoveClass(t.class)
		}
	}
	t.Active.Set(btn.Data("target"))
}

// move shifts focus circularly by step and activates the new tab
func (t *Tabs) move(from, step int) {
	n := len(t.buttons)
	next := t.buttons[((from+step)%n+n)%n]
	next.Focus()
	next.Click()
}

func (t *Tabs) render(target string) {
	for _, panel := range t.panels {
		if panel.ID() == target {
			panel.AddClass(t.class)
			panel.RemoveAttr("hidden")
		} else {
			panel.RemoveClass(t.class)
			panel.SetAttr("hidden", "")
		}
	}
}
