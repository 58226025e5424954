package routes

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/recera/haven/pkg/markup"
	"github.com/recera/haven/pkg/site"
	"github.com/recera/haven/pkg/styling"
)

// ContentScriptID is the id of the script element carrying the page content
const ContentScriptID = "site-content"

// BehaviourStyleID is the id of the inline stylesheet for toggled state classes
const BehaviourStyleID = "haven-behaviours"

// PageOptions control the document shell around the page body
type PageOptions struct {
	WasmName   string // compiled client, default "haven.wasm"
	Stylesheet string // default "styles.css"
	// ReloadPath, when set, adds the dev server's live-reload socket
	ReloadPath string
}

func (o PageOptions) withDefaults() PageOptions {
	if o.WasmName == "" {
		o.WasmName = "haven.wasm"
	}
	if o.Stylesheet == "" {
		o.Stylesheet = "styles.css"
	}
	return o
}

var navLinks = []struct{ href, label string }{
	{"#features", "Features"},
	{"#listings", "Listings"},
	{"#discover", "Discover"},
	{"#tour", "Tour"},
	{"#map", "Map"},
}

func navItems() []*markup.Node {
	items := make([]*markup.Node, len(navLinks))
	for i, l := range navLinks {
		items[i] = markup.A().Href(l.href).Text(l.label).Build()
	}
	return items
}

func title(s string) string {
	if s == "" {
		return s
	}
	r, n := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[n:]
}

func pct(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + "%"
}

// IndexPage is the full home page document
func IndexPage(c site.Content, opts PageOptions) (*markup.Node, error) {
	opts = opts.withDefaults()
	data, err := c.YAML()
	if err != nil {
		return nil, err
	}
	if strings.Contains(strings.ToLower(string(data)), "</script") {
		return nil, fmt.Errorf("content contains a closing script tag")
	}

	head := markup.E("head").Children(
		markup.E("meta").Attr("charset", "utf-8").Build(),
		markup.E("meta").Attr("name", "viewport").Attr("content", "width=device-width, initial-scale=1").Build(),
		markup.E("title").Text(c.Title).Build(),
		markup.E("style").ID(BehaviourStyleID).Text(styling.Behaviours().String()).Build(),
		markup.E("link").Attr("rel", "stylesheet").Href(opts.Stylesheet).Build(),
	).Build()

	body := markup.E("body").Children(
		siteHeader(c),
		markup.Main().Children(
			hero(c),
			features(c),
			listings(c),
			discover(c),
			mapSection(c),
			tour(c),
			stats(c),
		).Build(),
		markup.Footer().Class("site-footer").Children(
			markup.P().Text("© ").Children(markup.Span().ID("year").Build()).Text(" "+c.Title).Build(),
		).Build(),
		markup.Script().Type("application/yaml").ID(ContentScriptID).Text(string(data)).Build(),
		markup.Script().Src("wasm_exec.js").Build(),
		markup.Script().Text(bootScript(opts.WasmName)).Build(),
		reloadScript(opts.ReloadPath),
	).Build()

	return markup.E("html").Attr("lang", "en").Children(head, body).Build(), nil
}

// RenderIndex writes the home page document to w
func RenderIndex(w io.Writer, c site.Content, opts PageOptions) error {
	page, err := IndexPage(c, opts)
	if err != nil {
		return fmt.Errorf("build index: %w", err)
	}
	if err := markup.NewRenderer(w).Document(page); err != nil {
		return fmt.Errorf("render index: %w", err)
	}
	return nil
}

func bootScript(wasm string) string {
	return `const go = new Go();
WebAssembly.instantiateStreaming(fetch(` + strconv.Quote(wasm) + `), go.importObject).then((r) => go.run(r.instance));`
}

func reloadScript(path string) *markup.Node {
	if path == "" {
		return nil
	}
	return markup.Script().Text(`(() => {
  const ws = new WebSocket((location.protocol === "https:" ? "wss://" : "ws://") + location.host + ` + strconv.Quote(path) + `);
  ws.onmessage = (ev) => {
    if (ev.data === "RELOAD") location.reload();
    else if (ev.data.startsWith("ERROR")) console.error("[haven]", ev.data.slice(6));
  };
})();`).Build()
}

func siteHeader(c site.Content) *markup.Node {
	return markup.NewFragment(
		markup.Header().ID("site-header").Class("site-header").Children(
			markup.A().Class("brand").Href("#").Text(c.Title).Build(),
			markup.Nav().Class("main-nav").Children(navItems()...).Build(),
			markup.Button().ID("menu-toggle").Class("menu-toggle").Label("Open menu").Text("☰").Build(),
		).Build(),
		markup.Aside().ID("mobile-drawer").Class("mobile-drawer").Children(
			markup.Button().ID("drawer-close").Class("drawer-close").Label("Close menu").Text("×").Build(),
			markup.Nav().Children(navItems()...).Build(),
		).Build(),
		markup.Div().ID("drawer-overlay").Class("drawer-overlay").Build(),
	)
}

func hero(c site.Content) *markup.Node {
	layers := []struct {
		class string
		depth string
	}{
		{"ground", "0.02"},
		{"walls", "0.05"},
		{"roof", "0.1"},
		{"windows", "0.14"},
	}
	house := markup.Div().ID("house3d").Class("house3d")
	for _, l := range layers {
		house.Children(markup.Div().Class("layer", l.class).Data("depth", l.depth).Build())
	}

	return markup.Section().ID("hero").Class("hero").Children(
		markup.Div().Class("sky").Build(),
		markup.Div().Class("moon").Build(),
		markup.Div().ID("scene").Class("scene").Children(house.Build()).Build(),
		markup.Div().Class("hero-copy").Children(
			markup.H1().Text(c.Title).Build(),
			markup.P().Text(c.Tagline).Build(),
		).Build(),
	).Build()
}

func features(c site.Content) *markup.Node {
	grid := markup.Div().Class("feature-grid")
	for _, key := range c.FeatureKeys() {
		f := c.Features[key]
		grid.Children(markup.Article().Class("feature-card", "reveal").Data("feature", key).TabIndex(0).Children(
			markup.Span().Class("feature-icon").Text(f.Icon).Build(),
			markup.H3().Text(f.Title).Build(),
		).Build())
	}

	return markup.NewFragment(
		markup.Section().ID("features").Class("features").Children(
			markup.H2().Text("Features").Build(),
			grid.Build(),
		).Build(),
		markup.Div().ID("feature-modal-overlay").Class("modal-overlay").Children(
			markup.Div().Class("modal").Role("dialog").Children(
				markup.Button().Class("modal-close").Label("Close").Text("×").Build(),
				markup.Span().ID("modal-icon").Class("modal-icon").Build(),
				markup.H3().ID("modal-title").Build(),
				markup.P().ID("modal-content-text").Build(),
			).Build(),
		).Build(),
	)
}

func listings(c site.Content) *markup.Node {
	tabs := markup.Div().Class("tabs").Role("tablist")
	section := markup.Section().ID("listings").Class("listings").Children(markup.H2().Text("Listings").Build())

	var panels []*markup.Node
	for i, car := range c.Showcase {
		panelID := "panel-" + car.Key
		tabs.Children(markup.Button().Class("tab-btn").ClassIf(i == 0, "active").
			Role("tab").Data("target", panelID).Text(car.Title).Build())

		strip := markup.Div().ID(car.ContainerID()).Class("carousel").TabIndex(0)
		for _, card := range car.Cards {
			tile := markup.Article().Class("card")
			if card.Image != "" {
				tile.Children(markup.Img().Src(card.Image).Alt(card.Title).Loading("lazy").Build())
			}
			tile.Children(markup.H3().Text(card.Title).Build())
			if card.Subtitle != "" {
				tile.Children(markup.P().Text(card.Subtitle).Build())
			}
			strip.Children(tile.Build())
		}

		panels = append(panels, markup.Div().ID(panelID).Class("tab-panel").ClassIf(i == 0, "active").
			Role("tabpanel").Hidden(i != 0).Children(
			markup.Button().Class("carousel-control", "left").Data("target", car.Key).Label("Previous").Text("‹").Build(),
			strip.Build(),
			markup.Button().Class("carousel-control", "right").Data("target", car.Key).Label("Next").Text("›").Build(),
		).Build())
	}

	return section.Children(tabs.Build()).Children(panels...).Build()
}

func discover(c site.Content) *markup.Node {
	modes := markup.Div().Class("modes")
	for _, m := range c.Modes {
		modes.Children(markup.Button().Class("mode-btn").Data("mode", m).Text(title(m)).Build())
	}

	results := markup.Div().ID("property-results").Class("property-results")
	for _, p := range c.Properties {
		card := markup.Article().Class("property-card").Data("category", p.Category).Data("id", p.ID).TabIndex(0)
		if p.Image != "" {
			card.Children(markup.Img().Src(p.Image).Alt(p.Title).Loading("lazy").Build())
		}
		card.Children(
			markup.H3().Text(p.Title).Build(),
			markup.P().Class("location").Text(p.Location).Build(),
			markup.P().Class("price").Text(p.Price).Build(),
		)
		results.Children(card.Build())
	}

	return markup.Section().ID("discover").Class("discover").Children(
		markup.H2().Text("Discover").Build(),
		modes.Build(),
		results.Build(),
	).Build()
}

func mapSection(c site.Content) *markup.Node {
	canvas := markup.Div().ID("map-canvas").Class("map-canvas")
	for _, p := range c.Properties {
		if p.Pin == nil {
			continue
		}
		canvas.Children(markup.Span().Class("map-pin").Data("id", p.ID).Label(p.Title).
			Style("left: " + pct(p.Pin.X) + "; top: " + pct(p.Pin.Y) + ";").Build())
	}

	return markup.Section().ID("map").Class("map").Children(
		markup.H2().Text("Map").Build(),
		canvas.Build(),
		markup.Div().ID("map-preview").Class("map-preview").Children(
			markup.P().Text("Tap the canvas to close.").Build(),
		).Build(),
	).Build()
}

func tour(c site.Content) *markup.Node {
	keys := c.RoomKeys()
	tabs := markup.Div().Class("vr-tabs")
	for _, key := range keys {
		label := c.Rooms[key].Label
		if label == "" {
			label = key
		}
		tabs.Children(markup.Button().Class("vr-tab").ClassIf(key == keys[0], "active").Data("room", key).Text(label).Build())
	}

	viewer := markup.Div().ID("vr-viewer").Class("vr-viewer").Children(
		markup.Img().ID("vr-image").Class("vr-image").Alt("").Attr("draggable", "false").Build(),
	)
	for _, h := range c.Hotspots {
		viewer.Children(markup.Span().Class("vr-hotspot").Data("room", h.Room).Label(h.Room).
			Style("left: " + pct(h.X) + "; top: " + pct(h.Y) + ";").Build())
	}
	viewer.Children(
		markup.Span().ID("vr-room-label").Class("vr-room-label").Build(),
		markup.Button().ID("vr-fullscreen").Class("vr-fullscreen").Text("Fullscreen").Build(),
	)

	return markup.Section().ID("tour").Class("tour").Children(
		markup.H2().Text("Virtual Tour").Build(),
		tabs.Build(),
		viewer.Build(),
	).Build()
}

func stats(c site.Content) *markup.Node {
	row := markup.Div().Class("stats")
	for _, s := range c.Stats {
		row.Children(markup.Div().Class("stat", "reveal").Children(
			markup.Span().Class("stat-number").Data("target", strconv.Itoa(s.Target)).Text("0").Build(),
			markup.Span().Class("stat-label").Text(s.Label).Build(),
		).Build())
	}
	return markup.Section().ID("stats").Class("stats-section").Children(row.Build()).Build()
}
