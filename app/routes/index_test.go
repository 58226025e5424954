package routes

import (
	"bytes"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/recera/haven/pkg/scheduler"
	"github.com/recera/haven/pkg/site"
	"github.com/recera/haven/pkg/view/htmlview"
)

func renderDefault(t *testing.T, opts PageOptions) *htmlview.Page {
	t.Helper()
	var buf bytes.Buffer
	if err := RenderIndex(&buf, site.Default(), opts); err != nil {
		t.Fatalf("RenderIndex() error: %v", err)
	}
	page, err := htmlview.Parse(&buf)
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	return page
}

func TestIndex_EveryComponentMounts(t *testing.T) {
	page := renderDefault(t, PageOptions{})
	s := site.Mount(page, scheduler.NewScheduler(scheduler.NewManual()), site.Default(), site.Options{
		Now: time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC),
	})

	for _, r := range s.Inert() {
		t.Errorf("%s inert on the rendered index: %v", r.Component, r.Err)
	}
	if got := len(s.Active()); got != 13 {
		t.Errorf("Active() = %d components, want 13", got)
	}
}

func TestIndex_ContentBlock(t *testing.T) {
	page := renderDefault(t, PageOptions{})

	block := page.ByID(ContentScriptID)
	if block == nil {
		t.Fatal("content script missing")
	}
	if block.Attr("type") != "application/yaml" {
		t.Errorf("content script type = %q", block.Attr("type"))
	}
	got, err := site.Parse([]byte(block.Text()))
	if err != nil {
		t.Fatalf("Parse(content block) error: %v", err)
	}
	if !reflect.DeepEqual(got, site.Default()) {
		t.Errorf("content block does not round-trip:\n%+v", got)
	}
}

func TestIndex_Markup(t *testing.T) {
	page := renderDefault(t, PageOptions{WasmName: "app.wasm"})
	c := site.Default()

	if got := len(page.QueryAll(".feature-card")); got != len(c.Features) {
		t.Errorf("feature cards = %d, want %d", got, len(c.Features))
	}
	if got := len(page.QueryAll(".property-card")); got != len(c.Properties) {
		t.Errorf("property cards = %d, want %d", got, len(c.Properties))
	}
	if got := len(page.QueryAll(".tab-panel[hidden]")); got != len(c.Showcase)-1 {
		t.Errorf("hidden panels = %d, want %d", got, len(c.Showcase)-1)
	}
	if got := len(page.QueryAll(".tab-btn.active")); got != 1 {
		t.Errorf("active tabs = %d, want 1", got)
	}
	for _, car := range c.Showcase {
		if page.ByID(car.ContainerID()) == nil {
			t.Errorf("carousel %s has no container", car.Key)
		}
	}
	if got := page.Query(`.stat-number[data-target="2500"]`); got == nil {
		t.Error("stat with target 2500 missing")
	}

	out, err := page.HTML()
	if err != nil {
		t.Fatalf("HTML() error: %v", err)
	}
	if !strings.Contains(out, `fetch("app.wasm")`) {
		t.Error("boot script does not load the configured wasm")
	}
	if strings.Contains(out, "WebSocket") {
		t.Error("reload script rendered without a reload path")
	}
}

func TestIndex_ReloadScript(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderIndex(&buf, site.Default(), PageOptions{ReloadPath: "/haven/reload"}); err != nil {
		t.Fatalf("RenderIndex() error: %v", err)
	}
	if !strings.Contains(buf.String(), `"/haven/reload"`) {
		t.Error("reload socket path missing")
	}
	if !strings.HasPrefix(buf.String(), "<!DOCTYPE html>") {
		t.Error("document should start with a doctype")
	}
}

func TestIndex_RejectsScriptBreakout(t *testing.T) {
	c := site.Default()
	c.Tagline = "</SCRIPT><script>alert(1)"
	if _, err := IndexPage(c, PageOptions{}); err == nil {
		t.Error("IndexPage() should reject content that closes the script block")
	}
}

func TestIndex_BehaviourStyles(t *testing.T) {
	page := renderDefault(t, PageOptions{})
	style := page.ByID(BehaviourStyleID)
	if style == nil {
		t.Fatal("behaviour stylesheet missing")
	}
	if !strings.Contains(style.Text(), ".reveal.visible{") {
		t.Errorf("behaviour stylesheet lacks the reveal rule:\n%s", style.Text())
	}
}

func TestTitle(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"buy", "Buy"},
		{"Rent", "Rent"},
		{"élan", "Élan"},
		{"ümit", "Ümit"},
		{"日本", "日本"},
	}
	for _, tt := range tests {
		if got := title(tt.in); got != tt.want {
			t.Errorf("title(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestIndex_MultiByteModeLabel(t *testing.T) {
	c := site.Default()
	c.Modes = append(c.Modes, "élan")

	var buf bytes.Buffer
	if err := RenderIndex(&buf, c, PageOptions{}); err != nil {
		t.Fatalf("RenderIndex() error: %v", err)
	}
	page, err := htmlview.Parse(&buf)
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	btn := page.Query(`.mode-btn[data-mode="élan"]`)
	if btn == nil {
		t.Fatal("élan mode button missing")
	}
	if got := btn.Text(); got != "Élan" {
		t.Errorf("mode label = %q, want %q", got, "Élan")
	}
}
