package styling

import (
	"fmt"

	"github.com/recera/haven/pkg/components/starfield"
)

// Behaviours returns the rules that give each toggled class its effect:
// open overlays, revealed cards, twinkling stars and the rest. Under a
// reduced-motion preference transitions and twinkling are switched off.
func Behaviours() *Sheet {
	s := &Sheet{}

	// header
	s.Add("#site-header", "transition:background .3s,box-shadow .3s")
	s.Add("#site-header.scrolled", "background:rgba(8,10,28,.92)", "box-shadow:0 2px 12px rgba(0,0,0,.35)")

	// drawer
	s.Add("#mobile-drawer", "transform:translateX(100%)", "transition:transform .3s")
	s.Add("#mobile-drawer.open", "transform:none")
	s.Add("#drawer-overlay", "opacity:0", "pointer-events:none", "transition:opacity .3s")
	s.Add("#drawer-overlay.show", "opacity:1", "pointer-events:auto")

	// modal
	s.Add("#feature-modal-overlay", "display:none")
	s.Add("#feature-modal-overlay.open", "display:flex")

	// tabs, filter, tour
	s.Add(".tab-panel[hidden]", "display:none")
	s.Add(".fade-in", "animation:haven-fade .4s ease both")
	s.Add("@keyframes haven-fade", "from{opacity:0;transform:translateY(8px)}to{opacity:1;transform:none}")

	// map
	s.Add("#map-preview", "opacity:0", "visibility:hidden", "transition:opacity .25s")
	s.Add("#map-preview.show", "opacity:1", "visibility:visible")

	// reveal
	s.Add(".reveal", "opacity:0", "transform:translateY(24px)", "transition:opacity .6s,transform .6s")
	s.Add(".reveal.visible", "opacity:1", "transform:none")

	// stars
	s.Add(".star", "position:absolute", "border-radius:50%", "background:#fff", "animation:haven-twinkle ease-in-out infinite alternate")
	for _, size := range []starfield.Size{starfield.Small, starfield.Medium, starfield.Big} {
		px := fmt.Sprintf("%dpx", size.Pixels())
		s.Add(".star."+string(size), "width:"+px, "height:"+px)
	}
	s.Add("@keyframes haven-twinkle", "from{opacity:.2}to{opacity:1}")

	// vr viewer
	s.Add("#vr-image", "cursor:grab", "user-select:none")

	reduced := s.Media("(prefers-reduced-motion: reduce)")
	reduced.Add("*", "animation:none!important", "transition:none!important")
	reduced.Add(".reveal", "opacity:1", "transform:none")
	return s
}
