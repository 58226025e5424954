package site

import (
	"github.com/recera/haven/pkg/components"
	"github.com/recera/haven/pkg/components/vrviewer"
)

// Default returns the stock content. Each call builds fresh maps and slices.
func Default() Content {
	return Content{
		Title:   "Haven Estates",
		Tagline: "Homes that feel like the night sky: calm, open and yours.",
		Features: map[string]components.FeatureDetail{
			"pool": {
				Icon:    "🏊",
				Title:   "Infinity Pool",
				Content: "A heated saltwater pool that runs to the edge of the terrace, lit from below after dark.",
			},
			"smart-home": {
				Icon:    "💡",
				Title:   "Smart Home",
				Content: "Lighting, climate and locks on one panel, with scenes that follow the time of day.",
			},
			"garden": {
				Icon:    "🌿",
				Title:   "Private Garden",
				Content: "Native planting on drip irrigation, laid out to need an afternoon of care a month.",
			},
			"security": {
				Icon:    "🔒",
				Title:   "Gated Security",
				Content: "Staffed gatehouse, camera coverage of every entrance and keyless resident access.",
			},
			"solar": {
				Icon:    "☀️",
				Title:   "Solar Roof",
				Content: "Integrated panels and a home battery cover most of a typical household's yearly use.",
			},
		},
		Showcase: []Carousel{
			{Key: "sale", Title: "For Sale", Cards: []Card{
				{Title: "Cedar Ridge Villa", Subtitle: "4 bed · 3 bath", Image: "img/cedar.jpg"},
				{Title: "Harbour Loft", Subtitle: "2 bed · 2 bath", Image: "img/harbour.jpg"},
				{Title: "Willow Court", Subtitle: "3 bed · 2 bath", Image: "img/willow.jpg"},
				{Title: "Stonegate House", Subtitle: "5 bed · 4 bath", Image: "img/stonegate.jpg"},
			}},
			{Key: "rent", Title: "For Rent", Cards: []Card{
				{Title: "Garden Flat", Subtitle: "1 bed · from 1,200/mo", Image: "img/garden-flat.jpg"},
				{Title: "Skyline Studio", Subtitle: "Studio · from 950/mo", Image: "img/skyline.jpg"},
				{Title: "Maple Townhouse", Subtitle: "3 bed · from 2,100/mo", Image: "img/maple.jpg"},
			}},
			{Key: "services", Title: "Services", Cards: []Card{
				{Title: "Valuation", Subtitle: "Free, within 48 hours"},
				{Title: "Mortgage Advice", Subtitle: "Whole-of-market"},
				{Title: "Interior Design", Subtitle: "Staging and fit-out"},
			}},
			{Key: "projects", Title: "Projects", Cards: []Card{
				{Title: "Northfield Green", Subtitle: "120 homes · 2027", Image: "img/northfield.jpg"},
				{Title: "Riverside Quarter", Subtitle: "Mixed use · 2028", Image: "img/riverside.jpg"},
			}},
		},
		Modes:       []string{"buy", "rent", "build"},
		DefaultMode: "buy",
		Properties: []Property{
			{ID: "cedar-ridge", Category: "buy", Title: "Cedar Ridge Villa", Location: "Hillcrest", Price: "1,250,000", Pin: &Pin{X: 22, Y: 35}},
			{ID: "harbour-loft", Category: "buy", Title: "Harbour Loft", Location: "Old Port", Price: "640,000", Pin: &Pin{X: 68, Y: 58}},
			{ID: "garden-flat", Category: "rent", Title: "Garden Flat", Location: "Elm Park", Price: "1,200/mo", Pin: &Pin{X: 40, Y: 22}},
			{ID: "skyline-studio", Category: "rent", Title: "Skyline Studio", Location: "Centre", Price: "950/mo", Pin: &Pin{X: 55, Y: 44}},
			{ID: "northfield-plot-7", Category: "build", Title: "Northfield Plot 7", Location: "Northfield", Price: "210,000", Pin: &Pin{X: 30, Y: 12}},
		},
		Rooms: map[string]vrviewer.Room{
			"living":  {Image: "img/tour/living.jpg", Label: "Living Room"},
			"kitchen": {Image: "img/tour/kitchen.jpg", Label: "Kitchen"},
			"bedroom": {Image: "img/tour/bedroom.jpg", Label: "Main Bedroom"},
			"terrace": {Image: "img/tour/terrace.jpg", Label: "Terrace"},
		},
		Hotspots: []Hotspot{
			{Room: "kitchen", X: 18, Y: 52},
			{Room: "terrace", X: 81, Y: 47},
		},
		Stats: []Stat{
			{Label: "Homes sold", Target: 2500},
			{Label: "Happy families", Target: 1800},
			{Label: "Cities", Target: 35},
			{Label: "Years of experience", Target: 20},
		},
	}
}
