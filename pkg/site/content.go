// Package site holds the content the page is built from and mounts every
// behaviour onto a rendered page. Content travels as YAML: the build embeds it
// in the page and the client decodes it back.
package site

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/recera/haven/pkg/components"
	"github.com/recera/haven/pkg/components/vrviewer"
)

// Property is one listing in the discovery grid
type Property struct {
	ID       string `yaml:"id"`
	Category string `yaml:"category"`
	Title    string `yaml:"title"`
	Location string `yaml:"location"`
	Price    string `yaml:"price"`
	Image    string `yaml:"image,omitempty"`
	Pin      *Pin   `yaml:"pin,omitempty"`
}

// Pin places a property on the map, in percent of the canvas
type Pin struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// Card is one tile of a carousel
type Card struct {
	Title    string `yaml:"title"`
	Subtitle string `yaml:"subtitle,omitempty"`
	Image    string `yaml:"image,omitempty"`
}

// Carousel is a titled, horizontally scrolling strip of cards
type Carousel struct {
	Key   string `yaml:"key"`
	Title string `yaml:"title"`
	Cards []Card `yaml:"cards"`
}

// ContainerID is the id of the carousel's scrolling element
func (c Carousel) ContainerID() string {
	return "carousel-" + c.Key
}

// Hotspot is a clickable spot on the tour image leading to another room
type Hotspot struct {
	Room string  `yaml:"room"`
	X    float64 `yaml:"x"`
	Y    float64 `yaml:"y"`
}

// Stat is a headline number that counts up when shown
type Stat struct {
	Label  string `yaml:"label"`
	Target int    `yaml:"target"`
}

// Content is everything the page shows
type Content struct {
	Title       string                              `yaml:"title"`
	Tagline     string                              `yaml:"tagline"`
	Features    map[string]components.FeatureDetail `yaml:"features"`
	Showcase    []Carousel                          `yaml:"showcase"`
	Modes       []string                            `yaml:"modes"`
	DefaultMode string                              `yaml:"default_mode"`
	Properties  []Property                          `yaml:"properties"`
	Rooms       map[string]vrviewer.Room            `yaml:"rooms"`
	Hotspots    []Hotspot                           `yaml:"hotspots,omitempty"`
	Stats       []Stat                              `yaml:"stats"`
}

// FeatureKeys returns the feature keys in display order
func (c Content) FeatureKeys() []string {
	return sortedKeys(c.Features)
}

// RoomKeys returns the room keys in display order
func (c Content) RoomKeys() []string {
	return sortedKeys(c.Rooms)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// CarouselTargets maps each carousel key to its container id
func (c Content) CarouselTargets() map[string]string {
	targets := make(map[string]string, len(c.Showcase))
	for _, car := range c.Showcase {
		targets[car.Key] = car.ContainerID()
	}
	return targets
}

// InMode returns the properties listed under mode
func (c Content) InMode(mode string) []Property {
	var out []Property
	for _, p := range c.Properties {
		if p.Category == mode {
			out = append(out, p)
		}
	}
	return out
}

// Validate reports content the page cannot be built from
func (c Content) Validate() error {
	modes := make(map[string]bool, len(c.Modes))
	for _, m := range c.Modes {
		modes[m] = true
	}
	if len(modes) == 0 {
		return fmt.Errorf("no property modes")
	}
	if !modes[c.DefaultMode] {
		return fmt.Errorf("default mode %q is not one of %v", c.DefaultMode, c.Modes)
	}

	ids := make(map[string]bool, len(c.Properties))
	for i, p := range c.Properties {
		if p.ID == "" {
			return fmt.Errorf("property %d: missing id", i)
		}
		if ids[p.ID] {
			return fmt.Errorf("property %q: duplicate id", p.ID)
		}
		ids[p.ID] = true
		if !modes[p.Category] {
			return fmt.Errorf("property %q: unknown category %q", p.ID, p.Category)
		}
	}

	keys := make(map[string]bool, len(c.Showcase))
	for _, car := range c.Showcase {
		if car.Key == "" || keys[car.Key] {
			return fmt.Errorf("carousel %q: empty or duplicate key", car.Key)
		}
		keys[car.Key] = true
	}

	for _, h := range c.Hotspots {
		if _, ok := c.Rooms[h.Room]; !ok {
			return fmt.Errorf("hotspot leads to unknown room %q", h.Room)
		}
	}
	for _, s := range c.Stats {
		if s.Target < 0 {
			return fmt.Errorf("stat %q: negative target", s.Label)
		}
	}
	return nil
}

// Decode reads YAML content over c. Fields absent from the document keep
// their current values.
func (c *Content) Decode(r io.Reader) error {
	if err := yaml.NewDecoder(r).Decode(c); err != nil && err != io.EOF {
		return fmt.Errorf("decode content: %w", err)
	}
	return nil
}

// Encode writes c as YAML
func (c Content) Encode(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return fmt.Errorf("encode content: %w", err)
	}
	return enc.Close()
}

// YAML returns c encoded as a YAML document
func (c Content) YAML() ([]byte, error) {
	var buf bytes.Buffer
	if err := c.Encode(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Parse decodes a complete content document
func Parse(data []byte) (Content, error) {
	var c Content
	if err := c.Decode(bytes.NewReader(data)); err != nil {
		return Content{}, err
	}
	return c, nil
}

// Load reads overrides from path on top of Default and validates the result
func Load(path string) (Content, error) {
	c := Default()
	f, err := os.Open(path)
	if err != nil {
		return Content{}, fmt.Errorf("open content: %w", err)
	}
	defer f.Close()

	if err := c.Decode(f); err != nil {
		return Content{}, err
	}
	if err := c.Validate(); err != nil {
		return Content{}, fmt.Errorf("content %s: %w", path, err)
	}
	return c, nil
}
