package galleria

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config controls a Carousel. The zero value of any field means "use the
// default" (or, in Reconfigure, "keep the current value"), which is what
// makes partial configs mergeable.
type Config struct {
	// Sources lists the image files to load, in display order. Required.
	Sources []string `yaml:"sources"`
	// Titles optionally names each slot; missing entries show no title.
	Titles []string `yaml:"titles"`

	// SlotWidth and ThumbWidth in logical pixels; 0 derives both
	// responsively from the viewport width.
	SlotWidth  float64 `yaml:"slot_width"`
	ThumbWidth float64 `yaml:"thumb_width"`
	SlotGap    float64 `yaml:"slot_gap"`
	ThumbGap   float64 `yaml:"thumb_gap"`

	// CounterStyle is "snap", "smooth", or "clipped".
	CounterStyle string `yaml:"counter_style"`

	// StaggerStrength scales the thumbnail cascade delay.
	StaggerStrength float64 `yaml:"stagger_strength"`

	// DragThreshold and WheelThreshold are the logical-pixel distances an
	// input must exceed to count as a drag or a wheel scroll.
	DragThreshold  float64 `yaml:"drag_threshold"`
	WheelThreshold float64 `yaml:"wheel_threshold"`

	// DisableZoom turns clicking-to-fullscreen off; the carousel then
	// only scrolls inline.
	DisableZoom bool `yaml:"disable_zoom"`
}

// Default dimension and threshold values, applied where the config is
// zero.
const (
	defaultSlotGap         = 28.0
	defaultThumbGap        = 10.0
	defaultStaggerStrength = 1.0
	defaultDragThreshold   = 6.0
	defaultWheelThreshold  = 14.0
)

// LoadConfig reads and parses a YAML config file.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("galleria: read config: %w", err)
	}
	return ParseConfig(data)
}

// ParseConfig parses a YAML config document.
func ParseConfig(data []byte) (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("galleria: parse config: %w", err)
	}
	return cfg, nil
}

// withDefaults returns cfg with every zero field replaced by its
// default.
func (c Config) withDefaults() Config {
	if c.SlotGap == 0 {
		c.SlotGap = defaultSlotGap
	}
	if c.ThumbGap == 0 {
		c.ThumbGap = defaultThumbGap
	}
	if c.StaggerStrength == 0 {
		c.StaggerStrength = defaultStaggerStrength
	}
	if c.DragThreshold == 0 {
		c.DragThreshold = defaultDragThreshold
	}
	if c.WheelThreshold == 0 {
		c.WheelThreshold = defaultWheelThreshold
	}
	if c.CounterStyle == "" {
		c.CounterStyle = "snap"
	}
	return c
}

// merge overlays the non-zero fields of partial onto c.
func (c Config) merge(partial Config) Config {
	if len(partial.Sources) > 0 {
		c.Sources = partial.Sources
	}
	if len(partial.Titles) > 0 {
		c.Titles = partial.Titles
	}
	if partial.SlotWidth != 0 {
		c.SlotWidth = partial.SlotWidth
	}
	if partial.ThumbWidth != 0 {
		c.ThumbWidth = partial.ThumbWidth
	}
	if partial.SlotGap != 0 {
		c.SlotGap = partial.SlotGap
	}
	if partial.ThumbGap != 0 {
		c.ThumbGap = partial.ThumbGap
	}
	if partial.CounterStyle != "" {
		c.CounterStyle = partial.CounterStyle
	}
	if partial.StaggerStrength != 0 {
		c.StaggerStrength = partial.StaggerStrength
	}
	if partial.DragThreshold != 0 {
		c.DragThreshold = partial.DragThreshold
	}
	if partial.WheelThreshold != 0 {
		c.WheelThreshold = partial.WheelThreshold
	}
	if partial.DisableZoom {
		c.DisableZoom = true
	}
	return c
}

// validate checks the config before any machine is constructed.
func (c Config) validate() error {
	if len(c.Sources) == 0 {
		return &ConfigurationError{Field: "sources", Reason: "empty item list"}
	}
	for i, src := range c.Sources {
		if src == "" {
			return &ConfigurationError{
				Field:  "sources",
				Reason: fmt.Sprintf("item %d is empty", i),
			}
		}
	}
	if _, err := c.counterStyle(); err != nil {
		return err
	}
	if c.SlotWidth < 0 || c.ThumbWidth < 0 || c.SlotGap < 0 || c.ThumbGap < 0 {
		return &ConfigurationError{Field: "dimensions", Reason: "negative value"}
	}
	if c.StaggerStrength < 0 {
		return &ConfigurationError{Field: "stagger_strength", Reason: "negative value"}
	}
	return nil
}

// counterStyle parses the configured style name.
func (c Config) counterStyle() (CounterStyle, error) {
	switch c.CounterStyle {
	case "snap":
		return CounterSnap, nil
	case "smooth":
		return CounterSmooth, nil
	case "clipped":
		return CounterClipped, nil
	default:
		return 0, &ConfigurationError{
			Field:  "counter_style",
			Reason: fmt.Sprintf("unknown style %q", c.CounterStyle),
		}
	}
}
