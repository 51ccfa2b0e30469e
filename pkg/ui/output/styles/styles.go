// Package styles defines the visual styling for terminal output.
//
// Styles have semantic names (Success, Error, Warning, ...) and adaptive
// colors that adjust to light and dark terminals. Definitions live in the
// embedded styles.yaml and are bound to a lipgloss.Renderer so that color
// output follows the writer they are rendered for.
package styles

import (
	_ "embed"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"
)

// ColorDef represents an adaptive color definition in YAML
type ColorDef struct {
	Light string `yaml:"light"`
	Dark  string `yaml:"dark"`
}

// StyleDef represents a style definition in YAML
type StyleDef struct {
	Bold       bool   `yaml:"bold,omitempty"`
	Italic     bool   `yaml:"italic,omitempty"`
	Underline  bool   `yaml:"underline,omitempty"`
	Foreground string `yaml:"foreground,omitempty"`
	Background string `yaml:"background,omitempty"`
}

// Config represents the complete styles configuration
type Config struct {
	Colors map[string]ColorDef `yaml:"colors"`
	Styles map[string]StyleDef `yaml:"styles"`
}

// Names every caller may rely on being present
var Names = []string{"Header", "Success", "Error", "Warning", "Muted", "Bold", "FilePath"}

//go:embed styles.yaml
var embeddedStyles []byte

// Registry maps semantic names to lipgloss styles
type Registry struct {
	styles map[string]lipgloss.Style
}

// New builds the embedded styles for r. If the embedded definitions cannot
// be parsed every name maps to an unstyled style.
func New(r *lipgloss.Renderer) *Registry {
	reg, err := FromData(r, embeddedStyles)
	if err != nil {
		return defaults(r)
	}
	return reg
}

// FromData builds styles for r from YAML definitions
func FromData(r *lipgloss.Renderer, data []byte) (*Registry, error) {
	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse styles data: %w", err)
	}

	colors := make(map[string]lipgloss.AdaptiveColor, len(config.Colors))
	for name, def := range config.Colors {
		colors[name] = lipgloss.AdaptiveColor{Light: def.Light, Dark: def.Dark}
	}

	reg := &Registry{styles: make(map[string]lipgloss.Style, len(config.Styles))}
	for name, def := range config.Styles {
		reg.styles[name] = buildStyle(r, def, colors)
	}
	return reg, nil
}

func defaults(r *lipgloss.Renderer) *Registry {
	reg := &Registry{styles: make(map[string]lipgloss.Style, len(Names))}
	for _, name := range Names {
		reg.styles[name] = r.NewStyle()
	}
	return reg
}

// buildStyle constructs a lipgloss style from a style definition
func buildStyle(r *lipgloss.Renderer, def StyleDef, colors map[string]lipgloss.AdaptiveColor) lipgloss.Style {
	style := r.NewStyle()

	if def.Bold {
		style = style.Bold(true)
	}
	if def.Italic {
		style = style.Italic(true)
	}
	if def.Underline {
		style = style.Underline(true)
	}
	if color, ok := colors[def.Foreground]; ok {
		style = style.Foreground(color)
	}
	if color, ok := colors[def.Background]; ok {
		style = style.Background(color)
	}

	return style
}

// Get returns the named style, or an unstyled one if unknown
func (reg *Registry) Get(name string) lipgloss.Style {
	if style, ok := reg.styles[name]; ok {
		return style
	}
	return lipgloss.NewStyle()
}

// Has reports whether name is defined
func (reg *Registry) Has(name string) bool {
	_, ok := reg.styles[name]
	return ok
}
