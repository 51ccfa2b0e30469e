package output

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/arthur-debert/dotfiles/pkg/config"
	"github.com/arthur-debert/dotfiles/pkg/installer"
	"github.com/arthur-debert/dotfiles/pkg/ui/output/styles"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Renderer writes the install report
type Renderer struct {
	w      io.Writer
	styles *styles.Registry
}

// NewRenderer creates a Renderer for w using the given color mode
func NewRenderer(w io.Writer, colorMode string) *Renderer {
	r := lipgloss.NewRenderer(w)
	r.SetColorProfile(profileFor(w, colorMode))
	return &Renderer{w: w, styles: styles.New(r)}
}

func profileFor(w io.Writer, colorMode string) termenv.Profile {
	switch colorMode {
	case config.ColorNever:
		return termenv.Ascii
	case config.ColorAlways:
		return termenv.ANSI
	}

	if os.Getenv("NO_COLOR") != "" {
		return termenv.Ascii
	}
	f, ok := w.(*os.File)
	if !ok {
		return termenv.Ascii
	}
	if !isatty.IsTerminal(f.Fd()) && !isatty.IsCygwinTerminal(f.Fd()) {
		return termenv.Ascii
	}
	return termenv.NewOutput(f).EnvColorProfile()
}

func (r *Renderer) println(style, text string) {
	if style == "" {
		fmt.Fprintln(r.w, text)
		return
	}
	fmt.Fprintln(r.w, r.styles.Get(style).Render(text))
}

func (r *Renderer) blank() {
	fmt.Fprintln(r.w)
}

// Using announces the manifest being installed
func (r *Renderer) Using(manifestName string) {
	r.println("Success", "Using: "+manifestName)
	r.blank()
}

// NoConfigs reports a manifest without entries
func (r *Renderer) NoConfigs() {
	r.println("Warning", "No configurations found in config file.")
}

// Installing announces the entry about to be installed
func (r *Renderer) Installing(name string) {
	r.println("Success", fmt.Sprintf("Installing %s...", name))
}

// Result reports the outcome of one entry
func (r *Renderer) Result(res installer.Result) {
	if !res.Installed() {
		r.println("Error", "  Error: Source not found")
		r.blank()
		return
	}

	r.println("", fmt.Sprintf("  %s -> %s", res.Source, res.Dest))

	if len(res.Notes) > 0 {
		r.blank()
		r.println("Warning", "  Warnings:")
		r.blank()
		for i, note := range res.Notes {
			for _, line := range strings.Split(strings.TrimSpace(note), "\n") {
				r.println("Warning", "  "+line)
			}
			if i < len(res.Notes)-1 {
				r.blank()
			}
		}
	}

	r.blank()
}

// Summary closes the report. deps are printed in the order given.
func (r *Renderer) Summary(deps []string) {
	r.println("Success", "Installation complete!")
	r.blank()

	if len(deps) > 0 {
		r.println("Warning", "Dependencies (install using your package manager):")
		for _, dep := range deps {
			r.println("", "  - "+dep)
		}
		r.blank()
	}

	r.println("Warning", "Note: You may need to restart your terminal for changes to take effect")
}

// Error reports a fatal error
func (r *Renderer) Error(err error) {
	r.println("Error", fmt.Sprintf("Error: %v", err))
}
