package version

// Build information set by ldflags
var (
	Version = "dev"     // Set by goreleaser: -X github.com/arthur-debert/dotfiles/internal/version.Version={{.Version}}
	Commit  = "unknown" // Set by goreleaser: -X github.com/arthur-debert/dotfiles/internal/version.Commit={{.Commit}}
	Date    = "unknown" // Set by goreleaser: -X github.com/arthur-debert/dotfiles/internal/version.Date={{.Date}}
)

// String returns the multi-line version report printed by `dotfiles version`
func String() string {
	return "dotfiles version " + Version + "\n" +
		"  commit: " + Commit + "\n" +
		"  built:  " + Date + "\n"
}
