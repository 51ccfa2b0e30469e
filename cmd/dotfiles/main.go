package main

import (
	"os"

	"github.com/arthur-debert/dotfiles/internal/cli"
	"github.com/arthur-debert/dotfiles/pkg/config"
	"github.com/arthur-debert/dotfiles/pkg/ui/output"
)

func main() {
	rootCmd := cli.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		output.NewRenderer(os.Stderr, config.ColorAuto).Error(err)
		os.Exit(1)
	}
}
