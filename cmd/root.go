package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// Version 构建时通过 -ldflags "-X club-content-api/cmd.Version=..." 注入
var Version = "dev"

var rootCmd = &cobra.Command{
	Use:   "club-content-api",
	Short: "Read-only content API for the club website",
	Long:  `Serves club stats, events, issues, projects and blog posts from MySQL with a Redis cache in front.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
