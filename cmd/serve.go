package cmd

import (
	"club-content-api/cmd/server"
	"club-content-api/internal/module/ping"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Run: func(_ *cobra.Command, _ []string) {
		ping.Version = Version
		server.Init(Version)
		server.Run()
	},
}
