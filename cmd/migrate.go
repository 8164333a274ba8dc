package cmd

import (
	"club-content-api/config"
	"club-content-api/internal/global/database"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(migrateCmd)
}

// migrateCmd 建表后退出，不启动服务
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the content tables",
	RunE: func(_ *cobra.Command, _ []string) error {
		config.Init()
		config.Get().Mysql.AutoMigrate = false
		database.Init()
		return database.Migrate()
	},
}
