package main

import (
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"tpo-portal-backend/config"
	"tpo-portal-backend/initializers"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply database migrations and exit",
	Run: func(_ *cobra.Command, _ []string) {
		config.InitConfig()
		initializers.InitLogger(config.Conf.App.LogLevel)
		initializers.InitDBConnection(true)
		log.Info("database is up to date")
	},
}
