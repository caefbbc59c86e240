package main

import (
	"portfolio/internal/di"

	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // Cobra boilerplate
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := di.InitApp(&flags)
		if err != nil {
			return err
		}
		return app.Run()
	},
}
