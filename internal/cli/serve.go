package cli

import (
	"github.com/spf13/cobra"

	"YenDong/internal/di"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the dashboard API",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := di.InitializeApp(getConfig())
		if err != nil {
			return err
		}
		return app.Run(cmd.Context())
	},
}
