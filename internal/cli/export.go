package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"YenDong/internal/di"
	"YenDong/internal/export"
)

var (
	exportPNGPath      string
	exportCSVPath      string
	exportDays         int
	exportForecastDays int
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export seeded history and forecast as CSV and/or PNG chart",
	RunE: func(cmd *cobra.Command, args []string) error {
		if exportDays < 1 || exportForecastDays < 0 {
			return fmt.Errorf("--days must be positive and --forecast-days non-negative")
		}

		rates, err := di.InitializeExportRates(getConfig())
		if err != nil {
			return err
		}

		ctx := cmd.Context()
		history := rates.History(ctx, exportDays)
		forecast := rates.Forecast(ctx, exportForecastDays)

		if err := export.Write(export.Options{CSVPath: exportCSVPath, PNGPath: exportPNGPath}, history, forecast); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "exported %d history and %d forecast points\n", len(history), len(forecast))
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVar(&exportPNGPath, "png", "", "Path to write PNG chart")
	exportCmd.Flags().StringVar(&exportCSVPath, "csv", "", "Path to write CSV data")
	exportCmd.Flags().IntVar(&exportDays, "days", 30, "Number of history points")
	exportCmd.Flags().IntVar(&exportForecastDays, "forecast-days", 7, "Number of forecast points")
}
