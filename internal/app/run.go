package app

import (
	"context"
	"fmt"

	"github.com/avolkov/brandreport/internal/csvload"
	"github.com/avolkov/brandreport/internal/ctxlog"
	"github.com/avolkov/brandreport/internal/report"
)

// Run executes one load → aggregate → render pass. Aggregation always runs
// before the report type is validated, so a bad --report value surfaces only
// after the data work is done and never lets partial output reach stdout.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	records, err := csvload.ReadFiles(ctx, a.config.Files)
	if err != nil {
		return err
	}
	a.logger.Info("Input files loaded.", "files", len(a.config.Files), "records", len(records))

	averages := report.AverageRating(ctx, records)
	a.logger.Debug("Aggregation finished.", "brands", len(averages))

	rendered, err := report.Render(a.config.ReportType, averages)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.outW, rendered)

	a.logger.Debug("App.Run method finished.")
	return nil
}
