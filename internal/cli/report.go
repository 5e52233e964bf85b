package cli

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/focustrack/focustrack/internal/domain"
	"github.com/focustrack/focustrack/internal/util"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Generate productivity reports",
}

var reportDailyCmd = &cobra.Command{
	Use:   "daily [YYYY-MM-DD]",
	Short: "Report over one calendar day (default today)",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runReportDaily,
}

var reportWeeklyCmd = &cobra.Command{
	Use:   "weekly [YYYY-MM-DD]",
	Short: "Report over seven days from a start date (default last 7 days)",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runReportWeekly,
}

var reportCustomCmd = &cobra.Command{
	Use:   "custom <start-rfc3339> <end-rfc3339>",
	Short: "Report over an arbitrary window",
	Args:  cobra.ExactArgs(2),
	RunE:  runReportCustom,
}

func init() {
	rootCmd.AddCommand(reportCmd)
	reportCmd.AddCommand(reportDailyCmd)
	reportCmd.AddCommand(reportWeeklyCmd)
	reportCmd.AddCommand(reportCustomCmd)
}

func runReportDaily(cmd *cobra.Command, args []string) error {
	date := time.Now().UTC()
	if len(args) == 1 {
		parsed, err := time.Parse("2006-01-02", args[0])
		if err != nil {
			return fmt.Errorf("invalid date %q: %w", args[0], err)
		}
		date = parsed
	}

	return withReport(func(ctx context.Context, svcs *services) (*domain.Report, error) {
		return svcs.reports.Daily(ctx, date)
	})
}

func runReportWeekly(cmd *cobra.Command, args []string) error {
	startDate := time.Now().UTC().AddDate(0, 0, -7)
	if len(args) == 1 {
		parsed, err := time.Parse("2006-01-02", args[0])
		if err != nil {
			return fmt.Errorf("invalid date %q: %w", args[0], err)
		}
		startDate = parsed
	}

	return withReport(func(ctx context.Context, svcs *services) (*domain.Report, error) {
		return svcs.reports.Weekly(ctx, startDate)
	})
}

func runReportCustom(cmd *cobra.Command, args []string) error {
	start, err := time.Parse(time.RFC3339, args[0])
	if err != nil {
		return fmt.Errorf("invalid start %q: %w", args[0], err)
	}
	end, err := time.Parse(time.RFC3339, args[1])
	if err != nil {
		return fmt.Errorf("invalid end %q: %w", args[1], err)
	}

	return withReport(func(ctx context.Context, svcs *services) (*domain.Report, error) {
		return svcs.reports.Generate(ctx, start, end)
	})
}

func withReport(generate func(context.Context, *services) (*domain.Report, error)) error {
	ctx := context.Background()
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()
	svcs := newServices(ctx, db)
	defer svcs.close(ctx)

	report, err := generate(ctx, svcs)
	if err != nil {
		return fmt.Errorf("failed to generate report: %w", err)
	}

	printReport(report)
	return nil
}

func printReport(r *domain.Report) {
	fmt.Printf("Report generated %s\n\n", util.FormatDateTime(r.GeneratedAt))
	fmt.Printf("Focused:     %s\n", util.FormatDuration(r.TotalFocusSeconds))
	fmt.Printf("Distracted:  %s\n", util.FormatDuration(r.TotalDistractedSeconds))
	fmt.Printf("Neutral:     %s\n", util.FormatDuration(r.TotalNeutralSeconds))
	fmt.Printf("Total:       %s\n\n", util.FormatDuration(r.TotalSeconds))
	fmt.Printf("Productivity score: %.2f%%\n", r.ProductivityScore)
	fmt.Printf("Distraction score:  %.2f%%\n", r.DistractionScore)
	fmt.Printf("Consistency:        %d session(s)/day\n", r.ConsistencyRating)

	printAppTable("Top applications", r.TopApps)
	printAppTable("Top distracting applications", r.TopDistractingApps)
	printAppTable("Top productive applications", r.TopProductiveApps)
}

func printAppTable(title string, apps []domain.AppUsage) {
	if len(apps) == 0 {
		return
	}

	fmt.Printf("\n%s:\n", title)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "APP\tDURATION\tSHARE")
	for _, app := range apps {
		fmt.Fprintf(w, "%s\t%s\t%.1f%%\n", app.AppName, util.FormatDuration(app.DurationSeconds), app.Percentage)
	}
	_ = w.Flush()
}
