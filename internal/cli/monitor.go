package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/focustrack/focustrack/internal/adapters/monitor"
	"github.com/focustrack/focustrack/internal/infrastructure/config"
)

var monitorCmd = &cobra.Command{
	Use:   "monitor <session-id>",
	Short: "Poll focus samples into a session until interrupted",
	Long: `Run the activity poller against one session. Each sample appends an
activity and closes the previous open one. The shipped sampler returns
placeholder values; point FOCUSTRACK_MONITOR_INTERVAL at your poll rate.`,
	Args: cobra.ExactArgs(1),
	RunE: runMonitor,
}

func init() {
	rootCmd.AddCommand(monitorCmd)
}

func runMonitor(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadMonitor()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	svcs := newServices(ctx, db)
	defer svcs.close(context.Background())

	poller := monitor.NewPoller(svcs.sessions, monitor.NewStaticSampler(), cfg.PollInterval, newLogger())
	if err := poller.Start(ctx, args[0]); err != nil {
		return err
	}
	defer poller.Stop()

	fmt.Printf("Monitoring session %s every %s (Ctrl-C to stop)\n", args[0], cfg.PollInterval)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan
	fmt.Println("\nStopping...")
	return nil
}
