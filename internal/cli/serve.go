package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/focustrack/focustrack/internal/infrastructure/config"
	"github.com/focustrack/focustrack/internal/web"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server",
	Long: `Start the local JSON API server.

Examples:
  focustrack serve              # Start on default port 8080
  focustrack serve --port 3000  # Start on port 3000`,
	RunE: runServe,
}

var servePort int

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 0, "Port to listen on (overrides FOCUSTRACK_PORT)")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadServer()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	port := cfg.Port
	if servePort != 0 {
		port = servePort
	}

	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	// Create context that cancels on interrupt
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		fmt.Println("\nShutting down...")
		cancel()
	}()

	svcs := newServices(ctx, db)
	defer svcs.close(context.Background())

	server := web.NewServer(port, svcs.sessions, svcs.reports, svcs.pomodoros)
	return server.Start(ctx)
}
