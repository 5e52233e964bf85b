package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/focustrack/focustrack/internal/domain"
)

var trackCmd = &cobra.Command{
	Use:   "track <app-name> <window-title>",
	Short: "Record an application focus change",
	Long: `Record a focus change in the active session (or a named session).
The previous open activity, if any, is closed at the current instant.

Examples:
  focustrack track "Visual Studio Code" "main.go"
  focustrack track --session <id> "Google Chrome" "YouTube"`,
	Args: cobra.ExactArgs(2),
	RunE: runTrack,
}

var (
	trackSession  string
	trackCategory string
)

func init() {
	rootCmd.AddCommand(trackCmd)
	trackCmd.Flags().StringVarP(&trackSession, "session", "s", "", "Session ID (defaults to the active session)")
	trackCmd.Flags().StringVarP(&trackCategory, "category", "c", "", "Override category (PRODUCTIVE, DISTRACTING, NEUTRAL)")
}

func runTrack(cmd *cobra.Command, args []string) error {
	category, err := domain.ParseCategory(trackCategory)
	if err != nil {
		return err
	}

	ctx := context.Background()
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()
	svcs := newServices(ctx, db)
	defer svcs.close(ctx)

	sessionID := trackSession
	if sessionID == "" {
		active, err := svcs.sessions.Active(ctx)
		if err != nil {
			return fmt.Errorf("failed to get active session: %w", err)
		}
		if active == nil {
			return fmt.Errorf("no active session; start one with 'focustrack sessions start'")
		}
		sessionID = active.ID
	}

	activity, err := svcs.sessions.AddActivity(ctx, sessionID, args[0], args[1], category)
	if err != nil {
		return fmt.Errorf("failed to record activity: %w", err)
	}

	fmt.Printf("Recorded %s activity %s (%s)\n", activity.Category, activity.ID, activity.AppName)
	return nil
}
