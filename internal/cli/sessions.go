package cli

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/focustrack/focustrack/internal/domain"
	"github.com/focustrack/focustrack/internal/util"
)

var sessionsCmd = &cobra.Command{
	Use:   "sessions",
	Short: "Manage tracking sessions",
	Long:  `Start, inspect and transition tracking sessions.`,
}

var sessionsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List sessions",
	RunE:  runSessionsList,
}

var sessionsStartCmd = &cobra.Command{
	Use:   "start",
	Short: "Start a new focus session",
	Long: `Start a new focus session.

Examples:
  focustrack sessions start                    # Placeholder name
  focustrack sessions start --name "Deep work"`,
	RunE: runSessionsStart,
}

var sessionsActiveCmd = &cobra.Command{
	Use:   "active",
	Short: "Show the most recently started active session",
	RunE:  runSessionsActive,
}

var sessionsPauseCmd = &cobra.Command{
	Use:   "pause <session-id>",
	Short: "Pause a session",
	Args:  cobra.ExactArgs(1),
	RunE:  runSessionsPause,
}

var sessionsResumeCmd = &cobra.Command{
	Use:   "resume <session-id>",
	Short: "Resume a paused session",
	Args:  cobra.ExactArgs(1),
	RunE:  runSessionsResume,
}

var sessionsEndCmd = &cobra.Command{
	Use:   "end <session-id>",
	Short: "End a session",
	Args:  cobra.ExactArgs(1),
	RunE:  runSessionsEnd,
}

var sessionsStartName string

func init() {
	rootCmd.AddCommand(sessionsCmd)
	sessionsCmd.AddCommand(sessionsListCmd)
	sessionsCmd.AddCommand(sessionsStartCmd)
	sessionsCmd.AddCommand(sessionsActiveCmd)
	sessionsCmd.AddCommand(sessionsPauseCmd)
	sessionsCmd.AddCommand(sessionsResumeCmd)
	sessionsCmd.AddCommand(sessionsEndCmd)

	sessionsStartCmd.Flags().StringVarP(&sessionsStartName, "name", "n", "", "Session name")
}

func runSessionsList(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()
	svcs := newServices(ctx, db)
	defer svcs.close(ctx)

	sessions, err := svcs.sessions.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list sessions: %w", err)
	}

	if len(sessions) == 0 {
		fmt.Println("No sessions found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tTYPE\tSTATUS\tSTARTED\tTOTAL\tFOCUSED\tDISTRACTED")
	fmt.Fprintln(w, "--\t----\t----\t------\t-------\t-----\t-------\t----------")

	for _, s := range sessions {
		id := s.ID
		if len(id) > 12 {
			id = id[:12]
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			id,
			s.Name,
			s.Type,
			s.Status,
			util.FormatDateTime(s.StartedAt),
			formatSeconds(s.TotalSeconds),
			formatSeconds(s.FocusedSeconds),
			formatSeconds(s.DistractedSeconds),
		)
	}
	return w.Flush()
}

func runSessionsStart(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()
	svcs := newServices(ctx, db)
	defer svcs.close(ctx)

	session, err := svcs.sessions.Create(ctx, sessionsStartName, domain.TypeFocus)
	if err != nil {
		return fmt.Errorf("failed to start session: %w", err)
	}

	fmt.Printf("Started session %s (%s)\n", session.ID, session.Name)
	return nil
}

func runSessionsActive(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()
	svcs := newServices(ctx, db)
	defer svcs.close(ctx)

	session, err := svcs.sessions.Active(ctx)
	if err != nil {
		return fmt.Errorf("failed to get active session: %w", err)
	}
	if session == nil {
		fmt.Println("No active session")
		return nil
	}

	fmt.Printf("%s  %s (%s, started %s)\n", session.ID, session.Name, session.Type, util.FormatDateTime(session.StartedAt))
	return nil
}

func runSessionsPause(cmd *cobra.Command, args []string) error {
	return transitionSession(args[0], "Paused", func(ctx context.Context, svcs *services, id string) (*domain.Session, error) {
		return svcs.sessions.Pause(ctx, id)
	})
}

func runSessionsResume(cmd *cobra.Command, args []string) error {
	return transitionSession(args[0], "Resumed", func(ctx context.Context, svcs *services, id string) (*domain.Session, error) {
		return svcs.sessions.Resume(ctx, id)
	})
}

func runSessionsEnd(cmd *cobra.Command, args []string) error {
	return transitionSession(args[0], "Ended", func(ctx context.Context, svcs *services, id string) (*domain.Session, error) {
		return svcs.sessions.End(ctx, id)
	})
}

func transitionSession(id, verb string, transition func(context.Context, *services, string) (*domain.Session, error)) error {
	ctx := context.Background()
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()
	svcs := newServices(ctx, db)
	defer svcs.close(ctx)

	session, err := transition(ctx, svcs, id)
	if err != nil {
		return err
	}

	fmt.Printf("%s session %s (%s)\n", verb, session.ID, session.Name)
	if session.TotalSeconds != nil {
		fmt.Printf("  total %s, focused %s, distracted %s\n",
			formatSeconds(session.TotalSeconds),
			formatSeconds(session.FocusedSeconds),
			formatSeconds(session.DistractedSeconds),
		)
	}
	return nil
}

func formatSeconds(s *int64) string {
	if s == nil {
		return "-"
	}
	return util.FormatDuration(*s)
}
