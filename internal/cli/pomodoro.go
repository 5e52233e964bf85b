package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/focustrack/focustrack/internal/domain"
	"github.com/focustrack/focustrack/internal/util"
)

var pomodoroCmd = &cobra.Command{
	Use:   "pomodoro",
	Short: "Start pomodoro sessions",
	Long: `Start pomodoro work and break sessions. No timer runs here: end the
session yourself (or from a timer of your choosing) when the interval is up.`,
}

var pomodoroWorkCmd = &cobra.Command{
	Use:   "work",
	Short: "Start a pomodoro work session (25 minutes)",
	RunE:  runPomodoroWork,
}

var pomodoroBreakCmd = &cobra.Command{
	Use:   "break",
	Short: "Start a pomodoro break session (5 minutes, 15 with --long)",
	RunE:  runPomodoroBreak,
}

var (
	pomodoroWorkName  string
	pomodoroBreakLong bool
)

func init() {
	rootCmd.AddCommand(pomodoroCmd)
	pomodoroCmd.AddCommand(pomodoroWorkCmd)
	pomodoroCmd.AddCommand(pomodoroBreakCmd)

	pomodoroWorkCmd.Flags().StringVarP(&pomodoroWorkName, "name", "n", "", "Session name")
	pomodoroBreakCmd.Flags().BoolVarP(&pomodoroBreakLong, "long", "l", false, "Take a long break")
}

func runPomodoroWork(cmd *cobra.Command, args []string) error {
	return startPomodoro(func(ctx context.Context, svcs *services) (*domain.Session, int64, error) {
		session, err := svcs.pomodoros.StartWork(ctx, pomodoroWorkName)
		return session, svcs.pomodoros.GetDurations().WorkSeconds, err
	})
}

func runPomodoroBreak(cmd *cobra.Command, args []string) error {
	return startPomodoro(func(ctx context.Context, svcs *services) (*domain.Session, int64, error) {
		session, err := svcs.pomodoros.StartBreak(ctx, pomodoroBreakLong)
		durations := svcs.pomodoros.GetDurations()
		seconds := durations.BreakSeconds
		if pomodoroBreakLong {
			seconds = durations.LongBreakSeconds
		}
		return session, seconds, err
	})
}

func startPomodoro(start func(context.Context, *services) (*domain.Session, int64, error)) error {
	ctx := context.Background()
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()
	svcs := newServices(ctx, db)
	defer svcs.close(ctx)

	session, seconds, err := start(ctx, svcs)
	if err != nil {
		return fmt.Errorf("failed to start pomodoro session: %w", err)
	}

	fmt.Printf("Started %s (%s, %s)\n", session.Name, session.ID, util.FormatDuration(seconds))
	return nil
}
