package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "focustrack",
	Short: "Work session and productivity tracking",
	Long: `focustrack tracks work sessions and the application focus intervals
inside them, classifies each interval as productive, distracting or neutral,
and aggregates everything into productivity reports.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
