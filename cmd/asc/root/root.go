package root

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"ascend/internal/ui"
)

const Version = "0.3.0"

// globalOpts holds the persistent flags shared by every subcommand.
type globalOpts struct {
	configPath string
	dbPath     string
	backend    string
	verbose    bool
}

func newRootCmd() *cobra.Command {
	opts := &globalOpts{}
	rootCmd := &cobra.Command{
		Use:           "asc",
		Short:         "Ascend — local-first self-improvement tracker",
		Long:          "Ascend tracks habits, study progress, projects and XP in a single local document.",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")

	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "Config file (default ~/.config/ascend/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&opts.dbPath, "db", "", "Storage path (overrides config)")
	rootCmd.PersistentFlags().StringVar(&opts.backend, "backend", "", "Storage backend: sqlite|file|memory (overrides config)")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Debug logging on stderr")

	rootCmd.AddCommand(
		newStatusCmd(opts),
		newHabitsCmd(opts),
		newToggleCmd(opts),
		newXPCmd(opts),
		newProjectCmd(opts),
		newIncomeCmd(opts),
		newMeasureCmd(opts),
		newLogsCmd(opts),
		newAchievementsCmd(opts),
		newExportCmd(opts),
		newResetCmd(opts),
		newBoardCmd(opts),
	)
	return rootCmd
}

func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Bad.Render(ui.IconError+" "+err.Error()))
		os.Exit(1)
	}
}
