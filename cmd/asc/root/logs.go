package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"ascend/internal/document"
	"ascend/internal/ui"
)

func newLogsCmd(opts *globalOpts) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "logs",
		Short: "Show recent history (newest first)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			a, err := openApp(ctx, opts)
			if err != nil {
				return err
			}
			defer a.Close()

			logs := a.svc.Document().Logs
			if limit > 0 && len(logs) > limit {
				logs = logs[:limit]
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconScroll, "History"))
			if len(logs) == 0 {
				fmt.Fprintln(out, ui.Muted.Render("(empty)"))
				return nil
			}
			for _, e := range logs {
				fmt.Fprintf(out, "%s %s %s\n", ui.Muted.Render(e.Timestamp.Local().Format("2006-01-02 15:04")), formatValue(e), e.Label)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Entries to show (0 = all)")
	return cmd
}

func formatValue(e document.LogEntry) string {
	switch e.Type {
	case document.LogXP:
		if e.Value < 0 {
			return ui.Bad.Render(fmt.Sprintf("%+.0f XP", e.Value))
		}
		return ui.Gold.Render(fmt.Sprintf("%+.0f XP", e.Value))
	case document.LogIncome:
		return ui.Good.Render(fmt.Sprintf("%s %.2f", ui.IconMoney, e.Value))
	default:
		return ui.Key.Render(fmt.Sprintf("%s %g", ui.IconRuler, e.Value))
	}
}
