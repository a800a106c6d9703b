package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"ascend/internal/ui"
)

func newToggleCmd(opts *globalOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "toggle <habit-id>",
		Short: "Check or uncheck a habit for today",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("habit id is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			a, err := openApp(ctx, opts)
			if err != nil {
				return err
			}
			defer a.Close()

			id := args[0]
			before := a.svc.Document()
			idx := before.HabitByID(id)
			if idx < 0 {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Warn.Render(ui.IconWarn+" No habit "+id+"; nothing changed"))
				return nil
			}

			after := a.svc.ToggleHabit(ctx, id)
			h := after.Habits[idx]
			delta := after.Stats.XP - before.Stats.XP
			out := cmd.OutOrStdout()
			if h.CompletedOn(a.svc.Reducer().Today()) {
				fmt.Fprintf(out, "%s %s %s\n", ui.Good.Render(ui.IconDone+" Done"), h.Name, ui.Gold.Render(fmt.Sprintf("(+%d XP)", delta)))
			} else {
				fmt.Fprintf(out, "%s %s %s\n", ui.Warn.Render(ui.IconUndo+" Unchecked"), h.Name, ui.Muted.Render(fmt.Sprintf("(%+d XP)", delta)))
			}
			printLevelChange(out, before.Level(), after.Level())
			return nil
		},
	}

	return cmd
}
