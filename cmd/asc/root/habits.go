package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"ascend/internal/engine"
	"ascend/internal/ui"
)

func newHabitsCmd(opts *globalOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "habits",
		Short: "List habits with today's state and streaks",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			a, err := openApp(ctx, opts)
			if err != nil {
				return err
			}
			defer a.Close()

			doc := a.svc.Document()
			today := a.svc.Reducer().Today()
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconFire, "Habits"))
			if len(doc.Habits) == 0 {
				fmt.Fprintln(out, ui.Muted.Render("(none)"))
				return nil
			}
			for _, h := range doc.Habits {
				mark := ui.IconTodo
				if h.CompletedOn(today) {
					mark = ui.IconDone
				}
				fmt.Fprintf(out, "%s %s %s %s %s\n",
					mark,
					ui.Key.Render(h.ID),
					ui.CategoryIcon(h.Category)+" "+h.Name,
					ui.Gold.Render(fmt.Sprintf("+%d XP", h.XPValue)),
					ui.Muted.Render(fmt.Sprintf("(%s, streak %d)", h.Frequency, engine.HabitStreak(h, today))),
				)
			}
			return nil
		},
	}

	return cmd
}
