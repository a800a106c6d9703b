package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"ascend/internal/document"
	"ascend/internal/engine"
	"ascend/internal/ui"
)

func newStatusCmd(opts *globalOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show level, XP and today's progress",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			a, err := openApp(ctx, opts)
			if err != nil {
				return err
			}
			defer a.Close()

			doc := a.svc.Document()
			today := a.svc.Reducer().Today()
			level := doc.Level()
			next := document.XPRequiredForLevel(level + 1)
			out := cmd.OutOrStdout()

			fmt.Fprintln(out, ui.Heading(ui.IconSparkle, doc.User.Name+" — "+doc.User.Title))
			fmt.Fprintln(out, ui.LabelValue("Level", level))
			fmt.Fprintln(out, ui.LabelValue("XP", fmt.Sprintf("%d %s %s", doc.Stats.XP, ui.LevelBar(doc.Stats.XP, 20), ui.Muted.Render(fmt.Sprintf("(%d to level %d)", next-doc.Stats.XP, level+1)))))
			fmt.Fprintln(out, ui.LabelValue("Streak", doc.Stats.Streak))
			fmt.Fprintln(out, "")

			done, xp := engine.CompletedToday(doc, today)
			fmt.Fprintln(out, ui.H2.Render("📅 Today ("+today+")"))
			fmt.Fprintf(out, "- %s %d/%d %s\n", ui.Key.Render("Habits:"), done, len(doc.Habits), ui.Muted.Render(fmt.Sprintf("(+%d XP)", xp)))
			if goal := doc.Settings.DailyXPGoal; goal > 0 {
				fmt.Fprintf(out, "- %s %s\n", ui.Key.Render("Daily goal:"), ui.ProgressBar(xp, goal, 20))
			}
			fmt.Fprintln(out, "")

			active := 0
			var income float64
			for _, p := range doc.Projects {
				if p.Status != document.StatusCompleted {
					active++
				}
				income += p.Income
			}
			fmt.Fprintln(out, ui.H2.Render(ui.IconBox+" Projects"))
			fmt.Fprintf(out, "- %s %d %s\n", ui.Key.Render("Open:"), active, ui.Muted.Render(fmt.Sprintf("of %d", len(doc.Projects))))
			fmt.Fprintf(out, "- %s %.2f\n", ui.Key.Render("Income:"), income)
			fmt.Fprintln(out, "")

			checker := engine.NewAchievementChecker(doc, today)
			fmt.Fprintln(out, ui.LabelValue(ui.IconTrophy+" Achievements", fmt.Sprintf("%d/%d", checker.CountEarned(), checker.CountTotal())))
			return nil
		},
	}

	return cmd
}
