package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"ascend/internal/ui"
)

func newAchievementsCmd(opts *globalOpts) *cobra.Command {
	return &cobra.Command{
		Use:   "achievements",
		Short: "List achievements",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			a, err := openApp(ctx, opts)
			if err != nil {
				return err
			}
			defer a.Close()

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconTrophy, "Achievements"))
			for _, ach := range a.svc.Achievements() {
				if ach.Earned {
					fmt.Fprintf(out, "%s %s %s\n", ach.Icon, ui.Gold.Render(ach.Name), ui.Muted.Render(ach.Description))
				} else {
					fmt.Fprintf(out, "🔒 %s %s\n", ui.Muted.Render(ach.Name), ui.Muted.Render(ach.Description))
				}
			}
			return nil
		},
	}
}
