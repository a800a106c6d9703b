package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"ascend/internal/ui"
)

func newResetCmd(opts *globalOpts) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Delete the stored document (next run starts from defaults)",
		Long: `Delete the stored document.

This will:
- Remove all habits progress, projects, logs and XP
- Restore the default habits, exams and skills on the next run

Use export first if you want a copy.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return errors.New("refusing to reset without --yes")
			}
			ctx := context.Background()
			a, err := openApp(ctx, opts)
			if err != nil {
				return err
			}
			defer a.Close()

			if err := a.store.Reset(ctx); err != nil {
				return err
			}
			doc := a.svc.Reload(ctx)
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", ui.Warn.Render(ui.IconUndo+" Reset"), ui.Muted.Render(fmt.Sprintf("(level %d, %d habits)", doc.Level(), len(doc.Habits))))
			return nil
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "Confirm the reset")
	return cmd
}
