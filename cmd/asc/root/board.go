package root

import (
	"context"

	"github.com/spf13/cobra"

	"ascend/internal/tui"
)

func newBoardCmd(opts *globalOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "board",
		Short: "Open the TUI dashboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			a, err := openApp(ctx, opts)
			if err != nil {
				return err
			}
			defer a.Close()

			return tui.RunBoard(ctx, a.svc, cmd.OutOrStdout())
		},
	}

	return cmd
}
