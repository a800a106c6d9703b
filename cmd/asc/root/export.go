package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func newExportCmd(opts *globalOpts) *cobra.Command {
	return &cobra.Command{
		Use:   "export",
		Short: "Print the stored document as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			a, err := openApp(ctx, opts)
			if err != nil {
				return err
			}
			defer a.Close()

			data, err := a.store.Export(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		},
	}
}
