package root

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"ascend/internal/engine"
	"ascend/internal/ui"
)

func newMeasureCmd(opts *globalOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "measure <metric> <value>",
		Short: "Record a body measurement (" + strings.Join(engine.Metrics, "|") + ")",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 2 {
				return errors.New("metric and value are required")
			}
			if _, err := strconv.ParseFloat(args[1], 64); err != nil {
				return errors.New("value must be a number")
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

			value, _ := strconv.ParseFloat(args[1], 64)
			if _, err := a.svc.LogMeasurement(ctx, args[0], value); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s = %g\n", ui.Good.Render(ui.IconRuler+" Recorded"), strings.ToLower(args[0]), value)
			return nil
		},
	}

	return cmd
}
