package root

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"ascend/internal/ui"
)

func newXPCmd(opts *globalOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "xp <amount> [label...]",
		Short: "Grant experience points",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("amount is required")
			}
			if _, err := strconv.Atoi(args[0]); err != nil {
				return errors.New("amount must be an integer")
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

			amount, _ := strconv.Atoi(args[0])
			label := strings.TrimSpace(strings.Join(args[1:], " "))
			if label == "" {
				label = "Manual XP"
			}

			before := a.svc.Document()
			after := a.svc.AddExperience(ctx, amount, label)
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s %s %s\n", ui.Gold.Render(fmt.Sprintf("%s %+d XP", ui.IconBolt, amount)), label, ui.Muted.Render(fmt.Sprintf("(total %d)", after.Stats.XP)))
			printLevelChange(out, before.Level(), after.Level())
			return nil
		},
	}

	return cmd
}

func printLevelChange(out io.Writer, before, after int) {
	if after > before {
		fmt.Fprintf(out, "%s %s\n", ui.BadgeLevelUp, ui.LabelValue("Level", fmt.Sprintf("%d → %d", before, after)))
	} else if after < before {
		fmt.Fprintln(out, ui.Warn.Render(fmt.Sprintf("%s Level decreased (%d → %d)", ui.IconWarn, before, after)))
	}
}
