package root

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"ascend/internal/ui"
)

func newIncomeCmd(opts *globalOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "income <project-id> <amount>",
		Short: "Record income earned by a project",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 2 {
				return errors.New("project id and amount are required")
			}
			if _, err := strconv.ParseFloat(args[1], 64); err != nil {
				return errors.New("amount must be a number")
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
			amount, _ := strconv.ParseFloat(args[1], 64)
			if a.svc.Document().ProjectByID(id) < 0 {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Warn.Render(ui.IconWarn+" No project "+id+"; nothing changed"))
				return nil
			}
			doc, err := a.svc.LogIncome(ctx, id, amount)
			if err != nil {
				return err
			}
			p := doc.Projects[doc.ProjectByID(id)]
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n", ui.Good.Render(fmt.Sprintf("%s +%.2f", ui.IconMoney, amount)), p.Title, ui.Muted.Render(fmt.Sprintf("(total %.2f)", p.Income)))
			return nil
		},
	}

	return cmd
}
