package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"ascend/internal/engine"
	"ascend/internal/ui"
)

func newProjectCmd(opts *globalOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "project",
		Short: "Manage projects",
	}
	cmd.AddCommand(
		newProjectAddCmd(opts),
		newProjectListCmd(opts),
		newProjectStatusCmd(opts),
	)
	return cmd
}

func newProjectAddCmd(opts *globalOpts) *cobra.Command {
	return &cobra.Command{
		Use:   "add",
		Short: "Start a new project (+100 XP)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			a, err := openApp(ctx, opts)
			if err != nil {
				return err
			}
			defer a.Close()

			before := a.svc.Document()
			after := a.svc.AddProject(ctx)
			p := after.Projects[0]
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s %s %s\n", ui.Good.Render(ui.IconPlus+" Created"), p.Title, ui.Muted.Render(fmt.Sprintf("(%s, due %s)", p.ID, p.DueDate)))
			fmt.Fprintln(out, ui.Gold.Render(fmt.Sprintf("%s +%d XP", ui.IconBolt, engine.ProjectInitXP)))
			printLevelChange(out, before.Level(), after.Level())
			return nil
		},
	}
}

func newProjectListCmd(opts *globalOpts) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List projects",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			a, err := openApp(ctx, opts)
			if err != nil {
				return err
			}
			defer a.Close()

			doc := a.svc.Document()
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconBox, "Projects"))
			if len(doc.Projects) == 0 {
				fmt.Fprintln(out, ui.Muted.Render("(none)"))
				return nil
			}
			for _, p := range doc.Projects {
				money := ""
				if p.IsMonetized {
					money = fmt.Sprintf(" %s %.2f", ui.IconMoney, p.Income)
				}
				due := ""
				if p.DueDate != "" {
					due = " due " + p.DueDate
				}
				fmt.Fprintf(out, "- %s %s [%s] %s%s\n",
					ui.Key.Render(p.ID), p.Title, ui.StatusText(p.Status),
					ui.Muted.Render(string(p.Priority)+due), money)
			}
			return nil
		},
	}
}

func newProjectStatusCmd(opts *globalOpts) *cobra.Command {
	return &cobra.Command{
		Use:   "status <project-id> <planning|active|done|hold>",
		Short: "Change a project's status",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 2 {
				return errors.New("project id and status are required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			status, err := engine.ParseProjectStatus(args[1])
			if err != nil {
				return err
			}
			ctx := context.Background()
			a, err := openApp(ctx, opts)
			if err != nil {
				return err
			}
			defer a.Close()

			if a.svc.Document().ProjectByID(args[0]) < 0 {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Warn.Render(ui.IconWarn+" No project "+args[0]+"; nothing changed"))
				return nil
			}
			if _, err := a.svc.SetProjectStatus(ctx, args[0], status); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s → %s\n", ui.Good.Render(ui.IconDone+" Updated"), args[0], ui.StatusText(status))
			return nil
		},
	}
}
