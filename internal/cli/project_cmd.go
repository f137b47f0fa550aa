package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vasco-fernandes21/starsoftflow/internal/cli/formatter"
	"github.com/vasco-fernandes21/starsoftflow/internal/domain"
	"github.com/vasco-fernandes21/starsoftflow/internal/draft"
	"github.com/vasco-fernandes21/starsoftflow/internal/phase"
	"github.com/vasco-fernandes21/starsoftflow/internal/repository"
)

func newProjectCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "project",
		Short: "Inspect and validate submitted projects",
	}

	cmd.AddCommand(
		newProjectShowCmd(app),
		newProjectBudgetCmd(app),
		newProjectValidateCmd(app),
	)

	return cmd
}

func newProjectShowCmd(app *App) *cobra.Command {
	var view string

	cmd := &cobra.Command{
		Use:   "show <project-id>",
		Short: "Show a submitted project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			p, err := app.Submissions.Get(ctx, args[0])
			if err != nil {
				return err
			}

			mode := domain.ViewReal
			if view == "submitted" {
				mode = domain.ViewSubmitted
			} else if view != "real" {
				return fmt.Errorf("unknown view %q (want real or submitted)", view)
			}

			snap, err := app.Submissions.Snapshot(ctx, args[0])
			if err != nil && !isNotFound(err) {
				return err
			}

			shown := draft.SelectView(p, snap, mode)
			fmt.Print(formatter.FormatProjectDetail(shown, phase.Evaluate(shown)))
			return nil
		},
	}

	cmd.Flags().StringVar(&view, "view", "real", "Which version to show: real or submitted")

	return cmd
}

func newProjectBudgetCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "budget <project-id>",
		Short: "Show material cost totals by expense category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := app.Submissions.Get(context.Background(), args[0])
			if err != nil {
				return err
			}
			fmt.Print(formatter.FormatBudget(domain.ProjectBudget(p)))
			return nil
		},
	}
}

func newProjectValidateCmd(app *App) *cobra.Command {
	var approve, reject bool

	cmd := &cobra.Command{
		Use:   "validate <project-id>",
		Short: "Approve or reject a pending project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if approve == reject {
				return fmt.Errorf("pass exactly one of --approve or --reject")
			}
			outcome, err := app.Submissions.Validate(context.Background(), args[0], approve)
			if err != nil {
				return err
			}
			if outcome.ProjectRemains {
				fmt.Printf("Project %s approved; snapshot captured.\n", outcome.ProjectID)
			} else {
				fmt.Printf("Project %s rejected and removed.\n", outcome.ProjectID)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&approve, "approve", false, "Approve the project")
	cmd.Flags().BoolVar(&reject, "reject", false, "Reject the project")

	return cmd
}

func isNotFound(err error) bool {
	return errors.Is(err, repository.ErrNotFound)
}
