package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vasco-fernandes21/starsoftflow/internal/cli/formatter"
	"github.com/vasco-fernandes21/starsoftflow/internal/codec"
	"github.com/vasco-fernandes21/starsoftflow/internal/domain"
	"github.com/vasco-fernandes21/starsoftflow/internal/phase"
)

func newDraftCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "draft",
		Short: "Create and manage project drafts",
	}

	cmd.AddCommand(
		newDraftNewCmd(app),
		newDraftResumeCmd(app),
		newDraftListCmd(app),
		newDraftShowCmd(app),
		newDraftDeleteCmd(app),
		newDraftImportCmd(app),
		newDraftExportCmd(app),
	)

	return cmd
}

func newDraftNewCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "new",
		Short: "Start the project creation wizard",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && !app.IsInteractive() {
				return fmt.Errorf("the draft wizard needs an interactive terminal")
			}
			return runDraftWizard(app, &domain.Project{}, "", "")
		},
	}
}

func newDraftResumeCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "resume <draft-id>",
		Short: "Resume a saved draft in the wizard",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && !app.IsInteractive() {
				return fmt.Errorf("the draft wizard needs an interactive terminal")
			}
			p, title, err := app.Drafts.Restore(context.Background(), args[0])
			if err != nil {
				return err
			}
			return runDraftWizard(app, p, args[0], title)
		},
	}
}

func newDraftListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List saved drafts",
		RunE: func(cmd *cobra.Command, args []string) error {
			drafts, err := app.Drafts.List(context.Background())
			if err != nil {
				return err
			}
			if len(drafts) == 0 {
				fmt.Println("No drafts saved.")
				return nil
			}
			fmt.Print(formatter.FormatDraftList(drafts))
			return nil
		},
	}
}

func newDraftShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <draft-id>",
		Short: "Show a saved draft and its phase completeness",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, _, err := app.Drafts.Restore(context.Background(), args[0])
			if err != nil {
				return err
			}
			fmt.Print(formatter.FormatProjectDetail(p, phase.Evaluate(p)))
			return nil
		},
	}
}

func newDraftImportCmd(app *App) *cobra.Command {
	var title string

	cmd := &cobra.Command{
		Use:   "import <file.json>",
		Short: "Import a project draft from a JSON file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			p, err := codec.Decode(data)
			if err != nil {
				return fmt.Errorf("parsing %s: %w", args[0], err)
			}
			if title == "" {
				title = p.Name
			}
			id, err := app.Drafts.Save(context.Background(), "", title, p)
			if err != nil {
				return err
			}
			fmt.Printf("Imported %s as draft %s\n", args[0], id)
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Draft title (default: project name)")

	return cmd
}

func newDraftExportCmd(app *App) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "export <draft-id>",
		Short: "Export a saved draft as a JSON file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, _, err := app.Drafts.Restore(context.Background(), args[0])
			if err != nil {
				return err
			}
			data, err := codec.Encode(p)
			if err != nil {
				return err
			}
			if out == "" {
				out = args[0] + ".json"
			}
			if err := os.WriteFile(out, data, 0o644); err != nil {
				return err
			}
			fmt.Printf("Wrote %s\n", out)
			return nil
		},
	}

	cmd.Flags().StringVar(&out, "out", "", "Output file path (default: <draft-id>.json)")

	return cmd
}

func newDraftDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <draft-id>",
		Short: "Delete a saved draft",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Drafts.Delete(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Printf("Deleted draft %s\n", args[0])
			return nil
		},
	}
}
