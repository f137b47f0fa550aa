package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/vasco-fernandes21/starsoftflow/internal/allocation"
	"github.com/vasco-fernandes21/starsoftflow/internal/cli/formatter"
	"github.com/vasco-fernandes21/starsoftflow/internal/excel"
)

func newAllocCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "alloc",
		Short: "View and edit monthly occupancy allocations",
	}

	cmd.AddCommand(
		newAllocShowCmd(app),
		newAllocEditCmd(app),
		newAllocSetCmd(app),
		newAllocReportCmd(app),
	)

	return cmd
}

func newAllocShowCmd(app *App) *cobra.Command {
	var year int
	var feedStr string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the occupancy matrix for a year",
		RunE: func(cmd *cobra.Command, args []string) error {
			if year == 0 {
				year = time.Now().Year()
			}
			overview, err := app.Allocations.GetAllocations(context.Background(), app.UserID, year)
			if err != nil {
				return err
			}

			switch feedStr {
			case "real":
				fmt.Print(formatter.FormatAllocationMatrix(overview.Real, allocation.FeedReal, year))
			case "submitted":
				fmt.Print(formatter.FormatAllocationMatrix(overview.Submitted, allocation.FeedSubmitted, year))
			case "both":
				fmt.Print(formatter.FormatAllocationMatrix(overview.Real, allocation.FeedReal, year))
				fmt.Print(formatter.FormatAllocationMatrix(overview.Submitted, allocation.FeedSubmitted, year))
			default:
				return fmt.Errorf("unknown feed %q (want real, submitted or both)", feedStr)
			}

			if len(overview.AvailableYears) > 0 {
				fmt.Printf("%s %v\n", formatter.Dim("Years with data:"), overview.AvailableYears)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&year, "year", 0, "Year to show (default: current)")
	cmd.Flags().StringVar(&feedStr, "feed", "both", "Feed to show: real, submitted or both")

	return cmd
}

func newAllocEditCmd(app *App) *cobra.Command {
	var year int

	cmd := &cobra.Command{
		Use:   "edit",
		Short: "Edit the occupancy grid interactively",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && !app.IsInteractive() {
				return fmt.Errorf("the occupancy editor needs an interactive terminal")
			}
			if year == 0 {
				year = time.Now().Year()
			}
			overview, err := app.Allocations.GetAllocations(context.Background(), app.UserID, year)
			if err != nil {
				return err
			}

			model := newAllocEditor(app.Allocations, app.UserID, year, overview)
			final, err := tea.NewProgram(model).Run()
			if err != nil {
				return err
			}
			if m, ok := final.(allocEditorModel); ok && m.err != nil {
				return m.err
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&year, "year", 0, "Year to edit (default: current)")

	return cmd
}

func newAllocSetCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set <workpackage-id> <month> <year> <occupancy>",
		Short: "Set one real occupancy cell",
		Long: "Set one cell of the real occupancy matrix. Occupancy uses comma " +
			"notation between 0 and 1, e.g. 0,5 for half capacity; an empty " +
			"string clears the cell.",
		Args: cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			month, err := strconv.Atoi(args[1])
			if err != nil || month < 1 || month > 12 {
				return fmt.Errorf("invalid month %q", args[1])
			}
			year, err := strconv.Atoi(args[2])
			if err != nil {
				return fmt.Errorf("invalid year %q", args[2])
			}

			ctx := context.Background()
			overview, err := app.Allocations.GetAllocations(ctx, app.UserID, year)
			if err != nil {
				return err
			}

			rec := allocation.NewReconciler(overview.Real, overview.Submitted)
			if err := rec.Stage(args[0], month, year, args[3]); err != nil {
				return fmt.Errorf("occupancy %q: %w", args[3], err)
			}
			if err := app.Allocations.SaveStaged(ctx, app.UserID, rec); err != nil {
				return err
			}

			fmt.Printf("Set %s %d/%d to %s\n", args[0], month, year, args[3])
			return nil
		},
	}

	return cmd
}

func newAllocReportCmd(app *App) *cobra.Command {
	var year int
	var out string

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Export the occupancy matrix as an XLSX workbook",
		RunE: func(cmd *cobra.Command, args []string) error {
			if year == 0 {
				year = time.Now().Year()
			}
			overview, err := app.Allocations.GetAllocations(context.Background(), app.UserID, year)
			if err != nil {
				return err
			}

			data, err := app.Reports.Generate(excel.Report{
				UserID:    app.UserID,
				Year:      year,
				Real:      overview.Real,
				Submitted: overview.Submitted,
			})
			if err != nil {
				return fmt.Errorf("generating report: %w", err)
			}
			if err := os.WriteFile(out, data, 0o644); err != nil {
				return fmt.Errorf("writing %s: %w", out, err)
			}

			fmt.Printf("Wrote %s\n", out)
			return nil
		},
	}

	cmd.Flags().IntVar(&year, "year", 0, "Year to export (default: current)")
	cmd.Flags().StringVar(&out, "out", "allocations.xlsx", "Output file path")

	return cmd
}
