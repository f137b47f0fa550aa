package cli

import (
	"github.com/spf13/cobra"

	"github.com/vasco-fernandes21/starsoftflow/internal/excel"
	"github.com/vasco-fernandes21/starsoftflow/internal/service"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Drafts      service.DraftService
	Submissions service.SubmissionService
	Allocations service.AllocationService
	Reports     *excel.Generator

	// UserID scopes the allocation commands; typically from config.
	UserID string

	// IsInteractive reports whether stdin is a terminal; the draft wizard
	// refuses to start without one.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "starsoftflow" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "starsoftflow",
		Short: "Project planning, submission and resource occupancy tracking",
	}

	root.AddCommand(
		newDraftCmd(app),
		newProjectCmd(app),
		newAllocCmd(app),
	)

	return root
}
