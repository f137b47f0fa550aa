package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/vasco-fernandes21/starsoftflow/internal/cli/formatter"
	"github.com/vasco-fernandes21/starsoftflow/internal/domain"
	"github.com/vasco-fernandes21/starsoftflow/internal/draft"
	"github.com/vasco-fernandes21/starsoftflow/internal/phase"
)

// starsoftHuhTheme returns a custom huh theme using the existing Gruvbox palette.
func starsoftHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

func newForm(groups ...*huh.Group) *huh.Form {
	return huh.NewForm(groups...).WithTheme(starsoftHuhTheme()).WithShowHelp(false)
}

func validateDate(s string) error {
	_, err := draft.ParseDate(s)
	return err
}

func validateDecimal(s string) error {
	_, err := draft.ParseDecimal(s)
	return err
}

func validateRequired(s string) error {
	if s == "" {
		return fmt.Errorf("required")
	}
	return nil
}

func validateIntRange(low, high int) func(string) error {
	return func(s string) error {
		n, err := strconv.Atoi(s)
		if err != nil {
			return fmt.Errorf("not a number")
		}
		if n < low || n > high {
			return fmt.Errorf("out of range %d-%d", low, high)
		}
		return nil
	}
}

// wizardChoice is what the user picks after finishing a phase form.
type wizardChoice string

const (
	choiceContinue wizardChoice = "continue"
	choiceBack     wizardChoice = "back"
	choiceSave     wizardChoice = "save"
	choiceSubmit   wizardChoice = "submit"
	choiceQuit     wizardChoice = "quit"
	choiceJumped   wizardChoice = "jumped"
)

// runDraftWizard drives the phase workflow over one draft aggregate. Every
// structural edit goes through draft.Apply; a rejected edit leaves the
// aggregate untouched and the wizard running.
func runDraftWizard(app *App, state *domain.Project, draftID, title string) error {
	if state.ID == "" {
		state.ID = draft.NewEntityID()
		state.State = domain.ProjectDraft
	}

	nav := phase.NewNavigator()

	for {
		var err error
		switch nav.Current() {
		case phase.PhaseBasicInfo:
			state, err = runBasicInfoPhase(state)
		case phase.PhaseFinance:
			state, err = runFinancePhase(state)
		case phase.PhaseStructure:
			state, err = runStructurePhase(state)
		case phase.PhaseResources:
			state, err = runResourcesPhase(state)
		case phase.PhaseSummary:
			fmt.Print(formatter.FormatProjectDetail(state, phase.Evaluate(state)))
		}
		if err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return nil
			}
			return err
		}

		choice, err := promptNavigation(nav)
		if err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return nil
			}
			return err
		}

		switch choice {
		case choiceContinue:
			nav.Next()
		case choiceBack:
			nav.Previous()
		case choiceSave:
			draftID, title, err = saveDraft(app, state, draftID, title)
			if err != nil {
				return err
			}
			fmt.Printf("Saved draft %s\n", draftID)
		case choiceSubmit:
			done, err := submitDraft(app, state, draftID)
			if err != nil {
				return err
			}
			if done {
				return nil
			}
		case choiceQuit:
			return nil
		}
	}
}

func promptNavigation(nav *phase.Navigator) (wizardChoice, error) {
	options := []huh.Option[wizardChoice]{}
	if nav.Current() == phase.PhaseSummary {
		options = append(options, huh.NewOption("Submit project", choiceSubmit))
	} else {
		options = append(options, huh.NewOption("Continue", choiceContinue))
	}
	for _, p := range phase.Order {
		if p != nav.Current() {
			options = append(options, huh.NewOption(fmt.Sprintf("Go to %s", p), wizardChoice(p)))
		}
	}
	options = append(options,
		huh.NewOption("Save draft", choiceSave),
		huh.NewOption("Quit without saving", choiceQuit),
	)

	var choice wizardChoice
	form := newForm(huh.NewGroup(
		huh.NewSelect[wizardChoice]().
			Title(fmt.Sprintf("Phase: %s", nav.Current())).
			Options(options...).
			Value(&choice),
	))
	if err := form.Run(); err != nil {
		return choiceQuit, err
	}

	// Direct phase jumps reuse the choice value as the phase name.
	for _, p := range phase.Order {
		if choice == wizardChoice(p) {
			_ = nav.JumpTo(p)
			return choiceJumped, nil
		}
	}
	return choice, nil
}

func saveDraft(app *App, state *domain.Project, draftID, title string) (string, string, error) {
	if title == "" {
		title = state.Name
		form := newForm(huh.NewGroup(
			huh.NewInput().Title("Draft title").Value(&title),
		))
		if err := form.Run(); err != nil {
			return draftID, title, err
		}
	}
	id, err := app.Drafts.Save(context.Background(), draftID, title, state)
	if err != nil {
		// The aggregate stays live in memory; report and keep going.
		fmt.Println(formatter.StyleRed.Render(fmt.Sprintf("Save failed: %v", err)))
		return draftID, title, nil
	}
	return id, title, nil
}

func submitDraft(app *App, state *domain.Project, draftID string) (bool, error) {
	id, err := app.Submissions.Submit(context.Background(), state)
	if err != nil {
		var incomplete *phase.IncompleteError
		if errors.As(err, &incomplete) {
			fmt.Println(formatter.StyleRed.Render("Not ready for submission:"))
			for _, p := range incomplete.Phases {
				fmt.Printf("  %s %s\n", formatter.PhaseMark(false), p)
			}
			return false, nil
		}
		return false, err
	}

	fmt.Printf("Submitted project %s for validation.\n", id)
	if draftID != "" {
		if err := app.Drafts.Delete(context.Background(), draftID); err != nil {
			fmt.Println(formatter.Dim(fmt.Sprintf("Could not remove draft %s: %v", draftID, err)))
		}
	}
	return true, nil
}
