package cli

import (
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/vasco-fernandes21/starsoftflow/internal/cli/formatter"
	"github.com/vasco-fernandes21/starsoftflow/internal/domain"
	"github.com/vasco-fernandes21/starsoftflow/internal/draft"
)

func strOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func dateOrEmpty(t *domain.Project) (string, string) {
	start, end := "", ""
	if t.StartDate != nil {
		start = t.StartDate.Format("2006-01-02")
	}
	if t.EndDate != nil {
		end = t.EndDate.Format("2006-01-02")
	}
	return start, end
}

// runBasicInfoPhase edits the project's identity and period. The form loops
// until the period is coherent (end strictly after start) or left unset.
func runBasicInfoPhase(state *domain.Project) (*domain.Project, error) {
	name := state.Name
	description := strOrEmpty(state.Description)
	start, end := dateOrEmpty(state)

	for {
		form := newForm(huh.NewGroup(
			huh.NewInput().Title("Project name").Value(&name).Validate(validateRequired),
			huh.NewInput().Title("Description").Value(&description),
			huh.NewInput().Title("Start date (YYYY-MM-DD)").Value(&start).Validate(validateDate),
			huh.NewInput().Title("End date (YYYY-MM-DD)").Value(&end).Validate(validateDate),
		))
		if err := form.Run(); err != nil {
			return state, err
		}

		next := *state
		next.Name = name
		next.Description = draft.OptionalText(description)
		next.StartDate, _ = draft.ParseDate(start)
		next.EndDate, _ = draft.ParseDate(end)

		if err := next.ValidatePeriod(); err != nil {
			fmt.Println(formatter.StyleRed.Render(err.Error()))
			continue
		}
		return &next, nil
	}
}

// runFinancePhase edits the financial parameters. Decimal inputs accept both
// point and comma notation and keep full precision.
func runFinancePhase(state *domain.Project) (*domain.Project, error) {
	overhead := ""
	fundingRate := ""
	hourlyRate := ""
	if state.Overhead != nil {
		overhead = state.Overhead.String()
	}
	if state.FundingRate != nil {
		fundingRate = state.FundingRate.String()
	}
	if state.HourlyRate != nil {
		hourlyRate = state.HourlyRate.String()
	}
	fundingSource := strOrEmpty(state.FundingSourceID)
	responsible := strOrEmpty(state.ResponsibleID)

	form := newForm(huh.NewGroup(
		huh.NewInput().Title("Overhead rate").Value(&overhead).Validate(validateDecimal),
		huh.NewInput().Title("Funding rate").Value(&fundingRate).Validate(validateDecimal),
		huh.NewInput().Title("Hourly rate").Value(&hourlyRate).Validate(validateDecimal),
		huh.NewInput().Title("Funding source").Value(&fundingSource),
		huh.NewInput().Title("Responsible").Value(&responsible),
	))
	if err := form.Run(); err != nil {
		return state, err
	}

	next := *state
	next.Overhead, _ = draft.ParseDecimal(overhead)
	next.FundingRate, _ = draft.ParseDecimal(fundingRate)
	next.HourlyRate, _ = draft.ParseDecimal(hourlyRate)
	next.FundingSourceID = draft.OptionalText(fundingSource)
	next.ResponsibleID = draft.OptionalText(responsible)
	return &next, nil
}
