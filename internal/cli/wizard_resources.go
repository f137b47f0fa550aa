package cli

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/huh"

	"github.com/vasco-fernandes21/starsoftflow/internal/cli/formatter"
	"github.com/vasco-fernandes21/starsoftflow/internal/domain"
	"github.com/vasco-fernandes21/starsoftflow/internal/draft"
)

type resourceAction string

const (
	resAdd        resourceAction = "add"
	resUpdate     resourceAction = "update"
	resRemoveUser resourceAction = "remove-user"
	resDone       resourceAction = "done"
)

// runResourcesPhase loops a menu of allocation edits until the user is done.
func runResourcesPhase(state *domain.Project) (*domain.Project, error) {
	for {
		count := 0
		for i := range state.WorkPackages {
			count += len(state.WorkPackages[i].Allocations)
		}

		var pick resourceAction
		form := newForm(huh.NewGroup(
			huh.NewSelect[resourceAction]().
				Title(fmt.Sprintf("Resources — %d allocations", count)).
				Options(
					huh.NewOption("Add allocation", resAdd),
					huh.NewOption("Update allocation", resUpdate),
					huh.NewOption("Remove a user's allocations", resRemoveUser),
					huh.NewOption("Done with resources", resDone),
				).
				Value(&pick),
		))
		if err := form.Run(); err != nil {
			return state, err
		}

		var err error
		switch pick {
		case resAdd:
			state, err = wizardAddAllocation(state)
		case resUpdate:
			state, err = wizardUpdateAllocation(state)
		case resRemoveUser:
			state, err = wizardRemoveUserAllocations(state)
		case resDone:
			return state, nil
		}
		if err != nil {
			return state, err
		}
	}
}

func allocationFields(input *draft.AllocationInput, month, year *string) *huh.Group {
	return huh.NewGroup(
		huh.NewInput().Title("User").Value(&input.UserID).Validate(validateRequired),
		huh.NewInput().Title("Month (1-12)").Value(month).Validate(validateIntRange(1, 12)),
		huh.NewInput().Title("Year").Value(year).Validate(validateIntRange(2000, 2100)),
		huh.NewInput().Title("Occupancy (0-1, e.g. 0,5)").Value(&input.Occupancy).Validate(validateDecimal),
	)
}

func wizardAddAllocation(state *domain.Project) (*domain.Project, error) {
	wpID, err := selectWorkPackage(state, "Allocate on which work package?")
	if err != nil {
		return handleSelectErr(state, err)
	}

	var input draft.AllocationInput
	var month, year string
	if err := newForm(allocationFields(&input, &month, &year)).Run(); err != nil {
		return state, err
	}
	input.Month, _ = strconv.Atoi(month)
	input.Year, _ = strconv.Atoi(year)

	return applyEdit(state, draft.AddResourceAllocation{WorkPackageID: wpID, Input: input}), nil
}

func wizardUpdateAllocation(state *domain.Project) (*domain.Project, error) {
	wpID, err := selectWorkPackage(state, "Which work package?")
	if err != nil {
		return handleSelectErr(state, err)
	}
	wp := state.WorkPackageByID(wpID)
	if len(wp.Allocations) == 0 {
		fmt.Println(formatter.Dim("No allocations in this work package."))
		return state, nil
	}

	options := make([]huh.Option[int], 0, len(wp.Allocations))
	for i := range wp.Allocations {
		a := &wp.Allocations[i]
		options = append(options, huh.NewOption(
			fmt.Sprintf("%s %d/%d — %s", a.UserID, a.Month, a.Year, a.Occupancy), i))
	}

	var idx int
	if err := newForm(huh.NewGroup(
		huh.NewSelect[int]().Title("Update which allocation?").Options(options...).Value(&idx),
	)).Run(); err != nil {
		return state, err
	}
	target := wp.Allocations[idx]

	occupancy := target.Occupancy.String()
	if err := newForm(huh.NewGroup(
		huh.NewInput().Title("New occupancy").Value(&occupancy).Validate(validateDecimal),
	)).Run(); err != nil {
		return state, err
	}

	return applyEdit(state, draft.UpdateResourceAllocation{
		WorkPackageID: wpID,
		UserID:        target.UserID,
		Month:         target.Month,
		Year:          target.Year,
		Occupancy:     occupancy,
	}), nil
}

func wizardRemoveUserAllocations(state *domain.Project) (*domain.Project, error) {
	wpID, err := selectWorkPackage(state, "Which work package?")
	if err != nil {
		return handleSelectErr(state, err)
	}
	wp := state.WorkPackageByID(wpID)

	seen := map[string]bool{}
	var options []huh.Option[string]
	for i := range wp.Allocations {
		u := wp.Allocations[i].UserID
		if !seen[u] {
			seen[u] = true
			options = append(options, huh.NewOption(u, u))
		}
	}
	if len(options) == 0 {
		fmt.Println(formatter.Dim("No allocations in this work package."))
		return state, nil
	}

	var userID string
	if err := newForm(huh.NewGroup(
		huh.NewSelect[string]().Title("Remove allocations of which user?").Options(options...).Value(&userID),
	)).Run(); err != nil {
		return state, err
	}

	return applyEdit(state, draft.RemoveUserAllocations{WorkPackageID: wpID, UserID: userID}), nil
}
