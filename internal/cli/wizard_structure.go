package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/charmbracelet/huh"

	"github.com/vasco-fernandes21/starsoftflow/internal/cli/formatter"
	"github.com/vasco-fernandes21/starsoftflow/internal/domain"
	"github.com/vasco-fernandes21/starsoftflow/internal/draft"
)

// applyEdit routes one action through the reducer and reports rejections
// without losing the current aggregate.
func applyEdit(state *domain.Project, action draft.Action) *domain.Project {
	next, err := draft.Apply(state, action)
	if err != nil {
		fmt.Println(formatter.StyleRed.Render(err.Error()))
		return state
	}
	return next
}

func selectWorkPackage(state *domain.Project, title string) (string, error) {
	if len(state.WorkPackages) == 0 {
		return "", fmt.Errorf("no work packages yet")
	}
	options := make([]huh.Option[string], 0, len(state.WorkPackages))
	for i := range state.WorkPackages {
		wp := &state.WorkPackages[i]
		options = append(options, huh.NewOption(wp.Name, wp.ID))
	}

	var id string
	form := newForm(huh.NewGroup(
		huh.NewSelect[string]().Title(title).Options(options...).Value(&id),
	))
	if err := form.Run(); err != nil {
		return "", err
	}
	return id, nil
}

func selectTask(wp *domain.WorkPackage, title string) (string, error) {
	if len(wp.Tasks) == 0 {
		return "", fmt.Errorf("no tasks in %s yet", wp.Name)
	}
	options := make([]huh.Option[string], 0, len(wp.Tasks))
	for i := range wp.Tasks {
		options = append(options, huh.NewOption(wp.Tasks[i].Name, wp.Tasks[i].ID))
	}

	var id string
	form := newForm(huh.NewGroup(
		huh.NewSelect[string]().Title(title).Options(options...).Value(&id),
	))
	if err := form.Run(); err != nil {
		return "", err
	}
	return id, nil
}

type structureAction string

const (
	structAddWP          structureAction = "add-wp"
	structEditWP         structureAction = "edit-wp"
	structRemoveWP       structureAction = "remove-wp"
	structAddTask        structureAction = "add-task"
	structToggleTask     structureAction = "toggle-task"
	structRemoveTask     structureAction = "remove-task"
	structAddDeliverable structureAction = "add-deliverable"
	structAddMaterial    structureAction = "add-material"
	structRemoveMaterial structureAction = "remove-material"
	structDone           structureAction = "done"
)

// runStructurePhase loops a menu of structural edits until the user is done.
func runStructurePhase(state *domain.Project) (*domain.Project, error) {
	for {
		var pick structureAction
		form := newForm(huh.NewGroup(
			huh.NewSelect[structureAction]().
				Title(fmt.Sprintf("Structure — %d work packages", len(state.WorkPackages))).
				Options(
					huh.NewOption("Add work package", structAddWP),
					huh.NewOption("Edit work package", structEditWP),
					huh.NewOption("Remove work package", structRemoveWP),
					huh.NewOption("Add task", structAddTask),
					huh.NewOption("Toggle task done", structToggleTask),
					huh.NewOption("Remove task", structRemoveTask),
					huh.NewOption("Add deliverable", structAddDeliverable),
					huh.NewOption("Add material", structAddMaterial),
					huh.NewOption("Remove material", structRemoveMaterial),
					huh.NewOption("Done with structure", structDone),
				).
				Value(&pick),
		))
		if err := form.Run(); err != nil {
			return state, err
		}

		var err error
		switch pick {
		case structAddWP:
			state, err = wizardAddWorkPackage(state)
		case structEditWP:
			state, err = wizardEditWorkPackage(state)
		case structRemoveWP:
			state, err = wizardRemoveWorkPackage(state)
		case structAddTask:
			state, err = wizardAddTask(state)
		case structToggleTask:
			state, err = wizardToggleTask(state)
		case structRemoveTask:
			state, err = wizardRemoveTask(state)
		case structAddDeliverable:
			state, err = wizardAddDeliverable(state)
		case structAddMaterial:
			state, err = wizardAddMaterial(state)
		case structRemoveMaterial:
			state, err = wizardRemoveMaterial(state)
		case structDone:
			return state, nil
		}
		if err != nil {
			return state, err
		}
	}
}

func wizardAddWorkPackage(state *domain.Project) (*domain.Project, error) {
	var input draft.WorkPackageInput
	form := newForm(huh.NewGroup(
		huh.NewInput().Title("Work package name").Value(&input.Name).Validate(validateRequired),
		huh.NewInput().Title("Description").Value(&input.Description),
		huh.NewInput().Title("Start date (YYYY-MM-DD)").Value(&input.StartDate).Validate(validateDate),
		huh.NewInput().Title("End date (YYYY-MM-DD)").Value(&input.EndDate).Validate(validateDate),
	))
	if err := form.Run(); err != nil {
		return state, err
	}
	return applyEdit(state, draft.AddWorkPackage{Input: input}), nil
}

func wizardEditWorkPackage(state *domain.Project) (*domain.Project, error) {
	id, err := selectWorkPackage(state, "Which work package?")
	if err != nil {
		return handleSelectErr(state, err)
	}
	wp := state.WorkPackageByID(id)

	name := wp.Name
	description := strOrEmpty(wp.Description)
	start, end := "", ""
	if wp.StartDate != nil {
		start = wp.StartDate.Format("2006-01-02")
	}
	if wp.EndDate != nil {
		end = wp.EndDate.Format("2006-01-02")
	}

	form := newForm(huh.NewGroup(
		huh.NewInput().Title("Name").Value(&name).Validate(validateRequired),
		huh.NewInput().Title("Description").Value(&description),
		huh.NewInput().Title("Start date").Value(&start).Validate(validateDate),
		huh.NewInput().Title("End date").Value(&end).Validate(validateDate),
	))
	if err := form.Run(); err != nil {
		return state, err
	}

	return applyEdit(state, draft.UpdateWorkPackage{
		ID: id,
		Patch: draft.WorkPackagePatch{
			Name:        &name,
			Description: &description,
			StartDate:   &start,
			EndDate:     &end,
		},
	}), nil
}

func wizardRemoveWorkPackage(state *domain.Project) (*domain.Project, error) {
	id, err := selectWorkPackage(state, "Remove which work package?")
	if err != nil {
		return handleSelectErr(state, err)
	}
	return applyEdit(state, draft.RemoveWorkPackage{ID: id}), nil
}

func wizardAddTask(state *domain.Project) (*domain.Project, error) {
	wpID, err := selectWorkPackage(state, "Add task to which work package?")
	if err != nil {
		return handleSelectErr(state, err)
	}

	var input draft.TaskInput
	form := newForm(huh.NewGroup(
		huh.NewInput().Title("Task name").Value(&input.Name).Validate(validateRequired),
		huh.NewInput().Title("Description").Value(&input.Description),
		huh.NewInput().Title("Start date (YYYY-MM-DD)").Value(&input.StartDate).Validate(validateDate),
		huh.NewInput().Title("End date (YYYY-MM-DD)").Value(&input.EndDate).Validate(validateDate),
	))
	if err := form.Run(); err != nil {
		return state, err
	}
	return applyEdit(state, draft.AddTask{WorkPackageID: wpID, Input: input}), nil
}

func wizardToggleTask(state *domain.Project) (*domain.Project, error) {
	wpID, err := selectWorkPackage(state, "Which work package?")
	if err != nil {
		return handleSelectErr(state, err)
	}
	wp := state.WorkPackageByID(wpID)
	taskID, err := selectTask(wp, "Toggle which task?")
	if err != nil {
		return handleSelectErr(state, err)
	}
	done := !wp.TaskByID(taskID).Done
	return applyEdit(state, draft.UpdateTask{
		WorkPackageID: wpID,
		TaskID:        taskID,
		Patch:         draft.TaskPatch{Done: &done},
	}), nil
}

func wizardRemoveTask(state *domain.Project) (*domain.Project, error) {
	wpID, err := selectWorkPackage(state, "Which work package?")
	if err != nil {
		return handleSelectErr(state, err)
	}
	taskID, err := selectTask(state.WorkPackageByID(wpID), "Remove which task?")
	if err != nil {
		return handleSelectErr(state, err)
	}
	return applyEdit(state, draft.RemoveTask{WorkPackageID: wpID, TaskID: taskID}), nil
}

func wizardAddDeliverable(state *domain.Project) (*domain.Project, error) {
	wpID, err := selectWorkPackage(state, "Which work package?")
	if err != nil {
		return handleSelectErr(state, err)
	}
	taskID, err := selectTask(state.WorkPackageByID(wpID), "Attach to which task?")
	if err != nil {
		return handleSelectErr(state, err)
	}

	var input draft.DeliverableInput
	form := newForm(huh.NewGroup(
		huh.NewInput().Title("Deliverable name").Value(&input.Name).Validate(validateRequired),
		huh.NewInput().Title("Description").Value(&input.Description),
		huh.NewInput().Title("Due date (YYYY-MM-DD)").Value(&input.DueDate).Validate(validateDate),
	))
	if err := form.Run(); err != nil {
		return state, err
	}
	return applyEdit(state, draft.AddDeliverable{WorkPackageID: wpID, TaskID: taskID, Input: input}), nil
}

func wizardAddMaterial(state *domain.Project) (*domain.Project, error) {
	wpID, err := selectWorkPackage(state, "Which work package?")
	if err != nil {
		return handleSelectErr(state, err)
	}

	var input draft.MaterialInput
	var quantity, year, month string
	categoryOptions := []huh.Option[string]{
		huh.NewOption("Materials", string(domain.CategoryMaterials)),
		huh.NewOption("Subcontract", string(domain.CategorySubcontract)),
		huh.NewOption("Travel", string(domain.CategoryTravel)),
		huh.NewOption("Overheads", string(domain.CategoryOverheads)),
		huh.NewOption("Other", string(domain.CategoryOther)),
	}

	form := newForm(huh.NewGroup(
		huh.NewInput().Title("Material name").Value(&input.Name).Validate(validateRequired),
		huh.NewInput().Title("Unit price").Value(&input.UnitPrice).Validate(validateDecimal),
		huh.NewInput().Title("Quantity").Value(&quantity).Validate(validateIntRange(0, 1_000_000)),
		huh.NewSelect[string]().Title("Expense category").Options(categoryOptions...).Value(&input.Category),
		huh.NewInput().Title("Year").Value(&year).Validate(validateIntRange(2000, 2100)),
		huh.NewInput().Title("Month (1-12)").Value(&month).Validate(validateIntRange(1, 12)),
		huh.NewInput().Title("Description").Value(&input.Description),
	))
	if err := form.Run(); err != nil {
		return state, err
	}

	input.Quantity, _ = strconv.Atoi(quantity)
	input.Year, _ = strconv.Atoi(year)
	input.Month, _ = strconv.Atoi(month)
	return applyEdit(state, draft.AddMaterial{WorkPackageID: wpID, Input: input}), nil
}

func wizardRemoveMaterial(state *domain.Project) (*domain.Project, error) {
	wpID, err := selectWorkPackage(state, "Which work package?")
	if err != nil {
		return handleSelectErr(state, err)
	}
	wp := state.WorkPackageByID(wpID)
	if len(wp.Materials) == 0 {
		fmt.Println(formatter.Dim("No materials in this work package."))
		return state, nil
	}

	options := make([]huh.Option[int64], 0, len(wp.Materials))
	for i := range wp.Materials {
		m := &wp.Materials[i]
		options = append(options, huh.NewOption(fmt.Sprintf("%s (%s × %d)", m.Name, m.UnitPrice, m.Quantity), m.ID))
	}

	var id int64
	form := newForm(huh.NewGroup(
		huh.NewSelect[int64]().Title("Remove which material?").Options(options...).Value(&id),
	))
	if err := form.Run(); err != nil {
		return state, err
	}
	return applyEdit(state, draft.RemoveMaterial{WorkPackageID: wpID, MaterialID: id}), nil
}

// handleSelectErr turns "nothing to select" into a gentle message instead of
// aborting the wizard; real form errors propagate.
func handleSelectErr(state *domain.Project, err error) (*domain.Project, error) {
	if errors.Is(err, huh.ErrUserAborted) {
		return state, err
	}
	fmt.Println(formatter.Dim(err.Error()))
	return state, nil
}
