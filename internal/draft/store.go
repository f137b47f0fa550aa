// Package draft holds the in-session project aggregate and the reduction
// function that applies structural edits to it. The aggregate is never
// mutated in place: every action returns a new value sharing the untouched
// branches of the tree with its predecessor.
package draft

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/vasco-fernandes21/starsoftflow/internal/domain"
)

// Apply reduces one edit action over the aggregate. On success the returned
// project is a fresh value with only the affected branch replaced. On any
// error the original state pointer is returned unchanged, so callers can
// always keep dispatching against the result.
func Apply(state *domain.Project, action Action) (*domain.Project, error) {
	switch a := action.(type) {
	case AddWorkPackage:
		return applyAddWorkPackage(state, a)
	case UpdateWorkPackage:
		return applyUpdateWorkPackage(state, a)
	case RemoveWorkPackage:
		return applyRemoveWorkPackage(state, a)
	case AddTask:
		return applyAddTask(state, a)
	case UpdateTask:
		return applyUpdateTask(state, a)
	case RemoveTask:
		return applyRemoveTask(state, a)
	case AddDeliverable:
		return applyAddDeliverable(state, a)
	case UpdateDeliverable:
		return applyUpdateDeliverable(state, a)
	case RemoveDeliverable:
		return applyRemoveDeliverable(state, a)
	case AddMaterial:
		return applyAddMaterial(state, a)
	case UpdateMaterial:
		return applyUpdateMaterial(state, a)
	case RemoveMaterial:
		return applyRemoveMaterial(state, a)
	case AddResourceAllocation:
		return applyAddAllocation(state, a)
	case UpdateResourceAllocation:
		return applyUpdateAllocation(state, a)
	case RemoveUserAllocations:
		return applyRemoveUserAllocations(state, a)
	default:
		return state, fmt.Errorf("unhandled action type %T", action)
	}
}

// replaceWorkPackage rebuilds the work package slice with fn applied to the
// matching element. fn receives a value copy; inner slices it modifies must
// be reallocated, never appended to in place.
func replaceWorkPackage(state *domain.Project, id string, fn func(domain.WorkPackage) (domain.WorkPackage, error)) (*domain.Project, error) {
	idx := -1
	for i := range state.WorkPackages {
		if state.WorkPackages[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return state, fmt.Errorf("work package %q: %w", id, ErrWorkPackageNotFound)
	}
	wps := make([]domain.WorkPackage, len(state.WorkPackages))
	copy(wps, state.WorkPackages)
	updated, err := fn(wps[idx])
	if err != nil {
		return state, err
	}
	wps[idx] = updated
	next := *state
	next.WorkPackages = wps
	return &next, nil
}

// replaceTask is the task-level analogue of replaceWorkPackage. Deliverable
// edits also route through here: a deliverable change is a full replacement
// of the owning task's deliverable collection.
func replaceTask(wp domain.WorkPackage, taskID string, fn func(domain.Task) (domain.Task, error)) (domain.WorkPackage, error) {
	idx := -1
	for i := range wp.Tasks {
		if wp.Tasks[i].ID == taskID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return wp, fmt.Errorf("task %q: %w", taskID, ErrTaskNotFound)
	}
	tasks := make([]domain.Task, len(wp.Tasks))
	copy(tasks, wp.Tasks)
	updated, err := fn(tasks[idx])
	if err != nil {
		return wp, err
	}
	tasks[idx] = updated
	wp.Tasks = tasks
	return wp, nil
}

func applyAddWorkPackage(state *domain.Project, a AddWorkPackage) (*domain.Project, error) {
	start, err := ParseDate(a.Input.StartDate)
	if err != nil {
		return state, err
	}
	end, err := ParseDate(a.Input.EndDate)
	if err != nil {
		return state, err
	}
	wp := domain.WorkPackage{
		ID:          NewEntityID(),
		Name:        a.Input.Name,
		Description: OptionalText(a.Input.Description),
		StartDate:   start,
		EndDate:     end,
		Done:        false,
		Tasks:       []domain.Task{},
		Materials:   []domain.Material{},
		Allocations: []domain.ResourceAllocation{},
	}
	wps := make([]domain.WorkPackage, len(state.WorkPackages), len(state.WorkPackages)+1)
	copy(wps, state.WorkPackages)
	wps = append(wps, wp)
	next := *state
	next.WorkPackages = wps
	return &next, nil
}

func applyUpdateWorkPackage(state *domain.Project, a UpdateWorkPackage) (*domain.Project, error) {
	return replaceWorkPackage(state, a.ID, func(wp domain.WorkPackage) (domain.WorkPackage, error) {
		wp.Name = domain.StrFromPtrWithDefault(wp.Name, a.Patch.Name)
		wp.Done = domain.BoolFromPtrWithDefault(wp.Done, a.Patch.Done)
		if a.Patch.Description != nil {
			wp.Description = OptionalText(*a.Patch.Description)
		}
		if a.Patch.StartDate != nil {
			d, err := ParseDate(*a.Patch.StartDate)
			if err != nil {
				return wp, err
			}
			wp.StartDate = d
		}
		if a.Patch.EndDate != nil {
			d, err := ParseDate(*a.Patch.EndDate)
			if err != nil {
				return wp, err
			}
			wp.EndDate = d
		}
		return wp, nil
	})
}

func applyRemoveWorkPackage(state *domain.Project, a RemoveWorkPackage) (*domain.Project, error) {
	idx := -1
	for i := range state.WorkPackages {
		if state.WorkPackages[i].ID == a.ID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return state, fmt.Errorf("work package %q: %w", a.ID, ErrWorkPackageNotFound)
	}
	// Everything the work package owns goes with it; nothing else in the
	// aggregate references it.
	wps := make([]domain.WorkPackage, 0, len(state.WorkPackages)-1)
	wps = append(wps, state.WorkPackages[:idx]...)
	wps = append(wps, state.WorkPackages[idx+1:]...)
	next := *state
	next.WorkPackages = wps
	return &next, nil
}

func applyAddTask(state *domain.Project, a AddTask) (*domain.Project, error) {
	return replaceWorkPackage(state, a.WorkPackageID, func(wp domain.WorkPackage) (domain.WorkPackage, error) {
		start, err := ParseDate(a.Input.StartDate)
		if err != nil {
			return wp, err
		}
		end, err := ParseDate(a.Input.EndDate)
		if err != nil {
			return wp, err
		}
		task := domain.Task{
			ID:           NewEntityID(),
			Name:         a.Input.Name,
			Description:  OptionalText(a.Input.Description),
			StartDate:    start,
			EndDate:      end,
			Done:         false,
			Deliverables: []domain.Deliverable{},
		}
		tasks := make([]domain.Task, len(wp.Tasks), len(wp.Tasks)+1)
		copy(tasks, wp.Tasks)
		wp.Tasks = append(tasks, task)
		return wp, nil
	})
}

func applyUpdateTask(state *domain.Project, a UpdateTask) (*domain.Project, error) {
	return replaceWorkPackage(state, a.WorkPackageID, func(wp domain.WorkPackage) (domain.WorkPackage, error) {
		return replaceTask(wp, a.TaskID, func(t domain.Task) (domain.Task, error) {
			t.Name = domain.StrFromPtrWithDefault(t.Name, a.Patch.Name)
			t.Done = domain.BoolFromPtrWithDefault(t.Done, a.Patch.Done)
			if a.Patch.Description != nil {
				t.Description = OptionalText(*a.Patch.Description)
			}
			if a.Patch.StartDate != nil {
				d, err := ParseDate(*a.Patch.StartDate)
				if err != nil {
					return t, err
				}
				t.StartDate = d
			}
			if a.Patch.EndDate != nil {
				d, err := ParseDate(*a.Patch.EndDate)
				if err != nil {
					return t, err
				}
				t.EndDate = d
			}
			return t, nil
		})
	})
}

func applyRemoveTask(state *domain.Project, a RemoveTask) (*domain.Project, error) {
	return replaceWorkPackage(state, a.WorkPackageID, func(wp domain.WorkPackage) (domain.WorkPackage, error) {
		idx := -1
		for i := range wp.Tasks {
			if wp.Tasks[i].ID == a.TaskID {
				idx = i
				break
			}
		}
		if idx < 0 {
			return wp, fmt.Errorf("task %q: %w", a.TaskID, ErrTaskNotFound)
		}
		tasks := make([]domain.Task, 0, len(wp.Tasks)-1)
		tasks = append(tasks, wp.Tasks[:idx]...)
		tasks = append(tasks, wp.Tasks[idx+1:]...)
		wp.Tasks = tasks
		return wp, nil
	})
}

func applyAddDeliverable(state *domain.Project, a AddDeliverable) (*domain.Project, error) {
	return replaceWorkPackage(state, a.WorkPackageID, func(wp domain.WorkPackage) (domain.WorkPackage, error) {
		return replaceTask(wp, a.TaskID, func(t domain.Task) (domain.Task, error) {
			due, err := ParseDate(a.Input.DueDate)
			if err != nil {
				return t, err
			}
			d := domain.Deliverable{
				ID:           NewEntityID(),
				Name:         a.Input.Name,
				Description:  OptionalText(a.Input.Description),
				DueDate:      due,
				Done:         false,
				AttachmentID: OptionalText(a.Input.AttachmentID),
			}
			ds := make([]domain.Deliverable, len(t.Deliverables), len(t.Deliverables)+1)
			copy(ds, t.Deliverables)
			t.Deliverables = append(ds, d)
			return t, nil
		})
	})
}

func applyUpdateDeliverable(state *domain.Project, a UpdateDeliverable) (*domain.Project, error) {
	return replaceWorkPackage(state, a.WorkPackageID, func(wp domain.WorkPackage) (domain.WorkPackage, error) {
		return replaceTask(wp, a.TaskID, func(t domain.Task) (domain.Task, error) {
			idx := -1
			for i := range t.Deliverables {
				if t.Deliverables[i].ID == a.DeliverableID {
					idx = i
					break
				}
			}
			if idx < 0 {
				return t, fmt.Errorf("deliverable %q: %w", a.DeliverableID, ErrDeliverableNotFound)
			}
			ds := make([]domain.Deliverable, len(t.Deliverables))
			copy(ds, t.Deliverables)
			d := ds[idx]
			d.Name = domain.StrFromPtrWithDefault(d.Name, a.Patch.Name)
			d.Done = domain.BoolFromPtrWithDefault(d.Done, a.Patch.Done)
			if a.Patch.Description != nil {
				d.Description = OptionalText(*a.Patch.Description)
			}
			if a.Patch.DueDate != nil {
				due, err := ParseDate(*a.Patch.DueDate)
				if err != nil {
					return t, err
				}
				d.DueDate = due
			}
			if a.Patch.AttachmentID != nil {
				d.AttachmentID = OptionalText(*a.Patch.AttachmentID)
			}
			ds[idx] = d
			t.Deliverables = ds
			return t, nil
		})
	})
}

func applyRemoveDeliverable(state *domain.Project, a RemoveDeliverable) (*domain.Project, error) {
	return replaceWorkPackage(state, a.WorkPackageID, func(wp domain.WorkPackage) (domain.WorkPackage, error) {
		return replaceTask(wp, a.TaskID, func(t domain.Task) (domain.Task, error) {
			idx := -1
			for i := range t.Deliverables {
				if t.Deliverables[i].ID == a.DeliverableID {
					idx = i
					break
				}
			}
			if idx < 0 {
				return t, fmt.Errorf("deliverable %q: %w", a.DeliverableID, ErrDeliverableNotFound)
			}
			ds := make([]domain.Deliverable, 0, len(t.Deliverables)-1)
			ds = append(ds, t.Deliverables[:idx]...)
			ds = append(ds, t.Deliverables[idx+1:]...)
			t.Deliverables = ds
			return t, nil
		})
	})
}

func applyAddMaterial(state *domain.Project, a AddMaterial) (*domain.Project, error) {
	id := nextMaterialID(state)
	return replaceWorkPackage(state, a.WorkPackageID, func(wp domain.WorkPackage) (domain.WorkPackage, error) {
		price, err := ParseDecimal(a.Input.UnitPrice)
		if err != nil {
			return wp, err
		}
		if err := validateQuantity(a.Input.Quantity); err != nil {
			return wp, err
		}
		if err := validateMonth(a.Input.Month); err != nil {
			return wp, err
		}
		cat, err := parseCategory(a.Input.Category)
		if err != nil {
			return wp, err
		}
		m := domain.Material{
			ID:          id,
			Name:        a.Input.Name,
			UnitPrice:   decimal.Zero,
			Quantity:    a.Input.Quantity,
			Category:    cat,
			Year:        a.Input.Year,
			Month:       a.Input.Month,
			Description: OptionalText(a.Input.Description),
			Done:        false,
		}
		if price != nil {
			m.UnitPrice = *price
		}
		ms := make([]domain.Material, len(wp.Materials), len(wp.Materials)+1)
		copy(ms, wp.Materials)
		wp.Materials = append(ms, m)
		return wp, nil
	})
}

func applyUpdateMaterial(state *domain.Project, a UpdateMaterial) (*domain.Project, error) {
	return replaceWorkPackage(state, a.WorkPackageID, func(wp domain.WorkPackage) (domain.WorkPackage, error) {
		idx := -1
		for i := range wp.Materials {
			if wp.Materials[i].ID == a.MaterialID {
				idx = i
				break
			}
		}
		if idx < 0 {
			return wp, fmt.Errorf("material %d: %w", a.MaterialID, ErrMaterialNotFound)
		}
		ms := make([]domain.Material, len(wp.Materials))
		copy(ms, wp.Materials)
		m := ms[idx]
		m.Name = domain.StrFromPtrWithDefault(m.Name, a.Patch.Name)
		m.Year = domain.IntFromPtrWithDefault(m.Year, a.Patch.Year)
		m.Done = domain.BoolFromPtrWithDefault(m.Done, a.Patch.Done)
		if a.Patch.UnitPrice != nil {
			price, err := ParseDecimal(*a.Patch.UnitPrice)
			if err != nil {
				return wp, err
			}
			if price == nil {
				m.UnitPrice = decimal.Zero
			} else {
				m.UnitPrice = *price
			}
		}
		if a.Patch.Quantity != nil {
			if err := validateQuantity(*a.Patch.Quantity); err != nil {
				return wp, err
			}
			m.Quantity = *a.Patch.Quantity
		}
		if a.Patch.Category != nil {
			cat, err := parseCategory(*a.Patch.Category)
			if err != nil {
				return wp, err
			}
			m.Category = cat
		}
		if a.Patch.Month != nil {
			if err := validateMonth(*a.Patch.Month); err != nil {
				return wp, err
			}
			m.Month = *a.Patch.Month
		}
		if a.Patch.Description != nil {
			m.Description = OptionalText(*a.Patch.Description)
		}
		ms[idx] = m
		wp.Materials = ms
		return wp, nil
	})
}

func applyRemoveMaterial(state *domain.Project, a RemoveMaterial) (*domain.Project, error) {
	return replaceWorkPackage(state, a.WorkPackageID, func(wp domain.WorkPackage) (domain.WorkPackage, error) {
		idx := -1
		for i := range wp.Materials {
			if wp.Materials[i].ID == a.MaterialID {
				idx = i
				break
			}
		}
		if idx < 0 {
			return wp, fmt.Errorf("material %d: %w", a.MaterialID, ErrMaterialNotFound)
		}
		ms := make([]domain.Material, 0, len(wp.Materials)-1)
		ms = append(ms, wp.Materials[:idx]...)
		ms = append(ms, wp.Materials[idx+1:]...)
		wp.Materials = ms
		return wp, nil
	})
}

func applyAddAllocation(state *domain.Project, a AddResourceAllocation) (*domain.Project, error) {
	return replaceWorkPackage(state, a.WorkPackageID, func(wp domain.WorkPackage) (domain.WorkPackage, error) {
		if err := validateMonth(a.Input.Month); err != nil {
			return wp, err
		}
		occ, err := ParseDecimal(a.Input.Occupancy)
		if err != nil {
			return wp, err
		}
		alloc := domain.ResourceAllocation{
			UserID:    a.Input.UserID,
			Month:     a.Input.Month,
			Year:      a.Input.Year,
			Occupancy: decimal.Zero,
		}
		if occ != nil {
			alloc.Occupancy = *occ
		}
		as := make([]domain.ResourceAllocation, len(wp.Allocations), len(wp.Allocations)+1)
		copy(as, wp.Allocations)
		wp.Allocations = append(as, alloc)
		return wp, nil
	})
}

func applyUpdateAllocation(state *domain.Project, a UpdateResourceAllocation) (*domain.Project, error) {
	return replaceWorkPackage(state, a.WorkPackageID, func(wp domain.WorkPackage) (domain.WorkPackage, error) {
		key := domain.ResourceAllocation{UserID: a.UserID, Month: a.Month, Year: a.Year}
		idx := -1
		for i := range wp.Allocations {
			if wp.Allocations[i].SameKey(key) {
				idx = i
				break
			}
		}
		if idx < 0 {
			return wp, fmt.Errorf("allocation for user %q %d/%d: %w", a.UserID, a.Month, a.Year, ErrAllocationNotFound)
		}
		occ, err := ParseDecimal(a.Occupancy)
		if err != nil {
			return wp, err
		}
		as := make([]domain.ResourceAllocation, len(wp.Allocations))
		copy(as, wp.Allocations)
		if occ == nil {
			as[idx].Occupancy = decimal.Zero
		} else {
			as[idx].Occupancy = *occ
		}
		wp.Allocations = as
		return wp, nil
	})
}

func applyRemoveUserAllocations(state *domain.Project, a RemoveUserAllocations) (*domain.Project, error) {
	return replaceWorkPackage(state, a.WorkPackageID, func(wp domain.WorkPackage) (domain.WorkPackage, error) {
		as := make([]domain.ResourceAllocation, 0, len(wp.Allocations))
		for i := range wp.Allocations {
			if wp.Allocations[i].UserID != a.UserID {
				as = append(as, wp.Allocations[i])
			}
		}
		wp.Allocations = as
		return wp, nil
	})
}
