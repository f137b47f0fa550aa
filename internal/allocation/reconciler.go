// Package allocation reconciles the monthly resource-occupancy ledger: the
// committed "real" and "submitted" feeds for one user, plus the transient
// edits typed into the real view but not yet saved.
package allocation

import (
	"errors"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/vasco-fernandes21/starsoftflow/internal/domain"
)

// Feed names one of the two committed allocation feeds.
type Feed string

const (
	FeedReal      Feed = "real"
	FeedSubmitted Feed = "submitted"
)

// ErrInvalidOccupancy reports occupancy text that fails the entry rule.
var ErrInvalidOccupancy = errors.New("invalid occupancy value")

// ProjectRef identifies the project a record belongs to.
type ProjectRef struct {
	ID    string
	Name  string
	State domain.ProjectState
}

// WorkPackageRef identifies the work package a record belongs to.
type WorkPackageRef struct {
	ID   string
	Name string
}

// Record is one committed occupancy cell: a work package, a month and a
// year, within a project.
type Record struct {
	Year        int
	Month       int
	Occupancy   decimal.Decimal
	WorkPackage WorkPackageRef
	Project     ProjectRef
}

// ProjectGroup lists the distinct work packages referenced by a project's
// records, in order of first appearance.
type ProjectGroup struct {
	Project      ProjectRef
	WorkPackages []WorkPackageRef
}

// GroupByProject partitions records by project identity. A work package
// appears only if at least one record references it.
func GroupByProject(records []Record) []ProjectGroup {
	var groups []ProjectGroup
	index := make(map[string]int)
	for _, rec := range records {
		gi, ok := index[rec.Project.ID]
		if !ok {
			gi = len(groups)
			index[rec.Project.ID] = gi
			groups = append(groups, ProjectGroup{Project: rec.Project})
		}
		found := false
		for _, wp := range groups[gi].WorkPackages {
			if wp.ID == rec.WorkPackage.ID {
				found = true
				break
			}
		}
		if !found {
			groups[gi].WorkPackages = append(groups[gi].WorkPackages, rec.WorkPackage)
		}
	}
	return groups
}

// Occupancy text entry accepts the empty string (clearing the cell), the
// literal "1", or a decimal-comma fraction below one with at most two
// digits: "0", "0,", "0,5", "0,75". Everything else is rejected.
var occupancyTextPattern = regexp.MustCompile(`^(1|0|0,|0,[0-9]{1,2})?$`)

// ParseOccupancy applies the entry rule and returns the canonical decimal.
// Empty and trailing-comma forms parse to zero.
func ParseOccupancy(text string) (decimal.Decimal, error) {
	if !occupancyTextPattern.MatchString(text) {
		return decimal.Zero, ErrInvalidOccupancy
	}
	if text == "" || text == "0," {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(strings.ReplaceAll(text, ",", "."))
}

type cellKey struct {
	wpID  string
	month int
	year  int
}

// Reconciler overlays staged edits on the real feed and answers per-cell and
// per-month queries for both views. The submitted feed is read-only: staged
// edits and commits never touch it.
type Reconciler struct {
	real      []Record
	submitted []Record
	staged    map[cellKey]decimal.Decimal
}

func NewReconciler(real, submitted []Record) *Reconciler {
	return &Reconciler{
		real:      real,
		submitted: submitted,
		staged:    make(map[cellKey]decimal.Decimal),
	}
}

func (r *Reconciler) feed(f Feed) []Record {
	if f == FeedSubmitted {
		return r.submitted
	}
	return r.real
}

// ValueFor returns the committed occupancy for the requested view, or zero
// when no record matches. Staged edits are not reflected here.
func (r *Reconciler) ValueFor(f Feed, wpID string, month, year int) decimal.Decimal {
	for _, rec := range r.feed(f) {
		if rec.WorkPackage.ID == wpID && rec.Month == month && rec.Year == year {
			return rec.Occupancy
		}
	}
	return decimal.Zero
}

// Stage validates and stages occupancy text for one real-view cell. On
// rejection the previously staged value, if any, is retained.
func (r *Reconciler) Stage(wpID string, month, year int, text string) error {
	value, err := ParseOccupancy(text)
	if err != nil {
		return err
	}
	r.staged[cellKey{wpID, month, year}] = value
	return nil
}

// Staged returns the staged value for a cell, if one exists.
func (r *Reconciler) Staged(wpID string, month, year int) (decimal.Decimal, bool) {
	v, ok := r.staged[cellKey{wpID, month, year}]
	return v, ok
}

// HasStaged reports whether any unsaved edits exist.
func (r *Reconciler) HasStaged() bool {
	return len(r.staged) > 0
}

// TotalFor sums occupancy across the view's records for one month and year.
// In the real view, cells with a staged edit contribute the staged value in
// place of their committed one, so the total tracks unsaved input live. The
// submitted view always reflects committed records only.
func (r *Reconciler) TotalFor(f Feed, month, year int) decimal.Decimal {
	total := decimal.Zero
	counted := make(map[cellKey]bool)
	for _, rec := range r.feed(f) {
		k := cellKey{rec.WorkPackage.ID, rec.Month, rec.Year}
		if rec.Month != month || rec.Year != year {
			continue
		}
		counted[k] = true
		if f == FeedReal {
			if staged, ok := r.staged[k]; ok {
				total = total.Add(staged)
				continue
			}
		}
		total = total.Add(rec.Occupancy)
	}
	if f == FeedReal {
		// Staged cells with no committed record yet still count.
		for k, v := range r.staged {
			if k.month == month && k.year == year && !counted[k] {
				total = total.Add(v)
			}
		}
	}
	return total
}

// Commit folds the staged edits into the real feed and clears the staging
// map, returning the records that now make up the real feed. Cells that had
// no committed record gain one, with work package and project references
// resolved from whichever feed already mentions the work package.
func (r *Reconciler) Commit() []Record {
	next := make([]Record, len(r.real))
	copy(next, r.real)

	for key, value := range r.staged {
		replaced := false
		for i := range next {
			if next[i].WorkPackage.ID == key.wpID && next[i].Month == key.month && next[i].Year == key.year {
				next[i].Occupancy = value
				replaced = true
				break
			}
		}
		if replaced {
			continue
		}
		rec := Record{
			Year:        key.year,
			Month:       key.month,
			Occupancy:   value,
			WorkPackage: WorkPackageRef{ID: key.wpID},
		}
		if wp, proj, ok := r.refsFor(key.wpID); ok {
			rec.WorkPackage = wp
			rec.Project = proj
		}
		next = append(next, rec)
	}

	r.real = next
	r.staged = make(map[cellKey]decimal.Decimal)
	return next
}

func (r *Reconciler) refsFor(wpID string) (WorkPackageRef, ProjectRef, bool) {
	for _, rec := range r.real {
		if rec.WorkPackage.ID == wpID {
			return rec.WorkPackage, rec.Project, true
		}
	}
	for _, rec := range r.submitted {
		if rec.WorkPackage.ID == wpID {
			return rec.WorkPackage, rec.Project, true
		}
	}
	return WorkPackageRef{}, ProjectRef{}, false
}
