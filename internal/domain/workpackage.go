package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type WorkPackage struct {
	ID          string
	Name        string
	Description *string
	StartDate   *time.Time
	EndDate     *time.Time
	Done        bool

	Tasks       []Task
	Materials   []Material
	Allocations []ResourceAllocation
}

type Task struct {
	ID          string
	Name        string
	Description *string
	StartDate   *time.Time
	EndDate     *time.Time
	Done        bool

	Deliverables []Deliverable
}

type Deliverable struct {
	ID           string
	Name         string
	Description  *string
	DueDate      *time.Time
	Done         bool
	AttachmentID *string
}

// TaskByID returns a pointer into the Tasks slice, or nil.
func (w *WorkPackage) TaskByID(id string) *Task {
	for i := range w.Tasks {
		if w.Tasks[i].ID == id {
			return &w.Tasks[i]
		}
	}
	return nil
}

// Progress returns the fraction of the work package's tasks marked done.
func (w *WorkPackage) Progress() decimal.Decimal {
	if len(w.Tasks) == 0 {
		return decimal.Zero
	}
	var done int64
	for i := range w.Tasks {
		if w.Tasks[i].Done {
			done++
		}
	}
	return decimal.NewFromInt(done).DivRound(decimal.NewFromInt(int64(len(w.Tasks))), 4)
}
