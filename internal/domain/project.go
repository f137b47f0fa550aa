package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

type Project struct {
	ID          string
	Name        string
	Description *string
	StartDate   *time.Time
	EndDate     *time.Time

	// Finance
	Overhead        *decimal.Decimal
	FundingRate     *decimal.Decimal
	HourlyRate      *decimal.Decimal
	FundingSourceID *string

	ResponsibleID *string
	State         ProjectState
	WorkPackages  []WorkPackage

	CreatedAt time.Time
	UpdatedAt time.Time
}

// ValidatePeriod checks that the end date falls strictly after the start
// date. Unset dates are not an error here; completeness is judged elsewhere.
func (p *Project) ValidatePeriod() error {
	if p.StartDate == nil || p.EndDate == nil {
		return nil
	}
	if !p.EndDate.After(*p.StartDate) {
		return fmt.Errorf("project end date %s must be after start date %s",
			p.EndDate.Format("2006-01-02"), p.StartDate.Format("2006-01-02"))
	}
	return nil
}

// WorkPackageByID returns a pointer into the WorkPackages slice, or nil.
func (p *Project) WorkPackageByID(id string) *WorkPackage {
	for i := range p.WorkPackages {
		if p.WorkPackages[i].ID == id {
			return &p.WorkPackages[i]
		}
	}
	return nil
}

// Progress returns the fraction of tasks marked done across all work
// packages, as a decimal in [0,1]. A project with no tasks reports zero.
func (p *Project) Progress() decimal.Decimal {
	var total, done int64
	for i := range p.WorkPackages {
		for j := range p.WorkPackages[i].Tasks {
			total++
			if p.WorkPackages[i].Tasks[j].Done {
				done++
			}
		}
	}
	if total == 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(done).DivRound(decimal.NewFromInt(total), 4)
}
