// Package phase models the multi-step project creation workflow: which
// phases of the draft are complete and where the user currently stands.
package phase

import "github.com/vasco-fernandes21/starsoftflow/internal/domain"

// Completion holds one derived flag per workflow phase. It carries no state
// of its own; recompute it after every store action.
type Completion struct {
	BasicInfo bool
	Finance   bool
	Structure bool
	Resources bool
	Summary   bool
}

// Evaluate derives phase completeness from the current aggregate.
func Evaluate(p *domain.Project) Completion {
	c := Completion{}

	c.BasicInfo = p.Name != "" &&
		p.StartDate != nil && p.EndDate != nil &&
		p.EndDate.After(*p.StartDate)

	c.Finance = p.Overhead != nil &&
		p.FundingRate != nil &&
		p.HourlyRate != nil &&
		p.FundingSourceID != nil

	c.Structure = len(p.WorkPackages) > 0

	for i := range p.WorkPackages {
		if len(p.WorkPackages[i].Allocations) > 0 {
			c.Resources = true
			break
		}
	}

	c.Summary = c.BasicInfo && c.Finance && c.Structure && c.Resources
	return c
}

// Incomplete lists the phases currently blocking submission, in workflow
// order. Empty when the draft is submission-ready.
func (c Completion) Incomplete() []Phase {
	var out []Phase
	if !c.BasicInfo {
		out = append(out, PhaseBasicInfo)
	}
	if !c.Finance {
		out = append(out, PhaseFinance)
	}
	if !c.Structure {
		out = append(out, PhaseStructure)
	}
	if !c.Resources {
		out = append(out, PhaseResources)
	}
	return out
}
