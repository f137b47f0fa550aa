package phase

import (
	"fmt"

	"github.com/vasco-fernandes21/starsoftflow/internal/domain"
)

type Phase string

const (
	PhaseBasicInfo Phase = "basic-info"
	PhaseFinance   Phase = "finance"
	PhaseStructure Phase = "structure"
	PhaseResources Phase = "resources"
	PhaseSummary   Phase = "summary"
)

// Order is the canonical phase sequence of the creation workflow.
var Order = []Phase{PhaseBasicInfo, PhaseFinance, PhaseStructure, PhaseResources, PhaseSummary}

// IncompleteError reports a submission attempt on a draft whose phases are
// not all satisfied.
type IncompleteError struct {
	Phases []Phase
}

func (e *IncompleteError) Error() string {
	return fmt.Sprintf("project is not ready for submission: incomplete phases %v", e.Phases)
}

// Navigator tracks the user's position in the phase sequence. Movement is
// never blocked by incompleteness; only final submission is gated.
type Navigator struct {
	current int
}

// NewNavigator starts at the first phase.
func NewNavigator() *Navigator {
	return &Navigator{}
}

func (n *Navigator) Current() Phase {
	return Order[n.current]
}

// Next advances one phase and reports whether movement happened; at the last
// phase it stays put.
func (n *Navigator) Next() bool {
	if n.current >= len(Order)-1 {
		return false
	}
	n.current++
	return true
}

// Previous steps back one phase; at the first phase it stays put.
func (n *Navigator) Previous() bool {
	if n.current == 0 {
		return false
	}
	n.current--
	return true
}

// JumpTo moves directly to any phase, complete or not.
func (n *Navigator) JumpTo(p Phase) error {
	for i, candidate := range Order {
		if candidate == p {
			n.current = i
			return nil
		}
	}
	return fmt.Errorf("unknown phase %q", p)
}

// Submit checks the aggregate against the completeness rules. It returns an
// IncompleteError naming the blocking phases unless every phase is
// satisfied; it never proceeds silently.
func (n *Navigator) Submit(p *domain.Project) error {
	c := Evaluate(p)
	if !c.Summary {
		return &IncompleteError{Phases: c.Incomplete()}
	}
	return nil
}
