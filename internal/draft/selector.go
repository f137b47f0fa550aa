package draft

import "github.com/vasco-fernandes21/starsoftflow/internal/domain"

// SelectView picks between the live project and its approved snapshot. In
// the submitted view the caller browses the snapshot's structure under the
// live project's identity and lifecycle state. The function is safe to call
// unconditionally: without an approved state and a snapshot it returns the
// live project as-is.
func SelectView(p *domain.Project, snap *domain.ApprovedSnapshot, mode domain.ViewMode) *domain.Project {
	if mode != domain.ViewSubmitted || snap == nil {
		return p
	}
	if p.State != domain.ProjectApproved && p.State != domain.ProjectCompleted {
		return p
	}
	view := snap.Project
	view.ID = p.ID
	view.State = p.State
	view.CreatedAt = p.CreatedAt
	view.UpdatedAt = p.UpdatedAt
	return &view
}
