package draft

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vasco-fernandes21/starsoftflow/internal/domain"
)

func TestSelectView_RealModeReturnsLive(t *testing.T) {
	p := &domain.Project{ID: "p1", State: domain.ProjectApproved}
	snap := &domain.ApprovedSnapshot{ProjectID: "p1", Project: domain.Project{Name: "old"}}
	assert.Same(t, p, SelectView(p, snap, domain.ViewReal))
}

func TestSelectView_NotApprovedReturnsLive(t *testing.T) {
	p := &domain.Project{ID: "p1", State: domain.ProjectDraft}
	snap := &domain.ApprovedSnapshot{ProjectID: "p1"}
	assert.Same(t, p, SelectView(p, snap, domain.ViewSubmitted),
		"selector is safe to call on unapproved projects")
}

func TestSelectView_NilSnapshotReturnsLive(t *testing.T) {
	p := &domain.Project{ID: "p1", State: domain.ProjectApproved}
	assert.Same(t, p, SelectView(p, nil, domain.ViewSubmitted))
}

func TestSelectView_SubmittedMergesIdentity(t *testing.T) {
	now := time.Now().UTC()
	live := &domain.Project{
		ID:        "p1",
		Name:      "Live name",
		State:     domain.ProjectApproved,
		UpdatedAt: now,
		WorkPackages: []domain.WorkPackage{
			{ID: "wp-live", Name: "added after approval"},
		},
	}
	snap := &domain.ApprovedSnapshot{
		ProjectID:  "p1",
		ApprovedAt: now.Add(-24 * time.Hour),
		Project: domain.Project{
			ID:    "p1-at-approval",
			Name:  "Approved name",
			State: domain.ProjectPending,
			WorkPackages: []domain.WorkPackage{
				{ID: "wp-old", Name: "as approved"},
			},
		},
	}

	view := SelectView(live, snap, domain.ViewSubmitted)
	assert.Equal(t, "p1", view.ID, "identity comes from the live project")
	assert.Equal(t, domain.ProjectApproved, view.State, "lifecycle state comes from the live project")
	assert.Equal(t, now, view.UpdatedAt)
	require.Len(t, view.WorkPackages, 1)
	assert.Equal(t, "wp-old", view.WorkPackages[0].ID, "structure comes from the snapshot")
	assert.Equal(t, "Approved name", view.Name)

	// The live aggregate is untouched by selection.
	assert.Equal(t, "wp-live", live.WorkPackages[0].ID)
}
