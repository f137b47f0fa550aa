package phase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vasco-fernandes21/starsoftflow/internal/domain"
)

func TestNavigator_StartsAtFirstPhase(t *testing.T) {
	n := NewNavigator()
	assert.Equal(t, PhaseBasicInfo, n.Current())
}

func TestNavigator_WalkForwardAndBack(t *testing.T) {
	n := NewNavigator()
	for _, want := range Order[1:] {
		require.True(t, n.Next())
		assert.Equal(t, want, n.Current())
	}
	assert.False(t, n.Next(), "cannot advance past the last phase")
	assert.Equal(t, PhaseSummary, n.Current())

	require.True(t, n.Previous())
	assert.Equal(t, PhaseResources, n.Current())
}

func TestNavigator_PreviousAtStart(t *testing.T) {
	n := NewNavigator()
	assert.False(t, n.Previous())
	assert.Equal(t, PhaseBasicInfo, n.Current())
}

func TestNavigator_JumpToIsUnconditional(t *testing.T) {
	n := NewNavigator()
	require.NoError(t, n.JumpTo(PhaseSummary))
	assert.Equal(t, PhaseSummary, n.Current())
	require.NoError(t, n.JumpTo(PhaseFinance))
	assert.Equal(t, PhaseFinance, n.Current())
}

func TestNavigator_JumpToUnknownPhase(t *testing.T) {
	n := NewNavigator()
	assert.Error(t, n.JumpTo(Phase("review")))
	assert.Equal(t, PhaseBasicInfo, n.Current(), "failed jump leaves position unchanged")
}

func TestNavigator_SubmitGatedOnCompleteness(t *testing.T) {
	n := NewNavigator()
	err := n.Submit(&domain.Project{Name: "Alpha"})
	require.Error(t, err)

	var incomplete *IncompleteError
	require.ErrorAs(t, err, &incomplete)
	assert.Contains(t, incomplete.Phases, PhaseFinance)
	assert.Contains(t, incomplete.Phases, PhaseResources)
}

func TestNavigator_SubmitReadyProject(t *testing.T) {
	n := NewNavigator()
	assert.NoError(t, n.Submit(completeProject()))
}
