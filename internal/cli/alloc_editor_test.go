package cli

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vasco-fernandes21/starsoftflow/internal/allocation"
	"github.com/vasco-fernandes21/starsoftflow/internal/repository"
	"github.com/vasco-fernandes21/starsoftflow/internal/service"
	"github.com/vasco-fernandes21/starsoftflow/internal/teatest"
	"github.com/vasco-fernandes21/starsoftflow/internal/testutil"
)

func newEditorEnv(t *testing.T) (service.AllocationService, repository.AllocationRepo) {
	t.Helper()
	db := testutil.NewTestDB(t)
	repo := repository.NewSQLiteAllocationRepo(db)
	return service.NewAllocationService(repo, zerolog.Nop()), repo
}

func seededEditor(t *testing.T, svc service.AllocationService, repo repository.AllocationRepo) allocEditorModel {
	t.Helper()
	ctx := context.Background()
	require.NoError(t, repo.ReplaceReal(ctx, "u1", []allocation.Record{
		testutil.NewTestRecord("p1", "wp1", 1, 2026, "0.5"),
	}))
	require.NoError(t, repo.ReplaceSubmitted(ctx, "u1", []allocation.Record{
		testutil.NewTestRecord("p1", "wp1", 1, 2026, "0.6"),
	}))

	overview, err := svc.GetAllocations(ctx, "u1", 2026)
	require.NoError(t, err)
	return newAllocEditor(svc, "u1", 2026, overview)
}

func TestAllocEditor_StageAndSave(t *testing.T) {
	svc, repo := newEditorEnv(t)
	d := teatest.New(t, seededEditor(t, svc, repo))
	d.DrainInit()

	assert.Contains(t, d.View(), "0.50")

	// Edit January: stage 0,8 and check the marker and live total.
	d.PressEnter()
	d.Type("0,8")
	d.PressEnter()
	view := d.View()
	assert.Contains(t, view, "0.80*")
	assert.NotContains(t, view, "rejected")

	d.PressKey('s')
	assert.Contains(t, d.View(), "saved")

	real, err := repo.ListReal(context.Background(), "u1", 2026)
	require.NoError(t, err)
	require.Len(t, real, 1)
	assert.Equal(t, "0.8", real[0].Occupancy.String())
}

func TestAllocEditor_RejectedInputKeepsPreviousStage(t *testing.T) {
	svc, repo := newEditorEnv(t)
	d := teatest.New(t, seededEditor(t, svc, repo))
	d.DrainInit()

	d.PressEnter()
	d.Type("0,8")
	d.PressEnter()
	require.Contains(t, d.View(), "0.80*")

	// "1,5" violates the occupancy rule; the staged 0,8 must survive.
	d.PressEnter()
	d.Type("1,5")
	d.PressEnter()
	view := d.View()
	assert.Contains(t, view, "rejected")
	assert.Contains(t, view, "0.80*")
}

func TestAllocEditor_SubmittedViewIsReadOnly(t *testing.T) {
	svc, repo := newEditorEnv(t)
	d := teatest.New(t, seededEditor(t, svc, repo))
	d.DrainInit()

	d.PressKey('v')
	view := d.View()
	assert.Contains(t, view, "SUBMITTED VIEW")
	assert.Contains(t, view, "0.60")

	// Enter must not open the edit prompt in the submitted view.
	d.PressEnter()
	assert.NotContains(t, d.View(), "New value:")
}

func TestAllocEditor_QuitOnQ(t *testing.T) {
	svc, repo := newEditorEnv(t)
	d := teatest.New(t, seededEditor(t, svc, repo))
	d.DrainInit()

	d.PressKey('q')
	assert.True(t, d.Quitting)
}
