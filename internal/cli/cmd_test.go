package cli

import (
	"context"
	"io"
	"os"
	"strconv"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vasco-fernandes21/starsoftflow/internal/excel"
	"github.com/vasco-fernandes21/starsoftflow/internal/repository"
	"github.com/vasco-fernandes21/starsoftflow/internal/service"
	"github.com/vasco-fernandes21/starsoftflow/internal/testutil"
)

// testApp wires a full App backed by an in-memory DB for CLI integration tests.
func testApp(t *testing.T) *App {
	t.Helper()
	db := testutil.NewTestDB(t)

	draftRepo := repository.NewSQLiteDraftRepo(db)
	projectRepo := repository.NewSQLiteProjectRepo(db)
	allocationRepo := repository.NewSQLiteAllocationRepo(db)
	log := zerolog.Nop()

	return &App{
		Drafts:      service.NewDraftService(draftRepo, log),
		Submissions: service.NewSubmissionService(projectRepo, allocationRepo, log),
		Allocations: service.NewAllocationService(allocationRepo, log),
		Reports:     excel.NewGenerator(),
		UserID:      "u1",
		IsInteractive: func() bool {
			return false
		},
	}
}

// executeCmd runs a cobra command, redirecting os.Stdout so direct
// fmt.Print output from handlers is captured too.
func executeCmd(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()

	origStdout := os.Stdout
	pr, pw, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = pw

	root := NewRootCmd(app)
	root.SetOut(pw)
	root.SetErr(pw)
	root.SetArgs(args)
	root.SilenceUsage = true

	execErr := root.Execute()

	pw.Close()
	os.Stdout = origStdout

	var buf strings.Builder
	_, copyErr := io.Copy(&buf, pr)
	require.NoError(t, copyErr)
	return buf.String(), execErr
}

func TestDraftList_Empty(t *testing.T) {
	app := testApp(t)

	out, err := executeCmd(t, app, "draft", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "No drafts saved.")
}

func TestDraftLifecycle_ShowAndDelete(t *testing.T) {
	app := testApp(t)
	ctx := context.Background()

	id, err := app.Drafts.Save(ctx, "", "orion draft", testutil.ReadyProject("Orion"))
	require.NoError(t, err)

	out, err := executeCmd(t, app, "draft", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "orion draft")

	out, err = executeCmd(t, app, "draft", "show", id)
	require.NoError(t, err)
	assert.Contains(t, out, "ORION")
	assert.Contains(t, out, "WP1")

	out, err = executeCmd(t, app, "draft", "delete", id)
	require.NoError(t, err)
	assert.Contains(t, out, "Deleted draft")

	_, err = executeCmd(t, app, "draft", "show", id)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestDraftNew_RefusesNonInteractive(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "draft", "new")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "interactive terminal")
}

func TestProjectValidate_ApproveFlow(t *testing.T) {
	app := testApp(t)
	ctx := context.Background()

	id, err := app.Submissions.Submit(ctx, testutil.ReadyProject("Orion"))
	require.NoError(t, err)

	_, err = executeCmd(t, app, "project", "validate", id)
	require.Error(t, err, "must pass exactly one of --approve/--reject")

	out, err := executeCmd(t, app, "project", "validate", id, "--approve")
	require.NoError(t, err)
	assert.Contains(t, out, "approved")

	out, err = executeCmd(t, app, "project", "show", id, "--view", "submitted")
	require.NoError(t, err)
	assert.Contains(t, out, "ORION")
}

func TestProjectValidate_RejectFlow(t *testing.T) {
	app := testApp(t)
	ctx := context.Background()

	id, err := app.Submissions.Submit(ctx, testutil.ReadyProject("Orion"))
	require.NoError(t, err)

	out, err := executeCmd(t, app, "project", "validate", id, "--reject")
	require.NoError(t, err)
	assert.Contains(t, out, "rejected and removed")

	_, err = executeCmd(t, app, "project", "show", id)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestAllocSetAndShow(t *testing.T) {
	app := testApp(t)
	ctx := context.Background()

	// Approval seeds the submitted feed so the work package is known.
	id, err := app.Submissions.Submit(ctx, testutil.ReadyProject("Orion"))
	require.NoError(t, err)
	_, err = app.Submissions.Validate(ctx, id, true)
	require.NoError(t, err)

	p, err := app.Submissions.Get(ctx, id)
	require.NoError(t, err)
	wpID := p.WorkPackages[0].ID
	year := p.WorkPackages[0].Allocations[0].Year

	out, err := executeCmd(t, app, "alloc", "set", wpID, "1", strconv.Itoa(year), "0,75")
	require.NoError(t, err)
	assert.Contains(t, out, "Set "+wpID)

	out, err = executeCmd(t, app, "alloc", "show", "--year", strconv.Itoa(year), "--feed", "real")
	require.NoError(t, err)
	assert.Contains(t, out, "0.75")

	_, err = executeCmd(t, app, "alloc", "set", wpID, "1", strconv.Itoa(year), "1,5")
	require.Error(t, err, "occupancy above one is rejected")
}

func TestAllocReport_WritesWorkbook(t *testing.T) {
	app := testApp(t)
	out := t.TempDir() + "/report.xlsx"

	stdout, err := executeCmd(t, app, "alloc", "report", "--out", out, "--year", "2026")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Wrote")

	info, err := os.Stat(out)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}
