package formatter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/vasco-fernandes21/starsoftflow/internal/allocation"
	"github.com/vasco-fernandes21/starsoftflow/internal/phase"
	"github.com/vasco-fernandes21/starsoftflow/internal/service"
	"github.com/vasco-fernandes21/starsoftflow/internal/testutil"
)

func TestFormatProjectDetail_ShowsStateAndWorkPackages(t *testing.T) {
	p := testutil.ReadyProject("Orion")

	out := FormatProjectDetail(p, phase.Evaluate(p))

	assert.Contains(t, out, "ORION")
	assert.Contains(t, out, "DRAFT")
	assert.Contains(t, out, "WP1")
	assert.Contains(t, out, "0.85", "funding rate is shown")
}

func TestFormatPhases_MarksIncomplete(t *testing.T) {
	p := testutil.NewTestProject("Orion") // basic info only

	out := FormatPhases(phase.Evaluate(p))

	assert.Contains(t, out, "basic-info")
	assert.Contains(t, out, "finance")
	assert.Contains(t, out, "✓")
	assert.Contains(t, out, "✗")
}

func TestFormatAllocationMatrix_GroupsByProjectWithTotals(t *testing.T) {
	records := []allocation.Record{
		testutil.NewTestRecord("p1", "wp1", 3, 2026, "0.5"),
		testutil.NewTestRecord("p1", "wp2", 3, 2026, "0.25"),
	}

	out := FormatAllocationMatrix(records, allocation.FeedReal, 2026)

	assert.Contains(t, out, "PROJECT P1")
	assert.Contains(t, out, "WP wp1")
	assert.Contains(t, out, "0.50")
	assert.Contains(t, out, "0.75", "monthly total row")
}

func TestFormatAllocationMatrix_Empty(t *testing.T) {
	out := FormatAllocationMatrix(nil, allocation.FeedReal, 2026)
	assert.Contains(t, out, "No allocations")
}

func TestFormatDraftList_TruncatesIDs(t *testing.T) {
	drafts := []service.DraftSummary{
		{
			ID:        "12345678-aaaa-bbbb-cccc-1234567890ab",
			Title:     "orion draft",
			UpdatedAt: time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
		},
	}

	out := FormatDraftList(drafts)

	assert.Contains(t, out, "12345678")
	assert.NotContains(t, out, "1234567890ab")
	assert.Contains(t, out, "orion draft")
	assert.Contains(t, out, "2026-03-01")
}

func TestRenderTable_AlignsColumns(t *testing.T) {
	out := RenderTable([]string{"Name", "Value"}, [][]string{
		{"alpha", "1"},
		{"a-longer-name", "22"},
	})

	assert.Contains(t, out, "Name")
	assert.Contains(t, out, "a-longer-name")
	assert.Contains(t, out, "─")
}

func TestRenderProgress_Bounds(t *testing.T) {
	assert.Contains(t, RenderProgress(0, 10), "0%")
	assert.Contains(t, RenderProgress(0.5, 10), "50%")
	assert.Contains(t, RenderProgress(1.5, 10), "100%")
}
