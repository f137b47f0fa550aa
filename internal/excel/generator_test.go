package excel

import (
	"bytes"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/vasco-fernandes21/starsoftflow/internal/allocation"
	"github.com/vasco-fernandes21/starsoftflow/internal/testutil"
)

func TestGenerate_SummaryAndProjectSheets(t *testing.T) {
	report := Report{
		UserID: "u1",
		Year:   2026,
		Real: []allocation.Record{
			testutil.NewTestRecord("p1", "wp1", 3, 2026, "0.5"),
			testutil.NewTestRecord("p1", "wp2", 3, 2026, "0.25"),
		},
		Submitted: []allocation.Record{
			testutil.NewTestRecord("p1", "wp1", 3, 2026, "0.6"),
		},
	}

	data, err := NewGenerator().Generate(report)
	require.NoError(t, err)

	file, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer file.Close()

	sheets := file.GetSheetList()
	require.Len(t, sheets, 2)
	assert.Equal(t, "Summary", sheets[0])
	assert.Equal(t, "Project p1", sheets[1])

	user, err := file.GetCellValue("Summary", "B1")
	require.NoError(t, err)
	assert.Equal(t, "u1", user)

	// March is row 4 (header) + 3.
	realTotal, err := file.GetCellValue("Summary", "B7")
	require.NoError(t, err)
	assert.Equal(t, "0.75", realTotal)
	submittedTotal, err := file.GetCellValue("Summary", "C7")
	require.NoError(t, err)
	assert.Equal(t, "0.60", submittedTotal)

	// First work package: real row 6, submitted row 7; March is column E.
	wpName, err := file.GetCellValue("Project p1", "A6")
	require.NoError(t, err)
	assert.Equal(t, "WP wp1", wpName)
	realCell, err := file.GetCellValue("Project p1", "E6")
	require.NoError(t, err)
	assert.Equal(t, "0.50", realCell)
	submittedCell, err := file.GetCellValue("Project p1", "E7")
	require.NoError(t, err)
	assert.Equal(t, "0.60", submittedCell)
}

func TestGenerate_LongProjectNamesFitSheetLimit(t *testing.T) {
	long := "A project name that is well beyond the thirty one character sheet limit"
	rec := testutil.NewTestRecord("p1", "wp1", 1, 2026, "0.5")
	rec.Project.Name = long

	data, err := NewGenerator().Generate(Report{UserID: "u1", Year: 2026, Real: []allocation.Record{rec}})
	require.NoError(t, err)

	file, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer file.Close()

	sheets := file.GetSheetList()
	require.Len(t, sheets, 2)
	assert.LessOrEqual(t, len(sheets[1]), 31)
}

func TestGenerate_MultibyteProjectNameTruncatesOnRunes(t *testing.T) {
	// The 31st byte lands inside the "é", so a byte-based cut would leave
	// an invalid UTF-8 sheet name.
	long := "Occupancy ledger for project Série Alfa"
	rec := testutil.NewTestRecord("p1", "wp1", 1, 2026, "0.5")
	rec.Project.Name = long

	data, err := NewGenerator().Generate(Report{UserID: "u1", Year: 2026, Real: []allocation.Record{rec}})
	require.NoError(t, err)

	file, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer file.Close()

	sheets := file.GetSheetList()
	require.Len(t, sheets, 2)
	assert.True(t, utf8.ValidString(sheets[1]), "sheet name must stay valid UTF-8")
	assert.LessOrEqual(t, utf8.RuneCountInString(sheets[1]), 31)
	assert.Equal(t, string([]rune(long)[:31]), sheets[1])
}
