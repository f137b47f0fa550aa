package excel

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/vasco-fernandes21/starsoftflow/internal/allocation"
)

// Report is one user's occupancy data for a single year, both feeds.
type Report struct {
	UserID    string
	Year      int
	Real      []allocation.Record
	Submitted []allocation.Record
}

var monthHeaders = []string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

// Generate renders the report as an XLSX workbook: a summary sheet plus one
// sheet per project with a month-by-workpackage occupancy matrix, real and
// submitted side by side.
func (g *Generator) Generate(report Report) ([]byte, error) {
	file := excelize.NewFile()

	summarySheet := "Summary"
	file.SetSheetName("Sheet1", summarySheet)
	if err := g.writeSummary(file, summarySheet, report); err != nil {
		return nil, err
	}

	usedNames := map[string]struct{}{summarySheet: {}}
	for _, group := range allocation.GroupByProject(append(append([]allocation.Record{}, report.Real...), report.Submitted...)) {
		sheetName := buildSheetName(group.Project.Name, group.Project.ID, usedNames)
		usedNames[sheetName] = struct{}{}

		if _, err := file.NewSheet(sheetName); err != nil {
			return nil, err
		}
		if err := g.writeProject(file, sheetName, report, group); err != nil {
			return nil, err
		}
	}

	file.SetActiveSheet(0)
	buf, err := file.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (g *Generator) writeSummary(file *excelize.File, sheet string, report Report) error {
	set := func(cell string, value interface{}) {
		_ = file.SetCellValue(sheet, cell, value)
	}

	set("A1", "User")
	set("B1", report.UserID)
	set("A2", "Year")
	set("B2", report.Year)

	tableRow := 4
	set(fmt.Sprintf("A%d", tableRow), "Month")
	set(fmt.Sprintf("B%d", tableRow), "Total real")
	set(fmt.Sprintf("C%d", tableRow), "Total submitted")

	rec := allocation.NewReconciler(report.Real, report.Submitted)
	for month := 1; month <= 12; month++ {
		row := tableRow + month
		set(fmt.Sprintf("A%d", row), monthHeaders[month-1])
		set(fmt.Sprintf("B%d", row), formatOccupancy(rec.TotalFor(allocation.FeedReal, month, report.Year)))
		set(fmt.Sprintf("C%d", row), formatOccupancy(rec.TotalFor(allocation.FeedSubmitted, month, report.Year)))
	}

	_ = file.SetColWidth(sheet, "A", "A", 18)
	_ = file.SetColWidth(sheet, "B", "C", 16)
	return nil
}

func (g *Generator) writeProject(file *excelize.File, sheet string, report Report, group allocation.ProjectGroup) error {
	set := func(cell string, value interface{}) {
		_ = file.SetCellValue(sheet, cell, value)
	}

	set("A1", "Project")
	set("B1", group.Project.Name)
	set("A2", "State")
	set("B2", string(group.Project.State))
	set("A3", "Year")
	set("B3", report.Year)

	tableRow := 5
	set(fmt.Sprintf("A%d", tableRow), "Work package")
	set(fmt.Sprintf("B%d", tableRow), "Feed")
	for i, header := range monthHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+3, tableRow)
		set(cell, header)
	}

	rec := allocation.NewReconciler(report.Real, report.Submitted)
	row := tableRow + 1
	for _, wp := range group.WorkPackages {
		for _, feed := range []allocation.Feed{allocation.FeedReal, allocation.FeedSubmitted} {
			set(fmt.Sprintf("A%d", row), wp.Name)
			set(fmt.Sprintf("B%d", row), string(feed))
			for month := 1; month <= 12; month++ {
				cell, _ := excelize.CoordinatesToCellName(month+2, row)
				set(cell, formatOccupancy(rec.ValueFor(feed, wp.ID, month, report.Year)))
			}
			row++
		}
	}

	_ = file.SetColWidth(sheet, "A", "A", 32)
	_ = file.SetColWidth(sheet, "B", "B", 12)
	_ = file.SetColWidth(sheet, "C", "N", 8)
	return nil
}

func formatOccupancy(v decimal.Decimal) string {
	if v.IsZero() {
		return ""
	}
	return v.StringFixed(2)
}

func buildSheetName(name, id string, used map[string]struct{}) string {
	base := sanitizeSheetName(name)
	if base == "" {
		base = sanitizeSheetName(id)
	}
	// Excel's 31-character sheet name limit counts characters, so trim on
	// runes; a byte slice could cut a multibyte name mid-rune.
	base = truncateRunes(base, 31)

	candidate := base
	counter := 2
	for {
		if _, exists := used[candidate]; !exists {
			return candidate
		}
		suffix := fmt.Sprintf("-%d", counter)
		candidate = truncateRunes(base, 31-len(suffix)) + suffix
		counter++
	}
}

func truncateRunes(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}

func sanitizeSheetName(value string) string {
	replacer := strings.NewReplacer(
		"[", "-",
		"]", "-",
		":", "-",
		"*", "-",
		"?", "-",
		"/", "-",
		"\\", "-",
	)
	return strings.TrimSpace(replacer.Replace(strings.TrimSpace(value)))
}
