package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/vasco-fernandes21/starsoftflow/internal/allocation"
	"github.com/vasco-fernandes21/starsoftflow/internal/domain"
	"github.com/vasco-fernandes21/starsoftflow/internal/phase"
)

func fmtDate(t *time.Time) string {
	if t == nil {
		return Dim("—")
	}
	return t.Format("2006-01-02")
}

func fmtDecimal(d *decimal.Decimal) string {
	if d == nil {
		return Dim("—")
	}
	return d.String()
}

// FormatProjectDetail renders the full project view: identity, finance,
// phase completeness, progress and the work package breakdown.
func FormatProjectDetail(p *domain.Project, c phase.Completion) string {
	var b strings.Builder

	b.WriteString(Header(p.Name))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%s  %s\n", StateIndicator(p.State), Dim(p.ID)))
	if p.Description != nil && *p.Description != "" {
		b.WriteString(fmt.Sprintf("%s\n", *p.Description))
	}
	b.WriteString(fmt.Sprintf("Period      %s → %s\n", fmtDate(p.StartDate), fmtDate(p.EndDate)))
	b.WriteString(fmt.Sprintf("Overhead    %s   Funding rate  %s   Hourly rate  %s\n",
		fmtDecimal(p.Overhead), fmtDecimal(p.FundingRate), fmtDecimal(p.HourlyRate)))

	progress, _ := p.Progress().Float64()
	b.WriteString(fmt.Sprintf("Progress    %s\n", RenderProgress(progress, 20)))

	b.WriteString("\n")
	b.WriteString(FormatPhases(c))

	if len(p.WorkPackages) > 0 {
		b.WriteString("\n")
		b.WriteString(Header("Work packages"))
		b.WriteString("\n")

		rows := make([][]string, 0, len(p.WorkPackages))
		for i := range p.WorkPackages {
			wp := &p.WorkPackages[i]
			budget := domain.WorkPackageBudget(wp)
			rows = append(rows, []string{
				wp.Name,
				fmt.Sprintf("%s → %s", fmtDate(wp.StartDate), fmtDate(wp.EndDate)),
				fmt.Sprintf("%d", len(wp.Tasks)),
				fmt.Sprintf("%d", len(wp.Materials)),
				fmt.Sprintf("%d", len(wp.Allocations)),
				budget.Total.StringFixed(2),
			})
		}
		b.WriteString(RenderTable(
			[]string{"Name", "Period", "Tasks", "Materials", "Allocations", "Budget"},
			rows,
		))
	}

	return b.String()
}

// FormatPhases renders the per-phase completeness checklist in workflow order.
func FormatPhases(c phase.Completion) string {
	marks := map[phase.Phase]bool{
		phase.PhaseBasicInfo: c.BasicInfo,
		phase.PhaseFinance:   c.Finance,
		phase.PhaseStructure: c.Structure,
		phase.PhaseResources: c.Resources,
		phase.PhaseSummary:   c.Summary,
	}
	var b strings.Builder
	for _, p := range phase.Order {
		b.WriteString(fmt.Sprintf("  %s %s\n", PhaseMark(marks[p]), p))
	}
	return b.String()
}

// FormatBudget renders the material cost totals grouped by expense category.
func FormatBudget(s domain.BudgetSummary) string {
	var b strings.Builder
	b.WriteString(Header("Budget"))
	b.WriteString("\n")

	// Stable category order.
	order := []domain.ExpenseCategory{
		domain.CategoryMaterials,
		domain.CategorySubcontract,
		domain.CategoryTravel,
		domain.CategoryOverheads,
		domain.CategoryOther,
	}
	var rows [][]string
	for _, cat := range order {
		v, ok := s.ByCategory[cat]
		if !ok {
			continue
		}
		rows = append(rows, []string{string(cat), v.StringFixed(2)})
	}
	rows = append(rows, []string{Bold("total"), Bold(s.Total.StringFixed(2))})
	b.WriteString(RenderTable([]string{"Category", "Cost"}, rows))
	return b.String()
}

var monthShort = []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

// FormatAllocationMatrix renders one feed's occupancy per work package and
// month for a year, grouped by project, with a per-month total row.
func FormatAllocationMatrix(records []allocation.Record, feed allocation.Feed, year int) string {
	rec := buildReconciler(records, feed)

	var b strings.Builder
	for _, group := range allocation.GroupByProject(records) {
		b.WriteString(Header(fmt.Sprintf("%s (%s)", group.Project.Name, feed)))
		b.WriteString("\n")

		headers := append([]string{"Work package"}, monthShort...)
		var rows [][]string
		for _, wp := range group.WorkPackages {
			row := []string{wp.Name}
			for month := 1; month <= 12; month++ {
				row = append(row, fmtOccupancyCell(rec.ValueFor(feed, wp.ID, month, year)))
			}
			rows = append(rows, row)
		}

		total := []string{Bold("total")}
		for month := 1; month <= 12; month++ {
			total = append(total, fmtOccupancyCell(rec.TotalFor(feed, month, year)))
		}
		rows = append(rows, total)

		b.WriteString(RenderTable(headers, rows))
		b.WriteString("\n")
	}
	if b.Len() == 0 {
		return Dim("No allocations.") + "\n"
	}
	return b.String()
}

func buildReconciler(records []allocation.Record, feed allocation.Feed) *allocation.Reconciler {
	if feed == allocation.FeedSubmitted {
		return allocation.NewReconciler(nil, records)
	}
	return allocation.NewReconciler(records, nil)
}

func fmtOccupancyCell(v decimal.Decimal) string {
	if v.IsZero() {
		return Dim("·")
	}
	return v.StringFixed(2)
}
