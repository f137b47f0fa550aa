package cli

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vasco-fernandes21/starsoftflow/internal/allocation"
	"github.com/vasco-fernandes21/starsoftflow/internal/cli/formatter"
	"github.com/vasco-fernandes21/starsoftflow/internal/service"
)

// editorRow is one work package line in the occupancy grid.
type editorRow struct {
	project     allocation.ProjectRef
	workPackage allocation.WorkPackageRef
}

// allocEditorModel is an interactive occupancy grid for one user and year.
// Edits are staged through the reconciler; nothing is written until save.
// The submitted feed is shown read-only.
type allocEditorModel struct {
	svc    service.AllocationService
	rec    *allocation.Reconciler
	userID string
	year   int

	rows  []editorRow
	feed  allocation.Feed
	row   int
	month int // 1-12

	input   string
	editing bool
	status  string
	saved   bool
	err     error
}

func newAllocEditor(svc service.AllocationService, userID string, year int, overview *service.AllocationOverview) allocEditorModel {
	var rows []editorRow
	combined := append(append([]allocation.Record{}, overview.Real...), overview.Submitted...)
	for _, group := range allocation.GroupByProject(combined) {
		for _, wp := range group.WorkPackages {
			rows = append(rows, editorRow{project: group.Project, workPackage: wp})
		}
	}

	return allocEditorModel{
		svc:    svc,
		rec:    allocation.NewReconciler(overview.Real, overview.Submitted),
		userID: userID,
		year:   year,
		rows:   rows,
		feed:   allocation.FeedReal,
		month:  1,
	}
}

func (m allocEditorModel) Init() tea.Cmd {
	return nil
}

func (m allocEditorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.editing {
		return m.updateEditing(key)
	}

	switch key.String() {
	case "q", "esc", "ctrl+c":
		return m, tea.Quit
	case "up", "k":
		if m.row > 0 {
			m.row--
		}
	case "down", "j":
		if m.row < len(m.rows)-1 {
			m.row++
		}
	case "left", "h":
		if m.month > 1 {
			m.month--
		}
	case "right", "l":
		if m.month < 12 {
			m.month++
		}
	case "v":
		if m.feed == allocation.FeedReal {
			m.feed = allocation.FeedSubmitted
		} else {
			m.feed = allocation.FeedReal
		}
	case "enter":
		if m.feed == allocation.FeedReal && len(m.rows) > 0 {
			m.editing = true
			m.input = ""
			m.status = ""
		}
	case "s":
		if m.feed == allocation.FeedReal {
			return m.save()
		}
	}
	return m, nil
}

func (m allocEditorModel) updateEditing(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.Type {
	case tea.KeyEsc:
		m.editing = false
		m.input = ""
		return m, nil
	case tea.KeyEnter:
		wp := m.rows[m.row].workPackage
		if err := m.rec.Stage(wp.ID, m.month, m.year, m.input); err != nil {
			// The previous staged value, if any, stays in effect.
			m.status = fmt.Sprintf("rejected %q: occupancy must be 0-1 with a comma, e.g. 0,5", m.input)
		} else {
			m.status = ""
			m.saved = false
		}
		m.editing = false
		m.input = ""
		return m, nil
	case tea.KeyBackspace:
		if len(m.input) > 0 {
			m.input = m.input[:len(m.input)-1]
		}
		return m, nil
	case tea.KeyRunes:
		for _, r := range key.Runes {
			if (r >= '0' && r <= '9') || r == ',' {
				m.input += string(r)
			}
		}
		return m, nil
	}
	return m, nil
}

func (m allocEditorModel) save() (tea.Model, tea.Cmd) {
	if !m.rec.HasStaged() {
		m.status = "nothing to save"
		return m, nil
	}
	if err := m.svc.SaveStaged(context.Background(), m.userID, m.rec); err != nil {
		m.err = err
		return m, tea.Quit
	}
	m.saved = true
	m.status = "saved"
	return m, nil
}

func (m allocEditorModel) View() string {
	var b strings.Builder

	b.WriteString(formatter.Header(fmt.Sprintf("Occupancy %d — %s view", m.year, m.feed)))
	b.WriteString("\n")

	if len(m.rows) == 0 {
		b.WriteString(formatter.Dim("No allocations to edit.\n"))
		return b.String()
	}

	headers := append([]string{"Work package"}, monthLabels()...)
	var tableRows [][]string
	for i, row := range m.rows {
		line := []string{m.rowLabel(i, row)}
		for month := 1; month <= 12; month++ {
			line = append(line, m.cell(i, row, month))
		}
		tableRows = append(tableRows, line)
	}

	total := []string{formatter.Bold("total")}
	for month := 1; month <= 12; month++ {
		v := m.rec.TotalFor(m.feed, month, m.year)
		if v.IsZero() {
			total = append(total, formatter.Dim("·"))
		} else {
			total = append(total, v.StringFixed(2))
		}
	}
	tableRows = append(tableRows, total)

	b.WriteString(formatter.RenderTable(headers, tableRows))

	if m.editing {
		b.WriteString(fmt.Sprintf("\nNew value: %s▌\n", m.input))
	}
	if m.status != "" {
		style := formatter.StyleYellow
		if m.status == "saved" {
			style = formatter.StyleGreen
		}
		b.WriteString("\n" + style.Render(m.status) + "\n")
	}
	b.WriteString("\n" + formatter.Dim("←→↑↓ move · enter edit · v switch view · s save · q quit") + "\n")
	return b.String()
}

func (m allocEditorModel) rowLabel(i int, row editorRow) string {
	label := fmt.Sprintf("%s / %s", row.project.Name, row.workPackage.Name)
	if i == m.row {
		return formatter.StyleHeader.Render("▸ " + label)
	}
	return "  " + label
}

func (m allocEditorModel) cell(i int, row editorRow, month int) string {
	var text string
	if staged, ok := m.rec.Staged(row.workPackage.ID, month, m.year); ok && m.feed == allocation.FeedReal {
		text = formatter.StyleYellow.Render(staged.StringFixed(2) + "*")
	} else {
		v := m.rec.ValueFor(m.feed, row.workPackage.ID, month, m.year)
		if v.IsZero() {
			text = formatter.Dim("·")
		} else {
			text = v.StringFixed(2)
		}
	}
	if i == m.row && month == m.month {
		return formatter.StyleBold.Render("[") + text + formatter.StyleBold.Render("]")
	}
	return text
}

func monthLabels() []string {
	return []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}
}
