package formatter

import (
	"github.com/vasco-fernandes21/starsoftflow/internal/service"
)

// FormatDraftList renders the resume-a-draft listing.
func FormatDraftList(drafts []service.DraftSummary) string {
	rows := make([][]string, 0, len(drafts))
	for _, d := range drafts {
		title := d.Title
		if title == "" {
			title = Dim("(untitled)")
		}
		rows = append(rows, []string{
			shortID(d.ID),
			title,
			d.UpdatedAt.Format("2006-01-02 15:04"),
		})
	}
	return RenderTable([]string{"ID", "Title", "Updated"}, rows)
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
