package reports

import (
	"fmt"
	"html"
	"strings"

	"github.com/ekaya-inc/statusboard/pkg/models"
)

const cellStyle = "border: 1px solid #ccc; padding: 4px;"

// GridHTML renders the weekly status grid as a self-contained HTML
// table. Column headers are week start dates, rows are employees, and
// each cell is a colored square.
func GridHTML(grid Grid) string {
	var b strings.Builder

	b.WriteString(`<table style="border-collapse: collapse;">`)
	b.WriteString(fmt.Sprintf(`<tr><th style="%s">Employee</th>`, cellStyle))
	for _, week := range grid.Weeks {
		b.WriteString(fmt.Sprintf(`<th style="%s">%s</th>`, cellStyle, week.Format("2006-01-02")))
	}
	b.WriteString("</tr>")

	for _, row := range grid.Rows {
		b.WriteString(fmt.Sprintf(`<tr><td style="%s">%s</td>`, cellStyle, html.EscapeString(row.Employee)))
		for _, color := range row.Colors {
			b.WriteString(fmt.Sprintf(`<td style="%s text-align: center;">`, cellStyle))
			b.WriteString(fmt.Sprintf(`<div style="width: 20px; height: 20px; background-color: %s;"></div></td>`, color))
		}
		b.WriteString("</tr>")
	}

	b.WriteString("</table>")
	return b.String()
}

// ProjectTableHTML renders all projects as an HTML table with ID and
// name columns.
func ProjectTableHTML(projects []*models.Project) string {
	if len(projects) == 0 {
		return "<p>No projects available</p>"
	}

	var b strings.Builder
	b.WriteString(`<table style="border-collapse: collapse;">`)
	b.WriteString(fmt.Sprintf(`<tr><th style="%s">ID</th><th style="%s">Project Name</th></tr>`, cellStyle, cellStyle))
	for _, project := range projects {
		b.WriteString(fmt.Sprintf(`<tr><td style="%s">%d</td><td style="%s">%s</td></tr>`,
			cellStyle, project.ID, cellStyle, html.EscapeString(project.Name)))
	}
	b.WriteString("</table>")
	return b.String()
}
