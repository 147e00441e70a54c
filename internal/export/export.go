// Package export writes result bundles to spreadsheet formats.
package export

import (
	"io"

	"github.com/rotisserie/eris"

	"github.com/sells-group/impact-search/internal/model"
)

// Format names an export format.
type Format string

const (
	FormatXLSX Format = "xlsx"
	FormatCSV  Format = "csv"
)

// Write dispatches to the writer for format.
func Write(w io.Writer, format Format, b model.Bundle) error {
	switch format {
	case FormatXLSX:
		return WriteXLSX(w, b)
	case FormatCSV:
		return WriteCSV(w, b)
	default:
		return eris.Errorf("export: unsupported format %q", format)
	}
}

// table is one record list flattened to string rows.
type table struct {
	name   string
	header []string
	rows   [][]string
}

func tables(b model.Bundle) []table {
	orgs := table{
		name:   "Organizations",
		header: []string{"id", "name", "description", "website", "category", "logo"},
	}
	for _, o := range b.Organizations {
		orgs.rows = append(orgs.rows, []string{o.ID, o.Name, o.Description, o.Website, o.Category, o.Logo})
	}

	campaigns := table{
		name:   "Campaigns",
		header: []string{"id", "title", "organization", "description", "link", "urgency", "end_date"},
	}
	for _, c := range b.Campaigns {
		campaigns.rows = append(campaigns.rows, []string{c.ID, c.Title, c.Organization, c.Description, c.Link, string(c.Urgency), c.EndDate})
	}

	volunteer := table{
		name:   "Volunteer",
		header: []string{"id", "title", "organization", "location", "type", "commitment", "link"},
	}
	for _, v := range b.VolunteerOpportunities {
		volunteer.rows = append(volunteer.rows, []string{v.ID, v.Title, v.Organization, v.Location, string(v.Mode), v.Commitment, v.Link})
	}

	actions := table{
		name:   "Actions",
		header: []string{"id", "title", "description", "time_required", "impact", "link"},
	}
	for _, a := range b.MicroActions {
		actions.rows = append(actions.rows, []string{a.ID, a.Title, a.Description, a.TimeRequired, a.Impact, a.Link})
	}

	return []table{orgs, campaigns, volunteer, actions}
}
