package export

import (
	"encoding/csv"
	"io"

	"github.com/rotisserie/eris"

	"github.com/sells-group/impact-search/internal/model"
)

// csvHeader is the union of every list's columns, prefixed by kind.
var csvHeader = []string{
	"kind", "id", "title", "organization", "description", "link",
	"category", "logo", "urgency", "end_date", "location", "type", "commitment",
	"time_required", "impact",
}

// WriteCSV writes b as a single CSV document. The kind column names the
// list each row came from.
func WriteCSV(w io.Writer, b model.Bundle) error {
	cw := csv.NewWriter(w)
	rows := [][]string{csvHeader}

	for _, o := range b.Organizations {
		// Organizations carry a name instead of a title and a website
		// instead of a link.
		rows = append(rows, []string{"organization", o.ID, o.Name, "", o.Description, o.Website, o.Category, o.Logo, "", "", "", "", "", "", ""})
	}
	for _, c := range b.Campaigns {
		rows = append(rows, []string{"campaign", c.ID, c.Title, c.Organization, c.Description, c.Link, "", "", string(c.Urgency), c.EndDate, "", "", "", "", ""})
	}
	for _, v := range b.VolunteerOpportunities {
		rows = append(rows, []string{"volunteer", v.ID, v.Title, v.Organization, "", v.Link, "", "", "", "", v.Location, string(v.Mode), v.Commitment, "", ""})
	}
	for _, a := range b.MicroActions {
		rows = append(rows, []string{"action", a.ID, a.Title, "", a.Description, a.Link, "", "", "", "", "", "", "", a.TimeRequired, a.Impact})
	}

	if err := cw.WriteAll(rows); err != nil {
		return eris.Wrap(err, "csv: write rows")
	}
	return nil
}
