package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/sells-group/impact-search/internal/model"
)

func writeJSONOut(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// formatBundle prints the lists f selects as aligned tables.
func formatBundle(out io.Writer, b model.Bundle, f model.Filter) {
	shown := b.Filter(f)
	_, _ = fmt.Fprintf(out, "%s: %s (%d)\n\n", f.Title(), b.Query, b.Count(f))

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)

	if len(shown.Organizations) > 0 {
		_, _ = fmt.Fprintln(w, "ORGANIZATION\tCATEGORY\tWEBSITE")
		for _, o := range shown.Organizations {
			_, _ = fmt.Fprintf(w, "%s\t%s\t%s\n", o.Name, o.Category, o.Website)
		}
		_, _ = fmt.Fprintln(w)
	}
	if len(shown.Campaigns) > 0 {
		_, _ = fmt.Fprintln(w, "CAMPAIGN\tORGANIZATION\tURGENCY\tENDS")
		for _, c := range shown.Campaigns {
			_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", c.Title, c.Organization, c.Urgency, orDash(c.EndDate))
		}
		_, _ = fmt.Fprintln(w)
	}
	if len(shown.VolunteerOpportunities) > 0 {
		_, _ = fmt.Fprintln(w, "VOLUNTEER\tORGANIZATION\tLOCATION\tTYPE\tCOMMITMENT")
		for _, v := range shown.VolunteerOpportunities {
			_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", v.Title, v.Organization, v.Location, v.Mode, v.Commitment)
		}
		_, _ = fmt.Fprintln(w)
	}
	if len(shown.MicroActions) > 0 {
		_, _ = fmt.Fprintln(w, "ACTION\tTIME\tIMPACT")
		for _, a := range shown.MicroActions {
			_, _ = fmt.Fprintf(w, "%s\t%s\t%s\n", a.Title, a.TimeRequired, a.Impact)
		}
		_, _ = fmt.Fprintln(w)
	}

	_ = w.Flush()
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
