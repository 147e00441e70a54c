package main

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/sells-group/impact-search/internal/model"
	"github.com/sells-group/impact-search/internal/resolver"
)

var causesCmd = &cobra.Command{
	Use:   "causes",
	Short: "List trending causes and catalog topics",
	RunE: func(cmd *cobra.Command, _ []string) error {
		res, err := initResolver()
		if err != nil {
			return err
		}
		formatCauses(os.Stdout, res)
		return nil
	},
}

func formatCauses(out io.Writer, res *resolver.Resolver) {
	c := res.Catalog()

	_, _ = fmt.Fprintln(out, "Trending causes:")
	for _, label := range c.Trending() {
		_, _ = fmt.Fprintf(out, "  %s\n", label)
	}
	_, _ = fmt.Fprintln(out)

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "TOPIC\tORGS\tCAMPAIGNS\tVOLUNTEER\tACTIONS")
	_, _ = fmt.Fprintln(w, "-----\t----\t---------\t---------\t-------")
	for _, t := range c.Topics() {
		b := t.Bundle
		_, _ = fmt.Fprintf(w, "%s\t%d\t%d\t%d\t%d\n", t.Key,
			b.Count(model.FilterOrganizations),
			b.Count(model.FilterCampaigns),
			b.Count(model.FilterVolunteer),
			b.Count(model.FilterActions),
		)
	}
	_ = w.Flush()
}

func init() {
	rootCmd.AddCommand(causesCmd)
}
