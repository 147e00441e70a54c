package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/sells-group/impact-search/internal/model"
	"github.com/sells-group/impact-search/internal/resolver"
)

var searchCmd = &cobra.Command{
	Use:   "search <query...>",
	Short: "Search the catalog for a cause",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := filterFlag(cmd)
		if err != nil {
			return err
		}
		asJSON, _ := cmd.Flags().GetBool("json")

		res, err := initResolver()
		if err != nil {
			return err
		}
		return runSearch(os.Stdout, os.Stderr, res, strings.Join(args, " "), f, asJSON)
	},
}

func runSearch(out, errOut io.Writer, res *resolver.Resolver, query string, f model.Filter, asJSON bool) error {
	m := res.Resolve(query)
	b, ok := res.Search(query)
	if !ok {
		_, _ = fmt.Fprintln(errOut, "No results found.")
		return eris.Errorf("search: no results for %q", query)
	}

	if asJSON {
		return writeJSONOut(out, struct {
			Match   resolver.Match `json:"match"`
			Filter  model.Filter   `json:"filter"`
			Total   int            `json:"total"`
			Results model.Bundle   `json:"results"`
		}{m, f, b.Count(f), b.Filter(f)})
	}

	if m.Kind == resolver.MatchAlias {
		_, _ = fmt.Fprintf(out, "%q matched %q via %q\n", query, m.Topic, m.Alias)
	}
	formatBundle(out, b, f)
	return nil
}

func filterFlag(cmd *cobra.Command) (model.Filter, error) {
	raw, _ := cmd.Flags().GetString("filter")
	return model.ParseFilter(raw)
}

func init() {
	searchCmd.Flags().String("filter", "all", "result filter: all, organizations, campaigns, volunteer, actions")
	searchCmd.Flags().Bool("json", false, "print JSON instead of tables")
	rootCmd.AddCommand(searchCmd)
}
