package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/sells-group/impact-search/internal/model"
	"github.com/sells-group/impact-search/internal/resolver"
)

var allCmd = &cobra.Command{
	Use:   "all",
	Short: "Show every record in the catalog",
	RunE: func(cmd *cobra.Command, _ []string) error {
		f, err := filterFlag(cmd)
		if err != nil {
			return err
		}
		asJSON, _ := cmd.Flags().GetBool("json")

		res, err := initResolver()
		if err != nil {
			return err
		}
		return runAll(os.Stdout, res, f, asJSON)
	},
}

func runAll(out io.Writer, res *resolver.Resolver, f model.Filter, asJSON bool) error {
	b := res.All()
	if asJSON {
		return writeJSONOut(out, b.Filter(f))
	}
	formatBundle(out, b, f)
	return nil
}

func init() {
	allCmd.Flags().String("filter", "all", "result filter: all, organizations, campaigns, volunteer, actions")
	allCmd.Flags().Bool("json", false, "print JSON instead of tables")
	rootCmd.AddCommand(allCmd)
}
