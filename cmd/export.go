package main

import (
	"os"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/impact-search/internal/export"
	"github.com/sells-group/impact-search/internal/model"
	"github.com/sells-group/impact-search/internal/resolver"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export search results to xlsx or csv",
	RunE: func(cmd *cobra.Command, _ []string) error {
		format, _ := cmd.Flags().GetString("format")
		outPath, _ := cmd.Flags().GetString("out")
		query, _ := cmd.Flags().GetString("query")
		f, err := filterFlag(cmd)
		if err != nil {
			return err
		}

		res, err := initResolver()
		if err != nil {
			return err
		}
		return runExport(res, query, f, export.Format(format), outPath)
	},
}

// runExport writes the bundle for query, or the aggregate view when query is
// empty, to outPath.
func runExport(res *resolver.Resolver, query string, f model.Filter, format export.Format, outPath string) error {
	b := res.All()
	if strings.TrimSpace(query) != "" {
		var ok bool
		b, ok = res.Search(query)
		if !ok {
			return eris.Errorf("export: no results for %q", query)
		}
	}

	out, err := os.Create(outPath)
	if err != nil {
		return eris.Wrap(err, "export: create output")
	}
	if err := export.Write(out, format, b.Filter(f)); err != nil {
		_ = out.Close()
		_ = os.Remove(outPath)
		return err
	}
	if err := out.Close(); err != nil {
		return eris.Wrap(err, "export: close output")
	}

	zap.L().Info("exported results",
		zap.String("topic", b.Query),
		zap.String("format", string(format)),
		zap.String("path", outPath),
		zap.Int("records", b.Count(f)),
	)
	return nil
}

func init() {
	exportCmd.Flags().String("format", string(export.FormatXLSX), "output format: xlsx or csv")
	exportCmd.Flags().String("out", "", "output file path")
	exportCmd.Flags().String("query", "", "export results for this query instead of the full catalog")
	exportCmd.Flags().String("filter", "all", "result filter: all, organizations, campaigns, volunteer, actions")
	_ = exportCmd.MarkFlagRequired("out")
	rootCmd.AddCommand(exportCmd)
}
