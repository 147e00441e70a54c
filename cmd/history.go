package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/impact-search/internal/model"
	"github.com/sells-group/impact-search/internal/store"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Inspect recorded searches",
	Long:  "Commands for reading and migrating the search history store.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := rootCmd.PersistentPreRunE(cmd, args); err != nil {
			return err
		}
		return cfg.Validate("history")
	},
}

// -- history top --

var historyTopCmd = &cobra.Command{
	Use:   "top",
	Short: "Show the most frequent searches",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()
		limit, _ := cmd.Flags().GetInt("limit")

		st, err := openStore(ctx)
		if err != nil {
			return err
		}
		defer st.Close() //nolint:errcheck

		return runHistoryTop(ctx, os.Stdout, st, limit)
	},
}

func runHistoryTop(ctx context.Context, out io.Writer, st store.Store, limit int) error {
	top, err := st.TopQueries(ctx, limit)
	if err != nil {
		return eris.Wrap(err, "history top")
	}
	if len(top) == 0 {
		_, _ = fmt.Fprintln(out, "No searches recorded.")
		return nil
	}

	topics, err := st.TopicCounts(ctx)
	if err != nil {
		return eris.Wrap(err, "history topics")
	}

	formatTopQueries(out, top)
	_, _ = fmt.Fprintln(out)
	formatTopicCounts(out, topics)
	return nil
}

func formatTopQueries(out io.Writer, top []model.QueryCount) {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "QUERY\tTOPIC\tCOUNT\tLAST")
	_, _ = fmt.Fprintln(w, "-----\t-----\t-----\t----")
	for _, q := range top {
		_, _ = fmt.Fprintf(w, "%s\t%s\t%d\t%s\n",
			q.Query,
			orDash(q.Topic),
			q.Count,
			q.LastSearched.Format("2006-01-02 15:04"),
		)
	}
	_ = w.Flush()
}

func formatTopicCounts(out io.Writer, counts []model.TopicCount) {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "TOPIC\tSEARCHES")
	_, _ = fmt.Fprintln(w, "-----\t--------")
	for _, c := range counts {
		_, _ = fmt.Fprintf(w, "%s\t%d\n", c.Topic, c.Count)
	}
	_ = w.Flush()
}

// -- history migrate --

var historyMigrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create the search history tables",
	RunE: func(cmd *cobra.Command, _ []string) error {
		st, err := openStore(cmd.Context())
		if err != nil {
			return err
		}
		defer st.Close() //nolint:errcheck

		zap.L().Info("search history migrated", zap.String("driver", cfg.Store.Driver))
		return nil
	},
}

func init() {
	historyTopCmd.Flags().Int("limit", store.DefaultTopLimit, "number of queries to show")

	historyCmd.AddCommand(historyTopCmd)
	historyCmd.AddCommand(historyMigrateCmd)
	rootCmd.AddCommand(historyCmd)
}
