package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/impact-search/internal/catalog"
	"github.com/sells-group/impact-search/internal/config"
	"github.com/sells-group/impact-search/internal/resolver"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "impact-search",
	Short: "Find ways to help a cause",
	Long:  "Searches a fixed catalog of cause topics for nonprofits, campaigns, volunteer opportunities, and micro-actions, and serves the catalog over a JSON API.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = c

		if err := config.InitLogger(cfg.Log); err != nil {
			return fmt.Errorf("init logger: %w", err)
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = zap.L().Sync()
	},
}

// initResolver loads the configured catalog, or the built-in one.
func initResolver() (*resolver.Resolver, error) {
	c, err := catalog.Load(cfg.Catalog.Path)
	if err != nil {
		return nil, err
	}
	if cfg.Catalog.Path != "" {
		zap.L().Info("loaded catalog file",
			zap.String("path", cfg.Catalog.Path),
			zap.Int("topics", c.Len()),
		)
	}
	return resolver.New(c), nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
