package cmd

import (
	"fmt"
	"os"

	"usermap-reconciler/core/config"
	"usermap-reconciler/core/database"
	"usermap-reconciler/core/logger"
	"usermap-reconciler/feature/userdata"
	"usermap-reconciler/feature/usermap"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Flags for the build command
	writeCache    bool
	exportTable   bool
	buildJSONPath string
)

// buildCmd reconciles the userdata directory into a fresh usermap.
var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Rebuild the usermap from player profiles",
	Long: `Scans every profile in the userdata directory and reconciles them into
one name => UUID mapping. When several identifiers claim the same name, the
higher UUID version wins; on equal versions the most recent logout wins.

Examples:
  # Print the reconciled mapping
  usermap build

  # Also write usermap.bin and uuids.bin into the cache directory
  usermap build --write-cache

  # Save a JSON report and export the mapping to the database
  usermap build --json report.json --export`,
	RunE: runBuild,
}

func init() {
	buildCmd.Flags().BoolVar(&writeCache, "write-cache", false, "Write usermap.bin and uuids.bin to the cache directory")
	buildCmd.Flags().BoolVar(&exportTable, "export", false, "Replace the usermap database table with the result")
	buildCmd.Flags().StringVar(&buildJSONPath, "json", "", "Save a JSON report to this path")

	RootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer l.Sync()
	l = logger.WithRun(l, "build", cfg.Source.Dir)

	source := userdata.NewAdapter(cfg.Source.Dir, cfg.Source.Pattern)
	svc := usermap.NewService(source, cfg.Cache.Dir, l, cfg.Log.Verbose)

	l.Info("Building usermap", zap.String("pattern", cfg.Source.Pattern))
	result, err := svc.Build(ctx)
	if err != nil {
		return fmt.Errorf("failed to build usermap: %w", err)
	}

	usermap.PrintResult(os.Stdout, result)
	usermap.LogSummary(l, result)

	if writeCache {
		if err := svc.WriteCache(result); err != nil {
			return err
		}
	}

	if buildJSONPath != "" {
		if err := usermap.SaveJSON(buildJSONPath, result); err != nil {
			return err
		}
		l.Info("JSON report saved", zap.String("path", buildJSONPath))
	}

	if exportTable {
		db, err := database.Connect(cfg.Database)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer database.Close(db)

		n, err := usermap.Export(ctx, db, result)
		if err != nil {
			return fmt.Errorf("failed to export usermap: %w", err)
		}
		l.Info("Usermap exported", zap.String("driver", cfg.Database.Driver), zap.Int("rows", n))
	}

	return nil
}
