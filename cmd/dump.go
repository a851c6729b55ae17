package cmd

import (
	"fmt"
	"os"

	"usermap-reconciler/core/config"
	"usermap-reconciler/core/logger"
	"usermap-reconciler/feature/usermap"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var dumpJSONPath string

// dumpCmd prints the contents of the binary caches.
var dumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Print the usermap.bin and uuids.bin caches",
	Long:  `Decodes both cache files from the cache directory and prints the name => UUID mapping with its totals. Both files must exist.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig(".")
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		l, err := logger.New(&cfg.Log)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		defer l.Sync()
		l = logger.WithRun(l, "dump", cfg.Cache.Dir)

		svc := usermap.NewService(nil, cfg.Cache.Dir, l, cfg.Log.Verbose)
		result, err := svc.Dump(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to dump caches: %w", err)
		}

		usermap.PrintResult(os.Stdout, result)
		usermap.LogSummary(l, result)

		if dumpJSONPath != "" {
			if err := usermap.SaveJSON(dumpJSONPath, result); err != nil {
				return err
			}
			l.Info("JSON report saved", zap.String("path", dumpJSONPath))
		}
		return nil
	},
}

func init() {
	dumpCmd.Flags().StringVar(&dumpJSONPath, "json", "", "Save a JSON report to this path")

	RootCmd.AddCommand(dumpCmd)
}
