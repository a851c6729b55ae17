package cmd

import (
	"fmt"
	"os"

	"usermap-reconciler/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "usermap",
	Short: "Player usermap reconciler",
	Long: `Usermap rebuilds the canonical name => UUID mapping from offline player
profiles and reads or writes the usermap.bin / uuids.bin caches.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Debug level gets ISO8601 timestamps from the development config
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			fmt.Println(err)
		}
		os.Exit(1)
	}
}
