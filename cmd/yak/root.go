// Package yak wires the compiler's lexer, parser, manifest, resolver
// and HIR lowering passes into a cobra CLI.
package yak

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"compiler/internal/env"
	"compiler/internal/modules"
)

var (
	cfg    *env.Config
	logger *slog.Logger

	cacheDirFlag string
	logLevelFlag string
)

func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "yak",
		Short:         "yak compiles and resolves yak packages",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger = env.Load()
			if cacheDirFlag != "" {
				cfg.Home = cacheDirFlag
			}
			if lvl, ok := parseLevelFlag(logLevelFlag); ok {
				cfg.LogLevel = lvl
				logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
			}
			return nil
		},
	}

	root.PersistentFlags().StringVar(&cacheDirFlag, "cache-dir", "", "override the package cache directory (default $HOME/.yak)")
	root.PersistentFlags().StringVar(&logLevelFlag, "log-level", "", "debug, info, warn, or error")

	root.AddCommand(newBuildCmd())
	root.AddCommand(newGetCmd())

	return root
}

func parseLevelFlag(s string) (slog.Level, bool) {
	switch s {
	case "debug":
		return slog.LevelDebug, true
	case "info":
		return slog.LevelInfo, true
	case "warn":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	default:
		return 0, false
	}
}

func newDiskCache() *modules.DiskCache {
	return &modules.DiskCache{Root: cfg.Home, Version: cfg.Version}
}

func Execute() int {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}
