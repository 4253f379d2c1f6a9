package yak

import (
	"fmt"

	"github.com/spf13/cobra"

	"compiler/internal/modules"
)

func newBuildCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "build [path]",
		Short: "resolve a package's dependencies and lower it to HIR",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}

			cache := newDiskCache()
			if err := cache.EnsureDirs(); err != nil {
				return err
			}
			lock, err := modules.LoadLockfile(dir)
			if err != nil {
				return fmt.Errorf("failed to read lockfile: %w", err)
			}

			fetcher := modules.NewHTTPFetcher()
			r := modules.NewResolver(fetcher, cache, lock)

			logger.Info("building package", "dir", dir)
			h, err := r.Build(dir)
			if err != nil {
				return err
			}
			if err := lock.Save(); err != nil {
				return fmt.Errorf("failed to write lockfile: %w", err)
			}

			logger.Info("build complete", "modules", len(h.Modules))
			return nil
		},
	}
}
