package yak

import (
	"github.com/spf13/cobra"

	"compiler/internal/modules"
)

func newGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <url>",
		Short: "fetch a remote package and its dependencies into the cache",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cache := newDiskCache()
			if err := cache.EnsureDirs(); err != nil {
				return err
			}

			fetcher := modules.NewHTTPFetcher()
			r := modules.NewResolver(fetcher, cache, nil)

			logger.Info("fetching package", "url", args[0])
			if err := r.Get(args[0]); err != nil {
				return err
			}
			logger.Info("fetch complete", "url", args[0])
			return nil
		},
	}
}
