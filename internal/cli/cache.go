package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/graphgen/pkg/cache"
	"github.com/matzehuels/graphgen/pkg/errors"
)

// cacheCommand creates the cache management command.
func (c *CLI) cacheCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the cache of seeded graphs",
	}

	cmd.AddCommand(c.cacheClearCommand())
	cmd.AddCommand(c.cachePathCommand())

	return cmd
}

// cacheClearCommand creates the "cache clear" subcommand.
// Only the local file cache is cleared; Redis entries expire on their own.
func (c *CLI) cacheClearCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove all cached graphs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := cacheDir()
			if err != nil {
				return errors.Wrap(errors.ErrCodeInternal, err, "get cache dir")
			}

			if _, err := os.Stat(dir); os.IsNotExist(err) {
				printInfo(c.errOut, "Cache is empty")
				return nil
			}

			fc, err := cache.NewFileCache(dir)
			if err != nil {
				return errors.Wrap(errors.ErrCodeInternal, err, "open cache %s", dir)
			}
			defer fc.Close()

			count, err := fc.Clear()
			if err != nil {
				return errors.Wrap(errors.ErrCodeInternal, err, "clear cache")
			}

			printSuccess(c.errOut, "Cleared %d cached entries", count)
			printDetail(c.errOut, "Directory: %s", dir)
			return nil
		},
	}
}

// cachePathCommand creates the "cache path" subcommand.
func (c *CLI) cachePathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the cache directory path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := cacheDir()
			if err != nil {
				return errors.Wrap(errors.ErrCodeInternal, err, "get cache dir")
			}
			fmt.Fprintln(c.out, dir)
			return nil
		},
	}
}
