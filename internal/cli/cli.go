// Package cli implements the graphgen command-line interface.
package cli

import (
	"context"
	stderrors "errors"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/graphgen/pkg/buildinfo"
	"github.com/matzehuels/graphgen/pkg/cache"
	"github.com/matzehuels/graphgen/pkg/errors"
	"github.com/matzehuels/graphgen/pkg/observability"
	"github.com/matzehuels/graphgen/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "graphgen"

	// usageLine is printed after every usage error.
	usageLine = "Usage: graphgen [OPTIONS] -vVERTICES -eEDGES"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
// Generated output goes to out; logs, status lines and the spinner go to errOut.
type CLI struct {
	Logger *log.Logger

	out    io.Writer
	errOut io.Writer
}

// New creates a new CLI instance with a default logger on errOut.
func New(out, errOut io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(errOut, level),
		out:    out,
		errOut: errOut,
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
// The root command itself generates a graph.
func (c *CLI) RootCommand() *cobra.Command {
	var verbose bool

	root := c.generateCommand()
	root.Version = buildinfo.Version
	root.SilenceUsage = true
	root.SilenceErrors = true
	root.SetVersionTemplate(buildinfo.Template())
	root.SetOut(c.out)
	root.SetErr(c.errOut)

	root.PersistentFlags().BoolVar(&verbose, "verbose", false, "enable verbose logging")
	root.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		level := LogInfo
		if verbose {
			level = LogDebug
		}
		c.SetLogLevel(level)

		hooks := &logHooks{logger: c.Logger}
		observability.SetGeneratorHooks(hooks)
		observability.SetCacheHooks(hooks)

		cmd.SetContext(withLogger(cmd.Context(), c.Logger))
	}

	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// Execute runs the command tree for args and reports any failure on errOut.
// The returned error carries the code main maps to an exit status.
func (c *CLI) Execute(ctx context.Context, args []string) error {
	root := c.RootCommand()
	root.SetArgs(args)
	err := root.ExecuteContext(ctx)
	if err != nil {
		c.ReportError(err)
	}
	return err
}

// ReportError prints err the way the user should see it.
func (c *CLI) ReportError(err error) {
	switch errors.GetCode(err) {
	case errors.ErrCodeCanceled:
		printWarning(c.errOut, "Interrupted")
	case errors.ErrCodeInfeasible:
		printError(c.errOut, "Failed to generate graph!")
		printDetail(c.errOut, "%s", errors.UserMessage(err))
	case errors.ErrCodeUnsatisfiable, errors.ErrCodeInternal:
		printError(c.errOut, "%s", errors.UserMessage(err))
		printCause(c.errOut, err)
	default:
		// Flag parse errors from cobra are plain errors and land here too.
		printError(c.errOut, "%s", errors.UserMessage(err))
		printCause(c.errOut, err)
		printDetail(c.errOut, "%s", usageLine)
	}
}

// printCause prints the wrapped cause of a coded error, if any.
func printCause(w io.Writer, err error) {
	var e *errors.Error
	if stderrors.As(err, &e) && e.Cause != nil {
		printDetail(w, "%s", errors.UserMessage(e.Cause))
	}
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner whose cache follows cfg. Keys are
// scoped to the build version so releases never read each other's graphs.
func (c *CLI) newRunner(cfg CacheConfig, noCache bool, logger *log.Logger) (*pipeline.Runner, error) {
	gc, err := newCache(cfg, noCache, logger)
	if err != nil {
		return nil, err
	}
	keyer := cache.NewScopedKeyer(cache.NewDefaultKeyer(), buildinfo.CacheScope())
	runner := pipeline.NewRunner(gc, keyer, logger)
	if ttl, err := cfg.ttl(); err == nil {
		runner.TTL = ttl
	}
	return runner, nil
}

// newCache selects the cache backend for cfg: null when disabled, Redis
// when an address is configured, the file cache otherwise.
func newCache(cfg CacheConfig, noCache bool, logger *log.Logger) (cache.Cache, error) {
	if noCache || !cfg.Enabled {
		return cache.NewNullCache(), nil
	}
	if cfg.RedisAddr != "" {
		logger.Debug("using redis cache", "addr", cfg.RedisAddr)
		return cache.Observe(cache.NewRedisCache(cache.RedisConfig{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})), nil
	}
	dir, err := cacheDir()
	if err != nil {
		logger.Warn("cache disabled", "error", err)
		return cache.NewNullCache(), nil
	}
	fc, err := cache.NewFileCache(dir)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "open cache %s", dir)
	}
	return cache.Observe(fc), nil
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the cache directory using XDG standard (~/.cache/graphgen/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

// configPath returns the default config file location (~/.config/graphgen/config.toml).
func configPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}
