package cli

import (
	"context"
	"os"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/matzehuels/graphgen/pkg/errors"
	"github.com/matzehuels/graphgen/pkg/graph"
	"github.com/matzehuels/graphgen/pkg/pipeline"
)

// generateOptions holds the flags of the root (generate) command.
type generateOptions struct {
	vertices   int
	edges      int
	oriented   bool
	noContours bool
	format     string
	detailed   bool
	output     string
	seed       uint64
	config     string
	noCache    bool
}

// generateCommand creates the command that samples and prints one graph.
func (c *CLI) generateCommand() *cobra.Command {
	var opts generateOptions

	cmd := &cobra.Command{
		Use:   "graphgen -vVERTICES -eEDGES [flags]",
		Short: "Generate random simple graphs",
		Long: `Generate a random simple graph with exactly the requested number of
vertices and edges and print its adjacency matrix.

Edges are placed by rejection sampling: cells of the matrix are drawn at
random until enough of them are accepted. Self-loops are never placed.
Undirected graphs set both symmetric cells per edge; --oriented sets only
one. --no-contours only places edges from a lower to a higher vertex index.`,
		Example: `  # 5 vertices, 4 undirected edges
  graphgen -v5 -e4

  # Reproducible oriented graph without contours, as JSON
  graphgen -v10 -e8 -oc --seed 42 --format json

  # Render to SVG
  graphgen -v8 -e8 --format svg --output graph.svg`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfgCache, err := c.resolveOptions(&opts, cmd.Flags())
			if err != nil {
				return err
			}
			return c.runGenerate(cmd.Context(), opts, cfgCache)
		},
	}

	f := cmd.Flags()
	f.IntVarP(&opts.vertices, "vertices", "v", 0, "number of vertices (required, at least 1)")
	f.IntVarP(&opts.edges, "edges", "e", 0, "number of edges (required, at most the vertex count)")
	f.BoolVarP(&opts.oriented, "oriented", "o", false, "generate a directed graph")
	f.BoolVarP(&opts.noContours, "no-contours", "c", false, "only place edges from a lower to a higher vertex index")
	f.StringVar(&opts.format, "format", graph.FormatMatrix, "output format: matrix, json, dot, svg")
	f.BoolVar(&opts.detailed, "detailed", false, "label dot/svg vertices with their degrees")
	f.StringVar(&opts.output, "output", "", "write output to a file instead of stdout")
	f.Uint64Var(&opts.seed, "seed", 0, "random seed; 0 picks one from the clock (such runs are never cached)")
	f.StringVar(&opts.config, "config", "", "config file (default $XDG_CONFIG_HOME/graphgen/config.toml)")
	f.BoolVar(&opts.noCache, "no-cache", false, "disable the graph cache")

	return cmd
}

// resolveOptions merges the config file under the flags the user set and
// validates the result.
func (c *CLI) resolveOptions(opts *generateOptions, flags *pflag.FlagSet) (CacheConfig, error) {
	path, explicit := opts.config, opts.config != ""
	if !explicit {
		path, _ = configPath()
	}

	cfg, unknown, err := loadConfig(path, explicit)
	if err != nil {
		return CacheConfig{}, err
	}
	for _, key := range unknown {
		c.Logger.Warn("unknown config key", "key", key, "file", path)
	}
	opts.applyConfig(cfg, flags)

	return cfg.Cache, opts.validate(flags)
}

func (o *generateOptions) applyConfig(cfg Config, flags *pflag.FlagSet) {
	if !flags.Changed("oriented") {
		o.oriented = cfg.Oriented
	}
	if !flags.Changed("no-contours") {
		o.noContours = cfg.NoContours
	}
	if !flags.Changed("format") {
		o.format = cfg.Format
	}
	if !flags.Changed("detailed") {
		o.detailed = cfg.Detailed
	}
}

func (o *generateOptions) validate(flags *pflag.FlagSet) error {
	if !flags.Changed("vertices") {
		return errors.New(errors.ErrCodeInvalidInput, "missing vertex count (-v)")
	}
	if !flags.Changed("edges") {
		return errors.New(errors.ErrCodeInvalidInput, "missing edge count (-e)")
	}
	if err := errors.ValidateCounts(o.vertices, o.edges); err != nil {
		return err
	}
	if err := errors.ValidateFormat(o.format, graph.Formats); err != nil {
		return err
	}
	if flags.Changed("output") {
		return errors.ValidatePath(o.output)
	}
	return nil
}

func (o generateOptions) pipelineOptions(runID string, logger *log.Logger) pipeline.Options {
	return pipeline.Options{
		Vertices:   o.vertices,
		Edges:      o.edges,
		Oriented:   o.oriented,
		NoContours: o.noContours,
		Seed:       o.seed,
		Format:     o.format,
		Detailed:   o.detailed,
		RunID:      runID,
		Logger:     logger,
	}
}

// runGenerate produces the graph, renders it and writes it out.
func (c *CLI) runGenerate(ctx context.Context, opts generateOptions, cacheCfg CacheConfig) error {
	runID := uuid.NewString()
	logger := loggerFromContext(ctx).With("run", runID[:8])

	runner, err := c.newRunner(cacheCfg, opts.noCache, logger)
	if err != nil {
		return err
	}
	defer runner.Close()

	prog := newProgress(logger)
	var sp *Spinner
	if isTerminal(c.errOut) {
		sp = newSpinner(ctx, c.errOut, "Generating graph...")
		sp.Start()
	}
	result, err := runner.Execute(ctx, opts.pipelineOptions(runID, logger))
	if sp != nil {
		sp.Stop()
	}
	if err != nil {
		return err
	}
	prog.done("Generated graph",
		"edges", result.Store.EdgeCount(),
		"attempts", result.Stats.Sampling.Attempts,
		"seed", result.Seed,
		"cached", result.CacheInfo.GraphHit)

	if opts.output == "" {
		if _, err := c.out.Write(result.Artifact); err != nil {
			return errors.Wrap(errors.ErrCodeInternal, err, "write output")
		}
		return nil
	}
	if err := os.WriteFile(opts.output, result.Artifact, 0644); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "write %s", opts.output)
	}
	printSuccess(c.errOut, "Generated %s graph", opts.format)
	printFile(c.errOut, opts.output)
	printStats(c.errOut, result.Store.VertexCount(), result.Store.EdgeCount(), result.CacheInfo.GraphHit)
	return nil
}
