// Package cli implements the kundali command-line interface.
//
// Commands:
//   - layout: assemble a chart request into layout JSON
//   - render: render a request or layout file to svg, png, pdf, dot or json
//   - show: print a chart as a table, or browse its modes interactively
//   - serve: run the HTTP API
//   - example: print a sample request
//   - cache: inspect and clear the local cache
//
// Settings come from KUNDALI_* environment variables (see internal/config);
// flags override them.
package cli

import (
	"context"
	"io"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/kundali/internal/config"
	"github.com/matzehuels/kundali/pkg/buildinfo"
	"github.com/matzehuels/kundali/pkg/cache"
	"github.com/matzehuels/kundali/pkg/pipeline"
	"github.com/matzehuels/kundali/pkg/render"
	"github.com/matzehuels/kundali/pkg/store"
)

// =============================================================================
// Constants
// =============================================================================

const appName = "kundali"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	Config config.Config
}

// New creates a new CLI instance with a default logger and the environment
// configuration. A malformed environment is reported and the defaults are
// used instead.
func New(w io.Writer, level log.Level) *CLI {
	c := &CLI{Logger: newLogger(w, level)}
	cfg, err := config.Load()
	if err != nil {
		c.Logger.Warn("ignoring environment", "error", err)
		cfg = config.Config{MongoDatabase: appName, Addr: "127.0.0.1:8080"}
	}
	c.Config = cfg
	return c
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// ConfigLevel returns the level named by KUNDALI_LOG_LEVEL.
func (c *CLI) ConfigLevel() log.Level {
	lvl, err := c.Config.Level()
	if err != nil {
		return LogInfo
	}
	return lvl
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Kundali lays out and renders North Indian birth charts",
		Long:         `Kundali turns a list of planetary placements into a North Indian (diamond) birth chart: it rotates the zodiac onto the twelve fixed houses, places each planet at a collision-free position and renders the result.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.AddCommand(c.layoutCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.showCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.exampleCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner(ctx context.Context, noCache bool) (*pipeline.Runner, error) {
	cache, err := c.newCache(ctx, noCache)
	if err != nil {
		return nil, err
	}
	r := pipeline.NewRunner(cache, nil, loggerFromContext(ctx))
	r.TTL = c.Config.CacheTTL
	return r, nil
}

// newCache picks the cache backend: none, redis when KUNDALI_REDIS_URL is
// set, otherwise the file cache.
func (c *CLI) newCache(ctx context.Context, noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	if c.Config.RedisURL != "" {
		rc, err := cache.NewRedisCache(ctx, c.Config.RedisURL)
		if err != nil {
			return nil, err
		}
		return rc, nil
	}
	dir, err := c.cacheDir()
	if err != nil {
		return cache.NewNullCache(), nil
	}
	fc, err := cache.NewFileCache(dir)
	if err != nil {
		return nil, err
	}
	return fc, nil
}

// newStore opens the profile store: MongoDB when KUNDALI_MONGO_URI is set,
// otherwise memory.
func (c *CLI) newStore(ctx context.Context) (store.Store, error) {
	if c.Config.MongoURI == "" {
		return store.NewMemoryStore(), nil
	}
	ms, err := store.NewMongoStore(ctx, c.Config.MongoURI, c.Config.MongoDatabase)
	if err != nil {
		return nil, err
	}
	return ms, nil
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns KUNDALI_CACHE_DIR, falling back to the XDG location
// (~/.cache/kundali/).
func (c *CLI) cacheDir() (string, error) {
	if c.Config.CacheDir != "" {
		return c.Config.CacheDir, nil
	}
	return config.DefaultCacheDir()
}

// =============================================================================
// Options Helpers
// =============================================================================

// parseFormats parses a comma-separated format string into a slice.
func parseFormats(s string) []string {
	if strings.TrimSpace(s) == "" {
		return []string{render.FormatSVG}
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
