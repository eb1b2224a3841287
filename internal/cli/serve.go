package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/clowdgraph/clowd/pkg/analyze"
	"github.com/clowdgraph/clowd/pkg/cache"
	"github.com/clowdgraph/clowd/pkg/server"
	"github.com/clowdgraph/clowd/pkg/store"
)

// serveCommand creates the serve command.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		configPath string
		addr       string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP analysis API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := server.DefaultConfig()
			if configPath != "" {
				loaded, err := server.LoadConfig(configPath)
				if err != nil {
					return err
				}
				cfg = loaded
			}
			if addr != "" {
				cfg.Addr = addr
			}

			ctx := cmd.Context()

			cch, err := buildCache(ctx, cfg.Cache)
			if err != nil {
				return fmt.Errorf("init cache: %w", err)
			}

			st, err := buildStore(ctx, cfg.Store)
			if err != nil {
				return fmt.Errorf("init store: %w", err)
			}
			defer st.Close(context.Background())

			runner := analyze.NewRunner(cch, nil, c.Logger)
			defer runner.Close()

			return server.New(cfg, runner, st, c.Logger).Run(ctx)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "path to a TOML config file")
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides config)")

	return cmd
}

func buildCache(ctx context.Context, cfg server.CacheConfig) (cache.Cache, error) {
	switch cfg.Backend {
	case "file":
		dir := cfg.Dir
		if dir == "" {
			var err error
			if dir, err = cacheDir(); err != nil {
				return nil, err
			}
		}
		return cache.NewFileCache(dir)
	case "redis":
		return cache.NewRedisCache(ctx, cfg.RedisURL)
	default:
		return cache.NewNullCache(), nil
	}
}

func buildStore(ctx context.Context, cfg server.StoreConfig) (store.Store, error) {
	if cfg.Backend == "mongo" {
		return store.NewMongoStore(ctx, cfg.MongoURI, cfg.Database)
	}
	return store.NewMemoryStore(), nil
}
