package cli

import (
	"github.com/spf13/cobra"

	"github.com/ballotviz/ballotviz/pkg/cache"
	"github.com/ballotviz/ballotviz/pkg/pipeline"
	"github.com/ballotviz/ballotviz/pkg/server"
)

// serveCommand creates the serve command.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr       string
		datasets   string
		configPath string
		redisAddr  string
		noCache    bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve visualizations over HTTP",
		Long: `Start an HTTP server exposing the render pipeline.

Endpoints:
  GET /v1/render?viz=parliament&format=svg&dataset=<name>
  GET /healthz

With --redis the render cache is stored in Redis, which lets several
server instances share one cache. Otherwise the file cache is used.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}

			var store cache.Cache
			switch {
			case noCache:
				store = cache.NewNullCache()
			case redisAddr != "":
				store, err = cache.NewRedisCache(ctx, redisAddr)
				if err != nil {
					return err
				}
			default:
				store, err = newCache(false)
				if err != nil {
					return err
				}
			}

			runner := pipeline.NewRunner(store, nil, c.Logger)
			defer runner.Close()

			srv := server.New(runner, cfg, datasets, addr, c.Logger)
			return srv.ListenAndServe(ctx)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "Listen address")
	cmd.Flags().StringVar(&datasets, "datasets", "datasets", "Directory containing dataset files")
	cmd.Flags().StringVar(&configPath, "config", "", "Path to a TOML config file")
	cmd.Flags().StringVar(&redisAddr, "redis", "", "Redis address for a shared render cache")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "Disable the render cache")

	return cmd
}
