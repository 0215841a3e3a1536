package cli

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/cladegram/internal/api"
	"github.com/matzehuels/cladegram/pkg/cache"
	"github.com/matzehuels/cladegram/pkg/config"
	"github.com/matzehuels/cladegram/pkg/pipeline"
)

// newServeCmd creates the serve command for running the HTTP API.
func newServeCmd() *cobra.Command {
	var (
		addr       string
		configPath string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the cladegram HTTP API",
		Long: `Serve runs the HTTP API exposing the parse and render pipeline.

The cache backend comes from the configuration file ([cache] section):
"file" (default), "redis", or "none". Flags override the file.

Examples:
  cladegram serve
  cladegram serve --addr :9090
  CLADEGRAM_CONFIG=prod.toml cladegram serve`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd, addr, configPath)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides config)")
	cmd.Flags().StringVar(&configPath, "config", "", "path to a TOML configuration file")

	return cmd
}

func runServe(cmd *cobra.Command, addr, configPath string) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}
	if addr != "" {
		cfg.Serve.Addr = addr
	}

	c, err := serveCache(ctx, cfg)
	if err != nil {
		return err
	}
	runner := pipeline.NewRunner(c, logger)
	defer runner.Close()

	server := api.New(api.Config{
		Addr:         cfg.Serve.Addr,
		ReadTimeout:  cfg.Serve.ReadTimeout.Duration,
		WriteTimeout: cfg.Serve.WriteTimeout.Duration,
	}, runner, logger)

	// Shut down cleanly when the context is cancelled (SIGINT/SIGTERM).
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("shutdown", "error", err)
		}
	}()

	if err := server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	logger.Info("server stopped")
	return nil
}

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.Load(path)
	}
	return config.LoadDefault()
}

// serveCache builds the cache backend named by the configuration.
func serveCache(ctx context.Context, cfg *config.Config) (cache.Cache, error) {
	switch cfg.Cache.Backend {
	case "none":
		return cache.NewNullCache(), nil
	case "redis":
		return cache.NewRedisCache(ctx, cache.RedisConfig{
			Addr:     cfg.Cache.Redis.Addr,
			Password: cfg.Cache.Redis.Password,
			DB:       cfg.Cache.Redis.DB,
		})
	default:
		dir, err := cfg.CacheDir()
		if err != nil {
			return cache.NewNullCache(), nil
		}
		return cache.NewFileCache(dir)
	}
}
