package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dominauta/padring/internal/server"
	"github.com/dominauta/padring/pkg/cache"
	"github.com/dominauta/padring/pkg/pipeline"
	"github.com/dominauta/padring/pkg/store"
)

// serveCommand creates the serve command for running the HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr     string
		redisURL string
		mongoURI string
		mongoDB  string
		noCache  bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Long: `Run the HTTP API.

The server exposes the fan-out pipeline over HTTP:

  POST /v1/fanout        run the pipeline on an inline device
  GET  /v1/layouts/{id}  fetch a stored layout
  GET  /v1/pads          list the available pad prototypes
  GET  /healthz          liveness probe

By default results are cached on the local filesystem and layouts are not
persisted. Point --redis at a Redis instance to share the cache between
replicas, and --mongo at a MongoDB instance to persist layouts.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd.Context(), addr, redisURL, mongoURI, mongoDB, noCache)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	cmd.Flags().StringVar(&redisURL, "redis", "", "Redis URL for the shared cache (e.g. redis://localhost:6379/0)")
	cmd.Flags().StringVar(&mongoURI, "mongo", "", "MongoDB URI for layout persistence (e.g. mongodb://localhost:27017)")
	cmd.Flags().StringVar(&mongoDB, "mongo-db", "", "MongoDB database name (default padring)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")

	return cmd
}

// runServe wires the cache, store, and runner and blocks serving requests.
func (c *CLI) runServe(ctx context.Context, addr, redisURL, mongoURI, mongoDB string, noCache bool) error {
	var (
		rc  cache.Cache
		err error
	)
	switch {
	case noCache:
		rc = cache.NewNullCache()
	case redisURL != "":
		rc, err = cache.NewRedisCache(ctx, redisURL)
		if err != nil {
			return fmt.Errorf("connect redis: %w", err)
		}
	default:
		rc, err = newCache(false)
		if err != nil {
			return fmt.Errorf("initialize cache: %w", err)
		}
	}

	var st store.Store
	if mongoURI != "" {
		st, err = store.NewMongoStore(ctx, mongoURI, mongoDB)
		if err != nil {
			return fmt.Errorf("connect mongodb: %w", err)
		}
		defer st.Close(context.Background())
	}

	runner := pipeline.NewRunner(rc, nil, c.Logger)
	defer runner.Close()

	srv := server.New(server.Config{
		Addr:   addr,
		Runner: runner,
		Store:  st,
		Logger: c.Logger,
	})

	c.Logger.Info("serving", "addr", addr, "redis", redisURL != "", "mongo", mongoURI != "")
	return srv.ListenAndServe(ctx)
}
