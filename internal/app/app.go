// Package app wires configuration, stores, services and both HTTP servers
// into a runnable process.
package app

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/voluntariados/backend/internal/api"
	"github.com/voluntariados/backend/internal/api/gql"
	"github.com/voluntariados/backend/internal/core/domain"
	"github.com/voluntariados/backend/internal/core/ports"
	"github.com/voluntariados/backend/internal/core/service"
	"github.com/voluntariados/backend/internal/infrastructure/db/memory"
	mongostore "github.com/voluntariados/backend/internal/infrastructure/db/mongo"
	redisstore "github.com/voluntariados/backend/internal/infrastructure/db/redis"
	"github.com/voluntariados/backend/internal/infrastructure/seed"
	"github.com/voluntariados/backend/internal/pkg/config"
	"github.com/voluntariados/backend/pkg/logger"
)

type App struct {
	cfg *config.Config
	log zerolog.Logger

	usuarios      *service.Records[domain.Usuario]
	voluntariados *service.Records[domain.Voluntariado]

	rest    *echo.Echo
	graphql *echo.Echo

	pingers map[string]ports.Pinger
	closers []func(context.Context) error

	registerer prometheus.Registerer
	gatherer   prometheus.Gatherer
}

type Option func(*App)

// WithRegistry sends HTTP metrics to reg instead of the global registry.
func WithRegistry(reg *prometheus.Registry) Option {
	return func(a *App) {
		a.registerer = reg
		a.gatherer = reg
	}
}

// New connects the configured backend, applies the seed file if any and
// builds both servers. Call Close when Run is not used.
func New(ctx context.Context, cfg *config.Config, log zerolog.Logger, opts ...Option) (*App, error) {
	a := &App{
		cfg:     cfg,
		log:     log,
		pingers: map[string]ports.Pinger{},
	}
	for _, opt := range opts {
		opt(a)
	}

	usuarioStore, voluntariadoStore, err := a.openStores(ctx)
	if err != nil {
		return nil, err
	}
	a.usuarios = service.NewUsuarioService(usuarioStore, logger.Component(log, "service"))
	a.voluntariados = service.NewVoluntariadoService(voluntariadoStore, logger.Component(log, "service"))

	if cfg.SeedFile != "" {
		if err := a.seed(ctx); err != nil {
			_ = a.Close(ctx)
			return nil, err
		}
	}

	deps := api.Deps{
		Usuarios:      a.usuarios,
		Voluntariados: a.voluntariados,
		Pingers:       a.pingers,
		Registerer:    a.registerer,
		Gatherer:      a.gatherer,
	}

	deps.Logger = logger.Component(log, "rest")
	if a.rest, err = api.NewRouter(deps); err != nil {
		_ = a.Close(ctx)
		return nil, err
	}

	deps.Logger = logger.Component(log, "graphql")
	if a.graphql, err = gql.NewRouter(deps); err != nil {
		_ = a.Close(ctx)
		return nil, err
	}

	return a, nil
}

func (a *App) openStores(ctx context.Context) (ports.RecordStore[domain.Usuario], ports.RecordStore[domain.Voluntariado], error) {
	switch a.cfg.Backend {
	case config.BackendMongo:
		client, db, err := mongostore.Connect(ctx, mongostore.Config{
			URI:      a.cfg.Mongo.URI,
			Database: a.cfg.Mongo.Database,
		})
		if err != nil {
			return nil, nil, err
		}
		a.pingers["mongodb"] = mongostore.NewPinger(client)
		a.closers = append(a.closers, client.Disconnect)

		usuarios := mongostore.NewUsuarioRepository(db)
		if err := usuarios.EnsureIndexes(ctx); err != nil {
			_ = client.Disconnect(ctx)
			return nil, nil, err
		}
		a.log.Info().Str("database", a.cfg.Mongo.Database).Msg("using mongodb store")
		return usuarios, mongostore.NewVoluntariadoRepository(db), nil

	case config.BackendRedis:
		client, err := redisstore.Connect(ctx, redisstore.Config{
			Addr: a.cfg.Redis.Addr,
			DB:   a.cfg.Redis.DB,
		})
		if err != nil {
			return nil, nil, err
		}
		a.pingers["redis"] = redisstore.NewPinger(client)
		a.closers = append(a.closers, func(context.Context) error { return client.Close() })

		a.log.Info().Str("addr", a.cfg.Redis.Addr).Msg("using redis store")
		return redisstore.NewUsuarioStore(client, a.cfg.Redis.Prefix),
			redisstore.NewVoluntariadoStore(client, a.cfg.Redis.Prefix), nil

	case config.BackendMemory:
		a.log.Info().Msg("using in-memory store")
		return memory.NewUsuarioStore(), memory.NewVoluntariadoStore(), nil
	}
	return nil, nil, fmt.Errorf("app: unknown store backend %q", a.cfg.Backend)
}

func (a *App) seed(ctx context.Context) error {
	data, err := seed.Load(a.cfg.SeedFile)
	if err != nil {
		return err
	}
	_, err = seed.Apply(ctx, data, a.usuarios, a.voluntariados, logger.Component(a.log, "seed"))
	return err
}

// REST returns the REST server's handler.
func (a *App) REST() http.Handler { return a.rest }

// GraphQL returns the GraphQL server's handler.
func (a *App) GraphQL() http.Handler { return a.graphql }

// Run serves REST on PORT and GraphQL on GRAPHQL_PORT until ctx is done or
// either server fails, then shuts both down and releases the backend.
func (a *App) Run(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error { return a.serve(a.rest, a.cfg.Port, "rest") })
	g.Go(func() error { return a.serve(a.graphql, a.cfg.GraphQLPort, "graphql") })
	g.Go(func() error {
		<-gctx.Done()
		return a.shutdown()
	})

	err := g.Wait()
	a.log.Info().Msg("servers stopped")
	return err
}

func (a *App) serve(e *echo.Echo, port, name string) error {
	addr := net.JoinHostPort("", port)
	a.log.Info().Str("server", name).Str("addr", addr).Msg("listening")
	if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("%s server: %w", name, err)
	}
	return nil
}

func (a *App) shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
	defer cancel()

	a.log.Info().Dur("timeout", a.cfg.ShutdownTimeout).Msg("shutting down")
	return errors.Join(
		a.rest.Shutdown(ctx),
		a.graphql.Shutdown(ctx),
		a.Close(ctx),
	)
}

// Close releases the backend connection.
func (a *App) Close(ctx context.Context) error {
	var errs []error
	for _, c := range a.closers {
		errs = append(errs, c(ctx))
	}
	a.closers = nil
	return errors.Join(errs...)
}
