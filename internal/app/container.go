package app

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/dig"

	"courier-dispatch/internal/config"
	"courier-dispatch/internal/http/handlers"
	"courier-dispatch/internal/http/router"
	"courier-dispatch/internal/logx"
	"courier-dispatch/internal/metrics"
	"courier-dispatch/internal/repository"
	"courier-dispatch/internal/service/assignment"
	"courier-dispatch/internal/service/completion"
	"courier-dispatch/internal/service/courier"
	"courier-dispatch/internal/service/events"
	"courier-dispatch/internal/service/order"
	"courier-dispatch/internal/service/region"
	"courier-dispatch/internal/transport/kafka"
)

// ContainerBuilder is a dig container builder.
type ContainerBuilder struct {
	dbConnect func(context.Context, logx.Logger, string, int, time.Duration) (*pgxpool.Pool, error)
	logFatalf func(string, ...interface{})
}

// NewContainerBuilder returns a new dig container builder
func NewContainerBuilder() *ContainerBuilder {
	return &ContainerBuilder{
		dbConnect: connectDbWithRetry,
		logFatalf: log.Fatalf,
	}
}

// WithDBConnect sets the database connection function
func (b *ContainerBuilder) WithDBConnect(
	fn func(context.Context, logx.Logger, string, int, time.Duration) (*pgxpool.Pool, error),
) *ContainerBuilder {
	if fn != nil {
		b.dbConnect = fn
	}
	return b
}

// WithLogFatalf sets the log.Fatalf function
func (b *ContainerBuilder) WithLogFatalf(fn func(string, ...interface{})) *ContainerBuilder {
	if fn != nil {
		b.logFatalf = fn
	}
	return b
}

// MustBuild builds and returns a new dig container
func (b *ContainerBuilder) MustBuild(ctx context.Context) *dig.Container {
	container, err := b.build(ctx)
	if err != nil {
		b.logFatalf("failed to build container: %v", err)
	}
	return container
}

// build builds and returns a new dig container
func (b *ContainerBuilder) build(ctx context.Context) (*dig.Container, error) {
	container := dig.New()

	if err := registerCore(container, ctx); err != nil {
		return nil, fmt.Errorf("core: %w", err)
	}
	if err := registerDb(container, b.dbConnect); err != nil {
		return nil, fmt.Errorf("DB: %w", err)
	}
	if err := registerService(container); err != nil {
		return nil, fmt.Errorf("service: %w", err)
	}
	if err := registerHTTP(container); err != nil {
		return nil, fmt.Errorf("http: %w", err)
	}
	if err := registerWorker(container); err != nil {
		return nil, fmt.Errorf("worker: %w", err)
	}
	return container, nil
}

// MustBuildContainer builds and returns a new dig container
func MustBuildContainer(ctx context.Context) *dig.Container {
	return NewContainerBuilder().MustBuild(ctx)
}

func provideAll(container *dig.Container, providers ...any) error {
	for _, provider := range providers {
		if err := container.Provide(provider); err != nil {
			return fmt.Errorf("provide %T: %w", provider, err)
		}
	}
	return nil
}

func registerCore(container *dig.Container, ctx context.Context) error {
	return provideAll(container,
		func() context.Context { return ctx },
		NewLogger,
		config.Load,
		func(cfg *config.Config) time.Duration { return cfg.Dispatch.OperationTimeout },
	)
}

func registerDb(
	container *dig.Container,
	dbConnect func(context.Context, logx.Logger, string, int, time.Duration) (*pgxpool.Pool, error),
) error {
	providerDB := func(ctx context.Context, logger logx.Logger, cfg *config.Config) (*pgxpool.Pool, error) {
		return dbConnect(ctx, logger, cfg.DB.DSN(), 10, time.Second)
	}
	return provideAll(container, providerDB)
}

// registerCounter registers the counter on the default registry, reusing the
// already registered collector when the container is built more than once.
func registerCounter(c prometheus.Counter) prometheus.Counter {
	if err := prometheus.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(prometheus.Counter); ok {
				return existing
			}
		}
	}
	return c
}

func registerService(container *dig.Container) error {
	return provideAll(container,
		repository.NewCourierRepo,
		repository.NewOrderRepo,
		repository.NewRegionRepo,
		func(
			repo *repository.CourierRepo,
			regions *repository.RegionRepo,
			tx *repository.OrderRepo,
			timeout time.Duration,
			logger logx.Logger,
		) *courier.Service {
			return courier.NewService(repo, regions, tx, timeout, logger)
		},
		func(
			repo *repository.OrderRepo,
			regions *repository.RegionRepo,
			timeout time.Duration,
			logger logx.Logger,
		) *order.Service {
			return order.NewService(repo, regions, timeout, logger)
		},
		func(repo *repository.RegionRepo, timeout time.Duration) *region.Service {
			return region.NewService(repo, timeout)
		},
		func(tx *repository.OrderRepo, timeout time.Duration, logger logx.Logger) *assignment.Service {
			return assignment.NewService(tx, timeout, logger, registerCounter(metrics.NewOrdersAssignedTotal()))
		},
		func(tx *repository.OrderRepo, timeout time.Duration, logger logx.Logger) *completion.Service {
			return completion.NewService(tx, timeout, logger, registerCounter(metrics.NewOrdersCompletedTotal()))
		},
		func(
			orderSvc *order.Service,
			completionSvc *completion.Service,
			tx *repository.OrderRepo,
			logger logx.Logger,
		) *events.Processor {
			return events.NewProcessor(orderSvc, completionSvc, tx, logger)
		},
	)
}

func registerHTTP(container *dig.Container) error {
	serverProvider := func(cfg *config.Config, mux http.Handler) *http.Server {
		return &http.Server{
			Addr:              fmt.Sprintf(":%d", cfg.Port),
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
			ReadTimeout:       15 * time.Second,
			WriteTimeout:      15 * time.Second,
			IdleTimeout:       60 * time.Second,
		}
	}
	return provideAll(container,
		handlers.New,
		handlers.NewCourierUsecase,
		handlers.NewCourierHandler,
		handlers.NewOrderUsecase,
		handlers.NewAssignmentUsecase,
		handlers.NewCompletionUsecase,
		handlers.NewOrderHandler,
		handlers.NewRegionUsecase,
		handlers.NewRegionHandler,
		router.New,
		serverProvider,
	)
}

func registerWorker(container *dig.Container) error {
	consumerProvider := func(cfg *config.Config, logger logx.Logger, p *events.Processor) (*kafka.Consumer, error) {
		return kafka.NewConsumer(logger, cfg.Kafka.Brokers, cfg.Kafka.GroupID, cfg.Kafka.Topic, makeOrdersKafka(p))
	}
	return provideAll(container, consumerProvider)
}
