package app

import (
	"context"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"
	"go.uber.org/dig"

	"courier-dispatch/internal/config"
	"courier-dispatch/internal/http/handlers"
	"courier-dispatch/internal/logx"
	"courier-dispatch/internal/transport/kafka"
)

func resetFlags(t *testing.T) {
	t.Helper()
	old := pflag.CommandLine
	pflag.CommandLine = pflag.NewFlagSet(os.Args[0], pflag.ContinueOnError)
	t.Cleanup(func() {
		pflag.CommandLine = old
	})
}

func setupTestContainer(t *testing.T) *dig.Container {
	t.Helper()

	c := dig.New()

	providers := []struct {
		name     string
		provider any
	}{
		{"context", func() context.Context { return context.Background() }},
		{"logger", func() logx.Logger { return logx.Nop() }},
		{"config", func() *config.Config { return &config.Config{Port: 8080} }},
		{"pgxpool", func() *pgxpool.Pool { return &pgxpool.Pool{} }},
		{"timeout", func() time.Duration { return 3 * time.Second }},
	}

	for _, p := range providers {
		err := c.Provide(p.provider)
		require.NoErrorf(t, err, "provide %s", p.name)
	}

	require.NoError(t, registerService(c))
	require.NoError(t, registerHTTP(c))
	require.NoError(t, registerWorker(c))

	return c
}

func verifyServer(t *testing.T, srv *http.Server) {
	t.Helper()

	require.NotNil(t, srv, "http.Server is nil")
	require.Equal(t, ":8080", srv.Addr)
	require.Greater(t, srv.ReadHeaderTimeout, time.Duration(0))
	require.Greater(t, srv.ReadTimeout, time.Duration(0))
	require.Greater(t, srv.WriteTimeout, time.Duration(0))
	require.Greater(t, srv.IdleTimeout, time.Duration(0))
}

func TestRegisterServiceAndHTTP_ProvidesHttpServerAndHandlers(t *testing.T) {
	t.Parallel()

	c := setupTestContainer(t)

	err := c.Invoke(func(
		srv *http.Server,
		base *handlers.Handlers,
		courierHandler *handlers.CourierHandler,
		orderHandler *handlers.OrderHandler,
		regionHandler *handlers.RegionHandler,
	) {
		verifyServer(t, srv)
		require.NotNil(t, base)
		require.NotNil(t, courierHandler)
		require.NotNil(t, orderHandler)
		require.NotNil(t, regionHandler)
	})
	require.NoError(t, err)
}

func TestRegisterWorker_NilConsumerWithoutBrokers(t *testing.T) {
	t.Parallel()

	c := setupTestContainer(t)

	err := c.Invoke(func(consumer *kafka.Consumer) {
		require.Nil(t, consumer)
	})
	require.NoError(t, err)
}

func TestProvideAll_Success(t *testing.T) {
	t.Parallel()

	c := dig.New()

	err := provideAll(c,
		func() context.Context { return context.Background() },
		func() time.Duration { return 3 * time.Second },
	)
	require.NoError(t, err)

	err = c.Invoke(func(ctx context.Context, d time.Duration) {
		require.NotNil(t, ctx)
		require.Equal(t, 3*time.Second, d)
	})
	require.NoError(t, err)
}

func TestProvideAll_InvalidProvider(t *testing.T) {
	t.Parallel()

	c := dig.New()

	type bad struct{}
	err := provideAll(c, bad{})
	require.Error(t, err)
}

func TestRegisterCore_ProvidesDependencies(t *testing.T) {
	resetFlags(t)
	t.Setenv("PORT", "")
	t.Setenv("DISPATCH_OPERATION_TIMEOUT", "")

	c := dig.New()
	ctx := context.Background()

	err := registerCore(c, ctx)
	require.NoError(t, err)

	err = c.Invoke(func(
		gotCtx context.Context,
		logger logx.Logger,
		cfg *config.Config,
		timeout time.Duration,
	) {
		require.Equal(t, ctx, gotCtx)
		require.NotNil(t, logger)
		require.NotNil(t, cfg)
		require.Equal(t, cfg.Dispatch.OperationTimeout, timeout)
	})
	require.NoError(t, err)
}

func TestRegisterDb_UsesDbConnectAndProvidesPool(t *testing.T) {
	t.Parallel()

	c := dig.New()
	ctx := context.Background()

	cfg := &config.Config{
		DB: config.DB{
			Host: "localhost",
			Port: "5432",
			User: "user",
			Pass: "pass",
			Name: "db",
		},
	}

	require.NoError(t, c.Provide(func() context.Context { return ctx }))
	require.NoError(t, c.Provide(func() logx.Logger { return logx.Nop() }))
	require.NoError(t, c.Provide(func() *config.Config { return cfg }))

	stubPool := &pgxpool.Pool{}

	stubConnect := func(
		gotCtx context.Context,
		_ logx.Logger,
		dsn string,
		retries int,
		delay time.Duration,
	) (*pgxpool.Pool, error) {
		require.Equal(t, ctx, gotCtx)
		require.Equal(t, cfg.DB.DSN(), dsn)
		require.Equal(t, 10, retries)
		require.Equal(t, time.Second, delay)
		return stubPool, nil
	}

	err := registerDb(c, stubConnect)
	require.NoError(t, err)

	err = c.Invoke(func(pool *pgxpool.Pool) {
		require.Equal(t, stubPool, pool)
	})
	require.NoError(t, err)
}

func TestContainerBuilder_Build_Success(t *testing.T) {
	resetFlags(t)
	t.Setenv("PORT", "")

	ctx := context.Background()

	builder := NewContainerBuilder().
		WithDBConnect(func(context.Context, logx.Logger, string, int, time.Duration) (*pgxpool.Pool, error) {
			return &pgxpool.Pool{}, nil
		})

	c, err := builder.build(ctx)
	require.NoError(t, err)
	require.NotNil(t, c)

	err = c.Invoke(func(pool *pgxpool.Pool) {
		require.NotNil(t, pool)
	})
	require.NoError(t, err)
}
