// Package server initializes and runs the AuthGate server application.
// It opens the KV store, wires the registries and services together,
// handles graceful shutdown, and starts the gRPC endpoint.
package server

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/mlebedev/authgate/internal/logging"
	"github.com/mlebedev/authgate/internal/server/auth"
	"github.com/mlebedev/authgate/internal/server/config"
	"github.com/mlebedev/authgate/internal/server/invites"
	"github.com/mlebedev/authgate/internal/server/kv"
	"github.com/mlebedev/authgate/internal/server/ratelimit"
	"github.com/mlebedev/authgate/internal/server/refreshtokens"
	"github.com/mlebedev/authgate/internal/server/users"
	"github.com/mlebedev/authgate/internal/timex"
	"golang.org/x/time/rate"

	gs "github.com/mlebedev/authgate/internal/server/grpc"
)

const (
	bucketCredentials   = "credentials"
	bucketRefreshTokens = "refresh_tokens"
	bucketInvites       = "invites"
)

type App struct {
	config        *config.Config
	logger        logging.Logger
	store         *kv.SQLiteStore
	accounts      *users.Service
	refreshTokens *refreshtokens.Registry
	invites       *invites.Registry
	codec         *auth.Codec
}

func NewApp(c *config.Config) (*App, error) {

	logger := logging.NewJSON(os.Stdout)

	store, err := kv.NewSQLiteStore(c.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("store init error: %w", err)
	}

	clock := timex.System
	codec := auth.NewCodec([]byte(c.SecretKey), c.AccessTokenValidityDuration, clock)

	tokens := refreshtokens.NewRegistry(store.Bucket(bucketRefreshTokens),
		c.RefreshTokenValidityDuration, clock, logger)
	inv := invites.NewRegistry(store.Bucket(bucketInvites), clock, logger)
	repo := users.NewKVRepository(store.Bucket(bucketCredentials))

	limiter := ratelimit.NewPerKey(rate.Limit(float64(c.LoginRatePerMinute)/60.0), c.LoginRateBurst)

	accounts := users.NewService(repo, tokens, inv, codec, limiter, c.BootstrapUsername, logger)

	return &App{
		config:        c,
		logger:        logger,
		store:         store,
		accounts:      accounts,
		refreshTokens: tokens,
		invites:       inv,
		codec:         codec,
	}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startGRPCServer(ctx context.Context, cancelFunc context.CancelFunc) {

	s := gs.NewGRPCServer(app.config.EndpointAddrGRPC, app.accounts,
		app.refreshTokens, app.invites, app.codec, app.logger)

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startGRPCServer(ctx, cancelFunc)
	}()

	wg.Wait()

	if err := app.store.Close(); err != nil {
		app.logger.Error(ctx, "error closing store", "error", err.Error())
	}
}
