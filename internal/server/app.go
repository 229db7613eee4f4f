// Package server initializes and runs the identity-service application:
// it wires configuration, storage, the auth subsystem and the HTTP server,
// and handles graceful shutdown.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dkravchenko/identity-service/internal/logging"
	"github.com/dkravchenko/identity-service/internal/server/auth"
	"github.com/dkravchenko/identity-service/internal/server/config"
	"github.com/dkravchenko/identity-service/internal/server/credentials"
	"github.com/dkravchenko/identity-service/internal/server/httpapi"
	"github.com/dkravchenko/identity-service/internal/server/identities"
	"github.com/dkravchenko/identity-service/internal/server/shared/db"
)

type App struct {
	config     *config.Config
	logger     logging.Logger
	httpServer *httpapi.Server
}

func NewApp(c *config.Config) (*App, error) {

	slogger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	logger := logging.NewSlogLogger(slogger)

	manager, err := db.NewPostgresRepositoryManager(c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	hasher := auth.NewHasher(auth.Argon2idParams{
		Time:      c.ArgonTime,
		MemoryKiB: c.ArgonMemoryKiB,
		Threads:   c.ArgonThreads,
		SaltLen:   16,
		KeyLen:    32,
	})
	tokens := auth.NewTokenService([]byte(c.SecretKey), c.TokenValidityDuration)

	credentialService := credentials.NewService(manager.Credentials(), hasher, tokens)
	identityService := identities.NewService(manager.Identities())

	httpServer := httpapi.NewServer(c.EndpointAddrHTTP, logger, credentialService, identityService, tokens)

	return &App{config: c, logger: logger, httpServer: httpServer}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {
	if err := app.httpServer.Run(ctx); err != nil {
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
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()
}
