// Package server initializes and runs the reference sync server: it wires
// configuration, storage and the gRPC endpoint together and handles graceful
// shutdown.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/avoronov84/domainkeeper/internal/logging"
	"github.com/avoronov84/domainkeeper/internal/server/config"
	gs "github.com/avoronov84/domainkeeper/internal/server/grpc"
	"github.com/avoronov84/domainkeeper/internal/server/storage"
)

type App struct {
	config *config.Config
	logger logging.Logger
	store  *storage.BlobStore
}

func NewApp(c *config.Config) (*App, error) {

	slogger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	logger := logging.NewSlogLogger(slogger)

	if c.Username == "" || c.Password == "" {
		return nil, errors.New("server requires configured client credentials (username and password)")
	}
	if c.TLSCertFile == "" || c.TLSKeyFile == "" {
		return nil, errors.New("server requires a TLS certificate and key")
	}

	store, err := storage.NewBlobStore(c.DataDir)
	if err != nil {
		return nil, fmt.Errorf("storage init error: %w", err)
	}

	return &App{config: c, logger: logger, store: store}, nil
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

	s := gs.NewGRPCServer(
		app.config.EndpointAddrGRPC,
		app.logger,
		app.store,
		app.config.Username,
		app.config.Password,
		app.config.TLSCertFile,
		app.config.TLSKeyFile,
	)

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
}
