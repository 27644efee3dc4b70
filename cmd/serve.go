package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"droscher.com/BeerCatalog/configs"
	"droscher.com/BeerCatalog/pkg/repository"
	"droscher.com/BeerCatalog/pkg/server"
	"droscher.com/BeerCatalog/pkg/service"
)

type ServeCmd struct {
	ConfigFile string `default:".BeerCatalog.toml" help:"Path to config file" short:"c"`
}

func (s *ServeCmd) Run(cliCtx *Context) error {
	logConfig := zap.NewProductionConfig()
	if cliCtx.Debug {
		logConfig = zap.NewDevelopmentConfig()
	}

	logger, _ := logConfig.Build()
	defer logger.Sync() //nolint:errcheck // we don't care about logger sync errors

	conf, err := configs.GetConfig(s.ConfigFile, logger)
	if err != nil {
		logger.Error("error loading config", zap.Error(err))

		return err
	}

	repo, err := repository.Open(conf, logger)
	if err != nil {
		logger.Error("error connecting to database", zap.Error(err))

		return err
	}
	defer repo.Close()

	services := server.Services{
		Beers:      service.NewBeerService(repo, repo, repo, repo, logger),
		Breweries:  service.NewBreweryService(repo, logger),
		Categories: service.NewCategoryService(repo, logger),
		Styles:     service.NewStyleService(repo, logger),
	}

	handler := server.NewServer(conf.Server, services, repo, logger).Handler()

	svr := &http.Server{
		Addr:              fmt.Sprintf(":%d", conf.Server.Port),
		ReadHeaderTimeout: conf.Server.ReadHeaderTimeout,
		Handler:           h2c.NewHandler(handler, &http2.Server{}),
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	serveErr := make(chan error, 1)

	go func() {
		logger.Info("starting server", zap.String("address", svr.Addr), zap.String("base_path", conf.Server.BasePath))
		serveErr <- svr.ListenAndServe()
	}()

	select {
	case err = <-serveErr:
		if !errors.Is(err, http.ErrServerClosed) {
			logger.Error("failed to start server", zap.Error(err))

			return err
		}

		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), conf.Server.ShutdownTimeout)
	defer cancel()

	if err = svr.Shutdown(shutdownCtx); err != nil {
		logger.Error("error shutting down server", zap.Error(err))

		return err
	}

	return nil
}
