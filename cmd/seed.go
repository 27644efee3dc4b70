package cmd

import (
	"context"

	"go.uber.org/zap"

	"droscher.com/BeerCatalog/configs"
	"droscher.com/BeerCatalog/pkg/repository"
	"droscher.com/BeerCatalog/pkg/seed"
)

type SeedCmd struct {
	ConfigFile string `default:".BeerCatalog.toml" help:"Path to config file"                  short:"c"`
	File       string `help:"Seed file (TOML, YAML or JSON)" required:"" short:"f" type:"existingfile"`
}

func (s *SeedCmd) Run(_ *Context) error {
	logger := toolLogger()
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

	return seed.Run(context.Background(), s.File, repo, logger)
}
