package configs

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/kkyr/fig"
	"go.uber.org/zap"
)

type DB struct {
	Host               string `validate:"required"`
	Port               int    `default:"5432"`
	User               string `default:"postgres"`
	Password           string `validate:"required"`
	Database           string `default:"postgres"`
	SSLMode            string `default:"disable"`
	MaxIdleConnections int    `default:"10"`
	MaxOpenConnections int    `default:"10"`
}

type Server struct {
	Port              int           `default:"8080"`
	BasePath          string
	AllowedOrigins    []string      `default:"[*]"`
	ReadHeaderTimeout time.Duration `default:"5s"`
	ShutdownTimeout   time.Duration `default:"10s"`
}

type Config struct {
	DB     DB
	Server Server
}

const (
	envPrefix         = "BEERCATALOG" // env prefix for env vars
	DefaultConfigFile = ".BeerCatalog.toml"
)

var ErrConfiguration = errors.New("configuration error")

func GetConfig(configFileName string, logger *zap.Logger) (*Config, error) {
	config := Config{}
	homeDir, _ := os.UserHomeDir()

	logger.Info("Loading config", zap.String("file", configFileName))

	err := fig.Load(&config, fig.File(configFileName), fig.Dirs(".", homeDir), fig.UseEnv(envPrefix))
	if err != nil {
		if strings.Contains(err.Error(), "file not found") {
			logger.Warn("Could not find config file", zap.String("file", configFileName))

			err = fig.Load(&config, fig.IgnoreFile(), fig.UseEnv(envPrefix))
			if err != nil {
				return nil, err
			}
		} else {
			return nil, err
		}
	}

	if len(config.Server.BasePath) > 0 && !strings.HasPrefix(config.Server.BasePath, "/") {
		return nil, fmt.Errorf("%w: Server.BasePath must start with /, got %q", ErrConfiguration, config.Server.BasePath)
	}

	config.Server.BasePath = strings.TrimSuffix(config.Server.BasePath, "/")

	return &config, nil
}
