package factory

import (
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/nestjam/astrotools/internal/client"
	conf "github.com/nestjam/astrotools/internal/config"
	"github.com/nestjam/astrotools/internal/log"
	"github.com/nestjam/astrotools/internal/resolver"
)

// NewLogger создает логгер, помеченный идентификатором запуска, и функцию его закрытия.
func NewLogger(level string) (*zap.Logger, func(), error) {
	logger, err := log.New(level)

	if err != nil {
		return nil, nil, err
	}

	logger = logger.With(zap.String("run", uuid.NewString()))
	return logger, func() { _ = logger.Sync() }, nil
}

// NewClient создает клиент AstroBin по конфигурации.
func NewClient(conf conf.Config, logger *zap.Logger) *client.Client {
	return client.New(
		client.WithBaseURL(conf.BaseURL),
		client.WithTimeout(conf.Timeout),
		client.WithLogger(logger),
	)
}

// NewResolver создает Resolver по конфигурации.
func NewResolver(conf conf.Config, logger *zap.Logger) *resolver.Resolver {
	return resolver.New(NewClient(conf, logger), logger, resolver.WithWorkers(conf.Workers))
}
