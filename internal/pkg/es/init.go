package es

import (
	"context"
	log "log/slog"
	"net/http"

	"mysonai/internal/api/config"
	"mysonai/internal/pkg/logger"

	"github.com/elastic/go-elasticsearch/v8"
)

var Client *elasticsearch.TypedClient

var BlogIndex string

const (
	NotFoundCode = 404
	ConflictCode = 409
)

// InitClient initializes the Elasticsearch client used for blog search.
func InitClient() error {
	elasticCfg := config.Cfg.Elastic

	BlogIndex = elasticCfg.Indices.BlogIndex

	cfg := elasticsearch.Config{
		Addresses: []string{elasticCfg.Address},
		Username:  elasticCfg.Username,
		Password:  elasticCfg.Password,
		Transport: &logger.ESTransport{
			Transport: http.DefaultTransport,
		},
	}

	var err error
	Client, err = elasticsearch.NewTypedClient(cfg)
	if err != nil {
		log.Error("Cannot Connect to Elasticsearch", "err", err)
		return err
	}

	info, err := Client.Info().Do(context.Background())
	if err != nil {
		log.Error("Cannot Connect to Elasticsearch", "err", err)
		return err
	}

	log.Info("Connected to Elasticsearch", "version", info.Version.Int)
	return nil
}
