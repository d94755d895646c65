package main

import (
	"context"
	"time"

	"github.com/yamada-kensetsu/corporate-backend/config"
	"github.com/yamada-kensetsu/corporate-backend/internal/bootstrap"
	"github.com/yamada-kensetsu/corporate-backend/internal/cache"
	cataloghttp "github.com/yamada-kensetsu/corporate-backend/internal/catalog/http"
	catalogrepo "github.com/yamada-kensetsu/corporate-backend/internal/catalog/repository"
	"github.com/yamada-kensetsu/corporate-backend/internal/news"
)

const serviceName = "corporate-backend"

func main() {
	cfg, err := config.Load()
	if err != nil {
		config.Log.WithError(err).Fatal("invalid configuration")
	}
	config.InitLogger(cfg.App)
	bootstrap.SetGinMode(cfg.App.Environment)

	ctx := context.Background()

	pool, err := bootstrap.OpenDB(ctx, cfg.Database)
	if err != nil {
		config.Log.WithError(err).Fatal("database unavailable")
	}
	defer pool.Close()

	// The cache is optional: no Redis means every read hits Postgres.
	var store *cache.Store
	rdb, err := bootstrap.OpenRedis(ctx, cfg.Redis)
	if err != nil {
		config.Log.WithError(err).Warn("redis unavailable, read cache disabled")
	} else if rdb != nil {
		store = cache.New(rdb, time.Duration(cfg.Cache.TTLSeconds)*time.Second)
	}

	r := bootstrap.BuildRouter(bootstrap.RouterDeps{
		ServiceName:  serviceName,
		Version:      cfg.App.Version,
		DB:           pool,
		Cache:        store,
		CORSOrigins:  cfg.Server.CORSOrigins,
		ContactRPM:   cfg.Contact.RequestsPerMinute,
		ContactBurst: cfg.Contact.Burst,
	})

	if store != nil {
		sources := cataloghttp.WarmSources(catalogrepo.NewProjectRepository(pool))
		sources = append(sources, news.WarmSources(news.NewRepo(pool))...)

		warmer := cache.NewWarmer(store, cfg.Cache.WarmSpec, sources)
		if err := warmer.Start(); err != nil {
			config.Log.WithError(err).Warn("cache warmer not started")
		} else {
			defer warmer.Stop()
		}
	}

	config.Log.WithField("port", cfg.Server.Port).Info("listening")
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		config.Log.WithError(err).Fatal("server stopped")
	}
}
