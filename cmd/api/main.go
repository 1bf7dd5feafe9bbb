package main

import (
	"taskstats/pkg/translator"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	dbadapter "taskstats/internal/adapter/db"
	httpadapter "taskstats/internal/adapter/http"
	"taskstats/internal/adapter/http/handlers"
	httpmiddleware "taskstats/internal/adapter/http/middleware"
	appservice "taskstats/internal/app/service"
	"taskstats/internal/config"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	// Make zap available to packages that log through zap.L().
	zap.ReplaceGlobals(logger)
	defer func() {
		if err := logger.Sync(); err != nil {
			zap.L().Debug("failed to sync logger", zap.Error(err))
		}
	}()

	translator.InitTranslator(translator.Config{
		TranslationFolder:  "pkg/translator/translation",
		SupportedLanguages: []string{translator.LanguageFr, translator.LanguageEn},
	})

	cfg := config.LoadConfig()
	db, err := dbadapter.ConnectDB(cfg)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.String("driver", cfg.DbDriver), zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Warn("failed to close database connection", zap.Error(err))
		}
	}()

	statsService := appservice.NewStatsService(
		dbadapter.NewTaskRepository(db),
		dbadapter.NewProjectRepository(db),
		dbadapter.NewCategoryRepository(db),
		appservice.WithLocation(cfg.StatsLocation),
		appservice.WithWeekStart(cfg.WeekStart),
	)

	r := gin.New()
	if err := r.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		logger.Fatal("invalid trusted proxies", zap.Strings("proxies", cfg.TrustedProxies), zap.Error(err))
	}
	r.Use(gin.Recovery(), httpmiddleware.RequestIDMiddleware(), httpmiddleware.GinZapMiddleware(logger))
	healthHandler := handlers.NewHealthHandler(db, cfg.StatsLocation)
	statsHandler := handlers.NewStatsHandler(statsService)
	httpadapter.RegisterRoutes(r, healthHandler, statsHandler)

	port := cfg.AppPort
	if port == "" {
		port = "8080"
	}
	addr := ":" + port
	logger.Info("starting server",
		zap.String("addr", addr),
		zap.String("driver", cfg.DbDriver),
		zap.String("stats_timezone", cfg.StatsLocation.String()),
	)
	if err := r.Run(addr); err != nil {
		logger.Fatal("could not start server", zap.Error(err))
	}
}
