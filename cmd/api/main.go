package main

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	dbadapter "github.com/Nazary21/Teammatic/internal/adapter/db"
	httpadapter "github.com/Nazary21/Teammatic/internal/adapter/http"
	"github.com/Nazary21/Teammatic/internal/adapter/http/handlers"
	httpmiddleware "github.com/Nazary21/Teammatic/internal/adapter/http/middleware"
	appservice "github.com/Nazary21/Teammatic/internal/app/service"
	"github.com/Nazary21/Teammatic/internal/config"
	"github.com/Nazary21/Teammatic/pkg/translator"
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
		logger.Fatal("failed to connect to mysql", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Warn("failed to close mysql connection", zap.Error(err))
		}
	}()

	if err := dbadapter.EnsureSchema(db); err != nil {
		logger.Fatal("failed to apply schema", zap.Error(err))
	}

	taskRepository := dbadapter.NewTaskRepository(db)
	projectRepository := dbadapter.NewProjectRepository(db)
	collectionRepository := dbadapter.NewCollectionRepository(db)

	taskService := appservice.NewTaskService(taskRepository)
	projectService := appservice.NewProjectService(projectRepository)
	collectionService := appservice.NewCollectionService(collectionRepository)

	r := gin.New()
	r.Use(gin.Recovery(), httpmiddleware.RequestLogger(logger))
	if cfg.TrustedProxies != nil {
		if err := r.SetTrustedProxies(cfg.TrustedProxies); err != nil {
			logger.Fatal("invalid trusted proxies", zap.Error(err))
		}
	}

	healthHandler := handlers.NewHealthHandler(db)
	taskHandler := handlers.NewTaskHandler(taskService)
	projectHandler := handlers.NewProjectHandler(projectService, collectionService)
	collectionHandler := handlers.NewCollectionHandler(collectionService)
	httpadapter.RegisterRoutes(r, healthHandler, taskHandler, projectHandler, collectionHandler)

	addr := ":" + cfg.AppPort
	logger.Info("starting server", zap.String("addr", addr))
	if err := r.Run(addr); err != nil {
		logger.Fatal("could not start server", zap.Error(err))
	}
}
