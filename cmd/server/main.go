package main

import (
	"log"

	"github.com/greenroute/carbon-backend-go/internal/analysis"
	"github.com/greenroute/carbon-backend-go/internal/api"
	"github.com/greenroute/carbon-backend-go/internal/carbon"
	"github.com/greenroute/carbon-backend-go/internal/classify"
	"github.com/greenroute/carbon-backend-go/internal/config"
	"github.com/greenroute/carbon-backend-go/internal/database"
	"github.com/greenroute/carbon-backend-go/internal/handler"
	"github.com/greenroute/carbon-backend-go/internal/repository"
	"github.com/greenroute/carbon-backend-go/internal/service"
)

func main() {
	cfg := config.Load()

	db, err := database.Open(database.Config{Path: cfg.DBPath})
	if err != nil {
		log.Fatal("Failed to initialize database:", err)
	}
	defer db.Close()

	if err := database.NewMigrationManager(db).RunMigrations(); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	pointRepo := repository.NewPointRepository(db)
	tripRepo := repository.NewTripRepository(db)
	analysisRepo := repository.NewAnalysisRepository(db)

	estimator := carbon.NewEstimator(carbon.DefaultFactors())

	// Tier A is always present; Tier B joins when an endpoint is configured
	var classifier classify.Classifier = classify.NewHeuristicClassifier()
	if cfg.AIEndpoint != "" {
		aiCfg := classify.DefaultAIConfig()
		aiCfg.Endpoint = cfg.AIEndpoint
		aiCfg.APIKey = cfg.AIAPIKey
		aiCfg.Model = cfg.AIModel
		aiCfg.Timeout = cfg.AITimeout

		ai := classify.NewAIClassifier(aiCfg, classify.NewSQLiteCache(db))
		classifier = classify.NewFallbackClassifier(ai, classifier)
		log.Printf("[Server] AI classifier enabled: %s", cfg.AIModel)
	}

	location := cfg.Location()
	analysisService := service.NewAnalysisService(
		db, pointRepo, tripRepo, analysisRepo,
		analysis.DefaultConfig(),
		classifier,
		analysis.NewTimeOfDayClassifier(location),
		estimator,
		location,
	)
	summaryService := service.NewSummaryService(analysisRepo, estimator)
	tripService := service.NewTripService(tripRepo)

	router := api.SetupRouter(
		handler.NewAnalysisHandler(analysisService, summaryService),
		handler.NewTripHandler(tripService),
	)

	log.Printf("Server starting on port %s", cfg.Port)
	if err := router.Run(cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
