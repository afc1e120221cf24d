package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/cors"

	"housing-service/internal/config"
	"housing-service/internal/database"
	"housing-service/internal/handler"
	"housing-service/internal/logger"
	"housing-service/internal/mongo"
	"housing-service/internal/repository"
	"housing-service/internal/service"
)

func main() {
	migrate := flag.Bool("migrate", false, "create the schema, seed reference data and exit")
	flag.Parse()

	log := logger.New()
	if err := godotenv.Load(); err != nil {
		log.Warn("No .env file loaded: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Error("Config: %v", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := database.Connect(ctx, cfg, log)
	if err != nil {
		log.Error("%v", err)
		os.Exit(1)
	}
	defer db.Close()

	if *migrate {
		if err := database.Migrate(ctx, db, log); err != nil {
			log.Error("%v", err)
			os.Exit(1)
		}
		return
	}

	listingRepo := repository.NewListingRepository(db)
	catalogRepo := repository.NewCatalogRepository(db)
	universityRepo := repository.NewUniversityRepository(db)

	var routeStore service.RouteStore
	if cfg.MongoURI != "" {
		client, err := mongo.NewMongoClient(ctx, cfg.MongoURI)
		if err != nil {
			log.Error("%v", err)
			os.Exit(1)
		}
		defer client.Disconnect(context.Background())

		routeRepo := repository.NewRouteRepository(client, cfg.MongoDB)
		if err := routeRepo.EnsureIndexes(ctx); err != nil {
			log.Warn("%v", err)
		}
		routeStore = routeRepo
		log.Info("Connected to MongoDB, route geometry enabled")
	} else {
		log.Warn("MONGO_URI is empty, route geometry disabled")
	}

	router := handler.NewRouter(cfg.JWTSecret, cfg.JWTAlgorithm,
		handler.NewListingHandler(service.NewListingService(listingRepo, catalogRepo, universityRepo, cfg.PageSize), log),
		handler.NewSearchHandler(service.NewSearchService(repository.NewSearchRepository(db), cfg.PageSize, cfg.AutocompleteLimit, cfg.AutocompleteMaxLimit), log),
		handler.NewCatalogHandler(service.NewCatalogService(catalogRepo, universityRepo, listingRepo), log),
		handler.NewFavoriteHandler(service.NewFavoriteService(repository.NewFavoriteRepository(db), listingRepo), log),
		handler.NewReviewHandler(service.NewReviewService(repository.NewReviewRepository(db), listingRepo), log),
		handler.NewPointHandler(service.NewPointService(repository.NewPointRepository(db), listingRepo), log),
		handler.NewRouteHandler(service.NewRouteService(routeStore, listingRepo), log),
	)

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: true,
	}).Handler(handler.TrimTrailingSlash(router))

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: corsHandler,
	}

	go func() {
		log.Info("Housing service running on :%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("Server error: %v", err)
			stop()
		}
	}()

	<-ctx.Done()
	log.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Graceful shutdown failed: %v", err)
	}
}
