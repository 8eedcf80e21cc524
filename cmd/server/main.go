package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/xablau3666/loja/internal/config"
	"github.com/xablau3666/loja/internal/handlers"
	"github.com/xablau3666/loja/internal/httpserver"
	"github.com/xablau3666/loja/internal/logging"
	"github.com/xablau3666/loja/internal/middleware/csrf"
	loggingmw "github.com/xablau3666/loja/internal/middleware/logging"
	"github.com/xablau3666/loja/internal/mykafka"
	"github.com/xablau3666/loja/internal/repo"
	"github.com/xablau3666/loja/internal/search"
	"github.com/xablau3666/loja/internal/service"
	websession "github.com/xablau3666/loja/internal/session"
)

func main() {
	configuration, err := config.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}

	logger := logging.New(configuration.LogLevel)

	db, err := config.InitDB(configuration)
	if err != nil {
		log.Fatalf("database init failed: %v", err)
	}

	var producer *mykafka.Producer
	if configuration.KAFKA_ADDRESS != "" {
		producer = mykafka.NewProducer([]string{configuration.KAFKA_ADDRESS})
	}

	esClient, err := search.NewClient(configuration.ES_URL, configuration.ES_USER, configuration.ES_PASSWORD)
	if err != nil {
		log.Fatal(err)
	}

	store := repo.New(db)
	searchSvc := &search.Service{ES: esClient, Index: search.DefaultIndex, Repo: store}

	deps := httpserver.Deps{
		AuthHandler: &handlers.AuthHandler{
			Service:  &service.AuthService{Repo: store, AdminSecret: configuration.ADMIN_SECRET},
			Producer: producer,
		},
		ProductHandler: &handlers.ProductHandler{
			Catalog:  &service.CatalogService{Repo: store},
			Search:   searchSvc,
			Producer: producer,
		},
		CartHandler: &handlers.CartHandler{
			Catalog: &service.CatalogService{Repo: store},
		},
	}

	e := echo.New()
	e.Pre(middleware.RemoveTrailingSlash())
	e.Use(middleware.Recover(), middleware.RequestID())
	e.Use(loggingmw.RequestLogger(logger))
	e.Use(websession.Middleware([]byte(configuration.SESSION_SECRET)))
	if configuration.CSRF_ENABLED {
		e.Use(csrf.Middleware(csrf.Config{
			SkipPaths: []string{"/health/live", "/health/ready"},
		}))
	}

	httpserver.Register(e, &deps)

	srv := &http.Server{
		Addr:         configuration.Addr,
		Handler:      e,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("http server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("server shutdown error: %v", err)
	}

	if sqlDB, err := db.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			log.Printf("db close error: %v", err)
		}
	} else {
		log.Printf("db() error: %v", err)
	}

	if err := producer.Close(); err != nil {
		log.Printf("kafka close error: %v", err)
	}

	log.Println("shutdown complete")
}
