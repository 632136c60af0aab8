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

	"github.com/avoronin/ar_shop/internal/apperr"
	"github.com/avoronin/ar_shop/internal/config"
	"github.com/avoronin/ar_shop/internal/httpserver"
	"github.com/avoronin/ar_shop/internal/logging"
	"github.com/avoronin/ar_shop/internal/mykafka"
	"github.com/avoronin/ar_shop/internal/repo"
	"github.com/avoronin/ar_shop/internal/service"
	"github.com/avoronin/ar_shop/internal/token"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}

	db, err := config.InitDB(cfg)
	if err != nil {
		log.Fatalf("db init error: %v", err)
	}

	prod, err := mykafka.NewProducer([]string{cfg.KAFKA_ADDRESS})
	if err != nil {
		log.Fatal(err)
	}

	logger := logging.New(cfg.LOG_LEVEL)

	store := repo.New(db)
	tokens := token.New([]byte(cfg.JWT_SECRET), cfg.TOKEN_TTL)

	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = apperr.HTTPErrorHandler
	e.Pre(middleware.RemoveTrailingSlash())
	e.Use(middleware.Recover(), middleware.RequestID(), middleware.CORS())
	e.Use(logging.RequestLogger(logger))

	deps := httpserver.Deps{
		AuthHandler:      &httpserver.AuthHTTP{Svc: &service.AuthService{Repo: store, Tokens: tokens, Producer: prod}},
		CatalogHandler:   &httpserver.CatalogHTTP{Svc: &service.CatalogService{Repo: store}},
		FavoritesHandler: &httpserver.FavoritesHTTP{Svc: &service.FavoritesService{Repo: store, Producer: prod}},
		Tokens:           tokens,
		StaticDir:        cfg.STATIC_DIR,
	}

	httpserver.Register(e, &deps)

	srv := &http.Server{
		Addr:         cfg.HTTP_ADDR,
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
	}

	if err := prod.Close(); err != nil {
		log.Printf("kafka close error: %v", err)
	}

	log.Println("shutdown complete")
}
