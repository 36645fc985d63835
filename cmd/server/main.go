package main

import (
	"context"
	"fmt"
	"log"

	"github.com/Skotchmaster/shop_admin/internal/config"
	"github.com/Skotchmaster/shop_admin/internal/db"
	"github.com/Skotchmaster/shop_admin/internal/es"
	"github.com/Skotchmaster/shop_admin/internal/events"
	"github.com/Skotchmaster/shop_admin/internal/httpserver"
	"github.com/Skotchmaster/shop_admin/internal/logging"
	"github.com/Skotchmaster/shop_admin/internal/middleware"
	"github.com/Skotchmaster/shop_admin/internal/repo"
	"github.com/Skotchmaster/shop_admin/internal/service"
	"github.com/Skotchmaster/shop_admin/internal/tokens"
	"github.com/labstack/echo/v4"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	config.MustNonEmptyBytes(cfg.JWTSecret, "JWT_SECRET")

	logger := logging.New(cfg.LogLevel)

	ctx := context.Background()
	gdb, err := db.Open(ctx, cfg.DSN())
	if err != nil {
		log.Fatalf("database: %v", err)
	}

	tokenSvc, err := tokens.NewService(cfg.JWTSecret, cfg.JWTAlg)
	if err != nil {
		log.Fatalf("tokens: %v", err)
	}

	esClient, err := es.NewClient(cfg)
	if err != nil {
		log.Fatalf("elasticsearch: %v", err)
	}

	producer := events.NewProducer(cfg.KafkaAddress)
	defer producer.Close()

	users := &repo.UserRepo{DB: gdb}
	products := &repo.ProductRepo{DB: gdb}
	orders := &repo.OrderRepo{DB: gdb}

	deps := &httpserver.Deps{
		Auth: &middleware.Auth{Tokens: tokenSvc, Users: users},
		AuthHandler: &httpserver.AuthHandler{
			Svc:      &service.AuthService{Users: users, Tokens: tokenSvc},
			Producer: producer,
		},
		UserHandler: &httpserver.UserHandler{
			Svc:      &service.UserService{Users: users},
			Producer: producer,
		},
		ProductHandler: &httpserver.ProductHandler{
			Svc:      &service.ProductService{Products: products},
			Producer: producer,
			ES:       esClient,
			Index:    cfg.ESIndex,
		},
		OrderHandler: &httpserver.OrderHandler{
			Svc:      &service.OrderService{Orders: orders},
			Producer: producer,
		},
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.RequestLogger(logger))
	httpserver.Register(e, deps)

	logger.Info("server starting", "port", cfg.ServerPort)
	e.Logger.Fatal(e.Start(fmt.Sprintf(":%d", cfg.ServerPort)))
}
