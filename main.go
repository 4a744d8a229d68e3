// Package main bookstore API.
//
// @title           Bookstore API
// @version         1.0
// @description     Digital bookstore (catalog, purchases, rentals, notifications).
// @BasePath        /
// @schemes         http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description  Use:  Bearer <JWT>
package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"bookstore/app/echoServer"
	authctrl "bookstore/app/echoServer/controller/auth"
	bookctrl "bookstore/app/echoServer/controller/book"
	rentalctrl "bookstore/app/echoServer/controller/rental"
	userctrl "bookstore/app/echoServer/controller/user"
	"bookstore/app/echoServer/validation"
	"bookstore/config"
	bookrepo "bookstore/repository/book"
	userrepo "bookstore/repository/user"
	authsvc "bookstore/service/auth"
	booksvc "bookstore/service/book"
	notifsvc "bookstore/service/notification"
	rentalsvc "bookstore/service/rental"
	"bookstore/util/content"
	"bookstore/util/database"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
)

const sweepWorkers = 4

func main() {

	cfg := config.Load()
	ctx := context.Background()

	// logger
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	db, err := database.New(ctx, cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		log.Error("mongo connect failed", "err", err)
		os.Exit(1)
	}
	defer db.Close(ctx)

	if err := db.EnsureIndexes(ctx); err != nil {
		log.Error("index setup failed", "err", err)
		os.Exit(1)
	}

	store := content.NewStore(cfg.UploadDir)

	// repos
	br := bookrepo.New(db)
	ur := userrepo.New(db)

	// services
	as := authsvc.New(ur, cfg.JWTSecret)
	bs := booksvc.New(br, store)
	rsvc := rentalsvc.New(br, ur, store, cfg.WarnWindow)
	sweeper := rentalsvc.NewSweeper(br, ur, cfg.WarnWindow, sweepWorkers)
	ns := notifsvc.New(ur)

	// controllers
	v := validator.New()
	authC := &authctrl.Controller{Svc: as, V: v, Log: log}
	bookC := &bookctrl.Controller{Svc: bs, V: v, Log: log}
	rentalC := &rentalctrl.Controller{Svc: rsvc, V: v, Log: log}
	userC := &userctrl.Controller{Notif: ns, Sweeper: sweeper, Log: log}

	// echo
	e := echo.New()
	echoServer.RegisterMiddlewares(e)
	e.Validator = validation.New()

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]any{
			"status":  "ok",
			"message": "Service is healthy and connected",
		})
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	echoServer.Register(e, echoServer.C{
		Auth:   authC,
		Book:   bookC,
		Rental: rentalC,
		User:   userC,

		JWTSecret: cfg.JWTSecret,
	})

	if cfg.SweepInterval > 0 {
		go runSweep(ctx, sweeper, cfg.SweepInterval, log)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.Port
	}
	if port == "" {
		port = "8080"
	}

	log.Info("starting server", "port", port, "env", cfg.Env)

	e.Logger.Fatal(e.Start(":" + port))
}

// runSweep periodically checks rental expirations for all users.
func runSweep(ctx context.Context, s rentalsvc.Sweeper, every time.Duration, log *slog.Logger) {
	t := time.NewTicker(every)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			sent, err := s.CheckAll(ctx)
			if err != nil {
				log.Error("rental sweep failed", "err", err)
				continue
			}
			log.Info("rental sweep done", "notifications_sent", sent)
		}
	}
}
