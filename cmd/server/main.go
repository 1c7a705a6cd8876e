package main // Entry point package

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/rafaelqm/barber-agenda/internal/config"
	"github.com/rafaelqm/barber-agenda/internal/database"
	"github.com/rafaelqm/barber-agenda/internal/handler"
	"github.com/rafaelqm/barber-agenda/internal/middleware"
	"github.com/rafaelqm/barber-agenda/internal/queue"
	"github.com/rafaelqm/barber-agenda/internal/repository"
	"github.com/rafaelqm/barber-agenda/internal/router"
)

func main() {
	_ = godotenv.Load() // .env is optional; real deployments use the environment
	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	users := repository.NewUserRepo(db)
	tokens := repository.NewTokenRepo(db)
	appointments := repository.NewAppointmentRepo(db)

	authH := handler.NewAuthHandler(cfg, users, tokens)
	apptH := handler.NewAppointmentHandler(appointments)
	dashH := handler.NewDashboardHandler(appointments)

	// Redis is optional: a nil client disables rate limiting and caching
	// and the middleware degrades to pass-through.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Println("redis unavailable; rate limiting and response cache disabled")
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb))

	router.RegisterRoutes(e)
	router.RegisterAuth(e, authH, cfg.JWTSecret)
	router.RegisterAppointments(e, apptH, dashH, cfg.JWTSecret,
		middleware.NewRedisCache(config.LoadCacheConfig(), rdb))

	// Drain appointment.created events for the lifetime of the process.
	go func() {
		if err := queue.StartAppointmentConsumer(); err != nil {
			log.Printf("appointment consumer stopped: %v", err)
		}
	}()

	addr := ":" + cfg.Port
	go func() {
		log.Printf("listening on %s (env=%s)", addr, cfg.Env)
		if err := e.Start(addr); err != nil {
			log.Printf("server stopped: %v", err)
		}
	}()

	// Graceful shutdown on SIGINT/SIGTERM.
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	<-ch
	log.Println("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Printf("shutdown: %v", err)
	}
}
