package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gramseva/config"
	"gramseva/internal/database"
	"gramseva/internal/router"
	"gramseva/pkg/mailer"
	"gramseva/pkg/storage"

	"go.uber.org/zap"
)

func main() {
	cfg := config.Load()

	log, err := newLogger(cfg.Server.Env)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	db, err := database.NewDB(&cfg.Database)
	if err != nil {
		log.Fatal("database", zap.Error(err))
	}
	if err := database.AutoMigrate(db); err != nil {
		log.Fatal("migrate", zap.Error(err))
	}
	if err := database.SeedStaff(db, &cfg.Admin, log); err != nil {
		log.Fatal("bootstrap staff account", zap.Error(err))
	}

	store, err := storage.New(cfg.Media.Root)
	if err != nil {
		log.Fatal("media store", zap.Error(err))
	}
	mail := mailer.New(&cfg.Mail)

	engine := router.Setup(cfg, db, store, mail, log)
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}
	go func() {
		log.Info("server listening", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("listen", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("server shutdown", zap.Error(err))
	}
	log.Info("server stopped")
}

func newLogger(env string) (*zap.Logger, error) {
	if env == "production" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
