package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"plantdiary/internal/auth"
	"plantdiary/internal/config"
	"plantdiary/internal/db"
	httpx "plantdiary/internal/http"
	"plantdiary/internal/notify"
	"plantdiary/internal/plant"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	cfg, _ := config.Load()

	gdb, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		logger.Fatal("db connect", zap.Error(err))
	}
	if err := db.AutoMigrateAndIndexes(gdb); err != nil {
		logger.Fatal("db migrate", zap.Error(err))
	}

	jwtSvc := auth.NewJWT(cfg.JWTSecret)
	mailer := notify.NewSMTPMailer(notify.SMTPConfig{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		Username: cfg.SMTPUser,
		Password: cfg.SMTPPass,
		From:     cfg.SMTPFrom,
		FromName: cfg.SMTPFromName,
	})

	r := httpx.NewRouter(cfg, gdb, jwtSvc, mailer)

	// reminder dispatcher
	dispatcher := &notify.Dispatcher{
		Plants:   &plant.Service{DB: gdb},
		Mailer:   mailer,
		Interval: cfg.ReminderInterval,
		Log:      logger.Named("dispatcher"),
	}

	ctx, cancel := context.WithCancel(context.Background())
	go dispatcher.Run(ctx)

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Info("listening", zap.String("addr", cfg.HTTPAddr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("serve", zap.Error(err))
		}
	}()

	// graceful shutdown
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	<-ch

	cancel()
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	_ = srv.Shutdown(shutdownCtx)
}
