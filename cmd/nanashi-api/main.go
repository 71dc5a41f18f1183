package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/nanashi-dev/nanashi/internal/config"
	"github.com/nanashi-dev/nanashi/internal/handler"
	"github.com/nanashi-dev/nanashi/internal/logger"
	"github.com/nanashi-dev/nanashi/internal/router"
	"github.com/nanashi-dev/nanashi/internal/service"
	"github.com/nanashi-dev/nanashi/internal/storage/pg"
	"github.com/nanashi-dev/nanashi/internal/utils"
)

func main() {
	// .env is optional, used for local development
	_ = godotenv.Load()

	var configFolder string
	flag.StringVar(&configFolder, "config_folder", "config", "path to folder with configs")
	flag.Parse()
	cfg := config.MustLoad(configFolder)

	logger.Initialize(cfg.Public.LogLevel, cfg.Public.LogJSON)

	storage, err := pg.New(cfg)
	if err != nil {
		logger.Log.Error("failed to init storage", "err", err)
		os.Exit(1)
	}
	defer storage.Cleanup()

	board := service.NewBoard(storage)
	thread := service.NewThread(storage, &utils.ThreadTitleValidator{}, &utils.PostValidator{})
	post := service.NewPost(storage, &utils.PostValidator{})

	h := handler.New(board, thread, post, storage, cfg)
	r := router.New(h)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Public.Port),
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		logger.Log.Info("Server started", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Log.Error("server error", "err", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Log.Info("Shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("shutdown error", "err", err)
	}
}
