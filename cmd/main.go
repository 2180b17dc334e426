package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/muhammadchandra19/exchange/services/bar-engine/internal/bootstrap"
	"github.com/muhammadchandra19/exchange/services/bar-engine/pkg/config"
	"github.com/muhammadchandra19/exchange/services/bar-engine/pkg/logger"
	"github.com/muhammadchandra19/exchange/services/bar-engine/pkg/questdb"
	"github.com/muhammadchandra19/exchange/services/bar-engine/pkg/redis"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	l, err := logger.NewLogger(logger.WithLoggingLevel(logger.Level(cfg.App.LogLevel)))
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer l.Sync()

	questdbClient, err := questdb.NewClient(ctx, cfg.QuestDB)
	if err != nil {
		l.Error(err, logger.Field{Key: "action", Value: "questdb_connect"})
		os.Exit(1)
	}
	defer questdbClient.Close()

	if err := questdbClient.Ping(ctx); err != nil {
		l.Error(err, logger.Field{Key: "action", Value: "questdb_ping"})
		os.Exit(1)
	}

	redisClient := redis.NewClient(l, &cfg.Redis)
	if err := redisClient.Connect(ctx); err != nil {
		l.Error(err, logger.Field{Key: "action", Value: "redis_connect"})
		os.Exit(1)
	}
	defer redisClient.Disconnect(context.Background())

	b, err := (&bootstrap.Bootstrap{}).Init(ctx, bootstrap.BoostrapConfig{
		Config:  cfg,
		QuestDB: questdbClient,
		Redis:   redisClient,
		Logger:  l,
	})
	if err != nil {
		l.Error(err, logger.Field{Key: "action", Value: "bootstrap"})
		os.Exit(1)
	}

	l.InfoContext(ctx, "bar engine started",
		logger.Field{Key: "app", Value: cfg.App.Name},
		logger.Field{Key: "environment", Value: cfg.App.Environment},
		logger.Field{Key: "market", Value: cfg.App.Market},
		logger.Field{Key: "session_day", Value: b.Cache.SessionDay().Format("2006-01-02")},
	)

	wg := sync.WaitGroup{}
	wg.Add(2)
	go func() {
		defer wg.Done()
		b.Consumer.Start(ctx)
	}()
	go func() {
		defer wg.Done()
		b.Consumer.Subscribe(ctx)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	l.Info("shutting down bar engine")
	cancel()
	if err := b.Consumer.Stop(); err != nil {
		l.Error(err, logger.Field{Key: "action", Value: "consumer_stop"})
	}
	wg.Wait()

	l.Info("bar engine stopped")
}
