package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"impilo/registry/internal/cache"
	"impilo/registry/internal/config"
	"impilo/registry/internal/log"
	"impilo/registry/internal/notify"
	"impilo/registry/internal/queue"
	"impilo/registry/internal/tasks"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger := log.New(cfg.Environment)

	client, err := cache.NewRedisClient(context.Background(), cfg.Redis)
	if err != nil {
		logger.Fatal().Err(err).Msg("redis connection failed")
	}
	defer client.Close()

	var email notify.EmailSender = notify.ConsoleEmail{Log: logger}
	if cfg.Notify.EmailAPIURL != "" {
		email = notify.NewMailClient(cfg.Notify.EmailAPIURL, cfg.Notify.EmailAPIKey, cfg.Notify.EmailFrom)
	}

	var sms notify.SMSSender = notify.ConsoleSMS{Log: logger}
	if cfg.Notify.SMSAPIURL != "" {
		sms = notify.NewSMSClient(cfg.Notify.SMSAPIURL, cfg.Notify.SMSAPIKey)
	}

	dispatcher := notify.NewDispatcher(email, sms, logger)
	processor := tasks.NewProcessor(dispatcher, email, logger)

	consumer := queue.NewConsumer(
		client,
		cfg.Notify.Stream,
		cfg.Notify.Group,
		cfg.Notify.Consumer,
		cfg.Notify.ClaimInterval,
		logger,
		processor,
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := consumer.Start(ctx); err != nil && err != context.Canceled {
			logger.Fatal().Err(err).Msg("consumer stopped unexpectedly")
		}
	}()

	<-ctx.Done()
	logger.Info().Msg("shutdown signal received")
	time.Sleep(500 * time.Millisecond)
}
