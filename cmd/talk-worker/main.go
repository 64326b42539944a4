package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/GolfPlayed/talk/config"
	"github.com/GolfPlayed/talk/internal/live"
	"github.com/GolfPlayed/talk/pkg/logger"
)

// talk-worker consumes the live queue and pushes conversation events to the
// realtime transport. It is the out-of-band half of the notification
// dispatcher; the web application only ever enqueues.
func main() {
	v, err := config.LoadConfig("config")
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	cfg, err := config.ParseConfig(v)
	if err != nil {
		log.Fatalf("parse config: %v", err)
	}

	lg, err := logger.NewLogger(cfg)
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}

	var broadcaster live.Broadcaster
	switch cfg.Broadcast.Driver {
	case "redis":
		rb, err := live.NewRedisBroadcaster(cfg.Redis.URL)
		if err != nil {
			log.Fatalf("init redis broadcaster: %v", err)
		}
		defer rb.Close()
		broadcaster = rb
	default:
		broadcaster = live.NewPusherBroadcaster(cfg.Broadcast.Pusher)
	}

	worker, err := live.NewWorker(cfg.Redis.URL, cfg.Broadcast.AppName, broadcaster, lg, 0)
	if err != nil {
		log.Fatalf("init worker: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	lg.Info("talk-worker starting", "app_name", cfg.Broadcast.AppName, "driver", cfg.Broadcast.Driver)
	if err := worker.Run(ctx); err != nil {
		log.Fatalf("worker: %v", err)
	}
	lg.Info("talk-worker stopped")
}
