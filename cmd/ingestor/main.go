package main

// One-shot feed refresh, meant to run on an hourly schedule:
//   go run ./cmd/ingestor

import (
	"context"
	"log"
	"os"
	"time"

	"resume-assist/internal/jobs"
	"resume-assist/internal/queue"
	"resume-assist/internal/shared/config"
	"resume-assist/internal/shared/storage/cache"
)

func main() {
	cfg := config.Load()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	if cfg.SQSQueueURL == "" {
		log.Printf("SQS_QUEUE_URL is required")
		os.Exit(1)
	}
	if cfg.JobsRedisAddr == "" {
		log.Printf("JOBS_REDIS_ADDR is required")
		os.Exit(1)
	}

	receiver, err := queue.NewSQSReceiver(ctx, cfg.AWSRegion, cfg.SQSQueueURL)
	if err != nil {
		log.Printf("failed to build receiver: %v", err)
		os.Exit(1)
	}

	kv, err := cache.NewRedis(ctx, cfg.JobsRedisAddr, cfg.JobsRedisPassword)
	if err != nil {
		log.Printf("failed to connect jobs cache: %v", err)
		os.Exit(1)
	}
	defer kv.Close()

	feed := jobs.NewFeed(receiver, kv, cfg.JobsTriggerURL)
	feed.Freshness = cfg.JobsFreshness
	feed.CacheTTL = cfg.JobsCacheTTL

	postings, err := feed.Refresh(ctx)
	if err != nil {
		log.Printf("refresh failed: %v", err)
		os.Exit(1)
	}
	log.Printf("refreshed job feed: %d postings", len(postings))
}
