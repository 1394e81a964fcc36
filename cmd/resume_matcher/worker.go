package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-matcher/internal/worker"
)

var workerCmd = &cobra.Command{
	Use:   "worker",
	Short: "Consume analysis requests from RabbitMQ",
	Long: "Reads analyze requests from the request queue, runs the full analysis and publishes each result " +
		"to the message's reply-to queue or the result queue. Requires AMQP_URL.",
	RunE: runWorker,
}

func init() {
	rootCmd.AddCommand(workerCmd)
}

func runWorker(_ *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rt, err := newRuntime(ctx, true)
	if err != nil {
		return err
	}
	defer rt.Close()

	if rt.cfg.AMQPURL == "" {
		return fmt.Errorf("AMQP_URL is required")
	}

	processor := &worker.Processor{Engine: rt.engine, Config: rt.cfg, Logger: &rt.logger}
	if rt.cfg.DatabaseURL != "" {
		connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		database, err := openDatabase(connectCtx, rt)
		cancel()
		if err != nil {
			return err
		}
		defer database.Close()
		processor.Store = database
	}

	consumer, err := worker.Dial(rt.cfg.AMQPURL, worker.QueueConfig{
		RequestQueue: rt.cfg.RequestQueue,
		ResultQueue:  rt.cfg.ResultQueue,
		Prefetch:     rt.cfg.Prefetch,
	}, processor, &rt.logger)
	if err != nil {
		return err
	}
	defer func() { _ = consumer.Close() }()

	return consumer.Run(ctx)
}
