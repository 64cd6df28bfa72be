package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"sync"
	"syscall"
	"time"

	"fleetmap/internal/api"
	"fleetmap/internal/config"
	"fleetmap/internal/connector"
	"fleetmap/internal/db"
	"fleetmap/internal/layer"
	"fleetmap/internal/processors/stream"
	"fleetmap/internal/supervisor"

	"github.com/segmentio/kafka-go"
)

// sinkFunc lets the connector and the stream processor post to a supervisor
// that is built after them.
type sinkFunc func(ev supervisor.Event)

func (f sinkFunc) Post(ev supervisor.Event) { f(ev) }

func newLogger(cfg config.LogConfig) *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}
	if strings.EqualFold(cfg.Format, "text") {
		return slog.New(slog.NewTextHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, opts))
}

func main() {
	configPath := flag.String("config", os.Getenv("FLEETMAP_CONFIG"), "path to an optional YAML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		panic(err)
	}
	slog.SetDefault(newLogger(cfg.Log))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)

	slog.InfoContext(ctx, "Starting fleet map service...")

	directory, err := db.Init(ctx, db.Config{
		ConnString:     cfg.DB.ConnString,
		MigrationsPath: cfg.DB.MigrationsPath,
	})
	if err != nil {
		panic(err)
	}
	defer directory.Close()

	var sup *supervisor.Supervisor
	sink := sinkFunc(func(ev supervisor.Event) { sup.Post(ev) })

	wStream := stream.New(stream.Config{
		Brokers:         cfg.Kafka.Brokers,
		ConsumerGroupID: cfg.Kafka.GroupID,
		ConsumerTopic:   cfg.Kafka.EventsTopic,
		Sink:            sink,
	})
	conn := connector.New(connector.Config{
		Store: directory,
		Writer: kafka.NewWriter(kafka.WriterConfig{
			Brokers: []string{cfg.Kafka.Brokers},
			Topic:   cfg.Kafka.ControlTopic,
		}),
		Stream: wStream,
		Sink:   sink,
	})

	mapLayer := layer.New(cfg.Map)
	sup = supervisor.New(supervisor.Config{
		Connector:        conn,
		Host:             mapLayer,
		Surface:          mapLayer,
		Zoom:             float64(cfg.Map.Zoom),
		CountdownSeconds: cfg.Retry.CountdownSeconds,
		Tick:             cfg.Retry.Tick,
	})

	server := &http.Server{
		Addr: cfg.HTTP.Addr,
		Handler: api.New(api.Config{
			DB:        directory,
			Map:       mapLayer,
			MapConfig: cfg.Map,
		}).Router(),
	}

	wg := sync.WaitGroup{}
	wg.Go(func() {
		sup.Run(ctx)
	})
	wg.Go(func() {
		slog.InfoContext(ctx, "HTTP server listening", "addr", cfg.HTTP.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.ErrorContext(ctx, "HTTP server error", "error", err)
			cancel()
		}
	})

	go func() {
		select {
		case <-sigs:
		case <-ctx.Done():
		}
		cancel()
		shutdownCtx, stop := context.WithTimeout(context.Background(), 5*time.Second)
		defer stop()
		server.Shutdown(shutdownCtx)
	}()

	wg.Wait()
	conn.Wait()

	wStream.Close(ctx)
	conn.Close(ctx)
}
