package worker

import (
	"context"
	"log/slog"
	"time"
)

const defaultErrorDelay = time.Second

type Config struct {
	Name      string
	Processor Processor
	// ErrorDelay is how long to wait after a failed ProcessMessage.
	ErrorDelay time.Duration
}

type Processor interface {
	ProcessMessage(ctx context.Context) error
}

type Worker struct {
	name       string
	processor  Processor
	errorDelay time.Duration
}

func New(cfg Config) *Worker {
	delay := cfg.ErrorDelay
	if delay <= 0 {
		delay = defaultErrorDelay
	}
	return &Worker{
		name:       cfg.Name,
		processor:  cfg.Processor,
		errorDelay: delay,
	}
}

func (w *Worker) Run(ctx context.Context) {
	slog.InfoContext(ctx, "Worker started...", "worker", w.name)
	for {
		select {
		case <-ctx.Done():
			slog.InfoContext(ctx, "Worker stopped...", "worker", w.name)
			return
		default:
		}

		if err := w.processor.ProcessMessage(ctx); err != nil {
			if ctx.Err() != nil {
				continue
			}
			slog.ErrorContext(ctx, "Error processing message", "worker", w.name, "error", err)
			select {
			case <-ctx.Done():
			case <-time.After(w.errorDelay):
			}
		}
	}
}
