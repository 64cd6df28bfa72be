package stream

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	k "fleetmap/internal/kafka"
	"fleetmap/internal/registry"
	"fleetmap/internal/supervisor"
	"fleetmap/internal/worker"

	"github.com/segmentio/kafka-go"
)

var (
	ErrReadMessage    = errors.New("error reading message")
	ErrMalformedBatch = errors.New("malformed tracker record")
	ErrUnknownRecord  = errors.New("unknown record type")
	ErrTracker        = errors.New("tracker reported an error")
)

type Sink interface {
	Post(ev supervisor.Event)
}

type Config struct {
	Brokers         string
	ConsumerGroupID string
	ConsumerTopic   string
	ErrorDelay      time.Duration
	Sink            Sink
}

// Processor turns tracker event records into supervisor events. A failing
// reader is reported once; the report is re-armed by a successful read or by
// Rearm.
type Processor struct {
	worker *worker.Worker
	reader k.Reader
	sink   Sink

	failing atomic.Bool
}

func New(cfg Config) *Processor {
	processor := &Processor{
		reader: kafka.NewReader(kafka.ReaderConfig{
			Brokers: []string{cfg.Brokers},
			GroupID: cfg.ConsumerGroupID,
			Topic:   cfg.ConsumerTopic,
		}),
		sink: cfg.Sink,
	}

	processor.worker = worker.New(worker.Config{
		Name:       "stream-worker",
		Processor:  processor,
		ErrorDelay: cfg.ErrorDelay,
	})
	return processor
}

// Blocking operation
func (p *Processor) Run(ctx context.Context) {
	p.worker.Run(ctx)
}

func (p *Processor) Close(ctx context.Context) {
	slog.InfoContext(ctx, "Closing stream resources...")
	p.reader.Close()
}

// Rearm lets the next read failure be reported again. Called whenever the
// stream is requested anew.
func (p *Processor) Rearm() {
	p.failing.Store(false)
}

// Auto-commit active
func (p *Processor) ProcessMessage(ctx context.Context) error {
	const fn = "Stream:ProcessMessage"
	m, err := p.reader.ReadMessage(ctx)
	if err != nil {
		if ctx.Err() == nil && p.failing.CompareAndSwap(false, true) {
			p.sink.Post(supervisor.ConnectionError{Err: err})
		}
		return fmt.Errorf("%s:%w:%w", fn, ErrReadMessage, err)
	}
	p.failing.Store(false)

	ev, err := decode(m.Value)
	if err != nil {
		if errors.Is(err, ErrMalformedBatch) {
			slog.DebugContext(ctx, "Dropping malformed record", "offset", m.Offset)
			return nil
		}
		return fmt.Errorf("%s:%w", fn, err)
	}
	p.sink.Post(ev)
	return nil
}

func decode(value []byte) (supervisor.Event, error) {
	var envelope k.Envelope
	if err := json.Unmarshal(value, &envelope); err != nil || envelope.Type == "" {
		return nil, ErrMalformedBatch
	}

	switch envelope.Type {
	case k.RecordPositions:
		var payload k.PositionsPayload
		if err := json.Unmarshal(envelope.Payload, &payload); err != nil || payload.Positions == nil {
			return nil, ErrMalformedBatch
		}
		positions := make([]registry.Position, 0, len(payload.Positions))
		for _, record := range payload.Positions {
			positions = append(positions, registry.Position{
				DeviceID:   registry.DeviceID(record.DeviceID),
				Latitude:   record.Latitude,
				Longitude:  record.Longitude,
				ObservedAt: record.FixTime,
			})
		}
		return supervisor.PositionBatch{Positions: positions}, nil
	case k.RecordError:
		// The record type alone signals the failure; the message is optional.
		var payload k.ErrorPayload
		if err := json.Unmarshal(envelope.Payload, &payload); err != nil || payload.Message == "" {
			return supervisor.ConnectionError{Err: ErrTracker}, nil
		}
		return supervisor.ConnectionError{Err: fmt.Errorf("%w: %s", ErrTracker, payload.Message)}, nil
	default:
		return nil, fmt.Errorf("%w:%q", ErrUnknownRecord, envelope.Type)
	}
}
