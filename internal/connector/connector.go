package connector

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"fleetmap/internal/db"
	k "fleetmap/internal/kafka"
	"fleetmap/internal/registry"
	"fleetmap/internal/supervisor"

	"github.com/segmentio/kafka-go"
)

var (
	ErrLoadDevices    = errors.New("error loading devices")
	ErrMarshalCommand = errors.New("error marshalling stream command")
	ErrPublishCommand = errors.New("error publishing stream command")
)

type DeviceStore interface {
	LoadDevices(ctx context.Context) ([]db.Device, error)
}

type Sink interface {
	Post(ev supervisor.Event)
}

type Streamer interface {
	Run(ctx context.Context)
	Rearm()
}

type Config struct {
	Store  DeviceStore
	Writer k.Writer
	Stream Streamer
	Sink   Sink
	Now    func() time.Time
}

// Connector talks to the device directory and the tracker. Requests return
// immediately; outcomes are posted to the sink.
type Connector struct {
	store  DeviceStore
	writer k.Writer
	stream Streamer
	sink   Sink
	now    func() time.Time

	streamOnce sync.Once
	wg         sync.WaitGroup
}

func New(cfg Config) *Connector {
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return &Connector{
		store:  cfg.Store,
		writer: cfg.Writer,
		stream: cfg.Stream,
		sink:   cfg.Sink,
		now:    cfg.Now,
	}
}

func (c *Connector) RequestDiscovery(ctx context.Context) {
	c.wg.Go(func() {
		c.Discover(ctx)
	})
}

func (c *Connector) RequestPositionStream(ctx context.Context, deviceIDs []registry.DeviceID) {
	c.wg.Go(func() {
		c.StartStream(ctx, deviceIDs)
	})
}

// Discover loads the device directory and posts the result.
func (c *Connector) Discover(ctx context.Context) {
	const fn = "Connector:Discover"
	rows, err := c.store.LoadDevices(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return
		}
		slog.ErrorContext(ctx, "Device discovery failed", "error", err)
		c.sink.Post(supervisor.ConnectionError{Err: fmt.Errorf("%s:%w:%w", fn, ErrLoadDevices, err)})
		return
	}

	devices := make([]registry.Device, 0, len(rows))
	for _, row := range rows {
		devices = append(devices, registry.Device{
			ID:         registry.DeviceID(row.ID),
			Name:       row.Name,
			LastUpdate: row.LastUpdate,
			Status:     row.Status,
		})
	}
	slog.InfoContext(ctx, "Devices discovered", "count", len(devices))
	c.sink.Post(supervisor.DevicesDiscovered{Devices: devices})
}

// StartStream asks the tracker to stream positions for deviceIDs and starts
// consuming the events topic. The consumer is started at most once; later
// calls re-arm its failure report instead.
func (c *Connector) StartStream(ctx context.Context, deviceIDs []registry.DeviceID) {
	const fn = "Connector:StartStream"
	ids := make([]int64, 0, len(deviceIDs))
	for _, id := range deviceIDs {
		ids = append(ids, int64(id))
	}
	value, err := json.Marshal(k.ControlRecord{
		Command:     k.CommandStream,
		DeviceIDs:   ids,
		RequestedAt: c.now().UnixMilli(),
	})
	if err != nil {
		c.sink.Post(supervisor.ConnectionError{Err: fmt.Errorf("%s:%w:%w", fn, ErrMarshalCommand, err)})
		return
	}

	err = c.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(k.CommandStream),
		Value: value,
	})
	if err != nil {
		if ctx.Err() != nil {
			return
		}
		slog.ErrorContext(ctx, "Publishing stream command failed", "error", err)
		c.sink.Post(supervisor.ConnectionError{Err: fmt.Errorf("%s:%w:%w", fn, ErrPublishCommand, err)})
		return
	}
	slog.InfoContext(ctx, "Position stream requested", "devices", len(ids))

	c.stream.Rearm()
	c.streamOnce.Do(func() {
		c.wg.Go(func() {
			c.stream.Run(ctx)
		})
	})
}

// Wait blocks until every request in flight and the stream consumer return.
func (c *Connector) Wait() {
	c.wg.Wait()
}

func (c *Connector) Close(ctx context.Context) {
	slog.InfoContext(ctx, "Closing connector resources...")
	c.writer.Close()
}
