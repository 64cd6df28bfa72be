package supervisor

import (
	"context"
	"log/slog"
	"time"

	"fleetmap/internal/cluster"
	"fleetmap/internal/registry"
	"fleetmap/internal/render"
)

const eventBuffer = 64

// Connector asks the backend for devices and positions. Results come back as
// posted events.
type Connector interface {
	RequestDiscovery(ctx context.Context)
	RequestPositionStream(ctx context.Context, deviceIDs []registry.DeviceID)
}

// Host is the display area the map lives in.
type Host interface {
	ShowStatus(text string)
	ShowMap()
	RequestSurface(ready func())
}

type Config struct {
	Connector        Connector
	Host             Host
	Surface          render.Surface
	Scheduler        Scheduler
	Zoom             float64
	CountdownSeconds int
	Tick             time.Duration
}

// Supervisor drives discovery, ingestion and retry. All of its state is
// owned by the goroutine running Run; other goroutines interact only through
// Post.
type Supervisor struct {
	connector Connector
	host      Host
	surface   render.Surface
	scheduler Scheduler

	zoom             float64
	countdownSeconds int
	tick             time.Duration

	registry *registry.Registry
	markers  *render.Markers
	viewport *render.Viewport
	clusters []cluster.Cluster

	state        State
	cycle        uint64
	surfaceReady bool

	countdown    Timer
	countdownGen uint64
	remaining    int

	events chan Event
	done   chan struct{}
}

type handlerFunc func(ctx context.Context, s *Supervisor, ev Event)

var handlers = map[Kind]handlerFunc{
	KindDevicesDiscovered: onDevicesDiscovered,
	KindPositionBatch:     onPositionBatch,
	KindConnectionError:   onConnectionError,
	KindSurfaceReady:      onSurfaceReady,
	KindCountdownTick:     onCountdownTick,
}

func New(cfg Config) *Supervisor {
	scheduler := cfg.Scheduler
	if scheduler == nil {
		scheduler = TickerScheduler{}
	}
	return &Supervisor{
		connector:        cfg.Connector,
		host:             cfg.Host,
		surface:          cfg.Surface,
		scheduler:        scheduler,
		zoom:             cfg.Zoom,
		countdownSeconds: cfg.CountdownSeconds,
		tick:             cfg.Tick,
		registry:         registry.New(),
		state:            Idle,
		events:           make(chan Event, eventBuffer),
		done:             make(chan struct{}),
	}
}

// Post queues ev for the supervisor goroutine. It is safe for concurrent use
// and returns without delivering once Run has stopped.
func (s *Supervisor) Post(ev Event) {
	select {
	case s.events <- ev:
	case <-s.done:
	}
}

func (s *Supervisor) Start(ctx context.Context) {
	slog.InfoContext(ctx, "Requesting device discovery...")
	s.connector.RequestDiscovery(ctx)
}

// Blocking operation
func (s *Supervisor) Run(ctx context.Context) {
	slog.InfoContext(ctx, "Supervisor started...")
	defer close(s.done)
	s.Start(ctx)
	for {
		select {
		case <-ctx.Done():
			s.stopCountdown()
			slog.InfoContext(ctx, "Supervisor stopped...")
			return
		case ev := <-s.events:
			s.Handle(ctx, ev)
		}
	}
}

func (s *Supervisor) Handle(ctx context.Context, ev Event) {
	handler, ok := handlers[ev.Kind()]
	if !ok {
		slog.WarnContext(ctx, "No handler for event", "kind", ev.Kind())
		return
	}
	handler(ctx, s, ev)
}

func (s *Supervisor) State() State {
	return s.state
}

func (s *Supervisor) Clusters() []cluster.Cluster {
	return s.clusters
}

func onDevicesDiscovered(ctx context.Context, s *Supervisor, ev Event) {
	e := ev.(DevicesDiscovered)
	if s.state != Idle {
		slog.DebugContext(ctx, "Dropping stale discovery result", "state", s.state)
		return
	}
	s.registry.ReplaceAll(ctx, e.Devices)
	slog.InfoContext(ctx, "Devices found", "count", s.registry.Len())
	s.registry.Dump(ctx)
	s.cycle++
	s.surfaceReady = false
	s.state = AwaitingPlot
	s.connector.RequestPositionStream(ctx, s.registry.IDs())
}

func onPositionBatch(ctx context.Context, s *Supervisor, ev Event) {
	e := ev.(PositionBatch)
	switch s.state {
	case AwaitingPlot:
		s.registry.ApplyBatch(ctx, e.Positions)
		s.clusters = cluster.Compute(s.registry.Positioned(), s.zoom)
		s.host.ShowMap()
		s.state = Connected
		slog.InfoContext(ctx, "Connections made, setting up the map and markers", "clusters", len(s.clusters))
		cycle := s.cycle
		s.host.RequestSurface(func() {
			s.Post(SurfaceReady{Cycle: cycle})
		})
	case Connected:
		s.registry.ApplyBatch(ctx, e.Positions)
		if !s.surfaceReady {
			return
		}
		s.redraw(ctx)
	default:
		slog.DebugContext(ctx, "Dropping position batch", "state", s.state, "positions", len(e.Positions))
	}
}

func onSurfaceReady(ctx context.Context, s *Supervisor, ev Event) {
	e := ev.(SurfaceReady)
	if e.Cycle != s.cycle || s.state != Connected || s.surfaceReady {
		slog.DebugContext(ctx, "Dropping stale surface signal", "cycle", e.Cycle, "current", s.cycle)
		return
	}
	s.surfaceReady = true
	s.markers = render.NewMarkers(s.surface)
	s.viewport = render.NewViewport(s.surface)
	s.redraw(ctx)
}

func onConnectionError(ctx context.Context, s *Supervisor, ev Event) {
	e := ev.(ConnectionError)
	slog.WarnContext(ctx, "Backend connection failed", "error", e.Err, "state", s.state)
	s.stopCountdown()
	s.cycle++
	s.surfaceReady = false
	s.state = ErrorCountdown
	s.remaining = s.countdownSeconds
	s.countdownGen++
	gen := s.countdownGen
	s.host.ShowStatus(countdownText(s.remaining))
	s.countdown = s.scheduler.Every(s.tick, func() {
		s.Post(CountdownTick{Generation: gen})
	})
}

func onCountdownTick(ctx context.Context, s *Supervisor, ev Event) {
	e := ev.(CountdownTick)
	if s.state != ErrorCountdown || e.Generation != s.countdownGen {
		return
	}
	s.remaining--
	if s.remaining > 0 {
		s.host.ShowStatus(countdownText(s.remaining))
		return
	}
	s.stopCountdown()
	s.host.ShowStatus(render.LoadingText)
	s.state = Idle
	slog.InfoContext(ctx, "Retrying device discovery...")
	s.connector.RequestDiscovery(ctx)
}

func (s *Supervisor) redraw(ctx context.Context) {
	s.clusters = cluster.Compute(s.registry.Positioned(), s.surface.Zoom())
	s.markers.Rebuild(ctx, s.clusters)
	if !s.viewport.Fit(s.markers.Positions()) {
		slog.DebugContext(ctx, "No clusters, viewport unchanged")
	}
}

func (s *Supervisor) stopCountdown() {
	if s.countdown == nil {
		return
	}
	s.countdown.Stop()
	s.countdown = nil
}
