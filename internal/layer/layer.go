package layer

import (
	"log/slog"
	"math"
	"sort"
	"sync"

	"fleetmap/internal/config"
	"fleetmap/internal/render"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/paulmach/orb/project"
)

const (
	tileSize = 256.0
	// Circumference of the Web Mercator world, in projected meters.
	worldMeters = 2 * math.Pi * 6378137
)

type label struct {
	marker render.MarkerHandle
	text   string
}

// Layer is the in-memory map a dashboard polls over HTTP. The supervisor
// draws into it while HTTP handlers read snapshots, so all state is guarded.
type Layer struct {
	mu sync.RWMutex

	width   int
	height  int
	maxZoom float64
	home    orb.Point

	nextHandle  uint64
	markers     map[render.MarkerHandle]orb.Point
	labels      map[render.LabelHandle]label
	center      orb.Point
	zoom        float64
	status      string
	loaded      bool
	constructed bool
}

type Snapshot struct {
	Status      string
	Loaded      bool
	Constructed bool
	Center      orb.Point
	Zoom        float64
	Markers     *geojson.FeatureCollection
}

func New(cfg config.MapConfig) *Layer {
	home := orb.Point{cfg.Center.Longitude, cfg.Center.Latitude}
	return &Layer{
		width:   cfg.Width,
		height:  cfg.Height,
		maxZoom: float64(cfg.Zoom),
		home:    home,
		markers: make(map[render.MarkerHandle]orb.Point),
		labels:  make(map[render.LabelHandle]label),
		center:  home,
		zoom:    float64(cfg.Zoom),
		status:  render.LoadingText,
	}
}

func (l *Layer) ShowStatus(text string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.status = text
	l.loaded = false
}

func (l *Layer) ShowMap() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.status = ""
	l.loaded = true
}

// RequestSurface builds a fresh map at the home position and reports
// readiness through ready once the map can accept markers.
func (l *Layer) RequestSurface(ready func()) {
	l.mu.Lock()
	l.markers = make(map[render.MarkerHandle]orb.Point)
	l.labels = make(map[render.LabelHandle]label)
	l.center = l.home
	l.zoom = l.maxZoom
	l.constructed = true
	l.mu.Unlock()

	slog.Info("Map surface constructed", "zoom", l.maxZoom)
	go ready()
}

func (l *Layer) CreateMarker(position orb.Point) render.MarkerHandle {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.nextHandle++
	h := render.MarkerHandle(l.nextHandle)
	l.markers[h] = position
	return h
}

func (l *Layer) DestroyMarker(marker render.MarkerHandle) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.markers, marker)
}

func (l *Layer) CreateLabelOverlay(marker render.MarkerHandle, text string) render.LabelHandle {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.nextHandle++
	h := render.LabelHandle(l.nextHandle)
	l.labels[h] = label{marker: marker, text: text}
	return h
}

func (l *Layer) DestroyLabelOverlay(h render.LabelHandle) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.labels, h)
}

func (l *Layer) ComputeBoundingRegion(points []orb.Point) orb.Bound {
	return orb.MultiPoint(points).Bound()
}

func (l *Layer) FitToRegion(region orb.Bound) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.zoom = fitZoom(region, l.width, l.height, l.maxZoom)
}

func (l *Layer) PanToRegion(region orb.Bound) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.center = region.Center()
}

func (l *Layer) Zoom() float64 {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.zoom
}

func (l *Layer) Snapshot() Snapshot {
	l.mu.RLock()
	defer l.mu.RUnlock()

	texts := make(map[render.MarkerHandle]string, len(l.labels))
	labelHandles := make([]render.LabelHandle, 0, len(l.labels))
	for h := range l.labels {
		labelHandles = append(labelHandles, h)
	}
	sort.Slice(labelHandles, func(i, j int) bool { return labelHandles[i] < labelHandles[j] })
	for _, h := range labelHandles {
		lb := l.labels[h]
		texts[lb.marker] = lb.text
	}

	markerHandles := make([]render.MarkerHandle, 0, len(l.markers))
	for h := range l.markers {
		markerHandles = append(markerHandles, h)
	}
	sort.Slice(markerHandles, func(i, j int) bool { return markerHandles[i] < markerHandles[j] })

	fc := geojson.NewFeatureCollection()
	for _, h := range markerHandles {
		f := geojson.NewFeature(l.markers[h])
		f.ID = uint64(h)
		if text, ok := texts[h]; ok {
			f.Properties["label"] = text
		}
		fc.Append(f)
	}

	return Snapshot{
		Status:      l.status,
		Loaded:      l.loaded,
		Constructed: l.constructed,
		Center:      l.center,
		Zoom:        l.zoom,
		Markers:     fc,
	}
}

// fitZoom is the largest whole zoom at which region fits a width x height
// pixel view, capped at maxZoom.
func fitZoom(region orb.Bound, width, height int, maxZoom float64) float64 {
	lo := project.WGS84.ToMercator(region.Min)
	hi := project.WGS84.ToMercator(region.Max)
	spanX := hi[0] - lo[0]
	spanY := hi[1] - lo[1]

	zoom := maxZoom
	if spanX > 0 {
		zoom = math.Min(zoom, math.Log2(float64(width)*worldMeters/(tileSize*spanX)))
	}
	if spanY > 0 {
		zoom = math.Min(zoom, math.Log2(float64(height)*worldMeters/(tileSize*spanY)))
	}
	return math.Max(0, math.Floor(zoom))
}
