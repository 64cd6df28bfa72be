package api

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"fleetmap/internal/config"
	"fleetmap/internal/db"
	"fleetmap/internal/layer"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

type repository interface {
	UpsertDevices(ctx context.Context, devices []db.Device) error
}

type mapView interface {
	Snapshot() layer.Snapshot
}

type API struct {
	DB  repository
	Map mapView
	cfg config.MapConfig
}

type Config struct {
	DB        repository
	Map       mapView
	MapConfig config.MapConfig
}

func New(cfg Config) *API {
	return &API{DB: cfg.DB, Map: cfg.Map, cfg: cfg.MapConfig}
}

func (a *API) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/health", a.Health)
	r.Get("/widget", a.GetWidget)
	r.Get("/map", a.GetMap)
	r.Post("/devices", a.CreateDevices)
	return r
}

func (a *API) Health(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}

func (a *API) GetWidget(w http.ResponseWriter, r *http.Request) {
	resp := GetWidgetResponse{
		Width:        a.cfg.Width,
		Height:       a.cfg.Height,
		Zoom:         a.cfg.Zoom,
		BorderRadius: a.cfg.BorderRadius,
		ShadowColor:  a.cfg.ShadowColor,
		Style:        a.cfg.Style,
		APIKey:       a.cfg.APIKey,
		ElementStyle: a.cfg.ElementStyle(),
		Center: LatLng{
			Latitude:  a.cfg.Center.Latitude,
			Longitude: a.cfg.Center.Longitude,
		},
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

func (a *API) GetMap(w http.ResponseWriter, r *http.Request) {
	snap := a.Map.Snapshot()
	resp := GetMapResponse{
		Status:      snap.Status,
		Loaded:      snap.Loaded,
		Constructed: snap.Constructed,
		Center:      LatLng{Latitude: snap.Center.Lat(), Longitude: snap.Center.Lon()},
		Zoom:        snap.Zoom,
		Markers:     snap.Markers,
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

func (a *API) CreateDevices(w http.ResponseWriter, r *http.Request) {
	var req CreateDevicesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	dbDevices, err := convertDevicesToDB(req.Devices)
	if err != nil {
		http.Error(w, "invalid device lastUpdate", http.StatusBadRequest)
		return
	}

	if err := a.DB.UpsertDevices(r.Context(), dbDevices); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusCreated)
}

// convertDevicesToDB fills a missing lastUpdate with the current time.
func convertDevicesToDB(devices []Device) ([]db.Device, error) {
	dbDevices := make([]db.Device, 0, len(devices))
	for _, device := range devices {
		lastUpdate := time.Now().UTC()
		if device.LastUpdate != "" {
			parsed, err := time.Parse(time.RFC3339, device.LastUpdate)
			if err != nil {
				return nil, err
			}
			lastUpdate = parsed
		}
		status := device.Status
		if status == "" {
			status = "unknown"
		}
		dbDevices = append(dbDevices, db.Device{
			ID:         device.ID,
			Name:       device.Name,
			LastUpdate: lastUpdate,
			Status:     status,
		})
	}
	return dbDevices, nil
}
