package registry

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"
)

var (
	ErrUnknownDevice = errors.New("unknown device")
)

type DeviceID int64

type Position struct {
	DeviceID   DeviceID
	Latitude   float64
	Longitude  float64
	ObservedAt time.Time
}

type Device struct {
	ID         DeviceID
	Name       string
	LastUpdate time.Time
	Status     string
	Position   *Position
}

// Positioned is a device name paired with its last known position.
type Positioned struct {
	ID       DeviceID
	Name     string
	Position Position
}

// Registry keeps the devices of the current discovery cycle in discovery
// order. It is owned by a single control flow and is not safe for concurrent
// use.
type Registry struct {
	order []DeviceID
	store map[DeviceID]*Device
}

func New() *Registry {
	return &Registry{
		store: make(map[DeviceID]*Device),
	}
}

func (r *Registry) ReplaceAll(ctx context.Context, devices []Device) {
	r.order = make([]DeviceID, 0, len(devices))
	r.store = make(map[DeviceID]*Device, len(devices))
	for _, d := range devices {
		if _, exists := r.store[d.ID]; exists {
			slog.WarnContext(ctx, "Duplicate device in discovery list, keeping first", "device_id", d.ID)
			continue
		}
		device := d
		device.Position = nil
		r.store[d.ID] = &device
		r.order = append(r.order, d.ID)
	}
}

func (r *Registry) ApplyPosition(position Position) error {
	const fn = "Registry:ApplyPosition"
	device, exists := r.store[position.DeviceID]
	if !exists {
		return fmt.Errorf("%s:%w:%d", fn, ErrUnknownDevice, position.DeviceID)
	}
	p := position
	device.Position = &p
	return nil
}

// ApplyBatch applies every position it can and returns how many were applied.
// Updates for devices missing from the registry are logged and skipped.
func (r *Registry) ApplyBatch(ctx context.Context, positions []Position) int {
	applied := 0
	for _, position := range positions {
		if err := r.ApplyPosition(position); err != nil {
			slog.InfoContext(ctx, "Skipping position update", "error", err, "device_id", position.DeviceID)
			continue
		}
		applied++
	}
	return applied
}

func (r *Registry) Get(id DeviceID) (Device, bool) {
	device, exists := r.store[id]
	if !exists {
		return Device{}, false
	}
	return *device, true
}

func (r *Registry) Len() int {
	return len(r.order)
}

func (r *Registry) IDs() []DeviceID {
	ids := make([]DeviceID, len(r.order))
	copy(ids, r.order)
	return ids
}

func (r *Registry) Positioned() []Positioned {
	out := make([]Positioned, 0, len(r.order))
	for _, id := range r.order {
		device := r.store[id]
		if device.Position == nil {
			continue
		}
		out = append(out, Positioned{
			ID:       device.ID,
			Name:     device.Name,
			Position: *device.Position,
		})
	}
	return out
}

func (r *Registry) Dump(ctx context.Context) {
	for _, id := range r.order {
		slog.DebugContext(ctx, "Registry Dump", "deviceID", id, "device", r.store[id])
	}
}
