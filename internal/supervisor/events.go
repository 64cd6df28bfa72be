package supervisor

import (
	"fleetmap/internal/registry"
)

type Kind int

const (
	KindDevicesDiscovered Kind = iota
	KindPositionBatch
	KindConnectionError
	KindSurfaceReady
	KindCountdownTick
)

func (k Kind) String() string {
	switch k {
	case KindDevicesDiscovered:
		return "devices_discovered"
	case KindPositionBatch:
		return "position_batch"
	case KindConnectionError:
		return "connection_error"
	case KindSurfaceReady:
		return "surface_ready"
	case KindCountdownTick:
		return "countdown_tick"
	default:
		return "unknown"
	}
}

type Event interface {
	Kind() Kind
}

type DevicesDiscovered struct {
	Devices []registry.Device
}

type PositionBatch struct {
	Positions []registry.Position
}

type ConnectionError struct {
	Err error
}

// SurfaceReady reports that the surface requested in discovery cycle Cycle
// can accept markers.
type SurfaceReady struct {
	Cycle uint64
}

type CountdownTick struct {
	Generation uint64
}

func (DevicesDiscovered) Kind() Kind { return KindDevicesDiscovered }
func (PositionBatch) Kind() Kind     { return KindPositionBatch }
func (ConnectionError) Kind() Kind   { return KindConnectionError }
func (SurfaceReady) Kind() Kind      { return KindSurfaceReady }
func (CountdownTick) Kind() Kind     { return KindCountdownTick }
