package api

import (
	"fleetmap/internal/config"

	"github.com/paulmach/orb/geojson"
)

type Device struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	LastUpdate string `json:"lastUpdate"`
	Status     string `json:"status"`
}

type CreateDevicesRequest struct {
	Devices []Device `json:"devices"`
}

type GetWidgetResponse struct {
	Width        int                `json:"width"`
	Height       int                `json:"height"`
	Zoom         int                `json:"zoom"`
	BorderRadius int                `json:"borderRadius"`
	ShadowColor  string             `json:"shadowColor"`
	Style        []config.StyleRule `json:"style"`
	APIKey       string             `json:"apiKey"`
	ElementStyle string             `json:"elementStyle"`
	Center       LatLng             `json:"center"`
}

type LatLng struct {
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lng"`
}

type GetMapResponse struct {
	Status      string                     `json:"status"`
	Loaded      bool                       `json:"loaded"`
	Constructed bool                       `json:"constructed"`
	Center      LatLng                     `json:"center"`
	Zoom        float64                    `json:"zoom"`
	Markers     *geojson.FeatureCollection `json:"markers"`
}
