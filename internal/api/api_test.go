package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"fleetmap/internal/config"
	"fleetmap/internal/db"
	"fleetmap/internal/layer"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testMapConfig() config.MapConfig {
	return config.MapConfig{
		Width:        300,
		Height:       400,
		Zoom:         15,
		BorderRadius: 10,
		ShadowColor:  "white",
		APIKey:       "key",
		Center:       config.CenterConfig{Latitude: 52, Longitude: 4.7},
	}
}

func Test_Health(t *testing.T) {
	a := New(Config{MapConfig: testMapConfig()})
	w := httptest.NewRecorder()
	a.Router().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "OK", w.Body.String())
}

func Test_GetWidget(t *testing.T) {
	cfg := testMapConfig()
	a := New(Config{MapConfig: cfg})
	w := httptest.NewRecorder()
	a.Router().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/widget", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var resp GetWidgetResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, 300, resp.Width)
	assert.Equal(t, 400, resp.Height)
	assert.Equal(t, 15, resp.Zoom)
	assert.Equal(t, "key", resp.APIKey)
	assert.Equal(t, cfg.ElementStyle(), resp.ElementStyle)
	assert.Equal(t, LatLng{Latitude: 52, Longitude: 4.7}, resp.Center)
}

func Test_GetMap(t *testing.T) {
	l := layer.New(testMapConfig())
	ready := make(chan struct{})
	l.RequestSurface(func() { close(ready) })
	<-ready
	l.ShowMap()
	m := l.CreateMarker(orb.Point{4.7, 52})
	l.CreateLabelOverlay(m, "van<br>truck")
	l.CreateMarker(orb.Point{4.8, 52.1})

	a := New(Config{Map: l, MapConfig: testMapConfig()})
	w := httptest.NewRecorder()
	a.Router().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/map", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Status      string  `json:"status"`
		Loaded      bool    `json:"loaded"`
		Constructed bool    `json:"constructed"`
		Center      LatLng  `json:"center"`
		Zoom        float64 `json:"zoom"`
		Markers     struct {
			Type     string `json:"type"`
			Features []struct {
				Geometry struct {
					Coordinates []float64 `json:"coordinates"`
				} `json:"geometry"`
				Properties map[string]any `json:"properties"`
			} `json:"features"`
		} `json:"markers"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.True(t, resp.Loaded)
	assert.True(t, resp.Constructed)
	assert.Equal(t, "FeatureCollection", resp.Markers.Type)
	require.Len(t, resp.Markers.Features, 2)
	assert.Equal(t, []float64{4.7, 52}, resp.Markers.Features[0].Geometry.Coordinates)
	assert.Equal(t, "van<br>truck", resp.Markers.Features[0].Properties["label"])
	assert.NotContains(t, resp.Markers.Features[1].Properties, "label")
}

func Test_CreateDevices(t *testing.T) {
	seen := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		name           string
		setupDB        func(t *testing.T) repository
		payload        string
		expectedStatus int
	}{
		{
			name: "happy path",
			setupDB: func(t *testing.T) repository {
				mockRepo := NewMockrepository(t)
				mockRepo.EXPECT().UpsertDevices(mock.Anything, []db.Device{
					{ID: 7, Name: "van", LastUpdate: seen, Status: "online"},
					{ID: 9, Name: "truck", LastUpdate: seen, Status: "unknown"},
				}).Return(nil)
				return mockRepo
			},
			payload: `{"devices":[
				{"id":7,"name":"van","lastUpdate":"2024-05-01T12:00:00Z","status":"online"},
				{"id":9,"name":"truck","lastUpdate":"2024-05-01T12:00:00Z"}
			]}`,
			expectedStatus: http.StatusCreated,
		},
		{
			name: "invalid request body",
			setupDB: func(t *testing.T) repository {
				return NewMockrepository(t)
			},
			payload:        `not-a-json`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "invalid lastUpdate",
			setupDB: func(t *testing.T) repository {
				return NewMockrepository(t)
			},
			payload:        `{"devices":[{"id":7,"name":"van","lastUpdate":"yesterday"}]}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "database error",
			setupDB: func(t *testing.T) repository {
				mockRepo := NewMockrepository(t)
				mockRepo.EXPECT().UpsertDevices(mock.Anything, mock.Anything).Return(errors.New("database error"))
				return mockRepo
			},
			payload:        `{"devices":[{"id":7,"name":"van"}]}`,
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			a := New(Config{
				DB:        tt.setupDB(t),
				MapConfig: testMapConfig(),
			})

			r := httptest.NewRequest(http.MethodPost, "/devices", bytes.NewBufferString(tt.payload))
			w := httptest.NewRecorder()
			a.Router().ServeHTTP(w, r)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}
