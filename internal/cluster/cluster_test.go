package cluster

import (
	"testing"

	"fleetmap/internal/registry"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func positioned(id registry.DeviceID, name string, lat, lng float64) registry.Positioned {
	return registry.Positioned{
		ID:   id,
		Name: name,
		Position: registry.Position{
			DeviceID:  id,
			Latitude:  lat,
			Longitude: lng,
		},
	}
}

func Test_Epsilon(t *testing.T) {
	for z := 0; z < 15; z++ {
		assert.Greater(t, Epsilon(float64(z)), Epsilon(float64(z+1)), "zoom %d", z)
	}
	assert.Greater(t, Epsilon(10.5), Epsilon(10.75))
	assert.InDelta(t, 0.0020, Epsilon(15), 0.00005)
}

func Test_Compute(t *testing.T) {
	cases := []struct {
		name           string
		inputDevices   []registry.Positioned
		inputZoom      float64
		expectedLabels []string
		expectedSeeds  []registry.DeviceID
	}{
		{
			name:           "no devices",
			inputDevices:   nil,
			inputZoom:      15,
			expectedLabels: []string{},
			expectedSeeds:  []registry.DeviceID{},
		},
		{
			name: "two close devices merge in registration order",
			inputDevices: []registry.Positioned{
				positioned(1, "alice", 52.0000, 4.7000),
				positioned(2, "bob", 52.00005, 4.70005),
			},
			inputZoom:      15,
			expectedLabels: []string{"alice<br>bob"},
			expectedSeeds:  []registry.DeviceID{1},
		},
		{
			name: "distant devices stay apart",
			inputDevices: []registry.Positioned{
				positioned(1, "alice", 52.0, 4.7),
				positioned(2, "bob", 52.1, 4.7),
			},
			inputZoom:      15,
			expectedLabels: []string{"alice", "bob"},
			expectedSeeds:  []registry.DeviceID{1, 2},
		},
		{
			name: "lower zoom widens the radius",
			inputDevices: []registry.Positioned{
				positioned(1, "alice", 52.0, 4.7),
				positioned(2, "bob", 52.02, 4.7),
			},
			inputZoom:      5,
			expectedLabels: []string{"alice<br>bob"},
			expectedSeeds:  []registry.DeviceID{1},
		},
		{
			name: "first match wins over nearest",
			inputDevices: []registry.Positioned{
				positioned(1, "a", 0, 0),
				positioned(2, "b", 0, 0.003),
				positioned(3, "c", 0, 0.0019),
			},
			inputZoom:      15,
			expectedLabels: []string{"a<br>c", "b"},
			expectedSeeds:  []registry.DeviceID{1, 2},
		},
		{
			name: "seed does not move as members join",
			inputDevices: []registry.Positioned{
				positioned(1, "a", 0, 0),
				positioned(2, "b", 0, 0.0015),
				positioned(3, "c", 0, 0.003),
			},
			inputZoom:      15,
			expectedLabels: []string{"a<br>b", "c"},
			expectedSeeds:  []registry.DeviceID{1, 3},
		},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			got := Compute(tt.inputDevices, tt.inputZoom)

			labels := make([]string, 0, len(got))
			seeds := make([]registry.DeviceID, 0, len(got))
			for _, c := range got {
				labels = append(labels, c.Label)
				seeds = append(seeds, c.Seed.DeviceID)
			}
			assert.Equal(t, tt.expectedLabels, labels)
			assert.Equal(t, tt.expectedSeeds, seeds)
		})
	}
}

func Test_Compute_ExactEpsilonDoesNotMerge(t *testing.T) {
	zoom := 12.0
	devices := []registry.Positioned{
		positioned(1, "a", 0, 0),
		positioned(2, "b", 0, Epsilon(zoom)),
	}

	got := Compute(devices, zoom)
	assert.Len(t, got, 2)
}

func Test_Compute_MutuallyCloseDevicesAnyOrder(t *testing.T) {
	zoom := 15.0
	a := positioned(1, "a", 52.0000, 4.7000)
	b := positioned(2, "b", 52.0005, 4.7005)
	c := positioned(3, "c", 52.0010, 4.7000)
	orders := [][]registry.Positioned{
		{a, b, c}, {a, c, b}, {b, a, c}, {b, c, a}, {c, a, b}, {c, b, a},
	}

	for _, order := range orders {
		got := Compute(order, zoom)
		require.Len(t, got, 1)
		assert.Equal(t, 3, got[0].MemberCount())
		assert.Equal(t, order[0].Position, got[0].Seed)
		assert.Equal(t, order[0].Name+LabelSeparator+order[1].Name+LabelSeparator+order[2].Name, got[0].Label)
	}
}

func Test_Compute_Deterministic(t *testing.T) {
	devices := []registry.Positioned{
		positioned(1, "a", 52.0, 4.7),
		positioned(2, "b", 52.001, 4.7),
		positioned(3, "c", 52.2, 4.9),
		positioned(4, "d", 52.2005, 4.9),
	}

	assert.Equal(t, Compute(devices, 15), Compute(devices, 15))
}
