package stream

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	k "fleetmap/internal/kafka"
	"fleetmap/internal/registry"
	"fleetmap/internal/supervisor"
	"fleetmap/internal/worker"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type recordingSink struct {
	events []supervisor.Event
}

func (s *recordingSink) Post(ev supervisor.Event) {
	s.events = append(s.events, ev)
}

func Test_ProcessMessage(t *testing.T) {
	fix := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	cases := []struct {
		name           string
		inputMessage   kafka.Message
		readErr        error
		expectedErr    error
		expectedEvents []supervisor.Event
	}{
		{
			name: "position batch",
			inputMessage: kafka.Message{Value: []byte(`{"type":"positions","payload":{"positions":[
				{"deviceId":1,"latitude":52.0,"longitude":4.7,"fixTime":"2024-05-01T12:00:00Z"},
				{"deviceId":2,"latitude":52.1,"longitude":4.8,"fixTime":"2024-05-01T12:00:00Z"}]}}`)},
			expectedErr: nil,
			expectedEvents: []supervisor.Event{
				supervisor.PositionBatch{Positions: []registry.Position{
					{DeviceID: 1, Latitude: 52.0, Longitude: 4.7, ObservedAt: fix},
					{DeviceID: 2, Latitude: 52.1, Longitude: 4.8, ObservedAt: fix},
				}},
			},
		},
		{
			name:           "empty batch is still a batch",
			inputMessage:   kafka.Message{Value: []byte(`{"type":"positions","payload":{"positions":[]}}`)},
			expectedErr:    nil,
			expectedEvents: []supervisor.Event{supervisor.PositionBatch{Positions: []registry.Position{}}},
		},
		{
			name:           "null positions dropped silently",
			inputMessage:   kafka.Message{Value: []byte(`{"type":"positions","payload":{"positions":null}}`)},
			expectedErr:    nil,
			expectedEvents: nil,
		},
		{
			name:           "non object payload dropped silently",
			inputMessage:   kafka.Message{Value: []byte(`{"type":"positions","payload":"oops"}`)},
			expectedErr:    nil,
			expectedEvents: nil,
		},
		{
			name:           "invalid message JSON dropped silently",
			inputMessage:   kafka.Message{Value: []byte("invalid-json")},
			expectedErr:    nil,
			expectedEvents: nil,
		},
		{
			name:           "null record dropped silently",
			inputMessage:   kafka.Message{Value: []byte(`null`)},
			expectedErr:    nil,
			expectedEvents: nil,
		},
		{
			name:           "non object record dropped silently",
			inputMessage:   kafka.Message{Value: []byte(`[1,2]`)},
			expectedErr:    nil,
			expectedEvents: nil,
		},
		{
			name:           "error record with unreadable payload",
			inputMessage:   kafka.Message{Value: []byte(`{"type":"error","payload":"timeout"}`)},
			expectedErr:    nil,
			expectedEvents: []supervisor.Event{supervisor.ConnectionError{Err: ErrTracker}},
		},
		{
			name:           "error record without payload",
			inputMessage:   kafka.Message{Value: []byte(`{"type":"error"}`)},
			expectedErr:    nil,
			expectedEvents: []supervisor.Event{supervisor.ConnectionError{Err: ErrTracker}},
		},
		{
			name:           "unknown record type",
			inputMessage:   kafka.Message{Value: []byte(`{"type":"heartbeat"}`)},
			expectedErr:    ErrUnknownRecord,
			expectedEvents: nil,
		},
		{
			name:        "reader failed",
			readErr:     errors.New("broker gone"),
			expectedErr: ErrReadMessage,
		},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			r := k.NewMockReader(t)
			r.EXPECT().ReadMessage(mock.Anything).Return(tt.inputMessage, tt.readErr)
			sink := &recordingSink{}
			p := &Processor{reader: r, sink: sink}

			err := p.ProcessMessage(context.Background())
			assert.ErrorIs(t, err, tt.expectedErr)

			if tt.readErr != nil {
				require.Len(t, sink.events, 1)
				assert.Equal(t, supervisor.KindConnectionError, sink.events[0].Kind())
				return
			}
			assert.Equal(t, tt.expectedEvents, sink.events)
		})
	}
}

func Test_ProcessMessage_TrackerError(t *testing.T) {
	r := k.NewMockReader(t)
	r.EXPECT().ReadMessage(mock.Anything).Return(kafka.Message{
		Value: []byte(`{"type":"error","payload":{"message":"upstream unreachable"}}`),
	}, nil)
	sink := &recordingSink{}
	p := &Processor{reader: r, sink: sink}

	require.NoError(t, p.ProcessMessage(context.Background()))
	require.Len(t, sink.events, 1)
	ev, ok := sink.events[0].(supervisor.ConnectionError)
	require.True(t, ok)
	assert.ErrorIs(t, ev.Err, ErrTracker)
	assert.Contains(t, ev.Err.Error(), "upstream unreachable")
}

func Test_ProcessMessage_CancelledReadNotReported(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	r := k.NewMockReader(t)
	r.EXPECT().ReadMessage(mock.Anything).Return(kafka.Message{}, context.Canceled)
	sink := &recordingSink{}
	p := &Processor{reader: r, sink: sink}

	err := p.ProcessMessage(ctx)
	assert.ErrorIs(t, err, ErrReadMessage)
	assert.Empty(t, sink.events)
}

func Test_ProcessMessage_ReadFailureReportedOnce(t *testing.T) {
	r := k.NewMockReader(t)
	r.EXPECT().ReadMessage(mock.Anything).Return(kafka.Message{}, errors.New("broker gone")).Times(3)
	r.EXPECT().ReadMessage(mock.Anything).Return(kafka.Message{
		Value: []byte(`{"type":"positions","payload":{"positions":[]}}`),
	}, nil).Once()
	r.EXPECT().ReadMessage(mock.Anything).Return(kafka.Message{}, errors.New("broker gone again")).Once()
	sink := &recordingSink{}
	p := &Processor{reader: r, sink: sink}
	ctx := context.Background()

	p.ProcessMessage(ctx)
	p.ProcessMessage(ctx)
	require.Len(t, sink.events, 1)

	p.Rearm()
	p.ProcessMessage(ctx)
	require.Len(t, sink.events, 2)

	require.NoError(t, p.ProcessMessage(ctx))
	p.ProcessMessage(ctx)
	require.Len(t, sink.events, 4)
	assert.Equal(t, supervisor.KindConnectionError, sink.events[0].Kind())
	assert.Equal(t, supervisor.KindConnectionError, sink.events[1].Kind())
	assert.Equal(t, supervisor.KindPositionBatch, sink.events[2].Kind())
	assert.Equal(t, supervisor.KindConnectionError, sink.events[3].Kind())
}

type nopHost struct{}

func (nopHost) ShowStatus(text string)      {}
func (nopHost) ShowMap()                    {}
func (nopHost) RequestSurface(ready func()) {}

// rearmingConnector answers discovery with one device and re-arms the
// processor whenever the stream is requested, as the real connector does.
type rearmingConnector struct {
	sup         *supervisor.Supervisor
	processor   *Processor
	discoveries atomic.Int32
}

func (c *rearmingConnector) RequestDiscovery(ctx context.Context) {
	c.discoveries.Add(1)
	go c.sup.Post(supervisor.DevicesDiscovered{Devices: []registry.Device{{ID: 1, Name: "van"}}})
}

func (c *rearmingConnector) RequestPositionStream(ctx context.Context, deviceIDs []registry.DeviceID) {
	c.processor.Rearm()
}

func Test_FailingReaderKeepsRetryingDiscovery(t *testing.T) {
	r := k.NewMockReader(t)
	r.EXPECT().ReadMessage(mock.Anything).Return(kafka.Message{}, errors.New("broker gone"))

	conn := &rearmingConnector{}
	sup := supervisor.New(supervisor.Config{
		Connector:        conn,
		Host:             nopHost{},
		Zoom:             15,
		CountdownSeconds: 3,
		Tick:             2 * time.Millisecond,
	})
	p := &Processor{reader: r, sink: sup}
	p.worker = worker.New(worker.Config{
		Name:       "stream-worker",
		Processor:  p,
		ErrorDelay: 2 * time.Millisecond,
	})
	conn.sup = sup
	conn.processor = p

	ctx, cancel := context.WithCancel(context.Background())
	wg := sync.WaitGroup{}
	wg.Go(func() { sup.Run(ctx) })
	wg.Go(func() { p.Run(ctx) })

	assert.Eventually(t, func() bool {
		return conn.discoveries.Load() >= 3
	}, 5*time.Second, 5*time.Millisecond)

	cancel()
	wg.Wait()
}
