package main

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"time"

	"github.com/segmentio/kafka-go"
)

// Simulates a small fleet: registers devices through the API, then streams
// jittered positions to the tracker events topic and prints the map.

type device struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	LastUpdate string `json:"lastUpdate"`
	Status     string `json:"status"`
}

type positionRecord struct {
	DeviceID  int64     `json:"deviceId"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	FixTime   time.Time `json:"fixTime"`
}

func main() {
	baseURL := flag.String("api", "http://localhost:8080", "fleet map API address")
	broker := flag.String("broker", "localhost:9092", "kafka broker")
	topic := flag.String("topic", "tracker-events", "tracker events topic")
	count := flag.Int("devices", 5, "number of simulated devices")
	rounds := flag.Int("rounds", 10, "position batches to publish")
	fail := flag.Bool("fail", false, "publish a tracker error record after the last batch")
	flag.Parse()

	// 1. POST /devices
	devices := make([]device, 0, *count)
	for i := 1; i <= *count; i++ {
		devices = append(devices, device{
			ID:         int64(i),
			Name:       fmt.Sprintf("vehicle-%d", i),
			LastUpdate: time.Now().UTC().Format(time.RFC3339),
			Status:     "online",
		})
	}
	payload, _ := json.Marshal(struct {
		Devices []device `json:"devices"`
	}{Devices: devices})
	resp, err := http.Post(*baseURL+"/devices", "application/json", bytes.NewBuffer(payload))
	if err != nil {
		panic(err)
	}
	resp.Body.Close()
	fmt.Println("POST /devices status:", resp.Status)

	// 2. Publish position batches
	writer := kafka.NewWriter(kafka.WriterConfig{
		Brokers: []string{*broker},
		Topic:   *topic,
	})
	defer writer.Close()

	ctx := context.Background()
	for round := 0; round < *rounds; round++ {
		positions := make([]positionRecord, 0, len(devices))
		for _, d := range devices {
			positions = append(positions, positionRecord{
				DeviceID:  d.ID,
				Latitude:  52 + rand.Float64()*0.01,
				Longitude: 4.7 + rand.Float64()*0.01,
				FixTime:   time.Now().UTC(),
			})
		}
		if err := publish(ctx, writer, "positions", map[string]any{"positions": positions}); err != nil {
			panic(err)
		}
		time.Sleep(time.Second)
	}
	if *fail {
		if err := publish(ctx, writer, "error", map[string]any{"message": "simulated tracker outage"}); err != nil {
			panic(err)
		}
	}

	// 3. GET /map
	resp, err = http.Get(*baseURL + "/map")
	if err != nil {
		panic(err)
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	fmt.Println("GET /map:", string(body))
}

func publish(ctx context.Context, writer *kafka.Writer, recordType string, payload any) error {
	raw, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	value, err := json.Marshal(map[string]any{"type": recordType, "payload": json.RawMessage(raw)})
	if err != nil {
		return err
	}
	return writer.WriteMessages(ctx, kafka.Message{Value: value})
}
