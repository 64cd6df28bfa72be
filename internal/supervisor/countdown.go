package supervisor

import (
	"fmt"
	"sync"
	"time"
)

func countdownText(remaining int) string {
	return fmt.Sprintf("Could not connect to the tracking server. Will retry reconnecting in %d seconds.", remaining)
}

type Timer interface {
	Stop()
}

// Scheduler runs fn every d until the returned Timer is stopped. fn runs off
// the supervisor goroutine and must only post events.
type Scheduler interface {
	Every(d time.Duration, fn func()) Timer
}

type TickerScheduler struct{}

func (TickerScheduler) Every(d time.Duration, fn func()) Timer {
	t := &tickerTimer{
		ticker: time.NewTicker(d),
		stop:   make(chan struct{}),
	}
	go func() {
		for {
			select {
			case <-t.stop:
				return
			case <-t.ticker.C:
				fn()
			}
		}
	}()
	return t
}

type tickerTimer struct {
	ticker *time.Ticker
	stop   chan struct{}
	once   sync.Once
}

func (t *tickerTimer) Stop() {
	t.once.Do(func() {
		t.ticker.Stop()
		close(t.stop)
	})
}
