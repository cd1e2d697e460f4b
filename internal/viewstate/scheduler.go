package viewstate

import (
	"sync"
	"time"
)

// Scheduler runs fn repeatedly every interval until the returned cancel
// function is called. Cancel must be idempotent.
type Scheduler interface {
	Every(interval time.Duration, fn func()) (cancel func())
}

// TimeScheduler is a Scheduler backed by time.Ticker. Under js/wasm the Go
// runtime drives its timers from the browser event loop.
type TimeScheduler struct{}

func (TimeScheduler) Every(interval time.Duration, fn func()) func() {
	ticker := time.NewTicker(interval)
	done := make(chan struct{})
	go func() {
		for {
			select {
			case <-ticker.C:
				fn()
			case <-done:
				return
			}
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() {
			ticker.Stop()
			close(done)
		})
	}
}
