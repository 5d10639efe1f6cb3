// Package tick is the only source of time in the core. A Source fires
// its handlers at a fixed period from a dedicated goroutine, mimicking a
// periodic timer interrupt: non-reentrant, run to completion. The same
// handlers can be driven synchronously with Pump, so tests need no
// timer at all.
package tick

import (
	"sync/atomic"
	"time"

	"liftsim/clog"
)

type Handler func()

type Source struct {
	period   time.Duration
	handlers []Handler
	ticks    atomic.Uint64
	overruns atomic.Uint64
	quit     chan struct{}
	done     chan struct{}
}

func NewSource(period time.Duration, handlers ...Handler) *Source {
	return &Source{
		period:   period,
		handlers: handlers,
		quit:     make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// Ticks returns the monotonic tick counter. Everything in the core that
// needs elapsed time measures it in these.
func (s *Source) Ticks() uint64 {
	return s.ticks.Load()
}

// Overruns counts ticks whose handlers ran longer than the period.
// Overrun ticks are effectively dropped; that is tolerated, only
// reported.
func (s *Source) Overruns() uint64 {
	return s.overruns.Load()
}

func (s *Source) fire() {
	s.ticks.Add(1)
	for _, h := range s.handlers {
		h()
	}
}

// Start launches the tick goroutine. Call Stop to halt it.
func (s *Source) Start() {
	go func() {
		defer close(s.done)
		ticker := time.NewTicker(s.period)
		defer ticker.Stop()
		lastReport := time.Now()
		for {
			select {
			case <-s.quit:
				return
			case <-ticker.C:
				begin := time.Now()
				s.fire()
				if time.Since(begin) > s.period {
					s.overruns.Add(1)
					if time.Since(lastReport) > time.Second {
						clog.Yellow.Printf("tick overrun: %d ticks exceeded the %v budget", s.Overruns(), s.period)
						lastReport = time.Now()
					}
				}
			}
		}
	}()
}

func (s *Source) Stop() {
	close(s.quit)
	<-s.done
}

// Pump fires n ticks synchronously on the caller's goroutine.
func (s *Source) Pump(n int) {
	for i := 0; i < n; i++ {
		s.fire()
	}
}
