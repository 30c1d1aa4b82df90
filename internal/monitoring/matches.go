package monitoring

import (
	"runtime"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// MatchCounter is implemented by the match registry.
type MatchCounter interface {
	ActiveMatches() int
}

// MatchMonitor periodically samples the number of running matches and
// goroutines and warns when the registry nears its capacity.
type MatchMonitor struct {
	mu       sync.RWMutex
	source   MatchCounter
	capacity int // 0 means unlimited
	interval time.Duration
	logger   zerolog.Logger

	baselineGoroutines int
	metrics            MatchMetrics

	stop     chan struct{}
	stopOnce sync.Once
}

// MatchMetrics contains the last sampled values
type MatchMetrics struct {
	Active         int `json:"active"`
	PeakActive     int `json:"peak_active"`
	Goroutines     int `json:"goroutines"`
	PeakGoroutines int `json:"peak_goroutines"`
	Samples        int `json:"samples"`
}

// NewMatchMonitor creates a monitor for source sampling every interval
func NewMatchMonitor(source MatchCounter, capacity int, interval time.Duration, logger zerolog.Logger) *MatchMonitor {
	baseline := runtime.NumGoroutine()
	return &MatchMonitor{
		source:             source,
		capacity:           capacity,
		interval:           interval,
		logger:             logger.With().Str("component", "MatchMonitor").Logger(),
		baselineGoroutines: baseline,
		metrics:            MatchMetrics{Goroutines: baseline, PeakGoroutines: baseline},
		stop:               make(chan struct{}),
	}
}

// Start begins sampling in the background
func (mm *MatchMonitor) Start() {
	go mm.run()
	mm.logger.Info().
		Int("baseline_goroutines", mm.baselineGoroutines).
		Dur("interval", mm.interval).
		Msg("Started match monitoring")
}

// Stop stops the monitor. It is safe to call more than once.
func (mm *MatchMonitor) Stop() {
	mm.stopOnce.Do(func() { close(mm.stop) })
}

func (mm *MatchMonitor) run() {
	defer func() {
		if r := recover(); r != nil {
			mm.logger.Error().
				Interface("panic", r).
				Msg("Match monitor panicked")
		}
	}()

	ticker := time.NewTicker(mm.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			mm.Sample()
		case <-mm.stop:
			return
		}
	}
}

// Sample records the current counts and returns them.
func (mm *MatchMonitor) Sample() MatchMetrics {
	active := mm.source.ActiveMatches()
	goroutines := runtime.NumGoroutine()

	mm.mu.Lock()
	m := &mm.metrics
	m.Active = active
	m.PeakActive = max(m.PeakActive, active)
	m.Goroutines = goroutines
	m.PeakGoroutines = max(m.PeakGoroutines, goroutines)
	m.Samples++
	out := *m
	mm.mu.Unlock()

	mm.logger.Debug().
		Int("active_matches", out.Active).
		Int("peak_matches", out.PeakActive).
		Int("goroutines", out.Goroutines).
		Int("goroutine_growth", out.Goroutines-mm.baselineGoroutines).
		Msg("Match metrics")

	if mm.nearCapacity(active) {
		mm.logger.Warn().
			Int("active_matches", active).
			Int("max_matches", mm.capacity).
			Msg("Match registry nearly full")
	}
	return out
}

// nearCapacity reports whether at least 90% of the slots are taken
func (mm *MatchMonitor) nearCapacity(active int) bool {
	return mm.capacity > 0 && active*10 >= mm.capacity*9
}

// Metrics returns the last sampled values
func (mm *MatchMonitor) Metrics() MatchMetrics {
	mm.mu.RLock()
	defer mm.mu.RUnlock()
	return mm.metrics
}
