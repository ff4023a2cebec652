// Package metrics provides observability hooks for the settings cache.
//
// It follows the null-object pattern: components receive a Recorder through
// dependency injection and default to NoopRecorder, so metrics collection
// never requires nil checks at call sites. The Prometheus implementation is
// activated by injecting NewPrometheusRecorder where metrics are wanted.
package metrics

import "time"

// Recorder receives settings-cache events.
type Recorder interface {
	// CacheHit records a settings read served from the store.
	CacheHit()
	// CacheMiss records a settings read that required a full load.
	CacheMiss()
	// Rebuild records an explicit cache re-warm.
	Rebuild()
	// LoadDuration records the wall time of one full settings load.
	LoadDuration(d time.Duration)
}

// NoopRecorder is the default Recorder; its methods inline to nothing.
type NoopRecorder struct{}

func (NoopRecorder) CacheHit()                  {}
func (NoopRecorder) CacheMiss()                 {}
func (NoopRecorder) Rebuild()                   {}
func (NoopRecorder) LoadDuration(time.Duration) {}
