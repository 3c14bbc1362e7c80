// Package stats records per-invocation client metrics on top of go-metrics.
//
// Hierarchical names are stored using a '/' path separator. Name elements that
// contain '/' have it replaced by "_SLASH_" rather than failing.
package stats

import (
	"sort"
	"strings"
	"time"

	"github.com/rcrowley/go-metrics"
	"github.com/sirupsen/logrus"
)

// Recorder hands out instruments backed by a go-metrics registry.
type Recorder struct {
	registry metrics.Registry
	scope    []string
}

func NewRecorder() *Recorder {
	return &Recorder{registry: metrics.NewRegistry()}
}

// Scope returns a Recorder sharing the registry whose names are prefixed with scope.
func (r *Recorder) Scope(scope ...string) *Recorder {
	return &Recorder{registry: r.registry, scope: r.scoped(scope...)}
}

func (r *Recorder) Counter(name ...string) metrics.Counter {
	return metrics.GetOrRegisterCounter(r.scopedName(name...), r.registry)
}

func (r *Recorder) Latency(name ...string) metrics.Timer {
	return metrics.GetOrRegisterTimer(r.scopedName(name...), r.registry)
}

// Time records the time elapsed since start in the named latency instrument.
func (r *Recorder) Time(start time.Time, name ...string) {
	r.Latency(name...).UpdateSince(start)
}

// Snapshot flattens every instrument into a value suitable for a log field.
// Counters report their count; latencies report count and mean/max in milliseconds.
func (r *Recorder) Snapshot() map[string]interface{} {
	out := map[string]interface{}{}
	r.registry.Each(func(name string, i interface{}) {
		switch m := i.(type) {
		case metrics.Counter:
			out[name] = m.Count()
		case metrics.Timer:
			s := m.Snapshot()
			out[name] = map[string]interface{}{
				"count":   s.Count(),
				"mean_ms": s.Mean() / float64(time.Millisecond),
				"max_ms":  float64(s.Max()) / float64(time.Millisecond),
			}
		}
	})
	return out
}

// Log writes one record per instrument, in name order, at debug level.
func (r *Recorder) Log(entry *logrus.Entry) {
	snapshot := r.Snapshot()
	names := make([]string, 0, len(snapshot))
	for name := range snapshot {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		entry.WithField("value", snapshot[name]).Debug(name)
	}
}

func (r *Recorder) scoped(scope ...string) []string {
	out := append([]string(nil), r.scope...)
	for _, s := range scope {
		out = append(out, strings.Replace(s, "/", "_SLASH_", -1))
	}
	return out
}

func (r *Recorder) scopedName(name ...string) string {
	return strings.Join(r.scoped(name...), "/")
}
