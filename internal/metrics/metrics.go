// Package metrics records inventory build outcomes in Prometheus format.
//
// An inventory source is a short-lived process, so nothing is served: the
// collectors live in a private registry and are written to a node_exporter
// textfile-collector file after the build.
package metrics

import (
	"fmt"
	"time"

	"gns3-inventory/internal/adapter"
	"gns3-inventory/internal/domain"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "gns3_inventory"

// Recorder implements service.BuildObserver on top of Prometheus collectors
type Recorder struct {
	registry *prometheus.Registry

	buildDuration prometheus.Gauge
	hostsEmitted  prometheus.Gauge
	nodesSkipped  prometheus.Gauge
	lastSuccess   prometheus.Gauge
	buildFailures *prometheus.CounterVec
}

// NewRecorder creates a recorder labelled with the project it builds from
func NewRecorder(project string) *Recorder {
	labels := prometheus.Labels{"project": project}

	r := &Recorder{
		registry: prometheus.NewRegistry(),
		buildDuration: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   namespace,
			Name:        "build_duration_seconds",
			Help:        "Duration of the last inventory build, including controller requests",
			ConstLabels: labels,
		}),
		hostsEmitted: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   namespace,
			Name:        "hosts",
			Help:        "Number of hosts in the last successful inventory",
			ConstLabels: labels,
		}),
		nodesSkipped: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   namespace,
			Name:        "nodes_skipped",
			Help:        "Nodes left out of the last successful inventory for lack of a console address",
			ConstLabels: labels,
		}),
		lastSuccess: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   namespace,
			Name:        "last_success_timestamp_seconds",
			Help:        "Unix time of the last successful inventory build",
			ConstLabels: labels,
		}),
		buildFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   namespace,
			Name:        "build_failures_total",
			Help:        "Inventory builds that failed, by error kind",
			ConstLabels: labels,
		}, []string{"kind"}),
	}

	r.registry.MustRegister(r.buildDuration, r.hostsEmitted, r.nodesSkipped, r.lastSuccess, r.buildFailures)
	return r
}

// ObserveBuild records one build
func (r *Recorder) ObserveBuild(duration time.Duration, inv *domain.Inventory, err error) {
	r.buildDuration.Set(duration.Seconds())

	if err != nil {
		r.buildFailures.WithLabelValues(adapter.ErrorKind(err)).Inc()
		return
	}

	if inv != nil {
		r.hostsEmitted.Set(float64(inv.Len()))
		r.nodesSkipped.Set(float64(inv.Skipped()))
	}
	r.lastSuccess.Set(float64(time.Now().Unix()))
}

// Registry exposes the underlying registry, mainly for tests
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// WriteTextfile writes all metrics to path atomically
func (r *Recorder) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, r.registry); err != nil {
		return fmt.Errorf("write metrics textfile: %w", err)
	}
	return nil
}
