// Copyright 2021 the u-root Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package metric

import (
	"net/http"
	"strings"

	"github.com/VictoriaMetrics/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/prometheus/common/expfmt"
)

// MetricOpts contains naming pieces of the exposed metric
type MetricOpts struct {
	Namespace string
	Subsystem string
	Name      string
}

// Handler serves the metrics of g followed by the ones created through
// this package, as a single text exposition. Scrapers asking for protobuf
// or OpenMetrics get text as well.
func Handler(g prometheus.Gatherer) http.Handler {
	prom := promhttp.HandlerFor(g, promhttp.HandlerOpts{
		// Both halves go into one body, it cannot be compressed halfway.
		DisableCompression: true,
	})
	return http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		r = r.Clone(r.Context())
		r.Header.Set("Accept", string(expfmt.NewFormat(expfmt.TypeTextPlain)))
		prom.ServeHTTP(rw, r)
		metrics.WritePrometheus(rw, false)
	})
}

// StartMetrics adds the metrics handler to a http.ServeMux
func StartMetrics(mux *http.ServeMux) {
	mux.Handle("/metrics", Handler(prometheus.DefaultGatherer))
}

// Counter creates and returns a metrics.Counter
func Counter(opts MetricOpts, labels []string) *metrics.Counter {
	return metrics.GetOrCreateCounter(optsToString(opts) + labelsToString(labels))
}

// Gauge creates and returns a metrics.Gauge
func Gauge(opts MetricOpts, labels []string, f func() float64) *metrics.Gauge {
	return metrics.GetOrCreateGauge(optsToString(opts)+labelsToString(labels), f)
}

func optsToString(opts MetricOpts) string {
	if opts.Name == "" {
		return ""
	}
	switch {
	case opts.Namespace != "" && opts.Subsystem != "":
		return strings.Join([]string{opts.Namespace, opts.Subsystem, opts.Name}, "_")
	case opts.Namespace != "":
		return strings.Join([]string{opts.Namespace, opts.Name}, "_")
	case opts.Subsystem != "":
		return strings.Join([]string{opts.Subsystem, opts.Name}, "_")
	}
	return opts.Name
}

// labelsToString renders labels given as `key="value"` pairs.
func labelsToString(labels []string) string {
	if len(labels) == 0 {
		return ""
	}
	return "{" + strings.Join(labels, ",") + "}"
}
