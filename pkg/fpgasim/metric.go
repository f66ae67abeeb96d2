// Copyright 2024 the u-root Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fpgasim

import (
	"sync/atomic"

	"github.com/u-root/u-fpga/pkg/metric"
)

var (
	openHandles atomic.Int64

	bytesRead = metric.Counter(metric.MetricOpts{
		Namespace: "ufpga",
		Subsystem: "sim",
		Name:      "read_bytes_total",
	}, nil)
	bytesWritten = metric.Counter(metric.MetricOpts{
		Namespace: "ufpga",
		Subsystem: "sim",
		Name:      "written_bytes_total",
	}, nil)
	firmwareStored = metric.Counter(metric.MetricOpts{
		Namespace: "ufpga",
		Subsystem: "sim",
		Name:      "firmware_stored_bytes_total",
	}, nil)
)

func init() {
	metric.Gauge(metric.MetricOpts{
		Namespace: "ufpga",
		Subsystem: "sim",
		Name:      "open_handles",
	}, nil, func() float64 {
		return float64(openHandles.Load())
	})
}
