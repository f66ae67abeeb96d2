// Copyright 2024 the u-root Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fpga

import "github.com/prometheus/client_golang/prometheus"

var (
	uploadChunks = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "ufpga",
		Subsystem: "client",
		Name:      "upload_chunks_total",
		Help:      "Firmware chunks handed to the upload stream",
	})
	uploadBytes = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "ufpga",
		Subsystem: "client",
		Name:      "upload_bytes_total",
		Help:      "Firmware bytes handed to the upload stream",
	})
)

func init() {
	prometheus.MustRegister(uploadChunks)
	prometheus.MustRegister(uploadBytes)
}
