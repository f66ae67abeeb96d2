// Copyright 2024 the u-root Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// fpga-mcp exposes a control server as Model Context Protocol tools over
// stdio.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/mark3labs/mcp-go/server"
	"github.com/u-root/u-fpga/config"
	"github.com/u-root/u-fpga/pkg/fpga"
	"github.com/u-root/u-fpga/pkg/logger"
	"go.uber.org/zap"
)

var (
	configFile = flag.String("config", "", "YAML configuration file")
	host       = flag.String("host", "", "Control server endpoint, overrides the configuration")
)

func main() {
	flag.Parse()

	cfg, err := config.Load(*configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "fpga-mcp: %v\n", err)
		os.Exit(1)
	}
	if *host != "" {
		cfg.Endpoint = *host
	}
	if err := logger.LogContainer.Configure(logger.Config{Level: cfg.LogLevel, File: cfg.LogFile}); err != nil {
		fmt.Fprintf(os.Stderr, "fpga-mcp: %v\n", err)
		os.Exit(1)
	}
	log := logger.LogContainer.GetLogger()

	wait := cfg.Wait
	if wait <= 0 {
		wait = 10 * time.Second
	}
	ctx, cancel := context.WithTimeout(context.Background(), wait)
	c, err := fpga.Connect(ctx, cfg.Endpoint, fpga.WithLogger(log), fpga.WithChunkSize(cfg.ChunkSize))
	cancel()
	if err != nil {
		log.Fatal("connect", zap.Error(err))
	}
	defer c.Close()

	s := server.NewMCPServer(
		"u-fpga",
		"1.0.0",
		server.WithToolCapabilities(false),
	)
	addTools(s, &tools{c: c, log: log})

	// stdout carries the protocol, logs go to stderr.
	if err := server.ServeStdio(s); err != nil {
		log.Error("serve", zap.Error(err))
	}
}
