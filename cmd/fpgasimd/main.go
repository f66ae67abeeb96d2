// Copyright 2024 the u-root Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// fpgasimd serves a simulated jelly_fpga_control board over gRPC, with
// Prometheus metrics on a separate HTTP listener.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/afero"
	"github.com/u-root/u-fpga/config"
	"github.com/u-root/u-fpga/pkg/fpgasim"
	"github.com/u-root/u-fpga/pkg/logger"
	"github.com/u-root/u-fpga/pkg/metric"
	"go.uber.org/zap"
	"golang.org/x/net/netutil"
	"golang.org/x/sync/errgroup"
)

var (
	configFile    = flag.String("config", "", "YAML configuration file")
	listen        = flag.String("listen", "", "gRPC listen address, overrides the configuration")
	metricsListen = flag.String("metrics-listen", "", "Metrics listen address, overrides the configuration")
	root          = flag.String("root", "", "Keep firmware under this host directory instead of in memory")
)

func main() {
	flag.Parse()

	cfg, err := config.Load(*configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "fpgasimd: %v\n", err)
		os.Exit(1)
	}
	if *listen != "" {
		cfg.Sim.Listen = *listen
	}
	if *metricsListen != "" {
		cfg.Sim.MetricsListen = *metricsListen
	}
	if err := logger.LogContainer.Configure(logger.Config{Level: cfg.LogLevel, File: cfg.LogFile}); err != nil {
		fmt.Fprintf(os.Stderr, "fpgasimd: %v\n", err)
		os.Exit(1)
	}
	log := logger.LogContainer.GetLogger()

	store := afero.NewMemMapFs()
	if *root != "" {
		store = afero.NewBasePathFs(afero.NewOsFs(), *root)
	}
	sim, err := fpgasim.New(simOptions(&cfg.Sim, store, log)...)
	if err != nil {
		log.Fatal("creating simulator", zap.Error(err))
	}

	l, err := net.Listen("tcp", cfg.Sim.Listen)
	if err != nil {
		log.Fatal("listen", zap.String("addr", cfg.Sim.Listen), zap.Error(err))
	}
	if cfg.Sim.MaxConns > 0 {
		l = netutil.LimitListener(l, cfg.Sim.MaxConns)
	}
	ml, err := net.Listen("tcp", cfg.Sim.MetricsListen)
	if err != nil {
		log.Fatal("listen", zap.String("addr", cfg.Sim.MetricsListen), zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := serve(ctx, sim, l, ml, log); err != nil {
		log.Fatal("serve", zap.Error(err))
	}
}

func simOptions(cfg *config.Sim, store afero.Fs, log *zap.Logger) []fpgasim.Option {
	opts := []fpgasim.Option{
		fpgasim.WithLogger(log),
		fpgasim.WithFs(store),
		fpgasim.WithFirmwareDir(cfg.FirmwareDir),
		fpgasim.WithAccels(cfg.Accels...),
	}
	for _, d := range cfg.Uio {
		opts = append(opts, fpgasim.WithUio(fpgasim.Device{Name: d.Name, Size: d.Size, Phys: d.Phys}))
	}
	for _, d := range cfg.Udmabuf {
		opts = append(opts, fpgasim.WithUdmabuf(fpgasim.Device{Name: d.Name, Size: d.Size, Phys: d.Phys}))
	}
	return opts
}

// serve runs the gRPC server on l and the metrics endpoint on ml until ctx
// is done or either of them fails.
func serve(ctx context.Context, sim *fpgasim.Server, l, ml net.Listener, log *zap.Logger) error {
	g := sim.NewGRPCServer()
	mux := http.NewServeMux()
	metric.StartMetrics(mux)
	hs := &http.Server{Handler: mux, ReadHeaderTimeout: 10 * time.Second}

	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		log.Info("serving gRPC", zap.String("addr", l.Addr().String()))
		return g.Serve(l)
	})
	eg.Go(func() error {
		log.Info("serving metrics", zap.String("addr", ml.Addr().String()))
		if err := hs.Serve(ml); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	eg.Go(func() error {
		<-ctx.Done()
		log.Info("shutting down")
		g.GracefulStop()
		sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return hs.Shutdown(sctx)
	})
	return eg.Wait()
}
