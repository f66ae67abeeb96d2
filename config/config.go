// Copyright 2018 the u-root Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/u-root/u-fpga/pkg/fpga"
	"gopkg.in/yaml.v3"
)

// Device is a UIO or u-dma-buf device offered by the simulator.
type Device struct {
	Name string `yaml:"name"`
	Size uint64 `yaml:"size"`
	Phys uint64 `yaml:"phys"`
}

type Sim struct {
	Listen        string   `yaml:"listen"`
	MetricsListen string   `yaml:"metrics_listen"`
	FirmwareDir   string   `yaml:"firmware_dir"`
	Uio           []Device `yaml:"uio"`
	Udmabuf       []Device `yaml:"udmabuf"`
	// Accels are accelerator packages preinstalled in FirmwareDir.
	Accels []string `yaml:"accels"`
	// MaxConns caps concurrent client connections, 0 for no limit.
	MaxConns int `yaml:"max_conns"`
}

type Config struct {
	// Endpoint of the control server, host:port or a URI.
	Endpoint string `yaml:"endpoint"`
	// Wait bounds how long clients retry the initial connection. Zero
	// means a single attempt.
	Wait      time.Duration `yaml:"wait"`
	LogLevel  string        `yaml:"log_level"`
	LogFile   string        `yaml:"log_file"`
	ChunkSize int           `yaml:"chunk_size"`
	Sim       Sim           `yaml:"sim"`
}

// DefaultConfig matches the stock jelly-fpga-server setup on a KV260.
var DefaultConfig = Config{
	Endpoint:  "http://[::1]:8051",
	LogLevel:  "info",
	ChunkSize: fpga.MaxChunkSize,
	Sim: Sim{
		Listen:        "[::1]:8051",
		MetricsListen: "[::1]:9151",
		FirmwareDir:   "/lib/firmware",
		Uio: []Device{
			{Name: "uio_pl_peri", Size: 0x10000, Phys: 0xa0000000},
		},
		Udmabuf: []Device{
			{Name: "udmabuf-jelly-vram0", Size: 0x400000, Phys: 0x70000000},
		},
		Accels:   []string{"k26-starter-kits"},
		MaxConns: 64,
	},
}

// Load reads a YAML file over DefaultConfig. A missing file is not an
// error; the defaults are returned.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig
	cfg.Sim.Uio = append([]Device(nil), DefaultConfig.Sim.Uio...)
	cfg.Sim.Udmabuf = append([]Device(nil), DefaultConfig.Sim.Udmabuf...)
	cfg.Sim.Accels = append([]string(nil), DefaultConfig.Sim.Accels...)
	if path == "" {
		return &cfg, nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return &cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.Endpoint == "" {
		return errors.New("endpoint is empty")
	}
	if c.ChunkSize <= 0 || c.ChunkSize > fpga.MaxChunkSize {
		return fmt.Errorf("chunk_size %d outside 1..%d", c.ChunkSize, fpga.MaxChunkSize)
	}
	if c.Wait < 0 {
		return fmt.Errorf("negative wait %v", c.Wait)
	}
	if c.Sim.MaxConns < 0 {
		return fmt.Errorf("negative max_conns %d", c.Sim.MaxConns)
	}
	return nil
}
