// Copyright 2019 the u-root Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/u-root/u-fpga/pkg/fpga"
)

func TestDefaultConfigIsValid(t *testing.T) {
	c := DefaultConfig
	if err := c.Validate(); err != nil {
		t.Fatalf("DefaultConfig.Validate() = %v", err)
	}
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		check   func(*testing.T, *Config)
		wantErr bool
	}{
		{
			name: "overrides endpoint and keeps defaults",
			yaml: "endpoint: kv260.local:8051\nwait: 5s\n",
			check: func(t *testing.T, c *Config) {
				if c.Endpoint != "kv260.local:8051" {
					t.Errorf("Endpoint = %q", c.Endpoint)
				}
				if c.Wait != 5*time.Second {
					t.Errorf("Wait = %v, want 5s", c.Wait)
				}
				if c.ChunkSize != fpga.MaxChunkSize {
					t.Errorf("ChunkSize = %d, want default %d", c.ChunkSize, fpga.MaxChunkSize)
				}
			},
		},
		{
			name: "simulator devices",
			yaml: "sim:\n  uio:\n    - name: uio4\n      size: 4096\n      phys: 0x80000000\n",
			check: func(t *testing.T, c *Config) {
				if len(c.Sim.Uio) != 1 || c.Sim.Uio[0].Name != "uio4" || c.Sim.Uio[0].Phys != 0x80000000 {
					t.Errorf("Sim.Uio = %+v", c.Sim.Uio)
				}
				if c.Sim.FirmwareDir != DefaultConfig.Sim.FirmwareDir {
					t.Errorf("Sim.FirmwareDir = %q", c.Sim.FirmwareDir)
				}
			},
		},
		{
			name: "accelerators and connection limit",
			yaml: "sim:\n  accels: [kv260-led]\n  max_conns: 4\n",
			check: func(t *testing.T, c *Config) {
				if len(c.Sim.Accels) != 1 || c.Sim.Accels[0] != "kv260-led" {
					t.Errorf("Sim.Accels = %q", c.Sim.Accels)
				}
				if c.Sim.MaxConns != 4 {
					t.Errorf("Sim.MaxConns = %d, want 4", c.Sim.MaxConns)
				}
			},
		},
		{
			name:    "negative connection limit",
			yaml:    "sim:\n  max_conns: -1\n",
			wantErr: true,
		},
		{
			name:    "chunk size too large",
			yaml:    "chunk_size: 4194304\n",
			wantErr: true,
		},
		{
			name:    "empty endpoint",
			yaml:    "endpoint: \"\"\n",
			wantErr: true,
		},
		{
			name:    "malformed yaml",
			yaml:    "endpoint: [\n",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "fpga.yaml")
			if err := os.WriteFile(path, []byte(tt.yaml), 0644); err != nil {
				t.Fatal(err)
			}
			c, err := Load(path)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Load() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr {
				tt.check(t, c)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	c, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if c.Endpoint != DefaultConfig.Endpoint {
		t.Errorf("Endpoint = %q, want %q", c.Endpoint, DefaultConfig.Endpoint)
	}
}

func TestLoadDoesNotAliasDefaults(t *testing.T) {
	c, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	c.Sim.Uio[0].Name = "changed"
	if DefaultConfig.Sim.Uio[0].Name == "changed" {
		t.Error("Load() returned a config sharing DefaultConfig's device slice")
	}
}
