// Copyright 2024 the u-root Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"context"
	"errors"
	"net"
	"strings"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/u-root/u-fpga/config"
	"github.com/u-root/u-fpga/pkg/fpga"
	"github.com/u-root/u-fpga/pkg/fpgasim"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/test/bufconn"
)

func newTestClient(t *testing.T) (*fpga.Client, afero.Fs) {
	t.Helper()
	store := afero.NewMemMapFs()
	sim, err := fpgasim.New(
		fpgasim.WithFs(store),
		fpgasim.WithAccels("k26-starter-kits"),
		fpgasim.WithUio(fpgasim.Device{Name: "uio_pl_peri", Size: 0x10000, Phys: 0xa0000000}))
	if err != nil {
		t.Fatalf("fpgasim.New() error = %v", err)
	}
	l := bufconn.Listen(1 << 20)
	g := sim.NewGRPCServer()
	go g.Serve(l)
	t.Cleanup(g.Stop)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	c, err := fpga.Connect(ctx, "passthrough:///bufnet", fpga.WithDialOptions(
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return l.DialContext(ctx)
		})))
	if err != nil {
		t.Fatalf("Connect() error = %v", err)
	}
	t.Cleanup(func() { c.Close() })

	local := afero.NewMemMapFs()
	old := fs
	fs = local
	t.Cleanup(func() { fs = old })
	return c, local
}

func run(t *testing.T, c *fpga.Client, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	err := callRPC(context.Background(), &out, c, args)
	return out.String(), err
}

func mustRun(t *testing.T, c *fpga.Client, args ...string) string {
	t.Helper()
	out, err := run(t, c, args...)
	if err != nil {
		t.Fatalf("callRPC(%q) error = %v", args, err)
	}
	return out
}

func TestVerbArguments(t *testing.T) {
	c, _ := newTestClient(t)
	for _, args := range [][]string{
		{"frobnicate"},
		{"load"},
		{"load", "a", "b"},
		{"read", "mem", "u", "1", "0"},
		{"read", "ram", "u", "1", "0", "8"},
		{"read", "mem", "x", "1", "0", "8"},
		{"read", "mem", "f", "1", "0", "2"},
		{"close", "not-a-number"},
	} {
		if _, err := run(t, c, args...); err == nil {
			t.Errorf("callRPC(%q) succeeded", args)
		}
	}
}

func TestRejectedIsAnError(t *testing.T) {
	c, _ := newTestClient(t)
	_, err := run(t, c, "load", "missing")
	if !errors.Is(err, errRejected) {
		t.Errorf("load missing: error = %v, want %v", err, errRejected)
	}
}

func TestLoadUnload(t *testing.T) {
	c, _ := newTestClient(t)
	if out := mustRun(t, c, "load", "k26-starter-kits"); out != "slot 0\n" {
		t.Errorf("load output = %q", out)
	}
	mustRun(t, c, "unload")
	if _, err := run(t, c, "unload", "0"); !errors.Is(err, errRejected) {
		t.Errorf("second unload error = %v, want %v", err, errRejected)
	}
}

func TestUploadAndRemove(t *testing.T) {
	c, local := newTestClient(t)
	data := bytes.Repeat([]byte{0x5a}, 3<<20)
	if err := afero.WriteFile(local, "design.bit", data, 0644); err != nil {
		t.Fatal(err)
	}
	out := mustRun(t, c, "upload", "led.bit", "design.bit")
	if !strings.Contains(out, "Uploaded led.bit (3.1 MB)") {
		t.Errorf("upload output = %q", out)
	}
	mustRun(t, c, "load-bitstream", "led.bit")
	mustRun(t, c, "rm", "led.bit")
	if _, err := run(t, c, "rm", "led.bit"); !errors.Is(err, errRejected) {
		t.Errorf("second rm error = %v, want %v", err, errRejected)
	}
	if _, err := run(t, c, "upload", "nothing.bit"); err == nil {
		t.Error("upload of a missing local file succeeded")
	}
}

func TestDtc(t *testing.T) {
	c, local := newTestClient(t)
	afero.WriteFile(local, "led.dts", []byte("/dts-v1/; /plugin/; / { };"), 0644)
	mustRun(t, c, "dtc", "led.dts", "led.dtbo")
	dtb, err := afero.ReadFile(local, "led.dtbo")
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(dtb, []byte{0xd0, 0x0d, 0xfe, 0xed}) {
		t.Errorf("led.dtbo starts with %x, want the FDT magic", dtb[:4])
	}

	afero.WriteFile(local, "bad.dts", []byte("not a device tree"), 0644)
	if _, err := run(t, c, "dtc", "bad.dts", "bad.dtbo"); !errors.Is(err, errRejected) {
		t.Errorf("dtc bad.dts error = %v, want %v", err, errRejected)
	}
}

func TestReadWrite(t *testing.T) {
	c, _ := newTestClient(t)
	if out := mustRun(t, c, "open-mmap", "/dev/mem", "0xa0000000", "0x1000", "8"); out != "id 1\n" {
		t.Fatalf("open-mmap output = %q", out)
	}
	tests := []struct {
		write []string
		read  []string
		want  string
	}{
		{
			write: []string{"mem", "u", "1", "0", "2", "0x1ffff"},
			read:  []string{"mem", "u", "1", "0", "8"},
			want:  "0xffff\n",
		},
		{
			write: []string{"mem", "i", "1", "8", "1", "-2"},
			read:  []string{"mem", "i", "1", "8", "1"},
			want:  "-2\n",
		},
		{
			write: []string{"reg", "u", "1", "2", "4", "0xdeadbeef"},
			read:  []string{"mem", "u", "1", "16", "4"},
			want:  "0xdeadbeef\n",
		},
		{
			write: []string{"mem", "f", "1", "32", "4", "1.5"},
			read:  []string{"mem", "f", "1", "32", "4"},
			want:  "1.5\n",
		},
		{
			write: []string{"reg", "f", "1", "5", "8", "-0.25"},
			read:  []string{"reg", "f", "1", "5", "8"},
			want:  "-0.25\n",
		},
	}
	for _, tt := range tests {
		mustRun(t, c, append([]string{"write"}, tt.write...)...)
		if got := mustRun(t, c, append([]string{"read"}, tt.read...)...); got != tt.want {
			t.Errorf("read %q = %q, want %q", tt.read, got, tt.want)
		}
	}

	if _, err := run(t, c, "read", "mem", "u", "1", "0", "3"); !errors.Is(err, fpga.ErrInvalidWidth) {
		t.Errorf("width 3 error = %v, want %v", err, fpga.ErrInvalidWidth)
	}
	if _, err := run(t, c, "read", "mem", "u", "1", "0x1000", "8"); !errors.Is(err, errRejected) {
		t.Errorf("out of range read error = %v, want %v", err, errRejected)
	}
}

func TestInfoAndSubclone(t *testing.T) {
	c, _ := newTestClient(t)
	mustRun(t, c, "open-uio", "uio_pl_peri")
	out := mustRun(t, c, "info", "1")
	if !strings.Contains(out, "size 0x10000 (64 KiB)") || !strings.Contains(out, "phys 0xa0000000") {
		t.Errorf("info output = %q", out)
	}
	if out := mustRun(t, c, "subclone", "1", "0x100", "0x100"); out != "id 2\n" {
		t.Errorf("subclone output = %q", out)
	}
	if out := mustRun(t, c, "info", "2"); !strings.Contains(out, "phys 0xa0000100") {
		t.Errorf("info 2 output = %q", out)
	}
	mustRun(t, c, "close", "2")
	if _, err := run(t, c, "info", "2"); !errors.Is(err, errRejected) {
		t.Errorf("info on a closed handle error = %v, want %v", err, errRejected)
	}
}

func TestCopy(t *testing.T) {
	c, local := newTestClient(t)
	mustRun(t, c, "open-mmap", "/dev/mem", "0", "0x100")
	afero.WriteFile(local, "in.bin", []byte("hello fabric"), 0644)
	mustRun(t, c, "copy-to", "1", "4", "in.bin")
	if out := mustRun(t, c, "copy-from", "1", "4", "5", "-"); out != "hello" {
		t.Errorf("copy-from - = %q, want %q", out, "hello")
	}
	mustRun(t, c, "copy-from", "1", "10", "6", "out.bin")
	got, _ := afero.ReadFile(local, "out.bin")
	if string(got) != "fabric" {
		t.Errorf("out.bin = %q, want %q", got, "fabric")
	}
}

func TestBlink(t *testing.T) {
	c, _ := newTestClient(t)
	out := mustRun(t, c, "blink", "2", "0s")
	if out != "Blink 1/2\nBlink 2/2\n" {
		t.Errorf("blink output = %q", out)
	}
	// blink closes its mapping; the next handle is fresh.
	if _, err := run(t, c, "info", "1"); !errors.Is(err, errRejected) {
		t.Errorf("blink left handle 1 open: %v", err)
	}
}

func TestMethods(t *testing.T) {
	c, _ := newTestClient(t)
	out := mustRun(t, c, "methods")
	for _, want := range []string{
		"Method: ReadMemU\n",
		"Method: UploadFirmware (client streaming)\n",
		"phys_addr: [number (>= 0)]",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("methods output lacks %q", want)
		}
	}
}

func TestCall(t *testing.T) {
	c, _ := newTestClient(t)
	out := mustRun(t, c, "call", "Load", `{"name": "k26-starter-kits"}`)
	if !strings.Contains(out, `"result": true`) || !strings.Contains(out, `"slot": 0`) {
		t.Errorf("call Load output = %q", out)
	}
	if _, err := run(t, c, "call", "NoSuchMethod"); err == nil {
		t.Error("call NoSuchMethod succeeded")
	}
}

func TestNewConnectionWaits(t *testing.T) {
	cfg, err := config.Load("")
	if err != nil {
		t.Fatal(err)
	}
	// Nothing listens on the discard port.
	cfg.Endpoint = "127.0.0.1:9"
	cfg.Wait = 300 * time.Millisecond
	start := time.Now()
	if _, err := newConnection(context.Background(), cfg, zap.NewNop().Sugar()); err == nil {
		t.Fatal("newConnection() succeeded without a server")
	}
	if d := time.Since(start); d < 40*time.Millisecond {
		t.Errorf("newConnection() gave up after %v, before retrying", d)
	}
}
