// Copyright 2024 the u-root Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fpga_test

import (
	"bytes"
	"context"
	"errors"
	"io/fs"
	"math"
	"net"
	"sync"
	"testing"
	"testing/iotest"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/spf13/afero"
	"github.com/u-root/u-fpga/pkg/fpga"
	"github.com/u-root/u-fpga/pkg/fpgasim"
	pb "github.com/u-root/u-fpga/proto"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/stats"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
)

// recorder sees every upload chunk and request id that reaches the server.
type recorder struct {
	mu      sync.Mutex
	streams int
	chunks  []int
	ids     []string
}

type recordingStream struct {
	grpc.ServerStream
	r *recorder
}

func (s recordingStream) RecvMsg(m any) error {
	err := s.ServerStream.RecvMsg(m)
	if req, ok := m.(*pb.UploadFirmwareRequest); ok && err == nil {
		s.r.mu.Lock()
		s.r.chunks = append(s.r.chunks, len(req.Data))
		s.r.mu.Unlock()
	}
	return err
}

func (r *recorder) stream(srv any, ss grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
	r.mu.Lock()
	r.streams++
	r.mu.Unlock()
	return handler(srv, recordingStream{ss, r})
}

func (r *recorder) unary(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	md, _ := metadata.FromIncomingContext(ctx)
	r.mu.Lock()
	r.ids = append(r.ids, md.Get(fpga.RequestIDKey)...)
	r.mu.Unlock()
	return handler(ctx, req)
}

func (r *recorder) reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.streams = 0
	r.chunks = nil
	r.ids = nil
}

type env struct {
	client *fpga.Client
	rec    *recorder
	fs     afero.Fs // the server's firmware store
	l      *bufconn.Listener
}

func serve(t *testing.T, register func(*grpc.Server), opts ...grpc.ServerOption) *bufconn.Listener {
	t.Helper()
	l := bufconn.Listen(1 << 20)
	g := grpc.NewServer(opts...)
	register(g)
	go g.Serve(l)
	t.Cleanup(g.Stop)
	return l
}

func dialer(l *bufconn.Listener) fpga.Option {
	return fpga.WithDialOptions(grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
		return l.DialContext(ctx)
	}))
}

func connect(t *testing.T, l *bufconn.Listener, opts ...fpga.Option) *fpga.Client {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	c, err := fpga.Connect(ctx, "passthrough:///bufnet", append([]fpga.Option{dialer(l)}, opts...)...)
	if err != nil {
		t.Fatalf("Connect() error = %v", err)
	}
	t.Cleanup(func() { c.Close() })
	return c
}

func newEnv(t *testing.T, opts ...fpgasim.Option) *env {
	t.Helper()
	e := &env{rec: &recorder{}, fs: afero.NewMemMapFs()}
	sim, err := fpgasim.New(append([]fpgasim.Option{
		fpgasim.WithFs(e.fs),
		fpgasim.WithAccels("k26-starter-kits"),
		fpgasim.WithUio(fpgasim.Device{Name: "uio_pl_peri", Size: 0x10000, Phys: 0xa0000000}),
		fpgasim.WithUdmabuf(fpgasim.Device{Name: "udmabuf-jelly-vram0", Size: 0x400000, Phys: 0x70000000}),
	}, opts...)...)
	if err != nil {
		t.Fatalf("fpgasim.New() error = %v", err)
	}
	e.l = bufconn.Listen(1 << 20)
	g := sim.NewGRPCServer(
		grpc.ChainStreamInterceptor(e.rec.stream),
		grpc.ChainUnaryInterceptor(e.rec.unary))
	go g.Serve(e.l)
	t.Cleanup(g.Stop)
	e.client = connect(t, e.l)
	return e
}

func (e *env) mmap(t *testing.T) fpga.Handle {
	t.Helper()
	ok, h, err := e.client.OpenMmap(context.Background(), "/dev/mem", 0xa0000000, 0x1000, 8)
	if err != nil || !ok {
		t.Fatalf("OpenMmap() = %v, %v", ok, err)
	}
	return h
}

func TestConnectBadEndpoint(t *testing.T) {
	for _, ep := range []string{"", "fpga.local", "http://"} {
		_, err := fpga.Connect(context.Background(), ep)
		var ce *fpga.ConnectionError
		if !errors.As(err, &ce) || ce.Endpoint != ep {
			t.Errorf("Connect(%q) error = %v, want *ConnectionError", ep, err)
		}
	}
}

func TestConnectFailsWithoutRetry(t *testing.T) {
	l := bufconn.Listen(1 << 10)
	l.Close()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_, err := fpga.Connect(ctx, "passthrough:///bufnet", dialer(l))
	var ce *fpga.ConnectionError
	if !errors.As(err, &ce) {
		t.Fatalf("Connect() error = %v, want *ConnectionError", err)
	}
	if ctx.Err() != nil {
		t.Error("Connect() waited for the deadline instead of failing")
	}
}

func TestConnectHonorsContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	hang := fpga.WithDialOptions(grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
		<-ctx.Done()
		return nil, ctx.Err()
	}))
	_, err := fpga.Connect(ctx, "passthrough:///hang", hang)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Connect() error = %v, want context.Canceled", err)
	}
}

func TestBlinkScenario(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	h := e.mmap(t)
	mem := e.client.Mem()
	for _, v := range []uint64{1, 0} {
		if ok, err := mem.WriteU64(ctx, h, 0, v); err != nil || !ok {
			t.Fatalf("WriteU64(%d) = %v, %v", v, ok, err)
		}
		ok, got, err := mem.ReadU64(ctx, h, 0)
		if err != nil || !ok || got != v {
			t.Errorf("ReadU64() = %v, %d, %v, want true, %d", ok, got, err, v)
		}
	}
}

func TestRegSignScenario(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	h := e.mmap(t)
	reg := e.client.Reg()
	if ok, err := reg.WriteI8(ctx, h, 0x18, -1); err != nil || !ok {
		t.Fatalf("WriteI8() = %v, %v", ok, err)
	}
	if ok, v, err := reg.ReadI8(ctx, h, 0x18); err != nil || !ok || v != -1 {
		t.Errorf("ReadI8() = %v, %d, %v, want true, -1", ok, v, err)
	}
	if ok, v, err := reg.ReadU8(ctx, h, 0x18); err != nil || !ok || v != 255 {
		t.Errorf("ReadU8() = %v, %d, %v, want true, 255", ok, v, err)
	}
	// unit 8: register 0x18 is byte 0xc0 of the map
	if ok, v, err := e.client.Mem().ReadU8(ctx, h, 0xc0); err != nil || !ok || v != 255 {
		t.Errorf("Mem().ReadU8(0xc0) = %v, %d, %v, want true, 255", ok, v, err)
	}
}

func TestLoadMissing(t *testing.T) {
	e := newEnv(t)
	ok, slot, err := e.client.Load(context.Background(), "missing_name")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if ok || slot != -1 {
		t.Errorf("Load() = %v, %d, want false, -1", ok, slot)
	}
}

func TestRoundTrip(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	h := e.mmap(t)
	values := []uint64{0, 1, 0x7f, 0x80, 0xff, 0x100, 0x7fff, 0x8000, 0xffff, 0x1_0000,
		0x7fff_ffff, 0x8000_0000, 0xffff_ffff, 0x1234_5678_9abc_def0, math.MaxInt64, 1 << 63, math.MaxUint64}

	for _, space := range []*fpga.AddressSpace{e.client.Mem(), e.client.Reg()} {
		for _, w := range []uint64{1, 2, 4, 8} {
			shift := 64 - 8*w
			for _, v := range values {
				wantU := v << shift >> shift
				wantI := int64(v<<shift) >> shift

				if ok, err := space.WriteU(ctx, h, 8, v, w); err != nil || !ok {
					t.Fatalf("WriteU(%#x, %d) = %v, %v", v, w, ok, err)
				}
				if _, got, _ := space.ReadU(ctx, h, 8, w); got != wantU {
					t.Errorf("ReadU(%d) after WriteU(%#x) = %#x, want %#x", w, v, got, wantU)
				}
				if _, got, _ := space.ReadI(ctx, h, 8, w); got != wantI {
					t.Errorf("ReadI(%d) after WriteU(%#x) = %d, want %d", w, v, got, wantI)
				}

				if ok, err := space.WriteI(ctx, h, 8, int64(v), w); err != nil || !ok {
					t.Fatalf("WriteI(%d, %d) = %v, %v", int64(v), w, ok, err)
				}
				if _, got, _ := space.ReadI(ctx, h, 8, w); got != wantI {
					t.Errorf("ReadI(%d) after WriteI(%d) = %d, want %d", w, int64(v), got, wantI)
				}
			}
		}
	}
}

func TestFixedWidthAccessors(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	h := e.mmap(t)
	mem := e.client.Mem()

	mem.WriteU16(ctx, h, 0, 0xbeef)
	mem.WriteU32(ctx, h, 4, 0xdeadbeef)
	mem.WriteI16(ctx, h, 8, math.MinInt16)
	mem.WriteI32(ctx, h, 12, -2)
	mem.WriteI64(ctx, h, 16, math.MinInt64)

	if _, v, _ := mem.ReadU16(ctx, h, 0); v != 0xbeef {
		t.Errorf("ReadU16() = %#x", v)
	}
	if _, v, _ := mem.ReadU32(ctx, h, 4); v != 0xdeadbeef {
		t.Errorf("ReadU32() = %#x", v)
	}
	if _, v, _ := mem.ReadI16(ctx, h, 8); v != math.MinInt16 {
		t.Errorf("ReadI16() = %d", v)
	}
	if _, v, _ := mem.ReadI32(ctx, h, 12); v != -2 {
		t.Errorf("ReadI32() = %d", v)
	}
	if _, v, _ := mem.ReadI64(ctx, h, 16); v != math.MinInt64 {
		t.Errorf("ReadI64() = %d", v)
	}
	// the little endian low byte of 0xbeef
	if _, v, _ := mem.ReadU8(ctx, h, 0); v != 0xef {
		t.Errorf("ReadU8() = %#x, want 0xef", v)
	}
}

func TestFloats(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	h := e.mmap(t)
	mem, reg := e.client.Mem(), e.client.Reg()

	if ok, err := mem.WriteF32(ctx, h, 0x10, 3.14159); err != nil || !ok {
		t.Fatalf("WriteF32() = %v, %v", ok, err)
	}
	if ok, v, err := mem.ReadF32(ctx, h, 0x10); err != nil || !ok || v != 3.14159 {
		t.Errorf("ReadF32() = %v, %v, %v", ok, v, err)
	}
	if ok, err := reg.WriteF64(ctx, h, 3, -2.5); err != nil || !ok {
		t.Fatalf("WriteF64() = %v, %v", ok, err)
	}
	if ok, v, err := reg.ReadF64(ctx, h, 3); err != nil || !ok || v != -2.5 {
		t.Errorf("ReadF64() = %v, %v, %v", ok, v, err)
	}
	if ok, v, _ := mem.ReadF64(ctx, h, 0x18); !ok || v != -2.5 {
		t.Errorf("Mem().ReadF64(0x18) = %v, %v, want the register written above", ok, v)
	}
	if ok, _, err := reg.ReadF32(ctx, h, 0x200); err != nil || ok {
		t.Errorf("ReadF32() past the end = %v, %v, want false, nil", ok, err)
	}
}

func TestInvalidWidth(t *testing.T) {
	e := newEnv(t)
	h := e.mmap(t)
	e.rec.reset()
	_, err := e.client.Mem().WriteU(context.Background(), h, 0, 1, 3)
	if !errors.Is(err, fpga.ErrInvalidWidth) {
		t.Fatalf("WriteU(width 3) error = %v", err)
	}
	if len(e.rec.ids) != 0 {
		t.Errorf("server saw %d calls", len(e.rec.ids))
	}
}

func TestMemCopyRoundTrip(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	h := e.mmap(t)
	data := []byte("The quick brown fox jumps over the lazy dog")
	if ok, err := e.client.MemCopyTo(ctx, h, 0x100, data); err != nil || !ok {
		t.Fatalf("MemCopyTo() = %v, %v", ok, err)
	}
	ok, got, err := e.client.MemCopyFrom(ctx, h, 0x100, uint64(len(data)))
	if err != nil || !ok || !bytes.Equal(got, data) {
		t.Errorf("MemCopyFrom() = %v, %q, %v", ok, got, err)
	}
	if ok, _, _ := e.client.MemCopyFrom(ctx, h, 0xff0, 0x20); ok {
		t.Error("MemCopyFrom() past the end succeeded")
	}
}

func TestClosedHandle(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	h := e.mmap(t)
	e.client.Mem().WriteU32(ctx, h, 0, 1)
	if ok, err := e.client.CloseHandle(ctx, h); err != nil || !ok {
		t.Fatalf("CloseHandle() = %v, %v", ok, err)
	}

	checks := map[string]func() (bool, error){
		"ReadU32": func() (bool, error) {
			ok, _, err := e.client.Mem().ReadU32(ctx, h, 0)
			return ok, err
		},
		"WriteI8": func() (bool, error) { return e.client.Reg().WriteI8(ctx, h, 0, -1) },
		"Size": func() (bool, error) {
			ok, _, err := e.client.Size(ctx, h)
			return ok, err
		},
		"Subclone": func() (bool, error) {
			ok, _, err := e.client.Subclone(ctx, h, 0, 0x10, 8)
			return ok, err
		},
		"MemCopyTo":   func() (bool, error) { return e.client.MemCopyTo(ctx, h, 0, []byte{1}) },
		"CloseHandle": func() (bool, error) { return e.client.CloseHandle(ctx, h) },
	}
	for name, check := range checks {
		if ok, err := check(); ok || err != nil {
			t.Errorf("%s on a closed handle = %v, %v, want false, nil", name, ok, err)
		}
	}
}

func TestResources(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	c := e.client

	ok, uio, err := c.OpenUio(ctx, "uio_pl_peri", 8)
	if err != nil || !ok {
		t.Fatalf("OpenUio() = %v, %v", ok, err)
	}
	if ok, size, _ := c.Size(ctx, uio); !ok || size != 0x10000 {
		t.Errorf("Size() = %v, %#x", ok, size)
	}
	if ok, pa, _ := c.PhysAddr(ctx, uio); !ok || pa != 0xa0000000 {
		t.Errorf("PhysAddr() = %v, %#x", ok, pa)
	}
	ok, sub, err := c.Subclone(ctx, uio, 0x1000, 0x100, 4)
	if err != nil || !ok {
		t.Fatalf("Subclone() = %v, %v", ok, err)
	}
	_, base, _ := c.Addr(ctx, uio)
	if ok, addr, _ := c.Addr(ctx, sub); !ok || addr != base+0x1000 {
		t.Errorf("Addr(sub) = %v, %#x, want %#x", ok, addr, base+0x1000)
	}
	c.Reg().WriteU32(ctx, sub, 2, 0xcafe)
	if _, v, _ := c.Mem().ReadU32(ctx, uio, 0x1008); v != 0xcafe {
		t.Errorf("parent reads %#x through the subclone window, want 0xcafe", v)
	}

	ok, buf, err := c.OpenUdmabuf(ctx, "udmabuf-jelly-vram0", false, 1)
	if err != nil || !ok {
		t.Fatalf("OpenUdmabuf() = %v, %v", ok, err)
	}
	if ok, pa, _ := c.PhysAddr(ctx, buf); !ok || pa != 0x70000000 {
		t.Errorf("PhysAddr(udmabuf) = %v, %#x", ok, pa)
	}
	if ok, _, err := c.OpenUio(ctx, "uio_missing", 8); ok || err != nil {
		t.Errorf("OpenUio(missing) = %v, %v", ok, err)
	}

	if ok, err := c.Reset(ctx); err != nil || !ok {
		t.Fatalf("Reset() = %v, %v", ok, err)
	}
	if ok, _, _ := c.Size(ctx, uio); ok {
		t.Error("handle survived Reset()")
	}
}

func TestUploadChunks(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	const max = fpga.MaxChunkSize

	tests := []struct {
		name   string
		size   int
		chunks []int
	}{
		{name: "empty", size: 0},
		{name: "one byte", size: 1, chunks: []int{1}},
		{name: "one short of a chunk", size: max - 1, chunks: []int{max - 1}},
		{name: "one chunk", size: max, chunks: []int{max}},
		{name: "one over", size: max + 1, chunks: []int{max, 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload := make([]byte, tt.size)
			for i := range payload {
				payload[i] = byte(i * 7)
			}
			e.rec.reset()
			chunksBefore := testutil.ToFloat64(fpga.UploadChunks)
			bytesBefore := testutil.ToFloat64(fpga.UploadBytes)

			ok, err := e.client.UploadFirmware(ctx, "fw.bin", payload)
			if err != nil {
				t.Fatalf("UploadFirmware() error = %v", err)
			}
			// the simulator refuses an upload without chunks
			if ok != (tt.size > 0) {
				t.Errorf("UploadFirmware() = %v", ok)
			}
			if len(e.rec.chunks) != len(tt.chunks) {
				t.Fatalf("server got chunks %v, want %v", e.rec.chunks, tt.chunks)
			}
			for i := range tt.chunks {
				if e.rec.chunks[i] != tt.chunks[i] {
					t.Errorf("server got chunks %v, want %v", e.rec.chunks, tt.chunks)
				}
			}
			if got := testutil.ToFloat64(fpga.UploadChunks) - chunksBefore; int(got) != len(tt.chunks) {
				t.Errorf("chunk counter moved by %v, want %d", got, len(tt.chunks))
			}
			if got := testutil.ToFloat64(fpga.UploadBytes) - bytesBefore; int(got) != tt.size {
				t.Errorf("byte counter moved by %v, want %d", got, tt.size)
			}
			if tt.size == 0 {
				return
			}
			stored, err := afero.ReadFile(e.fs, "/lib/firmware/fw.bin")
			if err != nil || !bytes.Equal(stored, payload) {
				t.Errorf("stored firmware differs from the payload (%d bytes, %v)", len(stored), err)
			}
		})
	}
}

// sentUploads keeps every upload message the client hands to gRPC.
type sentUploads struct {
	mu   sync.Mutex
	msgs []*pb.UploadFirmwareRequest
}

func (k *sentUploads) TagRPC(ctx context.Context, _ *stats.RPCTagInfo) context.Context {
	return ctx
}

func (k *sentUploads) HandleRPC(_ context.Context, s stats.RPCStats) {
	p, ok := s.(*stats.OutPayload)
	if !ok {
		return
	}
	if m, ok := p.Payload.(*pb.UploadFirmwareRequest); ok {
		k.mu.Lock()
		k.msgs = append(k.msgs, m)
		k.mu.Unlock()
	}
}

func (k *sentUploads) TagConn(ctx context.Context, _ *stats.ConnTagInfo) context.Context {
	return ctx
}

func (k *sentUploads) HandleConn(context.Context, stats.ConnStats) {}

func TestUploadMessagesKeepTheirData(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	data := []byte{1, 1, 1, 1, 2, 2, 2, 2, 3, 3}

	uploads := map[string]func(c *fpga.Client) (bool, error){
		"UploadFirmware": func(c *fpga.Client) (bool, error) {
			return c.UploadFirmware(ctx, "fw.bin", data)
		},
		"UploadFirmwareFrom": func(c *fpga.Client) (bool, error) {
			return c.UploadFirmwareFrom(ctx, "fw.bin", iotest.OneByteReader(bytes.NewReader(data)))
		},
	}
	for name, upload := range uploads {
		t.Run(name, func(t *testing.T) {
			sent := &sentUploads{}
			c := connect(t, e.l, fpga.WithChunkSize(4), fpga.WithDialOptions(grpc.WithStatsHandler(sent)))
			if ok, err := upload(c); err != nil || !ok {
				t.Fatalf("%s() = %v, %v", name, ok, err)
			}
			sent.mu.Lock()
			defer sent.mu.Unlock()
			if len(sent.msgs) != 3 {
				t.Fatalf("sent %d messages, want 3", len(sent.msgs))
			}
			var got []byte
			for _, m := range sent.msgs {
				got = append(got, m.GetData()...)
			}
			if !bytes.Equal(got, data) {
				t.Errorf("sent messages hold %v, want %v", got, data)
			}
		})
	}
}

func TestUploadFirmwareFile(t *testing.T) {
	local := afero.NewMemMapFs()
	afero.WriteFile(local, "/home/user/led.bit", []byte{0xaa, 0x99, 0x55, 0x66}, 0644)

	e := newEnv(t)
	c := connect(t, e.l, fpga.WithFs(local))
	ctx := context.Background()

	if ok, err := c.UploadFirmwareFile(ctx, "led.bit", "/home/user/led.bit"); err != nil || !ok {
		t.Fatalf("UploadFirmwareFile() = %v, %v", ok, err)
	}
	e.rec.reset()
	ok, err := c.UploadFirmwareFile(ctx, "nope.bit", "/home/user/nope.bit")
	var fe *fpga.FileError
	if ok || !errors.As(err, &fe) || fe.Path != "/home/user/nope.bit" {
		t.Fatalf("UploadFirmwareFile(missing) = %v, %v, want *FileError", ok, err)
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("error %v does not wrap fs.ErrNotExist", err)
	}
	if e.rec.streams != 0 {
		t.Error("a stream was opened for a file that could not be read")
	}
}

func TestFirmwareLifecycle(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	c := e.client

	ok, dtb, err := c.DtsToDtb(ctx, "/dts-v1/; /plugin/;\n/ { };\n")
	if err != nil || !ok || len(dtb) < 8 {
		t.Fatalf("DtsToDtb() = %v, %d bytes, %v", ok, len(dtb), err)
	}
	if ok, _, err := c.DtsToDtb(ctx, "not a device tree"); ok || err != nil {
		t.Errorf("DtsToDtb(garbage) = %v, %v", ok, err)
	}
	if ok, err := c.UploadFirmware(ctx, "led.dtbo", dtb); err != nil || !ok {
		t.Fatalf("UploadFirmware(dtbo) = %v, %v", ok, err)
	}
	if ok, err := c.UploadFirmware(ctx, "led.bit", []byte{0xff, 0xff, 0xff, 0xff, 0xaa, 0x99, 0x55, 0x66}); err != nil || !ok {
		t.Fatalf("UploadFirmware(bit) = %v, %v", ok, err)
	}
	if ok, err := c.BitstreamToBin(ctx, "led.bit", "led.bit.bin", "zynqmp"); err != nil || !ok {
		t.Fatalf("BitstreamToBin() = %v, %v", ok, err)
	}
	if ok, err := c.BitstreamToBin(ctx, "led.bit", "led.bit.bin", "pdp11"); err != nil || ok {
		t.Errorf("BitstreamToBin(pdp11) = %v, %v", ok, err)
	}
	if ok, err := c.LoadBitstream(ctx, "led.bit.bin"); err != nil || !ok {
		t.Errorf("LoadBitstream() = %v, %v", ok, err)
	}

	if ok, slot, err := c.Load(ctx, "k26-starter-kits"); err != nil || !ok || slot != fpga.DefaultSlot {
		t.Fatalf("Load() = %v, %d, %v", ok, slot, err)
	}
	if ok, err := c.UnloadDefaultSlot(ctx); err != nil || !ok {
		t.Fatalf("UnloadDefaultSlot() = %v, %v", ok, err)
	}
	if ok, err := c.UnloadDefaultSlot(ctx); err != nil || ok {
		t.Errorf("second UnloadDefaultSlot() = %v, %v", ok, err)
	}
	if ok, err := c.LoadDtbo(ctx, "led.dtbo"); err != nil || !ok {
		t.Errorf("LoadDtbo() = %v, %v", ok, err)
	}
	if ok, err := c.Unload(ctx, 0); err != nil || !ok {
		t.Errorf("Unload(0) = %v, %v", ok, err)
	}

	for _, name := range []string{"led.dtbo", "led.bit", "led.bit.bin"} {
		if ok, err := c.RemoveFirmware(ctx, name); err != nil || !ok {
			t.Errorf("RemoveFirmware(%s) = %v, %v", name, ok, err)
		}
	}
	if ok, err := c.RemoveFirmware(ctx, "led.bit"); err != nil || ok {
		t.Errorf("RemoveFirmware() twice = %v, %v", ok, err)
	}
}

func TestConcurrentCalls(t *testing.T) {
	e := newEnv(t)
	h := e.mmap(t)
	g, ctx := errgroup.WithContext(context.Background())
	for i := uint64(0); i < 32; i++ {
		g.Go(func() error {
			mem := e.client.Mem()
			if ok, err := mem.WriteU64(ctx, h, i*8, i*0x0101); err != nil || !ok {
				return errors.Join(err, errors.New("write failed"))
			}
			ok, v, err := mem.ReadU64(ctx, h, i*8)
			if err != nil || !ok || v != i*0x0101 {
				return errors.Join(err, errors.New("read back mismatch"))
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		t.Fatal(err)
	}
}

func TestRequestIDs(t *testing.T) {
	e := newEnv(t)
	e.rec.reset()
	ctx := context.Background()
	e.client.Reset(ctx)
	e.client.Reset(ctx)
	if len(e.rec.ids) != 2 {
		t.Fatalf("server saw ids %q, want two", e.rec.ids)
	}
	for _, id := range e.rec.ids {
		if _, err := uuid.Parse(id); err != nil {
			t.Errorf("request id %q: %v", id, err)
		}
	}
	if e.rec.ids[0] == e.rec.ids[1] {
		t.Error("two calls shared a request id")
	}
}

func TestServerErrorsAreRPCErrors(t *testing.T) {
	l := serve(t, func(g *grpc.Server) {
		pb.RegisterJellyFpgaControlServer(g, pb.UnimplementedJellyFpgaControlServer{})
	})
	c := connect(t, l)
	ctx := context.Background()

	_, err := c.Reset(ctx)
	var rpcErr *fpga.RPCError
	if !errors.As(err, &rpcErr) || rpcErr.Op != "Reset" || rpcErr.Code != codes.Unimplemented {
		t.Errorf("Reset() error = %v, want Unimplemented *RPCError", err)
	}
	if _, _, err := c.Mem().ReadU32(ctx, 1, 0); status.Code(err) != codes.Unimplemented {
		t.Errorf("ReadU32() error = %v, want Unimplemented", err)
	}
	if _, err := c.UploadFirmware(ctx, "x.bin", make([]byte, 3*fpga.MaxChunkSize)); status.Code(err) != codes.Unimplemented {
		t.Errorf("UploadFirmware() error = %v, want Unimplemented", err)
	}
}
