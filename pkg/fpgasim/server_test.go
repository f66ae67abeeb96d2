// Copyright 2024 the u-root Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fpgasim

import (
	"context"
	"math"
	"net"
	"testing"

	"github.com/spf13/afero"
	pb "github.com/u-root/u-fpga/proto"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/test/bufconn"
)

var ctx = context.Background()

func newTestServer(t *testing.T, opts ...Option) *Server {
	t.Helper()
	s, err := New(opts...)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return s
}

func mustMmap(t *testing.T, s *Server, size, unit uint64) uint32 {
	t.Helper()
	res, _ := s.OpenMmap(ctx, &pb.OpenMmapRequest{Path: "/dev/mem", Offset: 0xa0000000, Size: size, Unit: unit})
	if !res.Result {
		t.Fatalf("OpenMmap(%d) failed", size)
	}
	return res.Id
}

func TestHandlesAreNotReused(t *testing.T) {
	s := newTestServer(t)
	a := mustMmap(t, s, 16, 0)
	b := mustMmap(t, s, 16, 0)
	if a != 1 || b != 2 {
		t.Errorf("handles = %d, %d, want 1, 2", a, b)
	}
	if res, _ := s.Close(ctx, &pb.CloseRequest{Id: a}); !res.Result {
		t.Error("Close() of an open handle failed")
	}
	if res, _ := s.Close(ctx, &pb.CloseRequest{Id: a}); res.Result {
		t.Error("Close() of a closed handle succeeded")
	}
	if c := mustMmap(t, s, 16, 0); c != 3 {
		t.Errorf("handle after close = %d, want 3", c)
	}
}

func TestOpenMmapRejects(t *testing.T) {
	s := newTestServer(t)
	for _, r := range []*pb.OpenMmapRequest{
		{Path: "", Size: 16},
		{Path: "/dev/mem", Size: 0},
		{Path: "/dev/mem", Size: maxMmap + 1},
	} {
		if res, _ := s.OpenMmap(ctx, r); res.Result || res.Id != 0 {
			t.Errorf("OpenMmap(%+v) = %+v, want failure", r, res)
		}
	}
}

func TestMemAccess(t *testing.T) {
	s := newTestServer(t)
	id := mustMmap(t, s, 16, 0)

	tests := []struct {
		name   string
		offset uint64
		data   uint64
		size   uint64
		ok     bool
		wantU  uint64
		wantI  int64
	}{
		{name: "u8", offset: 0, data: 0x80, size: 1, ok: true, wantU: 0x80, wantI: -128},
		{name: "u16", offset: 2, data: 0xfffe, size: 2, ok: true, wantU: 0xfffe, wantI: -2},
		{name: "u32", offset: 4, data: 0x12345678, size: 4, ok: true, wantU: 0x12345678, wantI: 0x12345678},
		{name: "u64", offset: 8, data: math.MaxUint64, size: 8, ok: true, wantU: math.MaxUint64, wantI: -1},
		{name: "truncates", offset: 0, data: 0x1ff, size: 1, ok: true, wantU: 0xff, wantI: -1},
		{name: "last byte", offset: 15, data: 1, size: 1, ok: true, wantU: 1, wantI: 1},
		{name: "past end", offset: 9, size: 8},
		{name: "huge offset", offset: math.MaxUint64, size: 1},
		{name: "width 3", offset: 0, size: 3},
		{name: "width 0", offset: 0, size: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, _ := s.WriteMemU(ctx, &pb.WriteMemURequest{Id: id, Offset: tt.offset, Data: tt.data, Size: tt.size})
			if w.Result != tt.ok {
				t.Fatalf("WriteMemU() = %v, want %v", w.Result, tt.ok)
			}
			u, _ := s.ReadMemU(ctx, &pb.ReadMemRequest{Id: id, Offset: tt.offset, Size: tt.size})
			i, _ := s.ReadMemI(ctx, &pb.ReadMemRequest{Id: id, Offset: tt.offset, Size: tt.size})
			if u.Result != tt.ok || i.Result != tt.ok {
				t.Fatalf("read results = %v, %v, want %v", u.Result, i.Result, tt.ok)
			}
			if u.Data != tt.wantU {
				t.Errorf("ReadMemU() = %#x, want %#x", u.Data, tt.wantU)
			}
			if i.Data != tt.wantI {
				t.Errorf("ReadMemI() = %d, want %d", i.Data, tt.wantI)
			}
		})
	}
}

func TestMemIsLittleEndian(t *testing.T) {
	s := newTestServer(t)
	id := mustMmap(t, s, 8, 0)
	s.WriteMemU(ctx, &pb.WriteMemURequest{Id: id, Data: 0x0102030405060708, Size: 8})
	res, _ := s.MemCopyFrom(ctx, &pb.MemCopyFromRequest{Id: id, Size: 8})
	want := []byte{8, 7, 6, 5, 4, 3, 2, 1}
	if string(res.Data) != string(want) {
		t.Errorf("memory = % x, want % x", res.Data, want)
	}
}

func TestRegScaling(t *testing.T) {
	tests := []struct {
		unit   uint64
		reg    uint64
		offset uint64
	}{
		{unit: 0, reg: 2, offset: 16},
		{unit: 8, reg: 1, offset: 8},
		{unit: 4, reg: 3, offset: 12},
		{unit: 1, reg: 5, offset: 5},
	}
	for _, tt := range tests {
		s := newTestServer(t)
		id := mustMmap(t, s, 64, tt.unit)
		if res, _ := s.WriteRegU(ctx, &pb.WriteRegURequest{Id: id, Reg: tt.reg, Data: 0xab, Size: 1}); !res.Result {
			t.Fatalf("unit %d: WriteRegU() failed", tt.unit)
		}
		res, _ := s.ReadMemU(ctx, &pb.ReadMemRequest{Id: id, Offset: tt.offset, Size: 1})
		if res.Data != 0xab {
			t.Errorf("unit %d reg %d: byte %d = %#x, want 0xab", tt.unit, tt.reg, tt.offset, res.Data)
		}
	}

	s := newTestServer(t)
	id := mustMmap(t, s, 64, 0)
	if res, _ := s.ReadRegU(ctx, &pb.ReadRegRequest{Id: id, Reg: math.MaxUint64 / 2, Size: 8}); res.Result {
		t.Error("ReadRegU() with an overflowing index succeeded")
	}
}

func TestFloatAccess(t *testing.T) {
	s := newTestServer(t)
	id := mustMmap(t, s, 32, 8)

	s.WriteMemF32(ctx, &pb.WriteMemF32Request{Id: id, Offset: 4, Data: 3.14159})
	if res, _ := s.ReadMemF32(ctx, &pb.ReadMemRequest{Id: id, Offset: 4, Size: 4}); !res.Result || res.Data != 3.14159 {
		t.Errorf("ReadMemF32() = %+v", res)
	}
	s.WriteRegF64(ctx, &pb.WriteRegF64Request{Id: id, Reg: 2, Data: -2.5})
	if res, _ := s.ReadMemF64(ctx, &pb.ReadMemRequest{Id: id, Offset: 16, Size: 8}); !res.Result || res.Data != -2.5 {
		t.Errorf("ReadMemF64() = %+v", res)
	}
	if res, _ := s.ReadRegF64(ctx, &pb.ReadRegRequest{Id: id, Reg: 4, Size: 8}); res.Result {
		t.Error("ReadRegF64() past the end succeeded")
	}
}

func TestSubcloneSharesStorage(t *testing.T) {
	s := newTestServer(t)
	parent := mustMmap(t, s, 0x100, 0)
	sub, _ := s.Subclone(ctx, &pb.SubcloneRequest{Id: parent, Offset: 0x40, Size: 0x20, Unit: 4})
	if !sub.Result {
		t.Fatal("Subclone() failed")
	}
	s.WriteRegU(ctx, &pb.WriteRegURequest{Id: sub.Id, Reg: 1, Data: 0xdeadbeef, Size: 4})
	if res, _ := s.ReadMemU(ctx, &pb.ReadMemRequest{Id: parent, Offset: 0x44, Size: 4}); res.Data != 0xdeadbeef {
		t.Errorf("parent sees %#x, want 0xdeadbeef", res.Data)
	}
	if res, _ := s.GetSize(ctx, &pb.GetSizeRequest{Id: sub.Id}); res.Size != 0x20 {
		t.Errorf("GetSize() = %#x, want 0x20", res.Size)
	}
	if res, _ := s.GetPhysAddr(ctx, &pb.GetPhysAddrRequest{Id: sub.Id}); res.PhysAddr != 0xa0000040 {
		t.Errorf("GetPhysAddr() = %#x, want 0xa0000040", res.PhysAddr)
	}
	pa, _ := s.GetAddr(ctx, &pb.GetAddrRequest{Id: parent})
	sa, _ := s.GetAddr(ctx, &pb.GetAddrRequest{Id: sub.Id})
	if sa.Addr != pa.Addr+0x40 {
		t.Errorf("GetAddr() = %#x, want parent %#x + 0x40", sa.Addr, pa.Addr)
	}
	if res, _ := s.WriteMemU(ctx, &pb.WriteMemURequest{Id: sub.Id, Offset: 0x20, Data: 1, Size: 1}); res.Result {
		t.Error("write past the subclone succeeded")
	}

	rest, _ := s.Subclone(ctx, &pb.SubcloneRequest{Id: parent, Offset: 0xf0})
	if res, _ := s.GetSize(ctx, &pb.GetSizeRequest{Id: rest.Id}); !rest.Result || res.Size != 0x10 {
		t.Errorf("Subclone() with size 0 = %+v, size %#x", rest, res.Size)
	}
	if res, _ := s.Subclone(ctx, &pb.SubcloneRequest{Id: parent, Offset: 0xf0, Size: 0x20}); res.Result {
		t.Error("Subclone() past the parent succeeded")
	}
	if res, _ := s.Subclone(ctx, &pb.SubcloneRequest{Id: 99, Size: 1}); res.Result {
		t.Error("Subclone() of an unknown handle succeeded")
	}
}

func TestDevices(t *testing.T) {
	s := newTestServer(t,
		WithUio(Device{Name: "uio_pl_peri", Size: 0x1000, Phys: 0xa0000000}),
		WithUdmabuf(Device{Name: "udmabuf-jelly-vram0", Size: 0x4000, Phys: 0x70000000}))

	a, _ := s.OpenUio(ctx, &pb.OpenUioRequest{Name: "uio_pl_peri", Unit: 8})
	b, _ := s.OpenUio(ctx, &pb.OpenUioRequest{Name: "uio_pl_peri", Unit: 4})
	if !a.Result || !b.Result || a.Id == b.Id {
		t.Fatalf("OpenUio() = %+v, %+v", a, b)
	}
	s.WriteRegU(ctx, &pb.WriteRegURequest{Id: a.Id, Reg: 1, Data: 7, Size: 8})
	if res, _ := s.ReadRegU(ctx, &pb.ReadRegRequest{Id: b.Id, Reg: 2, Size: 8}); res.Data != 7 {
		t.Errorf("second open reads %d, want 7", res.Data)
	}

	if res, _ := s.OpenUio(ctx, &pb.OpenUioRequest{Name: "uio_missing"}); res.Result {
		t.Error("OpenUio() of an unknown device succeeded")
	}

	u, _ := s.OpenUdmabuf(ctx, &pb.OpenUdmabufRequest{Name: "udmabuf-jelly-vram0", CacheEnable: true})
	if !u.Result {
		t.Fatal("OpenUdmabuf() failed")
	}
	if res, _ := s.GetPhysAddr(ctx, &pb.GetPhysAddrRequest{Id: u.Id}); res.PhysAddr != 0x70000000 {
		t.Errorf("GetPhysAddr() = %#x, want 0x70000000", res.PhysAddr)
	}
	if res, _ := s.GetSize(ctx, &pb.GetSizeRequest{Id: u.Id}); res.Size != 0x4000 {
		t.Errorf("GetSize() = %#x, want 0x4000", res.Size)
	}
}

func TestUnknownHandle(t *testing.T) {
	s := newTestServer(t)
	if res, _ := s.ReadMemU(ctx, &pb.ReadMemRequest{Id: 42, Size: 4}); res.Result {
		t.Error("ReadMemU() succeeded")
	}
	if res, _ := s.GetAddr(ctx, &pb.GetAddrRequest{Id: 42}); res.Result {
		t.Error("GetAddr() succeeded")
	}
	if res, _ := s.MemCopyTo(ctx, &pb.MemCopyToRequest{Id: 42, Data: []byte{1}}); res.Result {
		t.Error("MemCopyTo() succeeded")
	}
}

func TestSlots(t *testing.T) {
	fs := afero.NewMemMapFs()
	afero.WriteFile(fs, "/lib/firmware/led.bit.bin", []byte{1}, 0644)
	afero.WriteFile(fs, "/lib/firmware/led.dtbo", []byte{1}, 0644)
	s := newTestServer(t, WithFs(fs), WithAccels("k26-starter-kits"))

	if res, _ := s.Load(ctx, &pb.LoadRequest{Name: "missing"}); res.Result || res.Slot != -1 {
		t.Errorf("Load(missing) = %+v, want {false -1}", res)
	}
	if res, _ := s.Load(ctx, &pb.LoadRequest{Name: "../etc/passwd"}); res.Result {
		t.Error("Load() escaped the firmware directory")
	}
	for i, name := range []string{"k26-starter-kits", "led", "led.bit.bin"} {
		res, _ := s.Load(ctx, &pb.LoadRequest{Name: name})
		if !res.Result || res.Slot != int32(i) {
			t.Errorf("Load(%s) = %+v, want slot %d", name, res, i)
		}
	}
	if res, _ := s.Unload(ctx, &pb.UnloadRequest{Slot: 1}); !res.Result {
		t.Error("Unload(1) failed")
	}
	if res, _ := s.Unload(ctx, &pb.UnloadRequest{Slot: 1}); res.Result {
		t.Error("Unload(1) twice succeeded")
	}
	if res, _ := s.LoadDtbo(ctx, &pb.LoadDtboRequest{Name: "led.dtbo"}); !res.Result {
		t.Error("LoadDtbo() failed")
	}
	if res, _ := s.Unload(ctx, &pb.UnloadRequest{Slot: 1}); !res.Result {
		t.Error("overlay did not take the free slot 1")
	}
	if res, _ := s.LoadDtbo(ctx, &pb.LoadDtboRequest{Name: "k26-starter-kits"}); res.Result {
		t.Error("LoadDtbo() of a directory succeeded")
	}
}

func TestReset(t *testing.T) {
	s := newTestServer(t, WithUio(Device{Name: "uio0", Size: 16}), WithAccels("base"))
	u, _ := s.OpenUio(ctx, &pb.OpenUioRequest{Name: "uio0"})
	s.WriteMemU(ctx, &pb.WriteMemURequest{Id: u.Id, Data: 5, Size: 1})
	s.Load(ctx, &pb.LoadRequest{Name: "base"})

	if res, _ := s.Reset(ctx, &pb.ResetRequest{}); !res.Result {
		t.Fatal("Reset() failed")
	}
	if res, _ := s.GetSize(ctx, &pb.GetSizeRequest{Id: u.Id}); res.Result {
		t.Error("handle survived Reset()")
	}
	if res, _ := s.Unload(ctx, &pb.UnloadRequest{Slot: 0}); res.Result {
		t.Error("slot survived Reset()")
	}
	u, _ = s.OpenUio(ctx, &pb.OpenUioRequest{Name: "uio0"})
	if u.Id != 1 {
		t.Errorf("first handle after Reset() = %d, want 1", u.Id)
	}
	if res, _ := s.ReadMemU(ctx, &pb.ReadMemRequest{Id: u.Id, Size: 1}); res.Data != 0 {
		t.Errorf("device memory after Reset() = %d, want 0", res.Data)
	}
}

func TestFirmwareFiles(t *testing.T) {
	fs := afero.NewMemMapFs()
	s := newTestServer(t, WithFs(fs), WithFirmwareDir("/fw"))
	afero.WriteFile(fs, "/fw/led.bit", bitFile([]byte{0xaa, 0x99, 0x55, 0x66}), 0644)

	tests := []struct {
		name string
		req  *pb.BitstreamToBinRequest
		ok   bool
	}{
		{"zynqmp", &pb.BitstreamToBinRequest{BitstreamName: "led.bit", BinName: "led.bit.bin", Arch: "zynqmp"}, true},
		{"zynq", &pb.BitstreamToBinRequest{BitstreamName: "led.bit", BinName: "led7.bin", Arch: "zynq"}, true},
		{"unknown arch", &pb.BitstreamToBinRequest{BitstreamName: "led.bit", BinName: "x.bin", Arch: "versal"}, false},
		{"missing", &pb.BitstreamToBinRequest{BitstreamName: "nope.bit", BinName: "x.bin", Arch: "zynq"}, false},
		{"bad target", &pb.BitstreamToBinRequest{BitstreamName: "led.bit", BinName: "../x.bin", Arch: "zynq"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if res, _ := s.BitstreamToBin(ctx, tt.req); res.Result != tt.ok {
				t.Errorf("BitstreamToBin() = %v, want %v", res.Result, tt.ok)
			}
		})
	}
	bin, err := afero.ReadFile(fs, "/fw/led.bit.bin")
	if err != nil || string(bin) != "\x66\x55\x99\xaa" {
		t.Errorf("led.bit.bin = % x, %v", bin, err)
	}

	if res, _ := s.LoadBitstream(ctx, &pb.LoadBitstreamRequest{Name: "led.bit.bin"}); !res.Result {
		t.Error("LoadBitstream() failed")
	}
	if res, _ := s.RemoveFirmware(ctx, &pb.RemoveFirmwareRequest{Name: "led.bit.bin"}); !res.Result {
		t.Error("RemoveFirmware() failed")
	}
	if res, _ := s.RemoveFirmware(ctx, &pb.RemoveFirmwareRequest{Name: "led.bit.bin"}); res.Result {
		t.Error("RemoveFirmware() twice succeeded")
	}
	if res, _ := s.LoadBitstream(ctx, &pb.LoadBitstreamRequest{Name: "led.bit.bin"}); res.Result {
		t.Error("LoadBitstream() of a removed file succeeded")
	}
	if res, _ := s.DtsToDtb(ctx, &pb.DtsToDtbRequest{Dts: "garbage"}); res.Result || res.Dtb != nil {
		t.Errorf("DtsToDtb(garbage) = %+v", res)
	}
}

func dial(t *testing.T, s *Server, opts ...grpc.ServerOption) pb.JellyFpgaControlClient {
	t.Helper()
	l := bufconn.Listen(1 << 20)
	g := s.NewGRPCServer(opts...)
	go g.Serve(l)
	t.Cleanup(g.Stop)
	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return l.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		t.Fatalf("grpc.NewClient() error = %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	return pb.NewJellyFpgaControlClient(conn)
}

func upload(t *testing.T, c pb.JellyFpgaControlClient, chunks ...*pb.UploadFirmwareRequest) bool {
	t.Helper()
	stream, err := c.UploadFirmware(ctx)
	if err != nil {
		t.Fatalf("UploadFirmware() error = %v", err)
	}
	for _, ch := range chunks {
		if err := stream.Send(ch); err != nil {
			break
		}
	}
	res, err := stream.CloseAndRecv()
	if err != nil {
		t.Fatalf("CloseAndRecv() error = %v", err)
	}
	return res.Result
}

func TestUploadFirmware(t *testing.T) {
	fs := afero.NewMemMapFs()
	c := dial(t, newTestServer(t, WithFs(fs)))

	if !upload(t, c,
		&pb.UploadFirmwareRequest{Name: "a.bin", Data: []byte("hello ")},
		&pb.UploadFirmwareRequest{Name: "a.bin", Data: []byte("world")}) {
		t.Fatal("upload failed")
	}
	if got, _ := afero.ReadFile(fs, "/lib/firmware/a.bin"); string(got) != "hello world" {
		t.Errorf("stored %q, want %q", got, "hello world")
	}
	if upload(t, c) {
		t.Error("empty upload succeeded")
	}
	if upload(t, c,
		&pb.UploadFirmwareRequest{Name: "b.bin", Data: []byte("x")},
		&pb.UploadFirmwareRequest{Name: "c.bin", Data: []byte("y")}) {
		t.Error("upload naming two files succeeded")
	}
	if upload(t, c, &pb.UploadFirmwareRequest{Name: "sub/d.bin", Data: []byte("x")}) {
		t.Error("upload into a subdirectory succeeded")
	}
}

func TestNewGRPCServerKeepsCallerInterceptors(t *testing.T) {
	var unary, stream []string
	c := dial(t, newTestServer(t),
		grpc.UnaryInterceptor(func(ctx context.Context, req any, info *grpc.UnaryServerInfo, h grpc.UnaryHandler) (any, error) {
			unary = append(unary, info.FullMethod)
			return h(ctx, req)
		}),
		grpc.StreamInterceptor(func(srv any, ss grpc.ServerStream, info *grpc.StreamServerInfo, h grpc.StreamHandler) error {
			stream = append(stream, info.FullMethod)
			return h(srv, ss)
		}))

	if _, err := c.Reset(ctx, &pb.ResetRequest{}); err != nil {
		t.Fatalf("Reset() error = %v", err)
	}
	if !upload(t, c, &pb.UploadFirmwareRequest{Name: "a.bin", Data: []byte{1}}) {
		t.Error("UploadFirmware() failed")
	}
	tests := []struct {
		name string
		got  []string
		want string
	}{
		{"unary", unary, pb.JellyFpgaControl_Reset_FullMethodName},
		{"stream", stream, pb.JellyFpgaControl_UploadFirmware_FullMethodName},
	}
	for _, tt := range tests {
		if len(tt.got) != 1 || tt.got[0] != tt.want {
			t.Errorf("%s interceptor saw %v, want [%s]", tt.name, tt.got, tt.want)
		}
	}
}
