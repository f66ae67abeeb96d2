// Copyright 2024 the u-root Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fpga

import (
	"context"
	"errors"
	"fmt"
	"math"
	"testing"

	pb "github.com/u-root/u-fpga/proto"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// fakeRPC records the requests it sees and answers reads with a canned
// value. Methods it does not override panic through the nil embedded
// interface.
type fakeRPC struct {
	pb.JellyFpgaControlClient
	t    *testing.T
	reqs []string
	data uint64
	err  error
}

func (f *fakeRPC) record(method string, req any) {
	f.reqs = append(f.reqs, fmt.Sprintf("%s %+v", method, req))
}

func (f *fakeRPC) WriteMemU(_ context.Context, in *pb.WriteMemURequest, _ ...grpc.CallOption) (*pb.ResultResponse, error) {
	f.record("WriteMemU", *in)
	return &pb.ResultResponse{Result: true}, f.err
}

func (f *fakeRPC) WriteMemI(_ context.Context, in *pb.WriteMemIRequest, _ ...grpc.CallOption) (*pb.ResultResponse, error) {
	f.record("WriteMemI", *in)
	return &pb.ResultResponse{Result: true}, f.err
}

func (f *fakeRPC) ReadMemU(_ context.Context, in *pb.ReadMemRequest, _ ...grpc.CallOption) (*pb.ReadUResponse, error) {
	f.record("ReadMemU", *in)
	return &pb.ReadUResponse{Result: true, Data: f.data}, f.err
}

func (f *fakeRPC) ReadMemI(_ context.Context, in *pb.ReadMemRequest, _ ...grpc.CallOption) (*pb.ReadIResponse, error) {
	f.record("ReadMemI", *in)
	return &pb.ReadIResponse{Result: true, Data: int64(f.data)}, f.err
}

func (f *fakeRPC) WriteRegI(_ context.Context, in *pb.WriteRegIRequest, _ ...grpc.CallOption) (*pb.ResultResponse, error) {
	f.record("WriteRegI", *in)
	return &pb.ResultResponse{Result: true}, f.err
}

func (f *fakeRPC) ReadRegF32(_ context.Context, in *pb.ReadRegRequest, _ ...grpc.CallOption) (*pb.ReadF32Response, error) {
	f.record("ReadRegF32", *in)
	return &pb.ReadF32Response{Result: true, Data: math.Float32frombits(uint32(f.data))}, f.err
}

func (f *fakeRPC) expect(want ...string) {
	f.t.Helper()
	if len(f.reqs) != len(want) {
		f.t.Fatalf("requests = %q, want %q", f.reqs, want)
	}
	for i := range want {
		if f.reqs[i] != want[i] {
			f.t.Errorf("request %d = %q, want %q", i, f.reqs[i], want[i])
		}
	}
	f.reqs = nil
}

func TestWritesTruncate(t *testing.T) {
	f := &fakeRPC{t: t}
	mem := &AddressSpace{space: "Mem", rpc: memRPC{f}}
	reg := &AddressSpace{space: "Reg", rpc: regRPC{f}}
	ctx := context.Background()

	mem.WriteU8(ctx, 1, 0, 0xff)
	mem.WriteU(ctx, 1, 4, 0x1_2345_6789, 4)
	mem.WriteI8(ctx, 1, 0, -1)
	mem.WriteI(ctx, 1, 2, 0x18000, 2)
	reg.WriteI32(ctx, 2, 3, math.MinInt32)
	f.expect(
		"WriteMemU {Id:1 Offset:0 Data:255 Size:1}",
		"WriteMemU {Id:1 Offset:4 Data:591751049 Size:4}",
		"WriteMemI {Id:1 Offset:0 Data:-1 Size:1}",
		"WriteMemI {Id:1 Offset:2 Data:-32768 Size:2}",
		"WriteRegI {Id:2 Reg:3 Data:-2147483648 Size:4}",
	)
}

func TestReadsExtend(t *testing.T) {
	f := &fakeRPC{t: t, data: 0xdead_beef_0000_8081}
	mem := &AddressSpace{space: "Mem", rpc: memRPC{f}}
	ctx := context.Background()

	if _, v, _ := mem.ReadU8(ctx, 1, 0); v != 0x81 {
		t.Errorf("ReadU8() = %#x, want 0x81", v)
	}
	if _, v, _ := mem.ReadU(ctx, 1, 0, 2); v != 0x8081 {
		t.Errorf("ReadU(2) = %#x, want 0x8081", v)
	}
	if _, v, _ := mem.ReadI8(ctx, 1, 0); v != -127 {
		t.Errorf("ReadI8() = %d, want -127", v)
	}
	if _, v, _ := mem.ReadI(ctx, 1, 0, 2); v != -32639 {
		t.Errorf("ReadI(2) = %d, want -32639", v)
	}
	if _, v, _ := mem.ReadI(ctx, 1, 0, 4); v != 0x8081 {
		t.Errorf("ReadI(4) = %d, want %d", v, 0x8081)
	}
	if _, v, _ := mem.ReadU64(ctx, 1, 0); v != 0xdead_beef_0000_8081 {
		t.Errorf("ReadU64() = %#x", v)
	}
	f.expect(
		"ReadMemU {Id:1 Offset:0 Size:1}",
		"ReadMemU {Id:1 Offset:0 Size:2}",
		"ReadMemI {Id:1 Offset:0 Size:1}",
		"ReadMemI {Id:1 Offset:0 Size:2}",
		"ReadMemI {Id:1 Offset:0 Size:4}",
		"ReadMemU {Id:1 Offset:0 Size:8}",
	)
}

func TestInvalidWidthSendsNothing(t *testing.T) {
	f := &fakeRPC{t: t}
	mem := &AddressSpace{space: "Mem", rpc: memRPC{f}}
	ctx := context.Background()

	for _, w := range []uint64{0, 3, 5, 16} {
		if _, err := mem.WriteU(ctx, 1, 0, 1, w); !errors.Is(err, ErrInvalidWidth) {
			t.Errorf("WriteU(width %d) error = %v", w, err)
		}
		if _, err := mem.WriteI(ctx, 1, 0, 1, w); !errors.Is(err, ErrInvalidWidth) {
			t.Errorf("WriteI(width %d) error = %v", w, err)
		}
		if _, _, err := mem.ReadU(ctx, 1, 0, w); !errors.Is(err, ErrInvalidWidth) {
			t.Errorf("ReadU(width %d) error = %v", w, err)
		}
		if _, _, err := mem.ReadI(ctx, 1, 0, w); !errors.Is(err, ErrInvalidWidth) {
			t.Errorf("ReadI(width %d) error = %v", w, err)
		}
	}
	f.expect()
}

func TestRPCErrorCarriesStatus(t *testing.T) {
	f := &fakeRPC{t: t, err: status.Error(codes.Unavailable, "connection reset")}
	reg := &AddressSpace{space: "Reg", rpc: regRPC{f}}

	ok, _, err := reg.ReadF32(context.Background(), 1, 2)
	if ok || err == nil {
		t.Fatalf("ReadF32() = %v, %v", ok, err)
	}
	var rpcErr *RPCError
	if !errors.As(err, &rpcErr) || rpcErr.Op != "ReadRegF32" {
		t.Fatalf("error = %#v, want *RPCError for ReadRegF32", err)
	}
	if got := status.Code(err); got != codes.Unavailable {
		t.Errorf("status.Code() = %v, want Unavailable", got)
	}
	f.expect("ReadRegF32 {Id:1 Reg:2 Size:4}")
}
