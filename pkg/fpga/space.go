// Copyright 2024 the u-root Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fpga

import (
	"context"

	pb "github.com/u-root/u-fpga/proto"
	"golang.org/x/exp/constraints"
)

// spaceRPC is the set of calls that differ between the memory and the
// register view of a resource. addr is a byte offset for memory and a
// register index for registers.
type spaceRPC interface {
	writeU(ctx context.Context, id Handle, addr, v, width uint64) (*pb.ResultResponse, error)
	writeI(ctx context.Context, id Handle, addr uint64, v int64, width uint64) (*pb.ResultResponse, error)
	readU(ctx context.Context, id Handle, addr, width uint64) (*pb.ReadUResponse, error)
	readI(ctx context.Context, id Handle, addr, width uint64) (*pb.ReadIResponse, error)
	writeF32(ctx context.Context, id Handle, addr uint64, v float32) (*pb.ResultResponse, error)
	writeF64(ctx context.Context, id Handle, addr uint64, v float64) (*pb.ResultResponse, error)
	readF32(ctx context.Context, id Handle, addr uint64) (*pb.ReadF32Response, error)
	readF64(ctx context.Context, id Handle, addr uint64) (*pb.ReadF64Response, error)
}

type memRPC struct {
	c pb.JellyFpgaControlClient
}

func (m memRPC) writeU(ctx context.Context, id Handle, addr, v, width uint64) (*pb.ResultResponse, error) {
	return m.c.WriteMemU(ctx, &pb.WriteMemURequest{Id: uint32(id), Offset: addr, Data: v, Size: width})
}

func (m memRPC) writeI(ctx context.Context, id Handle, addr uint64, v int64, width uint64) (*pb.ResultResponse, error) {
	return m.c.WriteMemI(ctx, &pb.WriteMemIRequest{Id: uint32(id), Offset: addr, Data: v, Size: width})
}

func (m memRPC) readU(ctx context.Context, id Handle, addr, width uint64) (*pb.ReadUResponse, error) {
	return m.c.ReadMemU(ctx, &pb.ReadMemRequest{Id: uint32(id), Offset: addr, Size: width})
}

func (m memRPC) readI(ctx context.Context, id Handle, addr, width uint64) (*pb.ReadIResponse, error) {
	return m.c.ReadMemI(ctx, &pb.ReadMemRequest{Id: uint32(id), Offset: addr, Size: width})
}

func (m memRPC) writeF32(ctx context.Context, id Handle, addr uint64, v float32) (*pb.ResultResponse, error) {
	return m.c.WriteMemF32(ctx, &pb.WriteMemF32Request{Id: uint32(id), Offset: addr, Data: v})
}

func (m memRPC) writeF64(ctx context.Context, id Handle, addr uint64, v float64) (*pb.ResultResponse, error) {
	return m.c.WriteMemF64(ctx, &pb.WriteMemF64Request{Id: uint32(id), Offset: addr, Data: v})
}

func (m memRPC) readF32(ctx context.Context, id Handle, addr uint64) (*pb.ReadF32Response, error) {
	return m.c.ReadMemF32(ctx, &pb.ReadMemRequest{Id: uint32(id), Offset: addr, Size: 4})
}

func (m memRPC) readF64(ctx context.Context, id Handle, addr uint64) (*pb.ReadF64Response, error) {
	return m.c.ReadMemF64(ctx, &pb.ReadMemRequest{Id: uint32(id), Offset: addr, Size: 8})
}

type regRPC struct {
	c pb.JellyFpgaControlClient
}

func (r regRPC) writeU(ctx context.Context, id Handle, addr, v, width uint64) (*pb.ResultResponse, error) {
	return r.c.WriteRegU(ctx, &pb.WriteRegURequest{Id: uint32(id), Reg: addr, Data: v, Size: width})
}

func (r regRPC) writeI(ctx context.Context, id Handle, addr uint64, v int64, width uint64) (*pb.ResultResponse, error) {
	return r.c.WriteRegI(ctx, &pb.WriteRegIRequest{Id: uint32(id), Reg: addr, Data: v, Size: width})
}

func (r regRPC) readU(ctx context.Context, id Handle, addr, width uint64) (*pb.ReadUResponse, error) {
	return r.c.ReadRegU(ctx, &pb.ReadRegRequest{Id: uint32(id), Reg: addr, Size: width})
}

func (r regRPC) readI(ctx context.Context, id Handle, addr, width uint64) (*pb.ReadIResponse, error) {
	return r.c.ReadRegI(ctx, &pb.ReadRegRequest{Id: uint32(id), Reg: addr, Size: width})
}

func (r regRPC) writeF32(ctx context.Context, id Handle, addr uint64, v float32) (*pb.ResultResponse, error) {
	return r.c.WriteRegF32(ctx, &pb.WriteRegF32Request{Id: uint32(id), Reg: addr, Data: v})
}

func (r regRPC) writeF64(ctx context.Context, id Handle, addr uint64, v float64) (*pb.ResultResponse, error) {
	return r.c.WriteRegF64(ctx, &pb.WriteRegF64Request{Id: uint32(id), Reg: addr, Data: v})
}

func (r regRPC) readF32(ctx context.Context, id Handle, addr uint64) (*pb.ReadF32Response, error) {
	return r.c.ReadRegF32(ctx, &pb.ReadRegRequest{Id: uint32(id), Reg: addr, Size: 4})
}

func (r regRPC) readF64(ctx context.Context, id Handle, addr uint64) (*pb.ReadF64Response, error) {
	return r.c.ReadRegF64(ctx, &pb.ReadRegRequest{Id: uint32(id), Reg: addr, Size: 8})
}

// AddressSpace performs typed accesses on the memory or the register view
// of open resources. Memory addresses are byte offsets; register addresses
// are indices the server scales by the resource's unit.
type AddressSpace struct {
	space string
	rpc   spaceRPC
}

// Mem returns the memory view.
func (c *Client) Mem() *AddressSpace {
	return c.mem
}

// Reg returns the register view.
func (c *Client) Reg() *AddressSpace {
	return c.reg
}

// op names the RPC for error messages, e.g. op("Read", "U") is ReadMemU.
func (s *AddressSpace) op(verb, kind string) string {
	return verb + s.space + kind
}

// WriteU writes the low width bytes of v.
func (s *AddressSpace) WriteU(ctx context.Context, h Handle, addr, v, width uint64) (bool, error) {
	if err := checkWidth(s.op("Write", "U"), width); err != nil {
		return false, err
	}
	res, err := s.rpc.writeU(ctx, h, addr, truncate(v, width), width)
	if err != nil {
		return false, rpcError(s.op("Write", "U"), err)
	}
	return res.Result, nil
}

// WriteI writes the low width bytes of v. The value on the wire is v
// truncated and sign extended again, so both ends agree on the pattern.
func (s *AddressSpace) WriteI(ctx context.Context, h Handle, addr uint64, v int64, width uint64) (bool, error) {
	if err := checkWidth(s.op("Write", "I"), width); err != nil {
		return false, err
	}
	res, err := s.rpc.writeI(ctx, h, addr, signExtend(uint64(v), width), width)
	if err != nil {
		return false, rpcError(s.op("Write", "I"), err)
	}
	return res.Result, nil
}

// ReadU reads width bytes and zero extends them.
func (s *AddressSpace) ReadU(ctx context.Context, h Handle, addr, width uint64) (bool, uint64, error) {
	if err := checkWidth(s.op("Read", "U"), width); err != nil {
		return false, 0, err
	}
	res, err := s.rpc.readU(ctx, h, addr, width)
	if err != nil {
		return false, 0, rpcError(s.op("Read", "U"), err)
	}
	return res.Result, truncate(res.Data, width), nil
}

// ReadI reads width bytes and sign extends them.
func (s *AddressSpace) ReadI(ctx context.Context, h Handle, addr, width uint64) (bool, int64, error) {
	if err := checkWidth(s.op("Read", "I"), width); err != nil {
		return false, 0, err
	}
	res, err := s.rpc.readI(ctx, h, addr, width)
	if err != nil {
		return false, 0, rpcError(s.op("Read", "I"), err)
	}
	return res.Result, signExtend(uint64(res.Data), width), nil
}

// WriteF32 stores v as an IEEE 754 single at addr.
func (s *AddressSpace) WriteF32(ctx context.Context, h Handle, addr uint64, v float32) (bool, error) {
	res, err := s.rpc.writeF32(ctx, h, addr, v)
	if err != nil {
		return false, rpcError(s.op("Write", "F32"), err)
	}
	return res.Result, nil
}

// WriteF64 stores v as an IEEE 754 double at addr.
func (s *AddressSpace) WriteF64(ctx context.Context, h Handle, addr uint64, v float64) (bool, error) {
	res, err := s.rpc.writeF64(ctx, h, addr, v)
	if err != nil {
		return false, rpcError(s.op("Write", "F64"), err)
	}
	return res.Result, nil
}

// ReadF32 loads the IEEE 754 single at addr.
func (s *AddressSpace) ReadF32(ctx context.Context, h Handle, addr uint64) (bool, float32, error) {
	res, err := s.rpc.readF32(ctx, h, addr)
	if err != nil {
		return false, 0, rpcError(s.op("Read", "F32"), err)
	}
	return res.Result, res.Data, nil
}

// ReadF64 loads the IEEE 754 double at addr.
func (s *AddressSpace) ReadF64(ctx context.Context, h Handle, addr uint64) (bool, float64, error) {
	res, err := s.rpc.readF64(ctx, h, addr)
	if err != nil {
		return false, 0, rpcError(s.op("Read", "F64"), err)
	}
	return res.Result, res.Data, nil
}

func writeU[T constraints.Unsigned](ctx context.Context, s *AddressSpace, h Handle, addr uint64, v T) (bool, error) {
	return s.WriteU(ctx, h, addr, uint64(v), widthOf[T]())
}

func writeI[T constraints.Signed](ctx context.Context, s *AddressSpace, h Handle, addr uint64, v T) (bool, error) {
	return s.WriteI(ctx, h, addr, int64(v), widthOf[T]())
}

func readU[T constraints.Unsigned](ctx context.Context, s *AddressSpace, h Handle, addr uint64) (bool, T, error) {
	ok, v, err := s.ReadU(ctx, h, addr, widthOf[T]())
	return ok, T(v), err
}

func readI[T constraints.Signed](ctx context.Context, s *AddressSpace, h Handle, addr uint64) (bool, T, error) {
	ok, v, err := s.ReadI(ctx, h, addr, widthOf[T]())
	return ok, T(v), err
}

// WriteU8 is WriteU with a width of 1.
func (s *AddressSpace) WriteU8(ctx context.Context, h Handle, addr uint64, v uint8) (bool, error) {
	return writeU(ctx, s, h, addr, v)
}

// WriteU16 is WriteU with a width of 2.
func (s *AddressSpace) WriteU16(ctx context.Context, h Handle, addr uint64, v uint16) (bool, error) {
	return writeU(ctx, s, h, addr, v)
}

// WriteU32 is WriteU with a width of 4.
func (s *AddressSpace) WriteU32(ctx context.Context, h Handle, addr uint64, v uint32) (bool, error) {
	return writeU(ctx, s, h, addr, v)
}

// WriteU64 is WriteU with a width of 8.
func (s *AddressSpace) WriteU64(ctx context.Context, h Handle, addr uint64, v uint64) (bool, error) {
	return writeU(ctx, s, h, addr, v)
}

// WriteI8 is WriteI with a width of 1.
func (s *AddressSpace) WriteI8(ctx context.Context, h Handle, addr uint64, v int8) (bool, error) {
	return writeI(ctx, s, h, addr, v)
}

// WriteI16 is WriteI with a width of 2.
func (s *AddressSpace) WriteI16(ctx context.Context, h Handle, addr uint64, v int16) (bool, error) {
	return writeI(ctx, s, h, addr, v)
}

// WriteI32 is WriteI with a width of 4.
func (s *AddressSpace) WriteI32(ctx context.Context, h Handle, addr uint64, v int32) (bool, error) {
	return writeI(ctx, s, h, addr, v)
}

// WriteI64 is WriteI with a width of 8.
func (s *AddressSpace) WriteI64(ctx context.Context, h Handle, addr uint64, v int64) (bool, error) {
	return writeI(ctx, s, h, addr, v)
}

// ReadU8 is ReadU with a width of 1.
func (s *AddressSpace) ReadU8(ctx context.Context, h Handle, addr uint64) (bool, uint8, error) {
	return readU[uint8](ctx, s, h, addr)
}

// ReadU16 is ReadU with a width of 2.
func (s *AddressSpace) ReadU16(ctx context.Context, h Handle, addr uint64) (bool, uint16, error) {
	return readU[uint16](ctx, s, h, addr)
}

// ReadU32 is ReadU with a width of 4.
func (s *AddressSpace) ReadU32(ctx context.Context, h Handle, addr uint64) (bool, uint32, error) {
	return readU[uint32](ctx, s, h, addr)
}

// ReadU64 is ReadU with a width of 8.
func (s *AddressSpace) ReadU64(ctx context.Context, h Handle, addr uint64) (bool, uint64, error) {
	return readU[uint64](ctx, s, h, addr)
}

// ReadI8 is ReadI with a width of 1.
func (s *AddressSpace) ReadI8(ctx context.Context, h Handle, addr uint64) (bool, int8, error) {
	return readI[int8](ctx, s, h, addr)
}

// ReadI16 is ReadI with a width of 2.
func (s *AddressSpace) ReadI16(ctx context.Context, h Handle, addr uint64) (bool, int16, error) {
	return readI[int16](ctx, s, h, addr)
}

// ReadI32 is ReadI with a width of 4.
func (s *AddressSpace) ReadI32(ctx context.Context, h Handle, addr uint64) (bool, int32, error) {
	return readI[int32](ctx, s, h, addr)
}

// ReadI64 is ReadI with a width of 8.
func (s *AddressSpace) ReadI64(ctx context.Context, h Handle, addr uint64) (bool, int64, error) {
	return readI[int64](ctx, s, h, addr)
}
