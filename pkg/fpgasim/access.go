// Copyright 2024 the u-root Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fpgasim

import (
	"context"
	"encoding/binary"
	"math"

	pb "github.com/u-root/u-fpga/proto"
)

func validWidth(w uint64) bool {
	switch w {
	case 1, 2, 4, 8:
		return true
	}
	return false
}

// load reads b, 1 to 8 bytes, as a little endian unsigned number.
func load(b []byte) uint64 {
	var buf [8]byte
	copy(buf[:], b)
	return binary.LittleEndian.Uint64(buf[:])
}

// store writes the low len(b) bytes of v into b, little endian.
func store(b []byte, v uint64) {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], v)
	copy(b, buf[:len(b)])
}

func signExtend(v uint64, width uint64) int64 {
	shift := 64 - 8*width
	return int64(v<<shift) >> shift
}

// access runs fn on n bytes of handle id. addr is a byte offset, or a
// register index when reg is set. It reports false for unknown handles and
// out of range accesses, fn is not called then.
func (s *Server) access(id uint32, addr uint64, reg bool, n uint64, fn func(b []byte)) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.lookup(id)
	if !ok {
		return false
	}
	off := addr
	if reg {
		if off, ok = r.regOffset(addr); !ok {
			return false
		}
	}
	b, ok := r.span(off, n)
	if !ok {
		return false
	}
	fn(b)
	return true
}

func (s *Server) write(id uint32, addr uint64, reg bool, v, width uint64) *pb.ResultResponse {
	if !validWidth(width) {
		return &pb.ResultResponse{}
	}
	ok := s.access(id, addr, reg, width, func(b []byte) {
		store(b, v)
	})
	if ok {
		bytesWritten.Add(int(width))
	}
	return &pb.ResultResponse{Result: ok}
}

func (s *Server) read(id uint32, addr uint64, reg bool, width uint64) (uint64, bool) {
	if !validWidth(width) {
		return 0, false
	}
	var v uint64
	ok := s.access(id, addr, reg, width, func(b []byte) {
		v = load(b)
	})
	if ok {
		bytesRead.Add(int(width))
	}
	return v, ok
}

func (s *Server) WriteMemU(ctx context.Context, r *pb.WriteMemURequest) (*pb.ResultResponse, error) {
	return s.write(r.Id, r.Offset, false, r.Data, r.Size), nil
}

func (s *Server) WriteMemI(ctx context.Context, r *pb.WriteMemIRequest) (*pb.ResultResponse, error) {
	return s.write(r.Id, r.Offset, false, uint64(r.Data), r.Size), nil
}

func (s *Server) ReadMemU(ctx context.Context, r *pb.ReadMemRequest) (*pb.ReadUResponse, error) {
	v, ok := s.read(r.Id, r.Offset, false, r.Size)
	return &pb.ReadUResponse{Result: ok, Data: v}, nil
}

func (s *Server) ReadMemI(ctx context.Context, r *pb.ReadMemRequest) (*pb.ReadIResponse, error) {
	v, ok := s.read(r.Id, r.Offset, false, r.Size)
	if !ok {
		return &pb.ReadIResponse{}, nil
	}
	return &pb.ReadIResponse{Result: true, Data: signExtend(v, r.Size)}, nil
}

func (s *Server) WriteRegU(ctx context.Context, r *pb.WriteRegURequest) (*pb.ResultResponse, error) {
	return s.write(r.Id, r.Reg, true, r.Data, r.Size), nil
}

func (s *Server) WriteRegI(ctx context.Context, r *pb.WriteRegIRequest) (*pb.ResultResponse, error) {
	return s.write(r.Id, r.Reg, true, uint64(r.Data), r.Size), nil
}

func (s *Server) ReadRegU(ctx context.Context, r *pb.ReadRegRequest) (*pb.ReadUResponse, error) {
	v, ok := s.read(r.Id, r.Reg, true, r.Size)
	return &pb.ReadUResponse{Result: ok, Data: v}, nil
}

func (s *Server) ReadRegI(ctx context.Context, r *pb.ReadRegRequest) (*pb.ReadIResponse, error) {
	v, ok := s.read(r.Id, r.Reg, true, r.Size)
	if !ok {
		return &pb.ReadIResponse{}, nil
	}
	return &pb.ReadIResponse{Result: true, Data: signExtend(v, r.Size)}, nil
}

// Float accesses always move 4 or 8 bytes, the request size is ignored.

func (s *Server) WriteMemF32(ctx context.Context, r *pb.WriteMemF32Request) (*pb.ResultResponse, error) {
	return s.write(r.Id, r.Offset, false, uint64(math.Float32bits(r.Data)), 4), nil
}

func (s *Server) WriteMemF64(ctx context.Context, r *pb.WriteMemF64Request) (*pb.ResultResponse, error) {
	return s.write(r.Id, r.Offset, false, math.Float64bits(r.Data), 8), nil
}

func (s *Server) ReadMemF32(ctx context.Context, r *pb.ReadMemRequest) (*pb.ReadF32Response, error) {
	v, ok := s.read(r.Id, r.Offset, false, 4)
	return &pb.ReadF32Response{Result: ok, Data: math.Float32frombits(uint32(v))}, nil
}

func (s *Server) ReadMemF64(ctx context.Context, r *pb.ReadMemRequest) (*pb.ReadF64Response, error) {
	v, ok := s.read(r.Id, r.Offset, false, 8)
	return &pb.ReadF64Response{Result: ok, Data: math.Float64frombits(v)}, nil
}

func (s *Server) WriteRegF32(ctx context.Context, r *pb.WriteRegF32Request) (*pb.ResultResponse, error) {
	return s.write(r.Id, r.Reg, true, uint64(math.Float32bits(r.Data)), 4), nil
}

func (s *Server) WriteRegF64(ctx context.Context, r *pb.WriteRegF64Request) (*pb.ResultResponse, error) {
	return s.write(r.Id, r.Reg, true, math.Float64bits(r.Data), 8), nil
}

func (s *Server) ReadRegF32(ctx context.Context, r *pb.ReadRegRequest) (*pb.ReadF32Response, error) {
	v, ok := s.read(r.Id, r.Reg, true, 4)
	return &pb.ReadF32Response{Result: ok, Data: math.Float32frombits(uint32(v))}, nil
}

func (s *Server) ReadRegF64(ctx context.Context, r *pb.ReadRegRequest) (*pb.ReadF64Response, error) {
	v, ok := s.read(r.Id, r.Reg, true, 8)
	return &pb.ReadF64Response{Result: ok, Data: math.Float64frombits(v)}, nil
}

func (s *Server) MemCopyTo(ctx context.Context, r *pb.MemCopyToRequest) (*pb.ResultResponse, error) {
	n := uint64(len(r.Data))
	ok := s.access(r.Id, r.Offset, false, n, func(b []byte) {
		copy(b, r.Data)
	})
	if ok {
		bytesWritten.Add(int(n))
	}
	return &pb.ResultResponse{Result: ok}, nil
}

func (s *Server) MemCopyFrom(ctx context.Context, r *pb.MemCopyFromRequest) (*pb.MemCopyFromResponse, error) {
	var data []byte
	ok := s.access(r.Id, r.Offset, false, r.Size, func(b []byte) {
		data = append([]byte(nil), b...)
	})
	if !ok {
		return &pb.MemCopyFromResponse{}, nil
	}
	bytesRead.Add(len(data))
	return &pb.MemCopyFromResponse{Result: true, Data: data}, nil
}
