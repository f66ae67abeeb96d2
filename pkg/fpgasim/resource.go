// Copyright 2024 the u-root Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fpgasim

import (
	"context"

	pb "github.com/u-root/u-fpga/proto"
	"go.uber.org/zap"
)

const (
	// vaBase is the first fake virtual address handed out by GetAddr.
	vaBase = 0x7f00_0000_0000
	// maxMmap bounds OpenMmap so a bad request cannot exhaust the host.
	maxMmap  = 256 << 20
	pageSize = 4096
)

// backing is the storage of a named device. Every open of the device, and
// every subclone of those, aliases the same bytes.
type backing struct {
	mem  []byte
	phys uint64
}

func newBacking(d Device) *backing {
	return &backing{mem: make([]byte, d.Size), phys: d.Phys}
}

type region struct {
	mem  []byte
	addr uint64
	phys uint64
	unit uint64
}

// span returns the n bytes at off, or false if any of them lies outside r.
func (r *region) span(off, n uint64) ([]byte, bool) {
	size := uint64(len(r.mem))
	if n > size || off > size-n {
		return nil, false
	}
	return r.mem[off : off+n], true
}

// regOffset converts a register index into a byte offset. A unit of 0
// means 8 byte registers.
func (r *region) regOffset(reg uint64) (uint64, bool) {
	unit := r.unit
	if unit == 0 {
		unit = 8
	}
	if reg > ^uint64(0)/unit {
		return 0, false
	}
	return reg * unit, true
}

// open registers r under a fresh handle. s.mu must be held.
func (s *Server) open(r *region) uint32 {
	id := s.nextID
	s.nextID++
	s.regions[id] = r
	openHandles.Add(1)
	return id
}

// alloc reserves n bytes of fake address space. s.mu must be held.
func (s *Server) alloc(n uint64) uint64 {
	va := s.nextVA
	pages := (n + pageSize - 1) / pageSize
	if pages == 0 {
		pages = 1
	}
	s.nextVA += pages * pageSize
	return va
}

func (s *Server) lookup(id uint32) (*region, bool) {
	r, ok := s.regions[id]
	return r, ok
}

func (s *Server) OpenMmap(ctx context.Context, r *pb.OpenMmapRequest) (*pb.OpenResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if r.Path == "" || r.Size == 0 || r.Size > maxMmap {
		s.log.Warn("rejected mmap", zap.String("path", r.Path), zap.Uint64("size", r.Size))
		return &pb.OpenResponse{}, nil
	}
	id := s.open(&region{
		mem:  make([]byte, r.Size),
		addr: s.alloc(r.Size),
		phys: r.Offset,
		unit: r.Unit,
	})
	s.log.Debug("mmap opened", zap.Uint32("id", id), zap.String("path", r.Path), zap.Uint64("offset", r.Offset), zap.Uint64("size", r.Size))
	return &pb.OpenResponse{Result: true, Id: id}, nil
}

func (s *Server) openDevice(devs map[string]*backing, kind, name string, unit uint64) *pb.OpenResponse {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := devs[name]
	if !ok {
		s.log.Warn("unknown device", zap.String("kind", kind), zap.String("name", name))
		return &pb.OpenResponse{}
	}
	id := s.open(&region{
		mem:  b.mem,
		addr: s.alloc(uint64(len(b.mem))),
		phys: b.phys,
		unit: unit,
	})
	s.log.Debug("device opened", zap.String("kind", kind), zap.String("name", name), zap.Uint32("id", id))
	return &pb.OpenResponse{Result: true, Id: id}
}

func (s *Server) OpenUio(ctx context.Context, r *pb.OpenUioRequest) (*pb.OpenResponse, error) {
	return s.openDevice(s.uio, "uio", r.Name, r.Unit), nil
}

// OpenUdmabuf ignores CacheEnable, simulated memory has no cache.
func (s *Server) OpenUdmabuf(ctx context.Context, r *pb.OpenUdmabufRequest) (*pb.OpenResponse, error) {
	return s.openDevice(s.udmabuf, "udmabuf", r.Name, r.Unit), nil
}

func (s *Server) Close(ctx context.Context, r *pb.CloseRequest) (*pb.ResultResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.regions[r.Id]; !ok {
		return &pb.ResultResponse{}, nil
	}
	delete(s.regions, r.Id)
	openHandles.Add(-1)
	s.log.Debug("closed", zap.Uint32("id", r.Id))
	return &pb.ResultResponse{Result: true}, nil
}

// Subclone opens a window into an open region. A size of 0 selects
// everything from offset to the end of the parent.
func (s *Server) Subclone(ctx context.Context, r *pb.SubcloneRequest) (*pb.OpenResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	parent, ok := s.lookup(r.Id)
	if !ok {
		return &pb.OpenResponse{}, nil
	}
	size := r.Size
	if size == 0 && r.Offset <= uint64(len(parent.mem)) {
		size = uint64(len(parent.mem)) - r.Offset
	}
	mem, ok := parent.span(r.Offset, size)
	if !ok || size == 0 {
		return &pb.OpenResponse{}, nil
	}
	id := s.open(&region{
		mem:  mem[:size:size],
		addr: parent.addr + r.Offset,
		phys: parent.phys + r.Offset,
		unit: r.Unit,
	})
	return &pb.OpenResponse{Result: true, Id: id}, nil
}

func (s *Server) GetAddr(ctx context.Context, r *pb.GetAddrRequest) (*pb.GetAddrResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	reg, ok := s.lookup(r.Id)
	if !ok {
		return &pb.GetAddrResponse{}, nil
	}
	return &pb.GetAddrResponse{Result: true, Addr: reg.addr}, nil
}

func (s *Server) GetSize(ctx context.Context, r *pb.GetSizeRequest) (*pb.GetSizeResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	reg, ok := s.lookup(r.Id)
	if !ok {
		return &pb.GetSizeResponse{}, nil
	}
	return &pb.GetSizeResponse{Result: true, Size: uint64(len(reg.mem))}, nil
}

func (s *Server) GetPhysAddr(ctx context.Context, r *pb.GetPhysAddrRequest) (*pb.GetPhysAddrResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	reg, ok := s.lookup(r.Id)
	if !ok {
		return &pb.GetPhysAddrResponse{}, nil
	}
	return &pb.GetPhysAddrResponse{Result: true, PhysAddr: reg.phys}, nil
}
