// Copyright 2024 the u-root Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package fpgasim implements the jelly_fpga_control service on top of
// plain memory and an afero filesystem. It behaves like a board from the
// client's point of view: firmware files can be stored, converted and
// loaded into slots, and resources opened with it are byte addressable
// little endian memory. Nothing touches real hardware.
package fpgasim

import (
	"context"
	"path"
	"sync"

	grpc_prometheus "github.com/grpc-ecosystem/go-grpc-prometheus"
	"github.com/spf13/afero"
	pb "github.com/u-root/u-fpga/proto"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/reflection"
)

// DefaultFirmwareDir is where firmware files are kept unless
// WithFirmwareDir says otherwise.
const DefaultFirmwareDir = "/lib/firmware"

// Device is a UIO device or u-dma-buf buffer the server can open by name.
type Device struct {
	Name string
	Size uint64
	Phys uint64
}

// Server is a simulated control server. The zero value is not usable,
// create one with New.
type Server struct {
	pb.UnimplementedJellyFpgaControlServer

	log    *zap.Logger
	fs     afero.Fs
	dir    string
	accels []string

	mu      sync.Mutex
	slots   map[int32]string
	regions map[uint32]*region
	nextID  uint32
	nextVA  uint64
	uio     map[string]*backing
	udmabuf map[string]*backing
}

// Option configures New.
type Option func(*Server)

func WithLogger(l *zap.Logger) Option {
	return func(s *Server) {
		s.log = l
	}
}

// WithFs sets the filesystem firmware is stored on. The default is an
// empty in-memory filesystem.
func WithFs(fs afero.Fs) Option {
	return func(s *Server) {
		s.fs = fs
	}
}

func WithFirmwareDir(dir string) Option {
	return func(s *Server) {
		s.dir = dir
	}
}

// WithUio declares UIO devices OpenUio can open.
func WithUio(devs ...Device) Option {
	return func(s *Server) {
		for _, d := range devs {
			s.uio[d.Name] = newBacking(d)
		}
	}
}

// WithUdmabuf declares u-dma-buf buffers OpenUdmabuf can open.
func WithUdmabuf(devs ...Device) Option {
	return func(s *Server) {
		for _, d := range devs {
			s.udmabuf[d.Name] = newBacking(d)
		}
	}
}

// WithAccels preinstalls accelerator packages, directories under the
// firmware directory that Load accepts by name.
func WithAccels(names ...string) Option {
	return func(s *Server) {
		s.accels = append(s.accels, names...)
	}
}

// New returns a server with no handles open and no slot loaded.
func New(opts ...Option) (*Server, error) {
	s := &Server{
		log:     zap.NewNop(),
		fs:      afero.NewMemMapFs(),
		dir:     DefaultFirmwareDir,
		uio:     map[string]*backing{},
		udmabuf: map[string]*backing{},
	}
	for _, opt := range opts {
		opt(s)
	}
	if err := s.fs.MkdirAll(s.dir, 0755); err != nil {
		return nil, err
	}
	for _, a := range s.accels {
		if err := s.fs.MkdirAll(path.Join(s.dir, a), 0755); err != nil {
			return nil, err
		}
	}
	s.resetState()
	return s, nil
}

// resetState drops all handles and slots. s.mu must be held or s unshared.
func (s *Server) resetState() {
	openHandles.Add(-int64(len(s.regions)))
	s.slots = map[int32]string{}
	s.regions = map[uint32]*region{}
	s.nextID = 1
	s.nextVA = vaBase
	for _, b := range s.uio {
		clear(b.mem)
	}
	for _, b := range s.udmabuf {
		clear(b.mem)
	}
}

func (s *Server) Reset(ctx context.Context, _ *pb.ResetRequest) (*pb.ResultResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.log.Info("reset", zap.Int("handles", len(s.regions)), zap.Int("slots", len(s.slots)))
	s.resetState()
	return &pb.ResultResponse{Result: true}, nil
}

// NewGRPCServer returns a gRPC server with s and the reflection service
// registered. Calls are counted by the default grpc_prometheus metrics
// ahead of any interceptors in opts.
func (s *Server) NewGRPCServer(opts ...grpc.ServerOption) *grpc.Server {
	opts = append([]grpc.ServerOption{
		grpc.ChainStreamInterceptor(grpc_prometheus.StreamServerInterceptor),
		grpc.ChainUnaryInterceptor(grpc_prometheus.UnaryServerInterceptor),
	}, opts...)
	g := grpc.NewServer(opts...)
	pb.RegisterJellyFpgaControlServer(g, s)
	grpc_prometheus.Register(g)
	reflection.Register(g)
	return g
}
