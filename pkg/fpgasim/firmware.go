// Copyright 2024 the u-root Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fpgasim

import (
	"bytes"
	"context"
	"io"
	"path"

	"github.com/spf13/afero"
	pb "github.com/u-root/u-fpga/proto"
	"go.uber.org/zap"
	"google.golang.org/grpc"
)

// Architectures BitstreamToBin accepts.
var arches = map[string]bool{
	"zynq":   true,
	"zynqmp": true,
}

// validName accepts plain file names only, so requests stay inside the
// firmware directory.
func validName(name string) bool {
	return name != "" && name != "." && name != ".." && path.Base(name) == name
}

func (s *Server) firmwarePath(name string) string {
	return path.Join(s.dir, name)
}

func (s *Server) isFile(name string) bool {
	if !validName(name) {
		return false
	}
	fi, err := s.fs.Stat(s.firmwarePath(name))
	return err == nil && !fi.IsDir()
}

// takeSlot loads name into the lowest free slot. s.mu must be held.
func (s *Server) takeSlot(name string) int32 {
	var slot int32
	for {
		if _, used := s.slots[slot]; !used {
			break
		}
		slot++
	}
	s.slots[slot] = name
	return slot
}

func (s *Server) UploadFirmware(stream grpc.ClientStreamingServer[pb.UploadFirmwareRequest, pb.ResultResponse]) error {
	var (
		name   string
		buf    bytes.Buffer
		chunks int
	)
	for {
		req, err := stream.Recv()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
		if chunks == 0 {
			name = req.Name
		} else if req.Name != name {
			s.log.Warn("upload changed file name", zap.String("name", name), zap.String("got", req.Name))
			return stream.SendAndClose(&pb.ResultResponse{})
		}
		chunks++
		buf.Write(req.Data)
	}
	if chunks == 0 || !validName(name) {
		return stream.SendAndClose(&pb.ResultResponse{})
	}
	if err := afero.WriteFile(s.fs, s.firmwarePath(name), buf.Bytes(), 0644); err != nil {
		s.log.Error("storing firmware", zap.String("name", name), zap.Error(err))
		return stream.SendAndClose(&pb.ResultResponse{})
	}
	firmwareStored.Add(buf.Len())
	s.log.Info("firmware stored", zap.String("name", name), zap.Int("chunks", chunks), zap.Int("bytes", buf.Len()))
	return stream.SendAndClose(&pb.ResultResponse{Result: true})
}

func (s *Server) RemoveFirmware(ctx context.Context, r *pb.RemoveFirmwareRequest) (*pb.ResultResponse, error) {
	if !s.isFile(r.Name) {
		return &pb.ResultResponse{}, nil
	}
	if err := s.fs.Remove(s.firmwarePath(r.Name)); err != nil {
		s.log.Error("removing firmware", zap.String("name", r.Name), zap.Error(err))
		return &pb.ResultResponse{}, nil
	}
	return &pb.ResultResponse{Result: true}, nil
}

// Load accepts a firmware file, its converted .bit.bin or .bin form, or an
// accelerator package directory.
func (s *Server) Load(ctx context.Context, r *pb.LoadRequest) (*pb.LoadResponse, error) {
	found := false
	if validName(r.Name) {
		for _, p := range []string{r.Name, r.Name + ".bit.bin", r.Name + ".bin"} {
			if ok, _ := afero.Exists(s.fs, s.firmwarePath(p)); ok {
				found = true
				break
			}
		}
	}
	if !found {
		s.log.Warn("nothing to load", zap.String("name", r.Name))
		return &pb.LoadResponse{Slot: -1}, nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	slot := s.takeSlot(r.Name)
	s.log.Info("loaded", zap.String("name", r.Name), zap.Int32("slot", slot))
	return &pb.LoadResponse{Result: true, Slot: slot}, nil
}

func (s *Server) Unload(ctx context.Context, r *pb.UnloadRequest) (*pb.ResultResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	name, ok := s.slots[r.Slot]
	if !ok {
		return &pb.ResultResponse{}, nil
	}
	delete(s.slots, r.Slot)
	s.log.Info("unloaded", zap.String("name", name), zap.Int32("slot", r.Slot))
	return &pb.ResultResponse{Result: true}, nil
}

func (s *Server) LoadBitstream(ctx context.Context, r *pb.LoadBitstreamRequest) (*pb.ResultResponse, error) {
	if !s.isFile(r.Name) {
		return &pb.ResultResponse{}, nil
	}
	s.log.Info("bitstream programmed", zap.String("name", r.Name))
	return &pb.ResultResponse{Result: true}, nil
}

// LoadDtbo applies an overlay. Applied overlays occupy a slot, the same
// way Load does.
func (s *Server) LoadDtbo(ctx context.Context, r *pb.LoadDtboRequest) (*pb.ResultResponse, error) {
	if !s.isFile(r.Name) {
		return &pb.ResultResponse{}, nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	slot := s.takeSlot(r.Name)
	s.log.Info("overlay applied", zap.String("name", r.Name), zap.Int32("slot", slot))
	return &pb.ResultResponse{Result: true}, nil
}

func (s *Server) DtsToDtb(ctx context.Context, r *pb.DtsToDtbRequest) (*pb.DtsToDtbResponse, error) {
	dtb, err := CompileDts(r.Dts)
	if err != nil {
		s.log.Warn("dts rejected", zap.Error(err))
		return &pb.DtsToDtbResponse{}, nil
	}
	return &pb.DtsToDtbResponse{Result: true, Dtb: dtb}, nil
}

func (s *Server) BitstreamToBin(ctx context.Context, r *pb.BitstreamToBinRequest) (*pb.ResultResponse, error) {
	if !arches[r.Arch] || !s.isFile(r.BitstreamName) || !validName(r.BinName) {
		return &pb.ResultResponse{}, nil
	}
	bit, err := afero.ReadFile(s.fs, s.firmwarePath(r.BitstreamName))
	if err != nil {
		return &pb.ResultResponse{}, nil
	}
	bin, err := BitToBin(bit)
	if err != nil {
		s.log.Warn("bitstream rejected", zap.String("name", r.BitstreamName), zap.Error(err))
		return &pb.ResultResponse{}, nil
	}
	if err := afero.WriteFile(s.fs, s.firmwarePath(r.BinName), bin, 0644); err != nil {
		s.log.Error("storing bin", zap.String("name", r.BinName), zap.Error(err))
		return &pb.ResultResponse{}, nil
	}
	return &pb.ResultResponse{Result: true}, nil
}
