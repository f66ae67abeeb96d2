// Copyright 2024 the u-root Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fpga

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/afero"
	pb "github.com/u-root/u-fpga/proto"
	"go.uber.org/zap"
)

// MaxChunkSize is the largest payload a single upload frame carries.
const MaxChunkSize = 2 << 20

// chunker hands out consecutive pieces of r, each at most size bytes.
// Every piece has its own backing array: a sent message must not change
// while interceptors and stats handlers may still hold it.
type chunker struct {
	r    io.Reader
	size int
	err  error
}

func newChunker(r io.Reader, size int) *chunker {
	// Readers that know their length get chunks no bigger than needed.
	if l, ok := r.(interface{ Len() int }); ok && l.Len() < size {
		size = l.Len()
	}
	return &chunker{r: r, size: size}
}

// next returns io.EOF once r is drained.
func (c *chunker) next() ([]byte, error) {
	if c.err != nil {
		return nil, c.err
	}
	if c.size == 0 {
		c.err = io.EOF
		return nil, c.err
	}
	buf := make([]byte, c.size)
	n, err := io.ReadFull(c.r, buf)
	switch {
	case err == io.EOF:
		c.err = io.EOF
		return nil, c.err
	case err == io.ErrUnexpectedEOF:
		c.err = io.EOF
	case err != nil:
		c.err = err
		return nil, err
	}
	return buf[:n:n], nil
}

// split hands out consecutive windows of data without copying it.
func split(data []byte, size int) func() ([]byte, error) {
	return func() ([]byte, error) {
		if len(data) == 0 {
			return nil, io.EOF
		}
		n := min(size, len(data))
		chunk := data[:n:n]
		data = data[n:]
		return chunk, nil
	}
}

// UploadFirmware stores data on the server under name. data must not be
// modified until the call returns.
func (c *Client) UploadFirmware(ctx context.Context, name string, data []byte) (bool, error) {
	return c.upload(ctx, name, split(data, c.chunkSize))
}

// UploadFirmwareFile reads path from the client's filesystem and uploads
// it under name. A read failure is a *FileError and nothing is sent.
func (c *Client) UploadFirmwareFile(ctx context.Context, name, path string) (bool, error) {
	data, err := afero.ReadFile(c.fs, path)
	if err != nil {
		return false, &FileError{Path: path, Err: err}
	}
	return c.UploadFirmware(ctx, name, data)
}

// UploadFirmwareFrom streams r to the server under name. Chunks are read
// lazily, so r may be larger than memory. An empty r sends no chunks and
// leaves the verdict to the server.
func (c *Client) UploadFirmwareFrom(ctx context.Context, name string, r io.Reader) (bool, error) {
	return c.upload(ctx, name, newChunker(r, c.chunkSize).next)
}

func (c *Client) upload(ctx context.Context, name string, next func() ([]byte, error)) (bool, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	stream, err := c.rpc.UploadFirmware(ctx)
	if err != nil {
		return false, rpcError("UploadFirmware", err)
	}

	var chunks, total int
	for {
		data, err := next()
		if err == io.EOF {
			break
		}
		if err != nil {
			// cancel tears the stream down, the server never sees a
			// half sent file as complete.
			return false, fmt.Errorf("UploadFirmware %s: read chunk %d: %w", name, chunks, err)
		}
		err = stream.Send(&pb.UploadFirmwareRequest{Name: name, Data: data})
		if errors.Is(err, io.EOF) {
			// The server ended the stream, its status follows below.
			break
		}
		if err != nil {
			return false, rpcError("UploadFirmware", err)
		}
		chunks++
		total += len(data)
		uploadChunks.Inc()
		uploadBytes.Add(float64(len(data)))
	}

	res, err := stream.CloseAndRecv()
	if err != nil {
		return false, rpcError("UploadFirmware", err)
	}
	c.log.Debug("firmware uploaded",
		zap.String("name", name),
		zap.Int("chunks", chunks),
		zap.Int("bytes", total),
		zap.Bool("result", res.Result))
	return res.Result, nil
}
