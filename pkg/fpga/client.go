// Copyright 2024 the u-root Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package fpga is a client for jelly_fpga_control servers. It loads and
// unloads bitstreams and device tree overlays, opens memory maps, UIO
// devices and u-dma-buf buffers on the remote side, and reads and writes
// their memory and register space.
//
// Every call returns two independent outcomes. A non-nil error means the
// request or its response was lost: the connection failed, the server
// answered with a gRPC status, or the response did not decode. Otherwise
// the boolean result is the server's verdict, false when for example a
// handle is unknown or an access is out of range.
//
// Resource handles and firmware slots are integers owned by the server.
// The client keeps no table of them.
package fpga

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	grpc_prometheus "github.com/grpc-ecosystem/go-grpc-prometheus"
	"github.com/spf13/afero"
	pb "github.com/u-root/u-fpga/proto"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/connectivity"
	"google.golang.org/grpc/metadata"
)

// RequestIDKey is the metadata key that tags every outgoing call.
const RequestIDKey = "x-request-id"

// Client is a connection to one control server. It is safe for concurrent
// use; calls are multiplexed over a single HTTP/2 channel.
type Client struct {
	endpoint  string
	conn      *grpc.ClientConn
	rpc       pb.JellyFpgaControlClient
	log       *zap.Logger
	fs        afero.Fs
	chunkSize int
	mem       *AddressSpace
	reg       *AddressSpace
}

type options struct {
	log       *zap.Logger
	fs        afero.Fs
	dialOpts  []grpc.DialOption
	metrics   *grpc_prometheus.ClientMetrics
	chunkSize int
}

// Option configures Connect.
type Option func(*options)

// WithLogger sets the logger. Calls are logged at debug level.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		o.log = l
	}
}

// WithFs sets the filesystem UploadFirmwareFile reads from.
func WithFs(fs afero.Fs) Option {
	return func(o *options) {
		o.fs = fs
	}
}

// WithDialOptions appends gRPC dial options, after the ones Connect sets.
func WithDialOptions(opts ...grpc.DialOption) Option {
	return func(o *options) {
		o.dialOpts = append(o.dialOpts, opts...)
	}
}

// WithClientMetrics records per-method call metrics into m instead of
// grpc_prometheus.DefaultClientMetrics.
func WithClientMetrics(m *grpc_prometheus.ClientMetrics) Option {
	return func(o *options) {
		o.metrics = m
	}
}

// WithChunkSize sets the upload frame size. Values outside 1..MaxChunkSize
// select MaxChunkSize.
func WithChunkSize(n int) Option {
	return func(o *options) {
		o.chunkSize = n
	}
}

// Connect opens a channel to endpoint and waits until it is ready or has
// failed once. It never retries; bound the wait with ctx.
func Connect(ctx context.Context, endpoint string, opts ...Option) (*Client, error) {
	o := options{
		log:       zap.NewNop(),
		fs:        afero.NewOsFs(),
		metrics:   grpc_prometheus.DefaultClientMetrics,
		chunkSize: MaxChunkSize,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.chunkSize <= 0 || o.chunkSize > MaxChunkSize {
		o.chunkSize = MaxChunkSize
	}

	target, creds, err := parseEndpoint(endpoint)
	if err != nil {
		return nil, &ConnectionError{Endpoint: endpoint, Err: err}
	}

	c := &Client{
		endpoint:  endpoint,
		log:       o.log.With(zap.String("endpoint", endpoint)),
		fs:        o.fs,
		chunkSize: o.chunkSize,
	}
	dialOpts := []grpc.DialOption{
		grpc.WithTransportCredentials(creds),
		grpc.WithChainUnaryInterceptor(c.tagUnary, o.metrics.UnaryClientInterceptor()),
		grpc.WithChainStreamInterceptor(c.tagStream, o.metrics.StreamClientInterceptor()),
	}
	conn, err := grpc.NewClient(target, append(dialOpts, o.dialOpts...)...)
	if err != nil {
		return nil, &ConnectionError{Endpoint: endpoint, Err: err}
	}
	if err := waitReady(ctx, conn); err != nil {
		conn.Close()
		return nil, &ConnectionError{Endpoint: endpoint, Err: err}
	}

	c.conn = conn
	c.rpc = pb.NewJellyFpgaControlClient(conn)
	c.mem = &AddressSpace{space: "Mem", rpc: memRPC{c.rpc}}
	c.reg = &AddressSpace{space: "Reg", rpc: regRPC{c.rpc}}
	c.log.Debug("connected", zap.String("target", target))
	return c, nil
}

func waitReady(ctx context.Context, conn *grpc.ClientConn) error {
	conn.Connect()
	for {
		s := conn.GetState()
		switch s {
		case connectivity.Ready:
			return nil
		case connectivity.TransientFailure, connectivity.Shutdown:
			return fmt.Errorf("channel is %s", s)
		}
		if !conn.WaitForStateChange(ctx, s) {
			return ctx.Err()
		}
	}
}

// Close tears down the channel. Handles opened through the client stay
// open on the server.
func (c *Client) Close() error {
	return c.conn.Close()
}

// Conn returns the underlying channel, for reflection clients and other
// services sharing the connection.
func (c *Client) Conn() *grpc.ClientConn {
	return c.conn
}

// Endpoint returns the endpoint passed to Connect.
func (c *Client) Endpoint() string {
	return c.endpoint
}

func (c *Client) tagUnary(ctx context.Context, method string, req, reply any, cc *grpc.ClientConn, invoker grpc.UnaryInvoker, opts ...grpc.CallOption) error {
	id := uuid.NewString()
	start := time.Now()
	err := invoker(metadata.AppendToOutgoingContext(ctx, RequestIDKey, id), method, req, reply, cc, opts...)
	c.log.Debug("rpc",
		zap.String("method", method),
		zap.String("request_id", id),
		zap.Duration("elapsed", time.Since(start)),
		zap.Error(err))
	return err
}

func (c *Client) tagStream(ctx context.Context, desc *grpc.StreamDesc, cc *grpc.ClientConn, method string, streamer grpc.Streamer, opts ...grpc.CallOption) (grpc.ClientStream, error) {
	id := uuid.NewString()
	s, err := streamer(metadata.AppendToOutgoingContext(ctx, RequestIDKey, id), desc, cc, method, opts...)
	c.log.Debug("stream opened",
		zap.String("method", method),
		zap.String("request_id", id),
		zap.Error(err))
	return s, err
}
