// Copyright 2024 the u-root Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fpga

import (
	"context"

	pb "github.com/u-root/u-fpga/proto"
)

// Handle names a resource opened on the server. Handles are only
// meaningful to the server that issued them.
type Handle uint32

// OpenMmap maps size bytes of path at offset. unit scales register
// indices into byte offsets on the server.
func (c *Client) OpenMmap(ctx context.Context, path string, offset, size, unit uint64) (bool, Handle, error) {
	res, err := c.rpc.OpenMmap(ctx, &pb.OpenMmapRequest{Path: path, Offset: offset, Size: size, Unit: unit})
	if err != nil {
		return false, 0, rpcError("OpenMmap", err)
	}
	return res.Result, Handle(res.Id), nil
}

// OpenUio opens the UIO device called name.
func (c *Client) OpenUio(ctx context.Context, name string, unit uint64) (bool, Handle, error) {
	res, err := c.rpc.OpenUio(ctx, &pb.OpenUioRequest{Name: name, Unit: unit})
	if err != nil {
		return false, 0, rpcError("OpenUio", err)
	}
	return res.Result, Handle(res.Id), nil
}

// OpenUdmabuf opens the u-dma-buf buffer called name.
func (c *Client) OpenUdmabuf(ctx context.Context, name string, cacheEnable bool, unit uint64) (bool, Handle, error) {
	res, err := c.rpc.OpenUdmabuf(ctx, &pb.OpenUdmabufRequest{Name: name, CacheEnable: cacheEnable, Unit: unit})
	if err != nil {
		return false, 0, rpcError("OpenUdmabuf", err)
	}
	return res.Result, Handle(res.Id), nil
}

// Subclone opens a window of size bytes at offset inside h. The window
// shares h's storage and gets its own handle.
func (c *Client) Subclone(ctx context.Context, h Handle, offset, size, unit uint64) (bool, Handle, error) {
	res, err := c.rpc.Subclone(ctx, &pb.SubcloneRequest{Id: uint32(h), Offset: offset, Size: size, Unit: unit})
	if err != nil {
		return false, 0, rpcError("Subclone", err)
	}
	return res.Result, Handle(res.Id), nil
}

// CloseHandle releases h on the server.
func (c *Client) CloseHandle(ctx context.Context, h Handle) (bool, error) {
	res, err := c.rpc.Close(ctx, &pb.CloseRequest{Id: uint32(h)})
	if err != nil {
		return false, rpcError("Close", err)
	}
	return res.Result, nil
}

// Addr returns the server side virtual address of h.
func (c *Client) Addr(ctx context.Context, h Handle) (bool, uint64, error) {
	res, err := c.rpc.GetAddr(ctx, &pb.GetAddrRequest{Id: uint32(h)})
	if err != nil {
		return false, 0, rpcError("GetAddr", err)
	}
	return res.Result, res.Addr, nil
}

// Size returns the length of h in bytes.
func (c *Client) Size(ctx context.Context, h Handle) (bool, uint64, error) {
	res, err := c.rpc.GetSize(ctx, &pb.GetSizeRequest{Id: uint32(h)})
	if err != nil {
		return false, 0, rpcError("GetSize", err)
	}
	return res.Result, res.Size, nil
}

// PhysAddr returns the physical address backing h.
func (c *Client) PhysAddr(ctx context.Context, h Handle) (bool, uint64, error) {
	res, err := c.rpc.GetPhysAddr(ctx, &pb.GetPhysAddrRequest{Id: uint32(h)})
	if err != nil {
		return false, 0, rpcError("GetPhysAddr", err)
	}
	return res.Result, res.PhysAddr, nil
}

// MemCopyTo writes data to h at offset in one request.
func (c *Client) MemCopyTo(ctx context.Context, h Handle, offset uint64, data []byte) (bool, error) {
	res, err := c.rpc.MemCopyTo(ctx, &pb.MemCopyToRequest{Id: uint32(h), Offset: offset, Data: data})
	if err != nil {
		return false, rpcError("MemCopyTo", err)
	}
	return res.Result, nil
}

// MemCopyFrom reads n bytes of h at offset in one request.
func (c *Client) MemCopyFrom(ctx context.Context, h Handle, offset, n uint64) (bool, []byte, error) {
	res, err := c.rpc.MemCopyFrom(ctx, &pb.MemCopyFromRequest{Id: uint32(h), Offset: offset, Size: n})
	if err != nil {
		return false, nil, rpcError("MemCopyFrom", err)
	}
	return res.Result, res.Data, nil
}
