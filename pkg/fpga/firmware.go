// Copyright 2024 the u-root Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fpga

import (
	"context"

	pb "github.com/u-root/u-fpga/proto"
)

// DefaultSlot is the overlay slot UnloadDefaultSlot releases.
const DefaultSlot int32 = 0

// Reset returns the server to its initial state: every handle is closed
// and every slot unloaded.
func (c *Client) Reset(ctx context.Context) (bool, error) {
	res, err := c.rpc.Reset(ctx, &pb.ResetRequest{})
	if err != nil {
		return false, rpcError("Reset", err)
	}
	return res.Result, nil
}

// Load loads the named firmware and returns the slot it went into.
func (c *Client) Load(ctx context.Context, name string) (bool, int32, error) {
	res, err := c.rpc.Load(ctx, &pb.LoadRequest{Name: name})
	if err != nil {
		return false, 0, rpcError("Load", err)
	}
	return res.Result, res.Slot, nil
}

// Unload releases slot.
func (c *Client) Unload(ctx context.Context, slot int32) (bool, error) {
	res, err := c.rpc.Unload(ctx, &pb.UnloadRequest{Slot: slot})
	if err != nil {
		return false, rpcError("Unload", err)
	}
	return res.Result, nil
}

// UnloadDefaultSlot releases DefaultSlot. Other slots stay loaded.
func (c *Client) UnloadDefaultSlot(ctx context.Context) (bool, error) {
	return c.Unload(ctx, DefaultSlot)
}

// RemoveFirmware deletes the named file from the server's firmware store.
func (c *Client) RemoveFirmware(ctx context.Context, name string) (bool, error) {
	res, err := c.rpc.RemoveFirmware(ctx, &pb.RemoveFirmwareRequest{Name: name})
	if err != nil {
		return false, rpcError("RemoveFirmware", err)
	}
	return res.Result, nil
}

// LoadBitstream programs the fabric with the named bitstream.
func (c *Client) LoadBitstream(ctx context.Context, name string) (bool, error) {
	res, err := c.rpc.LoadBitstream(ctx, &pb.LoadBitstreamRequest{Name: name})
	if err != nil {
		return false, rpcError("LoadBitstream", err)
	}
	return res.Result, nil
}

// LoadDtbo applies the named device tree overlay.
func (c *Client) LoadDtbo(ctx context.Context, name string) (bool, error) {
	res, err := c.rpc.LoadDtbo(ctx, &pb.LoadDtboRequest{Name: name})
	if err != nil {
		return false, rpcError("LoadDtbo", err)
	}
	return res.Result, nil
}

// DtsToDtb compiles device tree source on the server.
func (c *Client) DtsToDtb(ctx context.Context, source string) (bool, []byte, error) {
	res, err := c.rpc.DtsToDtb(ctx, &pb.DtsToDtbRequest{Dts: source})
	if err != nil {
		return false, nil, rpcError("DtsToDtb", err)
	}
	return res.Result, res.Dtb, nil
}

// BitstreamToBin converts a stored .bit file into the raw .bin format the
// FPGA manager of arch expects and stores it as bin.
func (c *Client) BitstreamToBin(ctx context.Context, bitstream, bin, arch string) (bool, error) {
	res, err := c.rpc.BitstreamToBin(ctx, &pb.BitstreamToBinRequest{BitstreamName: bitstream, BinName: bin, Arch: arch})
	if err != nil {
		return false, rpcError("BitstreamToBin", err)
	}
	return res.Result, nil
}
