// Copyright 2024 the u-root Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"math"
	"strconv"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/u-root/u-fpga/pkg/fpga"
	"go.uber.org/zap"
)

type tools struct {
	c   *fpga.Client
	log *zap.Logger
}

func addTools(s *server.MCPServer, t *tools) {
	s.AddTool(mcp.NewTool("fpga_reset",
		mcp.WithDescription("Close every open handle and unload every slot"),
	), t.reset)

	s.AddTool(mcp.NewTool("fpga_load",
		mcp.WithDescription("Load a firmware file or accelerator package into the next free slot"),
		mcp.WithString("name", mcp.Required(), mcp.Description("Firmware or accelerator name")),
	), t.load)

	s.AddTool(mcp.NewTool("fpga_unload",
		mcp.WithDescription("Unload a slot"),
		mcp.WithNumber("slot", mcp.Description("Slot number, 0 when omitted")),
	), t.unload)

	s.AddTool(mcp.NewTool("fpga_open_mmap",
		mcp.WithDescription("Map a range of a device file and return its handle"),
		mcp.WithString("path", mcp.Required(), mcp.Description("Device file, usually /dev/mem")),
		mcp.WithString("offset", mcp.Required(), mcp.Description("Physical offset, decimal or 0x hex")),
		mcp.WithString("size", mcp.Required(), mcp.Description("Size in bytes, decimal or 0x hex")),
		mcp.WithNumber("unit", mcp.Description("Register stride in bytes, 0 for the server default")),
	), t.openMmap)

	s.AddTool(mcp.NewTool("fpga_close",
		mcp.WithDescription("Close a handle"),
		mcp.WithNumber("id", mcp.Required(), mcp.Description("Handle")),
	), t.close)

	s.AddTool(mcp.NewTool("fpga_read",
		mcp.WithDescription("Read an integer from memory or a register"),
		mcp.WithString("space", mcp.Enum("mem", "reg"), mcp.Description("Address space, mem when omitted")),
		mcp.WithNumber("id", mcp.Required(), mcp.Description("Handle")),
		mcp.WithString("addr", mcp.Required(), mcp.Description("Byte offset for mem, register index for reg")),
		mcp.WithNumber("width", mcp.Description("Access width in bytes: 1, 2, 4 or 8 (default)")),
		mcp.WithBoolean("signed", mcp.Description("Sign extend the value")),
	), t.read)

	s.AddTool(mcp.NewTool("fpga_write",
		mcp.WithDescription("Write an integer to memory or a register"),
		mcp.WithString("space", mcp.Enum("mem", "reg"), mcp.Description("Address space, mem when omitted")),
		mcp.WithNumber("id", mcp.Required(), mcp.Description("Handle")),
		mcp.WithString("addr", mcp.Required(), mcp.Description("Byte offset for mem, register index for reg")),
		mcp.WithString("value", mcp.Required(), mcp.Description("Value, decimal, negative or 0x hex")),
		mcp.WithNumber("width", mcp.Description("Access width in bytes: 1, 2, 4 or 8 (default)")),
	), t.write)
}

// result renders a server verdict. Transport failures become tool errors.
func result(op string, ok bool, err error, detail string) (*mcp.CallToolResult, error) {
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("%s failed: %v", op, err)), nil
	}
	if !ok {
		return mcp.NewToolResultText(op + ": result false"), nil
	}
	return mcp.NewToolResultText(op + ": result true" + detail), nil
}

func requireUint(request mcp.CallToolRequest, key string) (uint64, error) {
	s, err := request.RequireString(key)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseUint(s, 0, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return v, nil
}

func requireHandle(request mcp.CallToolRequest) (fpga.Handle, error) {
	id, err := request.RequireFloat("id")
	if err != nil {
		return 0, err
	}
	if id < 0 || id > float64(^uint32(0)) || id != float64(uint32(id)) {
		return 0, fmt.Errorf("id %v is not a handle", id)
	}
	return fpga.Handle(id), nil
}

// optionalInt reads an integral number argument within [lo, hi]. def is
// used when the argument is absent.
func optionalInt(request mcp.CallToolRequest, key string, def, lo, hi float64) (float64, error) {
	v := request.GetFloat(key, def)
	if v != math.Trunc(v) || v < lo || v > hi {
		return 0, fmt.Errorf("%s %v is not an integer between %v and %v", key, v, lo, hi)
	}
	return v, nil
}

func widthArg(request mcp.CallToolRequest) (uint64, error) {
	w, err := optionalInt(request, "width", 8, 1, 8)
	return uint64(w), err
}

func (t *tools) space(request mcp.CallToolRequest) (*fpga.AddressSpace, error) {
	switch s := request.GetString("space", "mem"); s {
	case "mem":
		return t.c.Mem(), nil
	case "reg":
		return t.c.Reg(), nil
	default:
		return nil, fmt.Errorf("space %q is neither mem nor reg", s)
	}
}

func (t *tools) reset(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	ok, err := t.c.Reset(ctx)
	return result("reset", ok, err, "")
}

func (t *tools) load(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := request.RequireString("name")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	ok, slot, err := t.c.Load(ctx, name)
	return result("load", ok, err, fmt.Sprintf(", slot %d", slot))
}

func (t *tools) unload(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	slot, err := optionalInt(request, "slot", float64(fpga.DefaultSlot), math.MinInt32, math.MaxInt32)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	ok, err := t.c.Unload(ctx, int32(slot))
	return result("unload", ok, err, "")
}

func (t *tools) openMmap(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := request.RequireString("path")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	offset, err := requireUint(request, "offset")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	size, err := requireUint(request, "size")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	unit, err := optionalInt(request, "unit", 0, 0, math.MaxUint32)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	ok, h, err := t.c.OpenMmap(ctx, path, offset, size, uint64(unit))
	return result("open_mmap", ok, err, fmt.Sprintf(", id %d", h))
}

func (t *tools) close(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	h, err := requireHandle(request)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	ok, err := t.c.CloseHandle(ctx, h)
	return result("close", ok, err, "")
}

func (t *tools) read(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	s, err := t.space(request)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	h, err := requireHandle(request)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	addr, err := requireUint(request, "addr")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	width, err := widthArg(request)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if request.GetBool("signed", false) {
		ok, v, err := s.ReadI(ctx, h, addr, width)
		return result("read", ok, err, fmt.Sprintf(", value %d", v))
	}
	ok, v, err := s.ReadU(ctx, h, addr, width)
	return result("read", ok, err, fmt.Sprintf(", value %#x", v))
}

func (t *tools) write(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	s, err := t.space(request)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	h, err := requireHandle(request)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	addr, err := requireUint(request, "addr")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	value, err := request.RequireString("value")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	width, err := widthArg(request)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if u, perr := strconv.ParseUint(value, 0, 64); perr == nil {
		ok, err := s.WriteU(ctx, h, addr, u, width)
		return result("write", ok, err, "")
	}
	i, perr := strconv.ParseInt(value, 0, 64)
	if perr != nil {
		return mcp.NewToolResultError(fmt.Sprintf("value %q is not an integer", value)), nil
	}
	ok, err := s.WriteI(ctx, h, addr, i, width)
	return result("write", ok, err, "")
}
