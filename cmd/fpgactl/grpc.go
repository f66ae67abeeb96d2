// Copyright 2021 the u-root Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/machinebox/progress"
	"github.com/spf13/afero"
	"github.com/u-root/u-fpga/pkg/fpga"
	"golang.org/x/sync/errgroup"
)

// Local files named on the command line.
var fs = afero.NewOsFs()

var errRejected = errors.New("rejected by server")

type verb struct {
	args     string
	min, max int
	run      func(ctx context.Context, w io.Writer, c *fpga.Client, args []string) error
}

var verbs = map[string]verb{
	"reset":          {"", 0, 0, reset},
	"load":           {"<name>", 1, 1, load},
	"unload":         {"[slot]", 0, 1, unload},
	"upload":         {"<name> [file]", 1, 2, upload},
	"rm":             {"<name>", 1, 1, remove},
	"load-bitstream": {"<name>", 1, 1, loadBitstream},
	"load-dtbo":      {"<name>", 1, 1, loadDtbo},
	"dtc":            {"<in.dts> <out.dtb>", 2, 2, dtc},
	"bit2bin":        {"<name.bit> <name.bit.bin> [zynq|zynqmp]", 2, 3, bit2bin},
	"open-mmap":      {"<path> <offset> <size> [unit]", 3, 4, openMmap},
	"open-uio":       {"<name> [unit]", 1, 2, openUio},
	"open-udmabuf":   {"<name> [cache] [unit]", 1, 3, openUdmabuf},
	"subclone":       {"<id> <offset> <size> [unit]", 3, 4, subclone},
	"close":          {"<id>", 1, 1, closeHandle},
	"info":           {"<id>", 1, 1, info},
	"read":           {"mem|reg u|i|f <id> <addr> <width>", 5, 5, read},
	"write":          {"mem|reg u|i|f <id> <addr> <width> <value>", 6, 6, write},
	"copy-to":        {"<id> <offset> <file>", 3, 3, copyTo},
	"copy-from":      {"<id> <offset> <len> <file>", 4, 4, copyFrom},
	"blink":          {"[count] [interval]", 0, 2, blink},
	"methods":        {"", 0, 0, func(ctx context.Context, w io.Writer, c *fpga.Client, _ []string) error { return methods(ctx, w, c) }},
	"call":           {"<method> [json]", 1, 2, callJSON},
}

func printVerbs(w io.Writer) {
	names := make([]string, 0, len(verbs))
	for n := range verbs {
		names = append(names, n)
	}
	sort.Strings(names)
	for _, n := range names {
		fmt.Fprintf(w, "  %s %s\n", n, verbs[n].args)
	}
}

func callRPC(ctx context.Context, w io.Writer, c *fpga.Client, args []string) error {
	v, ok := verbs[args[0]]
	if !ok {
		return fmt.Errorf("unknown verb %q", args[0])
	}
	if n := len(args) - 1; n < v.min || n > v.max {
		return fmt.Errorf("usage: %s %s", args[0], v.args)
	}
	return v.run(ctx, w, c, args[1:])
}

func check(op string, ok bool, err error) error {
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%s: %w", op, errRejected)
	}
	return nil
}

func parseUint(s string) (uint64, error) {
	return strconv.ParseUint(s, 0, 64)
}

func parseHandle(s string) (fpga.Handle, error) {
	v, err := strconv.ParseUint(s, 0, 32)
	if err != nil {
		return 0, fmt.Errorf("handle %q: %w", s, err)
	}
	return fpga.Handle(v), nil
}

// parseUnit reads the optional trailing unit argument.
func parseUnit(args []string, i int) (uint64, error) {
	if len(args) <= i {
		return 0, nil
	}
	return parseUint(args[i])
}

func reset(ctx context.Context, w io.Writer, c *fpga.Client, _ []string) error {
	ok, err := c.Reset(ctx)
	return check("Reset", ok, err)
}

func load(ctx context.Context, w io.Writer, c *fpga.Client, args []string) error {
	ok, slot, err := c.Load(ctx, args[0])
	if err := check("Load", ok, err); err != nil {
		return err
	}
	fmt.Fprintf(w, "slot %d\n", slot)
	return nil
}

func unload(ctx context.Context, w io.Writer, c *fpga.Client, args []string) error {
	if len(args) == 0 {
		ok, err := c.UnloadDefaultSlot(ctx)
		return check("Unload", ok, err)
	}
	slot, err := strconv.ParseInt(args[0], 0, 32)
	if err != nil {
		return err
	}
	ok, err := c.Unload(ctx, int32(slot))
	return check("Unload", ok, err)
}

func upload(ctx context.Context, w io.Writer, c *fpga.Client, args []string) error {
	name, path := args[0], args[0]
	if len(args) > 1 {
		path = args[1]
	}
	f, err := fs.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	st, err := f.Stat()
	if err != nil {
		return err
	}
	size := st.Size()

	r := progress.NewReader(f)
	tctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	go func() {
		defer close(done)
		for p := range progress.NewTicker(tctx, r, size, 200*time.Millisecond) {
			fmt.Fprintf(w, "Uploading %s: %d %%\r", name, int(p.Percent()))
		}
	}()
	ok, err := c.UploadFirmwareFrom(ctx, name, r)
	cancel()
	<-done
	if err := check("UploadFirmware", ok, err); err != nil {
		return err
	}
	fmt.Fprintf(w, "Uploaded %s (%s)\n", name, humanize.Bytes(uint64(size)))
	return nil
}

func remove(ctx context.Context, w io.Writer, c *fpga.Client, args []string) error {
	ok, err := c.RemoveFirmware(ctx, args[0])
	return check("RemoveFirmware", ok, err)
}

func loadBitstream(ctx context.Context, w io.Writer, c *fpga.Client, args []string) error {
	ok, err := c.LoadBitstream(ctx, args[0])
	return check("LoadBitstream", ok, err)
}

func loadDtbo(ctx context.Context, w io.Writer, c *fpga.Client, args []string) error {
	ok, err := c.LoadDtbo(ctx, args[0])
	return check("LoadDtbo", ok, err)
}

func dtc(ctx context.Context, w io.Writer, c *fpga.Client, args []string) error {
	src, err := afero.ReadFile(fs, args[0])
	if err != nil {
		return err
	}
	ok, dtb, err := c.DtsToDtb(ctx, string(src))
	if err := check("DtsToDtb", ok, err); err != nil {
		return err
	}
	if err := afero.WriteFile(fs, args[1], dtb, 0644); err != nil {
		return err
	}
	fmt.Fprintf(w, "Wrote %s (%s)\n", args[1], humanize.Bytes(uint64(len(dtb))))
	return nil
}

func bit2bin(ctx context.Context, w io.Writer, c *fpga.Client, args []string) error {
	arch := "zynqmp"
	if len(args) > 2 {
		arch = args[2]
	}
	ok, err := c.BitstreamToBin(ctx, args[0], args[1], arch)
	return check("BitstreamToBin", ok, err)
}

func printHandle(w io.Writer, op string, ok bool, h fpga.Handle, err error) error {
	if err := check(op, ok, err); err != nil {
		return err
	}
	fmt.Fprintf(w, "id %d\n", h)
	return nil
}

func openMmap(ctx context.Context, w io.Writer, c *fpga.Client, args []string) error {
	offset, err := parseUint(args[1])
	if err != nil {
		return err
	}
	size, err := parseUint(args[2])
	if err != nil {
		return err
	}
	unit, err := parseUnit(args, 3)
	if err != nil {
		return err
	}
	ok, h, err := c.OpenMmap(ctx, args[0], offset, size, unit)
	return printHandle(w, "OpenMmap", ok, h, err)
}

func openUio(ctx context.Context, w io.Writer, c *fpga.Client, args []string) error {
	unit, err := parseUnit(args, 1)
	if err != nil {
		return err
	}
	ok, h, err := c.OpenUio(ctx, args[0], unit)
	return printHandle(w, "OpenUio", ok, h, err)
}

func openUdmabuf(ctx context.Context, w io.Writer, c *fpga.Client, args []string) error {
	var cache bool
	if len(args) > 1 {
		var err error
		if cache, err = strconv.ParseBool(args[1]); err != nil {
			return err
		}
	}
	unit, err := parseUnit(args, 2)
	if err != nil {
		return err
	}
	ok, h, err := c.OpenUdmabuf(ctx, args[0], cache, unit)
	return printHandle(w, "OpenUdmabuf", ok, h, err)
}

func subclone(ctx context.Context, w io.Writer, c *fpga.Client, args []string) error {
	parent, err := parseHandle(args[0])
	if err != nil {
		return err
	}
	offset, err := parseUint(args[1])
	if err != nil {
		return err
	}
	size, err := parseUint(args[2])
	if err != nil {
		return err
	}
	unit, err := parseUnit(args, 3)
	if err != nil {
		return err
	}
	ok, h, err := c.Subclone(ctx, parent, offset, size, unit)
	return printHandle(w, "Subclone", ok, h, err)
}

func closeHandle(ctx context.Context, w io.Writer, c *fpga.Client, args []string) error {
	h, err := parseHandle(args[0])
	if err != nil {
		return err
	}
	ok, err := c.CloseHandle(ctx, h)
	return check("Close", ok, err)
}

func info(ctx context.Context, w io.Writer, c *fpga.Client, args []string) error {
	h, err := parseHandle(args[0])
	if err != nil {
		return err
	}
	var addr, size, phys uint64
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		ok, v, err := c.Addr(gctx, h)
		addr = v
		return check("GetAddr", ok, err)
	})
	g.Go(func() error {
		ok, v, err := c.Size(gctx, h)
		size = v
		return check("GetSize", ok, err)
	})
	g.Go(func() error {
		ok, v, err := c.PhysAddr(gctx, h)
		phys = v
		return check("GetPhysAddr", ok, err)
	})
	if err := g.Wait(); err != nil {
		return err
	}
	fmt.Fprintf(w, "addr %#x\nsize %#x (%s)\nphys %#x\n", addr, size, humanize.IBytes(size), phys)
	return nil
}

func space(c *fpga.Client, name string) (*fpga.AddressSpace, error) {
	switch name {
	case "mem":
		return c.Mem(), nil
	case "reg":
		return c.Reg(), nil
	}
	return nil, fmt.Errorf("address space %q is neither mem nor reg", name)
}

// access holds the parsed common arguments of read and write.
type access struct {
	s     *fpga.AddressSpace
	kind  string
	h     fpga.Handle
	addr  uint64
	width uint64
}

func parseAccess(c *fpga.Client, args []string) (*access, error) {
	s, err := space(c, args[0])
	if err != nil {
		return nil, err
	}
	a := &access{s: s, kind: args[1]}
	switch a.kind {
	case "u", "i", "f":
	default:
		return nil, fmt.Errorf("access kind %q is not u, i or f", a.kind)
	}
	if a.h, err = parseHandle(args[2]); err != nil {
		return nil, err
	}
	if a.addr, err = parseUint(args[3]); err != nil {
		return nil, err
	}
	if a.width, err = parseUint(args[4]); err != nil {
		return nil, err
	}
	if a.kind == "f" && a.width != 4 && a.width != 8 {
		return nil, fmt.Errorf("float width must be 4 or 8, got %d", a.width)
	}
	return a, nil
}

func read(ctx context.Context, w io.Writer, c *fpga.Client, args []string) error {
	a, err := parseAccess(c, args)
	if err != nil {
		return err
	}
	var (
		ok  bool
		out string
	)
	switch {
	case a.kind == "u":
		var v uint64
		ok, v, err = a.s.ReadU(ctx, a.h, a.addr, a.width)
		out = fmt.Sprintf("%#x", v)
	case a.kind == "i":
		var v int64
		ok, v, err = a.s.ReadI(ctx, a.h, a.addr, a.width)
		out = strconv.FormatInt(v, 10)
	case a.width == 4:
		var v float32
		ok, v, err = a.s.ReadF32(ctx, a.h, a.addr)
		out = strconv.FormatFloat(float64(v), 'g', -1, 32)
	default:
		var v float64
		ok, v, err = a.s.ReadF64(ctx, a.h, a.addr)
		out = strconv.FormatFloat(v, 'g', -1, 64)
	}
	if err := check("Read", ok, err); err != nil {
		return err
	}
	fmt.Fprintln(w, out)
	return nil
}

func write(ctx context.Context, w io.Writer, c *fpga.Client, args []string) error {
	a, err := parseAccess(c, args)
	if err != nil {
		return err
	}
	val := args[5]
	var ok bool
	switch {
	case a.kind == "u":
		v, perr := parseUint(val)
		if perr != nil {
			return perr
		}
		ok, err = a.s.WriteU(ctx, a.h, a.addr, v, a.width)
	case a.kind == "i":
		v, perr := strconv.ParseInt(val, 0, 64)
		if perr != nil {
			return perr
		}
		ok, err = a.s.WriteI(ctx, a.h, a.addr, v, a.width)
	case a.width == 4:
		v, perr := strconv.ParseFloat(val, 32)
		if perr != nil {
			return perr
		}
		ok, err = a.s.WriteF32(ctx, a.h, a.addr, float32(v))
	default:
		v, perr := strconv.ParseFloat(val, 64)
		if perr != nil {
			return perr
		}
		ok, err = a.s.WriteF64(ctx, a.h, a.addr, v)
	}
	return check("Write", ok, err)
}

func copyTo(ctx context.Context, w io.Writer, c *fpga.Client, args []string) error {
	h, err := parseHandle(args[0])
	if err != nil {
		return err
	}
	offset, err := parseUint(args[1])
	if err != nil {
		return err
	}
	data, err := afero.ReadFile(fs, args[2])
	if err != nil {
		return err
	}
	ok, err := c.MemCopyTo(ctx, h, offset, data)
	if err := check("MemCopyTo", ok, err); err != nil {
		return err
	}
	fmt.Fprintf(w, "Copied %s\n", humanize.Bytes(uint64(len(data))))
	return nil
}

func copyFrom(ctx context.Context, w io.Writer, c *fpga.Client, args []string) error {
	h, err := parseHandle(args[0])
	if err != nil {
		return err
	}
	offset, err := parseUint(args[1])
	if err != nil {
		return err
	}
	n, err := parseUint(args[2])
	if err != nil {
		return err
	}
	ok, data, err := c.MemCopyFrom(ctx, h, offset, n)
	if err := check("MemCopyFrom", ok, err); err != nil {
		return err
	}
	if args[3] == "-" {
		_, err := w.Write(data)
		return err
	}
	if err := afero.WriteFile(fs, args[3], data, 0644); err != nil {
		return err
	}
	fmt.Fprintf(w, "Copied %s\n", humanize.Bytes(uint64(len(data))))
	return nil
}

// blink toggles LED0 of the PL peripheral block at 0xa0000000.
func blink(ctx context.Context, w io.Writer, c *fpga.Client, args []string) error {
	count, interval := 3, 500*time.Millisecond
	if len(args) > 0 {
		n, err := strconv.Atoi(args[0])
		if err != nil {
			return err
		}
		count = n
	}
	if len(args) > 1 {
		d, err := time.ParseDuration(args[1])
		if err != nil {
			return err
		}
		interval = d
	}

	ok, h, err := c.OpenMmap(ctx, "/dev/mem", 0xa0000000, 0x1000, 8)
	if err := check("OpenMmap", ok, err); err != nil {
		return err
	}
	defer c.CloseHandle(context.WithoutCancel(ctx), h)

	led := c.Mem()
	for i := 1; i <= count; i++ {
		fmt.Fprintf(w, "Blink %d/%d\n", i, count)
		for _, v := range []uint64{1, 0} {
			ok, err := led.WriteU64(ctx, h, 0, v)
			if err := check("WriteMemU", ok, err); err != nil {
				return err
			}
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(interval):
			}
		}
	}
	return nil
}

func callJSON(ctx context.Context, w io.Writer, c *fpga.Client, args []string) error {
	body := ""
	if len(args) > 1 {
		body = args[1]
	}
	return call(ctx, w, c, strings.TrimPrefix(args[0], "/"), body)
}
