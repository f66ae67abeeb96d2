// Copyright 2018 the u-root Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// fpgactl drives a jelly_fpga_control server from the command line.
//
//	fpgactl [-config file] [-host endpoint] [-wait duration] verb args...
//
// Without a verb it prints the available verbs. The methods and call verbs
// go through server reflection instead of the typed client.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sort"
	"strings"
	"syscall"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/fullstorydev/grpcurl"
	"github.com/jhump/protoreflect/desc"
	"github.com/jhump/protoreflect/grpcreflect"
	"github.com/u-root/u-fpga/config"
	"github.com/u-root/u-fpga/pkg/fpga"
	"github.com/u-root/u-fpga/pkg/logger"
	pb "github.com/u-root/u-fpga/proto"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/protobuf/types/descriptorpb"
)

var (
	configFile = flag.String("config", "", "YAML configuration file")
	host       = flag.String("host", "", "Control server endpoint, overrides the configuration")
	wait       = flag.Duration("wait", 0, "Keep retrying the connection for this long")
	logLevel   = flag.String("log-level", "", "Console log level, overrides the configuration")

	serviceName = pb.JellyFpgaControl_ServiceDesc.ServiceName
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] verb [args...]\n\nFlags:\n", os.Args[0])
		flag.PrintDefaults()
		fmt.Fprintf(flag.CommandLine.Output(), "\nVerbs:\n")
		printVerbs(flag.CommandLine.Output())
	}
	flag.Parse()

	cfg, err := config.Load(*configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "fpgactl: %v\n", err)
		os.Exit(1)
	}
	if *host != "" {
		cfg.Endpoint = *host
	}
	if *wait != 0 {
		cfg.Wait = *wait
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "fpgactl: %v\n", err)
		os.Exit(1)
	}
	if err := logger.LogContainer.Configure(logger.Config{Level: cfg.LogLevel, File: cfg.LogFile}); err != nil {
		fmt.Fprintf(os.Stderr, "fpgactl: %v\n", err)
		os.Exit(1)
	}
	log := logger.LogContainer.GetSimpleLogger()

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	c, err := newConnection(ctx, cfg, log)
	if err != nil {
		log.Fatalf("Could not open connection: %v", err)
	}
	err = callRPC(ctx, os.Stdout, c, flag.Args())
	c.Close()
	if err != nil {
		log.Errorf("%s: %v", flag.Arg(0), err)
		os.Exit(1)
	}
}

// newConnection makes a single attempt unless cfg.Wait is set, in which
// case it retries with exponential backoff until cfg.Wait has passed.
func newConnection(ctx context.Context, cfg *config.Config, log *zap.SugaredLogger) (*fpga.Client, error) {
	opts := []fpga.Option{
		fpga.WithLogger(log.Desugar()),
		fpga.WithChunkSize(cfg.ChunkSize),
	}
	if cfg.Wait <= 0 {
		return fpga.Connect(ctx, cfg.Endpoint, opts...)
	}

	retry := &backoff.ExponentialBackOff{
		InitialInterval:     100 * time.Millisecond,
		RandomizationFactor: 0.5,
		Multiplier:          2,
		MaxInterval:         5 * time.Second,
		MaxElapsedTime:      cfg.Wait,
		Stop:                backoff.Stop,
		Clock:               backoff.SystemClock,
	}
	var c *fpga.Client
	err := backoff.RetryNotify(func() error {
		var err error
		c, err = fpga.Connect(ctx, cfg.Endpoint, opts...)
		return err
	}, backoff.WithContext(retry, ctx), func(err error, next time.Duration) {
		log.Infof("%v, retrying in %v", err, next.Round(time.Millisecond))
	})
	if err != nil {
		return nil, err
	}
	return c, nil
}

func descriptorSource(ctx context.Context, c *fpga.Client) (grpcurl.DescriptorSource, func()) {
	rc := grpcreflect.NewClientAuto(ctx, c.Conn())
	return grpcurl.DescriptorSourceFromServer(ctx, rc), rc.Reset
}

// methods lists the service's RPCs with their request and response fields.
func methods(ctx context.Context, w io.Writer, c *fpga.Client) error {
	ds, done := descriptorSource(ctx, c)
	defer done()

	names, err := grpcurl.ListMethods(ds, serviceName)
	if err != nil {
		return fmt.Errorf("grpcurl.ListMethods(%s): %w", serviceName, err)
	}
	sort.Strings(names)
	for _, name := range names {
		dsc, err := ds.FindSymbol(name)
		if err != nil {
			return fmt.Errorf("FindSymbol(%s): %w", name, err)
		}
		md, ok := dsc.(*desc.MethodDescriptor)
		if !ok {
			return fmt.Errorf("%s is a %T, not a method", name, dsc)
		}
		fmt.Fprintf(w, "Method: %s", md.GetName())
		if md.IsClientStreaming() {
			fmt.Fprintf(w, " (client streaming)")
		}
		fmt.Fprintf(w, "\n Request:\n")
		printMessage(w, md.GetInputType(), 1)
		fmt.Fprintf(w, "\n Response:\n")
		printMessage(w, md.GetOutputType(), 1)
		fmt.Fprintf(w, "\n")
	}
	return nil
}

func printMessage(w io.Writer, md *desc.MessageDescriptor, depth int) {
	ml := 0
	for _, f := range md.GetFields() {
		if ml < len(f.GetName()) {
			ml = len(f.GetName())
		}
	}
	pad := strings.Repeat("  ", depth)
	if len(md.GetFields()) == 0 {
		fmt.Fprintf(w, "%s(empty)\n", pad)
		return
	}
	for _, f := range md.GetFields() {
		if f.GetType() == descriptorpb.FieldDescriptorProto_TYPE_MESSAGE {
			fmt.Fprintf(w, "%s%s {\n", pad, f.GetName())
			printMessage(w, f.GetMessageType(), depth+1)
			fmt.Fprintf(w, "%s}\n", pad)
			continue
		}
		fmt.Fprintf(w, "%s%-*s: %s\n", pad, ml, f.GetName(), fieldType(f.GetType()))
	}
}

func fieldType(t descriptorpb.FieldDescriptorProto_Type) string {
	switch t {
	case descriptorpb.FieldDescriptorProto_TYPE_BOOL:
		return "[bool]"
	case descriptorpb.FieldDescriptorProto_TYPE_UINT32, descriptorpb.FieldDescriptorProto_TYPE_UINT64:
		return "[number (>= 0)]"
	case descriptorpb.FieldDescriptorProto_TYPE_INT32, descriptorpb.FieldDescriptorProto_TYPE_INT64:
		return "[number (positive or negative)]"
	case descriptorpb.FieldDescriptorProto_TYPE_FLOAT, descriptorpb.FieldDescriptorProto_TYPE_DOUBLE:
		return "[floating point]"
	case descriptorpb.FieldDescriptorProto_TYPE_STRING:
		return "[string]"
	case descriptorpb.FieldDescriptorProto_TYPE_BYTES:
		return "[bytes, base64 in JSON]"
	}
	return "[unknown type :(]"
}

// call invokes method with a JSON request body and prints the JSON
// response. Client streaming methods take one message per JSON object.
func call(ctx context.Context, w io.Writer, c *fpga.Client, method, body string) error {
	ds, done := descriptorSource(ctx, c)
	defer done()

	rf, formatter, err := grpcurl.RequestParserAndFormatter(grpcurl.FormatJSON, ds, strings.NewReader(body), grpcurl.FormatOptions{
		EmitJSONDefaultFields: true,
	})
	if err != nil {
		return err
	}
	h := &grpcurl.DefaultEventHandler{Out: w, Formatter: formatter}
	full := serviceName + "/" + method
	if err := grpcurl.InvokeRPC(ctx, ds, c.Conn(), full, nil, h, rf.Next); err != nil {
		return fmt.Errorf("grpcurl.InvokeRPC(%s): %w", full, err)
	}
	if h.Status.Code() != codes.OK {
		return fmt.Errorf("%s returned %s: %s", method, h.Status.Code(), h.Status.Message())
	}
	return nil
}
