// Copyright 2024 the u-root Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fpga

import (
	"errors"
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ErrInvalidWidth is returned, before anything is sent, for integer
// accesses whose width is not 1, 2, 4 or 8 bytes.
var ErrInvalidWidth = errors.New("access width must be 1, 2, 4 or 8 bytes")

// ConnectionError reports an endpoint that could not be parsed or a channel
// that never became ready.
type ConnectionError struct {
	Endpoint string
	Err      error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("connect %s: %v", e.Endpoint, e.Err)
}

func (e *ConnectionError) Unwrap() error {
	return e.Err
}

// RPCError is a transport or protocol failure of a single call. A call that
// reached the server and came back with result=false is not an RPCError.
type RPCError struct {
	Op      string
	Code    codes.Code
	Message string
	err     error
}

func (e *RPCError) Error() string {
	return fmt.Sprintf("%s: rpc error: code = %s desc = %s", e.Op, e.Code, e.Message)
}

func (e *RPCError) Unwrap() error {
	return e.err
}

// GRPCStatus lets status.Code and status.FromError see through the wrapper.
func (e *RPCError) GRPCStatus() *status.Status {
	return status.New(e.Code, e.Message)
}

func rpcError(op string, err error) error {
	st := status.Convert(err)
	return &RPCError{Op: op, Code: st.Code(), Message: st.Message(), err: err}
}

// FileError reports a local file that could not be read. It is produced
// before any request is sent.
type FileError struct {
	Path string
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("read %s: %v", e.Path, e.Err)
}

func (e *FileError) Unwrap() error {
	return e.Err
}
