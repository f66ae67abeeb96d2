// Copyright 2024 the u-root Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fpga

var (
	UploadChunks = uploadChunks
	UploadBytes  = uploadBytes
)
