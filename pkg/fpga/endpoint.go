// Copyright 2024 the u-root Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fpga

import (
	"crypto/tls"
	"errors"
	"fmt"
	"net"
	"net/url"
	"strings"

	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/credentials/insecure"
)

// parseEndpoint turns an endpoint into a gRPC target and the transport
// credentials it implies. Accepted forms:
//
//	host:port, [::1]:8051        plaintext
//	http://host[:port]           plaintext, port 80 by default
//	https://host[:port]          TLS with the system roots, port 443 by default
//	dns:///..., unix:..., passthrough:///...   handed to gRPC unchanged, plaintext
func parseEndpoint(endpoint string) (string, credentials.TransportCredentials, error) {
	if endpoint == "" {
		return "", nil, errors.New("empty endpoint")
	}
	if strings.HasPrefix(endpoint, "unix:") {
		return endpoint, insecure.NewCredentials(), nil
	}
	if !strings.Contains(endpoint, "://") {
		if _, _, err := net.SplitHostPort(endpoint); err != nil {
			return "", nil, err
		}
		return endpoint, insecure.NewCredentials(), nil
	}

	u, err := url.Parse(endpoint)
	if err != nil {
		return "", nil, err
	}
	switch u.Scheme {
	case "http", "https":
	default:
		return endpoint, insecure.NewCredentials(), nil
	}
	if u.Hostname() == "" {
		return "", nil, fmt.Errorf("no host in %q", endpoint)
	}
	if u.Path != "" && u.Path != "/" {
		return "", nil, fmt.Errorf("unexpected path %q in endpoint", u.Path)
	}
	port := u.Port()
	if u.Scheme == "https" {
		if port == "" {
			port = "443"
		}
		creds := credentials.NewTLS(&tls.Config{ServerName: u.Hostname()})
		return net.JoinHostPort(u.Hostname(), port), creds, nil
	}
	if port == "" {
		port = "80"
	}
	return net.JoinHostPort(u.Hostname(), port), insecure.NewCredentials(), nil
}
