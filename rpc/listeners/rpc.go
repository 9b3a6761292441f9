// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package listeners

import (
	"crypto/tls"
	"net"
	"net/rpc"
	"net/rpc/jsonrpc"
	"strings"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/sbtregistry/counter"
	"github.com/bitmark-inc/sbtregistry/fault"
)

const (
	logName      = "client_rpc"
	minBandwidth = 1000000 // 1Mbps
)

// a validated listen entry
type address struct {
	network  string // tcp, tcp4 or tcp6
	hostPort string
}

type rpcListener struct {
	log            *logger.L
	count          *counter.Counter
	server         *rpc.Server
	maxConnections uint64
	tlsConfig      *tls.Config
	addresses      []address
}

// Serve - start one accept loop per address
func (r *rpcListener) Serve() error {
	for _, a := range r.addresses {
		r.log.Infof("starting RPC server: %s  (%s)", a.hostPort, a.network)
		l, err := tls.Listen(a.network, a.hostPort, r.tlsConfig)
		if err != nil {
			r.log.Errorf("rpc server listen error: %s", err)
			return err
		}
		go r.accept(l)
	}
	return nil
}

// each connection gets its own JSON codec, connections beyond the
// limit are closed without a reply
func (r *rpcListener) accept(l net.Listener) {
	defer l.Close()
	for {
		conn, err := l.Accept()
		if err != nil {
			r.log.Errorf("rpc.server terminated: accept error: %s", err)
			return
		}
		if !r.count.IncrementBelow(r.maxConnections) {
			r.log.Warnf("rejected: %s  connections: %d", conn.RemoteAddr(), r.count.Uint64())
			_ = conn.Close()
			continue
		}
		go func(conn net.Conn) {
			defer r.count.Decrement()
			defer conn.Close()
			r.server.ServeCodec(jsonrpc.NewServerCodec(conn))
		}(conn)
	}
}

// RPCConfiguration - configuration file data for RPC setup
type RPCConfiguration struct {
	MaximumConnections uint64   `gluamapper:"maximum_connections" json:"maximum_connections"`
	Bandwidth          float64  `gluamapper:"bandwidth" json:"bandwidth"`
	Listen             []string `gluamapper:"listen" json:"listen"`
	Certificate        string   `gluamapper:"certificate" json:"certificate"`
	PrivateKey         string   `gluamapper:"private_key" json:"private_key"`
}

// NewRPC - validate the configuration and create a JSON RPC listener
func NewRPC(
	configuration *RPCConfiguration,
	log *logger.L,
	count *counter.Counter,
	server *rpc.Server,
	tlsConfig *tls.Config,
	certificateFingerprint [32]byte,
) (Listener, error) {
	if configuration.MaximumConnections < minConnectionCount {
		log.Errorf("invalid %s maximum connection limit: %d", logName, configuration.MaximumConnections)
		return nil, fault.MissingParameters
	}
	if configuration.Bandwidth <= minBandwidth {
		log.Errorf("invalid %s bandwidth: %f bps < 1Mbps", logName, configuration.Bandwidth)
		return nil, fault.MissingParameters
	}
	if 0 == len(configuration.Listen) {
		log.Errorf("missing %s listen", logName)
		return nil, fault.MissingParameters
	}

	log.Infof("%s: SHA3-256 fingerprint: %x", logName, certificateFingerprint)

	addresses := make([]address, 0, len(configuration.Listen))
	for _, listen := range configuration.Listen {
		a, err := parseListenAddress(listen)
		if nil != err {
			log.Errorf("rpc server listen: %q  error: %s", listen, err)
			return nil, err
		}
		addresses = append(addresses, a)
	}

	return &rpcListener{
		log:            log,
		count:          count,
		server:         server,
		maxConnections: configuration.MaximumConnections,
		tlsConfig:      tlsConfig,
		addresses:      addresses,
	}, nil
}

// "*:PORT" listens on both IPv4 and IPv6, "[IPv6]:PORT" and
// "IPv4:PORT" on one family only
func parseListenAddress(listen string) (address, error) {
	host, port, err := net.SplitHostPort(strings.TrimSpace(listen))
	if nil != err || "" == port {
		return address{}, fault.InvalidIpAddress
	}

	if "*" == host {
		return address{network: "tcp", hostPort: net.JoinHostPort("::", port)}, nil
	}

	ip := net.ParseIP(host)
	switch {
	case nil == ip:
		return address{}, fault.InvalidIpAddress
	case nil != ip.To4() && !strings.Contains(host, ":"):
		return address{network: "tcp4", hostPort: net.JoinHostPort(host, port)}, nil
	default:
		return address{network: "tcp6", hostPort: net.JoinHostPort(host, port)}, nil
	}
}
