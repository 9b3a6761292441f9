// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package handler - HTTP endpoints in front of the JSON RPC server
package handler

import (
	"encoding/json"
	"io"
	"net"
	"net/http"
	"net/rpc"
	"net/rpc/jsonrpc"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/sbtregistry/counter"
	"github.com/bitmark-inc/sbtregistry/mode"
)

// access control keys
const (
	AllowDetails = "details"
	AllowMetrics = "metrics"
)

// Handler - the HTTP endpoints
type Handler interface {
	RPC(http.ResponseWriter, *http.Request)
	Details(http.ResponseWriter, *http.Request)
	Metrics(http.ResponseWriter, *http.Request)
	Root(http.ResponseWriter, *http.Request)
	SetAllow(map[string][]*net.IPNet)
}

// InternalConnection - type to allow rpc system to interface to http request
type InternalConnection struct {
	in  io.Reader
	out io.Writer
}

func (c *InternalConnection) Read(p []byte) (n int, err error) {
	return c.in.Read(p)
}

func (c *InternalConnection) Write(d []byte) (n int, err error) {
	return c.out.Write(d)
}

// Close - nothing to close, the http server owns the streams
func (c *InternalConnection) Close() error {
	return nil
}

type handler struct {
	log                *logger.L
	server             *rpc.Server
	start              time.Time
	version            string
	allow              map[string][]*net.IPNet
	maximumConnections uint64
	connections        counter.Counter
	requests           *prometheus.CounterVec
	metrics            http.Handler
}

// New - create the HTTP handler
//
// collectors are exposed on the metrics endpoint together with the
// handler's own request counters
func New(
	log *logger.L,
	server *rpc.Server,
	start time.Time,
	version string,
	maximumConnections uint64,
	collectors ...prometheus.Collector,
) Handler {
	h := &handler{
		log:                log,
		server:             server,
		start:              start,
		version:            version,
		allow:              make(map[string][]*net.IPNet),
		maximumConnections: maximumConnections,
		requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "sbt",
				Subsystem: "http",
				Name:      "requests_total",
				Help:      "HTTP requests by endpoint and status",
			},
			[]string{"endpoint", "status"},
		),
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(h.requests)
	registry.MustRegister(prometheus.NewGaugeFunc(
		prometheus.GaugeOpts{
			Namespace: "sbt",
			Subsystem: "http",
			Name:      "connections",
			Help:      "requests currently being served",
		},
		func() float64 { return float64(h.connections.Uint64()) },
	))
	for _, c := range collectors {
		registry.MustRegister(c)
	}
	h.metrics = promhttp.HandlerFor(registry, promhttp.HandlerOpts{})

	return h
}

// SetAllow - replace the access control lists
func (h *handler) SetAllow(allow map[string][]*net.IPNet) {
	h.allow = allow
}

// Root - this matches anything not matched and returns error
func (h *handler) Root(w http.ResponseWriter, _ *http.Request) {
	h.sendError(w, "root", "not found", http.StatusNotFound)
}

// RPC - performs a call to any normal RPC
func (h *handler) RPC(w http.ResponseWriter, r *http.Request) {
	const endpoint = "rpc"

	if http.MethodPost != r.Method {
		h.sendError(w, endpoint, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if !h.connections.IncrementBelow(h.maximumConnections) {
		h.sendError(w, endpoint, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
		return
	}
	defer h.connections.Decrement()

	serverCodec := jsonrpc.NewServerCodec(&InternalConnection{in: r.Body, out: w})
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Content-Type-Options", "nosniff")

	err := h.server.ServeRequest(serverCodec)
	if nil != err {
		h.log.Debugf("rpc serve error: %s", err)
		h.sendError(w, endpoint, "internal server error", http.StatusInternalServerError)
		return
	}
	h.requests.WithLabelValues(endpoint, "200").Inc()
}

// DetailsReply - the details endpoint response
type DetailsReply struct {
	Mode    string `json:"mode"`
	RPCs    uint64 `json:"rpcs"`
	Version string `json:"version"`
	Uptime  string `json:"uptime"`
}

// Details - the same response as the Node.Info RPC
func (h *handler) Details(w http.ResponseWriter, r *http.Request) {
	const endpoint = "details"

	if !h.admit(w, r, endpoint, AllowDetails) {
		return
	}
	defer h.connections.Decrement()

	reply := DetailsReply{
		Mode:    mode.String(),
		RPCs:    h.connections.Uint64(),
		Version: h.version,
		Uptime:  time.Since(h.start).String(),
	}

	h.sendReply(w, endpoint, reply)
}

// Metrics - prometheus exposition
func (h *handler) Metrics(w http.ResponseWriter, r *http.Request) {
	const endpoint = "metrics"

	if !h.admit(w, r, endpoint, AllowMetrics) {
		return
	}
	defer h.connections.Decrement()

	h.requests.WithLabelValues(endpoint, "200").Inc()
	h.metrics.ServeHTTP(w, r)
}

// checks method, access list and connection limit for the GET
// endpoints, on success the caller must decrement the connections
func (h *handler) admit(w http.ResponseWriter, r *http.Request, endpoint string, key string) bool {
	if http.MethodGet != r.Method {
		h.sendError(w, endpoint, "method not allowed", http.StatusMethodNotAllowed)
		return false
	}

	if !h.allowed(key, r.RemoteAddr) {
		h.log.Warnf("Deny access: %q", r.RemoteAddr)
		h.sendError(w, endpoint, "forbidden", http.StatusForbidden)
		return false
	}

	if !h.connections.IncrementBelow(h.maximumConnections) {
		h.sendError(w, endpoint, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
		return false
	}
	return true
}

func (h *handler) allowed(key string, remoteAddr string) bool {
	last := strings.LastIndex(remoteAddr, ":")
	if last < 0 {
		return false
	}
	host := strings.Trim(remoteAddr[:last], "[]")
	ip := net.ParseIP(host)
	if nil == ip {
		return false
	}
	for _, cidr := range h.allow[key] {
		if cidr.Contains(ip) {
			return true
		}
	}
	return false
}

// send an JSON encoded reply
func (h *handler) sendReply(w http.ResponseWriter, endpoint string, data interface{}) {
	text, err := json.Marshal(data)
	if nil != err {
		h.sendError(w, endpoint, "internal server error", http.StatusInternalServerError)
		return
	}

	h.requests.WithLabelValues(endpoint, "200").Inc()

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(text)
}

// to compose JSON error messages
type eType struct {
	Code  int    `json:"code"`
	Error string `json:"error"`
}

// output an error with a JSON body
func (h *handler) sendError(w http.ResponseWriter, endpoint string, message string, code int) {
	h.requests.WithLabelValues(endpoint, strconv.Itoa(code)).Inc()

	text, err := json.Marshal(eType{
		Code:  code,
		Error: message,
	})
	if nil != err {
		// manually composed error just incase JSON fails
		http.Error(w, `{"code":500,"error":"Internal Server Error"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(code)
	_, _ = w.Write(text)
}
