// Package tgt is the adapter to the NVMe-oF target engine: a single
// blocking connection to a local line-delimited JSON-RPC socket.
// Requests are serialized through an internal queue — one outstanding
// call at a time, matched by monotonically increasing request id —
// because the engine is single-threaded for command intake (no
// connection pooling).
package tgt

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"net"
	"sync"
	"sync/atomic"
	"time"

	"github.com/puzpuzpuz/xsync/v3"

	"github.com/nvmeof/gateway/pkg/gwerr"
)

// Config configures the adapter.
type Config struct {
	Socket       string        // unix socket path, e.g. /var/tmp/spdk.sock
	Timeout      time.Duration // per-call default, spec default 60s
	ConnRetries  int           // bounded reconnect attempts, spec default 3
}

func (c Config) withDefaults() Config {
	if c.Timeout == 0 {
		c.Timeout = 60 * time.Second
	}
	if c.ConnRetries == 0 {
		c.ConnRetries = 3
	}
	return c
}

type pendingCall struct {
	resp chan rpcResponse
}

type rpcRequest struct {
	JSONRPC string      `json:"jsonrpc"`
	ID      uint64      `json:"id"`
	Method  string      `json:"method"`
	Params  interface{} `json:"params,omitempty"`
}

type rpcResponse struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      uint64          `json:"id"`
	Result  json.RawMessage `json:"result,omitempty"`
	Error   *rpcError       `json:"error,omitempty"`
}

type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// errnoToKind maps the SPDK JSON-RPC error codes, which are raw Linux
// errno values, to the closest canonical gwerr.Kind. Anything not
// listed here is a generic engine failure.
var errnoToKind = map[int]gwerr.Kind{
	2:  gwerr.NotFound,        // ENOENT
	17: gwerr.AlreadyExists,   // EEXIST
	22: gwerr.InvalidArgument, // EINVAL
	16: gwerr.Aborted,         // EBUSY
}

func kindForEngineError(e *rpcError) gwerr.Kind {
	if kind, ok := errnoToKind[e.Code]; ok {
		return kind
	}
	return gwerr.Internal
}

// Adapter owns the socket and the single in-flight request queue. All
// calls funnel through Call, which holds writeMu from sending the
// request until its response, timeout or cancellation, so exactly one
// request is outstanding on the wire at a time.
type Adapter struct {
	cfg Config

	connMu sync.Mutex
	conn   net.Conn
	reader *bufio.Reader

	writeMu sync.Mutex // serializes calls: one outstanding request at a time

	nextID  uint64
	pending *xsync.MapOf[uint64, *pendingCall]

	closed atomic.Bool
}

// Dial connects to cfg.Socket and starts the response-reading loop.
func Dial(cfg Config) (*Adapter, error) {
	cfg = cfg.withDefaults()
	a := &Adapter{
		cfg:     cfg,
		pending: xsync.NewMapOf[uint64, *pendingCall](),
	}
	if err := a.connect(); err != nil {
		return nil, err
	}
	go a.readLoop()
	return a, nil
}

func (a *Adapter) connect() error {
	var lastErr error
	for attempt := 0; attempt <= a.cfg.ConnRetries; attempt++ {
		conn, err := net.Dial("unix", a.cfg.Socket)
		if err == nil {
			a.connMu.Lock()
			a.conn = conn
			a.reader = bufio.NewReader(conn)
			a.connMu.Unlock()
			return nil
		}
		lastErr = err
		if attempt < a.cfg.ConnRetries {
			time.Sleep(time.Duration(attempt+1) * 100 * time.Millisecond)
		}
	}
	return gwerr.Wrap(gwerr.Unavailable, lastErr, "tgt: engine unreachable at %s after %d attempts", a.cfg.Socket, a.cfg.ConnRetries+1)
}

// Call issues method with params and unmarshals the result into out
// (which may be nil). It blocks until the engine responds, the
// per-call timeout elapses, or ctx is done.
func (a *Adapter) Call(ctx context.Context, method string, params, out interface{}) error {
	if a.closed.Load() {
		return gwerr.New(gwerr.Unavailable, "tgt: adapter closed")
	}

	id := atomic.AddUint64(&a.nextID, 1)
	call := &pendingCall{resp: make(chan rpcResponse, 1)}
	a.pending.Store(id, call)
	defer a.pending.Delete(id)

	req := rpcRequest{JSONRPC: "2.0", ID: id, Method: method, Params: params}
	line, err := json.Marshal(req)
	if err != nil {
		return gwerr.Wrap(gwerr.Internal, err, "tgt: encoding request")
	}
	line = append(line, '\n')

	a.writeMu.Lock()
	defer a.writeMu.Unlock()
	err = a.write(line)
	if err != nil {
		if reconnErr := a.connect(); reconnErr != nil {
			return reconnErr
		}
		err = a.write(line)
		if err != nil {
			return gwerr.Wrap(gwerr.Unavailable, err, "tgt: writing request after reconnect")
		}
	}

	timeout := a.cfg.Timeout
	deadline, hasDeadline := ctx.Deadline()
	if hasDeadline {
		if remaining := time.Until(deadline); remaining < timeout {
			timeout = remaining
		}
	}

	select {
	case resp := <-call.resp:
		if resp.Error != nil {
			return gwerr.New(kindForEngineError(resp.Error), "tgt: %s failed", method).
				WithEngineDetail(fmt.Sprintf("code=%d message=%s", resp.Error.Code, resp.Error.Message))
		}
		if out != nil && len(resp.Result) > 0 {
			if err := json.Unmarshal(resp.Result, out); err != nil {
				return gwerr.Wrap(gwerr.Internal, err, "tgt: decoding %s result", method)
			}
		}
		return nil
	case <-time.After(timeout):
		return gwerr.New(gwerr.DeadlineExceeded, "tgt: %s timed out after %s", method, timeout)
	case <-ctx.Done():
		return gwerr.Wrap(gwerr.DeadlineExceeded, ctx.Err(), "tgt: %s canceled", method)
	}
}

func (a *Adapter) write(line []byte) error {
	a.connMu.Lock()
	conn := a.conn
	a.connMu.Unlock()
	if conn == nil {
		return fmt.Errorf("tgt: no connection")
	}
	_, err := conn.Write(line)
	return err
}

func (a *Adapter) readLoop() {
	for !a.closed.Load() {
		a.connMu.Lock()
		reader := a.reader
		a.connMu.Unlock()
		if reader == nil {
			time.Sleep(100 * time.Millisecond)
			continue
		}

		line, err := reader.ReadBytes('\n')
		if err != nil {
			if a.closed.Load() {
				return
			}
			if reconnErr := a.connect(); reconnErr != nil {
				time.Sleep(time.Second)
			}
			continue
		}

		var resp rpcResponse
		if err := json.Unmarshal(line, &resp); err != nil {
			continue
		}
		if call, ok := a.pending.Load(resp.ID); ok {
			call.resp <- resp
		}
	}
}

// Close shuts the socket down. Calls made after Close return
// Unavailable; a call already waiting for its response ends when its
// timeout elapses or its context is done.
func (a *Adapter) Close() error {
	a.closed.Store(true)
	a.connMu.Lock()
	defer a.connMu.Unlock()
	if a.conn != nil {
		return a.conn.Close()
	}
	return nil
}
