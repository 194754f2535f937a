// Package resolver implements the Mailbox: a single-owner wrapper around
// the upstream client that serializes concurrent lookup requests from many
// per-datagram goroutines through one worker.
package resolver

import (
	"context"
	"net"

	"github.com/kestrelnet/dnsd/internal/dns/common/log"
)

// queueCapacity bounds how many lookup requests may be pending before
// callers block sending into the Mailbox. This is the backpressure point
// between the server's receive path and a slow upstream.
const queueCapacity = 8

// upstreamClient is the black-box name-to-addresses capability the Mailbox
// serializes access to.
type upstreamClient interface {
	Resolve(ctx context.Context, name string) ([]net.IP, error)
}

type request struct {
	ctx     context.Context
	name    string
	respond chan result
}

type result struct {
	ips []net.IP
	ok  bool
}

// Mailbox owns exactly one upstreamClient and services lookups for it one
// at a time, in the order they were received.
type Mailbox struct {
	requests chan request
}

// NewMailbox starts the Mailbox's worker goroutine bound to client and
// returns a handle to it. Copies of the returned handle share the same
// worker.
func NewMailbox(client upstreamClient) *Mailbox {
	m := &Mailbox{requests: make(chan request, queueCapacity)}
	go m.run(client)
	return m
}

func (m *Mailbox) run(client upstreamClient) {
	for req := range m.requests {
		ips, err := client.Resolve(context.WithoutCancel(req.ctx), req.name)
		if err != nil {
			log.Error(map[string]any{"name": req.name, "error": err.Error()}, "upstream lookup failed")
			req.respond <- result{ok: false}
			continue
		}
		if len(ips) == 0 {
			req.respond <- result{ok: false}
			continue
		}
		req.respond <- result{ips: ips, ok: true}
	}
}

// Resolve asks the Mailbox's worker to look up name, and waits for the
// reply. The second return value is false whenever the upstream returned
// no records or failed outright; the two cases are indistinguishable to
// the caller by design.
//
// If ctx is done before the worker replies, Resolve returns immediately
// with (nil, false); the worker's in-flight lookup still runs to
// completion and its result is discarded into the reply channel's buffer,
// since nothing is left to read it.
func (m *Mailbox) Resolve(ctx context.Context, name string) ([]net.IP, bool) {
	reply := make(chan result, 1)
	req := request{ctx: ctx, name: name, respond: reply}

	select {
	case m.requests <- req:
	case <-ctx.Done():
		return nil, false
	}

	select {
	case r := <-reply:
		return r.ips, r.ok
	case <-ctx.Done():
		return nil, false
	}
}
