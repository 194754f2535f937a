// Package processor implements the per-datagram query pipeline: decode,
// resolve every question through the mailbox, build a response, encode it.
package processor

import (
	"context"
	"net"

	"github.com/kestrelnet/dnsd/internal/dns/common/log"
	"github.com/kestrelnet/dnsd/internal/dns/gateways/wire"
	"github.com/kestrelnet/dnsd/internal/dns/services/response"
)

// answerTTL is the TTL this server stamps onto every synthesized answer.
// Upstream TTLs are not propagated, since the upstream client only surfaces
// addresses, not record metadata.
const answerTTL = 60

// mailbox is the lookup capability the Processor depends on. It is
// satisfied by *resolver.Mailbox; the interface exists here so tests can
// substitute a fake without starting a worker goroutine.
type mailbox interface {
	Resolve(ctx context.Context, name string) ([]net.IP, bool)
}

// Processor turns raw received datagrams into the bytes to send back to
// the client.
type Processor struct {
	mailbox mailbox
}

// New returns a Processor that resolves questions through mailbox.
func New(mb mailbox) *Processor {
	return &Processor{mailbox: mb}
}

// Handle runs the full per-datagram pipeline against raw and returns the
// bytes to send back to the client. It returns nil when the datagram
// should be dropped without any response; the only case is a decode
// failure, which on UDP is left to the client's own retransmission logic.
func (p *Processor) Handle(ctx context.Context, raw []byte) []byte {
	_, query, err := wire.Decode(raw)
	if err != nil {
		log.Warn(map[string]any{"error": err.Error()}, "dropping undecodable datagram")
		return nil
	}

	builder := response.NewBuilder(query).
		SetAuthoritative(false).
		SetRecursionAvailable(false).
		SetZ(0)

	for _, q := range query.Questions {
		ips, ok := p.mailbox.Resolve(ctx, q.Name)
		if !ok {
			log.Warn(map[string]any{"name": q.Name}, "no answer for question")
			continue
		}
		for _, ip := range ips {
			builder = builder.WithAnAnswer(q.Name, ip, answerTTL)
		}
	}

	resp := builder.Build()

	encoded, err := wire.Encode(resp)
	if err != nil {
		log.Error(map[string]any{"error": err.Error()}, "failed to encode response, echoing raw query")
		return raw
	}
	return encoded
}
