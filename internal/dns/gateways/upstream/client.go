// Package upstream implements the black-box name-to-addresses lookup this
// server delegates recursive resolution to. It deliberately does not
// reimplement wire-level DNS querying a second time: that is exactly the
// job the gateways/wire codec already does for the server-facing side of
// this service, and hand-rolling a parallel client-facing implementation
// would duplicate it for no benefit. Instead it configures the standard
// library's resolver to dial the one upstream server this process was
// told about.
package upstream

import (
	"context"
	"net"
	"time"
)

const lookupTimeout = 5 * time.Second

// Client resolves a domain name to its addresses by asking a single
// configured upstream DNS server.
type Client struct {
	resolver *net.Resolver
}

// NewClient returns a Client that sends every lookup to server
// ("host:port").
func NewClient(server string) *Client {
	dialer := &net.Dialer{}
	resolver := &net.Resolver{
		PreferGo: true,
		Dial: func(ctx context.Context, network, _ string) (net.Conn, error) {
			return dialer.DialContext(ctx, network, server)
		},
	}
	return &Client{resolver: resolver}
}

// Resolve looks up name, returning every address (IPv4 and IPv6) the
// upstream server reports.
func (c *Client) Resolve(ctx context.Context, name string) ([]net.IP, error) {
	ctx, cancel := context.WithTimeout(ctx, lookupTimeout)
	defer cancel()

	addrs, err := c.resolver.LookupIPAddr(ctx, name)
	if err != nil {
		return nil, err
	}

	ips := make([]net.IP, 0, len(addrs))
	for _, a := range addrs {
		ips = append(ips, a.IP)
	}
	return ips, nil
}
