package transport

import (
	"context"
	"fmt"
	"net"
	"sync"

	"github.com/kestrelnet/dnsd/internal/dns/common/log"
)

// datagramBufferSize is the maximum UDP datagram this server will accept.
// Anything larger is truncated by the OS socket layer before this code
// ever sees it, and will fail to decode; DNS over UDP without EDNS(0) is
// conventionally bounded well under this.
const datagramBufferSize = 1024

// Handler processes one decoded-then-re-encoded datagram and returns the
// bytes to send back, or nil to send nothing.
type Handler interface {
	Handle(ctx context.Context, raw []byte) []byte
}

// UDPTransport implements the server loop: bind a UDP socket, receive
// datagrams, and spawn one goroutine per datagram to run them through a
// Handler. The receive path never blocks on anything but the socket read.
type UDPTransport struct {
	addr string
	conn *net.UDPConn

	mu      sync.RWMutex
	running bool
	stopCh  chan struct{}
}

// NewUDPTransport returns a transport that will bind addr when Start is
// called.
func NewUDPTransport(addr string) *UDPTransport {
	return &UDPTransport{addr: addr, stopCh: make(chan struct{})}
}

// Start binds the UDP socket and begins the receive loop in the
// background, dispatching every datagram to handler.
func (t *UDPTransport) Start(ctx context.Context, handler Handler) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.running {
		return fmt.Errorf("UDP transport already running")
	}

	udpAddr, err := net.ResolveUDPAddr("udp", t.addr)
	if err != nil {
		return fmt.Errorf("failed to resolve UDP address %s: %w", t.addr, err)
	}

	conn, err := net.ListenUDP("udp", udpAddr)
	if err != nil {
		return fmt.Errorf("failed to bind UDP socket on %s: %w", t.addr, err)
	}

	t.conn = conn
	t.running = true

	log.Info(map[string]any{"transport": "udp", "address": t.addr}, "DNS transport started")

	go t.listenLoop(ctx, handler)

	return nil
}

// Stop closes the UDP socket, unblocking the receive loop.
func (t *UDPTransport) Stop() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.running {
		return nil
	}

	close(t.stopCh)

	var closeErr error
	if t.conn != nil {
		closeErr = t.conn.Close()
		if closeErr != nil {
			log.Warn(map[string]any{"error": closeErr.Error()}, "error closing UDP connection")
		}
	}

	t.running = false
	log.Info(map[string]any{"transport": "udp", "address": t.addr}, "DNS transport stopped")

	return closeErr
}

// Address returns the network address the transport is bound to.
func (t *UDPTransport) Address() string {
	return t.addr
}

func (t *UDPTransport) listenLoop(ctx context.Context, handler Handler) {
	buffer := make([]byte, datagramBufferSize)

	for {
		select {
		case <-ctx.Done():
			log.Debug(nil, "UDP transport stopping due to context cancellation")
			return
		case <-t.stopCh:
			log.Debug(nil, "UDP transport stopping due to stop signal")
			return
		default:
			n, clientAddr, err := t.conn.ReadFromUDP(buffer)
			if err != nil {
				t.mu.RLock()
				running := t.running
				t.mu.RUnlock()

				if !running {
					return
				}

				log.Warn(map[string]any{"error": err.Error()}, "failed to read UDP packet")
				continue
			}

			datagram := make([]byte, n)
			copy(datagram, buffer[:n])
			go t.handleDatagram(ctx, datagram, clientAddr, handler)
		}
	}
}

func (t *UDPTransport) handleDatagram(ctx context.Context, data []byte, clientAddr *net.UDPAddr, handler Handler) {
	response := handler.Handle(ctx, data)
	if response == nil {
		return
	}

	if _, err := t.conn.WriteToUDP(response, clientAddr); err != nil {
		log.Error(map[string]any{
			"client": clientAddr.String(),
			"error":  err.Error(),
		}, "failed to send DNS response")
	}
}
