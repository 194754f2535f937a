// Command dnsd runs a recursive-style UDP DNS server: it answers client
// queries by resolving each question through a single configured upstream
// server and synthesizing a response packet.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/kestrelnet/dnsd/internal/dns/cli"
	"github.com/kestrelnet/dnsd/internal/dns/common/log"
	"github.com/kestrelnet/dnsd/internal/dns/config"
	"github.com/kestrelnet/dnsd/internal/dns/gateways/transport"
	"github.com/kestrelnet/dnsd/internal/dns/gateways/upstream"
	"github.com/kestrelnet/dnsd/internal/dns/services/processor"
	"github.com/kestrelnet/dnsd/internal/dns/services/resolver"
)

// Application wires together this server's components and owns their
// lifecycle.
type Application struct {
	config    *config.AppConfig
	transport *transport.UDPTransport
	processor *processor.Processor
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	if err := log.Configure(cfg.Env, cfg.LogLevel); err != nil {
		fmt.Fprintf(os.Stderr, "failed to configure logging: %v\n", err)
		os.Exit(1)
	}

	args, err := cli.Parse(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	log.Info(map[string]any{
		"env":      cfg.Env,
		"port":     cfg.Port,
		"resolver": args.Resolver,
	}, "starting dns server")

	app := buildApplication(cfg, args)

	ctx, cancel := context.WithCancel(context.Background())
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		log.Info(nil, "shutdown signal received")
		cancel()
	}()

	if err := app.Run(ctx); err != nil {
		log.Error(map[string]any{"error": err.Error()}, "server exited with error")
		os.Exit(1)
	}
}

// buildApplication constructs an Application from cfg and args without
// starting anything, so tests can exercise the wiring without binding a
// socket.
func buildApplication(cfg *config.AppConfig, args cli.Args) *Application {
	client := upstream.NewClient(args.Resolver)
	mailbox := resolver.NewMailbox(client)
	proc := processor.New(mailbox)
	addr := fmt.Sprintf("0.0.0.0:%d", cfg.Port)

	return &Application{
		config:    cfg,
		transport: transport.NewUDPTransport(addr),
		processor: proc,
	}
}

// Run starts the transport and blocks until ctx is cancelled, then shuts
// the transport down.
func (a *Application) Run(ctx context.Context) error {
	if err := a.transport.Start(ctx, a.processor); err != nil {
		return err
	}

	<-ctx.Done()

	return a.transport.Stop()
}
