// Package cli parses this server's command-line surface: the single
// optional upstream resolver override.
package cli

import (
	"flag"
	"fmt"
	"net"
)

// DefaultResolver is used when -r/--resolver is not supplied.
const DefaultResolver = "8.8.8.8:53"

// Args holds the parsed command-line arguments.
type Args struct {
	Resolver string
}

// Parse parses args (typically os.Args[1:]) into Args, validating the
// resolver address if one was given.
func Parse(args []string) (Args, error) {
	fs := flag.NewFlagSet("dnsd", flag.ContinueOnError)

	var resolver string
	fs.StringVar(&resolver, "r", "", "upstream DNS resolver address (ip:port)")
	fs.StringVar(&resolver, "resolver", "", "upstream DNS resolver address (ip:port)")

	if err := fs.Parse(args); err != nil {
		return Args{}, err
	}

	if resolver == "" {
		return Args{Resolver: DefaultResolver}, nil
	}

	if _, _, err := net.SplitHostPort(resolver); err != nil {
		return Args{}, fmt.Errorf("Invalid address format: '%s'. Expected format: <ip>:<port>", resolver)
	}

	return Args{Resolver: resolver}, nil
}
