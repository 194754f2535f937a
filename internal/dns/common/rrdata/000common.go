// Package rrdata encodes the typed payload of a resource record, one file
// per record type, mirroring the DNS RFC's own type-by-type organization.
// Each encoder takes a typed Go value rather than a zone-file text
// representation: the caller (the response builder) already knows whether
// it has a net.IP, a CNAME target, or raw text, so there is no text-parsing
// step to get wrong here.
package rrdata

import (
	"bytes"
	"strings"

	"github.com/kestrelnet/dnsd/internal/dns/gateways/wire"
)

const maxLabelLength = 63

// EncodeDomainName writes name as a sequence of length-prefixed labels
// terminated by a zero byte, with no compression. It is shared by every
// encoder in this package that embeds a domain name in its payload (CNAME,
// MX).
func EncodeDomainName(name string) ([]byte, error) {
	var buf bytes.Buffer
	for _, label := range strings.Split(name, ".") {
		if label == "" {
			continue
		}
		if len(label) > maxLabelLength {
			return nil, &wire.InvalidDomainNameError{Name: name}
		}
		buf.WriteByte(byte(len(label)))
		buf.WriteString(label)
	}
	buf.WriteByte(0)
	return buf.Bytes(), nil
}
