package rrdata

import (
	"fmt"
	"net"
)

// EncodeAAAA returns the 16-byte wire payload for an AAAA record.
func EncodeAAAA(ip net.IP) ([]byte, error) {
	v6 := ip.To16()
	if v6 == nil || ip.To4() != nil {
		return nil, fmt.Errorf("rrdata: %v is not an IPv6 address", ip)
	}
	return v6, nil
}
