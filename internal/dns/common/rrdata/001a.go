package rrdata

import (
	"fmt"
	"net"
)

// EncodeA returns the 4-byte wire payload for an A record.
func EncodeA(ip net.IP) ([]byte, error) {
	v4 := ip.To4()
	if v4 == nil {
		return nil, fmt.Errorf("rrdata: %v is not an IPv4 address", ip)
	}
	return v4, nil
}
