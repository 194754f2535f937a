package domain

import "fmt"

// ResourceRecord is a single answer in a DNS message's answer section.
//
// Data length is never stored independently; it is always derived from
// len(Data) both when encoding to wire bytes and when reasoning about the
// record in memory.
type ResourceRecord struct {
	Name  string
	Type  RRType
	Class RRClass
	TTL   uint32
	Data  []byte
}

// NewResourceRecord constructs a ResourceRecord, validating the name and
// copying the payload so later mutation of the caller's slice can't
// retroactively change an already-built record.
func NewResourceRecord(name string, rtype RRType, rclass RRClass, ttl uint32, data []byte) (ResourceRecord, error) {
	if name == "" {
		return ResourceRecord{}, fmt.Errorf("resource record name must not be empty")
	}
	owned := make([]byte, len(data))
	copy(owned, data)
	return ResourceRecord{Name: name, Type: rtype, Class: rclass, TTL: ttl, Data: owned}, nil
}

// RDLength returns the wire-format data-length field, always computed from
// the payload rather than cached.
func (r ResourceRecord) RDLength() uint16 {
	return uint16(len(r.Data))
}
