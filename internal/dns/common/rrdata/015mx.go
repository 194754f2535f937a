package rrdata

// EncodeMX returns the wire payload for an MX record: a 16-bit big-endian
// preference followed by the label-encoded exchange host name.
func EncodeMX(preference uint16, exchange string) ([]byte, error) {
	name, err := EncodeDomainName(exchange)
	if err != nil {
		return nil, err
	}
	buf := make([]byte, 2+len(name))
	buf[0] = byte(preference >> 8)
	buf[1] = byte(preference)
	copy(buf[2:], name)
	return buf, nil
}
