package rrdata

import "fmt"

// EncodeTXT returns the wire payload for a TXT record: a single
// length-prefixed character-string. The wire format bounds one
// character-string to 255 bytes; longer text is rejected rather than split
// across multiple character-strings.
func EncodeTXT(text string) ([]byte, error) {
	if len(text) > 255 {
		return nil, fmt.Errorf("rrdata: TXT payload of %d bytes exceeds 255-byte character-string limit", len(text))
	}
	buf := make([]byte, 1+len(text))
	buf[0] = byte(len(text))
	copy(buf[1:], text)
	return buf, nil
}
