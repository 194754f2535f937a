package wire

import (
	"bytes"
	"strings"
)

// maxPointerJumps bounds the number of compression-pointer hops a single
// name decode may follow. Without this cap, a crafted packet whose pointers
// form a cycle would send decodeName into unbounded recursion.
const maxPointerJumps = 128

const maxLabelLength = 63

// decodeName reads a (possibly compressed) domain name starting at offset
// within the full packet buffer. It returns the joined, dot-separated name
// and the offset immediately following the name as it appears at the
// original call site: past the terminator, or past the two bytes of the
// first compression pointer encountered, never past a pointer's jump
// target.
func decodeName(packet []byte, offset int) (name string, next int, err error) {
	var labels []string
	pos := offset
	jumps := 0
	consumed := -1

	for {
		if pos >= len(packet) {
			return "", 0, &IncompletePacketError{Needed: pos + 1, Available: len(packet)}
		}

		length := packet[pos]

		switch {
		case length == 0:
			pos++
			if consumed == -1 {
				consumed = pos
			}
			return strings.Join(labels, "."), consumed, nil

		case length&0xC0 == 0xC0:
			if pos+1 >= len(packet) {
				return "", 0, &IncompletePacketError{Needed: pos + 2, Available: len(packet)}
			}
			if consumed == -1 {
				consumed = pos + 2
			}
			jumps++
			if jumps > maxPointerJumps {
				return "", 0, &ParseFailureError{Detail: "compression pointer chain exceeded maximum jumps"}
			}
			target := int(uint16(length&0x3F)<<8 | uint16(packet[pos+1]))
			if target >= len(packet) {
				return "", 0, &ParseFailureError{Detail: "compression pointer target out of range"}
			}
			pos = target

		case length&0xC0 == 0x00:
			labelLen := int(length)
			pos++
			if pos+labelLen > len(packet) {
				return "", 0, &IncompletePacketError{Needed: pos + labelLen, Available: len(packet)}
			}
			labels = append(labels, string(packet[pos:pos+labelLen]))
			pos += labelLen

		default:
			return "", 0, &ParseFailureError{Detail: "reserved label length prefix"}
		}
	}
}

// encodeName writes name as a sequence of length-prefixed labels terminated
// by a zero byte. No compression is ever emitted. A trailing dot, or any
// other empty label produced by splitting on '.', is silently skipped so
// that "example.com." and "example.com" encode identically.
func encodeName(name string) ([]byte, error) {
	var buf bytes.Buffer
	for _, label := range strings.Split(name, ".") {
		if label == "" {
			continue
		}
		if len(label) > maxLabelLength {
			return nil, &InvalidDomainNameError{Name: name}
		}
		buf.WriteByte(byte(len(label)))
		buf.WriteString(label)
	}
	buf.WriteByte(0)
	return buf.Bytes(), nil
}
