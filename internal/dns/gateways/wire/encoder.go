package wire

import (
	"bytes"
	"encoding/binary"

	"github.com/kestrelnet/dnsd/internal/dns/domain"
)

// Encode serializes pkt into wire bytes. The header's QDCount and ANCount
// fields are always recomputed from len(pkt.Questions) and len(pkt.Answers)
// before being written; whatever values pkt.Header carries are discarded.
// This guarantees the bytes this function emits can never declare a section
// size that disagrees with what was actually written. No name compression
// is ever emitted.
func Encode(pkt domain.Packet) ([]byte, error) {
	var buf bytes.Buffer

	encodeHeader(&buf, pkt.Header, len(pkt.Questions), len(pkt.Answers))

	for _, q := range pkt.Questions {
		nameBytes, err := encodeName(q.Name)
		if err != nil {
			return nil, err
		}
		buf.Write(nameBytes)
		writeUint16(&buf, uint16(q.Type))
		writeUint16(&buf, uint16(q.Class))
	}

	for _, rr := range pkt.Answers {
		nameBytes, err := encodeName(rr.Name)
		if err != nil {
			return nil, err
		}
		buf.Write(nameBytes)
		writeUint16(&buf, uint16(rr.Type))
		writeUint16(&buf, uint16(rr.Class))
		writeUint32(&buf, rr.TTL)
		writeUint16(&buf, rr.RDLength())
		buf.Write(rr.Data)
	}

	return buf.Bytes(), nil
}

func encodeHeader(buf *bytes.Buffer, h domain.Header, qdcount, ancount int) {
	writeUint16(buf, h.ID)

	var flags uint16
	if h.QR {
		flags |= 0x8000
	}
	flags |= uint16(h.Opcode&0x0F) << 11
	if h.AA {
		flags |= 0x0400
	}
	if h.TC {
		flags |= 0x0200
	}
	if h.RD {
		flags |= 0x0100
	}
	if h.RA {
		flags |= 0x0080
	}
	flags |= uint16(h.Z&0x07) << 4
	flags |= uint16(h.RCode) & 0x0F
	writeUint16(buf, flags)

	writeUint16(buf, uint16(qdcount))
	writeUint16(buf, uint16(ancount))
	writeUint16(buf, h.NSCount)
	writeUint16(buf, h.ARCount)
}

func writeUint16(buf *bytes.Buffer, v uint16) {
	var b [2]byte
	binary.BigEndian.PutUint16(b[:], v)
	buf.Write(b[:])
}

func writeUint32(buf *bytes.Buffer, v uint32) {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], v)
	buf.Write(b[:])
}
