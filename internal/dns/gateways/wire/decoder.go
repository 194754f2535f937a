// Package wire implements the RFC 1035 byte-level codec: the Decoder turns
// inbound UDP datagrams into domain.Packet values, and the Encoder turns
// domain.Packet values back into wire bytes.
package wire

import (
	"encoding/binary"

	"github.com/kestrelnet/dnsd/internal/dns/domain"
)

const headerSize = 12

// Decode parses the leading DNS message out of data. On success it returns
// the number of bytes consumed and the decoded packet. Answers are never
// populated by Decode; this codec only parses the header and question
// section. Answer records (when this server acts as a client of an
// upstream) are not needed because resolution is delegated to a separate
// upstream client rather than parsed from a second wire round trip here.
//
// Decode returns *IncompletePacketError when data is too short to contain
// a full message, and *ParseFailureError for any other malformed input.
func Decode(data []byte) (consumed int, pkt domain.Packet, err error) {
	if len(data) < headerSize {
		return 0, domain.Packet{}, &IncompletePacketError{Needed: headerSize, Available: len(data)}
	}

	header := decodeHeader(data)

	pos := headerSize
	questions := make([]domain.Question, 0, header.QDCount)
	for i := uint16(0); i < header.QDCount; i++ {
		name, next, err := decodeName(data, pos)
		if err != nil {
			return 0, domain.Packet{}, err
		}
		pos = next
		if pos+4 > len(data) {
			return 0, domain.Packet{}, &IncompletePacketError{Needed: pos + 4, Available: len(data)}
		}
		qtype := domain.RRType(binary.BigEndian.Uint16(data[pos : pos+2]))
		qclass := domain.RRClass(binary.BigEndian.Uint16(data[pos+2 : pos+4]))
		pos += 4

		questions = append(questions, domain.Question{Name: name, Type: qtype, Class: qclass})
	}

	return pos, domain.Packet{Header: header, Questions: questions, Answers: nil}, nil
}

func decodeHeader(data []byte) domain.Header {
	id := binary.BigEndian.Uint16(data[0:2])
	flags := binary.BigEndian.Uint16(data[2:4])

	return domain.Header{
		ID:      id,
		QR:      flags&0x8000 != 0,
		Opcode:  uint8(flags & 0x7800 >> 11),
		AA:      flags&0x0400 != 0,
		TC:      flags&0x0200 != 0,
		RD:      flags&0x0100 != 0,
		RA:      flags&0x0080 != 0,
		Z:       uint8(flags & 0x0070 >> 4),
		RCode:   domain.RCode(flags & 0x000F),
		QDCount: binary.BigEndian.Uint16(data[4:6]),
		ANCount: binary.BigEndian.Uint16(data[6:8]),
		NSCount: binary.BigEndian.Uint16(data[8:10]),
		ARCount: binary.BigEndian.Uint16(data[10:12]),
	}
}
