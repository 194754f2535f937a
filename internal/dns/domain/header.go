package domain

// Header is the fixed 12-byte preamble of every DNS message.
//
// QDCount and ANCount are carried here for decoded packets but are never
// trusted at encode time: the wire codec always derives them from the
// actual length of the Questions and Answers slices of the Packet being
// written, discarding whatever values are set here.
type Header struct {
	ID      uint16
	QR      bool
	Opcode  uint8
	AA      bool
	TC      bool
	RD      bool
	RA      bool
	Z       uint8
	RCode   RCode
	QDCount uint16
	ANCount uint16
	NSCount uint16
	ARCount uint16
}
