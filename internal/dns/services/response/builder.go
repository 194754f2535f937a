// Package response implements the fluent response builder: it turns a
// decoded query plus zero or more resolved answers into an outbound
// domain.Packet with self-consistent header counts.
package response

import (
	"net"

	"github.com/kestrelnet/dnsd/internal/dns/common/rrdata"
	"github.com/kestrelnet/dnsd/internal/dns/domain"
)

// Builder assembles a response packet. It is stateful across one logical
// assembly and is reusable after ClearAnswers.
//
// Two modes select themselves based on builder state at Build time: if the
// caller never added a custom question or answer, Build falls back to
// echoing the bound query (default mode); otherwise the builder's own
// accumulated questions and answers win (explicit mode).
type Builder struct {
	query domain.Packet

	rcode          domain.RCode
	z              uint8
	authoritative  bool
	recursionAvail bool

	questions  []domain.Question
	answers    []domain.ResourceRecord
	customized bool
}

// NewBuilder returns a Builder bound to query, with this server's
// protocol defaults: recursion reported available, no error.
func NewBuilder(query domain.Packet) *Builder {
	return &Builder{query: query, recursionAvail: true}
}

// BuildCustomResponse is an alias for NewBuilder kept for call sites that
// read more naturally entering the fluent chain this way.
func BuildCustomResponse(query domain.Packet) *Builder {
	return NewBuilder(query)
}

// ClearAnswers discards any accumulated answers without resetting the
// builder's flag overrides, so a single Builder can be reused across
// several Build calls against different answer sets.
func (b *Builder) ClearAnswers() *Builder {
	b.answers = nil
	return b
}

// SetRcode overrides the response code used in explicit mode.
func (b *Builder) SetRcode(rcode domain.RCode) *Builder {
	b.rcode = rcode
	return b
}

// SetZ overrides the reserved header bits.
func (b *Builder) SetZ(z uint8) *Builder {
	b.z = z
	return b
}

// SetAuthoritative overrides the AA flag.
func (b *Builder) SetAuthoritative(aa bool) *Builder {
	b.authoritative = aa
	return b
}

// SetRecursionAvailable overrides the RA flag.
func (b *Builder) SetRecursionAvailable(ra bool) *Builder {
	b.recursionAvail = ra
	return b
}

// WithQuestion adds a custom question, switching the builder into explicit
// mode.
func (b *Builder) WithQuestion(name string, qtype domain.RRType, qclass domain.RRClass) *Builder {
	b.questions = append(b.questions, domain.Question{Name: name, Type: qtype, Class: qclass})
	b.customized = true
	return b
}

// WithAnAnswer appends an A or AAAA record for name depending on ip's
// address family, and resets the question list to exactly one entry: the
// name being answered, type A, class IN, regardless of which record type
// the answer itself ends up as.
func (b *Builder) WithAnAnswer(name string, ip net.IP, ttl uint32) *Builder {
	b.questions = []domain.Question{{Name: name, Type: domain.RRTypeA, Class: domain.RRClassIN}}

	var rtype domain.RRType
	var data []byte
	var err error
	if ip.To4() != nil {
		rtype = domain.RRTypeA
		data, err = rrdata.EncodeA(ip)
	} else {
		rtype = domain.RRTypeAAAA
		data, err = rrdata.EncodeAAAA(ip)
	}
	if err != nil {
		return b
	}

	rr, err := domain.NewResourceRecord(name, rtype, domain.RRClassIN, ttl, data)
	if err != nil {
		return b
	}
	b.answers = append(b.answers, rr)
	b.customized = true
	return b
}

// WithCNAMEAnswer appends a CNAME record resolving name to target.
func (b *Builder) WithCNAMEAnswer(name, target string, ttl uint32) *Builder {
	data, err := rrdata.EncodeCNAME(target)
	if err != nil {
		return b
	}
	rr, err := domain.NewResourceRecord(name, domain.RRTypeCNAME, domain.RRClassIN, ttl, data)
	if err != nil {
		return b
	}
	b.answers = append(b.answers, rr)
	b.customized = true
	return b
}

// WithTXTAnswer appends a TXT record carrying text as a single
// character-string.
func (b *Builder) WithTXTAnswer(name, text string, ttl uint32) *Builder {
	data, err := rrdata.EncodeTXT(text)
	if err != nil {
		return b
	}
	rr, err := domain.NewResourceRecord(name, domain.RRTypeTXT, domain.RRClassIN, ttl, data)
	if err != nil {
		return b
	}
	b.answers = append(b.answers, rr)
	b.customized = true
	return b
}

// WithMXAnswer appends an MX record pointing at exchange with the given
// preference.
func (b *Builder) WithMXAnswer(name string, preference uint16, exchange string, ttl uint32) *Builder {
	data, err := rrdata.EncodeMX(preference, exchange)
	if err != nil {
		return b
	}
	rr, err := domain.NewResourceRecord(name, domain.RRTypeMX, domain.RRClassIN, ttl, data)
	if err != nil {
		return b
	}
	b.answers = append(b.answers, rr)
	b.customized = true
	return b
}

// Build finalizes the response packet. In explicit mode the identifier,
// RD, and opcode are copied from the bound query, rcode is derived from
// opcode (0 -> NOERROR, anything else -> NOTIMP) unless SetRcode set a
// non-zero code, and the question/answer sections are the builder's own. In default
// mode the query's questions are echoed verbatim and ancount always
// reflects the actual number of accumulated answers, never the query's
// qdcount.
func (b *Builder) Build() domain.Packet {
	if !b.customized {
		return b.buildDefault()
	}

	rcode := b.rcode
	if b.rcode == domain.RCodeNoError && b.query.Header.Opcode != 0 {
		rcode = domain.RCodeNotImp
	}

	header := domain.Header{
		ID:      b.query.Header.ID,
		QR:      true,
		Opcode:  b.query.Header.Opcode,
		AA:      b.authoritative,
		RD:      b.query.Header.RD,
		RA:      b.recursionAvail,
		Z:       b.z,
		RCode:   rcode,
		QDCount: uint16(len(b.questions)),
		ANCount: uint16(len(b.answers)),
	}

	return domain.Packet{Header: header, Questions: b.questions, Answers: b.answers}
}

func (b *Builder) buildDefault() domain.Packet {
	header := domain.Header{
		ID:      b.query.Header.ID,
		QR:      true,
		Opcode:  b.query.Header.Opcode,
		AA:      b.authoritative,
		RD:      b.query.Header.RD,
		RA:      b.recursionAvail,
		Z:       b.z,
		RCode:   b.rcode,
		QDCount: uint16(len(b.query.Questions)),
		ANCount: uint16(len(b.answers)),
	}
	return domain.Packet{Header: header, Questions: b.query.Questions, Answers: b.answers}
}
