package wire

import (
	"bytes"
	"testing"

	"github.com/kestrelnet/dnsd/internal/dns/domain"
)

func TestEncode_HeaderOnlyCorrectsCounts(t *testing.T) {
	pkt := domain.Packet{
		Header: domain.Header{
			ID: 0x1234, QR: true, Opcode: 0, AA: true, TC: false, RD: true, RA: true,
			Z: 0, RCode: 0, QDCount: 1, ANCount: 1, NSCount: 0, ARCount: 0,
		},
	}

	got, err := Encode(pkt)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []byte{0x12, 0x34, 0x85, 0x80, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}
	if !bytes.Equal(got, want) {
		t.Errorf("Encode() = % x, want % x", got, want)
	}
}

func TestEncode_SingleQuestion(t *testing.T) {
	pkt := domain.Packet{
		Header: domain.Header{ID: 0x1234, RD: true},
		Questions: []domain.Question{
			{Name: "google.com", Type: domain.RRTypeA, Class: domain.RRClassIN},
		},
	}

	got, err := Encode(pkt)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []byte{
		0x12, 0x34, 0x01, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x06, 'g', 'o', 'o', 'g', 'l', 'e', 0x03, 'c', 'o', 'm', 0x00,
		0x00, 0x01, 0x00, 0x01,
	}
	if !bytes.Equal(got, want) {
		t.Errorf("Encode() = % x, want % x", got, want)
	}
}

func TestEncode_RejectsOverlongLabel(t *testing.T) {
	longLabel := bytes.Repeat([]byte{'a'}, 64)
	pkt := domain.Packet{
		Questions: []domain.Question{
			{Name: string(longLabel) + ".com", Type: domain.RRTypeA, Class: domain.RRClassIN},
		},
	}

	_, err := Encode(pkt)
	if _, ok := err.(*InvalidDomainNameError); !ok {
		t.Fatalf("expected InvalidDomainNameError, got %v", err)
	}
}

func TestEncode_TrailingDotEquivalence(t *testing.T) {
	a, err := encodeName("test.org")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := encodeName("test.org.")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.Equal(a, b) {
		t.Errorf("encodeName(%q) = % x, encodeName(%q) = % x, want equal", "test.org", a, "test.org.", b)
	}
}

func TestEncode_AnswerRDLengthDerivedFromPayload(t *testing.T) {
	rr, err := domain.NewResourceRecord("example.com", domain.RRTypeA, domain.RRClassIN, 300, []byte{192, 168, 1, 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	pkt := domain.Packet{Answers: []domain.ResourceRecord{rr}}

	got, err := Encode(pkt)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// header(12), name(1+7+1+3+1)=13 bytes, type(2), class(2), ttl(4), rdlength(2), data(4)
	nameLen := 1 + 7 + 1 + 3 + 1
	rdlengthOffset := headerSize + nameLen + 2 + 2 + 4
	rdlength := uint16(got[rdlengthOffset])<<8 | uint16(got[rdlengthOffset+1])
	if rdlength != 4 {
		t.Errorf("rdlength = %d, want 4", rdlength)
	}
}
