package wire

import (
	"testing"

	"github.com/kestrelnet/dnsd/internal/dns/domain"
)

func TestDecode_EmptyBuffer(t *testing.T) {
	_, _, err := Decode(nil)
	incomplete, ok := err.(*IncompletePacketError)
	if !ok {
		t.Fatalf("expected IncompletePacketError, got %v", err)
	}
	if incomplete.Needed != 12 || incomplete.Available != 0 {
		t.Errorf("got Needed=%d Available=%d, want 12, 0", incomplete.Needed, incomplete.Available)
	}
}

func TestDecode_ElevenBytes(t *testing.T) {
	_, _, err := Decode(make([]byte, 11))
	incomplete, ok := err.(*IncompletePacketError)
	if !ok {
		t.Fatalf("expected IncompletePacketError, got %v", err)
	}
	if incomplete.Needed != 12 || incomplete.Available != 11 {
		t.Errorf("got Needed=%d Available=%d, want 12, 11", incomplete.Needed, incomplete.Available)
	}
}

func TestDecode_RoundTripTwoQuestions(t *testing.T) {
	pkt := domain.Packet{
		Header: domain.Header{ID: 0x5678, RD: true},
		Questions: []domain.Question{
			{Name: "example.com", Type: domain.RRTypeA, Class: domain.RRClassIN},
			{Name: "test.org", Type: domain.RRTypeAAAA, Class: domain.RRClassIN},
		},
	}

	encoded, err := Encode(pkt)
	if err != nil {
		t.Fatalf("Encode() error: %v", err)
	}

	consumed, decoded, err := Decode(encoded)
	if err != nil {
		t.Fatalf("Decode() error: %v", err)
	}
	if consumed != len(encoded) {
		t.Errorf("consumed = %d, want %d", consumed, len(encoded))
	}
	if decoded.Header.ID != 0x5678 || !decoded.Header.RD {
		t.Errorf("header mismatch: %+v", decoded.Header)
	}
	if len(decoded.Questions) != 2 {
		t.Fatalf("got %d questions, want 2", len(decoded.Questions))
	}
	if decoded.Questions[0].Name != "example.com" || decoded.Questions[1].Name != "test.org" {
		t.Errorf("question names mismatch: %+v", decoded.Questions)
	}
}

func TestDecode_AnswersAlwaysEmpty(t *testing.T) {
	pkt := domain.Packet{
		Header:    domain.Header{ID: 1},
		Questions: []domain.Question{{Name: "a.com", Type: domain.RRTypeA, Class: domain.RRClassIN}},
	}
	encoded, err := Encode(pkt)
	if err != nil {
		t.Fatalf("Encode() error: %v", err)
	}
	_, decoded, err := Decode(encoded)
	if err != nil {
		t.Fatalf("Decode() error: %v", err)
	}
	if len(decoded.Answers) != 0 {
		t.Errorf("got %d answers, want 0", len(decoded.Answers))
	}
}
