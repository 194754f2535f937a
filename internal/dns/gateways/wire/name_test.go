package wire

import "testing"

func TestDecodeName_SimpleLabels(t *testing.T) {
	data := []byte{3, 'w', 'w', 'w', 7, 'e', 'x', 'a', 'm', 'p', 'l', 'e', 3, 'c', 'o', 'm', 0}
	name, next, err := decodeName(data, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if name != "www.example.com" {
		t.Errorf("name = %q, want %q", name, "www.example.com")
	}
	if next != len(data) {
		t.Errorf("next = %d, want %d", next, len(data))
	}
}

func TestDecodeName_FollowsPointer(t *testing.T) {
	// offset 0: "example.com" + terminator
	// offset 13: label "www", then at offset 17 a pointer back to offset 0,
	// for "www.example.com"
	base := []byte{7, 'e', 'x', 'a', 'm', 'p', 'l', 'e', 3, 'c', 'o', 'm', 0}
	data := append(append([]byte{}, base...), 3, 'w', 'w', 'w')
	data = append(data, 0xC0, 0x00)

	name, next, err := decodeName(data, 13)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if name != "www.example.com" {
		t.Errorf("name = %q, want %q", name, "www.example.com")
	}
	// outer cursor must advance only past the label + the 2-byte pointer,
	// never past the jump target.
	want := 13 + 4 + 2
	if next != want {
		t.Errorf("next = %d, want %d", next, want)
	}
}

func TestDecodeName_CompressionLoopIsBounded(t *testing.T) {
	// a packet whose only content is a pointer pointing at itself
	data := []byte{0xC0, 0x00}
	_, _, err := decodeName(data, 0)
	if _, ok := err.(*ParseFailureError); !ok {
		t.Fatalf("expected ParseFailureError for pointer loop, got %v", err)
	}
}

func TestDecodeName_ReservedLengthPrefix(t *testing.T) {
	data := []byte{0x40, 0x00} // top bits 01, reserved
	_, _, err := decodeName(data, 0)
	if _, ok := err.(*ParseFailureError); !ok {
		t.Fatalf("expected ParseFailureError for reserved prefix, got %v", err)
	}
}

func TestEncodeName_RejectsOverlongLabel(t *testing.T) {
	label := make([]byte, 64)
	for i := range label {
		label[i] = 'a'
	}
	_, err := encodeName(string(label))
	if _, ok := err.(*InvalidDomainNameError); !ok {
		t.Fatalf("expected InvalidDomainNameError, got %v", err)
	}
}

func TestEncodeDecodeName_Inverse(t *testing.T) {
	names := []string{"example.com", "a.b.c.d", "single"}
	for _, n := range names {
		encoded, err := encodeName(n)
		if err != nil {
			t.Fatalf("encodeName(%q) error: %v", n, err)
		}
		decoded, _, err := decodeName(encoded, 0)
		if err != nil {
			t.Fatalf("decodeName error: %v", err)
		}
		if decoded != n {
			t.Errorf("round trip %q -> %q", n, decoded)
		}
	}
}
