package domain

import "testing"

func TestRRClassIN_Value(t *testing.T) {
	if RRClassIN != 1 {
		t.Errorf("RRClassIN = %d, want 1", RRClassIN)
	}
}
