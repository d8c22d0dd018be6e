package tamperlog

import (
	"strings"
	"testing"
)

func TestCommit_Deterministic(t *testing.T) {
	a := Commit(ZeroHash, "2024-01-01 00:00:00", "20.0")
	b := Commit(ZeroHash, "2024-01-01 00:00:00", "20.0")
	if a != b {
		t.Errorf("Commit() not deterministic: %s vs %s", a, b)
	}
	if len(a) != HashHexLen {
		t.Errorf("Commit() length = %d, want %d", len(a), HashHexLen)
	}
	if a != Hash(strings.ToLower(string(a))) {
		t.Errorf("Commit() = %s, want lowercase hex", a)
	}
}

func TestCommit_InputSensitivity(t *testing.T) {
	base := Commit(ZeroHash, "2024-01-01 00:00:00", "20.0")

	if got := Commit(ZeroHash, "2024-01-01 00:00:00", "20.1"); got == base {
		t.Error("value change did not change the commitment")
	}
	if got := Commit(ZeroHash, "2024-01-01 00:00:01", "20.0"); got == base {
		t.Error("timestamp change did not change the commitment")
	}
	other := Commit(base, "2024-01-01 00:00:00", "20.0")
	if other == base {
		t.Error("prev change did not change the commitment")
	}
}

func TestHashEqual(t *testing.T) {
	tests := []struct {
		name string
		a    Hash
		b    Hash
		want bool
	}{
		{name: "equal", a: ZeroHash, b: ZeroHash, want: true},
		{
			name: "different last byte",
			a:    ZeroHash,
			b:    Hash(strings.Repeat("0", 63) + "1"),
			want: false,
		},
		{name: "different lengths", a: ZeroHash, b: "0000", want: false},
		{name: "both empty", a: "", b: "", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := hashEqual(tt.a, tt.b); got != tt.want {
				t.Errorf("hashEqual() = %v, want %v", got, tt.want)
			}
		})
	}
}
