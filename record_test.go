package tamperlog

import (
	"errors"
	"testing"
)

func TestEncodeDecodeRecord(t *testing.T) {
	rec := Record{
		Timestamp: "2024-01-01 00:00:00",
		Value:     "20.0",
		PrevHash:  ZeroHash,
		EntryHash: Commit(ZeroHash, "2024-01-01 00:00:00", "20.0"),
	}

	row, err := EncodeRecord(rec)
	if err != nil {
		t.Fatalf("EncodeRecord() error = %v", err)
	}
	want := "2024-01-01 00:00:00,20.0," + string(rec.PrevHash) + "," + string(rec.EntryHash)
	if row != want {
		t.Errorf("EncodeRecord() = %q, want %q", row, want)
	}

	got, err := DecodeRecord(row)
	if err != nil {
		t.Fatalf("DecodeRecord() error = %v", err)
	}
	if got != rec {
		t.Errorf("DecodeRecord() = %+v, want %+v", got, rec)
	}
}

func TestEncodeRecord_RejectsDelimiter(t *testing.T) {
	tests := []struct {
		name string
		rec  Record
	}{
		{
			name: "delimiter in value",
			rec:  Record{Timestamp: "2024-01-01 00:00:00", Value: "20,5"},
		},
		{
			name: "delimiter in timestamp",
			rec:  Record{Timestamp: "2024,01,01", Value: "20.5"},
		},
		{
			name: "newline in value",
			rec:  Record{Timestamp: "2024-01-01 00:00:00", Value: "20.5\n21.0"},
		},
		{
			name: "carriage return in timestamp",
			rec:  Record{Timestamp: "2024-01-01\r", Value: "20.5"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := EncodeRecord(tt.rec); err == nil {
				t.Error("EncodeRecord() accepted a field that breaks the row structure")
			}
		})
	}
}

func TestDecodeRecord_FieldCount(t *testing.T) {
	tests := []struct {
		name       string
		row        string
		wantFields int
	}{
		{name: "two fields", row: "2024-01-01 00:00:00,20.5", wantFields: 2},
		{name: "three fields", row: "a,b,c", wantFields: 3},
		{name: "five fields", row: "a,b,c,d,e", wantFields: 5},
		{name: "empty row", row: "", wantFields: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeRecord(tt.row)
			var perr *ParseError
			if !errors.As(err, &perr) {
				t.Fatalf("DecodeRecord() error = %v, want ParseError", err)
			}
			if perr.Fields != tt.wantFields {
				t.Errorf("ParseError.Fields = %d, want %d", perr.Fields, tt.wantFields)
			}
		})
	}
}

func TestIsNonRecord(t *testing.T) {
	tests := []struct {
		name string
		line string
		want bool
	}{
		{name: "header", line: Header, want: true},
		{name: "blank", line: "", want: true},
		{name: "whitespace", line: "   ", want: true},
		{name: "record row", line: "2024-01-01 00:00:00,20.5,a,b", want: false},
		{name: "garbage", line: "not a record", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isNonRecord(tt.line); got != tt.want {
				t.Errorf("isNonRecord(%q) = %v, want %v", tt.line, got, tt.want)
			}
		})
	}
}
