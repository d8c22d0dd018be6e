// Package tamperlog implements a tamper-evident hash-chain log for
// periodic sensor readings. Every record commits to its predecessor, and
// the hash of the newest record (the tip) is mirrored into a trust
// anchor stored on an independent medium, so that edits, deletions,
// reordering, and wholesale replacement of the log file are all
// detectable by replaying the chain.
package tamperlog

import (
	"fmt"
	"strings"
)

// Hash is a lowercase hex-encoded SHA-256 digest.
type Hash string

// HashHexLen is the length of a hex-encoded SHA-256 digest.
const HashHexLen = 64

// ZeroHash is the well-known genesis value used as the prevHash of the
// first record in a chain. It is exactly one digest wide and is never
// itself the output of Commit.
const ZeroHash Hash = "0000000000000000000000000000000000000000000000000000000000000000"

// Delimiter separates the fields of a persisted row.
const Delimiter = ","

// Header is the first line of every log file. It is not a record.
const Header = "datetime,value,prevHash,entryHash"

// Record is one committed sensor reading. Timestamp and Value are opaque
// printable strings; the codec only guarantees they carry no delimiter.
type Record struct {
	Timestamp string
	Value     string
	PrevHash  Hash
	EntryHash Hash
}

// ParseError reports a persisted row that does not decode into a Record.
// A malformed row is itself evidence of tampering or corruption; it is
// surfaced, never skipped.
type ParseError struct {
	Row    string
	Fields int
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("malformed row: %d fields, want 4", e.Fields)
}

// EncodeRecord renders r as its persisted row. It rejects payload fields
// that embed the delimiter or a newline, since either would change the
// row's field structure on disk.
func EncodeRecord(r Record) (string, error) {
	for _, f := range []string{r.Timestamp, r.Value} {
		if strings.Contains(f, Delimiter) {
			return "", fmt.Errorf("field %q contains delimiter %q", f, Delimiter)
		}
		if strings.ContainsAny(f, "\r\n") {
			return "", fmt.Errorf("field %q contains a line break", f)
		}
	}
	return strings.Join([]string{
		r.Timestamp, r.Value, string(r.PrevHash), string(r.EntryHash),
	}, Delimiter), nil
}

// DecodeRecord parses one persisted row. The row must split into exactly
// four fields; anything else is a ParseError.
func DecodeRecord(row string) (Record, error) {
	fields := strings.Split(row, Delimiter)
	if len(fields) != 4 {
		return Record{}, &ParseError{Row: row, Fields: len(fields)}
	}
	return Record{
		Timestamp: fields[0],
		Value:     fields[1],
		PrevHash:  Hash(fields[2]),
		EntryHash: Hash(fields[3]),
	}, nil
}

// isNonRecord reports whether a stored line carries no record: the
// header row and blank lines (stray newlines) are tolerated and skipped
// by every reader.
func isNonRecord(line string) bool {
	trimmed := strings.TrimSpace(line)
	return trimmed == "" || trimmed == Header
}
