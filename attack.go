package tamperlog

import (
	"fmt"
	"os"
	"strings"
)

// Attacker rewrites the log file directly, bypassing the Chain and its
// stores. It exists only to exercise the verifier's detection paths and
// shares no code with Append, so legitimate operation can never reach
// these writes. Every method here leaves the trust anchor untouched:
// the attacker has full control of the log medium and none over the
// anchor's.
type Attacker struct {
	LogPath string
}

// CorruptValue overwrites the value field of the 1-based record pos
// without recomputing any hash. Detected as HashMismatch at pos.
func (a *Attacker) CorruptValue(pos int, value string) error {
	return a.editRecord(pos, func(rec Record) (string, error) {
		rec.Value = value
		return EncodeRecord(rec)
	})
}

// CorruptTimestamp overwrites the timestamp field of record pos without
// recomputing any hash. Detected as HashMismatch at pos.
func (a *Attacker) CorruptTimestamp(pos int, timestamp string) error {
	return a.editRecord(pos, func(rec Record) (string, error) {
		rec.Timestamp = timestamp
		return EncodeRecord(rec)
	})
}

// ReplaceRow substitutes an arbitrary row for record pos.
func (a *Attacker) ReplaceRow(pos int, row string) error {
	return a.editRecord(pos, func(Record) (string, error) {
		return row, nil
	})
}

// AppendUnlinked appends a row whose prevHash ignores the current tip.
// The row's own commitment is valid, so detection is LinkBroken, not
// HashMismatch.
func (a *Attacker) AppendUnlinked(timestamp, value string) error {
	prev := Hash(strings.Repeat("deadbeef", 8))
	rec := Record{
		Timestamp: timestamp,
		Value:     value,
		PrevHash:  prev,
		EntryHash: Commit(prev, timestamp, value),
	}
	row, err := EncodeRecord(rec)
	if err != nil {
		return err
	}
	return a.appendRaw(row)
}

// AppendBare appends a two-field row that omits both hash fields.
// Detected as MalformedRow.
func (a *Attacker) AppendBare(timestamp, value string) error {
	return a.appendRaw(timestamp + Delimiter + value)
}

// ReplaceChain rebuilds the whole file as an internally consistent chain
// over the given (timestamp, value) readings. Every link and commitment
// checks out; only the anchor comparison can catch this one.
func (a *Attacker) ReplaceChain(readings [][2]string) error {
	lines := []string{Header}
	prev := ZeroHash
	for _, r := range readings {
		rec := Record{
			Timestamp: r[0],
			Value:     r[1],
			PrevHash:  prev,
			EntryHash: Commit(prev, r[0], r[1]),
		}
		row, err := EncodeRecord(rec)
		if err != nil {
			return err
		}
		lines = append(lines, row)
		prev = rec.EntryHash
	}
	return a.writeLines(lines)
}

// editRecord rewrites the line holding record pos using edit.
func (a *Attacker) editRecord(pos int, edit func(Record) (string, error)) error {
	lines, err := a.readLines()
	if err != nil {
		return err
	}
	idx, err := locateRecord(lines, pos)
	if err != nil {
		return err
	}
	rec, err := DecodeRecord(lines[idx])
	if err != nil {
		return fmt.Errorf("decode target row: %w", err)
	}
	row, err := edit(rec)
	if err != nil {
		return err
	}
	lines[idx] = row
	return a.writeLines(lines)
}

func (a *Attacker) appendRaw(row string) error {
	f, err := os.OpenFile(a.LogPath, os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	if _, err := f.WriteString(row + "\n"); err != nil {
		_ = f.Close()
		return fmt.Errorf("append row: %w", err)
	}
	return f.Close()
}

func (a *Attacker) readLines() ([]string, error) {
	data, err := os.ReadFile(a.LogPath)
	if err != nil {
		return nil, fmt.Errorf("read log file: %w", err)
	}
	trimmed := strings.TrimRight(string(data), "\n")
	if trimmed == "" {
		return nil, nil
	}
	return strings.Split(trimmed, "\n"), nil
}

func (a *Attacker) writeLines(lines []string) error {
	var b strings.Builder
	for _, line := range lines {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	if err := os.WriteFile(a.LogPath, []byte(b.String()), 0o600); err != nil {
		return fmt.Errorf("write log file: %w", err)
	}
	return nil
}

// locateRecord maps a 1-based record position to its line index,
// skipping the header and blank lines.
func locateRecord(lines []string, pos int) (int, error) {
	if pos < 1 {
		return 0, fmt.Errorf("position %d out of range", pos)
	}
	n := 0
	for i, line := range lines {
		if isNonRecord(line) {
			continue
		}
		n++
		if n == pos {
			return i, nil
		}
	}
	return 0, fmt.Errorf("position %d out of range: log has %d records", pos, n)
}
