package tamperlog

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"syscall"
)

// fileLogStore implements LogStore on a single plain-text file, one row
// per line. Appends take an exclusive flock, write the row in a single
// syscall, and fsync before returning, so a reader never observes a
// partial row and a crash never corrupts the committed tail.
type fileLogStore struct {
	path string
	mu   sync.Mutex
	f    *os.File
}

// OpenFileLog opens or creates the log file at path.
func OpenFileLog(path string) (*fileLogStore, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return nil, fmt.Errorf("create directory: %w", err)
		}
	}
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0o600)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return &fileLogStore{path: path, f: f}, nil
}

// Path returns the location of the backing file. The demonstration
// attack surface operates on this path directly, bypassing the store.
func (s *fileLogStore) Path() string { return s.path }

// ReadAll returns every stored line in order. Trailing blank lines are
// dropped here; interior blank lines survive and are skipped by readers.
func (s *fileLogStore) ReadAll() ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("read log file: %w", err)
	}
	trimmed := strings.TrimRight(string(data), "\n")
	if trimmed == "" {
		return nil, nil
	}
	return strings.Split(trimmed, "\n"), nil
}

// AppendLine appends one line atomically.
func (s *fileLogStore) AppendLine(line string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := syscall.Flock(int(s.f.Fd()), syscall.LOCK_EX); err != nil {
		return fmt.Errorf("lock log file: %w", err)
	}
	defer syscall.Flock(int(s.f.Fd()), syscall.LOCK_UN)

	buf := line + "\n"
	n, err := s.f.WriteString(buf)
	if err != nil {
		return fmt.Errorf("write row: %w", err)
	}
	if n != len(buf) {
		return fmt.Errorf("incomplete write: %d of %d bytes", n, len(buf))
	}
	if err := s.f.Sync(); err != nil {
		return fmt.Errorf("sync log file: %w", err)
	}
	return nil
}

// Rewrite replaces the whole file via write-to-temp plus rename, so the
// swap is all-or-nothing even if the process dies mid-reset.
func (s *fileLogStore) Rewrite(lines []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var b strings.Builder
	for _, line := range lines {
		b.WriteString(line)
		b.WriteByte('\n')
	}

	tmp := s.path + ".tmp"
	if err := writeFileSynced(tmp, []byte(b.String())); err != nil {
		return fmt.Errorf("write replacement log: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("swap log file: %w", err)
	}

	// The old append handle points at the replaced inode; reopen.
	f, err := os.OpenFile(s.path, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0o600)
	if err != nil {
		return fmt.Errorf("reopen log file: %w", err)
	}
	_ = s.f.Close()
	s.f = f
	return nil
}

// Close closes the append handle.
func (s *fileLogStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.f.Close(); err != nil {
		return fmt.Errorf("close log file: %w", err)
	}
	return nil
}

// fileAnchorStore keeps the trust anchor in a small file of its own,
// replaced wholesale on every Set. Its path should live on a different
// medium than the log file: the anchor only defeats whole-store
// substitution if cloning the log's medium does not clone the anchor.
type fileAnchorStore struct {
	path string
	mu   sync.Mutex
}

// OpenFileAnchor creates a file-backed anchor cell at path.
func OpenFileAnchor(path string) (*fileAnchorStore, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return nil, fmt.Errorf("create directory: %w", err)
		}
	}
	return &fileAnchorStore{path: path}, nil
}

// Get returns the stored anchor, or ZeroHash if the cell was never set.
func (s *fileAnchorStore) Get() (Hash, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return ZeroHash, nil
	}
	if err != nil {
		return "", fmt.Errorf("read anchor file: %w", err)
	}
	h := Hash(strings.TrimSpace(string(data)))
	if h == "" {
		return ZeroHash, nil
	}
	if len(h) != HashHexLen {
		return "", fmt.Errorf("invalid anchor size: %d, want %d", len(h), HashHexLen)
	}
	return h, nil
}

// Set durably replaces the anchor via write-to-temp, fsync, rename.
func (s *fileAnchorStore) Set(h Hash) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tmp := s.path + ".tmp"
	if err := writeFileSynced(tmp, []byte(h)); err != nil {
		return fmt.Errorf("write anchor: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("swap anchor file: %w", err)
	}
	return nil
}

// writeFileSynced writes data to path and fsyncs before closing.
func writeFileSynced(path string, data []byte) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return err
	}
	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Sync(); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
