package tamperlog

// LogStore is the line-oriented append-only store holding the chain.
type LogStore interface {
	// ReadAll returns every stored line in order, header included.
	ReadAll() ([]string, error)

	// AppendLine appends one line atomically: a concurrent reader must
	// never observe a partially written row.
	AppendLine(line string) error

	// Rewrite discards all content and replaces it with the given lines,
	// all-or-nothing. Used only by Reset.
	Rewrite(lines []string) error
}

// AnchorStore is the durable single-value cell holding the trust anchor.
// It must live on a medium independent of the LogStore: cloning or
// restoring the log's medium alone must not be able to forge a
// consistent anchor.
type AnchorStore interface {
	// Get returns the stored anchor, or ZeroHash if none was ever set.
	Get() (Hash, error)

	// Set durably replaces the anchor. A Set that returns nil is visible
	// to all subsequent Gets, including after a restart.
	Set(h Hash) error
}
