package tamperlog

import (
	"fmt"
	"sync"
)

// Chain is the append engine. It is the sole legitimate writer of both
// the log store and the anchor store; both are mutated under one lock so
// that a verifier running concurrently observes a consistent snapshot of
// the Log+Anchor pair.
type Chain struct {
	mu     sync.RWMutex
	log    LogStore
	anchor AnchorStore
}

// NewChain binds an append engine to its two stores. A brand-new log
// store is initialized with the header row so a fresh device boots with
// a valid, empty chain.
func NewChain(log LogStore, anchor AnchorStore) (*Chain, error) {
	lines, err := log.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read log: %w", err)
	}
	if len(lines) == 0 {
		if err := log.AppendLine(Header); err != nil {
			return nil, fmt.Errorf("write header: %w", err)
		}
	}
	return &Chain{log: log, anchor: anchor}, nil
}

// Append commits one reading: it links a new record to the current tip,
// persists the encoded row, and advances the trust anchor. The row write
// and the anchor update form one logical commit; if the process dies
// between them the verifier reports the recoverable AnchorStale state
// rather than tampering.
func (c *Chain) Append(timestamp, value string) (Record, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	tip, err := c.tipLocked()
	if err != nil {
		return Record{}, err
	}

	rec := Record{
		Timestamp: timestamp,
		Value:     value,
		PrevHash:  tip,
		EntryHash: Commit(tip, timestamp, value),
	}
	row, err := EncodeRecord(rec)
	if err != nil {
		return Record{}, err
	}

	if err := c.log.AppendLine(row); err != nil {
		return Record{}, fmt.Errorf("append row: %w", err)
	}
	if err := c.anchor.Set(rec.EntryHash); err != nil {
		// The row is already durable; until RecommitAnchor succeeds the
		// verifier will report AnchorStale.
		return Record{}, fmt.Errorf("advance anchor: %w", err)
	}
	return rec, nil
}

// CurrentTip returns the entryHash of the most recently committed
// record, or ZeroHash for an empty chain.
func (c *Chain) CurrentTip() (Hash, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.tipLocked()
}

func (c *Chain) tipLocked() (Hash, error) {
	lines, err := c.log.ReadAll()
	if err != nil {
		return "", fmt.Errorf("read log: %w", err)
	}
	for i := len(lines) - 1; i >= 0; i-- {
		if isNonRecord(lines[i]) {
			continue
		}
		rec, err := DecodeRecord(lines[i])
		if err != nil {
			return "", err
		}
		return rec.EntryHash, nil
	}
	return ZeroHash, nil
}

// Records decodes the full chain in order. A malformed row aborts the
// read with its ParseError; corruption is surfaced, not skipped.
func (c *Chain) Records() ([]Record, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	lines, err := c.log.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read log: %w", err)
	}
	var records []Record
	for _, line := range lines {
		if isNonRecord(line) {
			continue
		}
		rec, err := DecodeRecord(line)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, nil
}

// Reset discards the whole chain, writes a fresh header-only log, and
// rewinds the trust anchor to ZeroHash. This is the only operation
// allowed to shrink history. The caller must record the reset in an
// audit channel outside the forensic store itself: the log cannot attest
// to its own erasure.
func (c *Chain) Reset() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.log.Rewrite([]string{Header}); err != nil {
		return fmt.Errorf("rewrite log: %w", err)
	}
	if err := c.anchor.Set(ZeroHash); err != nil {
		return fmt.Errorf("reset anchor: %w", err)
	}
	return nil
}

// RecommitAnchor re-runs the anchor-update half of Append: the recovery
// path for AnchorStale. It refuses to move the anchor unless the chain
// itself replays cleanly, so it can never be used to bless a forged log.
func (c *Chain) RecommitAnchor() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	lines, err := c.log.ReadAll()
	if err != nil {
		return fmt.Errorf("read log: %w", err)
	}
	rep, res := replayChain(lines)
	if res != nil {
		return fmt.Errorf("refusing to recommit over inconsistent chain: %s at position %d", res.Reason, res.Position)
	}
	if err := c.anchor.Set(rep.tip); err != nil {
		return fmt.Errorf("recommit anchor: %w", err)
	}
	return nil
}
