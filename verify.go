package tamperlog

import "fmt"

// TamperReason classifies the earliest invariant failure found during
// verification.
type TamperReason string

const (
	// ReasonMalformedRow: the row does not decode into a record.
	ReasonMalformedRow TamperReason = "malformed_row"
	// ReasonLinkBroken: prevHash does not match the preceding entryHash.
	ReasonLinkBroken TamperReason = "link_broken"
	// ReasonHashMismatch: entryHash does not match the recomputed commitment.
	ReasonHashMismatch TamperReason = "hash_mismatch"
	// ReasonAnchorMismatch: the chain replays cleanly but its tip diverges
	// from the trust anchor, meaning a substituted or rolled-back log.
	ReasonAnchorMismatch TamperReason = "anchor_mismatch"
	// ReasonAnchorStale: the chain replays cleanly and the anchor sits
	// exactly one commit behind the tip. This is the append-crash window,
	// recoverable via RecommitAnchor.
	ReasonAnchorStale TamperReason = "anchor_stale"
)

// VerificationResult is the outcome of one full replay of the log.
// Position is 1-based; for the anchor reasons it is one past the last
// record. Length counts the records that passed every check.
type VerificationResult struct {
	OK       bool
	Length   int
	Position int
	Reason   TamperReason
	Tip      Hash
}

func (r VerificationResult) String() string {
	if r.OK {
		return fmt.Sprintf("verified: %d records, tip %s", r.Length, r.Tip)
	}
	return fmt.Sprintf("tampered at position %d: %s", r.Position, r.Reason)
}

// Recoverable reports whether the result is the stale-anchor condition
// rather than proof of tampering.
func (r VerificationResult) Recoverable() bool {
	return r.Reason == ReasonAnchorStale
}

// Verify replays the whole log under the read lock, localizes the first
// inconsistency, and cross-checks the computed tip against the trust
// anchor. Tamper findings are returned as values; the error covers
// storage I/O only.
func (c *Chain) Verify() (VerificationResult, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	lines, err := c.log.ReadAll()
	if err != nil {
		return VerificationResult{}, fmt.Errorf("read log: %w", err)
	}
	anchor, err := c.anchor.Get()
	if err != nil {
		return VerificationResult{}, fmt.Errorf("read anchor: %w", err)
	}
	return VerifyLines(lines, anchor), nil
}

// VerifyLines checks a captured snapshot of stored lines against an
// anchor value. Header and blank lines are non-records and skipped.
func VerifyLines(lines []string, anchor Hash) VerificationResult {
	rep, res := replayChain(lines)
	if res != nil {
		return *res
	}
	return anchorCheck(rep.n, rep.tip, rep.lastPrev, anchor)
}

// VerifyRecords checks an already-decoded chain against an anchor value.
// Remote auditors that receive the log out of band verify through this
// path, using their own copy of the anchor.
func VerifyRecords(records []Record, anchor Hash) VerificationResult {
	expected := ZeroHash
	lastPrev := ZeroHash
	for i, rec := range records {
		if res := checkRecord(rec, expected, i+1); res != nil {
			return *res
		}
		lastPrev = rec.PrevHash
		expected = rec.EntryHash
	}
	return anchorCheck(len(records), expected, lastPrev, anchor)
}

// replay carries the state of a clean chain replay: the computed tip,
// the prevHash of the final record, and the record count.
type replay struct {
	tip      Hash
	lastPrev Hash
	n        int
}

// replayChain folds over the stored lines, short-circuiting on the first
// inconsistency. Verification is fail-fast: forensic use needs the
// earliest point of compromise, and everything past the first break is
// attacker-controlled data with no further guarantee.
func replayChain(lines []string) (replay, *VerificationResult) {
	expected := ZeroHash
	rep := replay{tip: ZeroHash, lastPrev: ZeroHash}
	for _, line := range lines {
		if isNonRecord(line) {
			continue
		}
		rep.n++
		rec, err := DecodeRecord(line)
		if err != nil {
			return rep, &VerificationResult{Length: rep.n - 1, Position: rep.n, Reason: ReasonMalformedRow}
		}
		if res := checkRecord(rec, expected, rep.n); res != nil {
			return rep, res
		}
		rep.lastPrev = rec.PrevHash
		expected = rec.EntryHash
		rep.tip = expected
	}
	return rep, nil
}

func checkRecord(rec Record, expected Hash, n int) *VerificationResult {
	if !hashEqual(rec.PrevHash, expected) {
		return &VerificationResult{Length: n - 1, Position: n, Reason: ReasonLinkBroken}
	}
	if !hashEqual(Commit(rec.PrevHash, rec.Timestamp, rec.Value), rec.EntryHash) {
		return &VerificationResult{Length: n - 1, Position: n, Reason: ReasonHashMismatch}
	}
	return nil
}

// anchorCheck is the load-bearing final comparison: without it an
// attacker controlling the whole log store could substitute any
// self-consistent forged chain.
func anchorCheck(n int, tip, lastPrev, anchor Hash) VerificationResult {
	switch {
	case hashEqual(anchor, tip):
		return VerificationResult{OK: true, Length: n, Tip: tip}
	case n > 0 && hashEqual(anchor, lastPrev):
		return VerificationResult{Length: n, Position: n + 1, Reason: ReasonAnchorStale, Tip: tip}
	default:
		return VerificationResult{Length: n, Position: n + 1, Reason: ReasonAnchorMismatch, Tip: tip}
	}
}
