package tamperlog

import (
	"testing"

	pb "github.com/jhilpatel06/TamperAware-IoT-Logger/proto"
)

func TestProtoRecordRoundTrip(t *testing.T) {
	rec := Record{
		Timestamp: "2024-01-01 00:00:00",
		Value:     "20.0",
		PrevHash:  ZeroHash,
		EntryHash: Commit(ZeroHash, "2024-01-01 00:00:00", "20.0"),
	}

	got, err := FromProtoRecord(ToProtoRecord(rec))
	if err != nil {
		t.Fatal(err)
	}
	if got != rec {
		t.Errorf("round trip = %+v, want %+v", got, rec)
	}
}

func TestFromProtoRecord_RejectsBadHashes(t *testing.T) {
	tests := []struct {
		name string
		p    *pb.Record
	}{
		{
			name: "short prevHash",
			p: &pb.Record{
				Timestamp: "2024-01-01 00:00:00",
				Value:     "20.0",
				PrevHash:  "abc",
				EntryHash: string(ZeroHash),
			},
		},
		{
			name: "empty entryHash",
			p: &pb.Record{
				Timestamp: "2024-01-01 00:00:00",
				Value:     "20.0",
				PrevHash:  string(ZeroHash),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := FromProtoRecord(tt.p); err == nil {
				t.Error("FromProtoRecord() accepted an invalid hash length")
			}
		})
	}
}

func TestFromProtoRecords_ReportsIndex(t *testing.T) {
	good := ToProtoRecord(Record{
		Timestamp: "2024-01-01 00:00:00",
		Value:     "20.0",
		PrevHash:  ZeroHash,
		EntryHash: Commit(ZeroHash, "2024-01-01 00:00:00", "20.0"),
	})
	bad := &pb.Record{Timestamp: "x", Value: "y", PrevHash: "short", EntryHash: "short"}

	if _, err := FromProtoRecords([]*pb.Record{good, bad}); err == nil {
		t.Error("FromProtoRecords() accepted a snapshot with an invalid record")
	}
}

func TestProtoResultRoundTrip(t *testing.T) {
	res := VerificationResult{
		Length:   3,
		Position: 4,
		Reason:   ReasonAnchorMismatch,
		Tip:      Commit(ZeroHash, "2024-01-01 00:00:00", "20.0"),
	}
	if got := FromProtoResult(ToProtoResult(res)); got != res {
		t.Errorf("round trip = %+v, want %+v", got, res)
	}
}
