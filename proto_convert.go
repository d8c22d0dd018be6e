package tamperlog

import (
	"fmt"

	pb "github.com/jhilpatel06/TamperAware-IoT-Logger/proto"
)

// ToProtoRecord converts Record to protobuf message
func ToProtoRecord(r Record) *pb.Record {
	return &pb.Record{
		Timestamp: r.Timestamp,
		Value:     r.Value,
		PrevHash:  string(r.PrevHash),
		EntryHash: string(r.EntryHash),
	}
}

// FromProtoRecord converts protobuf message to Record
func FromProtoRecord(p *pb.Record) (Record, error) {
	var r Record
	r.Timestamp = p.Timestamp
	r.Value = p.Value

	if len(p.PrevHash) != HashHexLen {
		return r, fmt.Errorf("invalid prevHash length: expected %d, got %d", HashHexLen, len(p.PrevHash))
	}
	r.PrevHash = Hash(p.PrevHash)

	if len(p.EntryHash) != HashHexLen {
		return r, fmt.Errorf("invalid entryHash length: expected %d, got %d", HashHexLen, len(p.EntryHash))
	}
	r.EntryHash = Hash(p.EntryHash)

	return r, nil
}

// ToProtoRecords converts a record slice to protobuf messages
func ToProtoRecords(records []Record) []*pb.Record {
	out := make([]*pb.Record, len(records))
	for i, r := range records {
		out[i] = ToProtoRecord(r)
	}
	return out
}

// FromProtoRecords converts protobuf messages to a record slice
func FromProtoRecords(ps []*pb.Record) ([]Record, error) {
	out := make([]Record, len(ps))
	for i, p := range ps {
		r, err := FromProtoRecord(p)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i+1, err)
		}
		out[i] = r
	}
	return out, nil
}

// ToProtoResult converts VerificationResult to protobuf message
func ToProtoResult(res VerificationResult) *pb.VerifyResponse {
	return &pb.VerifyResponse{
		Verified: res.OK,
		Length:   uint32(res.Length),
		Position: uint32(res.Position),
		Reason:   string(res.Reason),
		Tip:      string(res.Tip),
	}
}

// FromProtoResult converts protobuf message to VerificationResult
func FromProtoResult(p *pb.VerifyResponse) VerificationResult {
	return VerificationResult{
		OK:       p.Verified,
		Length:   int(p.Length),
		Position: int(p.Position),
		Reason:   TamperReason(p.Reason),
		Tip:      Hash(p.Tip),
	}
}
