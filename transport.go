package tamperlog

import (
	"bytes"
	"fmt"
	"io"
	"net/http"

	pb "github.com/jhilpatel06/TamperAware-IoT-Logger/proto"
	"google.golang.org/protobuf/proto"
)

// Transport defines how a chain snapshot reaches an auditor holding its
// own copy of the trust anchor. Different implementations can use HTTP,
// gRPC, message queues, etc.
type Transport interface {
	// VerifyChain submits the full record snapshot for verification
	// against the auditor's anchor.
	VerifyChain(records []Record) (VerificationResult, error)
}

// HTTPTransport implements Transport using Protocol Buffers over
// HTTP/HTTPS.
type HTTPTransport struct {
	BaseURL string       // Base URL of the auditor (e.g., "https://audit.example.com")
	Client  *http.Client // HTTP client (can customize timeouts, TLS, etc.)
}

// NewHTTPTransport creates a new HTTP transport for communicating with
// a remote auditor.
func NewHTTPTransport(baseURL string) *HTTPTransport {
	return &HTTPTransport{
		BaseURL: baseURL,
		Client:  &http.Client{},
	}
}

// VerifyChain posts the snapshot to the auditor's verify endpoint.
func (t *HTTPTransport) VerifyChain(records []Record) (VerificationResult, error) {
	req := &pb.VerifyRequest{
		Records: ToProtoRecords(records),
	}

	data, err := proto.Marshal(req)
	if err != nil {
		return VerificationResult{}, fmt.Errorf("marshal verify request: %w", err)
	}

	url := t.BaseURL + "/api/v1/audit/verify"
	resp, err := t.Client.Post(url, "application/x-protobuf", bytes.NewReader(data))
	if err != nil {
		return VerificationResult{}, fmt.Errorf("post snapshot: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return VerificationResult{}, fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return VerificationResult{}, fmt.Errorf("auditor returned %d: %s", resp.StatusCode, body)
	}

	var pbResp pb.VerifyResponse
	if err := proto.Unmarshal(body, &pbResp); err != nil {
		return VerificationResult{}, fmt.Errorf("unmarshal verify response: %w", err)
	}

	return FromProtoResult(&pbResp), nil
}

// LocalTransport is a Transport backed by an in-process anchor store.
// Useful for testing or single-machine deployments where the auditor is
// co-located with the logger.
type LocalTransport struct {
	Anchor AnchorStore
}

// NewLocalTransport creates a transport that verifies against a local
// anchor store.
func NewLocalTransport(anchor AnchorStore) *LocalTransport {
	return &LocalTransport{Anchor: anchor}
}

// VerifyChain verifies the snapshot against the local anchor.
func (t *LocalTransport) VerifyChain(records []Record) (VerificationResult, error) {
	anchor, err := t.Anchor.Get()
	if err != nil {
		return VerificationResult{}, fmt.Errorf("read anchor: %w", err)
	}
	return VerifyRecords(records, anchor), nil
}
