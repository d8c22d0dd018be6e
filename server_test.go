package tamperlog

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.uber.org/zap"
	"google.golang.org/protobuf/proto"

	pb "github.com/jhilpatel06/TamperAware-IoT-Logger/proto"
)

// newTestServer stands up the full HTTP surface over a fresh chain.
func newTestServer(t *testing.T) (*httptest.Server, *Chain, *Attacker) {
	t.Helper()
	chain, logPath, anchor := newTestChain(t)
	attacker := &Attacker{LogPath: logPath}
	srv := NewServer(chain, NewSimulatedSensor(20.0, 5.0), attacker, anchor, zap.NewNop())
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	return ts, chain, attacker
}

func postJSON(t *testing.T, url string, body any) *http.Response {
	t.Helper()
	data, err := json.Marshal(body)
	if err != nil {
		t.Fatal(err)
	}
	resp, err := http.Post(url, "application/json", bytes.NewReader(data))
	if err != nil {
		t.Fatal(err)
	}
	return resp
}

func decodeJSON(t *testing.T, resp *http.Response, v any) {
	t.Helper()
	defer resp.Body.Close()
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		t.Fatal(err)
	}
}

func TestServer_AppendAndTip(t *testing.T) {
	ts, chain, _ := newTestServer(t)

	resp := postJSON(t, ts.URL+"/api/v1/chain/append", map[string]string{
		"timestamp": "2024-01-01 00:00:00",
		"value":     "20.0",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("append status = %d", resp.StatusCode)
	}
	var appended struct {
		EntryHash string `json:"entryHash"`
	}
	decodeJSON(t, resp, &appended)
	if want := Commit(ZeroHash, "2024-01-01 00:00:00", "20.0"); appended.EntryHash != string(want) {
		t.Errorf("entryHash = %s, want %s", appended.EntryHash, want)
	}

	resp, err := http.Get(ts.URL + "/api/v1/chain/tip")
	if err != nil {
		t.Fatal(err)
	}
	var tip struct {
		Tip string `json:"tip"`
	}
	decodeJSON(t, resp, &tip)
	want, _ := chain.CurrentTip()
	if tip.Tip != string(want) {
		t.Errorf("tip = %s, want %s", tip.Tip, want)
	}
}

func TestServer_AppendFromSensor(t *testing.T) {
	ts, chain, _ := newTestServer(t)

	resp, err := http.Post(ts.URL+"/api/v1/chain/append", "application/json", nil)
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("sensor append status = %d", resp.StatusCode)
	}

	records, err := chain.Records()
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 1 {
		t.Errorf("got %d records, want 1", len(records))
	}
}

func TestServer_TipProtobuf(t *testing.T) {
	ts, chain, _ := newTestServer(t)
	if _, err := chain.Append("2024-01-01 00:00:00", "20.0"); err != nil {
		t.Fatal(err)
	}

	req, err := http.NewRequest(http.MethodGet, ts.URL+"/api/v1/chain/tip", nil)
	if err != nil {
		t.Fatal(err)
	}
	req.Header.Set("Accept", "application/x-protobuf")
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if ct := resp.Header.Get("Content-Type"); ct != "application/x-protobuf" {
		t.Errorf("Content-Type = %s", ct)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatal(err)
	}
	var pbTip pb.TipResponse
	if err := proto.Unmarshal(body, &pbTip); err != nil {
		t.Fatal(err)
	}
	want, _ := chain.CurrentTip()
	if pbTip.Tip != string(want) {
		t.Errorf("proto tip = %s, want %s", pbTip.Tip, want)
	}
}

func TestServer_VerifyDetectsTampering(t *testing.T) {
	ts, chain, attacker := newTestServer(t)
	for _, r := range [][2]string{
		{"2024-01-01 00:00:00", "20.0"},
		{"2024-01-01 00:00:05", "20.5"},
	} {
		if _, err := chain.Append(r[0], r[1]); err != nil {
			t.Fatal(err)
		}
	}

	var result struct {
		Verified bool   `json:"verified"`
		Position int    `json:"position"`
		Reason   string `json:"reason"`
	}
	resp, err := http.Get(ts.URL + "/api/v1/chain/verify")
	if err != nil {
		t.Fatal(err)
	}
	decodeJSON(t, resp, &result)
	if !result.Verified {
		t.Fatalf("clean chain reported tampered: %+v", result)
	}

	if err := attacker.CorruptValue(1, "99.9"); err != nil {
		t.Fatal(err)
	}
	resp, err = http.Get(ts.URL + "/api/v1/chain/verify")
	if err != nil {
		t.Fatal(err)
	}
	decodeJSON(t, resp, &result)
	if result.Verified {
		t.Fatal("tampered chain reported clean")
	}
	if result.Reason != string(ReasonHashMismatch) || result.Position != 1 {
		t.Errorf("result = %+v, want hash_mismatch at 1", result)
	}
}

func TestServer_AttackEndpoints(t *testing.T) {
	ts, chain, _ := newTestServer(t)
	if _, err := chain.Append("2024-01-01 00:00:00", "20.0"); err != nil {
		t.Fatal(err)
	}

	resp := postJSON(t, ts.URL+"/api/v1/attack/corrupt-value", map[string]any{
		"position": 1,
		"value":    "99.9",
	})
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("attack status = %d", resp.StatusCode)
	}

	res, err := chain.Verify()
	if err != nil {
		t.Fatal(err)
	}
	if res.Reason != ReasonHashMismatch {
		t.Errorf("Reason = %s, want %s", res.Reason, ReasonHashMismatch)
	}

	resp = postJSON(t, ts.URL+"/api/v1/attack/no-such-attack", map[string]any{})
	resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("unknown attack status = %d, want 404", resp.StatusCode)
	}
}

func TestServer_AuditVerifyProtobuf(t *testing.T) {
	ts, chain, _ := newTestServer(t)
	for _, r := range [][2]string{
		{"2024-01-01 00:00:00", "20.0"},
		{"2024-01-01 00:00:05", "20.5"},
	} {
		if _, err := chain.Append(r[0], r[1]); err != nil {
			t.Fatal(err)
		}
	}

	records, err := chain.Records()
	if err != nil {
		t.Fatal(err)
	}
	data, err := proto.Marshal(&pb.VerifyRequest{Records: ToProtoRecords(records)})
	if err != nil {
		t.Fatal(err)
	}
	resp, err := http.Post(ts.URL+"/api/v1/audit/verify", "application/x-protobuf", bytes.NewReader(data))
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatal(err)
	}
	var pbRes pb.VerifyResponse
	if err := proto.Unmarshal(body, &pbRes); err != nil {
		t.Fatal(err)
	}
	if !pbRes.Verified || pbRes.Length != 2 {
		t.Errorf("audit response = %+v, want verified with 2 records", &pbRes)
	}

	// A truncated snapshot no longer matches the auditor's anchor.
	data, err = proto.Marshal(&pb.VerifyRequest{Records: ToProtoRecords(records[:1])})
	if err != nil {
		t.Fatal(err)
	}
	resp, err = http.Post(ts.URL+"/api/v1/audit/verify", "application/x-protobuf", bytes.NewReader(data))
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	body, err = io.ReadAll(resp.Body)
	if err != nil {
		t.Fatal(err)
	}
	if err := proto.Unmarshal(body, &pbRes); err != nil {
		t.Fatal(err)
	}
	if pbRes.Verified || pbRes.Reason != string(ReasonAnchorMismatch) {
		t.Errorf("truncated snapshot = %+v, want anchor_mismatch", &pbRes)
	}
}

func TestServer_Reset(t *testing.T) {
	ts, chain, _ := newTestServer(t)
	if _, err := chain.Append("2024-01-01 00:00:00", "20.0"); err != nil {
		t.Fatal(err)
	}

	resp := postJSON(t, ts.URL+"/api/v1/chain/reset", nil)
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("reset status = %d", resp.StatusCode)
	}

	records, err := chain.Records()
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 0 {
		t.Errorf("chain after reset has %d records", len(records))
	}
}

func TestServer_MethodNotAllowed(t *testing.T) {
	ts, _, _ := newTestServer(t)

	resp, err := http.Get(ts.URL + "/api/v1/chain/reset")
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusMethodNotAllowed {
		t.Errorf("GET reset status = %d, want 405", resp.StatusCode)
	}

	body := strings.NewReader("{}")
	req, err := http.NewRequest(http.MethodDelete, ts.URL+"/api/v1/chain", body)
	if err != nil {
		t.Fatal(err)
	}
	resp, err = http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusMethodNotAllowed {
		t.Errorf("DELETE chain status = %d, want 405", resp.StatusCode)
	}
}

func TestServer_Health(t *testing.T) {
	ts, _, _ := newTestServer(t)
	resp, err := http.Get(ts.URL + "/healthz")
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("healthz status = %d", resp.StatusCode)
	}
}
