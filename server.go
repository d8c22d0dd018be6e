package tamperlog

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"google.golang.org/protobuf/proto"

	pb "github.com/jhilpatel06/TamperAware-IoT-Logger/proto"
)

// Server exposes the chain over HTTP: append, inspect, verify, reset,
// plus the auditor endpoint that checks a submitted snapshot against the
// server's own anchor copy. The attack endpoints are the demo surface
// and write to the log file behind the chain's back.
type Server struct {
	Chain    *Chain
	Sensor   Sensor
	Attacker *Attacker
	Anchor   AnchorStore // auditor's anchor copy, independent of Chain
	Logger   *zap.Logger
}

// NewServer wires the HTTP surface around a chain.
func NewServer(chain *Chain, sensor Sensor, attacker *Attacker, anchor AnchorStore, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{
		Chain:    chain,
		Sensor:   sensor,
		Attacker: attacker,
		Anchor:   anchor,
		Logger:   logger,
	}
}

// isProtobuf checks if the request asks for protobuf encoding.
func isProtobuf(r *http.Request) bool {
	ct := r.Header.Get("Content-Type")
	if strings.HasPrefix(ct, "application/x-protobuf") || strings.HasPrefix(ct, "application/protobuf") {
		return true
	}
	accept := r.Header.Get("Accept")
	return strings.HasPrefix(accept, "application/x-protobuf") || strings.HasPrefix(accept, "application/protobuf")
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// encodeResult writes a VerificationResult in the requested format.
func encodeResult(w http.ResponseWriter, r *http.Request, res VerificationResult) {
	if isProtobuf(r) {
		data, err := proto.Marshal(ToProtoResult(res))
		if err != nil {
			http.Error(w, fmt.Sprintf("Failed to encode response: %v", err), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/x-protobuf")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(data)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"verified": res.OK,
		"length":   res.Length,
		"position": res.Position,
		"reason":   string(res.Reason),
		"tip":      string(res.Tip),
	})
}

// HandleChain handles GET /api/v1/chain - the full decoded chain.
func (s *Server) HandleChain(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	records, err := s.Chain.Records()
	if err != nil {
		http.Error(w, fmt.Sprintf("Read chain failed: %v", err), http.StatusInternalServerError)
		return
	}
	out := make([]map[string]string, len(records))
	for i, rec := range records {
		out[i] = map[string]string{
			"timestamp": rec.Timestamp,
			"value":     rec.Value,
			"prevHash":  string(rec.PrevHash),
			"entryHash": string(rec.EntryHash),
		}
	}
	writeJSON(w, http.StatusOK, map[string]any{"records": out, "length": len(out)})
}

// HandleTip handles GET /api/v1/chain/tip - the current tip hash.
// Supports both JSON and Protocol Buffer encoding.
func (s *Server) HandleTip(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	tip, err := s.Chain.CurrentTip()
	if err != nil {
		http.Error(w, fmt.Sprintf("Read tip failed: %v", err), http.StatusInternalServerError)
		return
	}
	if isProtobuf(r) {
		data, err := proto.Marshal(&pb.TipResponse{Tip: string(tip)})
		if err != nil {
			http.Error(w, fmt.Sprintf("Failed to encode response: %v", err), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/x-protobuf")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(data)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"tip": string(tip)})
}

// HandleVerify handles GET /api/v1/chain/verify - verify the server's
// own log against its anchor. Supports both JSON and Protocol Buffer
// encoding.
func (s *Server) HandleVerify(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	res, err := s.Chain.Verify()
	if err != nil {
		http.Error(w, fmt.Sprintf("Verification failed: %v", err), http.StatusInternalServerError)
		return
	}
	RecordVerification(res)
	if !res.OK {
		s.Logger.Warn("chain verification failed",
			zap.String("reason", string(res.Reason)),
			zap.Int("position", res.Position))
	}
	encodeResult(w, r, res)
}

// HandleAppend handles POST /api/v1/chain/append. A JSON body supplies
// an explicit reading; an empty body samples the sensor.
func (s *Server) HandleAppend(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req struct {
		Timestamp string `json:"timestamp"`
		Value     string `json:"value"`
	}
	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, fmt.Sprintf("Read body: %v", err), http.StatusBadRequest)
		return
	}
	switch {
	case len(body) > 0:
		if err := json.Unmarshal(body, &req); err != nil {
			http.Error(w, fmt.Sprintf("Invalid request: %v", err), http.StatusBadRequest)
			return
		}
	case s.Sensor != nil:
		req.Timestamp, req.Value, err = s.Sensor.Read()
		if err != nil {
			http.Error(w, fmt.Sprintf("Sensor read failed: %v", err), http.StatusInternalServerError)
			return
		}
	default:
		http.Error(w, "Empty body and no sensor configured", http.StatusBadRequest)
		return
	}

	rec, err := s.Chain.Append(req.Timestamp, req.Value)
	if err != nil {
		http.Error(w, fmt.Sprintf("Append failed: %v", err), http.StatusInternalServerError)
		return
	}
	RecordAppend()
	s.Logger.Info("record appended",
		zap.String("timestamp", rec.Timestamp),
		zap.String("value", rec.Value))
	writeJSON(w, http.StatusOK, map[string]string{
		"status":    "appended",
		"timestamp": rec.Timestamp,
		"value":     rec.Value,
		"entryHash": string(rec.EntryHash),
	})
}

// HandleRecommit handles POST /api/v1/chain/recommit - recovery from
// the stale-anchor condition.
func (s *Server) HandleRecommit(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if err := s.Chain.RecommitAnchor(); err != nil {
		http.Error(w, fmt.Sprintf("Recommit failed: %v", err), http.StatusConflict)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "recommitted"})
}

// HandleReset handles POST /api/v1/chain/reset. The reset itself is
// recorded in the operational log, outside the chain, since the chain
// cannot attest to its own erasure.
func (s *Server) HandleReset(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if err := s.Chain.Reset(); err != nil {
		http.Error(w, fmt.Sprintf("Reset failed: %v", err), http.StatusInternalServerError)
		return
	}
	RecordReset()
	s.Logger.Warn("chain reset: all history discarded", zap.String("remote", r.RemoteAddr))
	writeJSON(w, http.StatusOK, map[string]string{"status": "reset"})
}

// HandleAuditVerify handles POST /api/v1/audit/verify - a remote device
// submits its chain snapshot; the server verifies it against its own
// anchor copy. Supports both JSON and Protocol Buffer encoding.
func (s *Server) HandleAuditVerify(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	records, err := s.decodeAuditRequest(r)
	if err != nil {
		http.Error(w, fmt.Sprintf("Invalid request: %v", err), http.StatusBadRequest)
		return
	}
	anchor, err := s.Anchor.Get()
	if err != nil {
		http.Error(w, fmt.Sprintf("Read anchor failed: %v", err), http.StatusInternalServerError)
		return
	}

	res := VerifyRecords(records, anchor)
	RecordVerification(res)
	if !res.OK {
		s.Logger.Warn("audit verification failed",
			zap.String("reason", string(res.Reason)),
			zap.Int("position", res.Position))
	}
	encodeResult(w, r, res)
}

// decodeAuditRequest decodes the snapshot from either JSON or Protobuf.
func (s *Server) decodeAuditRequest(r *http.Request) ([]Record, error) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}

	if isProtobuf(r) {
		var pbReq pb.VerifyRequest
		if err := proto.Unmarshal(body, &pbReq); err != nil {
			return nil, fmt.Errorf("unmarshal protobuf: %w", err)
		}
		return FromProtoRecords(pbReq.Records)
	}

	var req struct {
		Records []struct {
			Timestamp string `json:"timestamp"`
			Value     string `json:"value"`
			PrevHash  string `json:"prevHash"`
			EntryHash string `json:"entryHash"`
		} `json:"records"`
	}
	if err := json.Unmarshal(body, &req); err != nil {
		return nil, fmt.Errorf("decode json: %w", err)
	}
	records := make([]Record, len(req.Records))
	for i, rr := range req.Records {
		records[i] = Record{
			Timestamp: rr.Timestamp,
			Value:     rr.Value,
			PrevHash:  Hash(rr.PrevHash),
			EntryHash: Hash(rr.EntryHash),
		}
	}
	return records, nil
}

// HandleAttack handles POST /api/v1/attack/{kind} - the demo surface.
// Each kind tampers with the log file directly, bypassing the chain.
func (s *Server) HandleAttack(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if s.Attacker == nil {
		http.Error(w, "Attack surface not enabled", http.StatusForbidden)
		return
	}

	kind := strings.TrimPrefix(r.URL.Path, "/api/v1/attack/")
	var req struct {
		Position  int         `json:"position"`
		Timestamp string      `json:"timestamp"`
		Value     string      `json:"value"`
		Row       string      `json:"row"`
		Readings  [][2]string `json:"readings"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && err != io.EOF {
		http.Error(w, fmt.Sprintf("Invalid request: %v", err), http.StatusBadRequest)
		return
	}

	var err error
	switch kind {
	case "corrupt-value":
		err = s.Attacker.CorruptValue(req.Position, req.Value)
	case "corrupt-timestamp":
		err = s.Attacker.CorruptTimestamp(req.Position, req.Timestamp)
	case "replace-row":
		err = s.Attacker.ReplaceRow(req.Position, req.Row)
	case "append-unlinked":
		err = s.Attacker.AppendUnlinked(req.Timestamp, req.Value)
	case "append-bare":
		err = s.Attacker.AppendBare(req.Timestamp, req.Value)
	case "replace-chain":
		err = s.Attacker.ReplaceChain(req.Readings)
	default:
		http.Error(w, fmt.Sprintf("Unknown attack kind %q", kind), http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, fmt.Sprintf("Attack failed: %v", err), http.StatusBadRequest)
		return
	}
	s.Logger.Info("attack applied", zap.String("kind", kind))
	writeJSON(w, http.StatusOK, map[string]string{"status": "tampered", "kind": kind})
}

// HandleHealth handles GET /healthz.
func (s *Server) HandleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// SetupRoutes configures the HTTP routes.
func (s *Server) SetupRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/healthz", s.HandleHealth)
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/api/v1/chain", s.HandleChain)
	mux.HandleFunc("/api/v1/chain/tip", s.HandleTip)
	mux.HandleFunc("/api/v1/chain/verify", s.HandleVerify)
	mux.HandleFunc("/api/v1/chain/append", s.HandleAppend)
	mux.HandleFunc("/api/v1/chain/recommit", s.HandleRecommit)
	mux.HandleFunc("/api/v1/chain/reset", s.HandleReset)
	mux.HandleFunc("/api/v1/audit/verify", s.HandleAuditVerify)
	mux.HandleFunc("/api/v1/attack/", s.HandleAttack)
}

// Handler returns the complete HTTP handler.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	s.SetupRoutes(mux)
	return mux
}
