package tamperlog

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"
)

// scriptedSensor returns canned readings, then failures.
type scriptedSensor struct {
	readings [][2]string
	i        int
}

func (s *scriptedSensor) Read() (string, string, error) {
	if s.i >= len(s.readings) {
		return "", "", errors.New("probe offline")
	}
	r := s.readings[s.i]
	s.i++
	return r[0], r[1], nil
}

func TestSampler_CommitsReadings(t *testing.T) {
	chain, _, _ := newTestChain(t)
	sensor := &scriptedSensor{readings: [][2]string{
		{"2024-01-01 00:00:00", "20.0"},
		{"2024-01-01 00:00:05", "20.5"},
	}}

	sampler := &Sampler{
		Chain:    chain,
		Sensor:   sensor,
		Interval: 5 * time.Millisecond,
		Logger:   zap.NewNop(),
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		sampler.Run(ctx)
		close(done)
	}()

	deadline := time.After(2 * time.Second)
	for {
		records, err := chain.Records()
		if err != nil {
			t.Fatal(err)
		}
		if len(records) >= 2 {
			break
		}
		select {
		case <-deadline:
			t.Fatalf("sampler committed %d records, want 2", len(records))
		case <-time.After(5 * time.Millisecond):
		}
	}

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("sampler did not stop on context cancellation")
	}

	// The sensor has been failing since the canned readings ran out; the
	// loop must have kept going without committing garbage.
	res, err := chain.Verify()
	if err != nil {
		t.Fatal(err)
	}
	if !res.OK || res.Length != 2 {
		t.Errorf("verify after sampling = %+v, want 2 clean records", res)
	}
}
