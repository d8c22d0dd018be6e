package tamperlog

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// Sampler appends one sensor reading to the chain at a fixed interval.
// It is the normal-operation driver of the append engine.
type Sampler struct {
	Chain    *Chain
	Sensor   Sensor
	Interval time.Duration
	Logger   *zap.Logger
}

// Run blocks until ctx is cancelled. Read or append failures are logged
// and the loop continues; a stalled storage medium must not kill the
// process, only delay commits.
func (s *Sampler) Run(ctx context.Context) {
	ticker := time.NewTicker(s.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			ts, value, err := s.Sensor.Read()
			if err != nil {
				s.Logger.Warn("sensor read failed", zap.Error(err))
				continue
			}
			rec, err := s.Chain.Append(ts, value)
			if err != nil {
				s.Logger.Error("append failed", zap.Error(err))
				continue
			}
			RecordAppend()
			s.Logger.Info("reading committed",
				zap.String("timestamp", rec.Timestamp),
				zap.String("value", rec.Value),
				zap.String("tip", string(rec.EntryHash)),
			)
		}
	}
}
