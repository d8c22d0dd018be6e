package tamperlog

import (
	"math/rand"
	"strconv"
	"sync"
	"time"
)

// TimestampLayout is the wall-clock format written into each record.
const TimestampLayout = "2006-01-02 15:04:05"

// Sensor supplies one reading on demand: a wall-clock timestamp string
// and a numeric value rendered as text. Implementations must not emit
// the record delimiter in either field.
type Sensor interface {
	Read() (timestamp, value string, err error)
}

// SimulatedSensor produces a bounded random walk around a base
// temperature. It stands in for the hardware probe on machines without
// one.
type SimulatedSensor struct {
	Base float64
	Span float64

	mu   sync.Mutex
	last float64
	rng  *rand.Rand
	now  func() time.Time
}

// NewSimulatedSensor creates a sensor walking within [base-span, base+span].
func NewSimulatedSensor(base, span float64) *SimulatedSensor {
	return &SimulatedSensor{
		Base: base,
		Span: span,
		last: base,
		rng:  rand.New(rand.NewSource(time.Now().UnixNano())),
		now:  time.Now,
	}
}

// Read returns the current wall-clock time and the next value of the walk.
func (s *SimulatedSensor) Read() (string, string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	step := (s.rng.Float64() - 0.5) * s.Span / 2
	s.last += step
	if s.last > s.Base+s.Span {
		s.last = s.Base + s.Span
	}
	if s.last < s.Base-s.Span {
		s.last = s.Base - s.Span
	}
	return s.now().Format(TimestampLayout), strconv.FormatFloat(s.last, 'f', 1, 64), nil
}
