package tamperlog

import (
	"strconv"
	"strings"
	"testing"
	"time"
)

func TestSimulatedSensor_Bounds(t *testing.T) {
	sensor := NewSimulatedSensor(20.0, 5.0)

	for i := 0; i < 500; i++ {
		_, value, err := sensor.Read()
		if err != nil {
			t.Fatal(err)
		}
		v, err := strconv.ParseFloat(value, 64)
		if err != nil {
			t.Fatalf("value %q is not numeric: %v", value, err)
		}
		if v < 15.0 || v > 25.0 {
			t.Fatalf("reading %d = %v, outside [15, 25]", i, v)
		}
	}
}

func TestSimulatedSensor_Format(t *testing.T) {
	sensor := NewSimulatedSensor(20.0, 5.0)
	fixed := time.Date(2024, 1, 1, 0, 0, 5, 0, time.UTC)
	sensor.now = func() time.Time { return fixed }

	timestamp, value, err := sensor.Read()
	if err != nil {
		t.Fatal(err)
	}
	if timestamp != "2024-01-01 00:00:05" {
		t.Errorf("timestamp = %q, want fixed clock rendering", timestamp)
	}
	if _, err := time.Parse(TimestampLayout, timestamp); err != nil {
		t.Errorf("timestamp %q does not parse: %v", timestamp, err)
	}
	// Readings must survive the row codec.
	for _, f := range []string{timestamp, value} {
		if strings.Contains(f, Delimiter) {
			t.Errorf("field %q contains the delimiter", f)
		}
	}
	if _, err := EncodeRecord(Record{Timestamp: timestamp, Value: value}); err != nil {
		t.Errorf("sensor reading does not encode: %v", err)
	}
}
