// Package telemetry parses the load-cell test rig's thrust log files and
// derives summary statistics and charts from them.
package telemetry

import (
	"math"
	"time"
)

// standardGravity converts a load-cell reading in grams to newtons.
const standardGravity = 9.80665

// Sample is one load-cell reading.
type Sample struct {
	// Millis is the rig uptime at capture, in milliseconds.
	Millis int64

	// Raw is the uncalibrated ADC reading.
	Raw int64

	// Weight is the calibrated reading in grams.
	Weight float64
}

// Log is one parsed thrust log, samples in capture order.
type Log struct {
	Samples []Sample
}

// Calibration converts raw ADC readings to grams.
type Calibration struct {
	Tare        float64
	ScaleFactor float64
}

// Apply converts a raw reading to grams.
func (c Calibration) Apply(raw int64) float64 {
	return (float64(raw) - c.Tare) / c.ScaleFactor
}

// Recalibrate replaces every sample's weight with the value derived from its
// raw reading and cal. The receiver is not modified.
func (l *Log) Recalibrate(cal Calibration) *Log {
	out := &Log{Samples: make([]Sample, len(l.Samples))}
	for i, s := range l.Samples {
		s.Weight = cal.Apply(s.Raw)
		out.Samples[i] = s
	}
	return out
}

// Stats summarizes one thrust log.
type Stats struct {
	Samples   int           `json:"samples"`
	Duration  time.Duration `json:"duration"`
	PeakGrams float64       `json:"peak_grams"`
	MeanGrams float64       `json:"mean_grams"`

	// ImpulseNs is the time integral of thrust in newton-seconds, computed
	// by trapezoidal integration of the weight trace.
	ImpulseNs float64 `json:"impulse_ns"`
}

// ComputeStats derives summary statistics from l. An empty log yields the
// zero Stats.
func (l *Log) ComputeStats() Stats {
	if len(l.Samples) == 0 {
		return Stats{}
	}

	stats := Stats{
		Samples:   len(l.Samples),
		PeakGrams: math.Inf(-1),
	}
	var sum float64
	for _, s := range l.Samples {
		sum += s.Weight
		if s.Weight > stats.PeakGrams {
			stats.PeakGrams = s.Weight
		}
	}
	stats.MeanGrams = sum / float64(len(l.Samples))

	first, last := l.Samples[0], l.Samples[len(l.Samples)-1]
	stats.Duration = time.Duration(last.Millis-first.Millis) * time.Millisecond

	for i := 1; i < len(l.Samples); i++ {
		prev, cur := l.Samples[i-1], l.Samples[i]
		dt := float64(cur.Millis-prev.Millis) / 1000
		meanForce := (prev.Weight + cur.Weight) / 2 / 1000 * standardGravity
		stats.ImpulseNs += meanForce * dt
	}
	return stats
}
