package bench

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summary aggregates the samples of a benchmark run.
type Summary struct {
	Trials       int
	MeanMillis   float64
	StdDevMillis float64
	MinMillis    float64
	MaxMillis    float64
	MeanGBps     float64
	PeakGBps     float64
}

// Summarize computes run statistics. Fewer than two samples have zero spread.
func Summarize(samples []Sample) Summary {
	if len(samples) == 0 {
		return Summary{}
	}

	millis := make([]float64, len(samples))
	gbps := make([]float64, len(samples))
	for i, s := range samples {
		millis[i] = s.Millis
		gbps[i] = s.GBps
	}

	sum := Summary{
		Trials:    len(samples),
		MinMillis: floats.Min(millis),
		MaxMillis: floats.Max(millis),
		MeanGBps:  stat.Mean(gbps, nil),
		PeakGBps:  floats.Max(gbps),
	}
	if len(samples) > 1 {
		sum.MeanMillis, sum.StdDevMillis = stat.MeanStdDev(millis, nil)
	} else {
		sum.MeanMillis = millis[0]
	}
	return sum
}

// String formats the summary for the log.
func (s Summary) String() string {
	return fmt.Sprintf("trials=%d mean=%.4gms sd=%.4gms min=%.4gms max=%.4gms bw_mean=%.4gGB/s bw_peak=%.4gGB/s",
		s.Trials, s.MeanMillis, s.StdDevMillis, s.MinMillis, s.MaxMillis, s.MeanGBps, s.PeakGBps)
}
