package bench

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"time"

	"github.com/born-ml/transpose/internal/matrix"
)

// Sample is the measurement of a single trial.
type Sample struct {
	Elapsed time.Duration
	Millis  float64
	GBps    float64
}

// Timer measures one transpose and reports it when stopped.
//
// Typical use wraps the call being measured:
//
//	t := bench.StartTimer(os.Stdout, src.Shape(), 4)
//	dst.Assign(src.TransposeRowMajor())
//	sample, err := t.Stop()
type Timer struct {
	w        io.Writer
	shape    matrix.Shape
	elemSize int
	now      func() time.Time
	start    time.Time
}

// StartTimer starts timing a transpose of the given source shape.
func StartTimer(w io.Writer, shape matrix.Shape, elemSize int) *Timer {
	return startTimer(w, shape, elemSize, time.Now)
}

func startTimer(w io.Writer, shape matrix.Shape, elemSize int, now func() time.Time) *Timer {
	return &Timer{
		w:        w,
		shape:    shape,
		elemSize: elemSize,
		now:      now,
		start:    now(),
	}
}

// Stop ends the measurement and writes "<ms>, <GB/s>" as one line.
func (t *Timer) Stop() (Sample, error) {
	elapsed := t.now().Sub(t.start)
	ms := float64(elapsed) / float64(time.Millisecond)
	s := Sample{
		Elapsed: elapsed,
		Millis:  ms,
		GBps:    EffectiveBandwidth(t.shape, t.elemSize, ms),
	}
	return s, WriteSample(t.w, s)
}

// WriteSample writes a sample in the line format consumed by log scrapers.
// Values use six significant digits, like a default C++ output stream.
func WriteSample(w io.Writer, s Sample) error {
	_, err := fmt.Fprintf(w, "%s, %s\n", formatValue(s.Millis), formatValue(s.GBps))
	return err
}

// formatValue renders v as %.6g, spelling non-finite values "inf", "-inf"
// and "nan" so a run too fast for the clock still parses downstream.
func formatValue(v float64) string {
	switch {
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	case math.IsNaN(v):
		return "nan"
	}
	return strconv.FormatFloat(v, 'g', 6, 64)
}
