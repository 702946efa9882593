package bench

import (
	"bytes"
	"errors"
	"math"
	"runtime"
	"testing"
	"time"

	"github.com/born-ml/transpose/internal/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEffectiveBandwidth(t *testing.T) {
	shape := matrix.Shape{Rows: 1024, Cols: 1024}

	assert.Equal(t, int64(8388608), BytesMoved(shape, 4))
	assert.InDelta(t, 0.8388608, EffectiveBandwidth(shape, 4, 10), 1e-12)
	assert.Equal(t, 8388608/(0.01*1e9), EffectiveBandwidth(shape, 4, 10))
}

func TestEffectiveBandwidth_Scaling(t *testing.T) {
	shape := matrix.Shape{Rows: 512, Cols: 256}

	// Doubling the element size doubles the traffic; doubling time halves the rate.
	f32 := EffectiveBandwidth(shape, matrix.Float32.Size(), 2)
	assert.InDelta(t, 2*f32, EffectiveBandwidth(shape, matrix.Float64.Size(), 2), 1e-12)
	assert.InDelta(t, f32/2, EffectiveBandwidth(shape, matrix.Float32.Size(), 4), 1e-12)

	// Non-square shapes only depend on the element count.
	assert.Equal(t, f32, EffectiveBandwidth(shape.Transposed(), 4, 2))
}

func TestBytesMoved_LargeShape(t *testing.T) {
	shape := matrix.Shape{Rows: 1 << 20, Cols: 1 << 20}
	assert.Equal(t, int64(2)<<40*4, BytesMoved(shape, 4))
}

// fakeClock returns each of ts in turn.
func fakeClock(ts ...time.Time) func() time.Time {
	i := 0
	return func() time.Time {
		t := ts[i]
		i++
		return t
	}
}

func TestTimer(t *testing.T) {
	t0 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	var buf bytes.Buffer

	timer := startTimer(&buf, matrix.Shape{Rows: 1024, Cols: 1024}, 4,
		fakeClock(t0, t0.Add(10*time.Millisecond)))
	sample, err := timer.Stop()
	require.NoError(t, err)

	assert.Equal(t, 10*time.Millisecond, sample.Elapsed)
	assert.Equal(t, 10.0, sample.Millis)
	assert.InDelta(t, 0.8388608, sample.GBps, 1e-12)
	assert.Equal(t, "10, 0.838861\n", buf.String())
}

func TestTimer_ZeroElapsed(t *testing.T) {
	t0 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	var buf bytes.Buffer

	timer := startTimer(&buf, matrix.Shape{Rows: 2, Cols: 2}, 4, fakeClock(t0, t0))
	sample, err := timer.Stop()
	require.NoError(t, err)

	assert.True(t, math.IsInf(sample.GBps, 1))
	assert.Equal(t, "0, inf\n", buf.String())
}

func TestTimer_RealClock(t *testing.T) {
	var buf bytes.Buffer
	timer := StartTimer(&buf, matrix.Shape{Rows: 2, Cols: 2}, 4)
	sample, err := timer.Stop()
	require.NoError(t, err)

	assert.GreaterOrEqual(t, sample.Elapsed, time.Duration(0))
	assert.Contains(t, buf.String(), ", ")
}

func TestWriteSample(t *testing.T) {
	tests := []struct {
		sample Sample
		want   string
	}{
		{Sample{Millis: 10, GBps: 0.8388608}, "10, 0.838861\n"},
		{Sample{Millis: 0.123456789, GBps: 1234567.5}, "0.123457, 1.23457e+06\n"},
		{Sample{Millis: 2.5, GBps: 3}, "2.5, 3\n"},
		{Sample{Millis: 0, GBps: math.Inf(1)}, "0, inf\n"},
		{Sample{Millis: 0, GBps: math.Inf(-1)}, "0, -inf\n"},
		{Sample{Millis: math.NaN(), GBps: math.NaN()}, "nan, nan\n"},
		{Sample{Millis: 1e-7, GBps: 100}, "1e-07, 100\n"},
	}
	for _, tt := range tests {
		var buf bytes.Buffer
		require.NoError(t, WriteSample(&buf, tt.sample))
		assert.Equal(t, tt.want, buf.String())
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func TestWriteSample_Error(t *testing.T) {
	assert.Error(t, WriteSample(failingWriter{}, Sample{}))
}

func TestSummarize(t *testing.T) {
	samples := []Sample{
		{Millis: 1, GBps: 6},
		{Millis: 2, GBps: 3},
		{Millis: 3, GBps: 2},
	}
	s := Summarize(samples)

	assert.Equal(t, 3, s.Trials)
	assert.InDelta(t, 2.0, s.MeanMillis, 1e-12)
	assert.InDelta(t, 1.0, s.StdDevMillis, 1e-12)
	assert.Equal(t, 1.0, s.MinMillis)
	assert.Equal(t, 3.0, s.MaxMillis)
	assert.InDelta(t, 11.0/3, s.MeanGBps, 1e-12)
	assert.Equal(t, 6.0, s.PeakGBps)
	assert.Contains(t, s.String(), "trials=3")
}

func TestSummarize_Edges(t *testing.T) {
	assert.Equal(t, Summary{}, Summarize(nil))

	s := Summarize([]Sample{{Millis: 4, GBps: 1}})
	assert.Equal(t, 1, s.Trials)
	assert.Equal(t, 4.0, s.MeanMillis)
	assert.Zero(t, s.StdDevMillis)
	assert.False(t, math.IsNaN(s.StdDevMillis))
}

func TestDetectHost(t *testing.T) {
	h := DetectHost()

	assert.Equal(t, runtime.GOARCH, h.Arch)
	assert.Positive(t, h.NumCPU)
	require.Positive(t, h.CacheLine)
	assert.Equal(t, h.CacheLine/4, h.ElementsPerLine(4))
	assert.Equal(t, 1, h.ElementsPerLine(0))
	assert.Contains(t, h.String(), "arch="+runtime.GOARCH)
}

func TestHost_String(t *testing.T) {
	h := Host{Arch: "amd64", NumCPU: 8, CacheLine: 64, Features: []string{"sse2", "avx2"}}
	assert.Equal(t, "arch=amd64 cpus=8 cacheline=64B simd=sse2,avx2", h.String())
	assert.Equal(t, 16, h.ElementsPerLine(4))

	h.Features = nil
	assert.Contains(t, h.String(), "simd=none")
}
