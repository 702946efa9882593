package bench

import (
	"fmt"
	"io"
	"log"

	"github.com/born-ml/transpose/internal/matrix"
)

// Run executes cfg.Runs sequential trials, writing one sample line per trial
// to w. Diagnostics go to logger, which may be nil.
func Run(cfg Config, w io.Writer, logger *log.Logger) (Summary, error) {
	if err := cfg.Validate(); err != nil {
		return Summary{}, err
	}
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}

	switch cfg.DType {
	case matrix.Float32:
		return run[float32](cfg, w, logger)
	case matrix.Float64:
		return run[float64](cfg, w, logger)
	case matrix.Int32:
		return run[int32](cfg, w, logger)
	case matrix.Int64:
		return run[int64](cfg, w, logger)
	default:
		return Summary{}, fmt.Errorf("%w: %d", matrix.ErrUnknownDataType, int(cfg.DType))
	}
}

func run[T matrix.Element](cfg Config, w io.Writer, logger *log.Logger) (Summary, error) {
	dim := cfg.Dim()
	elemSize := cfg.DType.Size()

	if cfg.Verbose {
		host := DetectHost()
		logger.Printf("host: %s", host)
		logger.Printf("config: dim=%d runs=%d strategy=%s block=%d dtype=%s (%d per cache line) bytes/run=%d",
			dim, cfg.Runs, cfg.Strategy, cfg.BlockSize, cfg.DType, host.ElementsPerLine(elemSize),
			BytesMoved(matrix.Shape{Rows: dim, Cols: dim}, elemSize))
	}

	src, err := matrix.New[T](dim, dim, matrix.FillRandom, matrix.WithRand(matrix.NewRand(cfg.Seed)))
	if err != nil {
		return Summary{}, fmt.Errorf("allocate source: %w", err)
	}
	dst, err := matrix.New[T](dim, dim, matrix.FillZero)
	if err != nil {
		return Summary{}, fmt.Errorf("allocate destination: %w", err)
	}

	var baseline *matrix.Matrix[T]
	if cfg.Verify {
		baseline = src.TransposeRowMajor()
	}

	samples := make([]Sample, 0, cfg.Runs)
	for i := 0; i < cfg.Runs; i++ {
		timer := StartTimer(w, src.Shape(), elemSize)
		result, err := src.Transpose(cfg.Strategy, cfg.BlockSize)
		if err != nil {
			return Summarize(samples), err
		}
		dst.Assign(result)
		sample, err := timer.Stop()
		if err != nil {
			return Summarize(samples), fmt.Errorf("write sample: %w", err)
		}
		samples = append(samples, sample)

		if baseline != nil && !dst.Equal(baseline) {
			return Summarize(samples), fmt.Errorf("run %d (%s): %w", i, cfg.Strategy, ErrVerifyFailed)
		}
	}

	if cfg.Print {
		if err := src.Format(w); err != nil {
			return Summarize(samples), err
		}
		if err := dst.Format(w); err != nil {
			return Summarize(samples), err
		}
	}

	summary := Summarize(samples)
	if cfg.Verify {
		logger.Printf("verify: %d runs match row-major baseline", len(samples))
	}
	if cfg.Summary {
		logger.Printf("summary: %s", summary)
	}
	return summary, nil
}
