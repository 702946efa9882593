package bench

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"

	"github.com/born-ml/transpose/internal/matrix"
)

// Exponent bounds for the matrix dimension 2^exponent.
const (
	MinExponent = 1
	MaxExponent = 30
)

// Config controls a benchmark run.
type Config struct {
	Exponent  int             // Matrix dimension is 1 << Exponent.
	Runs      int             // Number of timed trials.
	BlockSize int             // Tile edge for the blocked strategy; ignored otherwise.
	Strategy  matrix.Strategy // Transpose algorithm under test.
	DType     matrix.DataType // Element type of the matrices.
	Seed      int64           // Random fill seed; 0 means time-seeded.
	Verify    bool            // Compare every result against the row-major baseline.
	Summary   bool            // Log run statistics after the last trial.
	Verbose   bool            // Log host and configuration before the first trial.
	Print     bool            // Print source and result matrices after the run.
}

// DefaultConfig returns the defaults used when no arguments are given.
func DefaultConfig() Config {
	return Config{
		Exponent:  1,
		Runs:      1,
		BlockSize: matrix.DefaultBlockSize,
		Strategy:  matrix.RowMajor,
		DType:     matrix.Float32,
	}
}

// Dim returns the matrix dimension.
func (c Config) Dim() int {
	return 1 << c.Exponent
}

// Validate checks the configuration before any allocation happens.
func (c Config) Validate() error {
	if err := ValidateExponent(c.Exponent); err != nil {
		return err
	}
	if c.Runs < 0 {
		return fmt.Errorf("%w: runs = %d (must be >= 0)", ErrInvalidArgument, c.Runs)
	}
	if c.Strategy == matrix.Blocked && c.BlockSize < 1 {
		return fmt.Errorf("%w: block size = %d (must be >= 1)", ErrInvalidArgument, c.BlockSize)
	}
	return nil
}

// ValidateExponent checks that 2^exponent is a supported dimension.
func ValidateExponent(exponent int) error {
	if exponent < MinExponent || exponent > MaxExponent {
		return fmt.Errorf("%w (got %d)", ErrExponentRange, exponent)
	}
	return nil
}

// ParseArgs resolves command-line arguments into a Config.
//
// Usage:
//
//	transpose [flags] [exponent [runs [block]]]
//
// Flag errors and usage text are written to output. Malformed flags return
// an error matching ErrUsage; bad values return ErrInvalidArgument,
// ErrExponentRange or a matrix parse error.
func ParseArgs(args []string, output io.Writer) (Config, error) {
	cfg := DefaultConfig()

	fs := flag.NewFlagSet("transpose", flag.ContinueOnError)
	fs.SetOutput(output)
	strategy := fs.String("strategy", cfg.Strategy.String(), "transpose strategy: row, linear or blocked")
	dtype := fs.String("dtype", cfg.DType.String(), "element type: float32, float64, int32 or int64")
	fs.Int64Var(&cfg.Seed, "seed", 0, "random fill seed (0 = time-seeded)")
	fs.BoolVar(&cfg.Verify, "verify", false, "check every result against the row-major baseline")
	fs.BoolVar(&cfg.Summary, "summary", false, "log run statistics after the last trial")
	fs.BoolVar(&cfg.Verbose, "v", false, "log host and configuration")
	fs.BoolVar(&cfg.Print, "print", false, "print source and result matrices (small exponents only)")
	fs.Usage = func() {
		fmt.Fprintf(output, "Usage: transpose [flags] [exponent [runs [block]]]\n\n")
		fmt.Fprintf(output, "Transposes a 2^exponent square matrix and prints \"ms, GB/s\" per run.\n\n")
		fmt.Fprintf(output, "Arguments:\n")
		fmt.Fprintf(output, "  exponent  matrix dimension exponent, %d..%d (default %d)\n", MinExponent, MaxExponent, cfg.Exponent)
		fmt.Fprintf(output, "  runs      number of timed runs (default %d)\n", cfg.Runs)
		fmt.Fprintf(output, "  block     tile size, >= 1 with -strategy blocked, else ignored (default %d)\n\n", cfg.BlockSize)
		fmt.Fprintf(output, "Flags:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return cfg, err
		}
		return cfg, fmt.Errorf("%w: %w", ErrUsage, err)
	}

	var err error
	if cfg.Strategy, err = matrix.ParseStrategy(*strategy); err != nil {
		return cfg, err
	}
	if cfg.DType, err = matrix.ParseDataType(*dtype); err != nil {
		return cfg, err
	}

	positional := []struct {
		name string
		dst  *int
	}{
		{"exponent", &cfg.Exponent},
		{"runs", &cfg.Runs},
		{"block", &cfg.BlockSize},
	}
	if fs.NArg() > len(positional) {
		return cfg, fmt.Errorf("%w: unexpected argument %q", ErrInvalidArgument, fs.Arg(len(positional)))
	}
	for i, arg := range fs.Args() {
		v, err := strconv.Atoi(arg)
		if err != nil {
			return cfg, fmt.Errorf("%w: %s %q is not an integer", ErrInvalidArgument, positional[i].name, arg)
		}
		*positional[i].dst = v
	}

	return cfg, cfg.Validate()
}
