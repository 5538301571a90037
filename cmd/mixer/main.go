// Command mixer mixes a circular list of numbers read one per line and prints
// the sum of the values 1000, 2000 and 3000 positions after zero.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/g-m-twostay/go-ostree/Mixer"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type options struct {
	input    string
	part     int
	key      int64
	rounds   int
	logLevel string
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var opts options
	fs := flag.NewFlagSet("mixer", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.input, "input", "-", "Input file, - for stdin")
	fs.IntVar(&opts.part, "part", 0, "Preset: 1 (key 1, 1 round) or 2 (key 811589153, 10 rounds); overrides -key and -rounds")
	fs.Int64Var(&opts.key, "key", Mixer.Part1.Key, "Decryption key every value is multiplied by")
	fs.IntVar(&opts.rounds, "rounds", Mixer.Part1.Rounds, "Number of mixing rounds")
	fs.StringVar(&opts.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	if fs.NArg() > 0 {
		return opts, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	return opts, nil
}

func (o options) config() (Mixer.Config, error) {
	switch o.part {
	case 0:
		if o.rounds < 0 {
			return Mixer.Config{}, fmt.Errorf("negative rounds %d", o.rounds)
		}
		return Mixer.Config{Key: o.key, Rounds: o.rounds}, nil
	case 1:
		return Mixer.Part1, nil
	case 2:
		return Mixer.Part2, nil
	default:
		return Mixer.Config{}, fmt.Errorf("unknown part %d", o.part)
	}
}

func newLogger(level string, w io.Writer) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	enc := zap.NewProductionEncoderConfig()
	enc.EncodeTime = zapcore.ISO8601TimeEncoder
	core := zapcore.NewCore(zapcore.NewJSONEncoder(enc), zapcore.AddSync(w), lvl)
	return zap.New(core), nil
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 2
	}
	log, err := newLogger(opts.logLevel, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 2
	}
	defer log.Sync() //nolint:errcheck
	cfg, err := opts.config()
	if err != nil {
		log.Error("invalid options", zap.Error(err))
		return 2
	}

	in := stdin
	if opts.input != "-" {
		f, err := os.Open(opts.input)
		if err != nil {
			log.Error("open input", zap.String("path", opts.input), zap.Error(err))
			return 1
		}
		defer f.Close()
		in = f
	}
	values, err := Mixer.Parse(in)
	if err != nil {
		log.Error("parse input", zap.String("path", opts.input), zap.Error(err))
		return 1
	}

	start := time.Now()
	sum, err := Mixer.Solve(values, cfg, log)
	if err != nil {
		log.Error("solve", zap.Error(err))
		return 1
	}
	log.Info("done", zap.Int64("sum", sum), zap.Duration("elapsed", time.Since(start)))
	fmt.Fprintln(stdout, sum)
	return 0
}
