package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"runtime"
	"time"

	"github.com/tebeka/atexit"
	"golang.org/x/sync/errgroup"

	"github.com/jcorbin/bfvm/internal/logio"
	"github.com/jcorbin/bfvm/internal/panicerr"
)

const (
	exitUsage   = 2
	exitTimeout = 3
)

// program streams, swapped out by tests
var (
	stdin  io.Reader = os.Stdin
	stdout io.Writer = os.Stdout
)

func main() {
	log := logio.NewLogger(os.Stderr)

	var cf cliFlags
	cf.register(flag.CommandLine)
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %v [flags] FILE [FILE...]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	rc, err := cf.runConfig(flag.CommandLine)
	if err != nil {
		log.ErrorIf(err)
		atexit.Exit(exitUsage)
	}

	names := flag.Args()
	switch {
	case len(names) == 0:
		flag.Usage()
		atexit.Exit(exitUsage)
	case cf.check:
		if err := checkSources(context.Background(), log, names, rc); err != nil {
			log.ErrorIf(err)
			log.SetExitCode(exitUsage)
		}
	case len(names) > 1:
		log.Errorf("can only run one FILE at a time, use -check to translate many")
		log.SetExitCode(exitUsage)
	default:
		runSource(log, names[0], rc)
	}
	atexit.Exit(log.ExitCode())
}

type cliFlags struct {
	configPath string
	check      bool
	timeout    time.Duration
	rc         RunConfig
}

func (cf *cliFlags) register(fs *flag.FlagSet) {
	fs.StringVar(&cf.configPath, "config", "", "load run configuration from a TOML file")
	fs.BoolVar(&cf.check, "check", false, "only translate each FILE, reporting any errors")
	fs.DurationVar(&cf.timeout, "timeout", 0, "exit if the run takes longer than this")
	fs.BoolVar(&cf.rc.Trace, "trace", false, "enable trace logging")
	fs.BoolVar(&cf.rc.List, "list", false, "list the translated program before running it")
	fs.IntVar(&cf.rc.Tape, "tape", 0, "dump this many tape cells after running")
	fs.BoolVar(&cf.rc.Unfolded, "unfolded", false, "translate without folding runs of moves and adds")
	fs.StringVar(&cf.rc.Input, "input", "", "read program input from a file rather than stdin")
}

// runConfig loads any -config file, then overrides it with every flag that
// was explicitly set on the command line.
func (cf *cliFlags) runConfig(fs *flag.FlagSet) (RunConfig, error) {
	var cfg Config
	if cf.configPath != "" {
		loaded, err := LoadConfig(cf.configPath)
		if err != nil {
			return RunConfig{}, err
		}
		cfg = *loaded
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "timeout":
			cfg.Run.Timeout = Duration(cf.timeout)
		case "trace":
			cfg.Run.Trace = cf.rc.Trace
		case "list":
			cfg.Run.List = cf.rc.List
		case "tape":
			cfg.Run.Tape = cf.rc.Tape
		case "unfolded":
			cfg.Run.Unfolded = cf.rc.Unfolded
		case "input":
			cfg.Run.Input = cf.rc.Input
		}
	})
	return cfg.Run, nil
}

// checkSources translates every named source concurrently, logging any
// BuildError; only failures to read a source are returned.
func checkSources(ctx context.Context, log *logio.Logger, names []string, rc RunConfig) error {
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(runtime.GOMAXPROCS(0))
	for _, name := range names {
		name := name // per-iteration copy (go 1.21 loop semantics)
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			src, err := os.ReadFile(name)
			if err != nil {
				return fmt.Errorf("cannot read %s: %w", name, err)
			}
			prog, err := Build(string(src), rc.buildOptions(name)...)
			if err == nil {
				log.Printf("OK", "%v: %v instructions", name, len(prog))
			}
			log.ErrorIf(err)
			return nil
		})
	}
	return eg.Wait()
}

// runSource translates and runs one source file against stdin (or the
// configured input file) and stdout. Listings and tape dumps are logged. On
// timeout the process exits without waiting for the VM.
func runSource(log *logio.Logger, name string, rc RunConfig) {
	src, err := os.ReadFile(name)
	if err != nil {
		log.Errorf("cannot read %s: %v", name, err)
		log.SetExitCode(exitUsage)
		return
	}
	prog, err := Build(string(src), rc.buildOptions(name)...)
	if err != nil {
		log.ErrorIf(err)
		return
	}

	in := stdin
	if rc.Input != "" {
		f, err := os.Open(rc.Input)
		if err != nil {
			log.Errorf("cannot open input: %v", err)
			log.SetExitCode(exitUsage)
			return
		}
		atexit.Register(func() { f.Close() })
		defer f.Close()
		in = f
	}

	opts := []VMOption{
		WithInput(in),
		WithOutput(stdout),
	}
	if rc.Trace {
		opts = append(opts, WithLogf(log.Leveledf("TRACE")))
	}
	vm := New(prog, opts...)

	if rc.List {
		lw := logio.Writer{Logf: log.Leveledf("LIST")}
		vmDumper{vm: vm, out: &lw}.dumpProgram()
		lw.Close()
	}

	done := make(chan error, 1)
	go func() { done <- vm.Run() }()

	var expired <-chan time.Time
	if rc.Timeout > 0 {
		timer := time.NewTimer(time.Duration(rc.Timeout))
		defer timer.Stop()
		expired = timer.C
	}

	select {
	case err = <-done:
	case <-expired:
		log.Errorf("%v: timed out after %v", name, time.Duration(rc.Timeout))
		atexit.Exit(exitTimeout)
	}

	if rc.Tape > 0 {
		lw := logio.Writer{Logf: log.Leveledf("TAPE")}
		vmDumper{vm: vm, out: &lw, cells: rc.Tape}.dumpTape()
		lw.Close()
	}

	var runErr RuntimeError
	switch {
	case err == nil:
	case errors.As(err, &runErr):
		log.Errorf("%v: %v", name, runErr)
	case panicerr.IsPanic(err):
		log.Errorf("%v: %v", name, err)
		log.Printf("STACK", "%s", panicerr.PanicStack(err))
	default:
		log.Errorf("%v: %v", name, err)
	}
}
