package main

import (
	"context"
	"encoding/csv"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"math/rand"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/nluthra2001/cpusched/internal/client"
	"github.com/nluthra2001/cpusched/internal/config"
	applog "github.com/nluthra2001/cpusched/internal/log"
	"github.com/nluthra2001/cpusched/internal/render"
	"github.com/nluthra2001/cpusched/internal/server"
	"github.com/nluthra2001/cpusched/internal/simulation"
	"github.com/nluthra2001/cpusched/scheduler"
)

func main() {
	opts, err := parseArgs(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}
	logger := applog.BuildLogger(opts.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if opts.serve {
		if err := server.New(logger).ListenAndServe(ctx, opts.Listen); err != nil {
			log.Fatal(err)
		}
		return
	}

	schedule, err := buildSchedule(opts)
	if err != nil {
		log.Fatal(err)
	}
	if err := simulate(ctx, os.Stdout, opts, schedule, logger); err != nil {
		log.Fatal(err)
	}
}

type options struct {
	config.Config
	serve bool
	files []string
}

// parseArgs reads the optional configuration file, then applies the flags
// that were set on top of it.
func parseArgs(args []string) (options, error) {
	fs := flag.NewFlagSet("Project1", flag.ContinueOnError)
	var (
		configPath   = fs.String("config", "", "JSON configuration file")
		algorithms   = fs.String("algorithms", "", "comma separated algorithms: fcfs, sjf, srtf, rr, priority")
		quantum      = fs.Int("quantum", 0, "round robin time quantum")
		random       = fs.Int("random", 0, "generate this many random processes instead of reading a file (0 requires a file)")
		seed         = fs.Int64("seed", 0, "seed for -random")
		serve        = fs.Bool("serve", false, "serve the simulator over HTTP")
		listen       = fs.String("listen", "", "address for -serve")
		remote       = fs.String("remote", "", "base URL of a simulator server to run on")
		trace        = fs.Bool("trace", false, "print the scheduler state after every unit of time")
		logLevel     = fs.String("log-level", "", "debug, info, warn or error")
		arrivalLimit = fs.Int("arrival-limit", 0, "maximum arrival time for -random")
		burstLimit   = fs.Int("burst-limit", 0, "maximum burst time for -random")
	)
	if err := fs.Parse(args); err != nil {
		return options{}, fmt.Errorf("%w: %v", ErrInvalidArgs, err)
	}

	opts := options{Config: config.Default(), files: fs.Args()}
	if *configPath != "" {
		c, err := config.Load(*configPath)
		if err != nil {
			return options{}, err
		}
		opts.Config = c
	}

	var err error
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "algorithms":
			opts.Algorithms = splitList(*algorithms)
		case "quantum":
			if *quantum < 1 {
				err = fmt.Errorf("%w: quantum must be positive", ErrInvalidArgs)
			}
			opts.Quantum = *quantum
		case "random":
			opts.Random.Count = *random
		case "seed":
			opts.Random.Seed = *seed
		case "arrival-limit":
			opts.Random.ArrivalLimit = *arrivalLimit
		case "burst-limit":
			opts.Random.BurstLimit = *burstLimit
		case "serve":
			opts.serve = *serve
		case "listen":
			opts.Listen = *listen
		case "remote":
			opts.Remote = *remote
		case "trace":
			opts.Trace = *trace
		case "log-level":
			opts.LogLevel = *logLevel
		}
	})
	if err != nil {
		return options{}, err
	}

	// A process file replaces the configured random schedule unless -random
	// was given explicitly.
	if len(opts.files) > 0 && !flagSet(fs, "random") {
		opts.Random.Count = 0
	}
	for _, name := range opts.Algorithms {
		if _, err := scheduler.ParseAlgorithm(name); err != nil {
			return options{}, err
		}
	}
	return opts, nil
}

func buildSchedule(opts options) (*scheduler.ArrivalSchedule, error) {
	if opts.Random.Count > 0 {
		rng := rand.New(rand.NewSource(opts.Random.Seed))
		return scheduler.GenerateSchedule(rng, opts.Random.Count, opts.Random.ArrivalLimit, opts.Random.BurstLimit), nil
	}

	f, closeFile, err := openProcessingFile(opts.files...)
	if err != nil {
		return nil, err
	}
	defer closeFile()

	return loadProcesses(f)
}

// simulate runs every configured algorithm over schedule and writes:
// • the input processes
// • per algorithm, the Gantt chart and schedule table
// • with tracing, the scheduler state after each unit of time
func simulate(ctx context.Context, w io.Writer, opts options, schedule *scheduler.ArrivalSchedule, logger *slog.Logger) error {
	var remote *client.Client
	if opts.Remote != "" {
		remote = client.New(opts.Remote, nil)
		if err := checkRemote(ctx, remote, opts.Algorithms); err != nil {
			return err
		}
	}

	withPriority := false
	for _, name := range opts.Algorithms {
		if alg, _ := scheduler.ParseAlgorithm(name); alg == scheduler.AlgorithmPriority {
			withPriority = true
		}
	}
	render.Input(w, schedule, withPriority)

	for _, name := range opts.Algorithms {
		alg, err := scheduler.ParseAlgorithm(name)
		if err != nil {
			return err
		}

		var report simulation.Report
		switch {
		case remote != nil:
			report, err = remote.Simulate(ctx, simulation.Request{
				Algorithm: string(alg),
				Quantum:   opts.Quantum,
				Processes: simulation.SpecsFromSchedule(schedule),
			})
		case opts.Trace:
			report, err = trace(w, alg, opts.Quantum, schedule, logger)
		default:
			var s scheduler.Scheduler
			s, err = scheduler.New(alg, schedule, opts.Quantum, scheduler.WithLogger(logger))
			if err == nil {
				scheduler.Run(s)
				report = simulation.NewReport(alg, opts.Quantum, s)
			}
		}
		if err != nil {
			return fmt.Errorf("%w: running %s", err, alg)
		}
		render.Report(w, report)
	}
	return nil
}

// checkRemote fails when the server does not offer one of the algorithms.
func checkRemote(ctx context.Context, remote *client.Client, algorithms []string) error {
	infos, err := remote.Algorithms(ctx)
	if err != nil {
		return fmt.Errorf("%w: listing remote algorithms", err)
	}
	served := make(map[string]bool, len(infos))
	for _, info := range infos {
		served[info.Name] = true
	}
	for _, name := range algorithms {
		alg, err := scheduler.ParseAlgorithm(name)
		if err != nil {
			return err
		}
		if !served[string(alg)] {
			return fmt.Errorf("%w: %s is not served remotely", scheduler.ErrUnknownAlgorithm, alg)
		}
	}
	return nil
}

func trace(w io.Writer, alg scheduler.Algorithm, quantum int, schedule *scheduler.ArrivalSchedule, logger *slog.Logger) (simulation.Report, error) {
	s, err := scheduler.New(alg, schedule, quantum, scheduler.WithLogger(logger))
	if err != nil {
		return simulation.Report{}, err
	}
	render.Title(w, alg.Title()+" trace")
	for s.Proceed() {
		render.Step(w, s)
	}
	return simulation.NewReport(alg, quantum, s), nil
}

func openProcessingFile(args ...string) (*os.File, func(), error) {
	if len(args) != 1 {
		return nil, nil, fmt.Errorf("%w: must give a scheduling file to process", ErrInvalidArgs)
	}
	// Read in CSV process CSV file
	f, err := os.Open(args[0])
	if err != nil {
		return nil, nil, fmt.Errorf("%w: error opening scheduling file", err)
	}
	closeFn := func() {
		if err := f.Close(); err != nil {
			log.Fatalf("%v: error closing scheduling file", err)
		}
	}

	return f, closeFn, nil
}

//region Loading processes.

var (
	ErrInvalidArgs  = errors.New("invalid args")
	ErrInvalidInput = errors.New("invalid process file")
)

// loadProcesses reads CSV rows of id, burst, arrival and an optional
// priority into an arrival schedule.
func loadProcesses(r io.Reader) (*scheduler.ArrivalSchedule, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: reading CSV", err)
	}

	schedule := scheduler.NewArrivalSchedule()
	for i := range rows {
		if len(rows[i]) != 3 && len(rows[i]) != 4 {
			return nil, fmt.Errorf("%w: line %d has %d fields", ErrInvalidInput, i+1, len(rows[i]))
		}
		values := make([]int64, len(rows[i]))
		for j := range rows[i] {
			if values[j], err = strToInt(rows[i][j]); err != nil {
				return nil, fmt.Errorf("%w: line %d: %v", ErrInvalidInput, i+1, err)
			}
		}

		p := scheduler.Process{ID: values[0], BurstTime: int(values[1])}
		if len(values) == 4 {
			p.Priority = values[3]
		}
		if err := schedule.Add(int(values[2]), p); err != nil {
			return nil, fmt.Errorf("%w: line %d", err, i+1)
		}
	}

	return schedule, nil
}

func strToInt(s string) (int64, error) {
	return strconv.ParseInt(strings.TrimSpace(s), 10, 64)
}

//endregion

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func flagSet(fs *flag.FlagSet, name string) bool {
	var set bool
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	return set
}
