package main

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"sync"
	"text/tabwriter"

	"github.com/nnsgmsone/damrey/logger"
	"github.com/sofimaye/platter/errmsg"
	"github.com/sofimaye/platter/fs"
	"github.com/sofimaye/platter/queue"
	"github.com/sofimaye/platter/scenario"
	"github.com/sofimaye/platter/scheduler"
	"github.com/sofimaye/platter/workload"
	"github.com/urfave/cli/v2"
)

func main() {
	app := cli.App{
		Name:        "platter",
		Description: "rotating-disk head scheduling and block file store simulator",
		Commands: []*cli.Command{{
			Name:        "simulate",
			Description: "service a track request queue under each policy and report totals",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:  "scenario",
					Usage: "YAML scenario file. Defaults to the built-in scenario.",
				},
				&cli.StringFlag{
					Name:  "queue",
					Usage: "comma-separated track requests",
				},
				&cli.StringFlag{
					Name:  "policies",
					Usage: "comma-separated subset of fcfs,sstf,look,lfu",
				},
				&cli.IntFlag{
					Name:  "tracks",
					Usage: "tracks on the platter",
				},
				&cli.IntFlag{
					Name:  "sectors",
					Usage: "sectors per track",
				},
				&cli.IntFlag{
					Name:  "delay",
					Usage: "rotation delay in ms per serviced request",
				},
				&cli.IntFlag{
					Name:  "start",
					Usage: "initial head track",
				},
				&cli.IntFlag{
					Name:  "segments",
					Usage: "segment count for the lfu policy",
				},
			},
			Action: simulate,
		}, {
			Name:        "exercise",
			Description: "replay a synthetic process workload against the file store",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:  "scenario",
					Usage: "YAML scenario file. Defaults to the built-in scenario.",
				},
				&cli.IntFlag{
					Name:  "files",
					Usage: "files to create",
				},
				&cli.IntFlag{
					Name:  "blocks",
					Usage: "blocks per file",
				},
				&cli.IntFlag{
					Name:  "processes",
					Usage: "processes to submit",
				},
				&cli.IntFlag{
					Name:  "ops",
					Usage: "requests per process",
				},
				&cli.Int64Flag{
					Name:  "seed",
					Usage: "workload random seed",
				},
				&cli.IntFlag{
					Name:  "max-requests",
					Usage: "processes admitted in flight at once",
				},
				&cli.IntFlag{
					Name:  "cache-size",
					Usage: "buffer cache capacity",
				},
			},
			Action: exercise,
		}},
	}
	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func simulate(ctx *cli.Context) error {
	s, err := loadScenario(ctx)
	if err != nil {
		return err
	}
	schd := scheduler.New(s.Geometry(), s.StartTrack)
	q := queue.New(s.Queue...)
	w := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
	fmt.Fprintln(w, "POLICY\tREQUESTS\tTOTAL MS\tHEAD")
	for _, p := range s.Policies {
		var total int64

		run := q.Clone()
		switch p {
		case scenario.FCFS:
			total = schd.FCFS(run)
		case scenario.SSTF:
			total = schd.SSTF(run)
		case scenario.Look:
			total = schd.Look(run)
		case scenario.LFU:
			total = schd.LFU(run, s.Segments)
		default:
			return fmt.Errorf("%w: %s", errmsg.BadPolicy, p)
		}
		fmt.Fprintf(w, "%s\t%d\t%d\t%d\n", p, q.Len(), total, schd.Position())
	}
	return w.Flush()
}

func exercise(ctx *cli.Context) error {
	s, err := loadScenario(ctx)
	if err != nil {
		return err
	}
	cfg := fs.DefaultConfig()
	cfg.MaxRequests = s.MaxRequests
	cfg.CacheSize = s.CacheSize
	cfg.Scheduler = scheduler.New(s.Geometry(), s.StartTrack)
	f := fs.New(cfg)
	ps, err := workload.Generate(f, s.WorkloadConfig(), logger.New(os.Stderr, "platter"))
	if err != nil {
		return err
	}
	var wg sync.WaitGroup
	for _, p := range ps {
		wg.Add(1)
		go func(p workload.Process) {
			defer wg.Done()
			f.Process(p)
		}(p)
	}
	wg.Wait()
	var reads, writes, errs int
	for _, p := range ps {
		reads += p.Reads()
		writes += p.Writes()
		errs += p.Errs()
	}
	g := f.Gate()
	w := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
	fmt.Fprintf(w, "processes\t%d\n", len(ps))
	fmt.Fprintf(w, "admitted\t%d\n", g.Admitted())
	fmt.Fprintf(w, "rejected\t%d\n", g.Rejected())
	fmt.Fprintf(w, "reads\t%d\n", reads)
	fmt.Fprintf(w, "writes\t%d\n", writes)
	fmt.Fprintf(w, "op errors\t%d\n", errs)
	fmt.Fprintf(w, "files\t%d\n", f.Files())
	fmt.Fprintf(w, "cached blocks\t%d (cap %d)\n", f.CacheLen(), f.CacheCap())
	return w.Flush()
}

func loadScenario(ctx *cli.Context) (*scenario.Scenario, error) {
	s, err := scenario.Load(ctx.String("scenario"))
	if err != nil {
		return nil, err
	}
	if ctx.IsSet("tracks") {
		s.Tracks = ctx.Int("tracks")
	}
	if ctx.IsSet("sectors") {
		s.SectorsPerTrack = ctx.Int("sectors")
	}
	if ctx.IsSet("delay") {
		s.RotationDelay = ctx.Int("delay")
	}
	if ctx.IsSet("start") {
		s.StartTrack = ctx.Int("start")
	}
	if ctx.IsSet("segments") {
		s.Segments = ctx.Int("segments")
	}
	if ctx.IsSet("queue") {
		q, err := parseQueue(ctx.String("queue"))
		if err != nil {
			return nil, err
		}
		s.Queue = q
	}
	if ctx.IsSet("policies") {
		s.Policies = strings.Split(ctx.String("policies"), ",")
	}
	if ctx.IsSet("files") {
		s.Workload.Files = ctx.Int("files")
	}
	if ctx.IsSet("blocks") {
		s.Workload.Blocks = ctx.Int("blocks")
	}
	if ctx.IsSet("processes") {
		s.Workload.Processes = ctx.Int("processes")
	}
	if ctx.IsSet("ops") {
		s.Workload.Ops = ctx.Int("ops")
	}
	if ctx.IsSet("seed") {
		s.Workload.Seed = ctx.Int64("seed")
	}
	if ctx.IsSet("max-requests") {
		s.MaxRequests = ctx.Int("max-requests")
	}
	if ctx.IsSet("cache-size") {
		s.CacheSize = ctx.Int("cache-size")
	}
	return s, s.Validate()
}

func parseQueue(csv string) ([]int, error) {
	var q []int

	for _, s := range strings.Split(csv, ",") {
		t, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil {
			return nil, fmt.Errorf("bad track request %q: %w", s, err)
		}
		q = append(q, t)
	}
	return q, nil
}
