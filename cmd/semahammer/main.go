// Command semahammer stress-tests the semalock locks and checks their
// exclusion guarantees while doing so.
//
// Settings come from an optional YAML file given with -config; flags given on
// the command line override it. The command exits non-zero if an invariant
// is violated.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"runtime"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)

	var (
		configPath = flag.String("config", "", "path to a YAML config file")
		flags      = defaultConfig()
	)
	flag.StringVar(&flags.Lock, "lock", flags.Lock, "lock to hammer: mutex or rwlock")
	flag.StringVar(&flags.Strategy, "strategy", flags.Strategy, "wait strategy: spin or yield")
	flag.IntVar(&flags.Workers, "workers", flags.Workers, "number of exclusive lockers")
	flag.IntVar(&flags.Readers, "readers", flags.Readers, "number of shared lockers (rwlock only)")
	flag.IntVar(&flags.Iterations, "iterations", flags.Iterations, "acquisitions per goroutine")
	flag.IntVar(&flags.GOMAXPROCS, "gomaxprocs", flags.GOMAXPROCS, "GOMAXPROCS for the run, 0 keeps the current value")
	flag.Parse()

	cfg := flags
	if *configPath != "" {
		var err error
		if cfg, err = loadConfig(*configPath); err != nil {
			log.Fatalf("semahammer: %v", err)
		}
		flag.Visit(func(f *flag.Flag) { override(&cfg, flags, f.Name) })
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("semahammer: invalid config: %v", err)
	}
	if cfg.GOMAXPROCS > 0 {
		runtime.GOMAXPROCS(cfg.GOMAXPROCS)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	log.Printf("semahammer: %s/%s workers=%d readers=%d iterations=%d gomaxprocs=%d",
		cfg.Lock, cfg.Strategy, cfg.Workers, cfg.Readers, cfg.Iterations, runtime.GOMAXPROCS(0))
	res, err := run(ctx, cfg)
	if err != nil {
		log.Fatalf("semahammer: FAIL after %d acquisitions: %v", res.Acquisitions, err)
	}
	log.Printf("semahammer: ok, %d acquisitions in %v", res.Acquisitions, res.Elapsed)
}

// override copies the flag named name from flags into cfg.
func override(cfg *Config, flags Config, name string) {
	switch name {
	case "lock":
		cfg.Lock = flags.Lock
	case "strategy":
		cfg.Strategy = flags.Strategy
	case "workers":
		cfg.Workers = flags.Workers
	case "readers":
		cfg.Readers = flags.Readers
	case "iterations":
		cfg.Iterations = flags.Iterations
	case "gomaxprocs":
		cfg.GOMAXPROCS = flags.GOMAXPROCS
	}
}
