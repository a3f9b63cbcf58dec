package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"time"

	"fade-life/internal/batch"
	"fade-life/internal/rle"
	"fade-life/internal/sims/life"
)

type kvList []string

func (l *kvList) String() string {
	return strings.Join(*l, ",")
}

func (l *kvList) Set(value string) error {
	*l = append(*l, value)
	return nil
}

func main() {
	gens := flag.Int("gens", 100, "generations to run per pattern")
	interval := flag.Int("interval", 4, "frames per generation")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	strict := flag.Bool("strict", false, "reject malformed pattern files")
	dump := flag.String("dump", "", "directory to write each final generation to as RLE")
	var overrides kvList
	flag.Var(&overrides, "set", "engine setting in key=value form, e.g. fade=8 or wrap=false (repeatable)")
	flag.Parse()

	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "usage: life-sweep [flags] pattern.rle...")
		flag.PrintDefaults()
		os.Exit(2)
	}

	opts := map[string]string{"interval": strconv.Itoa(*interval)}
	for _, kv := range overrides {
		parts := strings.SplitN(kv, "=", 2)
		if len(parts) != 2 {
			log.Printf("ignoring malformed override %q", kv)
			continue
		}
		opts[strings.TrimSpace(parts[0])] = strings.TrimSpace(parts[1])
	}
	cfg := life.FromMap(opts)

	var jobs []batch.Job
	for _, path := range flag.Args() {
		p, err := rle.Load(path, *strict)
		if err != nil {
			log.Fatal(err)
		}
		if _, ok := opts["rule"]; ok {
			p.Rule = cfg.Rule
		}
		jobs = append(jobs, batch.Job{Name: path, Pattern: p, Config: cfg, Generations: *gens})
	}

	fmt.Printf("Running %d patterns (%d workers, %d generations, interval %d)\n", len(jobs), *workers, *gens, cfg.Interval)

	start := time.Now()
	results, err := batch.Run(context.Background(), jobs, *workers)
	if err != nil {
		log.Fatal(err)
	}

	failed := 0
	for _, res := range results {
		status := "ok"
		if !res.Matches {
			status = "MISMATCH"
			failed++
		}
		fmt.Printf("%-40s gen=%d frames=%d population=%d %s (%s)\n",
			res.Name, res.Generations, res.Frames, res.Population, status, res.Elapsed.Round(time.Millisecond))
		if *dump != "" {
			if err := writeDump(*dump, res); err != nil {
				log.Fatal(err)
			}
		}
	}
	fmt.Printf("\n%d/%d patterns matched the single-frame reference (elapsed %s)\n",
		len(results)-failed, len(results), time.Since(start).Round(time.Millisecond))
	if failed > 0 {
		os.Exit(1)
	}
}

func writeDump(dir string, res batch.Result) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	base := strings.TrimSuffix(filepath.Base(res.Name), filepath.Ext(res.Name))
	out := res.Final
	out.Comments = append(out.Comments, fmt.Sprintf("generation %d", res.Generations))
	name := filepath.Join(dir, fmt.Sprintf("%s-gen%d.rle", base, res.Generations))
	return os.WriteFile(name, []byte(rle.Encode(out)), 0o644)
}
