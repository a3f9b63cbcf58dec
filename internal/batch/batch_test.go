package batch

import (
	"context"
	"testing"

	"fade-life/internal/rle"
	"fade-life/internal/sims/life"
)

const glider = "x = 8, y = 8, rule = B3/S23\nbo$2bo$3o!"

func job(name string, interval, gens int) Job {
	cfg := life.DefaultConfig()
	cfg.Interval = interval
	return Job{Name: name, Pattern: rle.Parse(glider), Config: cfg, Generations: gens}
}

func TestRunJobMatchesReference(t *testing.T) {
	res, err := RunJob(context.Background(), job("glider", 5, 8))
	if err != nil {
		t.Fatalf("RunJob: %v", err)
	}
	if !res.Matches {
		t.Fatal("amortized run diverged from the single-frame reference")
	}
	if res.Generations != 8 || res.Population != 5 {
		t.Fatalf("generations=%d population=%d, want 8 and 5", res.Generations, res.Population)
	}
	if res.Frames < 8*5 {
		t.Fatalf("frames = %d, want at least %d", res.Frames, 8*5)
	}
	if len(res.Final.Cells) != 5 || res.Final.Width != 8 {
		t.Fatalf("final pattern = %+v", res.Final)
	}
}

func TestRunKeepsJobOrder(t *testing.T) {
	jobs := []Job{job("a", 1, 2), job("b", 3, 4), job("c", 7, 1)}
	results, err := Run(context.Background(), jobs, 2)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	for i, r := range results {
		if r.Name != jobs[i].Name || r.Generations != jobs[i].Generations {
			t.Fatalf("result %d = %s gen %d, want %s gen %d", i, r.Name, r.Generations, jobs[i].Name, jobs[i].Generations)
		}
		if !r.Matches {
			t.Fatalf("job %s diverged", r.Name)
		}
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := Run(ctx, []Job{job("a", 2, 10)}, 1); err == nil {
		t.Fatal("expected an error from a cancelled context")
	}
}

func TestRunJobRejectsNegativeGenerations(t *testing.T) {
	if _, err := RunJob(context.Background(), job("bad", 1, -1)); err == nil {
		t.Fatal("expected an error")
	}
}
