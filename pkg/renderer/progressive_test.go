package renderer

import (
	"context"
	"testing"
)

func TestGetSamplesForPass(t *testing.T) {
	scene := newFlatScene(1)
	config := ProgressiveConfig{
		TileSize:           8,
		InitialSamples:     1,
		MaxSamplesPerPixel: 16,
		MaxPasses:          4,
		NumWorkers:         1,
	}
	pr := NewProgressiveRaytracer(scene, 16, 16, config, newTestFilm(16, 16), NewDefaultLogger())

	if got := pr.getSamplesForPass(1); got != 1 {
		t.Errorf("pass 1 target = %d, want initial samples", got)
	}
	for pass := 2; pass < config.MaxPasses; pass++ {
		prev := pr.getSamplesForPass(pass - 1)
		cur := pr.getSamplesForPass(pass)
		if cur <= prev {
			t.Errorf("pass %d target %d not greater than pass %d target %d", pass, cur, pass-1, prev)
		}
	}
	if got := pr.getSamplesForPass(config.MaxPasses); got != config.MaxSamplesPerPixel {
		t.Errorf("final pass target = %d, want full sample cap", got)
	}
}

func TestGetSamplesForPassSinglePass(t *testing.T) {
	scene := newFlatScene(1)
	config := ProgressiveConfig{
		TileSize:           8,
		InitialSamples:     1,
		MaxSamplesPerPixel: 10,
		MaxPasses:          1,
		NumWorkers:         1,
	}
	pr := NewProgressiveRaytracer(scene, 8, 8, config, newTestFilm(8, 8), NewDefaultLogger())
	if got := pr.getSamplesForPass(1); got != 10 {
		t.Errorf("single pass target = %d, want full sample cap", got)
	}
}

func TestRenderProgressive(t *testing.T) {
	scene := newFlatScene(1)
	config := ProgressiveConfig{
		TileSize:           8,
		InitialSamples:     1,
		MaxSamplesPerPixel: 4,
		MaxPasses:          2,
		NumWorkers:         2,
	}
	f := newTestFilm(16, 16)
	pr := NewProgressiveRaytracer(scene, 16, 16, config, f, NewDefaultLogger())

	passChan, tileChan, errChan := pr.RenderProgressive(context.Background(), RenderOptions{TileUpdates: true})

	go func() {
		for range tileChan {
		}
	}()

	passes := 0
	var sawLast bool
	for result := range passChan {
		passes++
		if result.Image == nil {
			t.Error("pass result has no image")
		}
		if result.Stats.TotalPixels != 16*16 {
			t.Errorf("pass %d covered %d pixels, want %d", result.PassNumber, result.Stats.TotalPixels, 16*16)
		}
		sawLast = result.IsLast
	}
	if err := <-errChan; err != nil {
		t.Fatalf("render error: %v", err)
	}
	if passes != config.MaxPasses {
		t.Errorf("got %d passes, want %d", passes, config.MaxPasses)
	}
	if !sawLast {
		t.Error("final pass not flagged as last")
	}

	// Every pixel ends at the full sample cap
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			if w := f.Pixel(x, y).WeightSum; w != float64(config.MaxSamplesPerPixel) {
				t.Fatalf("pixel (%d, %d) weight = %v, want %d", x, y, w, config.MaxSamplesPerPixel)
			}
		}
	}
}

func TestRenderProgressiveCancellation(t *testing.T) {
	scene := newFlatScene(1)
	config := ProgressiveConfig{
		TileSize:           8,
		InitialSamples:     1,
		MaxSamplesPerPixel: 100,
		MaxPasses:          50,
		NumWorkers:         1,
	}
	pr := NewProgressiveRaytracer(scene, 16, 16, config, newTestFilm(16, 16), NewDefaultLogger())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	passChan, _, errChan := pr.RenderProgressive(ctx, RenderOptions{})
	for range passChan {
	}
	if err := <-errChan; err == nil {
		t.Error("expected a cancellation error")
	}
}
