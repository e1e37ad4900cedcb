package renderer

import (
	"image"
	"math/rand"

	"github.com/GyrosOfWar/go-spectral-raytracer/pkg/core"
	"github.com/GyrosOfWar/go-spectral-raytracer/pkg/film"
	"github.com/GyrosOfWar/go-spectral-raytracer/pkg/integrator"
	"github.com/GyrosOfWar/go-spectral-raytracer/pkg/spectral"
)

// SamplingConfig contains rendering configuration
type SamplingConfig struct {
	SamplesPerPixel           int // Number of rays per pixel
	MaxDepth                  int // Maximum ray bounce depth
	RussianRouletteMinBounces int // Bounces before Russian Roulette can activate
}

// DefaultSamplingConfig returns sensible default values
func DefaultSamplingConfig() SamplingConfig {
	return SamplingConfig{
		SamplesPerPixel:           200,
		MaxDepth:                  50,
		RussianRouletteMinBounces: 8,
	}
}

// Scene interface to avoid circular imports
type Scene interface {
	GetCamera() *Camera
	GetShapes() []core.Shape
	Background(ray core.Ray, wl spectral.SampledWavelengths) spectral.SampledSpectrum
}

// Raytracer handles the rendering process
type Raytracer struct {
	scene      Scene
	width      int
	height     int
	config     SamplingConfig
	integrator integrator.Integrator
	random     *rand.Rand
}

// NewRaytracer creates a new raytracer
func NewRaytracer(scene Scene, width, height int) *Raytracer {
	config := DefaultSamplingConfig()
	return &Raytracer{
		scene:  scene,
		width:  width,
		height: height,
		config: config,
		integrator: integrator.NewPathTracingIntegrator(integrator.Config{
			MaxDepth:                  config.MaxDepth,
			RussianRouletteMinBounces: config.RussianRouletteMinBounces,
		}),
		random: rand.New(rand.NewSource(42)), // Deterministic for testing
	}
}

// SetSamplingConfig updates the sampling configuration
func (rt *Raytracer) SetSamplingConfig(config SamplingConfig) {
	rt.config = config
	rt.integrator = integrator.NewPathTracingIntegrator(integrator.Config{
		MaxDepth:                  config.MaxDepth,
		RussianRouletteMinBounces: config.RussianRouletteMinBounces,
	})
}

// MergeSamplingConfig overlays the non-zero fields of the given config
func (rt *Raytracer) MergeSamplingConfig(config SamplingConfig) {
	merged := rt.config
	if config.SamplesPerPixel != 0 {
		merged.SamplesPerPixel = config.SamplesPerPixel
	}
	if config.MaxDepth != 0 {
		merged.MaxDepth = config.MaxDepth
	}
	if config.RussianRouletteMinBounces != 0 {
		merged.RussianRouletteMinBounces = config.RussianRouletteMinBounces
	}
	rt.SetSamplingConfig(merged)
}

// sceneAdapter exposes a renderer Scene through the integrator's interface
type sceneAdapter struct {
	scene Scene
}

// Hit checks if a ray hits any object in the scene
func (sa sceneAdapter) Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	var closestHit *core.HitRecord
	closestSoFar := tMax
	hitAnything := false

	for _, shape := range sa.scene.GetShapes() {
		if hit, isHit := shape.Hit(ray, tMin, closestSoFar); isHit {
			hitAnything = true
			closestSoFar = hit.T
			closestHit = hit
		}
	}

	return closestHit, hitAnything
}

// Background returns the escaped-ray radiance from the scene
func (sa sceneAdapter) Background(ray core.Ray, wl spectral.SampledWavelengths) spectral.SampledSpectrum {
	return sa.scene.Background(ray, wl)
}

// RenderBounds renders all pixels in the given bounds into the shared film,
// bringing each pixel up to the configured total sample count. Tiles have
// non-overlapping bounds so concurrent calls are safe.
func (rt *Raytracer) RenderBounds(bounds image.Rectangle, f *film.RgbFilm, random *rand.Rand) RenderStats {
	sampler := core.NewRandomSampler(random)
	adapter := sceneAdapter{scene: rt.scene}
	camera := rt.scene.GetCamera()

	stats := RenderStats{
		MaxSamples: rt.config.SamplesPerPixel,
		MinSamples: rt.config.SamplesPerPixel,
	}

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			// Each sample has unit weight, so the accumulated weight is
			// the sample count
			existing := int(f.Pixel(x, y).WeightSum)

			for sample := existing; sample < rt.config.SamplesPerPixel; sample++ {
				s := (float64(x) + sampler.Get1D()) / float64(rt.width)
				t := 1 - (float64(y)+sampler.Get1D())/float64(rt.height)

				wl := spectral.SampleVisibleWavelengths(float32(sampler.Get1D()))
				ray := camera.GetRay(s, t, sampler)
				radiance := rt.integrator.Li(ray, adapter, wl, sampler)

				f.AddSample(x, y, radiance, wl, 1)
				stats.TotalSamples++
			}

			stats.TotalPixels++
			count := int(f.Pixel(x, y).WeightSum)
			stats.MinSamples = min(stats.MinSamples, count)
			stats.MaxSamplesUsed = max(stats.MaxSamplesUsed, count)
		}
	}

	if stats.TotalPixels > 0 {
		stats.AverageSamples = float64(stats.TotalSamples) / float64(stats.TotalPixels)
	}
	return stats
}

// RenderPass renders the full image in a single pass and returns it
func (rt *Raytracer) RenderPass(f *film.RgbFilm) *image.RGBA {
	rt.RenderBounds(image.Rect(0, 0, rt.width, rt.height), f, rt.random)
	return f.ToImage()
}
