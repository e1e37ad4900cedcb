package integrator

import (
	"github.com/GyrosOfWar/go-spectral-raytracer/pkg/core"
	"github.com/GyrosOfWar/go-spectral-raytracer/pkg/spectral"
)

// Scene is the minimal view of a scene an integrator needs.
// Defined here to avoid a circular import with the scene package.
type Scene interface {
	// Hit returns the closest intersection in (tMin, tMax)
	Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool)
	// Background returns the radiance of an escaped ray at the sampled
	// wavelengths
	Background(ray core.Ray, wl spectral.SampledWavelengths) spectral.SampledSpectrum
}

// Integrator defines the interface for light transport algorithms
type Integrator interface {
	// Li computes the radiance arriving along a ray at the sampled
	// wavelengths
	Li(ray core.Ray, scene Scene, wl spectral.SampledWavelengths, sampler core.Sampler) spectral.SampledSpectrum
}

// Config controls path termination
type Config struct {
	MaxDepth                  int // Maximum number of bounces
	RussianRouletteMinBounces int // Bounces before Russian Roulette kicks in
}
