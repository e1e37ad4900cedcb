package material

import (
	"math"

	"github.com/GyrosOfWar/go-spectral-raytracer/pkg/core"
	"github.com/GyrosOfWar/go-spectral-raytracer/pkg/spectral"
)

// Lambertian represents a perfectly diffuse material with a spectral
// reflectance
type Lambertian struct {
	Albedo spectral.Spectrum
}

// NewLambertian creates a new lambertian material from a reflectance spectrum
func NewLambertian(albedo spectral.Spectrum) *Lambertian {
	return &Lambertian{Albedo: albedo}
}

// NewLambertianRgb creates a lambertian material from an RGB reflectance
// interpreted in the given color space
func NewLambertianRgb(rgb spectral.Rgb, cs *spectral.RgbColorSpace) *Lambertian {
	return &Lambertian{Albedo: cs.AlbedoSpectrum(rgb)}
}

// Scatter implements the Material interface for lambertian scattering
func (l *Lambertian) Scatter(rayIn core.Ray, hit core.HitRecord, wl spectral.SampledWavelengths, sampler core.Sampler) (core.ScatterResult, bool) {
	// Cosine-weighted direction in the hemisphere around the normal
	scatterDirection := core.SampleCosineHemisphere(hit.Normal, sampler.Get2D())
	scattered := core.Ray{Origin: hit.Point, Direction: scatterDirection}

	// PDF: cos(θ) / π where θ is the angle from the normal
	cosTheta := scatterDirection.Normalize().Dot(hit.Normal)
	if cosTheta < 0 {
		cosTheta = 0
	}
	pdf := cosTheta / math.Pi

	// BRDF: albedo / π at each sampled wavelength
	attenuation := spectral.Sample(l.Albedo, wl).Scale(1.0 / math.Pi)

	return core.ScatterResult{
		Incoming:    rayIn,
		Scattered:   scattered,
		Attenuation: attenuation,
		PDF:         pdf,
	}, true
}
