package material

import (
	"github.com/GyrosOfWar/go-spectral-raytracer/pkg/core"
	"github.com/GyrosOfWar/go-spectral-raytracer/pkg/spectral"
)

// Metal represents a metallic material with specular reflection and a
// spectral reflectance
type Metal struct {
	Albedo   spectral.Spectrum
	Fuzzness float64 // 0.0 = perfect mirror, 1.0 = very fuzzy
}

// NewMetal creates a new metal material
func NewMetal(albedo spectral.Spectrum, fuzzness float64) *Metal {
	if fuzzness > 1.0 {
		fuzzness = 1.0
	}
	if fuzzness < 0.0 {
		fuzzness = 0.0
	}
	return &Metal{Albedo: albedo, Fuzzness: fuzzness}
}

// NewMetalRgb creates a metal material from an RGB reflectance interpreted
// in the given color space
func NewMetalRgb(rgb spectral.Rgb, fuzzness float64, cs *spectral.RgbColorSpace) *Metal {
	return NewMetal(cs.AlbedoSpectrum(rgb), fuzzness)
}

// Scatter implements the Material interface for metal scattering
func (m *Metal) Scatter(rayIn core.Ray, hit core.HitRecord, wl spectral.SampledWavelengths, sampler core.Sampler) (core.ScatterResult, bool) {
	reflected := reflect(rayIn.Direction.Normalize(), hit.Normal)

	// Add fuzziness by perturbing the reflection direction
	if m.Fuzzness > 0 {
		perturbation := core.SamplePointInUnitSphere(sampler.Get3D()).Multiply(m.Fuzzness)
		reflected = reflected.Add(perturbation)
	}

	scattered := core.Ray{Origin: hit.Point, Direction: reflected}

	// Only scatter if the ray is above the surface (not absorbed)
	scatters := scattered.Direction.Dot(hit.Normal) > 0

	return core.ScatterResult{
		Incoming:    rayIn,
		Scattered:   scattered,
		Attenuation: spectral.Sample(m.Albedo, wl), // No π factor for specular
		PDF:         0,                             // Specular materials have no PDF
	}, scatters
}

// reflect calculates the reflection of a vector v off a surface with normal n
func reflect(v, n core.Vec3) core.Vec3 {
	// r = v - 2*dot(v,n)*n
	return v.Subtract(n.Multiply(2 * v.Dot(n)))
}
