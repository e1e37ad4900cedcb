package core

import (
	"github.com/GyrosOfWar/go-spectral-raytracer/pkg/spectral"
)

// Logger interface for raytracer logging
type Logger interface {
	Printf(format string, args ...interface{})
}

// Material interface for objects that can scatter rays
type Material interface {
	// Scatter generates a scattered direction and its spectral attenuation
	// at the sampled wavelengths
	Scatter(rayIn Ray, hit HitRecord, wl spectral.SampledWavelengths, sampler Sampler) (ScatterResult, bool)
}

// Emitter interface for materials that emit light
type Emitter interface {
	Emit(rayIn Ray, hit HitRecord, wl spectral.SampledWavelengths) spectral.SampledSpectrum
}

// ScatterResult contains the result of material scattering
type ScatterResult struct {
	Incoming    Ray                      // The incoming ray
	Scattered   Ray                      // The scattered ray
	Attenuation spectral.SampledSpectrum // Spectral throughput at the sampled wavelengths
	PDF         float64                  // Probability density function (0 for specular materials)
}

// IsSpecular returns true if this is specular scattering (no PDF)
func (s ScatterResult) IsSpecular() bool {
	return s.PDF <= 0
}

// HitRecord contains information about a ray-object intersection
type HitRecord struct {
	Point     Vec3     // Point of intersection
	Normal    Vec3     // Surface normal at intersection
	T         float64  // Parameter t along the ray
	FrontFace bool     // Whether ray hit the front face
	Material  Material // Material of the hit object
}

// SetFaceNormal sets the normal vector and determines front/back face
func (h *HitRecord) SetFaceNormal(ray Ray, outwardNormal Vec3) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Multiply(-1)
	}
}

// Shape interface for objects that can be intersected by rays
type Shape interface {
	Hit(ray Ray, tMin, tMax float64) (*HitRecord, bool)
}
