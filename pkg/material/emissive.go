package material

import (
	"github.com/GyrosOfWar/go-spectral-raytracer/pkg/core"
	"github.com/GyrosOfWar/go-spectral-raytracer/pkg/spectral"
)

// Emissive represents a light-emitting material with a spectral emission
// distribution. Emission is one-sided: only front-face hits see light.
type Emissive struct {
	Emission spectral.Spectrum
	Scale    float32
}

// NewEmissive creates a new emissive material from an emission spectrum
func NewEmissive(emission spectral.Spectrum, scale float32) *Emissive {
	return &Emissive{Emission: emission, Scale: scale}
}

// NewEmissiveRgb creates an emissive material from an RGB intensity
// interpreted as an illuminant in the given color space
func NewEmissiveRgb(rgb spectral.Rgb, scale float32, cs *spectral.RgbColorSpace) *Emissive {
	return &Emissive{Emission: cs.IlluminantSpectrum(rgb), Scale: scale}
}

// Scatter implements the Material interface for emissive materials.
// Emissive materials don't scatter rays - they only emit light.
func (e *Emissive) Scatter(rayIn core.Ray, hit core.HitRecord, wl spectral.SampledWavelengths, sampler core.Sampler) (core.ScatterResult, bool) {
	return core.ScatterResult{}, false
}

// Emit returns the emitted radiance at the sampled wavelengths
func (e *Emissive) Emit(rayIn core.Ray, hit core.HitRecord, wl spectral.SampledWavelengths) spectral.SampledSpectrum {
	if !hit.FrontFace {
		return spectral.SampledSpectrum{}
	}
	return spectral.Sample(e.Emission, wl).Scale(e.Scale)
}
