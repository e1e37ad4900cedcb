package integrator

import (
	"github.com/GyrosOfWar/go-spectral-raytracer/pkg/core"
	"github.com/GyrosOfWar/go-spectral-raytracer/pkg/spectral"
)

// PathTracingIntegrator implements unidirectional spectral path tracing
type PathTracingIntegrator struct {
	config Config
}

// NewPathTracingIntegrator creates a new path tracing integrator
func NewPathTracingIntegrator(config Config) *PathTracingIntegrator {
	return &PathTracingIntegrator{config: config}
}

// Li computes the radiance for a single ray by tracing a path through the
// scene, accumulating spectral throughput at the sampled wavelengths
func (pt *PathTracingIntegrator) Li(ray core.Ray, scene Scene, wl spectral.SampledWavelengths, sampler core.Sampler) spectral.SampledSpectrum {
	radiance := spectral.SampledSpectrum{}
	throughput := spectral.NewSampledSpectrum(1)

	for depth := 0; depth < pt.config.MaxDepth; depth++ {
		hit, isHit := scene.Hit(ray, 0.001, 1000.0)
		if !isHit {
			radiance = radiance.Add(throughput.Mul(scene.Background(ray, wl)))
			break
		}

		// Emitted light from the hit material
		if emitter, isEmissive := hit.Material.(core.Emitter); isEmissive {
			radiance = radiance.Add(throughput.Mul(emitter.Emit(ray, *hit, wl)))
		}

		scatter, didScatter := hit.Material.Scatter(ray, *hit, wl, sampler)
		if !didScatter {
			break
		}

		if scatter.IsSpecular() {
			// Specular attenuation already includes the geometric terms
			throughput = throughput.Mul(scatter.Attenuation)
		} else {
			scatterDirection := scatter.Scattered.Direction.Normalize()
			cosine := scatterDirection.Dot(hit.Normal)
			if cosine <= 0 || scatter.PDF <= 0 {
				break
			}
			throughput = throughput.Mul(scatter.Attenuation).Scale(float32(cosine / scatter.PDF))
		}

		// Russian Roulette on the spectral throughput average
		if depth >= pt.config.RussianRouletteMinBounces {
			survivalProb := float64(throughput.Average())
			if survivalProb > 0.95 {
				survivalProb = 0.95
			} else if survivalProb < 0.5 {
				survivalProb = 0.5
			}
			if sampler.Get1D() > survivalProb {
				break
			}
			throughput = throughput.Scale(float32(1.0 / survivalProb))
		}

		ray = scatter.Scattered
	}

	return radiance
}
