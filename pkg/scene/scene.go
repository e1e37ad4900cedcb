package scene

import (
	"github.com/GyrosOfWar/go-spectral-raytracer/pkg/core"
	"github.com/GyrosOfWar/go-spectral-raytracer/pkg/geometry"
	"github.com/GyrosOfWar/go-spectral-raytracer/pkg/material"
	"github.com/GyrosOfWar/go-spectral-raytracer/pkg/renderer"
	"github.com/GyrosOfWar/go-spectral-raytracer/pkg/spectral"
)

// Scene contains all the elements needed for rendering
type Scene struct {
	Camera         *renderer.Camera
	Shapes         []core.Shape // Objects in the scene
	SamplingConfig renderer.SamplingConfig
	CameraConfig   renderer.CameraConfig
	ColorSpace     *spectral.RgbColorSpace // Working color space for RGB-specified content

	backgroundTop    spectral.Spectrum
	backgroundBottom spectral.Spectrum
}

// GetCamera returns the scene camera
func (s *Scene) GetCamera() *renderer.Camera {
	return s.Camera
}

// GetShapes returns the objects in the scene
func (s *Scene) GetShapes() []core.Shape {
	return s.Shapes
}

// Background returns the radiance of an escaped ray, blending the bottom
// and top background spectra by the ray's vertical direction
func (s *Scene) Background(ray core.Ray, wl spectral.SampledWavelengths) spectral.SampledSpectrum {
	if s.backgroundTop == nil || s.backgroundBottom == nil {
		return spectral.SampledSpectrum{}
	}

	unitDirection := ray.Direction.Normalize()
	t := float32(0.5 * (unitDirection.Y + 1.0))

	top := spectral.Sample(s.backgroundTop, wl)
	bottom := spectral.Sample(s.backgroundBottom, wl)
	return bottom.Scale(1 - t).Add(top.Scale(t))
}

// SetGradientBackground sets a vertical gradient background from two RGB
// colors interpreted as illuminants in the scene color space
func (s *Scene) SetGradientBackground(top, bottom spectral.Rgb) {
	s.backgroundTop = s.ColorSpace.IlluminantSpectrum(top)
	s.backgroundBottom = s.ColorSpace.IlluminantSpectrum(bottom)
}

// SetBackgroundSpectra sets the background gradient endpoint spectra directly
func (s *Scene) SetBackgroundSpectra(top, bottom spectral.Spectrum) {
	s.backgroundTop = top
	s.backgroundBottom = bottom
}

// NewGroundQuad creates a large quad to replace infinite ground planes.
// Creates a horizontal quad centered at the given point with normal
// pointing up (0,1,0).
func NewGroundQuad(center core.Vec3, size float64, mat core.Material) *geometry.Quad {
	corner := core.NewVec3(center.X-size/2, center.Y, center.Z-size/2)
	// u × v = (0,0,size) × (size,0,0) normalizes to (0,1,0)
	u := core.NewVec3(0, 0, size)
	v := core.NewVec3(size, 0, 0)
	return geometry.NewQuad(corner, u, v, mat)
}

// AddSphereLight adds a spherical light with an RGB emission interpreted
// as an illuminant in the scene color space
func (s *Scene) AddSphereLight(center core.Vec3, radius float64, emission spectral.Rgb, scale float32) {
	emissiveMat := material.NewEmissiveRgb(emission, scale, s.ColorSpace)
	s.Shapes = append(s.Shapes, geometry.NewSphere(center, radius, emissiveMat))
}

// AddQuadLight adds a rectangular area light with an RGB emission
// interpreted as an illuminant in the scene color space
func (s *Scene) AddQuadLight(corner, u, v core.Vec3, emission spectral.Rgb, scale float32) {
	emissiveMat := material.NewEmissiveRgb(emission, scale, s.ColorSpace)
	s.Shapes = append(s.Shapes, geometry.NewQuad(corner, u, v, emissiveMat))
}

// AddBlackbodyLight adds a spherical light emitting a normalized blackbody
// spectrum at the given temperature in Kelvin
func (s *Scene) AddBlackbodyLight(center core.Vec3, radius float64, temperature, scale float32) {
	emissiveMat := material.NewEmissive(spectral.NewBlackbody(temperature), scale)
	s.Shapes = append(s.Shapes, geometry.NewSphere(center, radius, emissiveMat))
}

// GetPrimitiveCount returns the total number of primitive objects in the scene
func (s *Scene) GetPrimitiveCount() int {
	return len(s.Shapes)
}
