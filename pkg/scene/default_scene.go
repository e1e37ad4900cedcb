package scene

import (
	"github.com/GyrosOfWar/go-spectral-raytracer/pkg/core"
	"github.com/GyrosOfWar/go-spectral-raytracer/pkg/geometry"
	"github.com/GyrosOfWar/go-spectral-raytracer/pkg/material"
	"github.com/GyrosOfWar/go-spectral-raytracer/pkg/renderer"
	"github.com/GyrosOfWar/go-spectral-raytracer/pkg/spectral"
)

// NewDefaultScene creates a default scene with spheres, ground, and a
// daylight sphere light
func NewDefaultScene(colorSpace *spectral.RgbColorSpace, cameraOverrides ...renderer.CameraConfig) *Scene {
	defaultCameraConfig := renderer.CameraConfig{
		Center:      core.NewVec3(0, 0.75, 2),
		LookAt:      core.NewVec3(0, 0.5, -1),
		Up:          core.NewVec3(0, 1, 0),
		AspectRatio: 16.0 / 9.0,
		VFov:        40.0,
		Aperture:    0.05,
	}

	cameraConfig := defaultCameraConfig
	if len(cameraOverrides) > 0 {
		cameraConfig = renderer.MergeCameraConfig(defaultCameraConfig, cameraOverrides[0])
	}

	s := &Scene{
		Camera:     renderer.NewCamera(cameraConfig),
		Shapes:     make([]core.Shape, 0),
		ColorSpace: colorSpace,
		SamplingConfig: renderer.SamplingConfig{
			SamplesPerPixel:           200,
			MaxDepth:                  50,
			RussianRouletteMinBounces: 8,
		},
		CameraConfig: cameraConfig,
	}

	// Materials with reflectances lifted from RGB through the color space
	lambertianGreen := material.NewLambertianRgb(spectral.Rgb{R: 0.48, G: 0.48, B: 0.0}, colorSpace)
	lambertianBlue := material.NewLambertianRgb(spectral.Rgb{R: 0.1, G: 0.2, B: 0.5}, colorSpace)
	lambertianRed := material.NewLambertianRgb(spectral.Rgb{R: 0.65, G: 0.25, B: 0.2}, colorSpace)
	metalSilver := material.NewMetalRgb(spectral.Rgb{R: 0.8, G: 0.8, B: 0.8}, 0.0, colorSpace)
	metalGold := material.NewMetalRgb(spectral.Rgb{R: 0.8, G: 0.6, B: 0.2}, 0.3, colorSpace)

	sphereCenter := geometry.NewSphere(core.NewVec3(0, 0.5, -1), 0.5, lambertianRed)
	sphereLeft := geometry.NewSphere(core.NewVec3(-1, 0.5, -1), 0.5, metalSilver)
	sphereRight := geometry.NewSphere(core.NewVec3(1, 0.5, -1), 0.5, metalGold)
	sphereSmall := geometry.NewSphere(core.NewVec3(0.5, 0.25, -0.5), 0.25, lambertianBlue)

	groundQuad := NewGroundQuad(core.NewVec3(0, 0, 0), 10000.0, lambertianGreen)

	// Sun-like blackbody sphere light
	s.AddBlackbodyLight(core.NewVec3(30, 30.5, 15), 10, 5500, 15)

	s.Shapes = append(s.Shapes, sphereCenter, sphereLeft, sphereRight, sphereSmall, groundQuad)

	// Blue sky fading to white at the horizon
	s.SetGradientBackground(
		spectral.Rgb{R: 0.5, G: 0.7, B: 1.0},
		spectral.Rgb{R: 1.0, G: 1.0, B: 1.0},
	)

	return s
}

// NewCornellScene creates a Cornell-box style scene lit by a quad area
// light with a CIE daylight emission spectrum
func NewCornellScene(colorSpace *spectral.RgbColorSpace, cameraOverrides ...renderer.CameraConfig) *Scene {
	defaultCameraConfig := renderer.CameraConfig{
		Center:      core.NewVec3(278, 278, -800),
		LookAt:      core.NewVec3(278, 278, 0),
		Up:          core.NewVec3(0, 1, 0),
		AspectRatio: 1.0,
		VFov:        40.0,
	}

	cameraConfig := defaultCameraConfig
	if len(cameraOverrides) > 0 {
		cameraConfig = renderer.MergeCameraConfig(defaultCameraConfig, cameraOverrides[0])
	}

	s := &Scene{
		Camera:     renderer.NewCamera(cameraConfig),
		Shapes:     make([]core.Shape, 0),
		ColorSpace: colorSpace,
		SamplingConfig: renderer.SamplingConfig{
			SamplesPerPixel:           400,
			MaxDepth:                  50,
			RussianRouletteMinBounces: 8,
		},
		CameraConfig: cameraConfig,
	}

	white := material.NewLambertianRgb(spectral.Rgb{R: 0.73, G: 0.73, B: 0.73}, colorSpace)
	red := material.NewLambertianRgb(spectral.Rgb{R: 0.65, G: 0.05, B: 0.05}, colorSpace)
	green := material.NewLambertianRgb(spectral.Rgb{R: 0.12, G: 0.45, B: 0.15}, colorSpace)

	// Box walls
	s.Shapes = append(s.Shapes,
		// Left wall (green)
		geometry.NewQuad(core.NewVec3(555, 0, 0), core.NewVec3(0, 555, 0), core.NewVec3(0, 0, 555), green),
		// Right wall (red)
		geometry.NewQuad(core.NewVec3(0, 0, 0), core.NewVec3(0, 555, 0), core.NewVec3(0, 0, 555), red),
		// Floor
		geometry.NewQuad(core.NewVec3(0, 0, 0), core.NewVec3(555, 0, 0), core.NewVec3(0, 0, 555), white),
		// Ceiling
		geometry.NewQuad(core.NewVec3(0, 555, 0), core.NewVec3(555, 0, 0), core.NewVec3(0, 0, 555), white),
		// Back wall
		geometry.NewQuad(core.NewVec3(0, 0, 555), core.NewVec3(555, 0, 0), core.NewVec3(0, 555, 0), white),
	)

	// Spheres standing in for the classic boxes
	s.Shapes = append(s.Shapes,
		geometry.NewSphere(core.NewVec3(185, 120, 350), 120, white),
		geometry.NewSphere(core.NewVec3(390, 90, 170), 90,
			material.NewMetalRgb(spectral.Rgb{R: 0.8, G: 0.8, B: 0.9}, 0.0, colorSpace)),
	)

	// Ceiling quad light with a D65 daylight spectrum, facing down into
	// the box so the one-sided emitter is visible
	light := material.NewEmissive(spectral.Named().StdIllumD65, 18)
	s.Shapes = append(s.Shapes, geometry.NewQuad(
		core.NewVec3(213, 554, 227),
		core.NewVec3(130, 0, 0),
		core.NewVec3(0, 0, 105),
		light,
	))

	return s
}
