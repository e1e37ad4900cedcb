package film

import (
	"fmt"

	"github.com/GyrosOfWar/go-spectral-raytracer/pkg/spectral"
)

// PixelSensor converts radiance samples arriving at the film into sensor
// RGB values and carries the fitted matrix taking sensor RGB back to XYZ.
// The default sensor uses the CIE matching curves as its response, in
// which case sensor RGB simply is XYZ.
type PixelSensor struct {
	rBar, gBar, bBar spectral.Spectrum
	imagingRatio     float32

	// XyzFromSensorRgb maps this sensor's RGB responses into CIE XYZ,
	// fitted over the reflectance swatches under the sensor's illuminant
	XyzFromSensorRgb spectral.Mat3
}

// NewXyzPixelSensor creates a sensor whose response curves are the CIE
// matching curves themselves, so no matrix fit is needed
func NewXyzPixelSensor(exposure, iso float32) *PixelSensor {
	cie := spectral.CIE()
	return &PixelSensor{
		rBar:             cie.X,
		gBar:             cie.Y,
		bBar:             cie.Z,
		imagingRatio:     exposure * iso / 100,
		XyzFromSensorRgb: spectral.Identity3(),
	}
}

// NewPixelSensor creates a sensor with arbitrary response curves under a
// sensor-side illuminant, fitting the sensor→XYZ matrix against the
// output color space's illuminant over the reference reflectance swatches
func NewPixelSensor(rBar, gBar, bBar spectral.Spectrum, sensorIlluminant spectral.Spectrum,
	outputSpace *spectral.RgbColorSpace, exposure, iso float32) (*PixelSensor, error) {

	sensor := &PixelSensor{
		rBar:         rBar,
		gBar:         gBar,
		bBar:         bBar,
		imagingRatio: exposure * iso / 100,
	}

	matrix, err := fitSensorMatrix(rBar, gBar, bBar, sensorIlluminant, outputSpace)
	if err != nil {
		return nil, fmt.Errorf("fitting sensor matrix: %w", err)
	}
	sensor.XyzFromSensorRgb = matrix
	return sensor, nil
}

// ToSensorRgb integrates a radiance sample against the sensor response
// curves. The sample is divided lane-wise by the wavelength pdfs (0/0
// mapping to 0) so terminated secondary wavelengths drop out, and the
// result is scaled by the imaging ratio.
func (s *PixelSensor) ToSensorRgb(sample spectral.SampledSpectrum, wl spectral.SampledWavelengths) spectral.Rgb {
	l := sample.SafeDiv(wl.PDF())
	return spectral.Rgb{
		R: spectral.Sample(s.rBar, wl).Mul(l).Average() * s.imagingRatio,
		G: spectral.Sample(s.gBar, wl).Mul(l).Average() * s.imagingRatio,
		B: spectral.Sample(s.bBar, wl).Mul(l).Average() * s.imagingRatio,
	}
}

// fitSensorMatrix solves for the matrix M minimizing the squared error of
// M·rgbCam against the swatch XYZ under the output illuminant, via the
// normal equations over the 24 reference swatches
func fitSensorMatrix(rBar, gBar, bBar spectral.Spectrum, sensorIlluminant spectral.Spectrum,
	outputSpace *spectral.RgbColorSpace) (spectral.Mat3, error) {

	cie := spectral.CIE()
	outIlluminant := outputSpace.Illuminant

	sensorWhiteG := spectral.InnerProduct(sensorIlluminant, gBar)
	sensorWhiteY := spectral.InnerProduct(sensorIlluminant, cie.Y)

	rgbCam := make([][3]float32, len(swatchReflectances))
	xyzOut := make([][3]float32, len(swatchReflectances))
	for i := range swatchReflectances {
		swatch := swatchSpectrum(i)

		rgbCam[i] = projectReflectance(swatch, sensorIlluminant, rBar, gBar, bBar)

		xyz := projectReflectance(swatch, outIlluminant, cie.X, cie.Y, cie.Z)
		for k := range xyz {
			xyz[k] *= sensorWhiteY / sensorWhiteG
		}
		xyzOut[i] = xyz
	}

	return solveLeastSquares(rgbCam, xyzOut)
}

// projectReflectance computes per-channel integrals of illum·refl against
// three response curves, normalized by the illuminant's curve-g integral
func projectReflectance(refl, illum spectral.Spectrum, b1, b2, b3 spectral.Spectrum) [3]float32 {
	var out [3]float32
	var gIntegral float32
	for lambda := int(spectral.LambdaMin); lambda < int(spectral.LambdaMax); lambda++ {
		l := float32(lambda)
		il := illum.Evaluate(l)
		rl := refl.Evaluate(l)
		out[0] += b1.Evaluate(l) * il * rl
		out[1] += b2.Evaluate(l) * il * rl
		out[2] += b3.Evaluate(l) * il * rl
		gIntegral += b2.Evaluate(l) * il
	}
	for k := range out {
		out[k] /= gIntegral
	}
	return out
}

// solveLeastSquares finds M minimizing Σ‖M·a_i − b_i‖² by solving the
// normal equations (AᵀA)Mᵀ = AᵀB row by row
func solveLeastSquares(a, b [][3]float32) (spectral.Mat3, error) {
	var ata spectral.Mat3
	var atb spectral.Mat3
	for i := range a {
		for r := 0; r < 3; r++ {
			for c := 0; c < 3; c++ {
				ata[r][c] += a[i][r] * a[i][c]
				atb[r][c] += a[i][r] * b[i][c]
			}
		}
	}

	inv, err := ata.Inverse()
	if err != nil {
		return spectral.Mat3{}, fmt.Errorf("degenerate swatch responses: %w", err)
	}

	// Each row of M solves (AᵀA)·mᵀ = (AᵀB) column
	solution := inv.Mul(atb)
	var m spectral.Mat3
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			m[r][c] = solution[c][r]
		}
	}
	return m, nil
}
