package film

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/GyrosOfWar/go-spectral-raytracer/pkg/spectral"
)

func TestXyzSensorUsesIdentityMatrix(t *testing.T) {
	sensor := NewXyzPixelSensor(1, 100)
	require.Equal(t, spectral.Identity3(), sensor.XyzFromSensorRgb)
}

func TestSensorRgbNonNegative(t *testing.T) {
	sensor := NewXyzPixelSensor(1, 100)
	random := rand.New(rand.NewSource(42))
	emitter := spectral.NewBlackbody(5500)

	for i := 0; i < 1000; i++ {
		wl := spectral.SampleVisibleWavelengths(random.Float32())
		sample := spectral.Sample(emitter, wl)
		rgb := sensor.ToSensorRgb(sample, wl)
		if rgb.R < 0 || rgb.G < 0 || rgb.B < 0 {
			t.Fatalf("negative sensor response %+v for non-negative radiance", rgb)
		}
	}
}

func TestImagingRatioScalesResponse(t *testing.T) {
	base := NewXyzPixelSensor(1, 100)
	doubled := NewXyzPixelSensor(2, 100)
	highIso := NewXyzPixelSensor(1, 400)

	wl := spectral.SampleVisibleWavelengths(0.5)
	sample := spectral.NewSampledSpectrum(1)

	ref := base.ToSensorRgb(sample, wl)
	require.InDelta(t, 2*ref.G, doubled.ToSensorRgb(sample, wl).G, 1e-5)
	require.InDelta(t, 4*ref.G, highIso.ToSensorRgb(sample, wl).G, 1e-5)
}

func TestTerminatedWavelengthsContribute(t *testing.T) {
	// After a dispersive event only the primary wavelength carries energy;
	// the sensor must still produce a finite, non-negative response
	sensor := NewXyzPixelSensor(1, 100)
	wl := spectral.SampleVisibleWavelengths(0.3)
	wl.TerminateSecondary()

	sample := spectral.Sample(spectral.Constant{C: 1}, wl)
	rgb := sensor.ToSensorRgb(sample, wl)
	require.GreaterOrEqual(t, rgb.G, float32(0))
	require.False(t, rgb.G != rgb.G, "NaN sensor response")
}

func TestFittedSensorReproducesXyzCurves(t *testing.T) {
	// Fitting a sensor whose responses already are the CIE curves, under
	// the output space's own illuminant, must come back close to identity
	spaces := spectral.MustColorSpaces()
	cie := spectral.CIE()

	sensor, err := NewPixelSensor(cie.X, cie.Y, cie.Z, spaces.SRgb.Illuminant, spaces.SRgb, 1, 100)
	require.NoError(t, err)

	identity := spectral.Identity3()
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			require.InDelta(t, identity[r][c], sensor.XyzFromSensorRgb[r][c], 0.05, "m[%d][%d]", r, c)
		}
	}
}

func TestSwatchSpectraAreReflectances(t *testing.T) {
	for i := range swatchReflectances {
		s := swatchSpectrum(i)
		for lambda := 380; lambda <= 730; lambda += 10 {
			v := s.Evaluate(float32(lambda))
			if v < 0 || v > 1 {
				t.Fatalf("swatch %d: reflectance %v at %dnm outside [0, 1]", i, v, lambda)
			}
		}
	}
}
