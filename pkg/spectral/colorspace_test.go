package spectral

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

// productSpectrum multiplies two spectra pointwise, used to integrate a
// reflectance under an illuminant
type productSpectrum struct {
	a, b Spectrum
}

func (p productSpectrum) Evaluate(lambda float32) float32 {
	return p.a.Evaluate(lambda) * p.b.Evaluate(lambda)
}

func (p productSpectrum) MaxValue() float32 {
	return p.a.MaxValue() * p.b.MaxValue()
}

func randomRgb(random *rand.Rand, lo, hi float32) Rgb {
	span := hi - lo
	return Rgb{
		R: lo + span*random.Float32(),
		G: lo + span*random.Float32(),
		B: lo + span*random.Float32(),
	}
}

func maxAbsDiff(a, b Rgb) float64 {
	d := math.Max(math.Abs(float64(a.R-b.R)), math.Abs(float64(a.G-b.G)))
	return math.Max(d, math.Abs(float64(a.B-b.B)))
}

func TestSRgbMatrixColumns(t *testing.T) {
	cs := MustColorSpaces().SRgb

	tests := []struct {
		name string
		xyz  Xyz
		want Rgb
	}{
		{"x column", Xyz{X: 1}, Rgb{R: 3.2406, G: -0.9693, B: 0.0557}},
		{"y column", Xyz{Y: 1}, Rgb{R: -1.5372, G: 1.8758, B: -0.2040}},
		{"z column", Xyz{Z: 1}, Rgb{R: -0.4986, G: 0.0415, B: 1.0570}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := cs.ToRgb(tt.xyz)
			if maxAbsDiff(got, tt.want) > 1e-3 {
				t.Errorf("ToRgb(%+v) = %+v, want %+v", tt.xyz, got, tt.want)
			}
		})
	}
}

func TestRgbXyzRoundTrip(t *testing.T) {
	spaces := MustColorSpaces()
	random := rand.New(rand.NewSource(42))

	for _, tt := range []struct {
		name string
		cs   *RgbColorSpace
	}{
		{"srgb", spaces.SRgb},
		{"dci_p3", spaces.DciP3},
		{"rec2020", spaces.Rec2020},
		{"aces", spaces.Aces2065},
	} {
		t.Run(tt.name, func(t *testing.T) {
			for i := 0; i < 1000; i++ {
				rgb := randomRgb(random, 0, 1)
				got := tt.cs.ToRgb(tt.cs.ToXyz(rgb))
				if maxAbsDiff(got, rgb) > 1e-4 {
					t.Fatalf("round trip of %+v gave %+v", rgb, got)
				}
			}
		})
	}
}

// Round trip through the coefficient table: lift RGB to a reflectance
// spectrum, integrate it under the space's illuminant, and map the
// resulting XYZ back to RGB. Saturated colors near the gamut boundary are
// not exactly representable by a clamped sigmoid polynomial, so the wide
// gamut spaces are tested on interior sub-cubes.
func TestRgbAlbedoSpectrumRoundTrip(t *testing.T) {
	spaces := MustColorSpaces()
	random := rand.New(rand.NewSource(42))

	for _, tt := range []struct {
		name   string
		cs     *RgbColorSpace
		lo, hi float32
	}{
		{"srgb", spaces.SRgb, 0, 1},
		{"dci_p3", spaces.DciP3, 0.1, 0.8},
		{"rec2020", spaces.Rec2020, 0.1, 0.8},
		{"aces", spaces.Aces2065, 0.3, 0.7},
	} {
		t.Run(tt.name, func(t *testing.T) {
			for i := 0; i < 1000; i++ {
				rgb := randomRgb(random, tt.lo, tt.hi)
				albedo := tt.cs.AlbedoSpectrum(rgb)

				xyz := XyzOf(productSpectrum{a: albedo, b: tt.cs.Illuminant})
				got := tt.cs.ToRgb(xyz)
				if maxAbsDiff(got, rgb) > 0.01 {
					t.Fatalf("albedo round trip of %+v gave %+v", rgb, got)
				}
			}
		})
	}
}

func TestRgbIlluminantSpectrumRoundTrip(t *testing.T) {
	spaces := MustColorSpaces()
	random := rand.New(rand.NewSource(42))

	for _, tt := range []struct {
		name   string
		cs     *RgbColorSpace
		lo, hi float32
	}{
		{"srgb", spaces.SRgb, 0, 1},
		{"rec2020", spaces.Rec2020, 0.1, 0.8},
		{"aces", spaces.Aces2065, 0.3, 0.7},
	} {
		t.Run(tt.name, func(t *testing.T) {
			for i := 0; i < 1000; i++ {
				rgb := randomRgb(random, tt.lo, tt.hi)
				illum := tt.cs.IlluminantSpectrum(rgb)

				got := tt.cs.ToRgb(XyzOf(illum))
				if maxAbsDiff(got, rgb) > 0.01 {
					t.Fatalf("illuminant round trip of %+v gave %+v", rgb, got)
				}
			}
		})
	}
}

func TestGrayAxisCoefficients(t *testing.T) {
	cs := MustColorSpaces().SRgb

	for _, v := range []float32{0.05, 0.25, 0.5, 0.75, 0.95} {
		coeffs := cs.ToRgbCoefficients(Rgb{R: v, G: v, B: v})
		require.Zero(t, coeffs.C0, "c0 for gray %v", v)
		require.Zero(t, coeffs.C1, "c1 for gray %v", v)
	}
}

func TestSigmoidPolynomialRange(t *testing.T) {
	cs := MustColorSpaces().SRgb
	random := rand.New(rand.NewSource(42))

	for i := 0; i < 1000; i++ {
		rgb := randomRgb(random, 0, 1)
		coeffs := cs.ToRgbCoefficients(rgb)
		for lambda := 360; lambda <= 830; lambda++ {
			v := coeffs.Evaluate(float32(lambda))
			if v < 0 || v > 1 {
				t.Fatalf("evaluate(%d) = %v for rgb %+v, want [0,1]", lambda, v, rgb)
			}
		}
	}
}

func TestGreenSpectrumStrictlyPositive(t *testing.T) {
	cs := MustColorSpaces().SRgb
	coeffs := cs.ToRgbCoefficients(Rgb{G: 1})

	for lambda := 360; lambda <= 830; lambda++ {
		if v := coeffs.Evaluate(float32(lambda)); v <= 0 {
			t.Fatalf("evaluate(%d) = %v, want > 0", lambda, v)
		}
	}
}

func TestConvertColorSpace(t *testing.T) {
	spaces := MustColorSpaces()
	m := ConvertColorSpace(spaces.SRgb, spaces.Rec2020)

	// An sRGB color converted to Rec.2020 must denote the same XYZ
	rgb := Rgb{R: 0.3, G: 0.6, B: 0.2}
	converted := m.MulVec([3]float32{rgb.R, rgb.G, rgb.B})

	want := spaces.SRgb.ToXyz(rgb)
	got := spaces.Rec2020.ToXyz(Rgb{R: converted[0], G: converted[1], B: converted[2]})

	require.InDelta(t, want.X, got.X, 1e-4)
	require.InDelta(t, want.Y, got.Y, 1e-4)
	require.InDelta(t, want.Z, got.Z, 1e-4)
}

func TestLookupUnknownName(t *testing.T) {
	require.Nil(t, MustColorSpaces().Lookup("cmyk"))
}
