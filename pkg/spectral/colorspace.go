package spectral

import (
	_ "embed"
	"fmt"
	"sync"
)

//go:embed data/color-spaces/srgb.bin
var srgbTableData []byte

//go:embed data/color-spaces/dci_p3.bin
var dciP3TableData []byte

//go:embed data/color-spaces/rec2020.bin
var rec2020TableData []byte

//go:embed data/color-spaces/aces.bin
var acesTableData []byte

// RgbColorSpace is an RGB color space defined by its primaries, white
// point, and reference illuminant, together with the derived RGB↔XYZ
// matrices and the spectrum table that lifts RGB triples to spectra
type RgbColorSpace struct {
	R, G, B    Xy
	W          Xy
	Illuminant Spectrum
	RgbFromXyz Mat3
	XyzFromRgb Mat3

	spectrumTable *RgbToSpectrumTable
}

// NewRgbColorSpace derives a color space from chromaticity primaries, an
// illuminant, and a spectrum table. The RGB↔XYZ matrices are derived by
// scaling the primaries' tristimulus columns so the illuminant's white
// point maps to RGB (1,1,1).
func NewRgbColorSpace(r, g, b Xy, illuminant Spectrum, table *RgbToSpectrumTable) (*RgbColorSpace, error) {
	wXyz := XyzOf(illuminant)
	w := wXyz.Xy()

	xyzR := XyzFromXy(r)
	xyzG := XyzFromXy(g)
	xyzB := XyzFromXy(b)

	rgb := Mat3FromCols(
		[3]float32{xyzR.X, xyzR.Y, xyzR.Z},
		[3]float32{xyzG.X, xyzG.Y, xyzG.Z},
		[3]float32{xyzB.X, xyzB.Y, xyzB.Z},
	)
	rgbInv, err := rgb.Inverse()
	if err != nil {
		return nil, fmt.Errorf("degenerate primaries: %w", err)
	}
	c := rgbInv.MulVec([3]float32{wXyz.X, wXyz.Y, wXyz.Z})

	xyzFromRgb := rgb.ScaleCols(c)
	rgbFromXyz, err := xyzFromRgb.Inverse()
	if err != nil {
		return nil, fmt.Errorf("degenerate primaries: %w", err)
	}

	return &RgbColorSpace{
		R: r, G: g, B: b, W: w,
		Illuminant:    illuminant,
		RgbFromXyz:    rgbFromXyz,
		XyzFromRgb:    xyzFromRgb,
		spectrumTable: table,
	}, nil
}

// ToRgb converts a tristimulus value to this space's RGB
func (cs *RgbColorSpace) ToRgb(xyz Xyz) Rgb {
	v := cs.RgbFromXyz.MulVec([3]float32{xyz.X, xyz.Y, xyz.Z})
	return Rgb{R: v[0], G: v[1], B: v[2]}
}

// ToXyz converts this space's RGB to a tristimulus value
func (cs *RgbColorSpace) ToXyz(rgb Rgb) Xyz {
	v := cs.XyzFromRgb.MulVec([3]float32{rgb.R, rgb.G, rgb.B})
	return Xyz{X: v[0], Y: v[1], Z: v[2]}
}

// ToRgbCoefficients returns the sigmoid polynomial whose spectrum
// reproduces rgb in this space. Negative components are clamped to zero
// first; the table is only defined inside the unit cube.
func (cs *RgbColorSpace) ToRgbCoefficients(rgb Rgb) RgbSigmoidPolynomial {
	return cs.spectrumTable.Evaluate(rgb.ClampZero())
}

// AlbedoSpectrum lifts an RGB reflectance to a bounded spectrum
func (cs *RgbColorSpace) AlbedoSpectrum(rgb Rgb) *RgbAlbedo {
	return NewRgbAlbedo(cs.ToRgbCoefficients(rgb))
}

// UnboundedSpectrum lifts an arbitrary nonnegative RGB to a spectrum by
// normalizing to twice the maximal component and scaling back
func (cs *RgbColorSpace) UnboundedSpectrum(rgb Rgb) *RgbUnbounded {
	scale := 2 * rgb.MaxComponent()
	normalized := rgb
	if scale != 0 {
		normalized = rgb.Scale(1 / scale)
	}
	return NewRgbUnbounded(cs.ToRgbCoefficients(normalized), scale)
}

// IlluminantSpectrum lifts an RGB light color to a spectrum modulating
// this space's illuminant. An all-zero RGB yields a zero spectrum.
func (cs *RgbColorSpace) IlluminantSpectrum(rgb Rgb) *RgbIlluminant {
	scale := 2 * rgb.MaxComponent()
	normalized := rgb
	if scale != 0 {
		normalized = rgb.Scale(1 / scale)
	}
	return NewRgbIlluminant(cs.ToRgbCoefficients(normalized), scale, cs.Illuminant)
}

// ConvertColorSpace returns the matrix taking RGB values in from to RGB
// values in to
func ConvertColorSpace(from, to *RgbColorSpace) Mat3 {
	return to.RgbFromXyz.Mul(from.XyzFromRgb)
}

// ColorSpaces bundles the four standard color spaces the renderer ships
// tables for
type ColorSpaces struct {
	SRgb     *RgbColorSpace
	DciP3    *RgbColorSpace
	Rec2020  *RgbColorSpace
	Aces2065 *RgbColorSpace
}

// Lookup returns a color space by its asset name (srgb, dci_p3, rec2020,
// aces), or nil for an unknown name
func (c *ColorSpaces) Lookup(name string) *RgbColorSpace {
	switch name {
	case "srgb":
		return c.SRgb
	case "dci_p3":
		return c.DciP3
	case "rec2020":
		return c.Rec2020
	case "aces":
		return c.Aces2065
	default:
		return nil
	}
}

var colorSpacesOnce = sync.OnceValues(loadColorSpaces)

// StandardColorSpaces returns the process-wide standard color spaces,
// built from the embedded tables on first use. A load failure is returned
// to every caller; no partially constructed state is retained.
func StandardColorSpaces() (*ColorSpaces, error) {
	return colorSpacesOnce()
}

// MustColorSpaces is StandardColorSpaces for callers that treat a broken
// embedded table as fatal
func MustColorSpaces() *ColorSpaces {
	cs, err := StandardColorSpaces()
	if err != nil {
		panic(err)
	}
	return cs
}

func loadColorSpaces() (*ColorSpaces, error) {
	named := Named()

	srgbTable, err := ParseCoefficients(srgbTableData)
	if err != nil {
		return nil, fmt.Errorf("srgb spectrum table: %w", err)
	}
	dciP3Table, err := ParseCoefficients(dciP3TableData)
	if err != nil {
		return nil, fmt.Errorf("dci_p3 spectrum table: %w", err)
	}
	rec2020Table, err := ParseCoefficients(rec2020TableData)
	if err != nil {
		return nil, fmt.Errorf("rec2020 spectrum table: %w", err)
	}
	acesTable, err := ParseCoefficients(acesTableData)
	if err != nil {
		return nil, fmt.Errorf("aces spectrum table: %w", err)
	}

	srgb, err := NewRgbColorSpace(
		Xy{0.64, 0.33}, Xy{0.30, 0.60}, Xy{0.15, 0.06},
		named.StdIllumD65, srgbTable)
	if err != nil {
		return nil, err
	}
	dciP3, err := NewRgbColorSpace(
		Xy{0.68, 0.32}, Xy{0.265, 0.690}, Xy{0.15, 0.06},
		named.StdIllumD65, dciP3Table)
	if err != nil {
		return nil, err
	}
	rec2020, err := NewRgbColorSpace(
		Xy{0.708, 0.292}, Xy{0.170, 0.797}, Xy{0.131, 0.046},
		named.StdIllumD65, rec2020Table)
	if err != nil {
		return nil, err
	}
	aces, err := NewRgbColorSpace(
		Xy{0.7347, 0.2653}, Xy{0.0, 1.0}, Xy{0.0001, -0.077},
		named.IllumAcesD60, acesTable)
	if err != nil {
		return nil, err
	}

	return &ColorSpaces{
		SRgb:     srgb,
		DciP3:    dciP3,
		Rec2020:  rec2020,
		Aces2065: aces,
	}, nil
}
