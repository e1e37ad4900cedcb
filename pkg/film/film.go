package film

import (
	"image"
	"image/color"
	"math"
	"sync"

	"github.com/chewxy/math32"
	"github.com/GyrosOfWar/go-spectral-raytracer/pkg/spectral"
)

// Pixel accumulates sensor RGB in float64 so long renders do not lose
// precision as the sample count grows
type Pixel struct {
	RgbSum    [3]float64
	WeightSum float64
}

// RgbFilm collects radiance samples into a pixel grid and develops them
// into an image in its output color space
type RgbFilm struct {
	Width, Height int

	sensor     *PixelSensor
	colorSpace *spectral.RgbColorSpace
	maxValue   float32
	outputRgb  spectral.Mat3

	mu     sync.Mutex
	pixels []Pixel
}

// NewRgbFilm creates a film of the given size. maxComponentValue clamps
// each sample's sensor RGB before accumulation to suppress fireflies;
// pass +Inf to disable clamping.
func NewRgbFilm(width, height int, sensor *PixelSensor, colorSpace *spectral.RgbColorSpace, maxComponentValue float32) *RgbFilm {
	return &RgbFilm{
		Width:      width,
		Height:     height,
		sensor:     sensor,
		colorSpace: colorSpace,
		maxValue:   maxComponentValue,
		outputRgb:  colorSpace.RgbFromXyz.Mul(sensor.XyzFromSensorRgb),
		pixels:     make([]Pixel, width*height),
	}
}

// AddSample records one radiance sample for pixel (x, y) with the given
// filter weight
func (f *RgbFilm) AddSample(x, y int, sample spectral.SampledSpectrum, wl spectral.SampledWavelengths, weight float32) {
	rgb := f.sensor.ToSensorRgb(sample, wl)

	if m := rgb.MaxComponent(); m > f.maxValue {
		rgb = rgb.Scale(f.maxValue / m)
	}

	p := &f.pixels[y*f.Width+x]
	f.mu.Lock()
	p.RgbSum[0] += float64(weight) * float64(rgb.R)
	p.RgbSum[1] += float64(weight) * float64(rgb.G)
	p.RgbSum[2] += float64(weight) * float64(rgb.B)
	p.WeightSum += float64(weight)
	f.mu.Unlock()
}

// Pixel returns the accumulator for (x, y)
func (f *RgbFilm) Pixel(x, y int) Pixel {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.pixels[y*f.Width+x]
}

// DevelopPixel converts one pixel's accumulated samples to output-space
// RGB, without any display transfer function applied
func (f *RgbFilm) DevelopPixel(x, y int) spectral.Rgb {
	p := f.Pixel(x, y)
	var rgb spectral.Rgb
	if p.WeightSum != 0 {
		rgb = spectral.Rgb{
			R: float32(p.RgbSum[0] / p.WeightSum),
			G: float32(p.RgbSum[1] / p.WeightSum),
			B: float32(p.RgbSum[2] / p.WeightSum),
		}
	}
	out := f.outputRgb.MulVec([3]float32{rgb.R, rgb.G, rgb.B})
	return spectral.Rgb{R: out[0], G: out[1], B: out[2]}
}

// ToImage develops the film into an 8-bit image with gamma 2.0 applied,
// matching the renderer's display encoding
func (f *RgbFilm) ToImage() *image.RGBA {
	return f.ToImageBounds(image.Rect(0, 0, f.Width, f.Height))
}

// ToImageBounds develops the given pixel region into an image whose origin
// is the region's top-left corner
func (f *RgbFilm) ToImageBounds(bounds image.Rectangle) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			rgb := f.DevelopPixel(x, y)
			img.Set(x-bounds.Min.X, y-bounds.Min.Y, color.RGBA{
				R: encodeChannel(rgb.R),
				G: encodeChannel(rgb.G),
				B: encodeChannel(rgb.B),
				A: 255,
			})
		}
	}
	return img
}

func encodeChannel(v float32) uint8 {
	if v != v || v < 0 {
		v = 0
	}
	v = math32.Sqrt(v)
	if v > 1 {
		v = 1
	}
	return uint8(math.Round(float64(v) * 255))
}
