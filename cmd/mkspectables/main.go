// Command mkspectables fits the sigmoid-polynomial coefficient tables used
// for RGB to spectrum conversion and writes them in the renderer's binary
// layout: u32 resolution (LE), f32 scale[res], f32 data[3*res^3*3].
//
// The fit follows Jakob & Hanika, "A Low-Dimensional Function Space for
// Efficient Spectral Upsampling": for every grid cell a Gauss-Newton solver
// minimizes the CIELAB error between the target RGB and the RGB obtained by
// integrating the sigmoid spectrum against the color-matching curves under
// the space's illuminant.
package main

import (
	"encoding/binary"
	"flag"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"time"

	"github.com/GyrosOfWar/go-spectral-raytracer/pkg/spectral"
)

const (
	res = 64
	// Fine integration sample count over [360, 830], sized for composite
	// Newton-Cotes 3/8 weights
	fineSamples = 283

	lambdaMin = 360.0
	lambdaMax = 830.0

	maxCoefficient = 500.0
)

func main() {
	outDir := flag.String("out", filepath.Join("pkg", "spectral", "data", "color-spaces"), "Output directory for the .bin tables")
	workers := flag.Int("workers", 0, "Number of parallel workers (0 = use CPU count)")
	flag.Parse()

	if err := os.MkdirAll(*outDir, 0755); err != nil {
		fmt.Printf("Error creating output directory: %v\n", err)
		os.Exit(1)
	}

	named := spectral.Named()
	spaces := []struct {
		name       string
		primaries  [3]spectral.Xy
		illuminant spectral.Spectrum
	}{
		{"srgb", [3]spectral.Xy{{X: 0.64, Y: 0.33}, {X: 0.3, Y: 0.6}, {X: 0.15, Y: 0.06}}, named.StdIllumD65},
		{"dci_p3", [3]spectral.Xy{{X: 0.68, Y: 0.32}, {X: 0.265, Y: 0.69}, {X: 0.15, Y: 0.06}}, named.StdIllumD65},
		{"rec2020", [3]spectral.Xy{{X: 0.708, Y: 0.292}, {X: 0.17, Y: 0.797}, {X: 0.131, Y: 0.046}}, named.StdIllumD65},
		{"aces", [3]spectral.Xy{{X: 0.7347, Y: 0.2653}, {X: 0.0, Y: 1.0}, {X: 0.0001, Y: -0.077}}, named.IllumAcesD60},
	}

	for _, space := range spaces {
		start := time.Now()
		fmt.Printf("Fitting %s...\n", space.name)

		fit := newFitter(space.primaries, space.illuminant)
		table := fit.FitTable(*workers)

		path := filepath.Join(*outDir, space.name+".bin")
		if err := writeTable(path, table); err != nil {
			fmt.Printf("Error writing %s: %v\n", path, err)
			os.Exit(1)
		}
		fmt.Printf("  %s written in %v\n", path, time.Since(start))
	}
}

// fitTable holds a fitted coefficient grid before serialization
type fitTable struct {
	scale [res]float32
	data  []float32 // 3*res^3*3, [maxComponent][z][y][x][coefficient]
}

// fitter carries the per-space integration tables for the solver
type fitter struct {
	lambda     [fineSamples]float64
	rgbCurves  [3][fineSamples]float64 // weighted RGB responses per fine sample
	whitepoint [3]float64
	rgbToXyz   [3][3]float64
}

// newFitter precomputes the weighted response curves for one color space.
// Integrals use composite Newton-Cotes 3/8 weights over the fine grid.
func newFitter(primaries [3]spectral.Xy, illuminant spectral.Spectrum) *fitter {
	f := &fitter{}
	cie := spectral.CIE()

	h := (lambdaMax - lambdaMin) / (fineSamples - 1)
	var xyzCurves [3][fineSamples]float64
	var weights [fineSamples]float64

	for i := 0; i < fineSamples; i++ {
		lambda := lambdaMin + float64(i)*h
		f.lambda[i] = lambda

		l := float32(lambda)
		xyzCurves[0][i] = float64(cie.X.Evaluate(l))
		xyzCurves[1][i] = float64(cie.Y.Evaluate(l))
		xyzCurves[2][i] = float64(cie.Z.Evaluate(l))
		illum := float64(illuminant.Evaluate(l))

		weight := 3.0 / 8.0 * h
		switch {
		case i == 0 || i == fineSamples-1:
			// Endpoint weight
		case (i-1)%3 == 2:
			weight *= 2.0
		default:
			weight *= 3.0
		}
		weights[i] = weight * illum

		for k := 0; k < 3; k++ {
			f.whitepoint[k] += xyzCurves[k][i] * weights[i]
		}
	}

	xyzToRgb := f.deriveMatrices(primaries)

	for i := 0; i < fineSamples; i++ {
		for k := 0; k < 3; k++ {
			f.rgbCurves[k][i] = (xyzToRgb[k][0]*xyzCurves[0][i] +
				xyzToRgb[k][1]*xyzCurves[1][i] +
				xyzToRgb[k][2]*xyzCurves[2][i]) * weights[i]
		}
	}

	return f
}

// deriveMatrices builds rgb<->xyz from the primaries and the integrated
// whitepoint, the same construction RgbColorSpace uses
func (f *fitter) deriveMatrices(primaries [3]spectral.Xy) [3][3]float64 {
	var m [3][3]float64
	for c := 0; c < 3; c++ {
		x := float64(primaries[c].X)
		y := float64(primaries[c].Y)
		m[0][c] = x / y
		m[1][c] = 1.0
		m[2][c] = (1.0 - x - y) / y
	}

	mInv := invert3(m)
	var coef [3]float64
	for r := 0; r < 3; r++ {
		coef[r] = mInv[r][0]*f.whitepoint[0] + mInv[r][1]*f.whitepoint[1] + mInv[r][2]*f.whitepoint[2]
	}
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			f.rgbToXyz[r][c] = m[r][c] * coef[c]
		}
	}
	return invert3(f.rgbToXyz)
}

func invert3(m [3][3]float64) [3][3]float64 {
	a, b, c := m[0][0], m[0][1], m[0][2]
	d, e, f := m[1][0], m[1][1], m[1][2]
	g, h, i := m[2][0], m[2][1], m[2][2]

	ca := e*i - f*h
	cb := -(d*i - f*g)
	cc := d*h - e*g
	det := a*ca + b*cb + c*cc

	return [3][3]float64{
		{ca / det, -(b*i - c*h) / det, (b*f - c*e) / det},
		{cb / det, (a*i - c*g) / det, -(a*f - c*d) / det},
		{cc / det, -(a*h - b*g) / det, (a*e - b*d) / det},
	}
}

func sigmoid(x float64) float64 {
	return 0.5*x/math.Sqrt(1.0+x*x) + 0.5
}

func smoothstep(x float64) float64 {
	return x * x * (3.0 - 2.0*x)
}

// toLab converts an RGB triple (in place) to CIELAB under the space's
// whitepoint; the fit minimizes error in this perceptually uniform space
func (f *fitter) toLab(p *[3]float64) {
	var xyz [3]float64
	for r := 0; r < 3; r++ {
		for j := 0; j < 3; j++ {
			xyz[r] += p[j] * f.rgbToXyz[r][j]
		}
	}

	labF := func(t float64) float64 {
		if t > 216.0/24389.0 {
			return math.Cbrt(t)
		}
		return ((24389.0/27.0)*t + 16.0) / 116.0
	}
	fx := labF(xyz[0] / f.whitepoint[0])
	fy := labF(xyz[1] / f.whitepoint[1])
	fz := labF(xyz[2] / f.whitepoint[2])

	p[0] = 116.0*fy - 16.0
	p[1] = 500.0 * (fx - fy)
	p[2] = 200.0 * (fy - fz)
}

// evalResidual computes the CIELAB difference between the target RGB and
// the RGB reached by the sigmoid spectrum with the given coefficients.
// Coefficients act on the normalized wavelength (λ-360)/470.
func (f *fitter) evalResidual(coeffs, rgb [3]float64) [3]float64 {
	var out [3]float64
	for i := 0; i < fineSamples; i++ {
		lambda := (f.lambda[i] - lambdaMin) / (lambdaMax - lambdaMin)
		x := (coeffs[0]*lambda+coeffs[1])*lambda + coeffs[2]
		s := sigmoid(x)
		for k := 0; k < 3; k++ {
			out[k] += f.rgbCurves[k][i] * s
		}
	}

	f.toLab(&out)
	target := rgb
	f.toLab(&target)

	return [3]float64{target[0] - out[0], target[1] - out[1], target[2] - out[2]}
}

func (f *fitter) residualNorm(coeffs, rgb [3]float64) float64 {
	r := f.evalResidual(coeffs, rgb)
	return math.Sqrt(r[0]*r[0] + r[1]*r[1] + r[2]*r[2])
}

func clampCoeffs(coeffs [3]float64) [3]float64 {
	m := math.Max(math.Max(math.Abs(coeffs[0]), math.Abs(coeffs[1])), math.Abs(coeffs[2]))
	if m > maxCoefficient {
		for j := 0; j < 3; j++ {
			coeffs[j] *= maxCoefficient / m
		}
	}
	return coeffs
}

// gaussNewton refines coefficients toward the target RGB. The Jacobian is
// estimated with central differences and each step uses a backtracking line
// search; plain Gauss-Newton overshoots near the coefficient clamp at
// saturated cells.
func (f *fitter) gaussNewton(rgb [3]float64, coeffs *[3]float64) {
	r := f.residualNorm(*coeffs, rgb)
	for it := 0; it < 50; it++ {
		if r < 1e-6 {
			break
		}

		residual := f.evalResidual(*coeffs, rgb)
		var jacobian [3][3]float64
		for i := 0; i < 3; i++ {
			const eps = 1e-4
			tmp := *coeffs
			tmp[i] -= eps
			r0 := f.evalResidual(tmp, rgb)
			tmp[i] += 2 * eps
			r1 := f.evalResidual(tmp, rgb)
			for j := 0; j < 3; j++ {
				jacobian[j][i] = (r1[j] - r0[j]) / (2 * eps)
			}
		}

		step, ok := solveLUP(jacobian, residual)
		if !ok {
			break
		}

		alpha := 1.0
		accepted := false
		var trial [3]float64
		var trialNorm float64
		for ls := 0; ls < 10; ls++ {
			for j := 0; j < 3; j++ {
				trial[j] = coeffs[j] - alpha*step[j]
			}
			trial = clampCoeffs(trial)
			trialNorm = f.residualNorm(trial, rgb)
			if trialNorm < r {
				accepted = true
				break
			}
			alpha *= 0.5
		}
		if !accepted {
			break
		}
		*coeffs = trial
		r = trialNorm
	}
}

// solveLUP solves the 3x3 system A·x = b using LU decomposition with
// partial pivoting
func solveLUP(a [3][3]float64, b [3]float64) ([3]float64, bool) {
	perm := [3]int{0, 1, 2}
	for i := 0; i < 3; i++ {
		maxA := 0.0
		iMax := i
		for k := i; k < 3; k++ {
			if v := math.Abs(a[k][i]); v > maxA {
				maxA = v
				iMax = k
			}
		}
		if maxA < 1e-15 {
			return [3]float64{}, false
		}
		if iMax != i {
			perm[i], perm[iMax] = perm[iMax], perm[i]
			a[i], a[iMax] = a[iMax], a[i]
		}
		for j := i + 1; j < 3; j++ {
			a[j][i] /= a[i][i]
			for k := i + 1; k < 3; k++ {
				a[j][k] -= a[j][i] * a[i][k]
			}
		}
	}

	var x [3]float64
	for i := 0; i < 3; i++ {
		x[i] = b[perm[i]]
		for k := 0; k < i; k++ {
			x[i] -= a[i][k] * x[k]
		}
	}
	for i := 2; i >= 0; i-- {
		for k := i + 1; k < 3; k++ {
			x[i] -= a[i][k] * x[k]
		}
		x[i] /= a[i][i]
	}
	return x, true
}

// FitTable fits the full coefficient grid, parallelized over rows
func (f *fitter) FitTable(workers int) *fitTable {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	table := &fitTable{
		data: make([]float32, 3*res*res*res*3),
	}
	for k := 0; k < res; k++ {
		table.scale[k] = float32(smoothstep(smoothstep(float64(k) / (res - 1))))
	}

	type rowTask struct {
		maxComponent int
		j            int
	}
	tasks := make(chan rowTask, 3*res)
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for task := range tasks {
				f.fitRow(table, task.maxComponent, task.j)
			}
		}()
	}

	for l := 0; l < 3; l++ {
		for j := 0; j < res; j++ {
			tasks <- rowTask{maxComponent: l, j: j}
		}
	}
	close(tasks)
	wg.Wait()

	return table
}

// fitRow fits one (maxComponent, y) row of cells. Each cell sweeps the
// brightness axis starting from a mid-range slice, warm-starting every fit
// from the previous solution; the sigmoid coefficients vary smoothly along
// this axis so the previous cell is an excellent initial guess.
func (f *fitter) fitRow(table *fitTable, l, j int) {
	y := float64(j) / (res - 1)
	for i := 0; i < res; i++ {
		x := float64(i) / (res - 1)
		var coeffs [3]float64

		start := res / 5
		for k := start; k < res; k++ {
			f.fitCell(table, l, k, j, i, x, y, &coeffs)
		}
		coeffs = [3]float64{}
		for k := start; k >= 0; k-- {
			f.fitCell(table, l, k, j, i, x, y, &coeffs)
		}
	}
}

// fitCell fits a single grid cell and stores coefficients rebased from the
// normalized wavelength domain to nanometers
func (f *fitter) fitCell(table *fitTable, l, k, j, i int, x, y float64, coeffs *[3]float64) {
	b := float64(table.scale[k])
	var rgb [3]float64
	rgb[l] = b
	rgb[(l+1)%3] = x * b
	rgb[(l+2)%3] = y * b

	f.gaussNewton(rgb, coeffs)

	const (
		c0 = lambdaMin
		c1 = 1.0 / (lambdaMax - lambdaMin)
	)
	a, bb, c := coeffs[0], coeffs[1], coeffs[2]

	idx := ((l*res+k)*res+j)*res + i
	table.data[3*idx+0] = float32(a * c1 * c1)
	table.data[3*idx+1] = float32(bb*c1 - 2*a*c0*c1*c1)
	table.data[3*idx+2] = float32(c - bb*c0*c1 + a*(c0*c1)*(c0*c1))
}

// writeTable serializes a fitted table in little-endian binary form
func writeTable(path string, table *fitTable) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	if err := binary.Write(file, binary.LittleEndian, uint32(res)); err != nil {
		return err
	}
	if err := binary.Write(file, binary.LittleEndian, table.scale[:]); err != nil {
		return err
	}
	return binary.Write(file, binary.LittleEndian, table.data)
}
