package spectral

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sync"
)

//go:embed data/cie-xyz.json
var cieXyzJSON []byte

// CieXyz holds the CIE 1931 standard observer matching curves, densely
// reconstructed at 1nm resolution over the visible range
type CieXyz struct {
	X, Y, Z Spectrum
}

var cieOnce = sync.OnceValue(loadCIE)

// CIE returns the process-wide CIE matching curves, loaded from the
// embedded table on first use
func CIE() *CieXyz {
	return cieOnce()
}

func loadCIE() *CieXyz {
	var file struct {
		Lambda []float32 `json:"lambda"`
		X      []float32 `json:"x"`
		Y      []float32 `json:"y"`
		Z      []float32 `json:"z"`
	}
	if err := json.Unmarshal(cieXyzJSON, &file); err != nil {
		// The table is embedded at build time; failing to parse it means
		// the binary itself is broken.
		panic(fmt.Sprintf("corrupt embedded CIE table: %v", err))
	}
	if len(file.Lambda) != len(file.X) || len(file.Lambda) != len(file.Y) || len(file.Lambda) != len(file.Z) {
		panic("corrupt embedded CIE table: mismatched array lengths")
	}

	x := NewPiecewiseLinear(file.Lambda, file.X)
	y := NewPiecewiseLinear(file.Lambda, file.Y)
	z := NewPiecewiseLinear(file.Lambda, file.Z)

	return &CieXyz{
		X: DenselySample(x),
		Y: DenselySample(y),
		Z: DenselySample(z),
	}
}
