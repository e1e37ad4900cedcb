package scene

import (
	"math"
	"testing"

	"github.com/GyrosOfWar/go-spectral-raytracer/pkg/core"
	"github.com/GyrosOfWar/go-spectral-raytracer/pkg/spectral"
)

func TestBackgroundGradientBlend(t *testing.T) {
	s := &Scene{ColorSpace: spectral.MustColorSpaces().SRgb}
	s.SetBackgroundSpectra(spectral.Constant{C: 1}, spectral.Constant{C: 0})

	wl := spectral.SampleVisibleWavelengths(0.5)

	up := s.Background(core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0)), wl)
	down := s.Background(core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, -1, 0)), wl)
	level := s.Background(core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0)), wl)

	for i := 0; i < spectral.NSpectrumSamples; i++ {
		if math.Abs(float64(up.Values[i])-1) > 1e-6 {
			t.Errorf("up lane %d = %v, want 1", i, up.Values[i])
		}
		if math.Abs(float64(down.Values[i])) > 1e-6 {
			t.Errorf("down lane %d = %v, want 0", i, down.Values[i])
		}
		if math.Abs(float64(level.Values[i])-0.5) > 1e-6 {
			t.Errorf("level lane %d = %v, want 0.5", i, level.Values[i])
		}
	}
}

func TestBackgroundWithoutSpectraIsBlack(t *testing.T) {
	s := &Scene{}
	wl := spectral.SampleVisibleWavelengths(0.5)
	got := s.Background(core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0)), wl)
	if !got.IsZero() {
		t.Errorf("got %v, want zero background", got)
	}
}

func TestNewGroundQuadNormalPointsUp(t *testing.T) {
	quad := NewGroundQuad(core.NewVec3(0, -1, 0), 10, nil)
	if quad.Normal.Subtract(core.NewVec3(0, 1, 0)).Length() > 1e-9 {
		t.Errorf("normal = %v, want up", quad.Normal)
	}
	if math.Abs(quad.Area()-100) > 1e-9 {
		t.Errorf("area = %v, want 100", quad.Area())
	}
}

func TestGradientBackgroundMatchesRgb(t *testing.T) {
	s := &Scene{ColorSpace: spectral.MustColorSpaces().SRgb}
	s.SetGradientBackground(spectral.Rgb{R: 0.5, G: 0.7, B: 1.0}, spectral.Rgb{R: 1, G: 1, B: 1})

	wl := spectral.SampleVisibleWavelengths(0.5)
	up := s.Background(core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0)), wl)
	if up.IsZero() {
		t.Error("sky background must carry energy")
	}
}

func TestDefaultSceneConstruction(t *testing.T) {
	s := NewDefaultScene(spectral.MustColorSpaces().SRgb)
	if s.GetCamera() == nil {
		t.Fatal("default scene has no camera")
	}
	if s.GetPrimitiveCount() == 0 {
		t.Fatal("default scene has no shapes")
	}
}

func TestCornellSceneConstruction(t *testing.T) {
	s := NewCornellScene(spectral.MustColorSpaces().SRgb)
	if s.GetCamera() == nil {
		t.Fatal("cornell scene has no camera")
	}
	// Five walls, a light and two spheres
	if s.GetPrimitiveCount() < 8 {
		t.Fatalf("cornell scene has %d primitives, want at least 8", s.GetPrimitiveCount())
	}
}
