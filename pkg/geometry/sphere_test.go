package geometry

import (
	"math"
	"testing"

	"github.com/GyrosOfWar/go-spectral-raytracer/pkg/core"
)

func TestSphereHit(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, -5), 1.0, nil)

	tests := []struct {
		name    string
		ray     core.Ray
		wantHit bool
		wantT   float64
	}{
		{
			name:    "direct hit through center",
			ray:     core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1)),
			wantHit: true,
			wantT:   4.0,
		},
		{
			name:    "miss to the side",
			ray:     core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0)),
			wantHit: false,
		},
		{
			name:    "grazing hit at edge",
			ray:     core.NewRay(core.NewVec3(1, 0, 0), core.NewVec3(0, 0, -1)),
			wantHit: true,
			wantT:   5.0,
		},
		{
			name:    "ray pointing away",
			ray:     core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1)),
			wantHit: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit, isHit := sphere.Hit(tt.ray, 0.001, math.Inf(1))
			if isHit != tt.wantHit {
				t.Fatalf("Hit() = %v, want %v", isHit, tt.wantHit)
			}
			if isHit && math.Abs(hit.T-tt.wantT) > 1e-9 {
				t.Errorf("t = %v, want %v", hit.T, tt.wantT)
			}
		})
	}
}

func TestSphereHitRange(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, -5), 1.0, nil)
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	// tMax before the near intersection rejects the hit
	if _, isHit := sphere.Hit(ray, 0.001, 3.0); isHit {
		t.Error("expected miss with tMax before the sphere")
	}

	// tMin past the near intersection picks up the far one
	hit, isHit := sphere.Hit(ray, 4.5, math.Inf(1))
	if !isHit {
		t.Fatal("expected hit on the far side")
	}
	if math.Abs(hit.T-6.0) > 1e-9 {
		t.Errorf("far t = %v, want 6", hit.T)
	}
	if hit.FrontFace {
		t.Error("hit from inside must not be front facing")
	}
}

func TestSphereFaceNormal(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, -5), 1.0, nil)
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	hit, isHit := sphere.Hit(ray, 0.001, math.Inf(1))
	if !isHit {
		t.Fatal("expected hit")
	}
	if !hit.FrontFace {
		t.Error("hit from outside must be front facing")
	}
	wantNormal := core.NewVec3(0, 0, 1)
	if hit.Normal.Subtract(wantNormal).Length() > 1e-9 {
		t.Errorf("normal = %v, want %v", hit.Normal, wantNormal)
	}
}
