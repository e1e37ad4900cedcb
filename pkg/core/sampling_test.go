package core

import (
	"math"
	"math/rand"
	"testing"
)

func TestSamplePointInUnitDiskCenter(t *testing.T) {
	got := SamplePointInUnitDisk(NewVec2(0.5, 0.5))
	want := NewVec3(1, 1, 0)
	if got != want {
		t.Errorf("center sample = %v, want %v", got, want)
	}
}

func TestSamplePointInUnitDiskBounds(t *testing.T) {
	random := rand.New(rand.NewSource(42))
	for i := 0; i < 1000; i++ {
		sample := NewVec2(random.Float64(), random.Float64())
		if sample.X == 0.5 && sample.Y == 0.5 {
			continue
		}
		p := SamplePointInUnitDisk(sample)
		if p.Z != 0 {
			t.Fatalf("disk sample %v has non-zero z", p)
		}
		if r := math.Sqrt(p.X*p.X + p.Y*p.Y); r > 1+1e-9 {
			t.Fatalf("disk sample %v has radius %v > 1", p, r)
		}
	}
}

func TestSamplePointInUnitDiskAxes(t *testing.T) {
	tests := []struct {
		name   string
		sample Vec2
		want   Vec3
	}{
		{"positive x edge", NewVec2(1, 0.5), NewVec3(1, 0, 0)},
		{"negative x edge", NewVec2(0, 0.5), NewVec3(-1, 0, 0)},
		{"positive y edge", NewVec2(0.5, 1), NewVec3(0, 1, 0)},
		{"negative y edge", NewVec2(0.5, 0), NewVec3(0, -1, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SamplePointInUnitDisk(tt.sample)
			if math.Abs(got.X-tt.want.X) > 1e-9 || math.Abs(got.Y-tt.want.Y) > 1e-9 {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSampleCosineHemisphere(t *testing.T) {
	random := rand.New(rand.NewSource(42))
	normal := NewVec3(0, 0, 1)

	for i := 0; i < 1000; i++ {
		dir := SampleCosineHemisphere(normal, NewVec2(random.Float64(), random.Float64()))
		if math.Abs(dir.Length()-1) > 1e-9 {
			t.Fatalf("direction %v not normalized", dir)
		}
		if dir.Dot(normal) < 0 {
			t.Fatalf("direction %v below the surface", dir)
		}
	}
}

func TestSampleOnUnitSphere(t *testing.T) {
	random := rand.New(rand.NewSource(42))
	for i := 0; i < 1000; i++ {
		dir := SampleOnUnitSphere(NewVec2(random.Float64(), random.Float64()))
		if math.Abs(dir.Length()-1) > 1e-9 {
			t.Fatalf("direction %v not on the unit sphere", dir)
		}
	}
}

func TestSamplePointInUnitSphere(t *testing.T) {
	random := rand.New(rand.NewSource(42))
	for i := 0; i < 1000; i++ {
		p := SamplePointInUnitSphere(NewVec3(random.Float64(), random.Float64(), random.Float64()))
		if p.Length() > 1+1e-9 {
			t.Fatalf("point %v outside the unit sphere", p)
		}
	}
}
