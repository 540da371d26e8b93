package geom

import (
	"math"
	"math/rand"
	"testing"
)

func TestFitTransformLetterbox(t *testing.T) {
	design := Size{W: 1000, H: 800}
	tests := []struct {
		name    string
		surface Size
		scale   float64
		dx, dy  float64
	}{
		{"same size", Size{W: 1000, H: 800}, 1, 0, 0},
		{"double", Size{W: 2000, H: 1600}, 2, 0, 0},
		{"wide surface", Size{W: 2000, H: 800}, 1, 500, 0},
		{"tall surface", Size{W: 1000, H: 1600}, 1, 0, 400},
		{"half", Size{W: 500, H: 400}, 0.5, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tf := FitTransform(design, tt.surface)
			if tf.Scale != tt.scale || tf.Dx != tt.dx || tf.Dy != tt.dy {
				t.Errorf("FitTransform(%v) = %+v, want scale=%v dx=%v dy=%v",
					tt.surface, tf, tt.scale, tt.dx, tt.dy)
			}
		})
	}
}

func TestTransformApply(t *testing.T) {
	tf := Transform{Scale: 2, Dx: 10, Dy: 20}
	got := tf.Apply(Point{X: 3, Y: 4})
	want := Point{X: 16, Y: 28}
	if got != want {
		t.Fatalf("Apply = %v, want %v", got, want)
	}
	if back := tf.Invert(got); back != (Point{X: 3, Y: 4}) {
		t.Fatalf("Invert = %v, want {3 4}", back)
	}
}

func TestTransformRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	design := Size{W: 1000, H: 800}
	const tol = 1e-6

	for resize := 0; resize < 10; resize++ {
		surface := Size{
			W: 100 + rng.Float64()*3000,
			H: 100 + rng.Float64()*3000,
		}
		tf := FitTransform(design, surface)
		for i := 0; i < 1000; i++ {
			p := Point{X: rng.Float64() * design.W, Y: rng.Float64() * design.H}
			q := tf.Invert(tf.Apply(p))
			if math.Abs(q.X-p.X) > tol || math.Abs(q.Y-p.Y) > tol {
				t.Fatalf("round trip of %v via %+v drifted to %v", p, tf, q)
			}
		}
	}
}
