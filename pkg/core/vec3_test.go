package core

import (
	"math"
	"testing"
)

func TestVec3_ComponentwiseArithmetic(t *testing.T) {
	a := NewVec3(1, 2, 3)
	b := NewVec3(4, -5, 6)

	tests := []struct {
		name     string
		got      Vec3
		expected Vec3
	}{
		{"Add", a.Add(b), NewVec3(5, -3, 9)},
		{"Add commutes", b.Add(a), a.Add(b)},
		{"Subtract", a.Subtract(b), NewVec3(-3, 7, -3)},
		{"MultiplyVec", a.MultiplyVec(b), NewVec3(4, -10, 18)},
		{"MultiplyVec commutes", b.MultiplyVec(a), a.MultiplyVec(b)},
		{"DivideVec", b.DivideVec(a), NewVec3(4, -2.5, 2)},
		{"Multiply", a.Multiply(2), NewVec3(2, 4, 6)},
		{"Divide", a.Divide(2), NewVec3(0.5, 1, 1.5)},
		{"Negate", a.Negate(), NewVec3(-1, -2, -3)},
		{"Sqrt", NewVec3(4, 9, 0.25).Sqrt(), NewVec3(2, 3, 0.5)},
		{"Clamp", NewVec3(-1, 0.5, 2).Clamp(0, 1), NewVec3(0, 0.5, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !tt.got.ApproxEquals(tt.expected, 1e-12) {
				t.Errorf("Expected %v, got %v", tt.expected, tt.got)
			}
		})
	}
}

func TestVec3_DotAndLength(t *testing.T) {
	a := NewVec3(1, 2, 3)
	b := NewVec3(4, -5, 6)

	if got := a.Dot(b); got != 12 {
		t.Errorf("Expected dot 12, got %f", got)
	}
	if a.Dot(b) != b.Dot(a) {
		t.Error("Dot product should be commutative")
	}
	if got := NewVec3(3, 4, 0).Length(); got != 5 {
		t.Errorf("Expected length 5, got %f", got)
	}
	if got := NewVec3(3, 4, 0).LengthSquared(); got != 25 {
		t.Errorf("Expected squared length 25, got %f", got)
	}
}

func TestVec3_CrossIsOrthogonal(t *testing.T) {
	pairs := [][2]Vec3{
		{NewVec3(1, 0, 0), NewVec3(0, 1, 0)},
		{NewVec3(1, 2, 3), NewVec3(4, -5, 6)},
		{NewVec3(-0.3, 7, 2.5), NewVec3(0.1, 0.2, -9)},
	}

	for _, p := range pairs {
		c := p[0].Cross(p[1])
		if math.Abs(c.Dot(p[0])) > 1e-9 {
			t.Errorf("cross(%v, %v) = %v is not orthogonal to the first operand", p[0], p[1], c)
		}
		if math.Abs(c.Dot(p[1])) > 1e-9 {
			t.Errorf("cross(%v, %v) = %v is not orthogonal to the second operand", p[0], p[1], c)
		}
	}

	if !NewVec3(1, 0, 0).Cross(NewVec3(0, 1, 0)).Equals(NewVec3(0, 0, 1)) {
		t.Error("Expected x × y = z")
	}
}

func TestVec3_Normalize(t *testing.T) {
	vectors := []Vec3{
		NewVec3(1, 0, 0),
		NewVec3(3, 4, 0),
		NewVec3(-2, 7, 0.001),
		NewVec3(1e-5, 1e-5, 1e-5),
		NewVec3(1e6, -1e6, 3),
	}

	for _, v := range vectors {
		length := v.Normalize().Length()
		if math.Abs(length-1) > 1e-12 {
			t.Errorf("Expected unit length for normalize(%v), got %f", v, length)
		}
	}
}

func TestVec3_NormalizeZero(t *testing.T) {
	n := Vec3{}.Normalize()
	if !n.Equals(Vec3{}) {
		t.Errorf("Expected zero vector, got %v", n)
	}
	if n.HasNaN() {
		t.Error("Normalizing the zero vector must not produce NaN")
	}
}

func TestMix(t *testing.T) {
	a := NewVec3(0, 1, 2)
	b := NewVec3(2, 1, 0)

	if got := Mix(a, b, 0.5); !got.Equals(NewVec3(1, 1, 1)) {
		t.Errorf("Expected midpoint (1,1,1), got %v", got)
	}
	if got := Mix(a, b, 0); !got.Equals(a) {
		t.Errorf("Expected a at t=0, got %v", got)
	}
	if got := Mix(a, b, 1); !got.Equals(b) {
		t.Errorf("Expected b at t=1, got %v", got)
	}
}

func TestVec3_NearZero(t *testing.T) {
	if !NewVec3(1e-9, -1e-9, 0).NearZero() {
		t.Error("Expected tiny vector to be near zero")
	}
	if NewVec3(1e-3, 0, 0).NearZero() {
		t.Error("Expected 1e-3 to not be near zero")
	}
}

func TestRay_At(t *testing.T) {
	ray := NewRay(NewVec3(1, 2, 3), NewVec3(0, -1, 2))

	if !ray.At(0).Equals(ray.Origin) {
		t.Errorf("Expected At(0) to equal origin, got %v", ray.At(0))
	}
	if !ray.At(2).Equals(NewVec3(1, 0, 7)) {
		t.Errorf("Expected (1,0,7), got %v", ray.At(2))
	}

	// At is affine: At(a+b) = At(a) + direction*b
	a, b := 0.75, -3.5
	lhs := ray.At(a + b)
	rhs := ray.At(a).Add(ray.Direction.Multiply(b))
	if !lhs.ApproxEquals(rhs, 1e-12) {
		t.Errorf("At is not affine: %v vs %v", lhs, rhs)
	}
}
